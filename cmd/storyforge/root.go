package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/tmarlen/storyforge/internal/config"
	"github.com/tmarlen/storyforge/internal/log"
)

func Execute(ctx context.Context, version string) error {
	rootCmd := newRootCmd(version)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd(version string) *cobra.Command {
	var configPath string
	var jobs int

	rootCmd := &cobra.Command{
		Version: version,
		Use:     "storyforge <script>...",
		Short:   "Render story scripts to mixed audio files",
		Long: `Render story scripts to mixed audio files.

A script is line-oriented text: @key: value directives, SPEAKER: text
narration lines, PAUSE: <seconds> silences and SFX: <asset> cues anchored to
the narration timeline. Narration is synthesized per speaker, sound effects
and looped background beds are overlaid, and everything is mixed in one pass
into a single mp3 per script.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: autocomplete,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("producer configuration not found: %w", err)
			}
			f, err := os.OpenFile(configPath, os.O_RDONLY, 0o600)
			if err != nil {
				return err
			}
			defer func() {
				_ = f.Close()
			}()
			cfg, err := config.Parse(f)
			if err != nil {
				return err
			}
			switch cfg.LogLevel {
			case slog.LevelInfo:
				slog.SetDefault(slog.New(log.NewMsgHandler(os.Stdout, cfg.LogLevel)))
			default:
				slog.SetLogLoggerLevel(cfg.LogLevel)
			}
			return run(cmd.Context(), cfg, args, jobs)
		},
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "producer.yaml", "producer configuration yaml")
	rootCmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "maximum concurrent renders")

	exampleCmd := &cobra.Command{
		Use:               "example",
		Short:             "Print example producer yaml",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(os.Stdout, config.Example())
			return err
		},
	}

	rootCmd.AddCommand(exampleCmd)

	rootCmd.AddCommand(newGenerateCmd())

	rootCmd.AddCommand(newManCmd(rootCmd))

	return rootCmd
}

func autocomplete(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"sfml", "txt"}, cobra.ShellCompDirectiveFilterFileExt
}
