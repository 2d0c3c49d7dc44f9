package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmarlen/storyforge/internal/story"
)

func newGenerateCmd() *cobra.Command {
	cfg := story.Config{}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a generated story script",
		Long: `Print a generated story script to stdout.

Generation is deterministic for a given seed and does not call any external
service. The output is a complete script that renders as-is, provided the
referenced sound effect assets exist.`,
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(os.Stdout, story.Generate(cfg))
			return err
		},
	}

	generateCmd.Flags().StringVar(&cfg.Title, "title", "A Quiet Story", "story title")
	generateCmd.Flags().Uint64Var(&cfg.Seed, "seed", 0, "seed for the story dice")
	generateCmd.Flags().StringVar(&cfg.Narrator, "narrator", "Ruby", "narrator speaker name")
	generateCmd.Flags().StringVar(&cfg.Music, "music", "", "music bed asset, omitted when empty")
	generateCmd.Flags().StringVar(&cfg.Ambience, "ambience", "", "ambience bed asset, omitted when empty")

	return generateCmd
}
