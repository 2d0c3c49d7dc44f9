package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// assetSubdirs is the fixed search order. The bare id under the root wins
// over any same-named file in a subdirectory.
var assetSubdirs = []string{"", "sfx", "music", "ambience"}

// DirResolver resolves asset ids to files under a single assets root.
type DirResolver struct {
	Root string
}

func (r *DirResolver) Resolve(id string) (string, error) {
	tried := make([]string, 0, len(assetSubdirs))
	for _, sub := range assetSubdirs {
		path := filepath.Join(r.Root, sub, id)
		// Only regular files count. An empty id joins to a directory and
		// must not resolve.
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, nil
		}
		tried = append(tried, path)
	}
	return "", &AssetNotFoundError{ID: id, Tried: tried}
}

type AssetNotFoundError struct {
	ID    string
	Tried []string
}

func (e *AssetNotFoundError) Error() string {
	return fmt.Sprintf("asset %q not found, tried: %s", e.ID, strings.Join(e.Tried, ", "))
}
