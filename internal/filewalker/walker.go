package filewalker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// ComponentExt is the reserved extension for single-file components.
const ComponentExt = ".vue"

// FileEntry is one discovered file. Component files go through the
// rewrite pipeline; everything else is copied byte-for-byte.
type FileEntry struct {
	// Path is the absolute source path.
	Path string
	// RelPath is the path relative to the walk root, used to mirror the
	// file under the output root.
	RelPath string
	// Component marks files with the reserved component extension.
	Component bool
}

// Walk discovers all files under the given root directory. Entries come
// back in filepath.Walk's lexical order, which keeps the batch
// deterministic across platforms.
func Walk(root string) ([]FileEntry, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	var entries []FileEntry

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}

		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("relative path for %s: %w", path, err)
		}

		entries = append(entries, FileEntry{
			Path:      path,
			RelPath:   rel,
			Component: strings.EqualFold(filepath.Ext(path), ComponentExt),
		})
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	log.Info().Int("count", len(entries)).Str("root", root).Msg("Discovered files")
	return entries, nil
}
