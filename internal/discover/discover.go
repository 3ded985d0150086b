// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discover walks a directory tree and selects candidate image
// files for JPEG conversion.
package discover

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pdiddy/jpegify/pkg/types"
)

// jpegExtensions are the extensions that already denote JPEG content.
// Files carrying them are recognized images but never candidates.
var jpegExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
}

// Find walks root depth-first and returns the paths of all candidate
// images: files whose extension (case-insensitive) is in cfg.Extensions
// and is not already a JPEG extension. Directories named in
// cfg.ExcludeDirs are pruned before descent, so excluded subtrees are
// never visited. The root itself is always walked, whatever its name.
//
// Paths are returned in walk order. Traversal errors abort the walk and
// are returned to the caller.
func Find(root string, cfg types.DiscoveryConfig) ([]string, error) {
	excluded := make(map[string]bool, len(cfg.ExcludeDirs))
	for _, d := range cfg.ExcludeDirs {
		excluded[d] = true
	}
	recognized := make(map[string]bool, len(cfg.Extensions))
	for _, e := range cfg.Extensions {
		recognized[strings.ToLower(e)] = true
	}

	var candidates []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && excluded[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if recognized[ext] && !jpegExtensions[ext] {
			candidates = append(candidates, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return candidates, nil
}
