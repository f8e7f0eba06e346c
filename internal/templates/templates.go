// Package templates bundles the default Flask template set and opens
// user-supplied template directories.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/gene-labs/gene/internal/manifest"
)

// The all: prefix keeps __init__.py and other underscore-prefixed files.
//
//go:embed all:skel
var skelFS embed.FS

// Default returns the embedded template set rooted at its manifest.
func Default() fs.FS {
	sub, err := fs.Sub(skelFS, "skel")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}

// Open returns the template set at dir, or the embedded set when dir is empty.
// The directory must contain a gene.yaml manifest.
func Open(dir string) (fs.FS, error) {
	if dir == "" {
		return Default(), nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template path %s is not a directory", dir)
	}

	fsys := os.DirFS(dir)
	if _, err := fs.Stat(fsys, manifest.FileName); err != nil {
		return nil, fmt.Errorf("template directory %s has no %s", dir, manifest.FileName)
	}
	return fsys, nil
}
