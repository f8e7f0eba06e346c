package generator

import (
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"time"

	"github.com/gene-labs/gene/internal/manifest"
	"github.com/gene-labs/gene/internal/templates"
	"github.com/go-git/go-billy/v5"
)

// Options configures a Generator.
type Options struct {
	// Author fills the {{author}} placeholder. The caller decides the default.
	Author string
	// Year fills {{year}}; defaults to the current year.
	Year string
	// Version is the running generator version, checked against the
	// template set's "requires" constraint.
	Version string
	// Templates is the template set; defaults to the embedded Flask set.
	Templates fs.FS
	// Out receives progress messages; defaults to io.Discard.
	Out io.Writer
}

// Generator writes projects and files into a target filesystem.
type Generator struct {
	fs       billy.Filesystem
	tmpl     fs.FS
	manifest *manifest.Manifest
	author   string
	year     string
	out      io.Writer
}

// New creates a Generator that writes into fsys, the directory that will
// hold the project package and its top-level files.
func New(fsys billy.Filesystem, opts Options) (*Generator, error) {
	tmpl := opts.Templates
	if tmpl == nil {
		tmpl = templates.Default()
	}

	m, err := manifest.Load(tmpl)
	if err != nil {
		return nil, fmt.Errorf("loading template set: %w", err)
	}
	if err := m.CheckCompatible(opts.Version); err != nil {
		return nil, err
	}

	year := opts.Year
	if year == "" {
		year = strconv.Itoa(time.Now().Year())
	}

	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	return &Generator{
		fs:       fsys,
		tmpl:     tmpl,
		manifest: m,
		author:   opts.Author,
		year:     year,
		out:      out,
	}, nil
}

// Author returns the configured author name.
func (g *Generator) Author() string { return g.author }

// Year returns the year used for {{year}}.
func (g *Generator) Year() string { return g.year }

// Manifest returns the loaded template set manifest.
func (g *Generator) Manifest() *manifest.Manifest { return g.manifest }

// Root returns the filesystem root the generator writes to.
func (g *Generator) Root() string { return g.fs.Root() }

func (g *Generator) displayPath(rel string) string {
	if rel == "" {
		return g.Root()
	}
	return g.fs.Join(g.Root(), rel)
}
