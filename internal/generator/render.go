package generator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5/util"
)

// Vars maps placeholder names to their literal replacements.
type Vars map[string]string

// Apply replaces every {{key}} in text with its value.
func (v Vars) Apply(text string) string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		text = strings.ReplaceAll(text, "{{"+k+"}}", v[k])
	}
	return text
}

// RenderTemplate renders the file at path in two phases. First, a name
// ending in the template marker is renamed to drop it. Then every {{key}}
// in the file is replaced and the result written back. It returns the final
// path.
func (g *Generator) RenderTemplate(path string, vars Vars) (string, error) {
	path, err := g.stripMarker(path)
	if err != nil {
		return "", err
	}

	text, err := g.readFile(path)
	if err != nil {
		return "", err
	}

	rendered := vars.Apply(text)
	if rendered == text {
		return path, nil
	}
	return path, g.writeFile(path, rendered)
}

// RenderTree renders every marker file below dir. Files are collected before
// any rename so the walk never sees a half-renamed tree.
func (g *Generator) RenderTree(project, dir string) error {
	marker := g.manifest.Marker

	var paths []string
	err := util.Walk(g.fs, dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(info.Name(), marker) {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", dir, err)
	}

	for _, p := range paths {
		pkg := buildPackagePath(project, filepath.Dir(p), dir, filepath.Base(p), marker, g.manifest.Extension)
		vars := Vars{
			"package":       pkg,
			"separator":     BuildLineSeparator(pkg),
			"project_root":  g.Root(),
			"project":       project,
			"project_upper": strings.ToUpper(project),
			"year":          g.year,
			"author":        g.author,
		}
		if _, err := g.RenderTemplate(p, vars); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) stripMarker(path string) (string, error) {
	if !strings.HasSuffix(path, g.manifest.Marker) {
		return path, nil
	}

	dst := strings.TrimSuffix(path, g.manifest.Marker)
	if g.exists(dst) {
		return "", &Error{Kind: AlreadyExists, Name: filepath.Base(dst), Dir: g.displayPath(filepath.Dir(dst))}
	}
	if err := g.fs.Rename(path, dst); err != nil {
		return "", fmt.Errorf("renaming %s: %w", path, err)
	}
	return dst, nil
}

func (g *Generator) readFile(path string) (string, error) {
	f, err := g.fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func (g *Generator) writeFile(path, text string) (err error) {
	f, err := g.fs.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("opening %s for writing: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if _, err := io.WriteString(f, text); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
