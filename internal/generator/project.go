package generator

import (
	"fmt"
	"strings"

	"github.com/gene-labs/gene/internal/platform"
	"github.com/gene-labs/gene/internal/ui"
)

// CreateProject generates a new project called name in the generator root:
// the project package, the top-level files, the auxiliary directories and
// the data directory. Existing auxiliary directories are left alone; an
// existing project package, top-level file or data directory is an error.
func (g *Generator) CreateProject(name string) error {
	m := g.manifest

	if err := ValidateName(name); err != nil {
		return err
	}
	if err := g.ValidateExists("", name); err != nil {
		return err
	}

	g.creating(name)
	if err := copyTree(g.tmpl, m.AppDir, g.fs, name); err != nil {
		return fmt.Errorf("copying project templates: %w", err)
	}
	if err := g.RenderTree(name, name); err != nil {
		return err
	}

	for _, fname := range m.ProjectFiles {
		if err := g.createProjectFile(name, fname); err != nil {
			return err
		}
	}

	for _, dir := range m.AuxDirs {
		if g.exists(dir) {
			continue
		}
		g.creating(dir)
		if err := g.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	if err := g.ValidateExists("", m.DataDir); err != nil {
		return err
	}
	g.creating(m.DataDir)
	if err := copyTree(g.tmpl, m.DataDir, g.fs, m.DataDir); err != nil {
		return fmt.Errorf("copying data templates: %w", err)
	}
	if err := g.RenderTree(name, m.DataDir); err != nil {
		return err
	}

	ui.Success(g.out, "Create project success.")
	if m.NextSteps != "" {
		ui.Hint(g.out, "%s", m.NextSteps)
	}
	return nil
}

// createProjectFile copies one top-level template next to the project
// package and renders it.
func (g *Generator) createProjectFile(project, fname string) error {
	target := strings.TrimSuffix(fname, g.manifest.Marker)
	if err := g.ValidateExists("", target); err != nil {
		return err
	}
	if err := g.ValidateExists("", fname); err != nil {
		return err
	}

	g.creating(target)
	if err := copyFile(g.tmpl, templatePath(fname), g.fs, fname); err != nil {
		return err
	}

	vars := Vars{
		"package":       target,
		"separator":     BuildLineSeparator(project),
		"project":       project,
		"project_upper": strings.ToUpper(project),
		"year":          g.year,
		"author":        g.author,
	}
	path, err := g.RenderTemplate(fname, vars)
	if err != nil {
		return err
	}

	if g.manifest.IsExecutable(target) {
		if err := platform.Chmod(g.fs, path, 0755); err != nil {
			return fmt.Errorf("making %s executable: %w", path, err)
		}
	}
	return nil
}

func (g *Generator) creating(name string) {
	ui.Success(g.out, "Creating %s to %s", name, g.Root())
}
