package generator

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/gene-labs/gene/internal/ui"
)

// File categories. Each is a subdirectory of the project package.
const (
	CategoryViews  = "views"
	CategoryModels = "models"
	CategoryTests  = "tests"
)

// Alternate stub kinds looked up in the manifest's stubs map.
const (
	StubRest   = "rest"
	StubEntity = "entity"
)

// CreateFile adds a file to category inside project, which must already
// exist in the generator root. file may contain
// slashes ("frontend/sample"); missing directories along the way are created
// and each gets a package init stub. src names an alternate template in the
// template set; empty means the category's default template. It returns the
// path of the created file.
func (g *Generator) CreateFile(project, file, category, src string) (string, error) {
	m := g.manifest

	if err := ValidateName(file); err != nil {
		return "", err
	}

	items := strings.Split(file, "/")
	for _, item := range items {
		if item == "" {
			return "", &Error{Kind: InvalidName, Name: file, Reason: "do not use empty path segments"}
		}
	}

	if err := g.requireProject(project); err != nil {
		return "", err
	}

	leaf := items[len(items)-1]
	name := leaf
	if category == CategoryTests {
		name = m.TestPrefix + leaf
	}
	dirName := strings.Join(items[:len(items)-1], "/")

	if src == "" {
		tmpl, ok := m.CategoryTemplate(category)
		if !ok {
			return "", fmt.Errorf("unknown category %q", category)
		}
		src = tmpl
	}
	for _, t := range []string{src, m.InitStub} {
		if _, err := fs.Stat(g.tmpl, templatePath(t)); err != nil {
			return "", &Error{Kind: NotFound, Name: t, Dir: "template set " + m.Name}
		}
	}

	categoryDir := g.fs.Join(project, category)
	targetDir := categoryDir
	if dirName != "" {
		targetDir = g.fs.Join(categoryDir, dirName)
	}
	if err := g.ValidateExists(targetDir, name+m.Extension); err != nil {
		return "", err
	}

	// Nothing has been written up to here.
	if err := g.ensurePackageDirs(categoryDir, items[:len(items)-1]); err != nil {
		return "", err
	}

	target := g.fs.Join(targetDir, name+m.Extension)
	ui.Success(g.out, "Creating %s", g.displayPath(target))
	if err := copyFile(g.tmpl, templatePath(src), g.fs, target); err != nil {
		return "", err
	}

	module := strings.ReplaceAll(dirName, "/", ".")
	pkg := strings.TrimRight(strings.ReplaceAll(project+"/"+category+"/"+dirName, "/", "."), ".")
	vars := Vars{
		"package":   pkg,
		"name":      name,
		"leaf":      leaf,
		"klass":     className(leaf),
		"separator": BuildLineSeparator(pkg + "." + name),
		"project":   project,
		"year":      g.year,
		"dir":       dirName,
		"author":    g.author,
		"module":    module,
		"target":    dottedPath(project, module, leaf),
		"page":      path.Join(dirName, name),
	}
	return g.RenderTemplate(target, vars)
}

// requireProject checks that project is a valid name and already exists in
// the generator root.
func (g *Generator) requireProject(project string) error {
	if err := ValidateName(project); err != nil {
		return err
	}
	if !g.exists(project) {
		return &Error{Kind: NotFound, Name: project, Dir: g.displayPath("")}
	}
	return nil
}

// dottedPath joins the non-empty parts with dots.
func dottedPath(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ".")
}

// ensurePackageDirs creates categoryDir and each nested directory in dirs
// that does not exist yet, dropping an init stub into every new directory.
func (g *Generator) ensurePackageDirs(categoryDir string, dirs []string) error {
	dir := categoryDir
	for i := -1; i < len(dirs); i++ {
		if i >= 0 {
			dir = g.fs.Join(dir, dirs[i])
		}
		if g.exists(dir) {
			continue
		}
		if err := g.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		stub := g.manifest.InitStub
		if err := copyFile(g.tmpl, templatePath(stub), g.fs, g.fs.Join(dir, stub)); err != nil {
			return err
		}
	}
	return nil
}

// CreateView adds a plain view and prints the routing reminder.
func (g *Generator) CreateView(project, file string) (string, error) {
	created, err := g.CreateFile(project, file, CategoryViews, "")
	if err != nil {
		return "", err
	}
	g.routingReminder(project, file)
	return created, nil
}

// CreateRest adds a RESTful view stub (index, show, create, update, delete)
// and prints the routing reminder.
func (g *Generator) CreateRest(project, file string) (string, error) {
	src, err := g.stub(StubRest)
	if err != nil {
		return "", err
	}
	created, err := g.CreateFile(project, file, CategoryViews, src)
	if err != nil {
		return "", err
	}
	g.routingReminder(project, file)
	return created, nil
}

// CreateEntity adds a model entity stub.
func (g *Generator) CreateEntity(project, file string) (string, error) {
	src, err := g.stub(StubEntity)
	if err != nil {
		return "", err
	}
	return g.CreateFile(project, file, CategoryModels, src)
}

// CreateTest adds a test stub; the file name gets the test prefix.
func (g *Generator) CreateTest(project, file string) (string, error) {
	return g.CreateFile(project, file, CategoryTests, "")
}

func (g *Generator) stub(kind string) (string, error) {
	src, ok := g.manifest.StubTemplate(kind)
	if !ok {
		return "", fmt.Errorf("template set %s has no %q stub", g.manifest.Name, kind)
	}
	return src, nil
}

func (g *Generator) routingReminder(project, file string) {
	routing := strings.ReplaceAll(project+"."+CategoryViews+"."+file, "/", ".")
	rule := strings.Repeat("-", 80)
	ui.Success(g.out, "%s", rule)
	ui.Success(g.out, "Add routing `%s` to views/__init__.py", routing)
	ui.Success(g.out, "%s", rule)
}
