package generator

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/google/go-cmp/cmp"
)

func TestCreateProject(t *testing.T) {
	dir := t.TempDir()
	g, out := newTestGenerator(t, osfs.New(dir))

	if err := g.CreateProject("testproject"); err != nil {
		t.Fatalf("CreateProject() error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}
	sort.Strings(got)

	want := []string{
		"LICENSE.txt", "MANIFEST.in", "README.rst", "data", "docs", "logs",
		"manage.py", "setup.py", "testproject", "tox.ini", "var",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("top-level entries mismatch (-want +got):\n%s", diff)
	}

	if _, err := os.Stat(filepath.Join(dir, "var", "run")); err != nil {
		t.Errorf("var/run not created: %v", err)
	}

	assertContains(t, out.String(), "Creating testproject to "+dir)
	assertContains(t, out.String(), "Create project success.")
	assertContains(t, out.String(), "pip install -r data/requirement.txt")
}

func TestCreateProjectRendersEverything(t *testing.T) {
	dir := t.TempDir()
	g, _ := newTestGenerator(t, osfs.New(dir))

	if err := g.CreateProject("testproject"); err != nil {
		t.Fatalf("CreateProject() error: %v", err)
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if strings.HasSuffix(path, "_tmpl") {
			t.Errorf("unrendered template left behind: %s", path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if strings.Contains(string(data), "{{") {
			t.Errorf("placeholder left in %s", path)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	setup, err := os.ReadFile(filepath.Join(dir, "setup.py"))
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, string(setup), "name='testproject'")
	assertContains(t, string(setup), "author='test user'")
	assertContains(t, string(setup), "(c) 2014 test user")

	config, err := os.ReadFile(filepath.Join(dir, "testproject", "configs", "default.py"))
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, string(config), dir+"/logs/testproject.log")

	app, err := os.ReadFile(filepath.Join(dir, "testproject", "app.py"))
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, string(app), "TESTPROJECT_SETTINGS")
}

func TestCreateProjectHeader(t *testing.T) {
	dir := t.TempDir()
	g, _ := newTestGenerator(t, osfs.New(dir))

	if err := g.CreateProject("testproject"); err != nil {
		t.Fatalf("CreateProject() error: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "testproject", "views", "frontend", "index.py"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if len(lines) < 4 {
		t.Fatalf("index.py too short: %v", lines)
	}
	if lines[2] != "testproject.views.frontend.index" {
		t.Errorf("line 3 = %q, want package path", lines[2])
	}
	if lines[3] != strings.Repeat("~", 32) {
		t.Errorf("line 4 = %q, want 32 tildes", lines[3])
	}
}

func TestCreateProjectExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no permission bits on windows")
	}
	dir := t.TempDir()
	fsys := osfs.New(dir)
	if _, ok := fsys.(billy.Change); !ok {
		t.Skip("filesystem does not support chmod")
	}
	g, _ := newTestGenerator(t, fsys)

	if err := g.CreateProject("testproject"); err != nil {
		t.Fatalf("CreateProject() error: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "manage.py"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0100 == 0 {
		t.Errorf("manage.py mode = %o, want executable", info.Mode().Perm())
	}
}

func TestCreateProjectTwiceFails(t *testing.T) {
	fsys := memfs.New()
	g, out := newTestGenerator(t, fsys)

	if err := g.CreateProject("testproject"); err != nil {
		t.Fatalf("first CreateProject() error: %v", err)
	}
	writeFixture(t, fsys, "README.rst", "edited")
	out.Reset()

	err := g.CreateProject("testproject")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if got := readGenerated(t, fsys, "README.rst"); got != "edited" {
		t.Errorf("README.rst was rewritten: %q", got)
	}
	if out.Len() != 0 {
		t.Errorf("expected no progress output, got %q", out.String())
	}
}

func TestCreateProjectExistingTopLevelFileFails(t *testing.T) {
	fsys := memfs.New()
	g, _ := newTestGenerator(t, fsys)
	writeFixture(t, fsys, "setup.py", "mine")

	err := g.CreateProject("testproject")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if got := readGenerated(t, fsys, "setup.py"); got != "mine" {
		t.Errorf("setup.py overwritten: %q", got)
	}
	// No rollback: what was created before the failure stays.
	assertExists(t, fsys, "testproject/app.py")
}

func TestCreateProjectSkipsExistingAuxDirs(t *testing.T) {
	fsys := memfs.New()
	g, out := newTestGenerator(t, fsys)
	writeFixture(t, fsys, "docs/index.rst", "keep")

	if err := g.CreateProject("testproject"); err != nil {
		t.Fatalf("CreateProject() error: %v", err)
	}
	if got := readGenerated(t, fsys, "docs/index.rst"); got != "keep" {
		t.Errorf("docs/index.rst changed: %q", got)
	}
	if strings.Contains(out.String(), "Creating docs") {
		t.Error("existing docs directory should be skipped silently")
	}
	assertExists(t, fsys, "logs")
	assertExists(t, fsys, "var/run")
}

func TestCreateProjectExistingDataFails(t *testing.T) {
	fsys := memfs.New()
	g, _ := newTestGenerator(t, fsys)
	writeFixture(t, fsys, "data/mine.db", "x")

	err := g.CreateProject("testproject")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	assertNotExists(t, fsys, "data/requirement.txt")
	assertExists(t, fsys, "testproject")
	assertExists(t, fsys, "docs")
}

func TestCreateProjectInvalidName(t *testing.T) {
	fsys := memfs.New()
	g, _ := newTestGenerator(t, fsys)

	for _, name := range []string{"", "1project", "my project"} {
		if err := g.CreateProject(name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("CreateProject(%q) = %v, want ErrInvalidName", name, err)
		}
	}
	assertNotExists(t, fsys, "docs")
}

func TestNewDefaults(t *testing.T) {
	var buf bytes.Buffer
	g, err := New(memfs.New(), Options{Out: &buf})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if g.Year() == "" {
		t.Error("Year should default to the current year")
	}
	if g.Manifest().Name != "flask" {
		t.Errorf("default template set = %q, want flask", g.Manifest().Name)
	}
}
