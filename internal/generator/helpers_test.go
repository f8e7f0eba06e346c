package generator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

func newTestGenerator(t *testing.T, fsys billy.Filesystem) (*Generator, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	g, err := New(fsys, Options{
		Author:  "test user",
		Year:    "2014",
		Version: "dev",
		Out:     &out,
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return g, &out
}

func readGenerated(t *testing.T, fsys billy.Filesystem, path string) string {
	t.Helper()
	data, err := util.ReadFile(fsys, path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func writeFixture(t *testing.T, fsys billy.Filesystem, path, content string) {
	t.Helper()
	if err := util.WriteFile(fsys, path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// newProject stands in for a generated project: a package directory with
// its init file.
func newProject(t *testing.T, fsys billy.Filesystem, name string) {
	t.Helper()
	writeFixture(t, fsys, name+"/__init__.py", "")
}

func assertExists(t *testing.T, fsys billy.Filesystem, path string) {
	t.Helper()
	if _, err := fsys.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

func assertNotExists(t *testing.T, fsys billy.Filesystem, path string) {
	t.Helper()
	if _, err := fsys.Stat(path); err == nil {
		t.Errorf("expected %s not to exist", path)
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}
