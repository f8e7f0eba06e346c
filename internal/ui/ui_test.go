package ui

import (
	"bytes"
	"testing"
)

func TestColors(t *testing.T) {
	old := NoColor
	NoColor = false
	t.Cleanup(func() { NoColor = old })

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"red", Red("x"), "\033[31mx\033[0m"},
		{"green", Green("x"), "\033[32mx\033[0m"},
		{"grey", Grey("x"), "\033[37mx\033[0m"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestNoColor(t *testing.T) {
	old := NoColor
	NoColor = true
	t.Cleanup(func() { NoColor = old })

	var buf bytes.Buffer
	Success(&buf, "Creating %s to %s", "docs", "/tmp")
	if buf.String() != "Creating docs to /tmp\n" {
		t.Errorf("Success wrote %q", buf.String())
	}
}
