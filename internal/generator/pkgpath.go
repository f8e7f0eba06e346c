package generator

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gene-labs/gene/internal/manifest"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BuildPackagePath derives the dotted package path of file, which lives in
// directory root below the project base directory:
//
//	BuildPackagePath("foo", "foo", "foo", "app.py_tmpl")              // foo.app
//	BuildPackagePath("foo", "foo/views/home", "foo", "index.py_tmpl") // foo.views.home.index
func BuildPackagePath(project, root, base, file string) string {
	return buildPackagePath(project, root, base, file, manifest.DefaultMarker, manifest.DefaultExtension)
}

func buildPackagePath(project, root, base, file, marker, ext string) string {
	rel := strings.TrimPrefix(filepath.ToSlash(root), filepath.ToSlash(base))

	pkg := project + "." + rel
	pkg = strings.TrimRight(pkg, ".")
	pkg = pkg + "." + file
	pkg = strings.ReplaceAll(pkg, "/", ".")
	for strings.Contains(pkg, "..") {
		pkg = strings.ReplaceAll(pkg, "..", ".")
	}

	pkg = strings.TrimSuffix(pkg, marker)
	pkg = strings.TrimSuffix(pkg, ext)
	pkg = strings.ReplaceAll(pkg, ".__init__", "")
	return pkg
}

// BuildLineSeparator returns a reST title underline as long as s.
func BuildLineSeparator(s string) string {
	return strings.Repeat("~", utf8.RuneCountInString(s))
}

// className title-cases every run of letters in name: "user_profile" becomes
// "User_Profile".
func className(name string) string {
	var b strings.Builder
	start := 0
	runes := []rune(name)
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && unicode.IsLetter(runes[i]) == unicode.IsLetter(runes[start]) {
			continue
		}
		run := string(runes[start:i])
		if unicode.IsLetter(runes[start]) {
			run = cases.Title(language.Und).String(run)
		}
		b.WriteString(run)
		start = i
	}
	return b.String()
}
