package generator

import (
	"regexp"
)

var (
	namePattern   = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_/\-]*$`)
	leadingLetter = regexp.MustCompile(`^[a-zA-Z]`)
)

// ValidateName checks that name starts with a letter and contains only
// letters, digits, "_", "-" and "/".
func ValidateName(name string) error {
	if namePattern.MatchString(name) {
		return nil
	}

	reason := "use only numbers, letters and dashes"
	if !leadingLetter.MatchString(name) {
		reason = "make sure the name begins with a letter"
	}
	return &Error{Kind: InvalidName, Name: name, Reason: reason}
}

// ValidateExists fails with AlreadyExists if dir/name is present on the
// generator's filesystem. It never modifies anything.
func (g *Generator) ValidateExists(dir, name string) error {
	if g.exists(g.fs.Join(dir, name)) {
		return &Error{Kind: AlreadyExists, Name: name, Dir: g.displayPath(dir)}
	}
	return nil
}

func (g *Generator) exists(path string) bool {
	_, err := g.fs.Stat(path)
	return err == nil
}
