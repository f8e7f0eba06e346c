// Package generator builds Flask project skeletons from a template set and
// adds single view, REST, entity and test files to an existing project.
//
// Templates are plain text files whose names end with a marker suffix
// (default "_tmpl"). Rendering renames the file to drop the marker, then
// replaces every literal {{key}} token with its value. There is no other
// template syntax.
//
// Every create operation validates its name and checks that the target does
// not exist before touching the filesystem. Nothing is rolled back when a
// later step fails.
package generator
