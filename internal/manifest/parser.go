package manifest

import (
	"fmt"
	"io/fs"

	"go.yaml.in/yaml/v3"
)

// Load reads gene.yaml from the root of a template set, validates it
// against the manifest schema, and returns it with defaults applied.
func Load(fsys fs.FS) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, FileName)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &InvalidError{Issues: result.Issues}
	}

	return Parse(data)
}

// Parse unmarshals manifest YAML without schema validation and applies defaults.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	m.applyDefaults()
	return &m, nil
}

// InvalidError reports schema violations found in a manifest.
type InvalidError struct {
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	msg := FileName + " is invalid"
	for _, issue := range e.Issues {
		if issue.Path != "" {
			msg += fmt.Sprintf("\n  %s: %s", issue.Path, issue.Message)
		} else {
			msg += "\n  " + issue.Message
		}
	}
	return msg
}
