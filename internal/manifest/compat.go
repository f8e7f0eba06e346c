package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckCompatible reports an error when the template set requires a
// generator version that does not satisfy its "requires" constraint.
// Development builds ("dev" or any non-semver version) are always accepted.
func (m *Manifest) CheckCompatible(generatorVersion string) error {
	if m.Requires == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(m.Requires)
	if err != nil {
		return fmt.Errorf("parsing requires constraint %q: %w", m.Requires, err)
	}

	v, err := semver.NewVersion(strings.TrimPrefix(generatorVersion, "v"))
	if err != nil {
		return nil
	}

	if !constraint.Check(v) {
		return fmt.Errorf("template set %s requires generator %s, running %s", m.Name, m.Requires, generatorVersion)
	}
	return nil
}
