package manifest

// FileName is the manifest file expected at the root of a template set.
const FileName = "gene.yaml"

// Defaults applied by Load when a manifest leaves a field empty.
const (
	DefaultMarker     = "_tmpl"
	DefaultExtension  = ".py"
	DefaultInitStub   = "__init__.py"
	DefaultTestPrefix = "test_"
	DefaultAppDir     = "app"
	DefaultDataDir    = "data"
)

// DefaultAuxDirs are created next to the project package when a manifest
// does not list its own.
var DefaultAuxDirs = []string{"docs", "logs", "var/run"}

// Manifest describes a template set.
type Manifest struct {
	Name        string `yaml:"name" json:"name"`
	Version     string `yaml:"version" json:"version"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Requires is a semver constraint on the generator version, e.g. ">= 0.3.0".
	Requires string `yaml:"requires,omitempty" json:"requires,omitempty"`

	Marker     string `yaml:"marker,omitempty" json:"marker,omitempty"`
	Extension  string `yaml:"extension,omitempty" json:"extension,omitempty"`
	InitStub   string `yaml:"init_stub,omitempty" json:"init_stub,omitempty"`
	TestPrefix string `yaml:"test_prefix,omitempty" json:"test_prefix,omitempty"`

	AppDir       string   `yaml:"app_dir,omitempty" json:"app_dir,omitempty"`
	DataDir      string   `yaml:"data_dir,omitempty" json:"data_dir,omitempty"`
	ProjectFiles []string `yaml:"project_files" json:"project_files"`
	AuxDirs      []string `yaml:"aux_dirs,omitempty" json:"aux_dirs,omitempty"`
	Executables  []string `yaml:"executables,omitempty" json:"executables,omitempty"`

	// Categories maps a category directory (views, models, tests) to its
	// default template file.
	Categories map[string]string `yaml:"categories" json:"categories"`
	// Stubs maps an alternate stub kind (rest, entity) to its template file.
	Stubs map[string]string `yaml:"stubs,omitempty" json:"stubs,omitempty"`

	NextSteps string `yaml:"next_steps,omitempty" json:"next_steps,omitempty"`
}

// applyDefaults fills empty optional fields.
func (m *Manifest) applyDefaults() {
	if m.Marker == "" {
		m.Marker = DefaultMarker
	}
	if m.Extension == "" {
		m.Extension = DefaultExtension
	}
	if m.InitStub == "" {
		m.InitStub = DefaultInitStub
	}
	if m.TestPrefix == "" {
		m.TestPrefix = DefaultTestPrefix
	}
	if m.AppDir == "" {
		m.AppDir = DefaultAppDir
	}
	if m.DataDir == "" {
		m.DataDir = DefaultDataDir
	}
	if len(m.AuxDirs) == 0 {
		m.AuxDirs = append([]string(nil), DefaultAuxDirs...)
	}
	if m.Stubs == nil {
		m.Stubs = map[string]string{}
	}
}

// CategoryTemplate returns the default template for a category.
func (m *Manifest) CategoryTemplate(category string) (string, bool) {
	t, ok := m.Categories[category]
	return t, ok
}

// StubTemplate returns the template for an alternate stub kind.
func (m *Manifest) StubTemplate(kind string) (string, bool) {
	t, ok := m.Stubs[kind]
	return t, ok
}

// IsExecutable reports whether a rendered top-level file should be made executable.
func (m *Manifest) IsExecutable(name string) bool {
	for _, e := range m.Executables {
		if e == name {
			return true
		}
	}
	return false
}
