package model

// ReleaseConfig is the optional release configuration that overrides the
// volatile axes of the build matrix. Omitted fields keep the built-in
// defaults; normalization validates the values and produces the final
// Axes.
type ReleaseConfig struct {
	PythonVersions []string            `yaml:"python_versions,omitempty" json:"python_versions,omitempty"`
	CuVersions     map[string][]string `yaml:"cu_versions,omitempty" json:"cu_versions,omitempty"`
}
