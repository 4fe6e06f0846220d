package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/osalpekar/vision/internal/model"
)

// File names the generator works with inside a config directory.
const (
	TemplateName      = "config.yml.in"
	OutputName        = "config.yml"
	ReleaseConfigName = "matrix.yml"
)

// LoadReleaseConfig loads and parses a release configuration YAML file
func LoadReleaseConfig(path string) (*model.ReleaseConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read release config: %w", err)
	}

	var config model.ReleaseConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse release config YAML: %w", err)
	}

	return &config, nil
}

// FindReleaseConfig returns the release config path inside dir, or ""
// when the directory carries none.
func FindReleaseConfig(dir string) string {
	path := filepath.Join(dir, ReleaseConfigName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// LoadTemplate reads the config template text
func LoadTemplate(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	return data, nil
}

// DiscoverDir locates the directory holding the config template. An
// explicit dir wins; otherwise the working directory, its .circleci
// subdirectory, and the executable's directory are tried in order.
func DiscoverDir(explicit, template string) (string, error) {
	if explicit != "" {
		if !hasTemplate(explicit, template) {
			return "", fmt.Errorf("no %s in %s", template, explicit)
		}
		return explicit, nil
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, cwd, filepath.Join(cwd, ".circleci"))
	}
	if execPath, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Dir(execPath))
	}

	for _, dir := range candidates {
		if hasTemplate(dir, template) {
			return dir, nil
		}
	}

	return "", fmt.Errorf("no %s found (searched working directory, .circleci, executable directory)", template)
}

// hasTemplate reports whether dir contains the config template
func hasTemplate(dir, template string) bool {
	_, err := os.Stat(filepath.Join(dir, template))
	return err == nil
}
