package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osalpekar/vision/internal/model"
)

// Renderer materializes a planned workflow sequence into YAML
type Renderer struct{}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderYAML renders the workflow list as a two-space indented block
// sequence, ending with a newline.
func (r *Renderer) RenderYAML(workflows []model.Workflow) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(workflows); err != nil {
		return nil, fmt.Errorf("failed to render workflows: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to render workflows: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderJSON renders a value as indented JSON for inspection output
func (r *Renderer) RenderJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// Reindent joins the lines of a rendered block so it can be spliced into
// a template at the given column. The first line keeps the indentation of
// the call site, so it carries no prefix of its own.
func (r *Renderer) Reindent(indentation int, data []byte) string {
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return ""
	}

	separator := "\n" + strings.Repeat(" ", indentation)
	return strings.Join(strings.Split(text, "\n"), separator)
}

// WriteDocument writes a rendered document to path, creating parent
// directories as needed.
func (r *Renderer) WriteDocument(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write document to %s: %w", path, err)
	}

	return nil
}
