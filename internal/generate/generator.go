package generate

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/osalpekar/vision/internal/loader"
	"github.com/osalpekar/vision/internal/model"
	"github.com/osalpekar/vision/internal/normalize"
	"github.com/osalpekar/vision/internal/render"
)

// Generator renders the config template into the committed document.
type Generator struct {
	Dir      string // directory holding the template, discovered when empty
	Template string // template file name inside the directory
	Output   string // output file name inside the directory
	Config   string // explicit release config path, discovered when empty
	Stdout   io.Writer
	DryRun   bool
}

func NewGenerator(dir, configPath string, stdout io.Writer, dryRun bool) *Generator {
	return &Generator{
		Dir:      dir,
		Template: loader.TemplateName,
		Output:   loader.OutputName,
		Config:   configPath,
		Stdout:   stdout,
		DryRun:   dryRun,
	}
}

// Run renders the template and writes the output document next to it.
// It returns the written path; dry runs print the document to Stdout
// instead and return "".
func (g *Generator) Run() (string, error) {
	dir, err := loader.DiscoverDir(g.Dir, g.Template)
	if err != nil {
		return "", err
	}

	document, err := g.render(dir)
	if err != nil {
		return "", err
	}

	if g.DryRun {
		_, err := g.Stdout.Write(document)
		return "", err
	}

	outputPath := filepath.Join(dir, g.Output)
	if err := render.NewRenderer().WriteDocument(outputPath, document); err != nil {
		return "", err
	}

	return outputPath, nil
}

// Check renders the template in memory and compares the result against
// the committed document byte for byte.
func (g *Generator) Check() error {
	dir, err := loader.DiscoverDir(g.Dir, g.Template)
	if err != nil {
		return err
	}

	document, err := g.render(dir)
	if err != nil {
		return err
	}

	outputPath := filepath.Join(dir, g.Output)
	committed, err := os.ReadFile(outputPath)
	if err != nil {
		return fmt.Errorf("failed to read committed config: %w", err)
	}

	if !bytes.Equal(committed, document) {
		return fmt.Errorf("%s does not match its template, rerun regenerate", outputPath)
	}

	return nil
}

func (g *Generator) render(dir string) ([]byte, error) {
	axes, err := g.loadAxes(dir)
	if err != nil {
		return nil, err
	}

	text, err := loader.LoadTemplate(filepath.Join(dir, g.Template))
	if err != nil {
		return nil, err
	}

	return render.NewTemplateRenderer(axes).RenderTemplate(g.Template, string(text))
}

// loadAxes resolves the release config into expansion axes. A missing
// config keeps the defaults.
func (g *Generator) loadAxes(dir string) (model.Axes, error) {
	path := g.Config
	if path == "" {
		path = loader.FindReleaseConfig(dir)
	}
	if path == "" {
		return model.DefaultAxes(), nil
	}

	config, err := loader.LoadReleaseConfig(path)
	if err != nil {
		return model.Axes{}, err
	}

	return normalize.NormalizeAxes(config)
}
