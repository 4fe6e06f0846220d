package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/osalpekar/vision/internal/expand"
	"github.com/osalpekar/vision/internal/model"
	"github.com/osalpekar/vision/internal/planner"
)

// TemplateRenderer expands a CircleCI config template. Templates call
// build_workflows with "key=value" settings to splice a generated job
// list into the document.
type TemplateRenderer struct {
	axes     model.Axes
	renderer *Renderer
}

// NewTemplateRenderer creates a template renderer over the given axes
func NewTemplateRenderer(axes model.Axes) *TemplateRenderer {
	return &TemplateRenderer{
		axes:     axes,
		renderer: NewRenderer(),
	}
}

// RenderTemplate parses and executes template text
func (tr *TemplateRenderer) RenderTemplate(name, text string) ([]byte, error) {
	tmpl, err := template.New(name).Funcs(template.FuncMap{
		"build_workflows": tr.buildWorkflows,
	}).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("invalid template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, nil); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// buildWorkflows expands the matrix with the given settings and returns
// the rendered job list, reindented to the call site's column.
func (tr *TemplateRenderer) buildWorkflows(args ...string) (string, error) {
	opts, err := parseOptions(args)
	if err != nil {
		return "", err
	}

	combinations := expand.NewExpander(tr.axes, opts).Expand()
	workflows := planner.NewWorkflowPlanner(opts).PlanWorkflows(combinations)

	if err := planner.NewWorkflowGraph(workflows).Verify(); err != nil {
		return "", err
	}

	data, err := tr.renderer.RenderYAML(workflows)
	if err != nil {
		return "", err
	}

	return tr.renderer.Reindent(opts.Indentation, data), nil
}

// parseOptions interprets the "key=value" arguments of a template call
func parseOptions(args []string) (model.Options, error) {
	opts := model.Options{Indentation: model.DefaultIndentation}

	for _, arg := range args {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 {
			return opts, fmt.Errorf("malformed option %q, want key=value", arg)
		}
		key, value := parts[0], parts[1]

		switch key {
		case "prefix":
			opts.Prefix = value
		case "filter_branch":
			opts.FilterBranch = value
		case "upload":
			upload, err := strconv.ParseBool(value)
			if err != nil {
				return opts, fmt.Errorf("invalid upload value %q", value)
			}
			opts.Upload = upload
		case "smoke_tests":
			smokeTests, err := strconv.ParseBool(value)
			if err != nil {
				return opts, fmt.Errorf("invalid smoke_tests value %q", value)
			}
			opts.SmokeTests = smokeTests
		case "indentation":
			indentation, err := strconv.Atoi(value)
			if err != nil || indentation < 0 {
				return opts, fmt.Errorf("invalid indentation value %q", value)
			}
			opts.Indentation = indentation
		case "windows_latest_only":
			latestOnly, err := strconv.ParseBool(value)
			if err != nil {
				return opts, fmt.Errorf("invalid windows_latest_only value %q", value)
			}
			opts.WindowsLatestOnly = latestOnly
		default:
			return opts, fmt.Errorf("unknown option %q", key)
		}
	}

	return opts, nil
}
