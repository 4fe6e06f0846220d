package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osalpekar/vision/internal/expand"
	"github.com/osalpekar/vision/internal/loader"
	"github.com/osalpekar/vision/internal/model"
	"github.com/osalpekar/vision/internal/normalize"
	"github.com/osalpekar/vision/internal/planner"
	"github.com/osalpekar/vision/internal/render"
	"github.com/osalpekar/vision/internal/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the release config and the generated workflows",
	Long:  "Check the release config and the workflow documents the axes expand into against the embedded JSON schemas.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate()
	},
}

func registerValidateCommand(root *cobra.Command) {
	root.AddCommand(validateCmd)
}

func runValidate() error {
	validator, err := schema.NewValidator()
	if err != nil {
		return err
	}

	axes, err := validateReleaseConfig(validator)
	if err != nil {
		return err
	}

	return validateWorkflows(validator, axes)
}

func validateReleaseConfig(validator *schema.Validator) (model.Axes, error) {
	path := resolveConfigPath()
	if path == "" {
		fmt.Println("□ No release config found, validating the default axes")
		return model.DefaultAxes(), nil
	}

	fmt.Printf("□ Validating %s...\n", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Axes{}, fmt.Errorf("failed to read release config: %w", err)
	}
	if err := validator.ValidateReleaseConfig(data); err != nil {
		return model.Axes{}, err
	}

	config, err := loader.LoadReleaseConfig(path)
	if err != nil {
		return model.Axes{}, err
	}
	axes, err := normalize.NormalizeAxes(config)
	if err != nil {
		return model.Axes{}, err
	}

	fmt.Println("✓ Release config is valid")
	return axes, nil
}

func validateWorkflows(validator *schema.Validator, axes model.Axes) error {
	fmt.Println("□ Validating generated workflows...")

	// The nightly matrix exercises every job shape: builds, uploads and
	// smoke tests.
	opts := model.Options{
		Prefix:       "nightly_",
		FilterBranch: "nightly",
		Upload:       true,
		SmokeTests:   true,
	}

	combinations := expand.NewExpander(axes, opts).Expand()
	workflows := planner.NewWorkflowPlanner(opts).PlanWorkflows(combinations)

	if err := planner.NewWorkflowGraph(workflows).Verify(); err != nil {
		return err
	}

	document, err := render.NewRenderer().RenderYAML(workflows)
	if err != nil {
		return err
	}
	if err := validator.ValidateWorkflows(document); err != nil {
		return err
	}

	fmt.Printf("✓ %d workflows validate\n", len(workflows))
	return nil
}
