package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osalpekar/vision/internal/expand"
	"github.com/osalpekar/vision/internal/model"
	"github.com/osalpekar/vision/internal/planner"
	"github.com/osalpekar/vision/internal/render"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Inspect the expanded build matrix",
	Long:  "List the package type and OS groups the axes expand into. Use --long for per-build detail, --view for the planned workflow graph, --format json for machine-readable output.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showMatrix()
	},
}

func registerMatrixCommand(root *cobra.Command) {
	root.AddCommand(matrixCmd)

	matrixCmd.Flags().BoolVarP(&longFormat, "long", "l", false, "Show per-build detail")
	matrixCmd.Flags().StringVarP(&viewMode, "view", "v", "", "View planned workflows (dag/dependencies)")
	matrixCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format (text/json)")
	matrixCmd.Flags().StringVar(&matrixPrefix, "prefix", "", "Workflow name prefix")
	matrixCmd.Flags().StringVar(&filterBranch, "filter-branch", "", "Branch filter applied to every build")
	matrixCmd.Flags().BoolVar(&withUpload, "upload", false, "Plan upload jobs")
	matrixCmd.Flags().BoolVar(&withSmokeTests, "smoke-tests", false, "Plan smoke test jobs")
	matrixCmd.Flags().BoolVar(&windowsLatestOnly, "windows-latest-only", false, "Restrict off-boundary Windows builds to main")
}

func showMatrix() error {
	axes, err := resolveAxes()
	if err != nil {
		return err
	}

	opts := model.Options{
		Prefix:            matrixPrefix,
		FilterBranch:      filterBranch,
		Upload:            withUpload,
		SmokeTests:        withSmokeTests,
		WindowsLatestOnly: windowsLatestOnly,
	}

	if viewMode != "" {
		return viewWorkflows(axes, opts)
	}

	analyzer := expand.NewMatrixAnalyzer(axes, opts)
	combinations := analyzer.AnalyzeAll()

	if outputFormat == "json" {
		infos := make([]CombinationInfo, 0, len(combinations))
		for _, combo := range combinations {
			infos = append(infos, BuildCombinationInfo(matrixPrefix, combo))
		}

		data, err := render.NewRenderer().RenderJSON(infos)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if longFormat {
		for _, combo := range combinations {
			PrintLongFormat(BuildCombinationInfo(matrixPrefix, combo))
		}
		fmt.Printf("\nSummary: %d builds\n", len(combinations))
		return nil
	}

	fmt.Println("Build matrix:")
	for _, group := range analyzer.Groups() {
		fmt.Printf("  %s/%s: %d builds (python %s; compute %s)\n",
			group.PackageType, group.OSType, len(group.Combinations),
			strings.Join(group.PythonVersions, ", "),
			strings.Join(group.CuVersions, ", "))
	}
	fmt.Println("\nRun 'regenerate matrix --long' for per-build detail")
	return nil
}

func viewWorkflows(axes model.Axes, opts model.Options) error {
	combinations := expand.NewExpander(axes, opts).Expand()
	workflows := planner.NewWorkflowPlanner(opts).PlanWorkflows(combinations)

	if err := planner.NewWorkflowGraph(workflows).Verify(); err != nil {
		return err
	}

	viewer := render.NewMatrixViewer(workflows)
	switch viewMode {
	case "dag":
		fmt.Print(viewer.ViewDAG())
	case "dependencies":
		fmt.Print(viewer.ViewDependencies())
	default:
		return fmt.Errorf("unknown view %q (expected dag or dependencies)", viewMode)
	}
	return nil
}
