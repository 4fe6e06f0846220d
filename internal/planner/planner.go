package planner

import (
	"fmt"

	"github.com/osalpekar/vision/internal/model"
)

// WorkflowPlanner turns surviving matrix combinations into the ordered
// workflow job sequence
type WorkflowPlanner struct {
	opts model.Options
}

// NewWorkflowPlanner creates a new workflow planner
func NewWorkflowPlanner(opts model.Options) *WorkflowPlanner {
	return &WorkflowPlanner{
		opts: opts,
	}
}

// PlanWorkflows emits the job entries for each combination, keeping the
// expansion order. Dependent jobs directly follow the build job they
// require.
func (wp *WorkflowPlanner) PlanWorkflows(combinations []model.Combination) []model.Workflow {
	workflows := make([]model.Workflow, 0, len(combinations))

	for _, combo := range combinations {
		workflows = append(workflows, wp.planPair(combo)...)
	}

	return workflows
}

// planPair emits the build job for one combination plus its upload and
// smoke-test jobs where those are enabled.
func (wp *WorkflowPlanner) planPair(combo model.Combination) []model.Workflow {
	w := make([]model.Workflow, 0, 2)

	baseName := BaseWorkflowName(wp.opts.Prefix, combo)
	w = append(w, wp.baseWorkflow(baseName, combo))

	upload := wp.opts.Upload
	// The py3.8 Linux wheel kept around for the docs build must not publish.
	if combo.OSType == model.OSLinux && combo.PackageType == model.PackageWheel {
		upload = false
	}

	if upload {
		w = append(w, wp.uploadWorkflow(baseName, combo))

		if wp.opts.SmokeTests && combo.FilterBranch == "nightly" &&
			(combo.OSType == model.OSLinux || combo.OSType == model.OSWindows) {
			w = append(w, wp.smokeTestWorkflow(baseName, combo))
		}
	}

	return w
}

// BaseWorkflowName derives the unique build-job name for a combination.
func BaseWorkflowName(prefix string, combo model.Combination) string {
	unicodeSuffix := ""
	if combo.Unicode {
		unicodeSuffix = "u"
	}

	return fmt.Sprintf("%sbinary_%s_%s_py%s%s_%s",
		prefix, combo.OSType, combo.PackageType, combo.PythonVersion, unicodeSuffix, combo.CuVersion)
}

func (wp *WorkflowPlanner) baseWorkflow(name string, combo model.Combination) model.Workflow {
	spec := &model.BaseWorkflow{
		Name:          name,
		PythonVersion: combo.PythonVersion,
		CuVersion:     combo.CuVersion,
	}

	if combo.OSType != model.OSWindows {
		if combo.Unicode {
			spec.UnicodeABI = "1"
		}
		if image, ok := ManylinuxImage(combo.CuVersion); ok {
			spec.WheelDockerImage = image
		}
		if image, ok := CondaImage(combo.CuVersion); ok {
			spec.CondaDockerImage = image
		}
	}

	if combo.FilterBranch != "" {
		spec.Filters = model.FilterForBranch(combo.FilterBranch)
	}

	return model.Workflow{
		Job:  fmt.Sprintf("binary_%s_%s", combo.OSType, combo.PackageType),
		Spec: spec,
	}
}

func (wp *WorkflowPlanner) uploadWorkflow(baseName string, combo model.Combination) model.Workflow {
	spec := &model.UploadWorkflow{
		Name:     baseName + "_upload",
		Context:  model.UploadContext,
		Requires: []string{baseName},
	}

	// Wheels are uploaded into a per-variant subfolder; macOS wheels land
	// at the root. Conda packages carry no subfolder field at all.
	if combo.PackageType == model.PackageWheel {
		subfolder := combo.CuVersion + "/"
		if combo.OSType == model.OSMacOS {
			subfolder = ""
		}
		spec.Subfolder = &subfolder
	}

	if combo.FilterBranch != "" {
		spec.Filters = model.FilterForBranch(combo.FilterBranch)
	}

	return model.Workflow{
		Job:  fmt.Sprintf("binary_%s_upload", combo.PackageType),
		Spec: spec,
	}
}

func (wp *WorkflowPlanner) smokeTestWorkflow(baseName string, combo model.Combination) model.Workflow {
	pydistro := "pip"
	if combo.PackageType == model.PackageConda {
		pydistro = "conda"
	}

	spec := &model.SmokeTestWorkflow{
		Name:          fmt.Sprintf("%s_smoke_test_%s", baseName, pydistro),
		Requires:      []string{baseName + "_upload"},
		PythonVersion: combo.PythonVersion,
	}

	if combo.FilterBranch != "" {
		spec.Filters = model.FilterForBranchList(combo.FilterBranch)
	}

	return model.Workflow{
		Job:  fmt.Sprintf("smoke_test_%s_%s", combo.OSType, pydistro),
		Spec: spec,
	}
}
