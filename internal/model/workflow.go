package model

// RCTagPattern is the release-candidate tag filter attached alongside
// every branch filter. The pattern is fixed: uploads must fire for
// vMAJOR(.MINOR)*-rcN tags regardless of which branch is filtered.
const RCTagPattern = `/v[0-9]+(\.[0-9]+)*-rc[0-9]+/`

// UploadContext is the CircleCI context granting upload credentials.
const UploadContext = "org-member"

// FilterClause restricts a workflow job to selected branches and tags.
type FilterClause struct {
	Branches BranchFilter `yaml:"branches" json:"branches"`
	Tags     *TagFilter   `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// BranchFilter holds the branches a job runs on. Only is a single branch
// name (or wildcard pattern) for build and upload jobs, and a list of
// branch names for smoke-test jobs.
type BranchFilter struct {
	Only interface{} `yaml:"only" json:"only"`
}

// TagFilter holds the tag pattern a job additionally runs on.
type TagFilter struct {
	Only string `yaml:"only" json:"only"`
}

// FilterForBranch builds the standard filter clause: the given branch plus
// the release-candidate tag pattern.
func FilterForBranch(branch string) *FilterClause {
	return &FilterClause{
		Branches: BranchFilter{Only: branch},
		Tags:     &TagFilter{Only: RCTagPattern},
	}
}

// FilterForBranchList builds a branch-list filter without a tag clause,
// as used by smoke-test jobs.
func FilterForBranchList(branches ...string) *FilterClause {
	only := make([]string, 0, len(branches))
	only = append(only, branches...)
	return &FilterClause{
		Branches: BranchFilter{Only: only},
	}
}

// WorkflowSpec is the parameter block of one workflow job entry.
type WorkflowSpec interface {
	// WorkflowName returns the unique name of the job within one
	// generated sequence.
	WorkflowName() string
	// DependsOn returns the names of previously emitted jobs this job
	// requires, in declaration order.
	DependsOn() []string
}

// Workflow is one entry of the generated job list: a single-key mapping
// from the CircleCI job template to its parameters.
type Workflow struct {
	Job  string // job template key, e.g. "binary_win_conda"
	Spec WorkflowSpec
}

// MarshalYAML emits the single-key mapping form consumed by CircleCI.
func (w Workflow) MarshalYAML() (interface{}, error) {
	return map[string]WorkflowSpec{w.Job: w.Spec}, nil
}

// BaseWorkflow describes one binary build job.
type BaseWorkflow struct {
	Name             string        `yaml:"name" json:"name"`
	PythonVersion    string        `yaml:"python_version" json:"python_version"`
	CuVersion        string        `yaml:"cu_version" json:"cu_version"`
	UnicodeABI       string        `yaml:"unicode_abi,omitempty" json:"unicode_abi,omitempty"`
	WheelDockerImage string        `yaml:"wheel_docker_image,omitempty" json:"wheel_docker_image,omitempty"`
	CondaDockerImage string        `yaml:"conda_docker_image,omitempty" json:"conda_docker_image,omitempty"`
	Filters          *FilterClause `yaml:"filters,omitempty" json:"filters,omitempty"`
}

// WorkflowName implements WorkflowSpec.
func (w *BaseWorkflow) WorkflowName() string { return w.Name }

// DependsOn implements WorkflowSpec. Build jobs have no dependencies.
func (w *BaseWorkflow) DependsOn() []string { return nil }

// UploadWorkflow describes the upload job paired with a build job.
type UploadWorkflow struct {
	Name      string        `yaml:"name" json:"name"`
	Context   string        `yaml:"context" json:"context"`
	Requires  []string      `yaml:"requires" json:"requires"`
	Subfolder *string       `yaml:"subfolder,omitempty" json:"subfolder,omitempty"`
	Filters   *FilterClause `yaml:"filters,omitempty" json:"filters,omitempty"`
}

// WorkflowName implements WorkflowSpec.
func (w *UploadWorkflow) WorkflowName() string { return w.Name }

// DependsOn implements WorkflowSpec.
func (w *UploadWorkflow) DependsOn() []string { return w.Requires }

// SmokeTestWorkflow describes the install smoke test chained after an
// upload job.
type SmokeTestWorkflow struct {
	Name          string        `yaml:"name" json:"name"`
	Requires      []string      `yaml:"requires" json:"requires"`
	PythonVersion string        `yaml:"python_version" json:"python_version"`
	Filters       *FilterClause `yaml:"filters,omitempty" json:"filters,omitempty"`
}

// WorkflowName implements WorkflowSpec.
func (w *SmokeTestWorkflow) WorkflowName() string { return w.Name }

// DependsOn implements WorkflowSpec.
func (w *SmokeTestWorkflow) DependsOn() []string { return w.Requires }
