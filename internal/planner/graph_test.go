package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osalpekar/vision/internal/model"
)

func buildEntry(name string) model.Workflow {
	return model.Workflow{
		Job:  "binary_win_conda",
		Spec: &model.BaseWorkflow{Name: name},
	}
}

func uploadEntry(name string, requires ...string) model.Workflow {
	return model.Workflow{
		Job:  "binary_conda_upload",
		Spec: &model.UploadWorkflow{Name: name, Context: model.UploadContext, Requires: requires},
	}
}

func TestGraphVerify(t *testing.T) {
	graph := NewWorkflowGraph([]model.Workflow{
		buildEntry("binary_win_conda_py3.8_cpu"),
		uploadEntry("binary_win_conda_py3.8_cpu_upload", "binary_win_conda_py3.8_cpu"),
		buildEntry("binary_win_conda_py3.9_cpu"),
	})

	assert.NoError(t, graph.Verify())
}

func TestGraphVerifyDuplicateName(t *testing.T) {
	graph := NewWorkflowGraph([]model.Workflow{
		buildEntry("binary_win_conda_py3.8_cpu"),
		buildEntry("binary_win_conda_py3.8_cpu"),
	})

	err := graph.Verify()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate workflow name")
}

func TestGraphVerifyForwardReference(t *testing.T) {
	graph := NewWorkflowGraph([]model.Workflow{
		uploadEntry("binary_win_conda_py3.8_cpu_upload", "binary_win_conda_py3.8_cpu"),
		buildEntry("binary_win_conda_py3.8_cpu"),
	})

	err := graph.Verify()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before it is planned")
}

func TestGraphVerifySelfReference(t *testing.T) {
	graph := NewWorkflowGraph([]model.Workflow{
		uploadEntry("binary_win_conda_py3.8_cpu_upload", "binary_win_conda_py3.8_cpu_upload"),
	})

	assert.Error(t, graph.Verify())
}

func TestGraphDependents(t *testing.T) {
	graph := NewWorkflowGraph([]model.Workflow{
		buildEntry("binary_win_conda_py3.8_cpu"),
		uploadEntry("binary_win_conda_py3.8_cpu_upload", "binary_win_conda_py3.8_cpu"),
		buildEntry("binary_win_conda_py3.9_cpu"),
	})

	dependents := graph.Dependents()
	assert.Equal(t, []string{"binary_win_conda_py3.8_cpu_upload"}, dependents["binary_win_conda_py3.8_cpu"])
	assert.Empty(t, dependents["binary_win_conda_py3.8_cpu_upload"])
	assert.Empty(t, dependents["binary_win_conda_py3.9_cpu"])
}
