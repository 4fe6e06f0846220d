package model

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func encodeWorkflow(t *testing.T, w Workflow) string {
	t.Helper()
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	require.NoError(t, enc.Encode(w))
	require.NoError(t, enc.Close())
	return buf.String()
}

func TestBaseWorkflowMarshal(t *testing.T) {
	w := Workflow{
		Job: "binary_windows_conda",
		Spec: &BaseWorkflow{
			Name:          "binary_win_conda_py3.9_cu118",
			PythonVersion: "3.9",
			CuVersion:     "cu118",
			Filters:       FilterForBranch("nightly"),
		},
	}

	expected := `binary_windows_conda:
  name: binary_win_conda_py3.9_cu118
  python_version: "3.9"
  cu_version: cu118
  filters:
    branches:
      only: nightly
    tags:
      only: /v[0-9]+(\.[0-9]+)*-rc[0-9]+/
`
	assert.Equal(t, expected, encodeWorkflow(t, w))
}

func TestBaseWorkflowMarshalOmitsEmptyFields(t *testing.T) {
	w := Workflow{
		Job: "binary_linux_wheel",
		Spec: &BaseWorkflow{
			Name:             "binary_linux_wheel_py3.8_cpu",
			PythonVersion:    "3.8",
			CuVersion:        "cpu",
			WheelDockerImage: "pytorch/manylinux-cpu",
		},
	}

	expected := `binary_linux_wheel:
  name: binary_linux_wheel_py3.8_cpu
  python_version: "3.8"
  cu_version: cpu
  wheel_docker_image: pytorch/manylinux-cpu
`
	assert.Equal(t, expected, encodeWorkflow(t, w))
}

func TestUploadWorkflowMarshal(t *testing.T) {
	subfolder := "cu118/"
	w := Workflow{
		Job: "binary_conda_upload",
		Spec: &UploadWorkflow{
			Name:      "nightly_binary_win_conda_py3.9_cu118_upload",
			Context:   UploadContext,
			Requires:  []string{"nightly_binary_win_conda_py3.9_cu118"},
			Subfolder: &subfolder,
			Filters:   FilterForBranch("nightly"),
		},
	}

	expected := `binary_conda_upload:
  name: nightly_binary_win_conda_py3.9_cu118_upload
  context: org-member
  requires:
    - nightly_binary_win_conda_py3.9_cu118
  subfolder: cu118/
  filters:
    branches:
      only: nightly
    tags:
      only: /v[0-9]+(\.[0-9]+)*-rc[0-9]+/
`
	assert.Equal(t, expected, encodeWorkflow(t, w))
}

func TestUploadWorkflowMarshalEmptySubfolder(t *testing.T) {
	subfolder := ""
	w := Workflow{
		Job: "binary_wheel_upload",
		Spec: &UploadWorkflow{
			Name:      "binary_macos_wheel_py3.8_cpu_upload",
			Context:   UploadContext,
			Requires:  []string{"binary_macos_wheel_py3.8_cpu"},
			Subfolder: &subfolder,
		},
	}

	out := encodeWorkflow(t, w)
	assert.Contains(t, out, "subfolder: \"\"\n")
}

func TestUploadWorkflowMarshalNilSubfolder(t *testing.T) {
	w := Workflow{
		Job: "binary_conda_upload",
		Spec: &UploadWorkflow{
			Name:     "binary_win_conda_py3.9_cu118_upload",
			Context:  UploadContext,
			Requires: []string{"binary_win_conda_py3.9_cu118"},
		},
	}

	out := encodeWorkflow(t, w)
	assert.NotContains(t, out, "subfolder")
}

func TestSmokeTestWorkflowMarshal(t *testing.T) {
	w := Workflow{
		Job: "smoke_test_win_conda",
		Spec: &SmokeTestWorkflow{
			Name:          "nightly_binary_win_conda_py3.9_cu118_smoke_test_conda",
			Requires:      []string{"nightly_binary_win_conda_py3.9_cu118_upload"},
			PythonVersion: "3.9",
			Filters:       FilterForBranchList("nightly"),
		},
	}

	expected := `smoke_test_win_conda:
  name: nightly_binary_win_conda_py3.9_cu118_smoke_test_conda
  requires:
    - nightly_binary_win_conda_py3.9_cu118_upload
  python_version: "3.9"
  filters:
    branches:
      only:
        - nightly
`
	assert.Equal(t, expected, encodeWorkflow(t, w))
}

func TestFilterConstructors(t *testing.T) {
	branch := FilterForBranch("main")
	assert.Equal(t, "main", branch.Branches.Only)
	require.NotNil(t, branch.Tags)
	assert.Equal(t, RCTagPattern, branch.Tags.Only)

	list := FilterForBranchList("nightly", "release")
	assert.Equal(t, []string{"nightly", "release"}, list.Branches.Only)
	assert.Nil(t, list.Tags)
}

func TestWorkflowSpecDependencies(t *testing.T) {
	base := &BaseWorkflow{Name: "binary_win_conda_py3.8_cpu"}
	assert.Equal(t, "binary_win_conda_py3.8_cpu", base.WorkflowName())
	assert.Empty(t, base.DependsOn())

	upload := &UploadWorkflow{
		Name:     "binary_win_conda_py3.8_cpu_upload",
		Requires: []string{"binary_win_conda_py3.8_cpu"},
	}
	assert.Equal(t, []string{"binary_win_conda_py3.8_cpu"}, upload.DependsOn())

	smoke := &SmokeTestWorkflow{
		Name:     "binary_win_conda_py3.8_cpu_smoke_test_conda",
		Requires: []string{"binary_win_conda_py3.8_cpu_upload"},
	}
	assert.Equal(t, []string{"binary_win_conda_py3.8_cpu_upload"}, smoke.DependsOn())
}
