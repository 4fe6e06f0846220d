package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osalpekar/vision/internal/model"
)

func TestRenderYAML(t *testing.T) {
	subfolder := "cpu/"
	workflows := []model.Workflow{
		{
			Job: "binary_win_wheel",
			Spec: &model.BaseWorkflow{
				Name:          "binary_win_wheel_py3.8_cpu",
				PythonVersion: "3.8",
				CuVersion:     "cpu",
			},
		},
		{
			Job: "binary_wheel_upload",
			Spec: &model.UploadWorkflow{
				Name:      "binary_win_wheel_py3.8_cpu_upload",
				Context:   model.UploadContext,
				Requires:  []string{"binary_win_wheel_py3.8_cpu"},
				Subfolder: &subfolder,
			},
		},
	}

	data, err := NewRenderer().RenderYAML(workflows)
	require.NoError(t, err)

	expected := `- binary_win_wheel:
    name: binary_win_wheel_py3.8_cpu
    python_version: "3.8"
    cu_version: cpu
- binary_wheel_upload:
    name: binary_win_wheel_py3.8_cpu_upload
    context: org-member
    requires:
      - binary_win_wheel_py3.8_cpu
    subfolder: cpu/
`
	assert.Equal(t, expected, string(data))
}

func TestReindent(t *testing.T) {
	renderer := NewRenderer()

	tests := []struct {
		name        string
		indentation int
		data        string
		expected    string
	}{
		{"empty", 6, "", ""},
		{"newline only", 6, "\n", ""},
		{"single line", 6, "- a\n", "- a"},
		{"joins lines", 2, "- a\n- b\n", "- a\n  - b"},
		{"nested block", 6, "- a:\n    b: 1\n", "- a:\n          b: 1"},
		{"zero columns", 0, "- a\n- b\n", "- a\n- b"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, renderer.Reindent(tc.indentation, []byte(tc.data)))
		})
	}
}

func TestWriteDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".circleci", "config.yml")

	renderer := NewRenderer()
	require.NoError(t, renderer.WriteDocument(path, []byte("version: 2.1\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "version: 2.1\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestRenderJSON(t *testing.T) {
	data, err := NewRenderer().RenderJSON(map[string]int{"jobs": 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"jobs": 3}`, string(data))
}
