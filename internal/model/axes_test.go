package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAxesShape(t *testing.T) {
	axes := DefaultAxes()

	assert.Equal(t, []PackageType{PackageWheel, PackageConda}, axes.PackageTypes)
	assert.Equal(t, []OSType{OSLinux, OSMacOS, OSWindows}, axes.OSTypes)
	assert.Equal(t, []string{"3.8", "3.9", "3.10", "3.11"}, axes.PythonVersions)

	require.Contains(t, axes.CuVersions, OSLinux)
	require.Contains(t, axes.CuVersions, OSMacOS)
	require.Contains(t, axes.CuVersions, OSWindows)

	assert.Equal(t, []string{"cpu", "cu117", "cu118", "cu121", "rocm5.2", "rocm5.3"}, axes.CuVersions[OSLinux])
	assert.Equal(t, []string{"cpu", "cu117", "cu118", "cu121"}, axes.CuVersions[OSWindows])
	assert.Equal(t, []string{"cpu"}, axes.CuVersions[OSMacOS])
}

func TestDefaultAxesReturnsFreshCopy(t *testing.T) {
	axes := DefaultAxes()
	axes.PackageTypes[0] = PackageConda
	axes.PythonVersions = append(axes.PythonVersions[:0], "2.7")
	axes.CuVersions[OSLinux][0] = "cu999"
	delete(axes.CuVersions, OSMacOS)

	again := DefaultAxes()
	assert.Equal(t, PackageWheel, again.PackageTypes[0])
	assert.Equal(t, "3.8", again.PythonVersions[0])
	assert.Equal(t, "cpu", again.CuVersions[OSLinux][0])
	assert.Contains(t, again.CuVersions, OSMacOS)
}

func TestPythonBoundaries(t *testing.T) {
	axes := DefaultAxes()
	assert.Equal(t, "3.8", axes.OldestPython())
	assert.Equal(t, "3.11", axes.NewestPython())
}

func TestBoundaryCuVersion(t *testing.T) {
	axes := DefaultAxes()

	tests := []struct {
		name     string
		osType   OSType
		cu       string
		boundary bool
	}{
		{"windows first", OSWindows, "cpu", true},
		{"windows last", OSWindows, "cu121", true},
		{"windows middle", OSWindows, "cu117", false},
		{"windows middle upper", OSWindows, "cu118", false},
		{"linux last is rocm", OSLinux, "rocm5.3", true},
		{"linux cuda tail not boundary", OSLinux, "cu121", false},
		{"macos single entry", OSMacOS, "cpu", true},
		{"unknown variant", OSWindows, "cu999", false},
		{"unknown os", OSType("plan9"), "cpu", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.boundary, axes.BoundaryCuVersion(tc.osType, tc.cu))
		})
	}
}
