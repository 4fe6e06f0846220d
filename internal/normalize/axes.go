package normalize

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/osalpekar/vision/internal/model"
)

var (
	cudaVersion = regexp.MustCompile(`^[0-9]+$`)
	rocmVersion = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*$`)
)

// NormalizeAxes merges a release config into the default axes. A nil
// config yields the defaults unchanged. Unknown OS keys and unrecognized
// compute variants are rejected here, so expansion never sees them.
func NormalizeAxes(config *model.ReleaseConfig) (model.Axes, error) {
	axes := model.DefaultAxes()
	if config == nil {
		return axes, nil
	}

	if config.PythonVersions != nil {
		if len(config.PythonVersions) == 0 {
			return model.Axes{}, fmt.Errorf("python_versions must list at least one version")
		}
		for _, version := range config.PythonVersions {
			if version == "" {
				return model.Axes{}, fmt.Errorf("python_versions must not contain empty entries")
			}
		}
		axes.PythonVersions = config.PythonVersions
	}

	// Sorted keys keep the first reported error stable.
	osKeys := make([]string, 0, len(config.CuVersions))
	for key := range config.CuVersions {
		osKeys = append(osKeys, key)
	}
	sort.Strings(osKeys)

	for _, key := range osKeys {
		osType := model.OSType(key)
		if _, known := axes.CuVersions[osType]; !known {
			return model.Axes{}, fmt.Errorf("unknown OS %q in cu_versions", key)
		}

		versions := config.CuVersions[key]
		if len(versions) == 0 {
			return model.Axes{}, fmt.Errorf("cu_versions for %s must list at least one variant", key)
		}
		for _, cu := range versions {
			if !validVariant(cu) {
				return model.Axes{}, fmt.Errorf("unrecognized compute variant %q for %s", cu, key)
			}
		}
		axes.CuVersions[osType] = versions
	}

	return axes, nil
}

// validVariant reports whether cu names a supported compute-variant
// spelling: the CPU value, cu followed by a toolkit number, or rocm
// followed by a dotted version.
func validVariant(cu string) bool {
	switch {
	case cu == model.VariantCPU:
		return true
	case strings.HasPrefix(cu, model.VariantROCmPrefix):
		return rocmVersion.MatchString(strings.TrimPrefix(cu, model.VariantROCmPrefix))
	case strings.HasPrefix(cu, model.VariantCUDAPrefix):
		return cudaVersion.MatchString(strings.TrimPrefix(cu, model.VariantCUDAPrefix))
	}
	return false
}
