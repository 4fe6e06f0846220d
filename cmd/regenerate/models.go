package main

import (
	"fmt"

	"github.com/osalpekar/vision/internal/loader"
	"github.com/osalpekar/vision/internal/model"
	"github.com/osalpekar/vision/internal/normalize"
	"github.com/osalpekar/vision/internal/planner"
)

// CombinationInfo holds the displayed detail for one matrix entry.
type CombinationInfo struct {
	Name          string `json:"name"`
	PackageType   string `json:"package_type"`
	OS            string `json:"os"`
	PythonVersion string `json:"python_version"`
	CuVersion     string `json:"cu_version"`
	UnicodeABI    bool   `json:"unicode_abi,omitempty"`
	FilterBranch  string `json:"filter_branch,omitempty"`
	WheelImage    string `json:"wheel_docker_image,omitempty"`
	CondaImage    string `json:"conda_docker_image,omitempty"`
}

// BuildCombinationInfo extracts the display metadata for a combination,
// mirroring the fields its planned build job would carry.
func BuildCombinationInfo(prefix string, combo model.Combination) CombinationInfo {
	info := CombinationInfo{
		Name:          planner.BaseWorkflowName(prefix, combo),
		PackageType:   string(combo.PackageType),
		OS:            string(combo.OSType),
		PythonVersion: combo.PythonVersion,
		CuVersion:     combo.CuVersion,
		UnicodeABI:    combo.Unicode,
		FilterBranch:  combo.FilterBranch,
	}

	if combo.OSType != model.OSWindows {
		if image, ok := planner.ManylinuxImage(combo.CuVersion); ok {
			info.WheelImage = image
		}
		if image, ok := planner.CondaImage(combo.CuVersion); ok {
			info.CondaImage = image
		}
	}

	return info
}

// PrintLongFormat prints one matrix entry with its image and filter
// detail.
func PrintLongFormat(info CombinationInfo) {
	fmt.Printf("\n[Build] %s\n", info.Name)
	fmt.Printf("  Package:  %s\n", info.PackageType)
	fmt.Printf("  OS:       %s\n", info.OS)
	fmt.Printf("  Python:   %s\n", info.PythonVersion)
	fmt.Printf("  Compute:  %s\n", info.CuVersion)
	if info.UnicodeABI {
		fmt.Println("  Unicode:  true")
	}
	if info.FilterBranch != "" {
		fmt.Printf("  Branches: %s\n", info.FilterBranch)
	}
	if info.WheelImage != "" {
		fmt.Printf("  Wheel image: %s\n", info.WheelImage)
	}
	if info.CondaImage != "" {
		fmt.Printf("  Conda image: %s\n", info.CondaImage)
	}
}

// resolveConfigPath locates the release config the flags point at, or ""
// when none exists.
func resolveConfigPath() string {
	if releaseConfig != "" {
		return releaseConfig
	}
	if configDir != "" {
		return loader.FindReleaseConfig(configDir)
	}
	if dir, err := loader.DiscoverDir("", templateName); err == nil {
		return loader.FindReleaseConfig(dir)
	}
	return ""
}

// resolveAxes loads the release config the flags point at, falling back
// to the default axes when none exists.
func resolveAxes() (model.Axes, error) {
	path := resolveConfigPath()
	if path == "" {
		return model.DefaultAxes(), nil
	}

	config, err := loader.LoadReleaseConfig(path)
	if err != nil {
		return model.Axes{}, err
	}
	return normalize.NormalizeAxes(config)
}
