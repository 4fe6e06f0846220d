package expand

import (
	"strings"

	"github.com/osalpekar/vision/internal/model"
)

// Expander walks the package type × OS × Python × compute-variant product
// and applies the per-combination guard rules.
type Expander struct {
	axes model.Axes
	opts model.Options
}

// NewExpander creates a new expander over the given axes
func NewExpander(axes model.Axes, opts model.Options) *Expander {
	return &Expander{
		axes: axes,
		opts: opts,
	}
}

// Expand produces the surviving combinations in matrix order: package
// type, then OS, then Python version, then compute variant.
func (e *Expander) Expand() []model.Combination {
	combinations := make([]model.Combination, 0)

	for _, packageType := range e.axes.PackageTypes {
		for _, osType := range e.axes.OSTypes {
			cuVersions := e.axes.CuVersions[osType]

			for _, pythonVersion := range e.axes.PythonVersions {
				for _, cuVersion := range cuVersions {
					// Conda does not ship ROCm variants.
					if packageType == model.PackageConda && strings.HasPrefix(cuVersion, model.VariantROCmPrefix) {
						continue
					}

					// The unicode axis is single-valued today; the loop
					// keeps it inside the ordering contract.
					for _, unicode := range []bool{false} {
						filterBranch := e.effectiveFilterBranch(packageType, osType, pythonVersion, cuVersion)

						// Linux and macOS wheels are built on GitHub Actions now.
						if osType == model.OSLinux && packageType == model.PackageWheel {
							continue
						}
						if osType == model.OSMacOS && packageType == model.PackageWheel {
							continue
						}
						// Conda builds remain on Windows only.
						if osType != model.OSWindows && packageType == model.PackageConda {
							continue
						}

						combinations = append(combinations, model.Combination{
							PackageType:   packageType,
							OSType:        osType,
							PythonVersion: pythonVersion,
							CuVersion:     cuVersion,
							Unicode:       unicode,
							FilterBranch:  filterBranch,
						})
					}
				}
			}
		}
	}

	return combinations
}

// effectiveFilterBranch resolves the branch filter for one combination.
func (e *Expander) effectiveFilterBranch(packageType model.PackageType, osType model.OSType, pythonVersion, cuVersion string) string {
	filterBranch := e.opts.FilterBranch

	// Unfiltered Windows jobs are restricted to the newest Python and the
	// boundary compute variants; everything in between runs on main only.
	if e.opts.WindowsLatestOnly && osType == model.OSWindows && e.opts.FilterBranch == "" &&
		(pythonVersion != e.axes.NewestPython() || !e.axes.BoundaryCuVersion(osType, cuVersion)) {
		filterBranch = model.DefaultBranch
	}

	// The docs build requires this job, so it must exist on every branch.
	if filterBranch == "" && osType == model.OSLinux && cuVersion == model.VariantCPU &&
		packageType == model.PackageWheel && pythonVersion == e.axes.OldestPython() {
		filterBranch = model.AnyBranch
	}

	return filterBranch
}
