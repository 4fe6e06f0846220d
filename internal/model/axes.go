package model

// PackageType selects the binary packaging flavor of a build job
type PackageType string

const (
	PackageWheel PackageType = "wheel"
	PackageConda PackageType = "conda"
)

// OSType identifies the build platform of a job
type OSType string

const (
	OSLinux   OSType = "linux"
	OSMacOS   OSType = "macos"
	OSWindows OSType = "win"
)

const (
	// DefaultBranch is forced onto non-boundary Windows jobs when the
	// matrix is restricted to latest-only combinations.
	DefaultBranch = "main"

	// AnyBranch is the wildcard branch filter kept on the combination
	// that anchors the documentation build.
	AnyBranch = "/.*/"
)

// Compute-variant spellings. A variant is either the CPU-only value or an
// accelerator prefix followed by a toolkit version ("cu118", "rocm5.2").
const (
	VariantCPU        = "cpu"
	VariantCUDAPrefix = "cu"
	VariantROCmPrefix = "rocm"
)

// Axes holds the static enumerations whose Cartesian product defines the
// build matrix. Values are passed explicitly into expansion; nothing in
// this package is mutable shared state.
type Axes struct {
	PackageTypes   []PackageType
	OSTypes        []OSType
	PythonVersions []string           // ordered oldest to newest
	CuVersions     map[OSType][]string // per-OS compute variants, ordered
}

// DefaultAxes returns a fresh copy of the supported build matrix.
func DefaultAxes() Axes {
	return Axes{
		PackageTypes:   []PackageType{PackageWheel, PackageConda},
		OSTypes:        []OSType{OSLinux, OSMacOS, OSWindows},
		PythonVersions: []string{"3.8", "3.9", "3.10", "3.11"},
		CuVersions: map[OSType][]string{
			OSLinux:   {"cpu", "cu117", "cu118", "cu121", "rocm5.2", "rocm5.3"},
			OSWindows: {"cpu", "cu117", "cu118", "cu121"},
			OSMacOS:   {"cpu"},
		},
	}
}

// OldestPython returns the first supported Python version, or "" when the
// axis is empty.
func (a Axes) OldestPython() string {
	if len(a.PythonVersions) == 0 {
		return ""
	}
	return a.PythonVersions[0]
}

// NewestPython returns the last supported Python version, or "" when the
// axis is empty.
func (a Axes) NewestPython() string {
	if len(a.PythonVersions) == 0 {
		return ""
	}
	return a.PythonVersions[len(a.PythonVersions)-1]
}

// BoundaryCuVersion reports whether cu is the first or last compute
// variant of the given OS list.
func (a Axes) BoundaryCuVersion(osType OSType, cu string) bool {
	versions := a.CuVersions[osType]
	if len(versions) == 0 {
		return false
	}
	return cu == versions[0] || cu == versions[len(versions)-1]
}

// Options control one expansion of the build matrix.
type Options struct {
	Prefix            string // prepended to every workflow name (e.g. "nightly_")
	FilterBranch      string // branch filter applied to every job; "" means unset
	Upload            bool   // emit an upload job after each build job
	SmokeTests        bool   // emit smoke-test jobs after nightly uploads
	Indentation       int    // column the rendered job list is indented to
	WindowsLatestOnly bool   // restrict off-branch Windows jobs to boundary combinations
}

// DefaultIndentation is the column the rendered job list is indented to
// when a template call does not override it.
const DefaultIndentation = 6

// Combination is one surviving point of the matrix product with its
// effective branch filter resolved.
type Combination struct {
	PackageType   PackageType
	OSType        OSType
	PythonVersion string
	CuVersion     string
	Unicode       bool
	FilterBranch  string // "" when the job runs on every branch without filters
}
