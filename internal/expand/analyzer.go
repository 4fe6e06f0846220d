package expand

import (
	"github.com/osalpekar/vision/internal/model"
)

// MatrixAnalyzer summarizes expanded combinations for inspection commands
type MatrixAnalyzer struct {
	expander     *Expander
	combinations []model.Combination
}

// NewMatrixAnalyzer creates a new analyzer over the given axes
func NewMatrixAnalyzer(axes model.Axes, opts model.Options) *MatrixAnalyzer {
	return &MatrixAnalyzer{
		expander: NewExpander(axes, opts),
	}
}

// AnalyzeAll expands the matrix once and memoizes the result
func (ma *MatrixAnalyzer) AnalyzeAll() []model.Combination {
	if ma.combinations != nil {
		return ma.combinations
	}

	ma.combinations = ma.expander.Expand()
	return ma.combinations
}

// MatrixGroup merges the combinations sharing a package type and OS
type MatrixGroup struct {
	PackageType    model.PackageType
	OSType         model.OSType
	PythonVersions []string
	CuVersions     []string
	Combinations   []model.Combination
}

// Groups returns per platform summaries in expansion order
func (ma *MatrixAnalyzer) Groups() []*MatrixGroup {
	byKey := make(map[string]*MatrixGroup)
	order := make([]string, 0)

	for _, combo := range ma.AnalyzeAll() {
		key := string(combo.PackageType) + "/" + string(combo.OSType)

		group, exists := byKey[key]
		if !exists {
			group = &MatrixGroup{
				PackageType:    combo.PackageType,
				OSType:         combo.OSType,
				PythonVersions: make([]string, 0),
				CuVersions:     make([]string, 0),
				Combinations:   make([]model.Combination, 0),
			}
			byKey[key] = group
			order = append(order, key)
		}

		if !contains(group.PythonVersions, combo.PythonVersion) {
			group.PythonVersions = append(group.PythonVersions, combo.PythonVersion)
		}
		if !contains(group.CuVersions, combo.CuVersion) {
			group.CuVersions = append(group.CuVersions, combo.CuVersion)
		}
		group.Combinations = append(group.Combinations, combo)
	}

	result := make([]*MatrixGroup, 0, len(order))
	for _, key := range order {
		result = append(result, byKey[key])
	}

	return result
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
