package planner

import (
	"strings"

	"github.com/osalpekar/vision/internal/model"
)

// ManylinuxImage resolves the wheel build image for a compute variant.
// The second return is false when no image is published for the variant.
func ManylinuxImage(cuVersion string) (string, bool) {
	switch {
	case cuVersion == model.VariantCPU:
		return "pytorch/manylinux-cpu", true
	case strings.HasPrefix(cuVersion, model.VariantCUDAPrefix):
		return "pytorch/manylinux-cuda" + strings.TrimPrefix(cuVersion, model.VariantCUDAPrefix), true
	case strings.HasPrefix(cuVersion, model.VariantROCmPrefix):
		return "pytorch/manylinux-rocm:" + strings.TrimPrefix(cuVersion, model.VariantROCmPrefix), true
	}
	return "", false
}

// CondaImage resolves the conda build image for a compute variant. There
// are no ROCm conda builder images.
func CondaImage(cuVersion string) (string, bool) {
	switch {
	case cuVersion == model.VariantCPU:
		return "pytorch/conda-builder:cpu", true
	case strings.HasPrefix(cuVersion, model.VariantCUDAPrefix):
		return "pytorch/conda-builder:cuda" + strings.TrimPrefix(cuVersion, model.VariantCUDAPrefix), true
	}
	return "", false
}
