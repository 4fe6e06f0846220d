package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManylinuxImage(t *testing.T) {
	tests := []struct {
		cuVersion string
		image     string
		ok        bool
	}{
		{"cpu", "pytorch/manylinux-cpu", true},
		{"cu117", "pytorch/manylinux-cuda117", true},
		{"cu118", "pytorch/manylinux-cuda118", true},
		{"cu121", "pytorch/manylinux-cuda121", true},
		{"rocm5.2", "pytorch/manylinux-rocm:5.2", true},
		{"rocm5.3", "pytorch/manylinux-rocm:5.3", true},
		{"metal1.0", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.cuVersion, func(t *testing.T) {
			image, ok := ManylinuxImage(tc.cuVersion)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.image, image)
		})
	}
}

func TestCondaImage(t *testing.T) {
	tests := []struct {
		cuVersion string
		image     string
		ok        bool
	}{
		{"cpu", "pytorch/conda-builder:cpu", true},
		{"cu117", "pytorch/conda-builder:cuda117", true},
		{"cu121", "pytorch/conda-builder:cuda121", true},
		{"rocm5.2", "", false},
		{"metal1.0", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.cuVersion, func(t *testing.T) {
			image, ok := CondaImage(tc.cuVersion)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.image, image)
		})
	}
}
