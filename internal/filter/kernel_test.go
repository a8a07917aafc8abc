package filter

import (
	"math"
	"testing"
)

func TestGaussianKernelIdentity(t *testing.T) {
	for _, sigma := range []float64{0, -1, -5} {
		kernel := GaussianKernel(sigma)
		if len(kernel) != 1 || kernel[0] != 1 {
			t.Errorf("GaussianKernel(%v) = %v, want [1]", sigma, kernel)
		}
	}
}

func TestGaussianKernelSize(t *testing.T) {
	tests := []struct {
		sigma    float64
		wantSize int
	}{
		{0.5, 5},
		{1.0, 7},
		{2.0, 13},
		{5.0, 31},
	}
	for _, tt := range tests {
		kernel := GaussianKernel(tt.sigma)
		if len(kernel) != tt.wantSize {
			t.Errorf("GaussianKernel(%v) len = %d, want %d", tt.sigma, len(kernel), tt.wantSize)
		}
		if got := KernelRadius(tt.sigma); got != tt.wantSize/2 {
			t.Errorf("KernelRadius(%v) = %d, want %d", tt.sigma, got, tt.wantSize/2)
		}
	}
}

func TestGaussianKernelNormalized(t *testing.T) {
	for _, sigma := range []float64{0.5, 1, 2, 5, 10} {
		kernel := GaussianKernel(sigma)
		var sum float32
		for _, v := range kernel {
			sum += v
		}
		if math.Abs(float64(sum)-1) > 0.001 {
			t.Errorf("GaussianKernel(%v) sum = %v, want ~1", sigma, sum)
		}
	}
}

func TestGaussianKernelSymmetric(t *testing.T) {
	kernel := GaussianKernel(3)
	n := len(kernel)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		if math.Abs(float64(kernel[i]-kernel[j])) > 0.0001 {
			t.Errorf("kernel[%d] = %v, kernel[%d] = %v, want symmetric", i, kernel[i], j, kernel[j])
		}
	}
	center := n / 2
	for i, v := range kernel {
		if i != center && v >= kernel[center] {
			t.Errorf("kernel[%d] = %v not below center %v", i, v, kernel[center])
		}
	}
}

func TestCachedKernelReuse(t *testing.T) {
	a := CachedKernel(2.5)
	b := CachedKernel(2.5)
	if len(a) == 0 || len(b) == 0 {
		t.Fatal("CachedKernel returned empty kernel")
	}
	if &a[0] != &b[0] {
		t.Error("CachedKernel(2.5) returned distinct kernels for the same sigma")
	}
}

func TestKernelCacheEviction(t *testing.T) {
	c := &kernelCache{cache: make(map[int][]float32), maxLen: 4}
	for i := 1; i <= 8; i++ {
		c.get(float64(i))
	}
	if len(c.cache) > 4 {
		t.Errorf("cache len = %d, want <= 4 after eviction", len(c.cache))
	}
	// The cache must still serve correct kernels after evicting.
	k := c.get(3)
	want := GaussianKernel(3)
	if len(k) != len(want) {
		t.Errorf("post-eviction kernel len = %d, want %d", len(k), len(want))
	}
}
