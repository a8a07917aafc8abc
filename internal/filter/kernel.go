package filter

import (
	"math"
	"sync"
)

// GaussianKernel builds a normalized 1D Gaussian kernel for the given
// sigma. The kernel spans three standard deviations each side, size
// 2*ceil(3*sigma)+1, so anything a blurred mask touches stays inside
// bounds inflated by 3*sigma. Sigma values at or below zero yield the
// identity kernel.
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1}
	}

	half := int(math.Ceil(sigma * 3))
	size := half*2 + 1
	kernel := make([]float32, size)

	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}
	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// KernelRadius returns the half-width of the kernel CachedKernel would
// build for sigma.
func KernelRadius(sigma float64) int {
	if sigma <= 0 {
		return 0
	}
	return int(math.Ceil(sigma * 3))
}

// kernelCache memoizes kernels by sigma quantized to 0.01. A frame
// typically blurs with one or two sigmas, so the cache stays tiny; the
// cap only guards against a pathological caller sweeping sigma.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int][]float32
	maxLen int
}

var sharedKernels = &kernelCache{cache: make(map[int][]float32), maxLen: 64}

func (c *kernelCache) get(sigma float64) []float32 {
	key := int(sigma * 100)

	c.mu.RLock()
	k, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return k
	}

	k = GaussianKernel(sigma)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		dropped := 0
		for key := range c.cache {
			delete(c.cache, key)
			dropped++
			if dropped >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = k
	c.mu.Unlock()
	return k
}

// CachedKernel returns a shared normalized Gaussian kernel for sigma.
// The returned slice is shared; callers must not mutate it.
func CachedKernel(sigma float64) []float32 {
	return sharedKernels.get(sigma)
}
