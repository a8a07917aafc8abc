package filter

import (
	"image"
	"sync"
)

// BlurAlpha blurs a coverage mask in place with a Gaussian of the given
// sigma, running the separable horizontal and vertical passes through a
// pooled float32 scratch buffer. Taps outside the mask read as zero, so
// coverage decays toward the edges; callers leave KernelRadius(sigma)
// pixels of headroom on every side or the blur visibly truncates.
// Sigma values at or below zero leave the mask untouched.
func BlurAlpha(mask *image.Alpha, sigma float64) {
	if mask == nil || sigma <= 0 {
		return
	}
	w := mask.Rect.Dx()
	h := mask.Rect.Dy()
	if w <= 0 || h <= 0 {
		return
	}

	kernel := CachedKernel(sigma)
	half := len(kernel) / 2

	src := getFloatBuffer(w * h)
	tmp := getFloatBuffer(w * h)
	defer putFloatBuffer(src)
	defer putFloatBuffer(tmp)

	// Unpack rows, dropping the stride.
	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		out := src.data[y*w : y*w+w]
		for x, v := range row {
			out[x] = float32(v)
		}
	}

	blurRows(src.data, tmp.data, w, h, kernel, half)
	blurColumns(tmp.data, src.data, w, h, kernel, half)

	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		in := src.data[y*w : y*w+w]
		for x, v := range in {
			row[x] = clampUint8(v)
		}
	}
}

// blurRows convolves each row with the kernel.
func blurRows(src, dst []float32, w, h int, kernel []float32, half int) {
	for y := 0; y < h; y++ {
		row := src[y*w : y*w+w]
		out := dst[y*w : y*w+w]
		for x := range out {
			var sum float32
			for k, weight := range kernel {
				sx := x + k - half
				if sx < 0 || sx >= w {
					continue
				}
				sum += row[sx] * weight
			}
			out[x] = sum
		}
	}
}

// blurColumns convolves each column with the kernel.
func blurColumns(src, dst []float32, w, h int, kernel []float32, half int) {
	for y := 0; y < h; y++ {
		out := dst[y*w : y*w+w]
		for x := 0; x < w; x++ {
			var sum float32
			for k, weight := range kernel {
				sy := y + k - half
				if sy < 0 || sy >= h {
					continue
				}
				sum += src[sy*w+x] * weight
			}
			out[x] = sum
		}
	}
}

// floatBuffer wraps the scratch slice so the pool stores a pointer
// rather than a slice header.
type floatBuffer struct {
	data []float32
}

var floatBufferPool = sync.Pool{
	New: func() any { return &floatBuffer{} },
}

func getFloatBuffer(n int) *floatBuffer {
	b := floatBufferPool.Get().(*floatBuffer)
	if cap(b.data) < n {
		b.data = make([]float32, n)
	}
	b.data = b.data[:n]
	return b
}

func putFloatBuffer(b *floatBuffer) {
	floatBufferPool.Put(b)
}

// clampUint8 rounds to the nearest byte, clamping at the ends.
func clampUint8(v float32) uint8 {
	v += 0.5
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
