package pixtone

import (
	"fmt"
	"math"
)

// truncEpsilon absorbs float error of kernel normalization before truncation,
// so that a flat region stays at its exact value.
const truncEpsilon = 1e-9

// GaussianKernel returns the normalized sampled Gaussian of the given sigma.
// The kernel has 2*r+1 taps with r = int(4*sigma + 0.5).
func GaussianKernel(sigma float64) []float64 {
	radius := int(gaussianTruncate*sigma + 0.5)
	sigma2 := sigma * sigma
	k := make([]float64, 2*radius+1)
	var sum float64
	for i := range k {
		x := float64(i - radius)
		k[i] = math.Exp(-0.5 / sigma2 * x * x)
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// GaussianSmoothing blurs a with a separable Gaussian of standard deviation sigma.
//
// The filter runs along the vertical axis first and then along the horizontal one,
// each pass truncating to 8 bits. Borders are mirrored about the edge
// (d c b a | a b c d | d c b a). Channels are filtered independently.
func GaussianSmoothing(a *PixelArray, sigma float64) (*PixelArray, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma <= 0 {
		return nil, fmt.Errorf("%w: sigma %v", ErrInvalidInput, sigma)
	}
	k := GaussianKernel(sigma)
	vertical := correlateVertical(a.Pix, a.Height, a.Width*a.Channels, k)
	out := a.newLike()
	out.Pix = correlateHorizontal(vertical, a.Height, a.Width, a.Channels, k)
	return out, nil
}

// reflectIndex maps i into [0, n) mirroring about the edges, the edge sample is repeated.
func reflectIndex(i, n int) int {
	if i >= 0 && i < n {
		return i
	}
	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - 1 - i
	}
	return i
}

func correlateVertical(src []uint8, h, rowLen int, k []float64) []uint8 {
	radius := len(k) / 2
	out := make([]uint8, len(src))
	parallelFor(h, func(start, end int) {
		acc := getFloat64(rowLen)
		defer putFloat64(acc)
		for y := start; y < end; y++ {
			clear(acc)
			for j, w := range k {
				sy := reflectIndex(y+j-radius, h)
				row := src[sy*rowLen : (sy+1)*rowLen]
				for i, v := range row {
					acc[i] += w * float64(v)
				}
			}
			dst := out[y*rowLen : (y+1)*rowLen]
			for i, v := range acc {
				dst[i] = truncToByte(v + truncEpsilon)
			}
		}
	})
	return out
}

func correlateHorizontal(src []uint8, h, w, channels int, k []float64) []uint8 {
	radius := len(k) / 2
	rowLen := w * channels
	out := make([]uint8, len(src))
	parallelFor(h, func(start, end int) {
		for y := start; y < end; y++ {
			row := src[y*rowLen : (y+1)*rowLen]
			dst := out[y*rowLen : (y+1)*rowLen]
			for x := 0; x < w; x++ {
				for c := 0; c < channels; c++ {
					var sum float64
					for j, wt := range k {
						sx := reflectIndex(x+j-radius, w)
						sum += wt * float64(row[sx*channels+c])
					}
					dst[x*channels+c] = truncToByte(sum + truncEpsilon)
				}
			}
		}
	})
	return out
}
