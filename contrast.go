package pixtone

import (
	"fmt"
	"math"
)

// Percentile returns the p-th percentile (0..100) of all samples in a,
// linearly interpolated between the two closest ranks.
func Percentile(a *PixelArray, p float64) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if math.IsNaN(p) || p < 0 || p > 100 {
		return 0, fmt.Errorf("%w: percentile %v out of [0, 100]", ErrInvalidInput, p)
	}
	h := sampleHistogram(a)
	cdf := h.CDF()
	return percentileFromCDF(&cdf, p), nil
}

func sampleHistogram(a *PixelArray) Histogram {
	var h Histogram
	for _, v := range a.Pix {
		h[v]++
	}
	return h
}

// percentileFromCDF interpolates between sorted ranks without materializing the sorted samples.
func percentileFromCDF(cdf *CDF, p float64) float64 {
	n := cdf[len(cdf)-1]
	rank := p / 100 * float64(n-1)
	lo := math.Floor(rank)
	t := rank - lo
	a := float64(kthSample(cdf, int(lo)))
	b := float64(kthSample(cdf, int(math.Ceil(rank))))
	return lerp(a, b, t)
}

// kthSample returns the k-th smallest sample (0-based).
func kthSample(cdf *CDF, k int) int {
	for v, c := range cdf {
		if c > k {
			return v
		}
	}
	return maxSample
}

// lerp interpolates from the nearer end point to keep results monotonic in t.
func lerp(a, b, t float64) float64 {
	d := b - a
	if t >= 0.5 {
		return b - d*(1-t)
	}
	return a + d*t
}

// ContrastStretching linearly remaps the [2nd, 98th] percentile range of samples onto [0, 255].
// Samples below the low percentile become 0, samples above the high one become 255.
// ErrDegenerateRange is returned when both percentiles are equal, e.g. for a flat image.
func ContrastStretching(a *PixelArray) (*PixelArray, error) {
	return ContrastStretchingRange(a, stretchLowPercentile, stretchHighPercentile)
}

// ContrastStretchingRange is ContrastStretching with explicit percentiles.
func ContrastStretchingRange(a *PixelArray, low, high float64) (*PixelArray, error) {
	if low >= high {
		return nil, fmt.Errorf("%w: percentile range [%v, %v]", ErrInvalidInput, low, high)
	}
	pLow, err := Percentile(a, low)
	if err != nil {
		return nil, err
	}
	pHigh, err := Percentile(a, high)
	if err != nil {
		return nil, err
	}
	if pLow == pHigh {
		return nil, fmt.Errorf("%w: p%v = p%v = %v", ErrDegenerateRange, low, high, pLow)
	}

	lut := stretchLUT(pLow, pHigh)
	out := a.newLike()
	for i, v := range a.Pix {
		out.Pix[i] = lut[v]
	}
	return out, nil
}

func stretchLUT(lo, hi float64) [histogramBins]uint8 {
	var lut [histogramBins]uint8
	slope := maxSample / (hi - lo)
	for v := range lut {
		x := float64(v)
		switch {
		case x <= lo:
			lut[v] = 0
		case x >= hi:
			lut[v] = maxSample
		default:
			lut[v] = truncToByte(slope * (x - lo))
		}
	}
	return lut
}
