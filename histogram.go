package pixtone

import "fmt"

// ComputeHistogram counts sample values of a single-channel array.
func ComputeHistogram(a *PixelArray) (Histogram, error) {
	var h Histogram
	if err := a.Validate(); err != nil {
		return h, err
	}
	if a.Channels != 1 {
		return h, fmt.Errorf("%w: histogram needs a single channel, got %d", ErrInvalidInput, a.Channels)
	}
	for _, v := range a.Pix {
		h[v]++
	}
	return h, nil
}

// ChannelHistogram counts sample values of channel c.
func ChannelHistogram(a *PixelArray, c int) (Histogram, error) {
	var h Histogram
	if err := a.Validate(); err != nil {
		return h, err
	}
	if c < 0 || c >= a.Channels {
		return h, fmt.Errorf("%w: channel %d of %d", ErrInvalidInput, c, a.Channels)
	}
	for i := c; i < len(a.Pix); i += a.Channels {
		h[a.Pix[i]]++
	}
	return h, nil
}

// Total returns the number of counted samples.
func (h *Histogram) Total() int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}

// Max returns the largest bin count.
func (h *Histogram) Max() int {
	m := 0
	for _, c := range h {
		m = max(m, c)
	}
	return m
}

// CDF returns the cumulative sum of bins.
func (h *Histogram) CDF() CDF {
	var (
		cdf CDF
		sum int
	)
	for i, c := range h {
		sum += c
		cdf[i] = sum
	}
	return cdf
}

// Normalized scales the cumulative sum so that its maximum equals the largest bin of h.
// It is meant for plotting next to h.
func (c *CDF) Normalized(h *Histogram) [histogramBins]float64 {
	var out [histogramBins]float64
	top := c[len(c)-1]
	if top == 0 {
		return out
	}
	scale := float64(h.Max()) / float64(top)
	for i, v := range c {
		out[i] = float64(v) * scale
	}
	return out
}

// Floats returns bin counts as float64 values, index i is bin i.
func (h *Histogram) Floats() []float64 {
	out := make([]float64, len(h))
	for i, c := range h {
		out[i] = float64(c)
	}
	return out
}
