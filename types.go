package pixtone

// PixelArray is a dense grid of 8-bit samples.
// Samples are stored row-major with channels interleaved,
// sample (y, x, c) lives at Pix[(y*Width+x)*Channels+c].
type PixelArray struct {
	Height   int
	Width    int
	Channels int // 1 (gray), 3 (RGB) or 4 (RGBA)
	Pix      []uint8
}

// FloatArray holds unclamped signed results, e.g. of sharpening.
// Layout matches PixelArray.
type FloatArray struct {
	Height   int
	Width    int
	Channels int
	Pix      []float64
}

// Histogram is a 256-bin frequency distribution, bin v counts samples equal to v.
type Histogram [histogramBins]int

// CDF is the running sum of a Histogram.
type CDF [histogramBins]int

// GrayscaleOptions controls grayscale reduction.
type GrayscaleOptions struct {
	// ExcludeAlpha averages only the color channels of a 4-channel array.
	// By default alpha takes part in the mean.
	ExcludeAlpha bool
}

// SharpenOptions controls unsharp masking.
type SharpenOptions struct {
	Sigma  float64 // blur sigma, default 3
	Amount float64 // detail gain, default 1.5
}

// EncodeOptions controls image encoding.
type EncodeOptions struct {
	Quality int // JPEG quality (1-100), default 95
}
