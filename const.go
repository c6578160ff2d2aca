package pixtone

const (
	defaultSmoothSigma   = 1.0
	defaultSharpenSigma  = 3.0
	defaultSharpenAmount = 1.5
	gaussianTruncate     = 4.0
)

const (
	stretchLowPercentile  = 2.0
	stretchHighPercentile = 98.0
)

const (
	defaultJPEGQuality = 95
	histogramBins      = 256
	maxSample          = 255
)
