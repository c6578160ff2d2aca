package pixtone

import (
	"context"
	"fmt"
	"time"

	"github.com/vearutop/pixtone/internal/logger"
)

// NegativeResult holds the output of a negative run.
type NegativeResult struct {
	Negative *PixelArray
	Channel  int
	Before   Histogram // channel histogram of the source
	After    Histogram // channel histogram of the negative
}

// RunNegative computes the negative of a and the histograms of one channel before and after.
func RunNegative(ctx context.Context, a *PixelArray, channel int) (*NegativeResult, error) {
	log := logger.For(ctx)

	start := time.Now()
	neg, err := Negative(a)
	if err != nil {
		return nil, fmt.Errorf("negative: %w", err)
	}
	log.Debug("negative done", "elapsed", time.Since(start))

	before, err := ChannelHistogram(a, channel)
	if err != nil {
		return nil, fmt.Errorf("source histogram: %w", err)
	}
	after, err := ChannelHistogram(neg, channel)
	if err != nil {
		return nil, fmt.Errorf("negative histogram: %w", err)
	}

	return &NegativeResult{
		Negative: neg,
		Channel:  channel,
		Before:   before,
		After:    after,
	}, nil
}

// EnhanceOptions controls an enhance run.
type EnhanceOptions struct {
	SmoothSigma float64 // Gaussian smoothing sigma, default 1
	Grayscale   GrayscaleOptions
	Sharpen     SharpenOptions
}

// EnhanceResult holds the outputs of an enhance run, all derived from Original.
type EnhanceResult struct {
	Original          *PixelArray // grayscale source
	ContrastStretched *PixelArray
	Equalized         *PixelArray
	Smoothed          *PixelArray
	Sharpened         *FloatArray
}

// Titled is an array with a display title.
type Titled struct {
	Title string
	Array *PixelArray
}

// Panels lists the results in display order, the sharpened image is clamped.
func (r *EnhanceResult) Panels() []Titled {
	return []Titled{
		{Title: "Original", Array: r.Original},
		{Title: "Contrast Stretched", Array: r.ContrastStretched},
		{Title: "Histogram Equalization", Array: r.Equalized},
		{Title: "Gaussian Smoothing", Array: r.Smoothed},
		{Title: "Sharpened", Array: r.Sharpened.Clamp()},
	}
}

// RunEnhance reduces a to grayscale and applies each enhancement to the grayscale image independently.
func RunEnhance(ctx context.Context, a *PixelArray, opts ...func(o *EnhanceOptions)) (*EnhanceResult, error) {
	opt := EnhanceOptions{
		SmoothSigma: defaultSmoothSigma,
		Sharpen: SharpenOptions{
			Sigma:  defaultSharpenSigma,
			Amount: defaultSharpenAmount,
		},
	}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}

	log := logger.For(ctx)
	stage := func(name string, start time.Time) {
		log.Debug("stage done", "stage", name, "elapsed", time.Since(start))
	}

	var (
		res   EnhanceResult
		err   error
		start = time.Now()
	)

	res.Original, err = Grayscale(a, func(o *GrayscaleOptions) { *o = opt.Grayscale })
	if err != nil {
		return nil, fmt.Errorf("grayscale: %w", err)
	}
	stage("grayscale", start)

	start = time.Now()
	if res.ContrastStretched, err = ContrastStretching(res.Original); err != nil {
		return nil, fmt.Errorf("contrast stretching: %w", err)
	}
	stage("contrast_stretching", start)

	start = time.Now()
	if res.Equalized, err = HistogramEqualization(res.Original); err != nil {
		return nil, fmt.Errorf("histogram equalization: %w", err)
	}
	stage("histogram_equalization", start)

	start = time.Now()
	if res.Smoothed, err = GaussianSmoothing(res.Original, opt.SmoothSigma); err != nil {
		return nil, fmt.Errorf("gaussian smoothing: %w", err)
	}
	stage("gaussian_smoothing", start)

	start = time.Now()
	if res.Sharpened, err = Sharpen(res.Original, func(o *SharpenOptions) { *o = opt.Sharpen }); err != nil {
		return nil, fmt.Errorf("sharpen: %w", err)
	}
	stage("sharpen", start)

	return &res, nil
}
