package pixtone

import (
	"fmt"
	"math"
)

// Sharpen applies an unsharp mask: I + (I - blur(I)) * amount, with blur being
// GaussianSmoothing of sigma 3 and amount 1.5 unless overridden.
//
// The result is kept in signed floating point and is not clamped,
// use FloatArray.Clamp to get displayable samples.
func Sharpen(a *PixelArray, opts ...func(o *SharpenOptions)) (*FloatArray, error) {
	opt := SharpenOptions{
		Sigma:  defaultSharpenSigma,
		Amount: defaultSharpenAmount,
	}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	if math.IsNaN(opt.Amount) || math.IsInf(opt.Amount, 0) {
		return nil, fmt.Errorf("%w: amount %v", ErrInvalidInput, opt.Amount)
	}

	blur, err := GaussianSmoothing(a, opt.Sigma)
	if err != nil {
		return nil, fmt.Errorf("blur: %w", err)
	}

	out := &FloatArray{Height: a.Height, Width: a.Width, Channels: a.Channels, Pix: make([]float64, len(a.Pix))}
	for i, v := range a.Pix {
		orig := float64(v)
		out.Pix[i] = orig + (orig-float64(blur.Pix[i]))*opt.Amount
	}
	return out, nil
}
