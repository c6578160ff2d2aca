package pixtone

// Grayscale reduces a multi-channel array to one channel using the unweighted
// mean of the channel samples, truncated to an integer.
//
// For 4-channel input alpha takes part in the mean unless GrayscaleOptions.ExcludeAlpha is set.
// Single-channel input is returned as is.
func Grayscale(a *PixelArray, opts ...func(o *GrayscaleOptions)) (*PixelArray, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if a.Channels == 1 {
		return a, nil
	}

	var opt GrayscaleOptions
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}

	n := a.Channels
	if opt.ExcludeAlpha && n == 4 {
		n = 3
	}

	out := &PixelArray{Height: a.Height, Width: a.Width, Channels: 1, Pix: make([]uint8, a.Height*a.Width)}
	for i := range out.Pix {
		px := a.Pix[i*a.Channels : i*a.Channels+n]
		sum := 0
		for _, v := range px {
			sum += int(v)
		}
		out.Pix[i] = uint8(sum / n)
	}
	return out, nil
}
