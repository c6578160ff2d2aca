package pixtone

// Negative returns the photographic negative, every sample v becomes 255-v.
// All channels are inverted, alpha included.
func Negative(a *PixelArray) (*PixelArray, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	out := a.newLike()
	for i, v := range a.Pix {
		out.Pix[i] = maxSample - v
	}
	return out, nil
}
