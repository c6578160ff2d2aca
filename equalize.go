package pixtone

// EqualizationLUT builds the lookup table that maps sample values to equalized values.
//
// Bins where the cumulative sum is still zero are left out of the remap and map to 0.
// The remaining cumulative sums are stretched linearly from [min, max] onto [0, 255]
// and truncated. If they are all equal every entry maps to 0.
func EqualizationLUT(h *Histogram) [histogramBins]uint8 {
	var lut [histogramBins]uint8
	cdf := h.CDF()

	type entry struct {
		idx int
		val int
	}
	kept := make([]entry, 0, len(cdf))
	for i, v := range cdf {
		if v != 0 {
			kept = append(kept, entry{idx: i, val: v})
		}
	}
	if len(kept) == 0 {
		return lut
	}

	// CDF is non-decreasing, so the extremes are the first and last kept entries.
	lo, hi := kept[0].val, kept[len(kept)-1].val
	if lo == hi {
		return lut
	}
	span := float64(hi - lo)
	for _, e := range kept {
		lut[e.idx] = truncToByte(float64((e.val-lo)*maxSample) / span)
	}
	return lut
}

// HistogramEqualization flattens the sample distribution of a through its cumulative histogram.
// The histogram is taken over all samples of the array.
func HistogramEqualization(a *PixelArray) (*PixelArray, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	h := sampleHistogram(a)
	lut := EqualizationLUT(&h)
	out := a.newLike()
	for i, v := range a.Pix {
		out.Pix[i] = lut[v]
	}
	return out, nil
}
