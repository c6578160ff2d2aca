package pixtone

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// ChannelStats summarizes sample values of one channel.
type ChannelStats struct {
	Count  int
	Mean   float64
	Std    float64 // population standard deviation
	Min    float64
	Max    float64
	P2     float64
	Median float64
	P98    float64
}

// DescribeChannel computes ChannelStats for channel c of a.
func DescribeChannel(a *PixelArray, c int) (*ChannelStats, error) {
	ch, err := a.Channel(c)
	if err != nil {
		return nil, err
	}
	data := make(stats.Float64Data, len(ch.Pix))
	for i, v := range ch.Pix {
		data[i] = float64(v)
	}
	return describe(data)
}

// DescribeFloat computes ChannelStats over all samples of f.
func DescribeFloat(f *FloatArray) (*ChannelStats, error) {
	if f == nil || len(f.Pix) == 0 {
		return nil, fmt.Errorf("%w: empty array", ErrInvalidInput)
	}
	return describe(stats.Float64Data(f.Pix))
}

func describe(data stats.Float64Data) (*ChannelStats, error) {
	percentiles := []float64{stretchLowPercentile, 50, stretchHighPercentile}
	d, err := stats.DescribePercentileFunc(data, false, &percentiles, linearPercentile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	cs := &ChannelStats{
		Count: d.Count,
		Mean:  d.Mean,
		Std:   d.Std,
		Min:   d.Min,
		Max:   d.Max,
	}
	for _, p := range d.DescriptionPercentiles {
		switch p.Percentile {
		case stretchLowPercentile:
			cs.P2 = p.Value
		case 50:
			cs.Median = p.Value
		case stretchHighPercentile:
			cs.P98 = p.Value
		}
	}
	return cs, nil
}

// linearPercentile matches Percentile for float data: linear interpolation between closest ranks.
func linearPercentile(input stats.Float64Data, p float64) (float64, error) {
	if input.Len() == 0 {
		return math.NaN(), stats.ErrEmptyInput
	}
	if math.IsNaN(p) || p < 0 || p > 100 {
		return math.NaN(), stats.ErrBounds
	}
	sorted := append([]float64(nil), input...)
	sort.Float64s(sorted)
	rank := p / 100 * float64(len(sorted)-1)
	lo := math.Floor(rank)
	return lerp(sorted[int(lo)], sorted[int(math.Ceil(rank))], rank-lo), nil
}
