package pixtone

import (
	"errors"
	"math"
	"testing"
)

func TestDescribeChannel(t *testing.T) {
	st, err := DescribeChannel(rampArray(t, 10), 0)
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	if st.Count != 10 || st.Min != 0 || st.Max != 9 {
		t.Fatalf("unexpected count/min/max %d %v %v", st.Count, st.Min, st.Max)
	}
	for name, c := range map[string]struct{ got, want float64 }{
		"mean":   {st.Mean, 4.5},
		"std":    {st.Std, math.Sqrt(8.25)},
		"p2":     {st.P2, 0.18},
		"median": {st.Median, 4.5},
		"p98":    {st.P98, 8.82},
	} {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Fatalf("%s = %v, want %v", name, c.got, c.want)
		}
	}

	if _, err := DescribeChannel(rampArray(t, 10), 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDescribeFloat(t *testing.T) {
	st, err := DescribeFloat(&FloatArray{Height: 1, Width: 3, Channels: 1, Pix: []float64{-10, 5, 300}})
	if err != nil {
		t.Fatal(err)
	}
	if st.Min != -10 || st.Max != 300 || st.Median != 5 {
		t.Fatalf("unexpected stats %+v", st)
	}

	if _, err := DescribeFloat(&FloatArray{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
