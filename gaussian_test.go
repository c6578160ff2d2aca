package pixtone

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestGaussianKernel(t *testing.T) {
	k := GaussianKernel(1)
	if len(k) != 9 {
		t.Fatalf("kernel length %d, want 9", len(k))
	}
	var sum float64
	for i, v := range k {
		sum += v
		if v != k[len(k)-1-i] {
			t.Fatalf("kernel not symmetric at %d", i)
		}
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Fatalf("kernel sum %v", sum)
	}
	if math.Abs(k[4]-0.3989434693560771) > 1e-9 {
		t.Fatalf("kernel center %v", k[4])
	}

	if got := len(GaussianKernel(3)); got != 25 {
		t.Fatalf("sigma 3 kernel length %d, want 25", got)
	}
}

func TestReflectIndex(t *testing.T) {
	// d c b a | a b c d | d c b a
	cases := map[int]int{
		-6: 2, -5: 3, -4: 3, -3: 2, -2: 1, -1: 0,
		0: 0, 3: 3,
		4: 3, 5: 2, 7: 0, 8: 0, 9: 1,
	}
	for i, want := range cases {
		if got := reflectIndex(i, 4); got != want {
			t.Fatalf("reflectIndex(%d, 4) = %d, want %d", i, got, want)
		}
	}
	if got := reflectIndex(-3, 1); got != 0 {
		t.Fatalf("reflectIndex(-3, 1) = %d", got)
	}
}

func TestGaussianSmoothingConstant(t *testing.T) {
	cases := []struct {
		h, w, c int
		sigma   float64
	}{
		{h: 8, w: 8, c: 1, sigma: 1},
		{h: 3, w: 2, c: 1, sigma: 3}, // kernel wider than the image
		{h: 1, w: 1, c: 1, sigma: 2},
		{h: 5, w: 9, c: 3, sigma: 1.5},
	}
	for _, v := range []uint8{0, 1, 77, 128, 254, 255} {
		for _, c := range cases {
			a, err := NewPixelArray(c.h, c.w, c.c)
			if err != nil {
				t.Fatal(err)
			}
			for i := range a.Pix {
				a.Pix[i] = v
			}
			out, err := GaussianSmoothing(a, c.sigma)
			if err != nil {
				t.Fatalf("smoothing: %v", err)
			}
			for i, got := range out.Pix {
				if got != v {
					t.Fatalf("constant %d, shape %dx%dx%d, sigma %v: sample %d = %d", v, c.h, c.w, c.c, c.sigma, i, got)
				}
			}
		}
	}
}

func TestGaussianSmoothingImpulse(t *testing.T) {
	a, err := NewPixelArray(21, 21, 1)
	if err != nil {
		t.Fatal(err)
	}
	a.Set(10, 10, 0, 255)

	out, err := GaussianSmoothing(a, 1)
	if err != nil {
		t.Fatalf("smoothing: %v", err)
	}
	// Vertical pass gives int(255*0.39894) = 101, horizontal pass int(101*0.39894) = 40.
	if got := out.At(10, 10, 0); got != 40 {
		t.Fatalf("center = %d, want 40", got)
	}
	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			if out.At(y, x, 0) != out.At(20-y, 20-x, 0) {
				t.Fatalf("result is not symmetric at (%d, %d)", y, x)
			}
		}
	}
	if a.At(10, 10, 0) != 255 {
		t.Fatal("input mutated")
	}
}

func TestGaussianSmoothingChannelsIndependent(t *testing.T) {
	a, err := NewPixelArray(6, 6, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(a.Pix); i += 3 {
		a.Pix[i] = 10
		a.Pix[i+1] = 200
		a.Pix[i+2] = 90
	}
	out, err := GaussianSmoothing(a, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(out.Pix); i += 3 {
		if out.Pix[i] != 10 || out.Pix[i+1] != 200 || out.Pix[i+2] != 90 {
			t.Fatalf("channels leaked at pixel %d: %v", i/3, out.Pix[i:i+3])
		}
	}
}

func TestGaussianSmoothingMatchesSerial(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	a := randomArray(t, rnd, 64, 48, 1)

	parallel, err := GaussianSmoothing(a, 2)
	if err != nil {
		t.Fatal(err)
	}

	prev := maxParallelWorkers
	maxParallelWorkers = 1
	defer func() { maxParallelWorkers = prev }()

	serial, err := GaussianSmoothing(a, 2)
	if err != nil {
		t.Fatal(err)
	}
	for i := range serial.Pix {
		if serial.Pix[i] != parallel.Pix[i] {
			t.Fatalf("sample %d differs: serial %d parallel %d", i, serial.Pix[i], parallel.Pix[i])
		}
	}
}

func TestGaussianSmoothingInvalidSigma(t *testing.T) {
	a, err := NewPixelArray(2, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := GaussianSmoothing(a, s); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("sigma %v: expected ErrInvalidInput, got %v", s, err)
		}
	}
}

func BenchmarkGaussianSmoothing(b *testing.B) {
	a, err := NewPixelArray(512, 512, 1)
	if err != nil {
		b.Fatal(err)
	}
	for i := range a.Pix {
		a.Pix[i] = uint8(i * 7)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := GaussianSmoothing(a, 3); err != nil {
			b.Fatal(err)
		}
	}
}
