package pixtone

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func randomArray(t *testing.T, rnd *rand.Rand, h, w, c int) *PixelArray {
	t.Helper()
	a, err := NewPixelArray(h, w, c)
	if err != nil {
		t.Fatalf("new array: %v", err)
	}
	for i := range a.Pix {
		a.Pix[i] = uint8(rnd.Intn(256))
	}
	return a
}

func TestNegativeScenario(t *testing.T) {
	a, err := GrayFromRows([][]uint8{{0, 128}, {255, 64}})
	if err != nil {
		t.Fatal(err)
	}
	neg, err := Negative(a)
	if err != nil {
		t.Fatalf("negative: %v", err)
	}
	want := []uint8{255, 127, 0, 191}
	if diff := cmp.Diff(want, neg.Pix); diff != "" {
		t.Fatalf("negative mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint8{0, 128, 255, 64}, a.Pix); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}

func TestNegativeInvolution(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, c := range []int{1, 3, 4} {
		a := randomArray(t, rnd, 7, 5, c)
		neg, err := Negative(a)
		if err != nil {
			t.Fatalf("negative: %v", err)
		}
		back, err := Negative(neg)
		if err != nil {
			t.Fatalf("negative twice: %v", err)
		}
		if !back.SameShape(a) {
			t.Fatalf("shape changed for %d channels", c)
		}
		if diff := cmp.Diff(a.Pix, back.Pix); diff != "" {
			t.Fatalf("involution broken for %d channels (-want +got):\n%s", c, diff)
		}
	}
}

func TestNegativeInvalidInput(t *testing.T) {
	cases := map[string]*PixelArray{
		"nil":           nil,
		"short pix":     {Height: 2, Width: 2, Channels: 1, Pix: make([]uint8, 3)},
		"two channels":  {Height: 1, Width: 1, Channels: 2, Pix: make([]uint8, 2)},
		"zero height":   {Height: 0, Width: 3, Channels: 1},
		"negative size": {Height: -1, Width: 3, Channels: 1},
	}
	for name, a := range cases {
		if _, err := Negative(a); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}
