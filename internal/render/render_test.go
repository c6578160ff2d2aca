package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func grayPanel(w, h int, v uint8) image.Image {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func TestSheetLayout(t *testing.T) {
	sheet, err := Sheet([]Panel{{Title: "Original", Image: grayPanel(10, 20, 50)}})
	if err != nil {
		t.Fatalf("sheet: %v", err)
	}
	if b := sheet.Bounds(); b.Dx() != 144 || b.Dy() != 293 {
		t.Fatalf("unexpected sheet size %v", b)
	}

	sheet, err = Sheet([]Panel{
		{Title: "a", Image: grayPanel(10, 10, 0)},
		{Title: "b", Image: grayPanel(20, 10, 255)},
	}, func(o *SheetOptions) {
		o.PanelHeight = 10
		o.Padding = 2
	})
	if err != nil {
		t.Fatalf("sheet: %v", err)
	}
	if b := sheet.Bounds(); b.Dx() != 2+10+2+20+2 {
		t.Fatalf("unexpected sheet width %d", b.Dx())
	}
	if c := sheet.RGBAAt(2+10+2+5, sheet.Bounds().Dy()-2-5); c != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("second panel pixel %v", c)
	}
}

func TestSheetErrors(t *testing.T) {
	if _, err := Sheet(nil); err == nil {
		t.Fatal("expected error for no panels")
	}
	if _, err := Sheet([]Panel{{Title: "empty", Image: image.NewGray(image.Rect(0, 0, 0, 0))}}); err == nil {
		t.Fatal("expected error for empty panel")
	}
}

func TestHistogramPlot(t *testing.T) {
	values := make([]float64, 256)
	for i := range values {
		values[i] = float64(i % 17)
	}
	img, err := HistogramPlot([][]Series{
		{{Label: "before", Color: color.RGBA{R: 0xFF, A: 0xFF}, Values: values}},
		{{Label: "after", Color: color.RGBA{G: 0x80, A: 0xFF}, Values: values}},
	}, func(o *PlotOptions) {
		o.Titles = []string{"before", "after"}
	})
	if err != nil {
		t.Fatalf("plot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1000 || b.Dy() != 700 {
		t.Fatalf("unexpected plot size %v", b)
	}

	if _, err := HistogramPlot(nil); err == nil {
		t.Fatal("expected error for no subplots")
	}
}

func TestEncodePNG(t *testing.T) {
	data, err := EncodePNG(grayPanel(3, 2, 9))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if g, ok := img.(*image.Gray); !ok || g.GrayAt(2, 1).Y != 9 {
		t.Fatalf("unexpected decoded image %T", img)
	}
}
