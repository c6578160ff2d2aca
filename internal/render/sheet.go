package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/nfnt/resize"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Panel is one titled image of a sheet.
type Panel struct {
	Title string
	Image image.Image
}

// SheetOptions controls sheet layout.
type SheetOptions struct {
	PanelHeight int // every panel is scaled to this height, default 256
	Padding     int // gap around panels, default 8
	Background  color.Color
	Foreground  color.Color
}

// Sheet lays panels out side by side, each scaled to a common height with its title above.
func Sheet(panels []Panel, opts ...func(o *SheetOptions)) (*image.RGBA, error) {
	if len(panels) == 0 {
		return nil, errors.New("no panels")
	}
	opt := SheetOptions{
		PanelHeight: 256,
		Padding:     8,
		Background:  color.White,
		Foreground:  color.Black,
	}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	if opt.PanelHeight <= 0 || opt.Padding < 0 {
		return nil, errors.New("invalid sheet layout")
	}

	face := basicfont.Face7x13
	titleH := face.Metrics().Height.Ceil() + opt.Padding

	scaled := make([]image.Image, len(panels))
	width := opt.Padding
	for i, p := range panels {
		if p.Image == nil || p.Image.Bounds().Empty() {
			return nil, errors.New("empty panel image")
		}
		scaled[i] = resize.Resize(0, uint(opt.PanelHeight), p.Image, resize.Lanczos3)
		width += scaled[i].Bounds().Dx() + opt.Padding
	}
	height := opt.Padding + titleH + opt.PanelHeight + opt.Padding

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opt.Background), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(opt.Foreground),
		Face: face,
	}
	x := opt.Padding
	for i, img := range scaled {
		b := img.Bounds()
		top := opt.Padding + titleH
		draw.Draw(dst, image.Rect(x, top, x+b.Dx(), top+b.Dy()), img, b.Min, draw.Src)

		tw := d.MeasureString(panels[i].Title).Ceil()
		tx := x + (b.Dx()-tw)/2
		if tx < x {
			tx = x
		}
		d.Dot = fixed.P(tx, opt.Padding+face.Metrics().Ascent.Ceil())
		d.DrawString(panels[i].Title)

		x += b.Dx() + opt.Padding
	}
	return dst, nil
}
