package pixtone

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// ProbeResult describes an image without decoding its pixels.
type ProbeResult struct {
	Format   string
	Width    int
	Height   int
	Channels int // channel count Load produces for the same data
}

// Probe reads the image header from r and reports format and shape.
func Probe(r io.Reader) (*ProbeResult, error) {
	cfg, format, err := image.DecodeConfig(bufio.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return &ProbeResult{
		Format:   format,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Channels: channelsForModel(cfg.ColorModel),
	}, nil
}

// channelsForModel decides the channel count from the color model alone, so that
// Probe and FromImage agree without looking at pixels.
//
// Premultiplied RGBA models map to three channels: the PNG and BMP decoders use them
// for files that have no alpha channel.
func channelsForModel(m color.Model) int {
	if p, ok := m.(color.Palette); ok {
		for _, c := range p {
			if _, _, _, a := c.RGBA(); a != 0xFFFF {
				return 4
			}
		}
		return 3
	}
	switch m {
	case color.GrayModel, color.Gray16Model:
		return 1
	case color.RGBAModel, color.RGBA64Model, color.YCbCrModel, color.CMYKModel:
		return 3
	}
	return 4
}
