package pixtone

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.yhsif.com/immutable"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // Register WebP decoder.
)

// encoderForExtension maps lower-case file extensions to Encode format names.
var encoderForExtension = immutable.MapLiteral(map[string]string{
	".png":  "png",
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".gif":  "gif",
	".tif":  "tiff",
	".tiff": "tiff",
	".bmp":  "bmp",
})

// Load reads and decodes an image file into a PixelArray.
func Load(path string) (*PixelArray, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fileError(path, err)
	}
	a, _, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Save encodes a in the format implied by the extension of path and writes the file.
// Nothing is written when encoding fails.
func Save(path string, a *PixelArray, opts ...func(o *EncodeOptions)) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, format, a, opts...); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := os.WriteFile(filepath.Clean(path), buf.Bytes(), 0o644); err != nil {
		return fileError(path, err)
	}
	return nil
}

// FormatForPath returns the encoder name ("png", "jpeg", "gif", "tiff", "bmp") for a file path.
func FormatForPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := encoderForExtension.Load(ext)
	if !ok {
		return "", fmt.Errorf("%w: unsupported file extension %q", ErrEncode, ext)
	}
	return format, nil
}

func fileError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrPermission, path)
	default:
		return err
	}
}

// Decode reads an image and converts it to a PixelArray.
// It returns the format name reported by the decoder.
func Decode(r io.Reader) (*PixelArray, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	a, err := FromImage(img)
	if err != nil {
		return nil, format, err
	}
	return a, format, nil
}

// Encode writes a to w using the named format.
func Encode(w io.Writer, format string, a *PixelArray, opts ...func(o *EncodeOptions)) error {
	if err := a.Validate(); err != nil {
		return err
	}
	opt := EncodeOptions{Quality: defaultJPEGQuality}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}

	img := a.Image()
	var err error
	switch format {
	case "png":
		err = png.Encode(w, img)
	case "jpeg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: opt.Quality})
	case "gif":
		err = gif.Encode(w, img, nil)
	case "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "bmp":
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: unsupported format %q", ErrEncode, format)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}

// FromImage converts a decoded image to a PixelArray.
//
// The channel count follows the color model, see Probe: gray models give one channel,
// models without a straight alpha channel give RGB, and non-premultiplied or
// translucent palette models give RGBA even when every pixel is opaque.
func FromImage(img image.Image) (*PixelArray, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: empty image %v", ErrInvalidInput, b)
	}

	channels := channelsForModel(img.ColorModel())
	out := &PixelArray{Height: h, Width: w, Channels: channels, Pix: make([]uint8, w*h*channels)}

	switch channels {
	case 1:
		if src, ok := img.(*image.Gray); ok {
			for y := 0; y < h; y++ {
				off := src.PixOffset(b.Min.X, b.Min.Y+y)
				copy(out.Pix[y*w:(y+1)*w], src.Pix[off:off+w])
			}
			return out, nil
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.Pix[y*w+x] = color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray).Y
			}
		}
	case 3:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
				i := (y*w + x) * 3
				out.Pix[i] = uint8(r >> 8)
				out.Pix[i+1] = uint8(g >> 8)
				out.Pix[i+2] = uint8(bl >> 8)
			}
		}
	default:
		if src, ok := img.(*image.NRGBA); ok {
			for y := 0; y < h; y++ {
				off := src.PixOffset(b.Min.X, b.Min.Y+y)
				copy(out.Pix[y*w*4:(y+1)*w*4], src.Pix[off:off+w*4])
			}
			return out, nil
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				i := (y*w + x) * 4
				out.Pix[i] = c.R
				out.Pix[i+1] = c.G
				out.Pix[i+2] = c.B
				out.Pix[i+3] = c.A
			}
		}
	}
	return out, nil
}

// Image wraps the samples into a standard library image:
// *image.Gray for one channel, *image.RGBA for three and *image.NRGBA for four.
func (a *PixelArray) Image() image.Image {
	r := image.Rect(0, 0, a.Width, a.Height)
	switch a.Channels {
	case 1:
		img := image.NewGray(r)
		copy(img.Pix, a.Pix)
		return img
	case 3:
		img := image.NewRGBA(r)
		for i := 0; i < a.Width*a.Height; i++ {
			img.Pix[i*4] = a.Pix[i*3]
			img.Pix[i*4+1] = a.Pix[i*3+1]
			img.Pix[i*4+2] = a.Pix[i*3+2]
			img.Pix[i*4+3] = 0xFF
		}
		return img
	default:
		img := image.NewNRGBA(r)
		copy(img.Pix, a.Pix)
		return img
	}
}
