package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/google/uuid"
	"github.com/vearutop/pixtone"
	"github.com/vearutop/pixtone/internal/logger"
	"github.com/vearutop/pixtone/internal/render"
)

const logLevelEnv = "PIXTOOL_LOG_LEVEL"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "negative":
		if err := runNegative(os.Args[2:]); err != nil {
			fail(err)
		}
	case "enhance":
		if err := runEnhance(os.Args[2:]); err != nil {
			fail(err)
		}
	case "info":
		if err := runInfo(os.Args[2:]); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: pixtool <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  negative -in input.jpg -out negative.jpg [-hist-out hist.png] [-channel 0] [-cdf] [-q 95]")
	fmt.Fprintln(os.Stderr, "  enhance  -in input.png -sheet-out sheet.png [-out-dir results] [-sigma 1] [-sharpen-sigma 3] [-amount 1.5] [-exclude-alpha]")
	fmt.Fprintln(os.Stderr, "  info     -in input.jpg")
	fmt.Fprintln(os.Stderr, "Log level is taken from -log-level or "+logLevelEnv+" (debug, info, warn, error).")
}

// output is a rendered file waiting to be written.
type output struct {
	path string
	data []byte
}

// writeOutputs stages every output in a temporary file next to its target and
// renames them into place only once all of them are written.
// On failure the staged files are removed and no target is touched.
func writeOutputs(outs []output) error {
	pending := make([]*renameio.PendingFile, 0, len(outs))
	defer func() {
		for _, p := range pending {
			_ = p.Cleanup()
		}
	}()

	for _, o := range outs {
		path := filepath.Clean(o.path)
		if fi, err := os.Stat(path); err == nil && fi.IsDir() {
			return fmt.Errorf("%s: is a directory", path)
		}
		p, err := renameio.NewPendingFile(path,
			renameio.WithTempDir(filepath.Dir(path)),
			renameio.WithPermissions(0o644),
		)
		if err != nil {
			return err
		}
		pending = append(pending, p)
		if _, err := p.Write(o.data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	for _, p := range pending {
		if err := p.CloseAtomicallyReplace(); err != nil {
			return err
		}
	}
	return nil
}

func encodeArray(path string, a *pixtone.PixelArray, quality int) (output, error) {
	format, err := pixtone.FormatForPath(path)
	if err != nil {
		return output{}, err
	}
	var buf bytes.Buffer
	if err := pixtone.Encode(&buf, format, a, func(o *pixtone.EncodeOptions) {
		o.Quality = quality
	}); err != nil {
		return output{}, fmt.Errorf("encode %s: %w", path, err)
	}
	return output{path: path, data: buf.Bytes()}, nil
}

func encodePNG(path string, img image.Image) (output, error) {
	data, err := render.EncodePNG(img)
	if err != nil {
		return output{}, fmt.Errorf("encode %s: %w", path, err)
	}
	return output{path: path, data: data}, nil
}

func newContext(level string) context.Context {
	if level == "" {
		level = os.Getenv(logLevelEnv)
	}
	l := logger.New(os.Stderr, level).With("run_id", uuid.NewString())
	return logger.SetContext(context.Background(), l)
}

func runNegative(args []string) error {
	fs := flag.NewFlagSet("negative", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image")
	outPath := fs.String("out", "", "output negative image")
	histOut := fs.String("hist-out", "", "write channel histograms plot (PNG)")
	channel := fs.Int("channel", 0, "channel to plot histograms for")
	withCDF := fs.Bool("cdf", false, "overlay normalized CDF on histogram plots")
	q := fs.Int("q", 95, "JPEG quality")
	level := fs.String("log-level", "", "log level")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}

	ctx := newContext(*level)
	log := logger.For(ctx)

	src, err := pixtone.Load(*inPath)
	if err != nil {
		return err
	}
	log.Info("loaded", "path", *inPath, "width", src.Width, "height", src.Height, "channels", src.Channels)

	res, err := pixtone.RunNegative(ctx, src, *channel)
	if err != nil {
		return err
	}

	neg, err := encodeArray(*outPath, res.Negative, *q)
	if err != nil {
		return err
	}
	outs := []output{neg}

	if *histOut != "" {
		name := channelName(src.Channels, res.Channel)
		rows := [][]render.Series{
			{{Label: "histogram " + name + " Awal", Color: color.RGBA{R: 0xFF, A: 0xFF}, Values: res.Before.Floats()}},
			{{Label: "histogram " + name + " Neg", Color: color.RGBA{G: 0x80, A: 0xFF}, Values: res.After.Floats()}},
		}
		if *withCDF {
			rows[0] = append(rows[0], cdfSeries(&res.Before))
			rows[1] = append(rows[1], cdfSeries(&res.After))
		}
		plotImg, err := render.HistogramPlot(rows, func(o *render.PlotOptions) {
			o.Titles = []string{
				fmt.Sprintf("channel %d, original", res.Channel),
				fmt.Sprintf("channel %d, negative", res.Channel),
			}
		})
		if err != nil {
			return fmt.Errorf("histogram plot: %w", err)
		}
		hist, err := encodePNG(*histOut, plotImg)
		if err != nil {
			return err
		}
		outs = append(outs, hist)
	}

	if err := writeOutputs(outs); err != nil {
		return err
	}
	log.Info("negative written", "path", *outPath, "histograms", *histOut)
	return nil
}

func runEnhance(args []string) error {
	fs := flag.NewFlagSet("enhance", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image")
	sheetOut := fs.String("sheet-out", "", "write side by side results (PNG)")
	outDir := fs.String("out-dir", "", "write every result as a separate PNG into this directory")
	sigma := fs.Float64("sigma", 1, "Gaussian smoothing sigma")
	sharpenSigma := fs.Float64("sharpen-sigma", 3, "unsharp mask blur sigma")
	amount := fs.Float64("amount", 1.5, "unsharp mask amount")
	excludeAlpha := fs.Bool("exclude-alpha", false, "ignore alpha in grayscale mean")
	panelHeight := fs.Int("panel-height", 256, "sheet panel height")
	level := fs.String("log-level", "", "log level")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || (*sheetOut == "" && *outDir == "") {
		return errors.New("missing required arguments")
	}

	ctx := newContext(*level)
	log := logger.For(ctx)

	src, err := pixtone.Load(*inPath)
	if err != nil {
		return err
	}
	log.Info("loaded", "path", *inPath, "width", src.Width, "height", src.Height, "channels", src.Channels)

	res, err := pixtone.RunEnhance(ctx, src, func(o *pixtone.EnhanceOptions) {
		o.SmoothSigma = *sigma
		o.Sharpen.Sigma = *sharpenSigma
		o.Sharpen.Amount = *amount
		o.Grayscale.ExcludeAlpha = *excludeAlpha
	})
	if err != nil {
		return err
	}
	if st, err := pixtone.DescribeFloat(res.Sharpened); err == nil {
		log.Debug("sharpened range", "min", st.Min, "max", st.Max, "mean", st.Mean)
	}

	panels := res.Panels()
	var outs []output

	if *sheetOut != "" {
		rp := make([]render.Panel, 0, len(panels))
		for _, p := range panels {
			rp = append(rp, render.Panel{Title: p.Title, Image: p.Array.Image()})
		}
		sheet, err := render.Sheet(rp, func(o *render.SheetOptions) {
			o.PanelHeight = *panelHeight
		})
		if err != nil {
			return fmt.Errorf("sheet: %w", err)
		}
		out, err := encodePNG(*sheetOut, sheet)
		if err != nil {
			return err
		}
		outs = append(outs, out)
	}

	if *outDir != "" {
		if err := os.MkdirAll(filepath.Clean(*outDir), 0o755); err != nil {
			return err
		}
		for _, p := range panels {
			out, err := encodeArray(filepath.Join(*outDir, slug(p.Title)+".png"), p.Array, 0)
			if err != nil {
				return err
			}
			outs = append(outs, out)
		}
	}

	if err := writeOutputs(outs); err != nil {
		return err
	}
	log.Info("enhance written", "sheet", *sheetOut, "dir", *outDir)
	return nil
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("missing required arguments")
	}

	f, err := os.Open(filepath.Clean(*inPath))
	if err != nil {
		return err
	}
	defer f.Close()

	pr, err := pixtone.Probe(f)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "format: %s\nsize: %dx%d\n", pr.Format, pr.Width, pr.Height)

	a, err := pixtone.Load(*inPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "channels: %d\n", a.Channels)
	for c := 0; c < a.Channels; c++ {
		st, err := pixtone.DescribeChannel(a, c)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "channel %d: mean %.2f std %.2f min %.0f max %.0f p2 %.1f median %.1f p98 %.1f\n",
			c, st.Mean, st.Std, st.Min, st.Max, st.P2, st.Median, st.P98)
	}
	return nil
}

func cdfSeries(h *pixtone.Histogram) render.Series {
	cdf := h.CDF()
	n := cdf.Normalized(h)
	return render.Series{Label: "cdf", Color: color.Gray{Y: 0x60}, Values: n[:]}
}

// channelName is the short label of channel c in an array of the given channel count.
func channelName(channels, c int) string {
	if channels == 1 {
		return "Gray"
	}
	if c >= 0 && c < 4 {
		return string("RGBA"[c])
	}
	return fmt.Sprint(c)
}

func slug(title string) string {
	b := make([]byte, 0, len(title))
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b = append(b, byte(r))
		case r >= 'A' && r <= 'Z':
			b = append(b, byte(r-'A'+'a'))
		default:
			if len(b) > 0 && b[len(b)-1] != '_' {
				b = append(b, '_')
			}
		}
	}
	return string(b)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
