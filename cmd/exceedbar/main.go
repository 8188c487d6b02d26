// Command exceedbar renders one exceedable progress bar to a PNG file.
//
//	exceedbar -max 1500 -progress 1720 -unit kWh -width 480 -o bar.png
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"golang.org/x/text/language"

	"github.com/rands/exceedbar"
	"github.com/rands/exceedbar/backends/fogleman"
	"github.com/rands/exceedbar/backends/raster"
	"github.com/rands/exceedbar/backends/vector"
	"github.com/rands/exceedbar/text"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		log.Fatalf("exceedbar: %v", err)
	}
}

type config struct {
	min, max, progress float64
	width, height      int
	density            float64
	backend            string
	output             string
	unit               string
	locale             string
	fontRegular        string
	fontBold           string
	shaping            bool
	track, fill        string
	exceeded, text     string
	background         string
	verbose            bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("exceedbar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&cfg.min, "min", 0, "range minimum")
	fs.Float64Var(&cfg.max, "max", 100, "range maximum (planned value)")
	fs.Float64Var(&cfg.progress, "progress", 0, "current progress")
	fs.IntVar(&cfg.width, "width", 480, "image width in pixels")
	fs.IntVar(&cfg.height, "height", 0, "image height in pixels (0 fits the content)")
	fs.Float64Var(&cfg.density, "density", 1, "pixels per dp")
	fs.StringVar(&cfg.backend, "backend", "raster", "renderer: raster, fogleman or vector")
	fs.StringVar(&cfg.output, "o", "bar.png", "output file")
	fs.StringVar(&cfg.unit, "unit", "", "unit appended to the planned maximum")
	fs.StringVar(&cfg.locale, "locale", "", "BCP 47 tag for number formatting (default: space grouping)")
	fs.StringVar(&cfg.fontRegular, "font-regular", "", "regular TTF file (default: Go Regular)")
	fs.StringVar(&cfg.fontBold, "font-bold", "", "bold TTF file (default: Go Bold)")
	fs.BoolVar(&cfg.shaping, "shaping", false, "measure labels with HarfBuzz shaping")
	fs.StringVar(&cfg.track, "track", exceedbar.HexString(exceedbar.DefaultTrackColor), "track color")
	fs.StringVar(&cfg.fill, "fill", exceedbar.HexString(exceedbar.DefaultProgressColor), "progress color")
	fs.StringVar(&cfg.exceeded, "exceeded", exceedbar.HexString(exceedbar.DefaultExceededColor), "exceeded color")
	fs.StringVar(&cfg.text, "text", exceedbar.HexString(exceedbar.DefaultTextColor), "label color")
	fs.StringVar(&cfg.background, "bg", "#FFFFFF", "background color")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(args []string, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if cfg.verbose {
		l := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		exceedbar.SetLogger(l)
		gg.SetLogger(l)
		defer exceedbar.SetLogger(nil)
		defer gg.SetLogger(nil)
	}

	fonts, err := text.LoadFontSet(cfg.fontRegular, cfg.fontBold)
	if err != nil {
		return err
	}

	opts, err := barOptions(cfg, fonts)
	if err != nil {
		return err
	}
	bar := exceedbar.New(opts...)

	hSpec := exceedbar.MeasureSpec{}
	if cfg.height > 0 {
		hSpec = exceedbar.ExactlySpec(cfg.height)
	}
	w, h := bar.Measure(exceedbar.ExactlySpec(cfg.width), hSpec)

	bg, err := exceedbar.ParseColor(cfg.background)
	if err != nil {
		return err
	}
	if err := render(cfg, bar, fonts, bg, w, h); err != nil {
		return err
	}
	exceedbar.Logger().Info("exceedbar: wrote image",
		"path", cfg.output, "backend", cfg.backend, "width", w, "height", h)
	return nil
}

func barOptions(cfg *config, fonts *text.FontSet) ([]exceedbar.Option, error) {
	colors := make([]gg.RGBA, 4)
	for i, s := range []string{cfg.track, cfg.fill, cfg.exceeded, cfg.text} {
		c, err := exceedbar.ParseColor(s)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}

	var m exceedbar.Measurer = text.NewMeasurer(fonts)
	if cfg.shaping {
		sm, err := text.NewShapingMeasurer(fonts)
		if err != nil {
			return nil, err
		}
		m = sm
	}

	opts := []exceedbar.Option{
		exceedbar.WithRange(cfg.min, cfg.max),
		exceedbar.WithProgress(cfg.progress),
		exceedbar.WithDensity(cfg.density),
		exceedbar.WithTrackColor(colors[0]),
		exceedbar.WithProgressColor(colors[1]),
		exceedbar.WithExceededColor(colors[2]),
		exceedbar.WithTextColors(colors[3], colors[3]),
		exceedbar.WithMeasurer(m),
	}
	if cfg.unit != "" {
		unit := cfg.unit
		opts = append(opts, exceedbar.WithTopTextFormatter(func(s string) string {
			return s + " " + unit
		}))
	}
	if cfg.locale != "" {
		tag, err := language.Parse(cfg.locale)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", cfg.locale, err)
		}
		opts = append(opts, exceedbar.WithNumberFormatter(exceedbar.NewLocaleFormat(tag, 2)))
	}
	return opts, nil
}

func render(cfg *config, bar *exceedbar.Bar, fonts *text.FontSet, bg gg.RGBA, w, h int) error {
	switch cfg.backend {
	case "raster":
		c, err := raster.NewCanvas(w, h, fonts)
		if err != nil {
			return err
		}
		defer c.Close()
		logAccelerator()
		c.Clear(bg)
		if err := bar.Render(c, w, h); err != nil {
			return err
		}
		return c.SavePNG(cfg.output)

	case "fogleman":
		c := fogleman.NewCanvas(w, h, fonts)
		defer c.Close()
		c.Clear(bg)
		if err := bar.Render(c, w, h); err != nil {
			return err
		}
		return c.SavePNG(cfg.output)

	case "vector":
		c, err := vector.NewCanvas(w, h, fonts)
		if err != nil {
			return err
		}
		c.Clear(bg)
		if err := bar.Render(c, w, h); err != nil {
			return err
		}
		return vector.Save(c.Finish(), "raster", cfg.output)

	default:
		return &UnknownBackendError{Name: cfg.backend}
	}
}

func logAccelerator() {
	if a := gg.Accelerator(); a != nil {
		exceedbar.Logger().Debug("exceedbar: gpu accelerator", "name", a.Name())
		return
	}
	exceedbar.Logger().Warn("exceedbar: no gpu accelerator, rendering on cpu")
}
