// Package exceedbar lays out and draws a horizontal progress bar that can
// show progress beyond its planned maximum.
//
// # Overview
//
// The bar has three filled segments and two labels:
//
//	 1 500 kWh                      <- planned maximum (top text)
//	(█████████████▓▓▓▓▓▓▓)  114.67 % <- track, progress, exceeded, percentage
//
// While progress <= max the progress segment grows linearly along the
// track. Once progress passes max the progress segment shrinks to
// trackWidth*max/progress and the remainder of the track is drawn in the
// exceeded color, so the further the overshoot the larger the overflow
// share. Corners are rounded per segment so the pieces read as one bar.
//
// # Quick Start
//
//	bar := exceedbar.New(
//	    exceedbar.WithRange(0, 1500),
//	    exceedbar.WithProgress(1720),
//	    exceedbar.WithMeasurer(text.NewMeasurer(text.GoFonts())),
//	)
//
//	w, h := bar.Measure(exceedbar.ExactlySpec(480), exceedbar.MeasureSpec{})
//	dc, err := raster.NewCanvas(w, h, text.GoFonts())
//	if err != nil {
//	    return err
//	}
//	defer dc.Close()
//	if err := bar.Render(dc, w, h); err != nil {
//	    return err
//	}
//	return dc.SavePNG("bar.png")
//
// # Architecture
//
//   - Core (this package): Range, GeometryEngine, ComputeGeometry,
//     RoundedRect, Bar, Frame. No rasterizer dependency beyond colors.
//   - text: font-backed Measurers (golang.org/x/image, go-text/typesetting)
//   - backends/raster: gogpu/gg Context canvas
//   - backends/vector: gogpu/gg recording canvas
//   - backends/fogleman: fogleman/gg canvas
//   - backends/term: lipgloss terminal renderer
//
// # Coordinate System
//
// Pixels, origin top-left, X right, Y down. Text positions are baselines.
//
// # Concurrency
//
// A Bar is owned by one goroutine. The package logger is the only shared
// state; see SetLogger.
package exceedbar
