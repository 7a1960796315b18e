// Package chart renders chart datasets to raster images for embedding
// into generated documents. Drawing is pure in-memory on the standard
// image package; labels use the fixed-size basicfont face, so no font
// files are read at runtime.
package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

// Kind selects the plot type.
type Kind int

const (
	Column Kind = iota
	Line
	Pie
)

// Series is one named numeric sequence to plot.
type Series struct {
	Name   string
	Values []float64
}

// Options controls the rendered image. Zero-value fields fall back to
// the defaults.
type Options struct {
	Width      int
	Height     int
	Title      string
	Palette    []color.RGBA
	Background color.RGBA
}

// DefaultOptions returns the standard 4:3 canvas on white.
func DefaultOptions() Options {
	return Options{
		Width:      960,
		Height:     720,
		Background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// defaultPalette is used when the caller supplies none.
var defaultPalette = []color.RGBA{
	{R: 31, G: 73, B: 125, A: 255},
	{R: 79, G: 129, B: 189, A: 255},
	{R: 155, G: 187, B: 89, A: 255},
	{R: 192, G: 80, B: 77, A: 255},
	{R: 128, G: 100, B: 162, A: 255},
	{R: 75, G: 172, B: 198, A: 255},
}

// Render draws the given series over the category axis as the
// requested kind. Degenerate input (no categories, empty series
// values) produces an empty plot rather than an error; an unknown
// kind is an error.
func Render(kind Kind, categories []string, series []Series, opts Options) (image.Image, error) {
	switch kind {
	case Column, Line, Pie:
	default:
		return nil, fmt.Errorf("unknown chart kind %d", kind)
	}

	pl := newPlot(opts)
	pl.drawTitle()

	switch kind {
	case Column:
		pl.drawColumns(categories, series)
	case Line:
		pl.drawLines(categories, series)
	case Pie:
		pl.drawPie(series)
	}
	pl.drawLegend(kind, categories, series)
	return pl.img, nil
}

// EncodePNG serializes a rendered chart.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode chart png: %w", err)
	}
	return buf.Bytes(), nil
}
