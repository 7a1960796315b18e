package chart

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var face = basicfont.Face7x13

// plot carries the canvas and the computed axes box for one rendering.
type plot struct {
	img     *image.RGBA
	w, h    int
	title   string
	palette []color.RGBA

	left, right, top, bottom int
}

func newPlot(opts Options) *plot {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.Background.A == 0 {
		opts.Background = def.Background
	}
	if len(opts.Palette) == 0 {
		opts.Palette = defaultPalette
	}

	pl := &plot{
		img:     image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height)),
		w:       opts.Width,
		h:       opts.Height,
		title:   opts.Title,
		palette: opts.Palette,
	}
	pl.fillRect(pl.img.Bounds(), opts.Background)

	pl.left, pl.right = 70, opts.Width-30
	pl.top, pl.bottom = 30, opts.Height-80
	if opts.Title != "" {
		pl.top = 56
	}
	return pl
}

func (pl *plot) fillRect(rect image.Rectangle, c color.RGBA) {
	draw.Draw(pl.img, rect, &image.Uniform{c}, image.Point{}, draw.Over)
}

// drawLine walks the longer axis one pixel at a time; Set is
// bounds-checked, so clipping is free.
func (pl *plot) drawLine(x1, y1, x2, y2 int, c color.RGBA) {
	dx, dy := float64(x2-x1), float64(y2-y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		pl.img.SetRGBA(x1, y1, c)
		return
	}
	for i := 0.0; i <= steps; i++ {
		x := float64(x1) + dx*i/steps
		y := float64(y1) + dy*i/steps
		pl.img.SetRGBA(int(math.Round(x)), int(math.Round(y)), c)
	}
}

// text draws s with its baseline at (x, y).
func (pl *plot) text(x, y int, s string, c color.RGBA) {
	d := &font.Drawer{
		Dst:  pl.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// textBold re-draws with a 1px offset to embolden the fixed face.
func (pl *plot) textBold(x, y int, s string, c color.RGBA) {
	pl.text(x, y, s, c)
	pl.text(x+1, y, s, c)
}

func textWidth(s string) int {
	return font.MeasureString(face, s).Ceil()
}

// fitLabel truncates s so it fits maxW pixels.
func fitLabel(s string, maxW int) string {
	if textWidth(s) <= maxW {
		return s
	}
	r := []rune(s)
	for len(r) > 1 && textWidth(string(r)+"..") > maxW {
		r = r[:len(r)-1]
	}
	return string(r) + ".."
}

func (pl *plot) drawTitle() {
	if pl.title == "" {
		return
	}
	t := fitLabel(pl.title, pl.w-20)
	pl.textBold((pl.w-textWidth(t))/2, 28, t, color.RGBA{R: 60, G: 60, B: 60, A: 255})
}

// drawLegend lays out swatch+label pairs centered near the bottom
// edge; pie legends name categories, the others name series.
func (pl *plot) drawLegend(kind Kind, categories []string, series []Series) {
	var labels []string
	if kind == Pie {
		labels = categories
	} else {
		labels = make([]string, len(series))
		for i, s := range series {
			labels[i] = s.Name
		}
	}
	if len(labels) == 0 {
		return
	}

	total := 0
	for _, l := range labels {
		total += 14 + 6 + textWidth(l) + 18
	}
	x := (pl.w - total) / 2
	if x < 8 {
		x = 8
	}
	y := pl.h - 24
	lab := color.RGBA{R: 60, G: 60, B: 60, A: 255}
	for i, l := range labels {
		pl.fillRect(image.Rect(x, y-10, x+14, y+2), pl.palette[i%len(pl.palette)])
		pl.text(x+20, y, l, lab)
		x += 14 + 6 + textWidth(l) + 18
	}
}
