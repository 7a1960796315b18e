// Package export derives secondary artifacts from built decks: a PDF
// handout, a chart-data workbook, a document outline and per-slide
// images.
package export

import (
	"errors"
	"fmt"

	"github.com/gashok13193/DevOps-Docs/chart"
	"github.com/gashok13193/DevOps-Docs/deck"
)

// ErrNoChartData reports a deck without chart slides to an exporter
// that needs chart data.
var ErrNoChartData = errors.New("deck has no chart slides")

// outlineEntry is one slide row of the deck outline shared by the
// handout and outline exporters.
type outlineEntry struct {
	Index int
	Kind  string
	Title string
	Lines []string
}

// buildOutline flattens a deck into outline entries, one per slide,
// carrying the same text a rendered slide shows.
func buildOutline(p *deck.Presentation) []outlineEntry {
	slides := p.Slides()
	out := make([]outlineEntry, 0, len(slides))
	for i, s := range slides {
		e := outlineEntry{Index: i + 1, Kind: s.Kind().String()}
		switch v := s.(type) {
		case deck.TitleSlide:
			e.Title = v.Title
			if v.Subtitle != "" {
				e.Lines = append(e.Lines, v.Subtitle)
			}
			if v.Author != "" {
				e.Lines = append(e.Lines, "Presented by: "+v.Author)
			}
		case deck.ContentSlide:
			e.Title = v.Title
			e.Lines = deck.FormatItems(v.Items, v.Layout)
		case deck.TwoColumnSlide:
			e.Title = v.Title
			e.Lines = append(e.Lines, v.Left...)
			e.Lines = append(e.Lines, v.Right...)
		case deck.ImageSlide:
			e.Title = v.Title
			e.Lines = append(e.Lines, "Image: "+v.ImagePath)
			if v.Caption != "" {
				e.Lines = append(e.Lines, v.Caption)
			}
		case deck.ChartSlide:
			e.Title = v.Title
			e.Lines = append(e.Lines, fmt.Sprintf("Chart: %d categories, %d series",
				len(v.Dataset.Categories), len(v.Dataset.Series)))
		case deck.SectionSlide:
			e.Title = v.Title
		}
		out = append(out, e)
	}
	return out
}

// chartSlides returns the deck's chart slides in append order.
func chartSlides(p *deck.Presentation) []deck.ChartSlide {
	var out []deck.ChartSlide
	for _, s := range p.Slides() {
		if c, ok := s.(deck.ChartSlide); ok {
			out = append(out, c)
		}
	}
	return out
}

// hexColor renders an RGB as the RRGGBB form the document libraries
// consume.
func hexColor(c deck.RGB) string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

func chartKindOf(k deck.ChartKind) chart.Kind {
	switch k {
	case deck.ChartLine:
		return chart.Line
	case deck.ChartPie:
		return chart.Pie
	default:
		return chart.Column
	}
}

// renderChartPNG draws a chart slide with the deck's theme palette.
func renderChartPNG(v deck.ChartSlide, theme deck.Theme, w, h int) ([]byte, error) {
	series := make([]chart.Series, len(v.Dataset.Series))
	for i, s := range v.Dataset.Series {
		series[i] = chart.Series{Name: s.Name, Values: s.Values}
	}
	img, err := chart.Render(chartKindOf(v.Chart), v.Dataset.Categories, series, chart.Options{
		Width:   w,
		Height:  h,
		Title:   v.Title,
		Palette: deck.ThemePalette(theme),
	})
	if err != nil {
		return nil, err
	}
	return chart.EncodePNG(img)
}
