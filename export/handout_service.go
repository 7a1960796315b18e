package export

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/gashok13193/DevOps-Docs/deck"
)

// HandoutService renders a deck as an A4 PDF handout: a cover block,
// one section per slide with its text content, and every chart slide
// re-drawn at document resolution.
type HandoutService struct{}

// NewHandoutService creates a new handout service.
func NewHandoutService() *HandoutService {
	return &HandoutService{}
}

// ExportHandout returns the handout PDF bytes. title heads the cover;
// when empty, the first title slide's text is used.
func (s *HandoutService) ExportHandout(p *deck.Presentation, title string) ([]byte, error) {
	if title == "" {
		title = deckTitle(p)
	}

	cfg := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithDefaultFont(&props.Font{Family: fontfamily.Arial, Size: 10}).
		Build()

	m := maroto.New(cfg)
	theme := p.Theme()

	s.addCover(m, title, theme, p.SlideCount())
	for _, e := range buildOutline(p) {
		s.addEntry(m, e, theme)
	}
	if err := s.addCharts(m, p, theme); err != nil {
		return nil, err
	}

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate handout PDF: %w", err)
	}
	return document.GetBytes(), nil
}

func deckTitle(p *deck.Presentation) string {
	for _, s := range p.Slides() {
		if t, ok := s.(deck.TitleSlide); ok {
			return t.Title
		}
	}
	return "Presentation Handout"
}

func themeColor(c deck.RGB) *props.Color {
	return &props.Color{Red: c.R, Green: c.G, Blue: c.B}
}

func (s *HandoutService) addCover(m core.Maroto, title string, theme deck.Theme, slideCount int) {
	m.AddRow(20,
		col.New(12).Add(
			text.New(title, props.Text{
				Family: fontfamily.Arial,
				Size:   18,
				Style:  fontstyle.Bold,
				Align:  align.Center,
				Color:  themeColor(theme.Primary),
			}),
		),
	)
	m.AddRow(8,
		col.New(12).Add(
			text.New(fmt.Sprintf("Generated %s · %d slides", time.Now().Format("2006-01-02 15:04"), slideCount), props.Text{
				Size:  9,
				Align: align.Center,
				Color: &props.Color{Red: 100, Green: 116, Blue: 139},
			}),
		),
	)
	m.AddRow(5)
}

func (s *HandoutService) addEntry(m core.Maroto, e outlineEntry, theme deck.Theme) {
	m.AddRow(8,
		col.New(12).Add(
			text.New(fmt.Sprintf("%d. %s", e.Index, e.Title), props.Text{
				Size:  12,
				Style: fontstyle.Bold,
				Color: themeColor(theme.Primary),
			}),
		),
	)
	m.AddRow(5,
		col.New(12).Add(
			text.New(e.Kind+" slide", props.Text{
				Size:  8,
				Style: fontstyle.Italic,
				Color: &props.Color{Red: 100, Green: 116, Blue: 139},
			}),
		),
	)
	for _, line := range e.Lines {
		m.AddRow(6,
			col.New(12).Add(
				text.New(line, props.Text{
					Size:  10,
					Left:  4,
					Color: &props.Color{Red: 64, Green: 64, Blue: 64},
				}),
			),
		)
	}
	m.AddRow(3)
}

func (s *HandoutService) addCharts(m core.Maroto, p *deck.Presentation, theme deck.Theme) error {
	charts := chartSlides(p)
	if len(charts) == 0 {
		return nil
	}

	m.AddRow(10,
		col.New(12).Add(
			text.New("Charts", props.Text{
				Size:  14,
				Style: fontstyle.Bold,
				Color: themeColor(theme.Primary),
			}),
		),
	)
	for i, c := range charts {
		data, err := renderChartPNG(c, theme, 900, 630)
		if err != nil {
			return fmt.Errorf("failed to render chart %d: %w", i+1, err)
		}
		m.AddRow(80,
			col.New(12).Add(
				image.NewFromBytes(data, extension.Png, props.Rect{
					Center:  true,
					Percent: 90,
				}),
			),
		)
	}
	return nil
}
