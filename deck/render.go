package deck

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"time"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/gashok13193/DevOps-Docs/chart"
)

// Slide geometry, 16:9 widescreen (EMU units).
const (
	emuPerInch = 914400

	slideWidth  = int64(10.0 * emuPerInch)
	slideHeight = int64(5.625 * emuPerInch)

	marginLeft   = int64(0.4 * emuPerInch)
	contentWidth = int64(9.2 * emuPerInch)
)

// helper: create a solid fill
func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

// helper: set paragraph alignment to center
func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// Save renders every accumulated slide, in append order, and writes
// one .pptx file at path. The .pptx extension is appended when
// absent; an empty path derives a timestamped default name in the
// working directory. Returns the resolved absolute path.
//
// Resource errors surface here rather than at append: a missing image
// fails with ErrImageNotFound (all image slides are checked before
// rendering begins), a vanished construction template with
// ErrTemplateNotFound, and failures raised by the authoring library
// or the file write with ErrRender. A failed Save leaves the
// Presentation unchanged and re-callable; repeated Saves re-render
// from the same accumulated state.
//
// A presentation saved with zero appended slides still contains the
// single blank slide every new document starts with.
func (p *Presentation) Save(path string) (string, error) {
	path = p.resolvePath(path)

	// Batch resource check before any rendering, so a half-built
	// document is never written.
	for i, s := range p.slides {
		img, ok := s.(ImageSlide)
		if !ok {
			continue
		}
		if _, err := os.Stat(img.ImagePath); err != nil {
			return "", fmt.Errorf("slide %d: image %q: %w", i+1, img.ImagePath, ErrImageNotFound)
		}
	}

	pres, reuseFirst, err := p.base()
	if err != nil {
		return "", err
	}
	p.stampProperties(pres)
	if err := p.render(pres, reuseFirst); err != nil {
		return "", err
	}

	data, err := serialize(pres)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write %q: %v: %w", path, err, ErrRender)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %v: %w", path, err, ErrRender)
	}
	return abs, nil
}

// resolvePath applies the default timestamped name and the canonical
// extension.
func (p *Presentation) resolvePath(path string) string {
	if path == "" {
		path = fmt.Sprintf("presentation_%s.pptx", time.Now().Format("20060102_150405"))
	}
	if !strings.EqualFold(filepath.Ext(path), ".pptx") {
		path += ".pptx"
	}
	return path
}

// base returns the presentation to render into: a fresh document, or
// the construction template re-read from disk. reuseFirst reports
// whether the first appended slide may bind to the document's blank
// starting slide.
func (p *Presentation) base() (*ppt.Presentation, bool, error) {
	if p.templatePath == "" {
		return ppt.New(), true, nil
	}
	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(p.templatePath)
	if err != nil {
		return nil, false, fmt.Errorf("template %q: %v: %w", p.templatePath, err, ErrTemplateNotFound)
	}
	return pres, false, nil
}

// probeTemplate checks at construction time that a template resolves
// to a readable presentation.
func probeTemplate(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("template %q: %w", path, ErrTemplateNotFound)
	}
	reader := &ppt.PPTXReader{}
	if _, err := reader.Read(path); err != nil {
		return fmt.Errorf("template %q: %v: %w", path, err, ErrTemplateNotFound)
	}
	return nil
}

func (p *Presentation) stampProperties(pres *ppt.Presentation) {
	props := pres.GetDocumentProperties()
	props.Creator = "DevOps-Docs"
	for _, s := range p.slides {
		if t, ok := s.(TitleSlide); ok {
			props.Title = t.Title
			break
		}
	}
}

func (p *Presentation) render(pres *ppt.Presentation, reuseFirst bool) error {
	for i, s := range p.slides {
		var slide *ppt.Slide
		if i == 0 && reuseFirst {
			slide = pres.GetActiveSlide()
		} else {
			slide = pres.CreateSlide()
		}

		var err error
		switch v := s.(type) {
		case TitleSlide:
			p.renderTitle(slide, v)
		case ContentSlide:
			p.renderContent(slide, v)
		case TwoColumnSlide:
			p.renderTwoColumn(slide, v)
		case ImageSlide:
			err = p.renderImage(slide, v)
		case ChartSlide:
			err = p.renderChart(slide, v)
		case SectionSlide:
			p.renderSection(slide, v)
		default:
			err = fmt.Errorf("unknown slide kind %v: %w", s.Kind(), ErrRender)
		}
		if err != nil {
			return fmt.Errorf("slide %d: %w", i+1, err)
		}
	}
	return nil
}

func (p *Presentation) renderTitle(slide *ppt.Slide, v TitleSlide) {
	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(marginLeft).SetOffsetY(int64(1.6 * emuPerInch))
	titleShape.SetWidth(contentWidth).SetHeight(int64(1.0 * emuPerInch))
	tr := titleShape.CreateTextRun(v.Title)
	tr.GetFont().SetSize(p.style.TitleSize).SetBold(true).SetColor(ppt.NewColor(p.theme.Primary.argb()))
	alignCenter(titleShape.GetActiveParagraph())

	if v.Subtitle == "" && v.Author == "" {
		return
	}

	subShape := slide.CreateRichTextShape()
	subShape.SetOffsetX(int64(1.0 * emuPerInch)).SetOffsetY(int64(2.8 * emuPerInch))
	subShape.SetWidth(int64(8.0 * emuPerInch)).SetHeight(int64(1.2 * emuPerInch))
	first := true
	if v.Subtitle != "" {
		str := subShape.CreateTextRun(v.Subtitle)
		str.GetFont().SetSize(p.style.SubtitleSize).SetColor(ppt.NewColor(p.theme.Accent.argb()))
		alignCenter(subShape.GetActiveParagraph())
		first = false
	}
	if v.Author != "" {
		if !first {
			subShape.CreateParagraph()
		}
		atr := subShape.CreateTextRun("Presented by: " + v.Author)
		atr.GetFont().SetSize(p.style.SubtitleSize).SetColor(ppt.NewColor(p.theme.Accent.argb()))
		alignCenter(subShape.GetActiveParagraph())
	}
}

// renderHeading places the shared slide heading used by every
// non-title, non-section kind.
func (p *Presentation) renderHeading(slide *ppt.Slide, title string) {
	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(marginLeft).SetOffsetY(int64(0.3 * emuPerInch))
	titleShape.SetWidth(contentWidth).SetHeight(int64(0.8 * emuPerInch))
	tr := titleShape.CreateTextRun(title)
	tr.GetFont().SetSize(p.style.HeadingSize).SetBold(true).SetColor(ppt.NewColor(p.theme.Primary.argb()))
}

func (p *Presentation) renderContent(slide *ppt.Slide, v ContentSlide) {
	p.renderHeading(slide, v.Title)
	body := slide.CreateRichTextShape()
	body.SetOffsetX(marginLeft).SetOffsetY(int64(1.3 * emuPerInch))
	body.SetWidth(contentWidth).SetHeight(int64(4.0 * emuPerInch))
	p.renderLines(body, FormatItems(v.Items, v.Layout))
}

// Column text is rendered verbatim: callers decide per line whether a
// column line is a label or a bulleted point.
func (p *Presentation) renderTwoColumn(slide *ppt.Slide, v TwoColumnSlide) {
	p.renderHeading(slide, v.Title)

	left := slide.CreateRichTextShape()
	left.SetOffsetX(marginLeft).SetOffsetY(int64(1.3 * emuPerInch))
	left.SetWidth(int64(4.4 * emuPerInch)).SetHeight(int64(4.0 * emuPerInch))
	p.renderLines(left, v.Left)

	right := slide.CreateRichTextShape()
	right.SetOffsetX(int64(5.2 * emuPerInch)).SetOffsetY(int64(1.3 * emuPerInch))
	right.SetWidth(int64(4.4 * emuPerInch)).SetHeight(int64(4.0 * emuPerInch))
	p.renderLines(right, v.Right)
}

// renderLines writes one body paragraph per line into an already
// placed text shape.
func (p *Presentation) renderLines(shape *ppt.RichTextShape, lines []string) {
	for i, line := range lines {
		if i > 0 {
			shape.CreateParagraph()
		}
		tr := shape.CreateTextRun(line)
		tr.GetFont().SetSize(p.style.BodySize).SetColor(ppt.NewColor(p.style.BodyColor.argb()))
	}
}

// FormatItems applies the render-time item prefixes: a bullet glyph,
// or the 1-based position for numbered layout. Exporters use it to
// show the same text a rendered slide carries.
func FormatItems(items []string, layout Layout) []string {
	out := make([]string, len(items))
	for i, item := range items {
		if layout == LayoutNumbered {
			out[i] = fmt.Sprintf("%d. %s", i+1, item)
		} else {
			out[i] = "• " + item
		}
	}
	return out
}

func (p *Presentation) renderImage(slide *ppt.Slide, v ImageSlide) error {
	p.renderHeading(slide, v.Title)

	data, err := os.ReadFile(v.ImagePath)
	if err != nil {
		return fmt.Errorf("image %q: %w", v.ImagePath, ErrImageNotFound)
	}

	imgShape := slide.CreateDrawingShape()
	imgShape.SetImageData(data, imageMIME(v.ImagePath))
	imgShape.SetOffsetX(int64(2.0 * emuPerInch)).SetOffsetY(int64(1.1 * emuPerInch))
	imgShape.SetWidth(int64(6.0 * emuPerInch)).SetHeight(int64(3.9 * emuPerInch))

	if v.Caption != "" {
		capShape := slide.CreateRichTextShape()
		capShape.SetOffsetX(marginLeft).SetOffsetY(int64(5.1 * emuPerInch))
		capShape.SetWidth(contentWidth).SetHeight(int64(0.35 * emuPerInch))
		tr := capShape.CreateTextRun(v.Caption)
		tr.GetFont().SetSize(p.style.CaptionSize).SetColor(ppt.NewColor(p.style.CaptionColor.argb()))
		alignCenter(capShape.GetActiveParagraph())
	}
	return nil
}

func (p *Presentation) renderChart(slide *ppt.Slide, v ChartSlide) error {
	p.renderHeading(slide, v.Title)

	img, err := chart.Render(chartKind(v.Chart), v.Dataset.Categories, chartSeries(v.Dataset), chart.Options{
		Width:   900,
		Height:  630,
		Palette: ThemePalette(p.theme),
	})
	if err != nil {
		return fmt.Errorf("chart %q: %v: %w", v.Title, err, ErrRender)
	}
	data, err := chart.EncodePNG(img)
	if err != nil {
		return fmt.Errorf("chart %q: %v: %w", v.Title, err, ErrRender)
	}

	imgShape := slide.CreateDrawingShape()
	imgShape.SetImageData(data, "image/png")
	imgShape.SetOffsetX(int64(2.0 * emuPerInch)).SetOffsetY(int64(1.0 * emuPerInch))
	imgShape.SetWidth(int64(6.0 * emuPerInch)).SetHeight(int64(4.2 * emuPerInch))
	return nil
}

func (p *Presentation) renderSection(slide *ppt.Slide, v SectionSlide) {
	bg := p.theme.Primary
	if v.Background != nil {
		bg = *v.Background
	}

	// Full-bleed background rectangle; the authoring surface has no
	// slide background setter.
	back := slide.CreateRichTextShape()
	back.SetOffsetX(0).SetOffsetY(0)
	back.SetWidth(slideWidth).SetHeight(slideHeight)
	back.SetFill(solidFill(bg.argb()))

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(marginLeft).SetOffsetY(int64(2.2 * emuPerInch))
	titleShape.SetWidth(contentWidth).SetHeight(int64(1.2 * emuPerInch))
	tr := titleShape.CreateTextRun(v.Title)
	tr.GetFont().SetSize(p.style.SectionSize).SetBold(true).SetColor(ppt.ColorWhite)
	alignCenter(titleShape.GetActiveParagraph())
}

func serialize(pres *ppt.Presentation) ([]byte, error) {
	w, err := ppt.NewWriter(pres, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("create writer: %v: %w", err, ErrRender)
	}
	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write presentation: %v: %w", err, ErrRender)
	}
	return buf.Bytes(), nil
}

func imageMIME(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	default:
		return "image/png"
	}
}

func chartKind(k ChartKind) chart.Kind {
	switch k {
	case ChartLine:
		return chart.Line
	case ChartPie:
		return chart.Pie
	default:
		return chart.Column
	}
}

func chartSeries(d ChartDataset) []chart.Series {
	out := make([]chart.Series, len(d.Series))
	for i, s := range d.Series {
		out[i] = chart.Series{Name: s.Name, Values: append([]float64(nil), s.Values...)}
	}
	return out
}

// ThemePalette derives the chart palette from a theme: the two theme
// colors plus progressively lightened variants.
func ThemePalette(t Theme) []color.RGBA {
	out := make([]color.RGBA, 0, 6)
	for _, f := range []float64{0, 0.45, 0.7} {
		for _, c := range []RGB{t.Primary, t.Accent} {
			out = append(out, color.RGBA{R: lift(c.R, f), G: lift(c.G, f), B: lift(c.B, f), A: 255})
		}
	}
	return out
}

// lift moves a channel toward white by fraction f.
func lift(ch int, f float64) uint8 {
	return uint8(float64(ch) + (255-float64(ch))*f)
}
