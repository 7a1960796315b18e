// Package deck builds PowerPoint presentations from an ordered
// sequence of slide descriptions. A Presentation accumulates slides
// and theme settings purely in memory; nothing touches the filesystem
// until Save, which renders every slide in append order through the
// GoPPT authoring library and writes one .pptx file.
package deck

import (
	"fmt"

	"github.com/google/uuid"
)

// SlideRef is the handle returned by every append. It identifies the
// slide for later inspection; it carries no mutation path.
type SlideRef struct {
	ID    uuid.UUID
	Index int
	Kind  SlideKind
}

// Presentation accumulates slides until Save. Not safe for concurrent
// mutation; use one Presentation per generation task.
type Presentation struct {
	theme        Theme
	style        Style
	templatePath string
	slides       []Slide
	refs         []SlideRef
}

// New returns an empty Presentation with the default theme and style.
func New() *Presentation {
	return &Presentation{
		theme: DefaultTheme(),
		style: DefaultStyle(),
	}
}

// NewFromTemplate returns an empty Presentation whose output will be
// built on top of the given .pptx file; the template's own slides
// precede the appended ones. Fails with ErrTemplateNotFound when the
// path does not resolve to a readable presentation.
func NewFromTemplate(path string) (*Presentation, error) {
	if err := probeTemplate(path); err != nil {
		return nil, err
	}
	p := New()
	p.templatePath = path
	return p, nil
}

// SetTheme replaces the theme. Either color out of range fails with
// ErrInvalidColor and leaves the current theme in place.
func (p *Presentation) SetTheme(primary, accent RGB) error {
	if err := primary.Validate(); err != nil {
		return fmt.Errorf("primary color: %w", err)
	}
	if err := accent.Validate(); err != nil {
		return fmt.Errorf("accent color: %w", err)
	}
	p.theme = Theme{Primary: primary, Accent: accent}
	return nil
}

func (p *Presentation) append(s Slide) SlideRef {
	ref := SlideRef{ID: uuid.New(), Index: len(p.slides), Kind: s.Kind()}
	p.slides = append(p.slides, s)
	p.refs = append(p.refs, ref)
	return ref
}

// AddTitleSlide appends a title slide. A non-empty author renders as
// an attribution line beneath the subtitle.
func (p *Presentation) AddTitleSlide(title, subtitle, author string) SlideRef {
	return p.append(TitleSlide{Title: title, Subtitle: subtitle, Author: author})
}

// AddContentSlide appends a content slide; items render in insertion
// order under the given layout.
func (p *Presentation) AddContentSlide(title string, items []string, layout Layout) SlideRef {
	return p.append(ContentSlide{
		Title:  title,
		Items:  append([]string(nil), items...),
		Layout: layout,
	})
}

// AddTwoColumnSlide appends a slide with two independent item lists.
func (p *Presentation) AddTwoColumnSlide(title string, left, right []string) SlideRef {
	return p.append(TwoColumnSlide{
		Title: title,
		Left:  append([]string(nil), left...),
		Right: append([]string(nil), right...),
	})
}

// AddImageSlide appends an image slide. The image file is not read
// here; a missing or unreadable file fails Save with ErrImageNotFound.
func (p *Presentation) AddImageSlide(title, imagePath, caption string) SlideRef {
	return p.append(ImageSlide{Title: title, ImagePath: imagePath, Caption: caption})
}

// AddChartSlide appends a chart slide. The dataset shape is validated
// here, before any save is attempted: a length mismatch or an empty
// series list fails with ErrMalformedDataset and appends nothing.
func (p *Presentation) AddChartSlide(title string, data ChartDataset, kind ChartKind) (SlideRef, error) {
	if err := data.Validate(); err != nil {
		return SlideRef{}, err
	}
	return p.append(ChartSlide{Title: title, Dataset: data.clone(), Chart: kind}), nil
}

// AddSectionSlide appends a full-bleed divider slide. A non-nil
// background color is validated like theme colors.
func (p *Presentation) AddSectionSlide(title string, background *RGB) (SlideRef, error) {
	if background != nil {
		if err := background.Validate(); err != nil {
			return SlideRef{}, fmt.Errorf("background color: %w", err)
		}
		bg := *background
		background = &bg
	}
	return p.append(SectionSlide{Title: title, Background: background}), nil
}

// SlideCount returns the number of successfully appended slides.
func (p *Presentation) SlideCount() int {
	return len(p.slides)
}

// Slides returns deep copies of the accumulated slides in append order.
func (p *Presentation) Slides() []Slide {
	out := make([]Slide, len(p.slides))
	for i, s := range p.slides {
		out[i] = cloneSlide(s)
	}
	return out
}

// Slide returns a deep copy of the slide a handle refers to.
func (p *Presentation) Slide(ref SlideRef) (Slide, bool) {
	for i, r := range p.refs {
		if r.ID == ref.ID {
			return cloneSlide(p.slides[i]), true
		}
	}
	return nil, false
}

// Theme returns the current theme.
func (p *Presentation) Theme() Theme {
	return p.theme
}

// Style returns the typography defaults fixed at construction.
func (p *Presentation) Style() Style {
	return p.style
}
