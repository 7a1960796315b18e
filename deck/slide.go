package deck

// SlideKind identifies a slide variant.
type SlideKind int

const (
	KindTitle SlideKind = iota
	KindContent
	KindTwoColumn
	KindImage
	KindChart
	KindSection
)

// String returns a short lowercase name for the kind.
func (k SlideKind) String() string {
	switch k {
	case KindTitle:
		return "title"
	case KindContent:
		return "content"
	case KindTwoColumn:
		return "two-column"
	case KindImage:
		return "image"
	case KindChart:
		return "chart"
	case KindSection:
		return "section"
	}
	return "unknown"
}

// Layout selects how content slide items are presented. The zero
// value is bullet layout.
type Layout int

const (
	LayoutBullet Layout = iota
	LayoutNumbered
)

// ChartKind selects the plot type of a chart slide. The zero value
// is a column chart.
type ChartKind int

const (
	ChartColumn ChartKind = iota
	ChartLine
	ChartPie
)

// Slide is one appended slide. The concrete type is one of
// TitleSlide, ContentSlide, TwoColumnSlide, ImageSlide, ChartSlide or
// SectionSlide; rendering is exhaustive over that set. Slides are
// immutable once appended.
type Slide interface {
	Kind() SlideKind

	// sealed keeps the variant set closed to this package.
	sealed()
}

// TitleSlide opens a deck. A non-empty Author renders as an
// attribution line beneath the subtitle.
type TitleSlide struct {
	Title    string
	Subtitle string
	Author   string
}

func (TitleSlide) Kind() SlideKind { return KindTitle }
func (TitleSlide) sealed()         {}

// ContentSlide lists items in insertion order. With LayoutNumbered
// each item is prefixed with its 1-based position at render time; the
// stored items stay unprefixed.
type ContentSlide struct {
	Title  string
	Items  []string
	Layout Layout
}

func (ContentSlide) Kind() SlideKind { return KindContent }
func (ContentSlide) sealed()         {}

// TwoColumnSlide lays out two independent item lists side by side.
// The columns may differ in length; there is no cross-column
// alignment contract.
type TwoColumnSlide struct {
	Title string
	Left  []string
	Right []string
}

func (TwoColumnSlide) Kind() SlideKind { return KindTwoColumn }
func (TwoColumnSlide) sealed()         {}

// ImageSlide embeds an image file. Existence of the file is checked
// at Save, not at append.
type ImageSlide struct {
	Title     string
	ImagePath string
	Caption   string
}

func (ImageSlide) Kind() SlideKind { return KindImage }
func (ImageSlide) sealed()         {}

// ChartSlide plots a dataset. The dataset shape is validated at
// append; rendering draws it as the selected chart kind.
type ChartSlide struct {
	Title   string
	Dataset ChartDataset
	Chart   ChartKind
}

func (ChartSlide) Kind() SlideKind { return KindChart }
func (ChartSlide) sealed()         {}

// SectionSlide is a full-bleed divider. A nil Background renders on
// the theme primary color.
type SectionSlide struct {
	Title      string
	Background *RGB
}

func (SectionSlide) Kind() SlideKind { return KindSection }
func (SectionSlide) sealed()         {}

// cloneSlide deep-copies a slide so inspection never aliases the
// accumulated state.
func cloneSlide(s Slide) Slide {
	switch v := s.(type) {
	case TitleSlide:
		return v
	case ContentSlide:
		v.Items = append([]string(nil), v.Items...)
		return v
	case TwoColumnSlide:
		v.Left = append([]string(nil), v.Left...)
		v.Right = append([]string(nil), v.Right...)
		return v
	case ImageSlide:
		return v
	case ChartSlide:
		v.Dataset = v.Dataset.clone()
		return v
	case SectionSlide:
		if v.Background != nil {
			bg := *v.Background
			v.Background = &bg
		}
		return v
	}
	return s
}
