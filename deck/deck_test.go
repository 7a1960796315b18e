package deck

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestImage writes a small PNG and returns its path.
func writeTestImage(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "figure.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return path
}

func sampleDataset() ChartDataset {
	return ChartDataset{
		Categories: []string{"Q1", "Q2", "Q3"},
		Series: []Series{
			{Name: "Adoption", Values: []float64{10, 20, 30}},
		},
	}
}

func TestSlideCountMatchesAppends(t *testing.T) {
	p := New()
	if p.SlideCount() != 0 {
		t.Fatalf("new presentation has %d slides, want 0", p.SlideCount())
	}

	p.AddTitleSlide("Title", "Subtitle", "Author")
	p.AddContentSlide("Content", []string{"one", "two"}, LayoutBullet)
	p.AddTwoColumnSlide("Columns", []string{"l"}, []string{"r", "r2"})
	p.AddImageSlide("Image", "does-not-exist.png", "caption")
	if _, err := p.AddChartSlide("Chart", sampleDataset(), ChartColumn); err != nil {
		t.Fatalf("AddChartSlide: %v", err)
	}
	if _, err := p.AddSectionSlide("Section", nil); err != nil {
		t.Fatalf("AddSectionSlide: %v", err)
	}

	if got := p.SlideCount(); got != 6 {
		t.Errorf("SlideCount() = %d, want 6", got)
	}
}

func TestSetThemeValidatesChannels(t *testing.T) {
	p := New()
	orig := p.Theme()

	err := p.SetTheme(RGB{R: 256, G: 0, B: 0}, RGB{R: 0, G: 0, B: 0})
	if !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("SetTheme with channel 256: got %v, want ErrInvalidColor", err)
	}
	if p.Theme() != orig {
		t.Errorf("failed SetTheme changed the theme")
	}

	err = p.SetTheme(RGB{R: 0, G: 0, B: 0}, RGB{R: 0, G: -1, B: 0})
	if !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("SetTheme with channel -1: got %v, want ErrInvalidColor", err)
	}

	if err := p.SetTheme(RGB{R: 255, G: 255, B: 255}, RGB{R: 0, G: 0, B: 0}); err != nil {
		t.Fatalf("SetTheme with boundary channels: %v", err)
	}
	if p.Theme().Primary != (RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("theme not replaced after valid SetTheme")
	}
}

func TestAddChartSlideRejectsMalformedDataset(t *testing.T) {
	p := New()

	bad := ChartDataset{
		Categories: []string{"Q1", "Q2"},
		Series:     []Series{{Name: "S", Values: []float64{1, 2, 3}}},
	}
	if _, err := p.AddChartSlide("Chart", bad, ChartColumn); !errors.Is(err, ErrMalformedDataset) {
		t.Fatalf("length mismatch: got %v, want ErrMalformedDataset", err)
	}

	empty := ChartDataset{Categories: []string{"Q1"}}
	if _, err := p.AddChartSlide("Chart", empty, ChartColumn); !errors.Is(err, ErrMalformedDataset) {
		t.Fatalf("empty series list: got %v, want ErrMalformedDataset", err)
	}

	if p.SlideCount() != 0 {
		t.Errorf("rejected appends still counted: SlideCount() = %d", p.SlideCount())
	}
}

func TestAddSectionSlideValidatesBackground(t *testing.T) {
	p := New()

	bad := RGB{R: 10, G: 300, B: 10}
	if _, err := p.AddSectionSlide("Part One", &bad); !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("invalid background: got %v, want ErrInvalidColor", err)
	}
	if p.SlideCount() != 0 {
		t.Fatalf("rejected section slide was appended")
	}

	ok := RGB{R: 10, G: 30, B: 10}
	if _, err := p.AddSectionSlide("Part One", &ok); err != nil {
		t.Fatalf("valid background: %v", err)
	}
}

func TestSlideHandles(t *testing.T) {
	p := New()
	r1 := p.AddTitleSlide("One", "", "")
	r2 := p.AddContentSlide("Two", []string{"a"}, LayoutNumbered)

	if r1.Index != 0 || r2.Index != 1 {
		t.Errorf("handle indexes = %d, %d, want 0, 1", r1.Index, r2.Index)
	}
	if r1.Kind != KindTitle || r2.Kind != KindContent {
		t.Errorf("handle kinds = %v, %v", r1.Kind, r2.Kind)
	}
	if r1.ID == r2.ID {
		t.Errorf("handles share an ID")
	}

	s, ok := p.Slide(r2)
	if !ok {
		t.Fatalf("Slide(r2) not found")
	}
	cs, ok := s.(ContentSlide)
	if !ok {
		t.Fatalf("Slide(r2) = %T, want ContentSlide", s)
	}
	if cs.Title != "Two" || cs.Layout != LayoutNumbered {
		t.Errorf("inspected slide = %+v", cs)
	}

	if _, ok := p.Slide(SlideRef{}); ok {
		t.Errorf("zero handle resolved to a slide")
	}
}

func TestAppendCopiesCallerValues(t *testing.T) {
	p := New()
	items := []string{"alpha", "beta"}
	p.AddContentSlide("C", items, LayoutBullet)
	items[0] = "mutated"

	got := p.Slides()[0].(ContentSlide)
	if got.Items[0] != "alpha" {
		t.Errorf("stored items alias the caller slice: %q", got.Items[0])
	}
}

func TestInspectionReturnsCopies(t *testing.T) {
	p := New()
	ref, err := p.AddChartSlide("Chart", sampleDataset(), ChartLine)
	if err != nil {
		t.Fatalf("AddChartSlide: %v", err)
	}

	s, _ := p.Slide(ref)
	s.(ChartSlide).Dataset.Series[0].Values[0] = -999

	again, _ := p.Slide(ref)
	if got := again.(ChartSlide).Dataset.Series[0].Values[0]; got != 10 {
		t.Errorf("mutating an inspected slide leaked into the deck: %v", got)
	}
}

func TestImageSlideAppendDoesNotTouchDisk(t *testing.T) {
	p := New()
	p.AddImageSlide("Image", filepath.Join(t.TempDir(), "never-written.png"), "")
	if p.SlideCount() != 1 {
		t.Errorf("image slide with missing file was rejected at append")
	}
}
