package samples

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gashok13193/DevOps-Docs/deck"
)

func TestSimpleDeck(t *testing.T) {
	p, err := Simple()
	if err != nil {
		t.Fatalf("Simple: %v", err)
	}
	if got := p.SlideCount(); got != 4 {
		t.Errorf("slide count = %d, want 4", got)
	}
}

func TestDevOpsDeck(t *testing.T) {
	p, err := DevOps()
	if err != nil {
		t.Fatalf("DevOps: %v", err)
	}
	if got := p.SlideCount(); got != 14 {
		t.Errorf("slide count = %d, want 14", got)
	}

	theme := p.Theme()
	if theme.Primary != (deck.RGB{R: 31, G: 73, B: 125}) {
		t.Errorf("primary theme color = %+v", theme.Primary)
	}

	slides := p.Slides()
	if _, ok := slides[0].(deck.TitleSlide); !ok {
		t.Errorf("first slide is %s, want title", slides[0].Kind())
	}
	charts := 0
	for _, s := range slides {
		if _, ok := s.(deck.ChartSlide); ok {
			charts++
		}
	}
	if charts != 1 {
		t.Errorf("got %d chart slides, want 1", charts)
	}
}

func TestFeaturesDeckCoversEveryKind(t *testing.T) {
	dir := t.TempDir()
	p, err := Features(dir)
	if err != nil {
		t.Fatalf("Features: %v", err)
	}

	kinds := map[deck.SlideKind]bool{}
	chartKinds := map[deck.ChartKind]bool{}
	for _, s := range p.Slides() {
		kinds[s.Kind()] = true
		if c, ok := s.(deck.ChartSlide); ok {
			chartKinds[c.Chart] = true
		}
	}
	for _, k := range []deck.SlideKind{
		deck.KindTitle, deck.KindContent, deck.KindTwoColumn,
		deck.KindImage, deck.KindChart, deck.KindSection,
	} {
		if !kinds[k] {
			t.Errorf("deck is missing a %s slide", k)
		}
	}
	for _, k := range []deck.ChartKind{deck.ChartColumn, deck.ChartLine, deck.ChartPie} {
		if !chartKinds[k] {
			t.Errorf("deck is missing chart kind %v", k)
		}
	}

	// The image asset must exist so Save's existence check passes.
	asset := filepath.Join(dir, "efficiency_comparison.png")
	if _, err := os.Stat(asset); err != nil {
		t.Fatalf("asset not written: %v", err)
	}
	if _, err := p.Save(filepath.Join(dir, "feature_tour.pptx")); err != nil {
		t.Fatalf("save: %v", err)
	}
}

func TestIntroDeck(t *testing.T) {
	p, err := Intro()
	if err != nil {
		t.Fatalf("Intro: %v", err)
	}
	if got := p.SlideCount(); got != 6 {
		t.Errorf("slide count = %d, want 6", got)
	}
}

func TestRunAll(t *testing.T) {
	dir := t.TempDir()

	results, err := RunAll(dir)
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}

	for _, r := range results {
		if !strings.HasSuffix(r.Path, ".pptx") {
			t.Errorf("%s: path %s lacks .pptx extension", r.Name, r.Path)
		}
		info, err := os.Stat(r.Path)
		if err != nil {
			t.Errorf("%s: %v", r.Name, err)
			continue
		}
		if info.Size() != r.Size || r.Size == 0 {
			t.Errorf("%s: size %d, stat says %d", r.Name, r.Size, info.Size())
		}
	}
}
