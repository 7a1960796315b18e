package export

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gashok13193/DevOps-Docs/deck"
)

// buildTestDeck assembles a small deck exercising every exporter path:
// a title slide with attribution, numbered content, and two charts.
func buildTestDeck(t *testing.T) *deck.Presentation {
	t.Helper()

	p := deck.New()
	p.AddTitleSlide("Quarterly Review", "Platform engineering", "Release Team")
	p.AddContentSlide("Highlights", []string{"Zero-downtime deploys", "Faster builds"}, deck.LayoutNumbered)

	data := deck.ChartDataset{
		Categories: []string{"Jan", "Feb", "Mar"},
		Series: []deck.Series{
			{Name: "Deploys", Values: []float64{14, 18, 22}},
			{Name: "Rollbacks", Values: []float64{2, 1, 0}},
		},
	}
	if _, err := p.AddChartSlide("Deploy cadence", data, deck.ChartColumn); err != nil {
		t.Fatalf("add column chart: %v", err)
	}
	if _, err := p.AddChartSlide("Trend", data, deck.ChartLine); err != nil {
		t.Fatalf("add line chart: %v", err)
	}
	p.AddSectionSlide("Appendix", nil)
	return p
}

// zipEntries lists the archive entry names of an OOXML byte slice.
func zipEntries(t *testing.T, data []byte) []string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a zip archive: %v", err)
	}
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}

func hasEntry(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}

func TestHandoutExport(t *testing.T) {
	p := buildTestDeck(t)

	data, err := NewHandoutService().ExportHandout(p, "")
	if err != nil {
		t.Fatalf("ExportHandout: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("handout PDF is empty")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not start with a PDF header: %q", data[:8])
	}

	path := filepath.Join(t.TempDir(), "handout.pdf")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("save handout: %v", err)
	}
	t.Logf("handout PDF: %d bytes (%.2f KB)", len(data), float64(len(data))/1024)
}

func TestWorkbookExport(t *testing.T) {
	p := buildTestDeck(t)

	data, err := NewWorkbookService().ExportChartData(p, "Quarterly data")
	if err != nil {
		t.Fatalf("ExportChartData: %v", err)
	}

	names := zipEntries(t, data)
	if !hasEntry(names, "xl/workbook.xml") {
		t.Fatalf("workbook archive is missing xl/workbook.xml, has %v", names)
	}
	sheets := 0
	for _, n := range names {
		if strings.HasPrefix(n, "xl/worksheets/sheet") {
			sheets++
		}
	}
	// Overview plus one sheet per chart slide.
	if sheets != 3 {
		t.Fatalf("got %d worksheets, want 3", sheets)
	}

	path := filepath.Join(t.TempDir(), "charts.xlsx")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	t.Logf("chart workbook: %d bytes, %d sheets", len(data), sheets)
}

func TestWorkbookRequiresChartData(t *testing.T) {
	p := deck.New()
	p.AddTitleSlide("No charts here", "", "")

	if _, err := NewWorkbookService().ExportChartData(p, ""); !errors.Is(err, ErrNoChartData) {
		t.Fatalf("got %v, want ErrNoChartData", err)
	}
}

func TestOutlineExport(t *testing.T) {
	p := buildTestDeck(t)

	data, err := NewOutlineService().ExportOutline(p, "")
	if err != nil {
		t.Fatalf("ExportOutline: %v", err)
	}

	names := zipEntries(t, data)
	if !hasEntry(names, "word/document.xml") {
		t.Fatalf("outline archive is missing word/document.xml, has %v", names)
	}

	path := filepath.Join(t.TempDir(), "outline.docx")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("save outline: %v", err)
	}
	t.Logf("outline document: %d bytes", len(data))
}

func TestImagesExport(t *testing.T) {
	p := buildTestDeck(t)

	dir := t.TempDir()
	pptxPath, err := p.Save(filepath.Join(dir, "deck.pptx"))
	if err != nil {
		t.Fatalf("save deck: %v", err)
	}

	outDir := filepath.Join(dir, "slides")
	paths, err := NewImagesService().ExportPNGs(pptxPath, outDir)
	if err != nil {
		t.Fatalf("ExportPNGs: %v", err)
	}
	if len(paths) != p.SlideCount() {
		t.Fatalf("got %d images, want %d", len(paths), p.SlideCount())
	}

	for i, path := range paths {
		want := filepath.Join(outDir, fmt.Sprintf("slide_%d.png", i+1))
		if path != want {
			t.Errorf("image %d path = %s, want %s", i, path, want)
		}
		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("open %s: %v", path, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		if img.Bounds().Dx() != 960 {
			t.Errorf("image %d width = %d, want 960", i, img.Bounds().Dx())
		}
	}
}

func TestImagesExportMissingFile(t *testing.T) {
	_, err := NewImagesService().ExportPNGs(filepath.Join(t.TempDir(), "missing.pptx"), t.TempDir())
	if err == nil {
		t.Fatal("expected an error for a missing presentation")
	}
}

func TestBuildOutline(t *testing.T) {
	p := buildTestDeck(t)

	entries := buildOutline(p)
	if len(entries) != p.SlideCount() {
		t.Fatalf("got %d entries, want %d", len(entries), p.SlideCount())
	}

	title := entries[0]
	if title.Kind != "title" || title.Title != "Quarterly Review" {
		t.Fatalf("unexpected first entry: %+v", title)
	}
	if !containsLine(title.Lines, "Presented by: Release Team") {
		t.Errorf("title entry lacks attribution line: %v", title.Lines)
	}

	content := entries[1]
	if !containsLine(content.Lines, "1. Zero-downtime deploys") {
		t.Errorf("numbered content not prefixed: %v", content.Lines)
	}

	chartEntry := entries[2]
	if !containsLine(chartEntry.Lines, "Chart: 3 categories, 2 series") {
		t.Errorf("chart entry summary missing: %v", chartEntry.Lines)
	}
}

func TestDeckTitleFallback(t *testing.T) {
	p := deck.New()
	p.AddContentSlide("Agenda", []string{"One"}, deck.LayoutBullet)
	if got := deckTitle(p); got != "Presentation Handout" {
		t.Errorf("deckTitle fallback = %q", got)
	}

	p2 := deck.New()
	p2.AddTitleSlide("Roadmap 2026", "", "")
	if got := deckTitle(p2); got != "Roadmap 2026" {
		t.Errorf("deckTitle = %q, want Roadmap 2026", got)
	}
}

func containsLine(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}
