package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/gashok13193/DevOps-Docs/config"
	"github.com/gashok13193/DevOps-Docs/deck"
	"github.com/gashok13193/DevOps-Docs/export"
	"github.com/gashok13193/DevOps-Docs/logger"
)

// wizardMeta holds the deck metadata group answers.
type wizardMeta struct {
	Title    string
	Subtitle string
	Author   string
	Theme    string
}

// themePair is a named primary/accent pair offered by the wizard.
type themePair struct {
	Primary deck.RGB
	Accent  deck.RGB
}

var wizardThemes = map[string]themePair{
	"navy":   {deck.RGB{R: 31, G: 73, B: 125}, deck.RGB{R: 79, G: 129, B: 189}},
	"forest": {deck.RGB{R: 34, G: 85, B: 51}, deck.RGB{R: 106, G: 168, B: 79}},
	"slate":  {deck.RGB{R: 51, G: 63, B: 80}, deck.RGB{R: 119, G: 136, B: 153}},
}

func runNew(out string) error {
	cfg, log, err := startRun()
	if err != nil {
		return err
	}
	defer log.Close()

	p, err := wizardBuildDeck(cfg)
	if err != nil {
		return err
	}

	if out == "" {
		out = filepath.Join(cfg.OutputDir, "presentation.pptx")
		if err := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Save as").Value(&out).Validate(validateNonEmpty),
		)).Run(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	path, err := p.Save(out)
	if err != nil {
		return err
	}
	fmt.Printf("Saved %s (%d slides)\n", path, p.SlideCount())
	log.Logf("saved deck %s (%d slides)", path, p.SlideCount())

	return wizardExports(p, path, log)
}

// wizardBuildDeck walks the metadata group, then the add-slide loop.
func wizardBuildDeck(cfg config.Config) (*deck.Presentation, error) {
	meta, err := wizardPromptMeta(cfg)
	if err != nil {
		return nil, err
	}

	pair, ok := wizardThemes[meta.Theme]
	if !ok {
		pair = themePair{
			Primary: deck.RGB{R: cfg.Primary.R, G: cfg.Primary.G, B: cfg.Primary.B},
			Accent:  deck.RGB{R: cfg.Accent.R, G: cfg.Accent.G, B: cfg.Accent.B},
		}
	}

	p := deck.New()
	if err := p.SetTheme(pair.Primary, pair.Accent); err != nil {
		return nil, err
	}
	p.AddTitleSlide(meta.Title, meta.Subtitle, meta.Author)

	for {
		if err := wizardPromptSlide(p); err != nil {
			return nil, err
		}

		var more bool
		if err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().Title("Add another slide?").Value(&more),
		)).Run(); err != nil {
			return nil, err
		}
		if !more {
			return p, nil
		}
	}
}

func wizardPromptMeta(cfg config.Config) (wizardMeta, error) {
	m := wizardMeta{Author: cfg.Author, Theme: "configured"}

	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Deck title").Value(&m.Title).Validate(validateNonEmpty),
		huh.NewInput().Title("Subtitle").Value(&m.Subtitle),
		huh.NewInput().Title("Author").Value(&m.Author),
		huh.NewSelect[string]().
			Title("Theme").
			Options(
				huh.NewOption("Configured default", "configured"),
				huh.NewOption("Navy", "navy"),
				huh.NewOption("Forest", "forest"),
				huh.NewOption("Slate", "slate"),
			).
			Value(&m.Theme),
	)).Run()
	return m, err
}

func wizardPromptSlide(p *deck.Presentation) error {
	var kind string
	if err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Slide kind").
			Options(
				huh.NewOption("Content", "content"),
				huh.NewOption("Two-column", "two-column"),
				huh.NewOption("Image", "image"),
				huh.NewOption("Chart", "chart"),
				huh.NewOption("Section", "section"),
			).
			Value(&kind),
	)).Run(); err != nil {
		return err
	}

	switch kind {
	case "content":
		return wizardContentSlide(p)
	case "two-column":
		return wizardTwoColumnSlide(p)
	case "image":
		return wizardImageSlide(p)
	case "chart":
		return wizardChartSlide(p)
	case "section":
		return wizardSectionSlide(p)
	}
	return nil
}

func wizardContentSlide(p *deck.Presentation) error {
	var title, items string
	layout := "bullet"

	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Slide title").Value(&title).Validate(validateNonEmpty),
		huh.NewText().Title("Items (one per line)").Value(&items).Validate(validateNonEmpty),
		huh.NewSelect[string]().
			Title("Layout").
			Options(
				huh.NewOption("Bulleted", "bullet"),
				huh.NewOption("Numbered", "numbered"),
			).
			Value(&layout),
	)).Run(); err != nil {
		return err
	}

	l := deck.LayoutBullet
	if layout == "numbered" {
		l = deck.LayoutNumbered
	}
	p.AddContentSlide(title, splitLines(items), l)
	return nil
}

func wizardTwoColumnSlide(p *deck.Presentation) error {
	var title, left, right string

	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Slide title").Value(&title).Validate(validateNonEmpty),
		huh.NewText().Title("Left column (one line per row)").Value(&left),
		huh.NewText().Title("Right column (one line per row)").Value(&right),
	)).Run(); err != nil {
		return err
	}

	p.AddTwoColumnSlide(title, splitLines(left), splitLines(right))
	return nil
}

func wizardImageSlide(p *deck.Presentation) error {
	var title, path, caption string

	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Slide title").Value(&title).Validate(validateNonEmpty),
		huh.NewInput().Title("Image path (existence checked at save)").Value(&path).Validate(validateNonEmpty),
		huh.NewInput().Title("Caption").Value(&caption),
	)).Run(); err != nil {
		return err
	}

	p.AddImageSlide(title, path, caption)
	return nil
}

func wizardChartSlide(p *deck.Presentation) error {
	var title, cats string
	kind := "column"

	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Slide title").Value(&title).Validate(validateNonEmpty),
		huh.NewSelect[string]().
			Title("Chart kind").
			Options(
				huh.NewOption("Column", "column"),
				huh.NewOption("Line", "line"),
				huh.NewOption("Pie", "pie"),
			).
			Value(&kind),
		huh.NewInput().Title("Categories (comma-separated)").Value(&cats).Validate(validateNonEmpty),
	)).Run(); err != nil {
		return err
	}

	data := deck.ChartDataset{Categories: splitList(cats)}
	for {
		s, err := wizardPromptSeries(len(data.Categories))
		if err != nil {
			return err
		}
		data.Series = append(data.Series, s)

		var more bool
		if err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().Title("Add another series?").Value(&more),
		)).Run(); err != nil {
			return err
		}
		if !more {
			break
		}
	}

	ck := deck.ChartColumn
	switch kind {
	case "line":
		ck = deck.ChartLine
	case "pie":
		ck = deck.ChartPie
	}
	_, err := p.AddChartSlide(title, data, ck)
	return err
}

func wizardPromptSeries(wantValues int) (deck.Series, error) {
	var s deck.Series
	var values string

	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Series name").Value(&s.Name).Validate(validateNonEmpty),
		huh.NewInput().
			Title(fmt.Sprintf("Values (%d comma-separated numbers)", wantValues)).
			Value(&values).
			Validate(validateFloatCount(wantValues)),
	)).Run()
	if err != nil {
		return s, err
	}

	s.Values, _ = parseFloats(values)
	return s, nil
}

func wizardSectionSlide(p *deck.Presentation) error {
	var title, bg string

	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Section title").Value(&title).Validate(validateNonEmpty),
		huh.NewInput().Title("Background r,g,b (empty = theme primary)").Value(&bg).Validate(validateOptionalRGB),
	)).Run(); err != nil {
		return err
	}

	var background *deck.RGB
	if strings.TrimSpace(bg) != "" {
		c, err := parseRGB(bg)
		if err != nil {
			return err
		}
		background = &c
	}
	_, err := p.AddSectionSlide(title, background)
	return err
}

// wizardExports offers the derived artifacts and writes the selected
// ones next to the saved deck.
func wizardExports(p *deck.Presentation, savedPath string, log *logger.Logger) error {
	var picks []string
	if err := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Derived exports").
			Options(
				huh.NewOption("PDF handout", "handout"),
				huh.NewOption("Chart data workbook", "workbook"),
				huh.NewOption("Word outline", "outline"),
				huh.NewOption("Slide images", "images"),
			).
			Value(&picks),
	)).Run(); err != nil {
		return err
	}

	base := strings.TrimSuffix(savedPath, filepath.Ext(savedPath))
	for _, pick := range picks {
		switch pick {
		case "handout":
			data, err := export.NewHandoutService().ExportHandout(p, "")
			if err != nil {
				return err
			}
			if err := writeArtifact(base+"_handout.pdf", data, log); err != nil {
				return err
			}
		case "workbook":
			data, err := export.NewWorkbookService().ExportChartData(p, "")
			if errors.Is(err, export.ErrNoChartData) {
				fmt.Println("  skipped workbook: deck has no chart slides")
				continue
			}
			if err != nil {
				return err
			}
			if err := writeArtifact(base+"_charts.xlsx", data, log); err != nil {
				return err
			}
		case "outline":
			data, err := export.NewOutlineService().ExportOutline(p, "")
			if err != nil {
				return err
			}
			if err := writeArtifact(base+"_outline.docx", data, log); err != nil {
				return err
			}
		case "images":
			dir := base + "_slides"
			paths, err := export.NewImagesService().ExportPNGs(savedPath, dir)
			if err != nil {
				return err
			}
			fmt.Printf("  %s (%d images)\n", dir, len(paths))
			log.Logf("rendered %d slide images into %s", len(paths), dir)
		}
	}
	return nil
}

func writeArtifact(path string, data []byte, log *logger.Logger) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("  %s (%.1f KB)\n", path, float64(len(data))/1024)
	log.Logf("exported %s (%d bytes)", path, len(data))
	return nil
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("must not be empty")
	}
	return nil
}

func validateOptionalRGB(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := parseRGB(s)
	return err
}

// parseRGB reads a "r,g,b" triple with channels 0-255.
func parseRGB(s string) (deck.RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return deck.RGB{}, fmt.Errorf("must be three comma-separated channels, e.g. 31,73,125")
	}
	channels := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 255 {
			return deck.RGB{}, fmt.Errorf("channel %d must be an integer 0-255", i+1)
		}
		channels[i] = n
	}
	return deck.RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func validateFloatCount(want int) func(string) error {
	return func(s string) error {
		vals, err := parseFloats(s)
		if err != nil {
			return err
		}
		if len(vals) != want {
			return fmt.Errorf("need %d values, got %d", want, len(vals))
		}
		return nil
	}
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", strings.TrimSpace(part))
		}
		out = append(out, v)
	}
	return out, nil
}

// splitLines turns a multi-line text answer into trimmed, non-empty
// lines.
func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// splitList turns a comma-separated answer into trimmed, non-empty
// items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if t := strings.TrimSpace(item); t != "" {
			out = append(out, t)
		}
	}
	return out
}
