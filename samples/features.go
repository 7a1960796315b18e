package samples

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gashok13193/DevOps-Docs/chart"
	"github.com/gashok13193/DevOps-Docs/deck"
)

// Features builds the full tour deck: every slide kind and all three
// chart kinds. The image slide shows a PNG the builder first renders
// into assetDir.
func Features(assetDir string) (*deck.Presentation, error) {
	p := deck.New()
	if err := p.SetTheme(deck.RGB{R: 45, G: 85, B: 140}, deck.RGB{R: 70, G: 130, B: 200}); err != nil {
		return nil, err
	}

	p.AddTitleSlide(
		"Feature Tour",
		"Every slide kind in one deck",
		"DevOps-Docs",
	)

	if _, err := p.AddSectionSlide("Layouts", &deck.RGB{R: 45, G: 85, B: 140}); err != nil {
		return nil, err
	}

	p.AddContentSlide(
		"Key Features",
		[]string{
			"Programmatic presentation building",
			"Multiple slide layouts and kinds",
			"Chart generation (column, line, pie)",
			"Image slides with captions",
			"Two-column layouts for comparisons",
			"Section dividers with custom colors",
			"Themes applied across the whole deck",
		},
		deck.LayoutBullet,
	)

	p.AddTwoColumnSlide(
		"Manual vs Automated Decks",
		[]string{
			"Manual creation:",
			"• Time-consuming",
			"• Inconsistent formatting",
			"• Hard to reproduce",
			"• Manual data updates",
		},
		[]string{
			"Automated creation:",
			"• Fast and repeatable",
			"• Consistent formatting",
			"• Version controlled",
			"• Real-time data updates",
		},
	)

	if _, err := p.AddSectionSlide("Charts", &deck.RGB{R: 70, G: 130, B: 200}); err != nil {
		return nil, err
	}

	quarterly := deck.ChartDataset{
		Categories: []string{"Q1 2025", "Q2 2025", "Q3 2025", "Q4 2025"},
		Series: []deck.Series{
			{Name: "Revenue ($M)", Values: []float64{120, 145, 162, 188}},
			{Name: "Costs ($M)", Values: []float64{80, 90, 95, 105}},
		},
	}
	if _, err := p.AddChartSlide("Quarterly Performance", quarterly, deck.ChartColumn); err != nil {
		return nil, err
	}

	traffic := deck.ChartDataset{
		Categories: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
		Series: []deck.Series{
			{Name: "Website Traffic", Values: []float64{1200, 1350, 1100, 1800, 2100, 2400}},
		},
	}
	if _, err := p.AddChartSlide("Website Traffic Trends", traffic, deck.ChartLine); err != nil {
		return nil, err
	}

	devices := deck.ChartDataset{
		Categories: []string{"Desktop", "Mobile", "Tablet"},
		Series: []deck.Series{
			{Name: "Usage Share", Values: []float64{45, 40, 15}},
		},
	}
	if _, err := p.AddChartSlide("Device Usage Distribution", devices, deck.ChartPie); err != nil {
		return nil, err
	}

	assetPath, err := writeEfficiencyAsset(assetDir, p.Theme())
	if err != nil {
		return nil, err
	}
	p.AddImageSlide("Efficiency Comparison", assetPath, "Minutes per deck, manual vs generated")

	p.AddContentSlide(
		"Adopting Deck Generation",
		[]string{
			"Pick a recurring report worth automating",
			"Model its slides with the builder API",
			"Wire the data source into the dataset",
			"Schedule the run in your pipeline",
		},
		deck.LayoutNumbered,
	)

	if _, err := p.AddSectionSlide("Conclusion", &deck.RGB{R: 45, G: 85, B: 140}); err != nil {
		return nil, err
	}
	return p, nil
}

// writeEfficiencyAsset renders the comparison chart PNG the image
// slide embeds, returning its path.
func writeEfficiencyAsset(dir string, theme deck.Theme) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create asset directory: %w", err)
	}

	img, err := chart.Render(chart.Column,
		[]string{"Manual", "Generated"},
		[]chart.Series{{Name: "Minutes per deck", Values: []float64{120, 2}}},
		chart.Options{
			Width:   900,
			Height:  630,
			Title:   "Efficiency Comparison",
			Palette: deck.ThemePalette(theme),
		})
	if err != nil {
		return "", fmt.Errorf("failed to render asset chart: %w", err)
	}
	data, err := chart.EncodePNG(img)
	if err != nil {
		return "", fmt.Errorf("failed to encode asset chart: %w", err)
	}

	path := filepath.Join(dir, "efficiency_comparison.png")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write asset chart: %w", err)
	}
	return path, nil
}
