package samples

import "github.com/gashok13193/DevOps-Docs/deck"

// Intro builds a short language-introduction deck about Go.
func Intro() (*deck.Presentation, error) {
	p := deck.New()
	if err := p.SetTheme(deck.RGB{R: 0, G: 125, B: 156}, deck.RGB{R: 93, G: 201, B: 226}); err != nil {
		return nil, err
	}

	p.AddTitleSlide(
		"Introduction to Go",
		"A practical tour of the language",
		"Developer Enablement",
	)

	p.AddContentSlide(
		"What is Go?",
		[]string{
			"Compiled, statically typed language from Google",
			"Designed in 2007, open sourced in 2009",
			"Garbage collected with first-class concurrency",
			"Single-binary deployments, no runtime to install",
			"One canonical formatting via gofmt",
		},
		deck.LayoutBullet,
	)

	p.AddTwoColumnSlide(
		"Why Teams Pick Go",
		[]string{
			"Language:",
			"• Fast compile times",
			"• Goroutines and channels",
			"• Explicit error handling",
			"• Small, stable spec",
		},
		[]string{
			"Ecosystem:",
			"• Rich standard library",
			"• Module-based dependencies",
			"• Cross-compilation built in",
			"• Strong cloud-native tooling",
		},
	)

	p.AddContentSlide(
		"Standard Tooling",
		[]string{
			"go build - compile packages and binaries",
			"go test - run tests with coverage",
			"go vet - catch suspicious constructs",
			"gofmt - format source the one true way",
			"pprof - profile CPU and memory",
		},
		deck.LayoutBullet,
	)

	adoption := deck.ChartDataset{
		Categories: []string{"2020", "2021", "2022", "2023", "2024", "2025"},
		Series: []deck.Series{
			{Name: "Teams using Go (%)", Values: []float64{62, 68, 74, 79, 84, 88}},
		},
	}
	if _, err := p.AddChartSlide("Go Adoption in Our Org", adoption, deck.ChartLine); err != nil {
		return nil, err
	}

	if _, err := p.AddSectionSlide("Start Today", &deck.RGB{R: 0, G: 125, B: 156}); err != nil {
		return nil, err
	}
	return p, nil
}
