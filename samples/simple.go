package samples

import "github.com/gashok13193/DevOps-Docs/deck"

// Simple builds a four-slide starter deck: title, bulleted content,
// numbered content and a closing section.
func Simple() (*deck.Presentation, error) {
	p := deck.New()

	p.AddTitleSlide(
		"My First Deck",
		"Generated straight from Go",
		"Platform Team",
	)

	p.AddContentSlide(
		"Why Generate Slides?",
		[]string{
			"Automation saves time",
			"Consistent formatting",
			"Data-driven presentations",
			"Integration with other tools",
			"Version control friendly",
		},
		deck.LayoutBullet,
	)

	p.AddContentSlide(
		"Getting Started",
		[]string{
			"Create a presentation",
			"Append slides in order",
			"Save to a .pptx file",
		},
		deck.LayoutNumbered,
	)

	if _, err := p.AddSectionSlide("Thank You!", nil); err != nil {
		return nil, err
	}
	return p, nil
}
