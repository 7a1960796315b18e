package deck

import "fmt"

// RGB is a color expressed as three integer channels in [0, 255].
type RGB struct {
	R int
	G int
	B int
}

// Validate reports ErrInvalidColor when any channel falls outside [0, 255].
func (c RGB) Validate() error {
	for _, ch := range [3]int{c.R, c.G, c.B} {
		if ch < 0 || ch > 255 {
			return fmt.Errorf("channel value %d: %w", ch, ErrInvalidColor)
		}
	}
	return nil
}

// argb returns the FFRRGGBB hex form the authoring library consumes.
func (c RGB) argb() string {
	return fmt.Sprintf("FF%02X%02X%02X", c.R, c.G, c.B)
}

// Theme is the color pair applied to title and accent text when
// slides are rendered. Changing it has no retroactive effect;
// rendering is deferred until Save.
type Theme struct {
	Primary RGB
	Accent  RGB
}

// DefaultTheme returns the standard dark-blue / steel-blue pairing.
func DefaultTheme() Theme {
	return Theme{
		Primary: RGB{R: 31, G: 73, B: 125},
		Accent:  RGB{R: 79, G: 129, B: 189},
	}
}

// Style carries the typography defaults a Presentation renders with.
// It is fixed at construction so that multiple Presentation instances
// stay independent within one process. Sizes are in points.
type Style struct {
	TitleSize    int
	SubtitleSize int
	HeadingSize  int
	BodySize     int
	CaptionSize  int
	SectionSize  int
	BodyColor    RGB
	CaptionColor RGB
}

// DefaultStyle returns the standard slide typography.
func DefaultStyle() Style {
	return Style{
		TitleSize:    44,
		SubtitleSize: 28,
		HeadingSize:  36,
		BodySize:     18,
		CaptionSize:  14,
		SectionSize:  54,
		BodyColor:    RGB{R: 64, G: 64, B: 64},
		CaptionColor: RGB{R: 96, G: 96, B: 96},
	}
}
