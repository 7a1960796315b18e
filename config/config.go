// Package config persists tool preferences under the user's home
// directory: default author, output locations and theme colors.
package config

// RGB is a persisted color triple, channels 0-255.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Valid reports whether every channel is in range.
func (c RGB) Valid() bool {
	for _, ch := range [3]int{c.R, c.G, c.B} {
		if ch < 0 || ch > 255 {
			return false
		}
	}
	return true
}

// Config is the on-disk configuration shape.
type Config struct {
	Author      string `json:"author,omitempty"`
	OutputDir   string `json:"outputDir,omitempty"`
	LogDir      string `json:"logDir,omitempty"`
	Primary     *RGB   `json:"primary,omitempty"`
	Accent      *RGB   `json:"accent,omitempty"`
	DetailedLog bool   `json:"detailedLog,omitempty"`
}

func defaultPrimary() *RGB { return &RGB{R: 31, G: 73, B: 125} }
func defaultAccent() *RGB  { return &RGB{R: 79, G: 129, B: 189} }
