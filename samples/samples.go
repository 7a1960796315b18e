// Package samples carries the built-in demonstration decks. Each
// builder returns a ready-to-save presentation; RunAll generates the
// whole set into a directory for the CLI samples command.
package samples

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gashok13193/DevOps-Docs/deck"
)

// Result describes one generated sample deck.
type Result struct {
	Name string
	Path string
	Size int64
}

// RunAll builds and saves every sample deck into dir, creating it if
// needed, and returns one Result per deck in generation order.
func RunAll(dir string) ([]Result, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create sample directory: %w", err)
	}

	builders := []struct {
		name  string
		file  string
		build func() (*deck.Presentation, error)
	}{
		{"Simple Example", "simple_example.pptx", Simple},
		{"DevOps Best Practices", "devops_best_practices.pptx", DevOps},
		{"Feature Tour", "feature_tour.pptx", func() (*deck.Presentation, error) {
			return Features(dir)
		}},
		{"Go Introduction", "go_introduction.pptx", Intro},
	}

	results := make([]Result, 0, len(builders))
	for _, b := range builders {
		p, err := b.build()
		if err != nil {
			return nil, fmt.Errorf("failed to build %s: %w", b.name, err)
		}
		path, err := p.Save(filepath.Join(dir, b.file))
		if err != nil {
			return nil, fmt.Errorf("failed to save %s: %w", b.name, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", b.name, err)
		}
		results = append(results, Result{Name: b.name, Path: path, Size: info.Size()})
	}
	return results, nil
}
