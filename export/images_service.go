package export

import (
	"fmt"
	"os"
	"path/filepath"

	ppt "github.com/VantageDataChat/GoPPT"
)

// ImagesService renders a saved .pptx file to one PNG per slide.
type ImagesService struct{}

// NewImagesService creates a new slide image service.
func NewImagesService() *ImagesService {
	return &ImagesService{}
}

// ExportPNGs re-opens the presentation at pptxPath and writes slide_1.png,
// slide_2.png, ... into dir. It returns the written file paths in slide order.
func (s *ImagesService) ExportPNGs(pptxPath, dir string) ([]string, error) {
	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(pptxPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open presentation %s: %w", pptxPath, err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	opts := ppt.DefaultRenderOptions()
	paths := make([]string, 0, len(pres.GetAllSlides()))
	for i := range pres.GetAllSlides() {
		path := filepath.Join(dir, fmt.Sprintf("slide_%d.png", i+1))
		if err := pres.SaveSlideAsImage(i, path, opts); err != nil {
			return nil, fmt.Errorf("failed to render slide %d: %w", i+1, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
