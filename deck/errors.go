package deck

import "errors"

// Error kinds surfaced by the builder. Data-shape violations are
// reported immediately by the call that received the bad value;
// missing external resources are reported by Save, after all slides
// have been assembled.
var (
	ErrInvalidColor     = errors.New("color channel out of range")
	ErrMalformedDataset = errors.New("chart dataset is malformed")
	ErrImageNotFound    = errors.New("image file not found")
	ErrTemplateNotFound = errors.New("template file not found")
	ErrRender           = errors.New("presentation rendering failed")
)
