package extract

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// ImageExtractor runs OCR over image files. The curriculum is Arabic
// with occasional Latin terms, so both models load together.
type ImageExtractor struct {
	languages []string
}

func NewImageExtractor() *ImageExtractor {
	return &ImageExtractor{languages: []string{"ara", "eng"}}
}

func (e *ImageExtractor) Extract(ctx context.Context, path string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(e.languages...); err != nil {
		return "", fmt.Errorf("set ocr languages: %w", err)
	}
	if err := client.SetImage(path); err != nil {
		return "", fmt.Errorf("load image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr: %w", err)
	}
	return text, nil
}
