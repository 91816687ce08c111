package ai

import "context"

// Generator produces answers and transcriptions from a language model.
// The resolver and extraction chain depend on this rather than the
// concrete Gemini client so tests can substitute fakes.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	GenerateWithMedia(ctx context.Context, prompt string, data []byte, mimeType string) (string, error)
}

// ImageGenerator produces an image from a text prompt. Split from
// Generator because only the image-generation flow needs it.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}
