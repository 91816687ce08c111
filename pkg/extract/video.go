package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"edubot-be/internal/constant"
)

// videoInlineLimit is the largest video the model accepts as inline
// request data.
const videoInlineLimit = 20 * 1024 * 1024

var videoMimeByExt = map[string]string{
	".mp4": "video/mp4",
	".avi": "video/x-msvideo",
	".mov": "video/quicktime",
}

// VideoExtractor sends short clips to the model for description and
// speech transcription. Clips past the inline limit are rejected
// rather than truncated.
type VideoExtractor struct {
	transcriber Transcriber
}

func NewVideoExtractor(transcriber Transcriber) *VideoExtractor {
	return &VideoExtractor{transcriber: transcriber}
}

func (e *VideoExtractor) Extract(ctx context.Context, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat video: %w", err)
	}
	if info.Size() > videoInlineLimit {
		return "", fmt.Errorf("video is %d bytes, limit is %d", info.Size(), videoInlineLimit)
	}

	ext := strings.ToLower(filepath.Ext(path))
	mimeType, ok := videoMimeByExt[ext]
	if !ok {
		return "", fmt.Errorf("unsupported video format %q", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read video: %w", err)
	}

	description, err := e.transcriber.GenerateWithMedia(ctx, constant.VideoAnalysisPrompt, data, mimeType)
	if err != nil {
		return "", fmt.Errorf("analyze video: %w", err)
	}
	return description, nil
}
