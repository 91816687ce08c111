package extract

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"edubot-be/internal/constant"
)

// Transcriber sends audio bytes to a model and returns a transcript.
// Satisfied by the ai package's Gemini generator.
type Transcriber interface {
	GenerateWithMedia(ctx context.Context, prompt string, data []byte, mimeType string) (string, error)
}

// AudioExtractor normalizes a recording with ffmpeg, then hands the
// wav bytes to the transcriber. Recordings are capped at five minutes.
type AudioExtractor struct {
	transcriber Transcriber
	ffmpegPath  string
	maxSeconds  int
}

func NewAudioExtractor(transcriber Transcriber) *AudioExtractor {
	return &AudioExtractor{
		transcriber: transcriber,
		ffmpegPath:  "ffmpeg",
		maxSeconds:  300,
	}
}

// newTranscodeTarget reserves a fresh temp file per call, concurrent
// extractions must never share a transcode target.
func newTranscodeTarget() (string, error) {
	tmp, err := os.CreateTemp("", "edubot-audio-*.wav")
	if err != nil {
		return "", fmt.Errorf("create transcode target: %w", err)
	}
	tmp.Close()
	return tmp.Name(), nil
}

func (e *AudioExtractor) Extract(ctx context.Context, path string) (string, error) {
	wavPath, err := newTranscodeTarget()
	if err != nil {
		return "", err
	}
	defer os.Remove(wavPath)

	// 16kHz mono is what speech models expect; anything past the cap
	// is silently dropped.
	cmd := exec.CommandContext(ctx, e.ffmpegPath,
		"-i", path,
		"-ar", "16000",
		"-ac", "1",
		"-t", fmt.Sprintf("%d", e.maxSeconds),
		"-f", "wav",
		"-y", wavPath,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("ffmpeg transcode: %w: %s", err, string(output))
	}

	data, err := os.ReadFile(wavPath)
	if err != nil {
		return "", fmt.Errorf("read transcoded audio: %w", err)
	}

	transcript, err := e.transcriber.GenerateWithMedia(ctx, constant.TranscriptionPrompt, data, "audio/wav")
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}
	return transcript, nil
}
