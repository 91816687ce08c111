package extract

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFamilyForFilename(t *testing.T) {
	tests := []struct {
		name   string
		want   Family
		wantOk bool
	}{
		{"lecture.PDF", FamilyPDF, true},
		{"board.jpeg", FamilyImage, true},
		{"notes.docx", FamilyDocx, true},
		{"question.m4a", FamilyAudio, true},
		{"lesson.mp4", FamilyVideo, true},
		{"summary.txt", FamilyText, true},
		{"malware.exe", "", false},
		{"noextension", "", false},
	}
	for _, tt := range tests {
		family, ok := FamilyForFilename(tt.name)
		if ok != tt.wantOk || family != tt.want {
			t.Errorf("FamilyForFilename(%q) = (%q, %v), want (%q, %v)", tt.name, family, ok, tt.want, tt.wantOk)
		}
	}
}

type stubExtractor struct {
	text  string
	err   error
	calls int
}

func (s *stubExtractor) Extract(ctx context.Context, path string) (string, error) {
	s.calls++
	return s.text, s.err
}

func TestChainDispatch(t *testing.T) {
	stub := &stubExtractor{text: "نص مستخرج"}
	chain := NewChain()
	chain.Register(FamilyImage, stub)

	text, err := chain.Extract(context.Background(), "photo.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "نص مستخرج" {
		t.Errorf("text = %q", text)
	}
	if stub.calls != 1 {
		t.Errorf("calls = %d", stub.calls)
	}
}

func TestChainRejectsUnsupportedWithoutDispatch(t *testing.T) {
	stub := &stubExtractor{text: "x"}
	chain := NewChain()
	chain.Register(FamilyImage, stub)

	_, err := chain.Extract(context.Background(), "script.sh")
	var failure *Failure
	if !errors.As(err, &failure) {
		t.Fatalf("want Failure, got %v", err)
	}
	if stub.calls != 0 {
		t.Error("disallowed extension must never reach an extractor")
	}
}

func TestChainWrapsExtractorError(t *testing.T) {
	cause := errors.New("ocr crashed")
	chain := NewChain()
	chain.Register(FamilyImage, &stubExtractor{err: cause})

	_, err := chain.Extract(context.Background(), "photo.png")
	var failure *Failure
	if !errors.As(err, &failure) {
		t.Fatalf("want Failure, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("Failure should unwrap to the extractor error")
	}
}

func TestChainEmptyTextIsFailure(t *testing.T) {
	chain := NewChain()
	chain.Register(FamilyImage, &stubExtractor{text: "   \n"})

	_, err := chain.Extract(context.Background(), "photo.png")
	var failure *Failure
	if !errors.As(err, &failure) {
		t.Fatalf("blank extraction should fail, got %v", err)
	}
}

func writeTestDocx(t *testing.T, dir string, paragraphs []string) string {
	t.Helper()
	path := filepath.Join(dir, "test.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}

	var body strings.Builder
	body.WriteString(`<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>`)
		if _, err := strings.NewReplacer("&", "&amp;", "<", "&lt;").WriteString(&body, p); err != nil {
			t.Fatal(err)
		}
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	if _, err := w.Write([]byte(body.String())); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDocxExtractor(t *testing.T) {
	path := writeTestDocx(t, t.TempDir(), []string{"الفقرة الأولى", "الفقرة الثانية"})

	text, err := NewDocxExtractor().Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2 (%q)", len(lines), text)
	}
	if lines[0] != "الفقرة الأولى" || lines[1] != "الفقرة الثانية" {
		t.Errorf("lines = %q", lines)
	}
}

func TestDocxExtractorRejectsNonArchive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fake.docx")
	if err := os.WriteFile(path, []byte("not a zip"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewDocxExtractor().Extract(context.Background(), path); err == nil {
		t.Error("corrupt docx should error")
	}
}

func TestTextExtractor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("محتوى نصي"), 0644); err != nil {
		t.Fatal(err)
	}

	text, err := NewTextExtractor().Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "محتوى نصي" {
		t.Errorf("text = %q", text)
	}
}

func TestAudioTranscodeTargetsAreDistinct(t *testing.T) {
	first, err := newTranscodeTarget()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(first)
	second, err := newTranscodeTarget()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(second)

	if first == second {
		t.Fatal("concurrent extractions must never share a transcode target")
	}
}

type stubTranscriber struct {
	text  string
	calls int
}

func (s *stubTranscriber) GenerateWithMedia(ctx context.Context, prompt string, data []byte, mimeType string) (string, error) {
	s.calls++
	return s.text, nil
}

func TestVideoExtractorAnalyzesClip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lesson.mp4")
	if err := os.WriteFile(path, []byte("fake mp4 bytes"), 0644); err != nil {
		t.Fatal(err)
	}

	transcriber := &stubTranscriber{text: "وصف الفيديو"}
	extractor := NewVideoExtractor(transcriber)

	text, err := extractor.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "وصف الفيديو" {
		t.Errorf("text = %q", text)
	}
	if transcriber.calls != 1 {
		t.Errorf("transcriber calls = %d", transcriber.calls)
	}
}

func TestVideoExtractorRejectsOversizeClip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "long.mov")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Truncate(videoInlineLimit + 1); err != nil {
		t.Fatal(err)
	}
	f.Close()

	transcriber := &stubTranscriber{text: "x"}
	extractor := NewVideoExtractor(transcriber)

	if _, err := extractor.Extract(context.Background(), path); err == nil {
		t.Fatal("oversize clip must be rejected")
	}
	if transcriber.calls != 0 {
		t.Error("oversize clip must never reach the model")
	}
}
