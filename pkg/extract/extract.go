package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Family is the media kind an uploaded file belongs to. Dispatch runs
// on the declared extension, never on content sniffing.
type Family string

const (
	FamilyImage Family = "image"
	FamilyPDF   Family = "pdf"
	FamilyDocx  Family = "docx"
	FamilyAudio Family = "audio"
	FamilyVideo Family = "video"
	FamilyText  Family = "text"
)

var familyByExt = map[string]Family{
	".png":  FamilyImage,
	".jpg":  FamilyImage,
	".jpeg": FamilyImage,
	".gif":  FamilyImage,
	".bmp":  FamilyImage,
	".webp": FamilyImage,
	".pdf":  FamilyPDF,
	".docx": FamilyDocx,
	".mp3":  FamilyAudio,
	".wav":  FamilyAudio,
	".ogg":  FamilyAudio,
	".m4a":  FamilyAudio,
	".flac": FamilyAudio,
	".aac":  FamilyAudio,
	".mp4":  FamilyVideo,
	".avi":  FamilyVideo,
	".mov":  FamilyVideo,
	".txt":  FamilyText,
}

// FamilyForFilename maps a filename to its media family via the
// extension allow-list.
func FamilyForFilename(name string) (Family, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	family, ok := familyByExt[ext]
	return family, ok
}

// Failure wraps any extraction error. The uploaded file stays on disk
// when extraction fails so admins can inspect it.
type Failure struct {
	Path string
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("extraction failed for %s: %v", f.Path, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Extractor turns a file on disk into plain text.
type Extractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// Chain dispatches a file to the extractor registered for its family.
type Chain struct {
	extractors map[Family]Extractor
}

func NewChain() *Chain {
	return &Chain{extractors: make(map[Family]Extractor)}
}

func (c *Chain) Register(family Family, extractor Extractor) {
	c.extractors[family] = extractor
}

func (c *Chain) Extract(ctx context.Context, path string) (string, error) {
	family, ok := FamilyForFilename(path)
	if !ok {
		return "", &Failure{Path: path, Err: fmt.Errorf("unsupported file type %q", filepath.Ext(path))}
	}

	extractor, ok := c.extractors[family]
	if !ok {
		return "", &Failure{Path: path, Err: fmt.Errorf("no extractor registered for %s files", family)}
	}

	text, err := extractor.Extract(ctx, path)
	if err != nil {
		return "", &Failure{Path: path, Err: err}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", &Failure{Path: path, Err: fmt.Errorf("no text found in %s file", family)}
	}
	return text, nil
}
