package chatlog

import (
	"strings"
	"testing"
)

func TestAppendAndRead(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := w.Append("ahmed", "ما هو قانون نيوتن؟", "القصور الذاتي", "book"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := w.Append("ahmed", "شكراً", "على الرحب", "gemini"); err != nil {
		t.Fatalf("append: %v", err)
	}

	content, err := w.Read("ahmed")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(content, "ما هو قانون نيوتن؟") || !strings.Contains(content, "القصور الذاتي") {
		t.Errorf("transcript missing entries: %q", content)
	}
	if !strings.Contains(content, "(book)") {
		t.Error("transcript should record the answer source")
	}
}

func TestReadMissingUserIsEmpty(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	content, err := w.Read("nobody")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if content != "" {
		t.Errorf("content = %q, want empty", content)
	}
}

func TestListTranscripts(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := w.Append("ahmed", "س", "ج", "book"); err != nil {
		t.Fatal(err)
	}
	if err := w.Append("sara", "س", "ج", "gemini"); err != nil {
		t.Fatal(err)
	}

	infos, err := w.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 2 {
		t.Fatalf("files = %d, want 2", len(infos))
	}

	usernames := map[string]bool{}
	for _, info := range infos {
		usernames[info.Username] = true
	}
	if !usernames["ahmed"] || !usernames["sara"] {
		t.Errorf("usernames = %v", usernames)
	}
}

func TestUsernameSanitized(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := w.Append("../../etc/passwd", "س", "ج", "book"); err != nil {
		t.Fatalf("append: %v", err)
	}

	infos, err := w.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 1 {
		t.Fatal("sanitized transcript should land inside the log dir")
	}
	if strings.Contains(infos[0].Filename, "..") {
		t.Errorf("filename %q still contains traversal", infos[0].Filename)
	}
}
