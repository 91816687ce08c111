package chatlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Writer keeps one plain-text transcript per student, appended on
// every resolved turn. Admins read these through the dashboard.
type Writer struct {
	dir string
	mu  sync.Mutex
}

type FileInfo struct {
	Username string
	Filename string
	Size     int64
	Modified time.Time
}

func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create chat log dir: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// sanitizeUsername keeps transcripts inside the log dir whatever the
// client sends as a username.
func sanitizeUsername(username string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", "..", "_", "\x00", "_")
	name := replacer.Replace(strings.TrimSpace(username))
	if name == "" {
		name = "unknown"
	}
	return name
}

func (w *Writer) pathFor(username string) string {
	return filepath.Join(w.dir, sanitizeUsername(username)+"_chat.txt")
}

func (w *Writer) Append(username, userMessage, botResponse, source string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := os.OpenFile(w.pathFor(username), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open chat log: %w", err)
	}
	defer f.Close()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	entry := fmt.Sprintf("[%s] الطالب: %s\n[%s] البوت (%s): %s\n\n",
		timestamp, userMessage, timestamp, source, botResponse)

	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("append chat log: %w", err)
	}
	return nil
}

func (w *Writer) List() ([]FileInfo, error) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return nil, fmt.Errorf("list chat logs: %w", err)
	}

	var infos []FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "_chat.txt") {
			continue
		}
		stat, err := entry.Info()
		if err != nil {
			continue
		}
		infos = append(infos, FileInfo{
			Username: strings.TrimSuffix(entry.Name(), "_chat.txt"),
			Filename: entry.Name(),
			Size:     stat.Size(),
			Modified: stat.ModTime(),
		})
	}
	return infos, nil
}

func (w *Writer) Read(username string) (string, error) {
	data, err := os.ReadFile(w.pathFor(username))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read chat log: %w", err)
	}
	return string(data), nil
}
