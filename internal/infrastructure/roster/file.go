// Package roster appends approved-nickname data to an external file for
// operational use outside the bot.
package roster

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"minegate/internal/shared/config"
)

// Entry is one roster line written on final submission.
type Entry struct {
	DisplayName     string
	Platform        string
	JavaNickname    string
	BedrockNickname string
}

// FileWriter appends entries to a plain comma-separated file. Writes are
// serialized with a mutex because the file is opened in append mode per call.
type FileWriter struct {
	path string
	mu   sync.Mutex
}

func NewFileWriter(cfg config.RosterConfig) *FileWriter {
	return &FileWriter{path: cfg.Path}
}

func (w *FileWriter) Append(entry Entry) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create roster directory: %w", err)
		}
	}

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open roster file: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s,%s,%s,%s\n",
		sanitize(entry.DisplayName),
		sanitize(entry.Platform),
		sanitize(entry.JavaNickname),
		sanitize(entry.BedrockNickname),
	)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("failed to append roster entry: %w", err)
	}
	return nil
}

// AppendLine appends one roster line from its individual fields.
func (w *FileWriter) AppendLine(displayName, platform, javaNickname, bedrockNickname string) error {
	return w.Append(Entry{
		DisplayName:     displayName,
		Platform:        platform,
		JavaNickname:    javaNickname,
		BedrockNickname: bedrockNickname,
	})
}

// sanitize strips the field separator and newlines so one entry stays one line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, ",", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
