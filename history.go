package dialog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// HistoryConfig configures input history limits and persistence.
//
// File supports absolute paths, ~ expansion, and relative paths (converted
// to absolute). An empty File keeps history in memory only.
type HistoryConfig struct {
	MaxEntries  int    // entries kept in memory (default 1000)
	File        string // file for persistence, empty for memory only
	MaxFileSize int64  // file size triggering rotation (default 1MB)
	MaxBackups  int    // rotated backup files kept (default 3)
}

// History holds recalled input lines, most recent last, and optionally
// persists them to a file. Input prompts recall entries with Up/Down and
// append the confirmed value when the prompt finishes.
type History struct {
	config  HistoryConfig
	entries []string
}

// NewHistory creates a history store. Pass a zero HistoryConfig for an
// in-memory store with default limits.
func NewHistory(config HistoryConfig) *History {
	if config.MaxEntries <= 0 {
		config.MaxEntries = 1000
	}
	if config.MaxFileSize <= 0 {
		config.MaxFileSize = 1024 * 1024
	}
	if config.MaxBackups < 0 {
		config.MaxBackups = 3
	}
	if config.File != "" {
		if abs, err := expandHistoryPath(config.File); err == nil {
			config.File = abs
		}
	}
	return &History{config: config}
}

// Entries returns a copy of the stored lines, most recent last.
func (h *History) Entries() []string {
	return append([]string{}, h.entries...)
}

// Add appends a line, skipping empty lines and consecutive duplicates, and
// trims the store to MaxEntries.
func (h *History) Add(entry string) {
	if entry == "" {
		return
	}
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == entry {
		return
	}
	h.entries = append(h.entries, entry)
	if len(h.entries) > h.config.MaxEntries {
		h.entries = h.entries[len(h.entries)-h.config.MaxEntries:]
	}
}

// Clear drops all stored lines.
func (h *History) Clear() {
	h.entries = nil
}

// Load reads the history file, one line per entry. Missing files are not an
// error; a memory-only store loads nothing.
func (h *History) Load() error {
	if h.config.File == "" {
		return nil
	}
	file, err := os.Open(h.config.File)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			h.entries = append(h.entries, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}
	if len(h.entries) > h.config.MaxEntries {
		h.entries = h.entries[len(h.entries)-h.config.MaxEntries:]
	}
	return nil
}

// Save writes the store to the history file, rotating it first when it has
// outgrown MaxFileSize. A memory-only store saves nothing.
func (h *History) Save() error {
	if h.config.File == "" {
		return nil
	}
	if err := h.rotateIfNeeded(); err != nil {
		return fmt.Errorf("failed to rotate history file: %w", err)
	}
	if dir := filepath.Dir(h.config.File); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
	}
	file, err := os.Create(h.config.File)
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}
	defer file.Close()

	for _, entry := range h.entries {
		if _, err := fmt.Fprintln(file, entry); err != nil {
			return fmt.Errorf("failed to write history entry: %w", err)
		}
	}
	return nil
}

func (h *History) rotateIfNeeded() error {
	info, err := os.Stat(h.config.File)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.Size() < h.config.MaxFileSize {
		return nil
	}
	if h.config.MaxBackups == 0 {
		return os.Truncate(h.config.File, 0)
	}

	oldest := h.config.File + "." + strconv.Itoa(h.config.MaxBackups)
	if _, err := os.Stat(oldest); err == nil {
		if err := os.Remove(oldest); err != nil {
			return err
		}
	}
	for i := h.config.MaxBackups - 1; i >= 1; i-- {
		from := h.config.File + "." + strconv.Itoa(i)
		to := h.config.File + "." + strconv.Itoa(i+1)
		if _, err := os.Stat(from); err == nil {
			if err := os.Rename(from, to); err != nil {
				return err
			}
		}
	}
	return os.Rename(h.config.File, h.config.File+".1")
}

// expandHistoryPath resolves ~ and relative paths to an absolute path.
func expandHistoryPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		if path == "~" {
			path = home
		} else {
			path = filepath.Join(home, path[2:])
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to convert to absolute path: %w", err)
	}
	return abs, nil
}
