// Package source reads a source file into memory as a sequence of lines.
package source

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrUnreadable indicates the file could not be opened or read.
var ErrUnreadable = errors.New("source file unreadable")

// File is a source file held in memory. Immutable value object.
type File struct {
	path  string
	lines []string
}

// NewFile creates a File from already-split lines.
func NewFile(path string, lines []string) File {
	l := make([]string, len(lines))
	copy(l, lines)
	return File{path: path, lines: l}
}

// Read loads the file at path and splits it into lines.
func Read(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	return File{path: path, lines: SplitLines(string(data))}, nil
}

// Path returns the path the file was read from.
func (f File) Path() string { return f.path }

// Lines returns the file's lines without their terminating newline.
func (f File) Lines() []string {
	result := make([]string, len(f.lines))
	copy(result, f.lines)
	return result
}

// LineCount returns the number of lines.
func (f File) LineCount() int { return len(f.lines) }

// SplitLines splits content on '\n'. A trailing newline does not start an
// extra line and empty content has no lines. Carriage returns are kept.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}
