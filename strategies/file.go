package strategies

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

// ErrClosed is returned by Log after Close has been called
var ErrClosed = errors.New("strategy closed")

var lineBreakEscaper = strings.NewReplacer("\r", `\r`, "\n", `\n`)

// File appends formatted lines to a file. The file is opened lazily on the first write
// in append mode, so earlier content is never truncated.
//
// Every entry occupies exactly one line: carriage returns and newlines inside a
// message are written as the two-character sequences \r and \n.
type File struct {
	path   string
	mu     sync.Mutex
	file   *os.File
	closed bool
}

// NewFile creates a File strategy for path without touching the filesystem
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the configured file path
func (f *File) Path() string {
	return f.path
}

func (f *File) open() error {
	if f.file != nil {
		return nil
	}
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", f.path, err)
	}
	f.file = file
	return nil
}

// Log implements the Strategy interface
func (f *File) Log(entry Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return sinkError(KindFile, ErrClosed)
	}
	if err := f.open(); err != nil {
		return sinkError(KindFile, err)
	}

	entry.Message = lineBreakEscaper.Replace(entry.Message)
	if _, err := f.file.WriteString(FormatLine(entry) + "\n"); err != nil {
		return sinkError(KindFile, fmt.Errorf("failed to append to %s: %w", f.path, err))
	}
	return nil
}

// Sync implements the Strategy interface
func (f *File) Sync() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return nil
	}
	return sinkError(KindFile, f.file.Sync())
}

// Close releases the file handle. Further writes fail with ErrClosed.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

// Kind implements the Strategy interface
func (f *File) Kind() string {
	return KindFile
}
