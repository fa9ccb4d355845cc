package sink

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sync"
)

var errClosed = errors.New("sink: file already closed")

// File is an Appender backed by an append-mode file. Writes go through a
// bufio.Writer; Close flushes and closes the file. Append and Close are
// safe to call from different goroutines, which covers the hand-off from
// the drain goroutine to the lifecycle's final close.
type File struct {
	mu   sync.Mutex
	path string
	file *os.File
	w    *bufio.Writer
}

// OpenFile opens (creating if needed) the file at path for appending.
func OpenFile(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("sink: open log file %s: %w", path, err)
	}
	return &File{
		path: path,
		file: f,
		w:    bufio.NewWriter(f),
	}, nil
}

// Path returns the path the file was opened with.
func (f *File) Path() string {
	return f.path
}

// Append writes line followed by a newline.
func (f *File) Append(line string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return errClosed
	}
	if _, err := f.w.WriteString(line); err != nil {
		return err
	}
	return f.w.WriteByte('\n')
}

// Flush forces buffered lines to the file.
func (f *File) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return errClosed
	}
	return f.w.Flush()
}

// Close flushes pending lines and closes the file. A second Close is a
// no-op.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return nil
	}
	flushErr := f.w.Flush()
	closeErr := f.file.Close()
	f.file = nil

	if flushErr != nil {
		return flushErr
	}
	return closeErr
}
