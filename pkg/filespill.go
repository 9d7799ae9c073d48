// Package pkg provides generic helpers shared by the nric tool.
package pkg

import (
	"encoding/gob"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// ErrClosed is returned when a FileSpill is used after Close.
var ErrClosed = errors.New("filespill closed")

// FileSpill is an append-only list of T kept in a temporary file. Items keep
// their insertion order and are addressed by index. Appends and reads may
// come from different goroutines.
type FileSpill[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	AppendBatch(items []T) error
	Get(index uint64) (T, error)
	Range(f func(index uint64, item T) error) error
	Collect() ([]T, error)
	Close() error
}

type fileSpill[T any] struct {
	path    string
	file    *os.File
	encoder *gob.Encoder
	mu      sync.Mutex
	length  uint64
	closed  bool
}

// NewFileSpill creates a FileSpill backed by a new file in dir. An empty dir
// means os.TempDir().
func NewFileSpill[T any](dir string) (FileSpill[T], error) {
	if dir == "" {
		dir = os.TempDir()
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		slog.Error("failed to create spill directory", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create spill directory: %w", err)
	}

	file, err := os.CreateTemp(dir, "nric-spill-*.gob")
	if err != nil {
		slog.Error("failed to create spill file", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create spill file: %w", err)
	}

	slog.Debug("created filespill", "path", file.Name())

	return &fileSpill[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}

func (f *fileSpill[T]) Path() string {
	return f.path
}

func (f *fileSpill[T]) Len() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.length
}

func (f *fileSpill[T]) Append(item T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.appendLocked(item)
}

// AppendBatch writes items under a single lock so concurrent writers do not
// interleave within a batch.
func (f *fileSpill[T]) AppendBatch(items []T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range items {
		if err := f.appendLocked(item); err != nil {
			return err
		}
	}

	return nil
}

func (f *fileSpill[T]) appendLocked(item T) error {
	if f.closed {
		return ErrClosed
	}

	if err := f.encoder.Encode(item); err != nil {
		slog.Error("failed to encode item", "path", f.path, "index", f.length, "error", err)
		return fmt.Errorf("failed to encode item: %w", err)
	}

	f.length++

	return nil
}

func (f *fileSpill[T]) Get(index uint64) (T, error) {
	var (
		found T
		stop  = errors.New("stop")
	)

	if n := f.Len(); index >= n {
		return found, fmt.Errorf("index %d out of bounds (length %d)", index, n)
	}

	err := f.Range(func(i uint64, item T) error {
		if i == index {
			found = item
			return stop
		}

		return nil
	})
	if err != nil && !errors.Is(err, stop) {
		var zero T
		return zero, err
	}

	return found, nil
}

// Range decodes items in insertion order. Iteration stops at the first error
// returned by fn, which is returned unchanged.
func (f *fileSpill[T]) Range(fn func(index uint64, item T) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrClosed
	}

	file, err := os.Open(f.path)
	if err != nil {
		slog.Error("failed to open spill for range", "path", f.path, "error", err)
		return fmt.Errorf("failed to open file: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close file", "path", f.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	for i := range f.length {
		var item T
		if err := decoder.Decode(&item); err != nil {
			slog.Error("failed to decode item", "path", f.path, "index", i, "error", err)
			return fmt.Errorf("failed to decode item at index %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}

	return nil
}

func (f *fileSpill[T]) Collect() ([]T, error) {
	items := make([]T, 0, f.Len())

	err := f.Range(func(_ uint64, item T) error {
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

// Close closes and deletes the backing file. Closing twice is a no-op.
func (f *fileSpill[T]) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}

	f.closed = true

	if err := f.file.Close(); err != nil {
		slog.Error("failed to close spill", "path", f.path, "error", err)
		return err
	}

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		slog.Error("failed to remove spill", "path", f.path, "error", err)
		return err
	}

	slog.Debug("closed filespill", "path", f.path, "length", f.length)

	return nil
}

// Chain presents several spills as one sequence, in slice order. Indexes
// passed to Range run across the whole chain.
type Chain[T any] []FileSpill[T]

// Len returns the total number of items.
func (c Chain[T]) Len() uint64 {
	var n uint64

	for _, spill := range c {
		n += spill.Len()
	}

	return n
}

// Range visits every item of every spill in order. Iteration stops at the
// first error returned by fn.
func (c Chain[T]) Range(fn func(index uint64, item T) error) error {
	var offset uint64

	for _, spill := range c {
		err := spill.Range(func(i uint64, item T) error {
			return fn(offset+i, item)
		})
		if err != nil {
			return err
		}

		offset += spill.Len()
	}

	return nil
}

// Close closes every spill and returns the first error.
func (c Chain[T]) Close() error {
	var first error

	for _, spill := range c {
		if spill == nil {
			continue
		}

		if err := spill.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}
