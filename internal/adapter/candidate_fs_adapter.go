// Package adapter contains infrastructure adapters for the nric tool.
package adapter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "nric.dev/pkg/nric/internal/model"
)

// StdinPath makes ReadCandidates read from the adapter's standard input.
const StdinPath m.Path = "-"

const recursiveSuffix = "/..."

// CandidateFSAdapter reads candidate identity numbers from files so the
// validation workflow can be tested without touching the disk.
type CandidateFSAdapter interface {
	// ReadCandidates returns one candidate per non-blank, non-comment line.
	// A directory yields the candidates of every regular file in it; a
	// trailing "/..." descends into sub-directories.
	ReadCandidates(ctx context.Context, path m.Path) ([]string, error)
}

// LocalCandidateFSAdapter reads candidates from the local filesystem.
type LocalCandidateFSAdapter struct {
	stdin io.Reader
}

// NewLocalCandidateFSAdapter constructs an adapter reading "-" from stdin.
func NewLocalCandidateFSAdapter(stdin io.Reader) *LocalCandidateFSAdapter {
	return &LocalCandidateFSAdapter{stdin: stdin}
}

// ReadCandidates implements CandidateFSAdapter.
func (a *LocalCandidateFSAdapter) ReadCandidates(ctx context.Context, path m.Path) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if path == StdinPath {
		if a.stdin == nil {
			return nil, fmt.Errorf("no standard input configured")
		}

		return scanCandidates(a.stdin)
	}

	root, recursive := splitRecursive(string(path))

	info, err := os.Stat(root)
	if err != nil {
		slog.Error("Failed to stat candidates path", "path", root, "error", err)
		return nil, fmt.Errorf("candidates path: %w", err)
	}

	if !info.IsDir() {
		return readCandidatesFile(root)
	}

	files, err := listFiles(root, recursive)
	if err != nil {
		return nil, err
	}

	var candidates []string

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		found, err := readCandidatesFile(file)
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, found...)
	}

	return candidates, nil
}

func splitRecursive(path string) (string, bool) {
	if path == "..." {
		return ".", true
	}

	if strings.HasSuffix(path, recursiveSuffix) {
		root := strings.TrimSuffix(path, recursiveSuffix)
		if root == "" {
			root = "."
		}

		return root, true
	}

	return path, false
}

func listFiles(root string, recursive bool) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if !recursive && path != root {
				return filepath.SkipDir
			}

			return nil
		}

		if d.Type().IsRegular() {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		slog.Error("Failed to walk candidates directory", "path", root, "error", err)
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Strings(files)

	return files, nil
}

func readCandidatesFile(path string) ([]string, error) {
	// #nosec G304 - path is supplied by the user on purpose
	file, err := os.Open(path)
	if err != nil {
		slog.Error("Failed to open candidates file", "path", path, "error", err)
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	defer func() { _ = file.Close() }()

	candidates, err := scanCandidates(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return candidates, nil
}

const (
	// maxLineBytes bounds the memory held for one line. Longer lines are
	// still consumed, never returned whole.
	maxLineBytes = 4096
	// previewBytes is how much of an over-long line is kept as its candidate.
	previewBytes = 16
)

// scanCandidates returns one trimmed candidate per non-blank line that does
// not start with "#". A line over maxLineBytes does not stop the scan: it
// becomes a shortened candidate that fails validation on its length.
func scanCandidates(r io.Reader) ([]string, error) {
	var candidates []string

	reader := bufio.NewReaderSize(r, maxLineBytes)

	for lineNo := 1; ; lineNo++ {
		line, size, err := readLine(reader)
		if err == io.EOF {
			return candidates, nil
		}

		if err != nil {
			return nil, err
		}

		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			continue
		}

		if size > maxLineBytes {
			candidate := fmt.Sprintf("%s... (%d bytes)", strings.ToValidUTF8(truncate(line, previewBytes), ""), size)

			slog.Warn("Candidate line too long", "line", lineNo, "bytes", size, "max", maxLineBytes)

			candidates = append(candidates, candidate)

			continue
		}

		if line == "" {
			continue
		}

		candidates = append(candidates, line)
	}
}

// readLine returns the next line without its terminator together with the
// full line length. Only the first buffer of an over-long line is returned;
// the rest is discarded.
func readLine(r *bufio.Reader) (string, int, error) {
	chunk, isPrefix, err := r.ReadLine()
	if err != nil {
		return "", 0, err
	}

	head := string(chunk)
	size := len(chunk)

	for isPrefix {
		chunk, isPrefix, err = r.ReadLine()
		if err == io.EOF {
			break
		}

		if err != nil {
			return "", 0, err
		}

		size += len(chunk)
	}

	return head, size, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n]
}
