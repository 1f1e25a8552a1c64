// Package capture owns the scratch directory that holds a command's
// redirected output for the lifetime of one run.
package capture

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPattern     = "cronclearer-"
	stdoutName     = "croncls.out"
	diagnosticName = "croncls.err"
	traceName      = "croncls.trace"
)

// Area is a run-scoped temporary directory. Everything inside it is removed
// by Close.
type Area struct {
	Dir        string
	Stdout     string // child's stdout
	Diagnostic string // stderr with trace lines removed
	Trace      string // child's raw stderr

	closed bool
}

// New creates a fresh directory under parent; an empty parent means
// os.TempDir().
func New(parent string) (*Area, error) {
	dir, err := os.MkdirTemp(parent, dirPattern)
	if err != nil {
		return nil, fmt.Errorf("create capture dir: %w", err)
	}
	return &Area{
		Dir:        dir,
		Stdout:     filepath.Join(dir, stdoutName),
		Diagnostic: filepath.Join(dir, diagnosticName),
		Trace:      filepath.Join(dir, traceName),
	}, nil
}

// Close removes the directory and all files in it. Calling it again is a
// no-op.
func (a *Area) Close() error {
	if a == nil || a.closed {
		return nil
	}
	a.closed = true
	if err := os.RemoveAll(a.Dir); err != nil {
		return fmt.Errorf("remove capture dir: %w", err)
	}
	return nil
}

// Create truncates or creates path for the child to write into.
func Create(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create capture file: %w", err)
	}
	return f, nil
}

// ErrNegativeLimit is returned by ReadCapped for a limit below zero.
var ErrNegativeLimit = errors.New("capture read limit must not be negative")

// ReadCapped reads at most limit bytes of path as text. Invalid UTF-8 is
// replaced rather than rejected. truncated is set when the file held more.
func ReadCapped(path string, limit int) (text string, truncated bool, err error) {
	if limit < 0 {
		return "", false, ErrNegativeLimit
	}
	f, err := os.Open(path)
	if err != nil {
		return "", false, fmt.Errorf("open capture file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, int64(limit)+1))
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if len(data) > limit {
		data = data[:limit]
		truncated = true
	}
	return strings.ToValidUTF8(string(data), "\uFFFD"), truncated, nil
}

// WriteText stores text at path, replacing any previous content.
func WriteText(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
