package textio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Sentinel errors for task file access. The underlying os error stays
// in the chain, so errors.Is(err, fs.ErrNotExist) keeps working.
var (
	// ErrOpenInput indicates the task input file could not be opened.
	ErrOpenInput = errors.New("textio: failed to open input")

	// ErrCreateOutput indicates the task output file could not be created.
	ErrCreateOutput = errors.New("textio: failed to create output")
)

// OpenInput opens a task input file for reading.
// The caller owns the returned handle.
func OpenInput(name string) (*os.File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, wrapFileErr(ErrOpenInput, name, err)
	}

	return f, nil
}

// CreateOutput creates (or truncates) a task output file for writing.
// The caller owns the returned handle.
func CreateOutput(name string) (*os.File, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, wrapFileErr(ErrCreateOutput, name, err)
	}

	return f, nil
}

// wrapFileErr annotates common file errors with a short cause while
// keeping both the sentinel and the os error in the chain.
func wrapFileErr(sentinel error, name string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s: file does not exist: %w", sentinel, name, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s: permission denied: %w", sentinel, name, err)
	case errors.Is(err, fs.ErrExist):
		return fmt.Errorf("%w: %s: file already exists: %w", sentinel, name, err)
	default:
		return fmt.Errorf("%w: %s: %w", sentinel, name, err)
	}
}
