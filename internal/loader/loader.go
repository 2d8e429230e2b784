// Package loader turns a path on disk into source text: the file handle is
// opened, its contents consumed fully, then released before evaluation
// proceeds. Parsing and evaluation of that text is the caller's job
// (internal/eval.Interpreter.LoadFile); this package only owns the file
// handle.
package loader

import (
	"fmt"
	"io"
	"os"
)

// ReadSource opens path, reads it fully, and closes it before returning.
// Failure at either step reports through the same wrapped-error path.
func ReadSource(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("cannot load %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("cannot load %s: %w", path, err)
	}
	return string(data), nil
}
