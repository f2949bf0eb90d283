// Package snapshots persists the run's result set to disk.
package snapshots

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"
	"github.com/preston-bernstein/dota-teaminfo/internal/jsonutil"
)

const (
	// DefaultPath is where results land when no output is configured.
	DefaultPath = "teaminfos.json"

	prettyIndent = "    "
)

// WriteError reports a failure to persist the result set.
type WriteError struct {
	Path string
	Op   string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// AsWriteError extracts a *WriteError from err.
func AsWriteError(err error) (*WriteError, bool) {
	var we *WriteError
	if errors.As(err, &we) {
		return we, true
	}
	return nil, false
}

// Writer serializes result sets to a single file with an atomic replace.
type Writer struct {
	path   string
	pretty bool
}

// NewWriter constructs a writer targeting path. An empty path uses DefaultPath.
func NewWriter(path string, pretty bool) *Writer {
	if path == "" {
		path = DefaultPath
	}
	return &Writer{path: path, pretty: pretty}
}

// Path exposes the target file path.
func (w *Writer) Path() string {
	if w == nil {
		return ""
	}
	return w.path
}

// WriteResults writes rs to the target path and returns the number of bytes
// written. Identical content already on disk is left in place.
func (w *Writer) WriteResults(rs teams.ResultSet) (int, error) {
	if w == nil {
		return 0, &WriteError{Op: "configure", Err: errors.New("writer not configured")}
	}
	if rs.Results == nil {
		rs = teams.NewResultSet(nil)
	}

	indent := ""
	if w.pretty {
		indent = prettyIndent
	}
	data, err := jsonutil.Marshal(rs, indent)
	if err != nil {
		return 0, &WriteError{Path: w.path, Op: "encode", Err: err}
	}
	data = append(data, '\n')

	if existing, err := os.ReadFile(w.path); err == nil && bytes.Equal(existing, data) {
		return len(data), nil
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, &WriteError{Path: w.path, Op: "mkdir", Err: err}
		}
	}

	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return 0, &WriteError{Path: w.path, Op: "write", Err: err}
	}
	if err := os.Rename(tmp, w.path); err != nil {
		_ = os.Remove(tmp)
		return 0, &WriteError{Path: w.path, Op: "rename", Err: err}
	}
	return len(data), nil
}
