// Package fs provides file-based storage for spreadsheet exports.
package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/orgscout"
)

// Ensure ExportDir implements orgscout.ExportStore at compile time.
var _ orgscout.ExportStore = (*ExportDir)(nil)

// ExportDir writes export files into one directory with atomic replace
// semantics. Each file is written to "<name>.tmp" and renamed over the
// final name only after encoding succeeds.
type ExportDir struct {
	dir string
}

// NewExportDir creates an ExportDir rooted at dir. The directory is
// created on first write.
func NewExportDir(dir string) *ExportDir {
	return &ExportDir{dir: dir}
}

// Write encodes a file named name. Names must be plain file names.
func (d *ExportDir) Write(ctx context.Context, name string, encode func(w io.Writer) error) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return "", err
	}

	final := filepath.Join(d.dir, name)
	temp := final + ".tmp"

	f, err := os.Create(temp)
	if err != nil {
		return "", err
	}
	if err := encode(f); err != nil {
		f.Close()
		os.Remove(temp)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(temp)
		return "", err
	}

	if err := os.Rename(temp, final); err != nil {
		os.Remove(temp)
		return "", err
	}
	return final, nil
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return orgscout.Errorf(orgscout.EINVALID, "invalid export file name %q: path traversal not allowed", name)
	}
	return nil
}
