// Package catalog loads named template shapes from JSON or HCL documents.
// Each entry is validated on its own; malformed entries are reported and
// skipped while the rest of the catalog stays usable.
package catalog

import (
	_ "embed"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifeboard/model"
)

//go:embed patterns.json
var defaultPatterns []byte

// Result is the outcome of loading a catalog
type Result struct {
	// Templates holds the valid entries in document order
	Templates []*model.Shape
	// Rejected holds one error per malformed entry
	Rejected LoadErrors
}

// Names returns the names of the valid templates in document order
func (r *Result) Names() []string {
	names := make([]string, len(r.Templates))
	for i, t := range r.Templates {
		names[i] = t.Name()
	}
	return names
}

// Lookup returns the template with the given name
func (r *Result) Lookup(name string) (*model.Shape, bool) {
	for _, t := range r.Templates {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}

// LogRejected writes one warning per rejected entry
func (r *Result) LogRejected(logger *slog.Logger) {
	for _, e := range r.Rejected {
		logger.Warn("Template rejected.", "template", e.Name, "error", e.Err)
	}
}

func (r *Result) add(name string, cells [][]bool) {
	shape, err := model.NewShape(name, cells)
	if err != nil {
		r.reject(name, err)
		return
	}
	r.Templates = append(r.Templates, shape)
}

func (r *Result) reject(name string, err error) {
	r.Rejected = append(r.Rejected, &EntryError{Name: name, Err: err})
}

// Default returns the built-in template set
func Default() *Result {
	res, err := ParseJSON(defaultPatterns)
	if err != nil {
		panic(errors.Wrap(err, "[Default] embedded catalog is invalid"))
	}
	return res
}

// LoadFile reads a catalog, picking the parser from the file extension
// (.json or .hcl)
func LoadFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to read file: %+v", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	case ".hcl":
		return ParseHCL(data, path)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "[LoadFile] %+v", path)
	}
}
