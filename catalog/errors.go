package catalog

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrNotBoolean is returned for a cell that is neither 0/1 nor true/false
	ErrNotBoolean = errors.New("cell is not boolean")
	// ErrMalformed is returned for an entry that is not a list of rows
	ErrMalformed = errors.New("template is not a list of rows")
	// ErrUnsupportedFormat is returned for catalog files with an unknown extension
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// EntryError records why one catalog entry was rejected
type EntryError struct {
	Name string
	Err  error
}

func (e *EntryError) Error() string {
	return "template " + e.Name + ": " + e.Err.Error()
}

func (e *EntryError) Unwrap() error { return e.Err }

// Cause lets errors.Cause see through to the reason
func (e *EntryError) Cause() error { return e.Err }

// LoadErrors lists every rejected entry of a catalog. Rejections are not
// fatal: the valid entries are still returned alongside.
type LoadErrors []*EntryError

func (l LoadErrors) Error() string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Names returns the rejected template names in load order
func (l LoadErrors) Names() []string {
	names := make([]string, len(l))
	for i, e := range l {
		names[i] = e.Name
	}
	return names
}
