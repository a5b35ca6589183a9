package manifest

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedManifest reports a structural or parsing failure: syntax
	// errors, missing required scalars, ill-typed values, inverted SDK levels.
	ErrMalformedManifest = errors.New("malformed manifest")
	// ErrInvalidDependencySpec reports a semantic failure in a dependency
	// entry, such as a missing or unresolvable version.
	ErrInvalidDependencySpec = errors.New("invalid dependency spec")
)

// Pos locates an error in the manifest source. Line and Column are 1-based;
// zero means unknown.
type Pos struct {
	Filename string
	Line     int
	Column   int
}

func (p Pos) String() string {
	switch {
	case p.Filename == "" && p.Line == 0:
		return ""
	case p.Line == 0:
		return p.Filename
	case p.Column == 0:
		return fmt.Sprintf("%s:%d", p.Filename, p.Line)
	}
	return fmt.Sprintf("%s:%d,%d", p.Filename, p.Line, p.Column)
}

// Error wraps one of the error kinds with the offending field and location.
type Error struct {
	Kind  error
	Field string
	Pos   Pos
	Msg   string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if where := e.Pos.String(); where != "" {
		msg = where + ": " + msg
	}
	if e.Field != "" {
		msg += ": " + e.Field
	}
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Kind }

// Malformedf builds an ErrMalformedManifest error for field at pos.
func Malformedf(pos Pos, field, format string, args ...any) error {
	return &Error{Kind: ErrMalformedManifest, Field: field, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// InvalidDependencyf builds an ErrInvalidDependencySpec error for field at pos.
func InvalidDependencyf(pos Pos, field, format string, args ...any) error {
	return &Error{Kind: ErrInvalidDependencySpec, Field: field, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
