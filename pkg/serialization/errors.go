package serialization

import (
	"errors"
	"fmt"
	"strings"

	"github.com/df07/go-raytracer-core/pkg/core"
)

// Error kinds. Every failure returned by this package matches exactly one of
// them with errors.Is.
var (
	ErrUnresolvedReference = errors.New("serialization: unresolved reference")
	ErrCyclicReference     = errors.New("serialization: cyclic reference")
	ErrTypeMismatch        = errors.New("serialization: type mismatch")
	ErrMalformedRecord     = errors.New("serialization: malformed record")
	ErrEncodingFailure     = errors.New("serialization: encoding failure")
)

// Details carried in Error.Err
var (
	ErrDuplicateID        = errors.New("id is used by more than one object")
	ErrUnreferencedRecord = errors.New("record is not reachable from the scene")
	ErrReservedID         = errors.New("id 0 is reserved")
	ErrNilReference       = errors.New("reference is nil")
)

// Error describes a failed record or reference. Kind is one of the error
// kinds above; Err optionally holds the underlying cause.
type Error struct {
	Kind     error
	ID       core.ID // Record or referenced ID the failure is about
	Referrer core.ID // Record holding the reference, NoID for scene entry points
	Role     string  // Role the reference was resolved for (node, material, ...)
	Actual   string  // Kind of record found, for type mismatches
	Err      error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.ID != core.NoID {
		fmt.Fprintf(&b, ": id %d", e.ID)
	}
	if e.Role != "" {
		fmt.Fprintf(&b, " as %s", e.Role)
	}
	if e.Referrer != core.NoID {
		fmt.Fprintf(&b, " referenced by %d", e.Referrer)
	}
	if e.Actual != "" {
		fmt.Fprintf(&b, " (found %s)", e.Actual)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func malformed(id core.ID, err error) *Error {
	return &Error{Kind: ErrMalformedRecord, ID: id, Err: err}
}

func encodingFailure(id core.ID, err error) *Error {
	return &Error{Kind: ErrEncodingFailure, ID: id, Err: err}
}
