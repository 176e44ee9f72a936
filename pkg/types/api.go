package types

import "strconv"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat      ErrKind = iota // node shape the index cannot ingest (bad children field)
	ErrKindNotFound                   // id has no live entry
	ErrKindTarget                     // mutation anchored on an id with no live entry
	ErrKindUnsupported                // operation undefined for this entry (e.g., removing the root)
	ErrKindLimit                      // a configured limit would be exceeded
)

// String implements fmt.Stringer.
func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindNotFound:
		return "not-found"
	case ErrKindTarget:
		return "invalid-target"
	case ErrKindUnsupported:
		return "unsupported"
	case ErrKindLimit:
		return "limit"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a *Error of the same kind, so errors built with
// IDError match the package sentinels under errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// IDError builds a typed error of the given kind naming the id involved.
func IDError(kind ErrKind, msg string, id ID) *Error {
	return &Error{Kind: kind, Msg: msg + " (id " + id.String() + ")"}
}

// Sentinels commonly returned by implementations.
var (
	// ErrInvalidNode indicates a children field the index cannot ingest.
	ErrInvalidNode = &Error{Kind: ErrKindFormat, Msg: "invalid node shape"}
	// ErrNotFound indicates an id with no live entry.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrInvalidTarget indicates a mutation anchored on an id with no live entry.
	ErrInvalidTarget = &Error{Kind: ErrKindTarget, Msg: "invalid target"}
	// ErrUnsupported indicates an operation the entry cannot take part in.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "unsupported operation"}
	// ErrLimit indicates a configured limit would be exceeded.
	ErrLimit = &Error{Kind: ErrKindLimit, Msg: "limit exceeded"}
)

// -----------------------------------------------------------------------------
// Core Identifiers
// -----------------------------------------------------------------------------

// ID is the handle of an indexed node. Ids are issued from 1 upward by a
// single counter per tree and are never reused.
type ID uint64

// NoID is never issued; it marks an absent link.
const NoID ID = 0

// RootID is the id of every tree's root entry.
const RootID ID = 1

// Valid reports whether id could name an entry.
func (id ID) Valid() bool { return id != NoID }

func (id ID) String() string { return strconv.FormatUint(uint64(id), 10) }
