// Package types holds the identifiers and typed errors shared by the treekit
// packages.
//
// Errors carry a stable ErrKind so callers can branch on intent:
//
//	if _, err := t.Remove(id); errors.Is(err, types.ErrNotFound) {
//	    // id was already gone
//	}
//
// This package has no dependencies beyond the standard library.
package types
