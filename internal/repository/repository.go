// Package repository exposes the tabular store behind three primitives per
// table: append, read-all and update-by-predicate. The update primitive does
// its own read before writing and is not atomic with respect to other callers;
// the service layer is built around that contract.
package repository

import "errors"

// ErrRowNotFound is returned by UpdateWhere when no row matches.
var ErrRowNotFound = errors.New("row not found")
