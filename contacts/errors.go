// SPDX-License-Identifier: MIT
// Package contacts: sentinel errors.
// Every message is prefixed with "contacts: ". Callers branch with errors.Is;
// implementations attach context with fmt.Errorf("...: %w", ErrX).

package contacts

import "errors"

var (
	// ErrLengthMismatch indicates that P1, P2 and Beta of a layer differ in length.
	ErrLengthMismatch = errors.New("contacts: column length mismatch")

	// ErrNegativeIndex indicates that an agent index column holds a negative value.
	ErrNegativeIndex = errors.New("contacts: negative agent index")

	// ErrBadColumn indicates that supplied column data cannot be cast to the
	// canonical column type (wrong Go type, non-integral index, overflow).
	ErrBadColumn = errors.New("contacts: bad column data")

	// ErrUnknownColumn indicates a column name other than p1, p2 or beta.
	ErrUnknownColumn = errors.New("contacts: unknown column")

	// ErrMissingColumn indicates that p1 or p2 was not supplied.
	ErrMissingColumn = errors.New("contacts: missing column")

	// ErrIndexOutOfRange indicates a row index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("contacts: row index out of range")

	// ErrLayerNil indicates that a nil *Layer was passed where a layer is required.
	ErrLayerNil = errors.New("contacts: layer is nil")

	// ErrLayerNotFound indicates that a named layer does not exist in the collection.
	ErrLayerNotFound = errors.New("contacts: layer not found")

	// ErrPositionOutOfRange indicates a positional accessor past the last layer.
	ErrPositionOutOfRange = errors.New("contacts: layer position out of range")

	// ErrEmptyLayerKey indicates an empty layer name.
	ErrEmptyLayerKey = errors.New("contacts: layer key is empty")
)
