// SPDX-License-Identifier: MIT
// Package population: sentinel errors.
// Every message is prefixed with "population: ". Functions return these
// directly or wrapped once with context via %w; callers match with errors.Is.

package population

import "errors"

var (
	// ErrSchemaNil indicates that a nil *Schema was supplied.
	ErrSchemaNil = errors.New("population: schema is nil")

	// ErrEmptyKey indicates an empty attribute or layer key in a schema.
	ErrEmptyKey = errors.New("population: empty key")

	// ErrDuplicateKey indicates a key declared twice in a schema.
	ErrDuplicateKey = errors.New("population: duplicate key")

	// ErrMissingUID indicates a schema without an integer uid field.
	ErrMissingUID = errors.New("population: schema has no integer uid field")

	// ErrBadField indicates a field whose kind does not suit its group
	// (states must be bool, dates and durations must be float).
	ErrBadField = errors.New("population: field kind does not match its group")

	// ErrNegativeSize indicates a negative population size.
	ErrNegativeSize = errors.New("population: negative size")

	// ErrUnknownKey indicates access to a key the schema does not declare.
	ErrUnknownKey = errors.New("population: unknown attribute key")

	// ErrReservedKey indicates a side-mapping key that collides with a schema key.
	ErrReservedKey = errors.New("population: key is declared by the schema")

	// ErrKindMismatch indicates a typed access to an array of another kind,
	// or a sentinel query on an array that has no sentinel.
	ErrKindMismatch = errors.New("population: kind mismatch")

	// ErrLengthMismatch indicates an array whose length differs from the
	// population size or from the array it replaces.
	ErrLengthMismatch = errors.New("population: length mismatch")

	// ErrUnsupportedType indicates a value slice type Set cannot cast.
	ErrUnsupportedType = errors.New("population: unsupported value type")

	// ErrBadValue indicates a value that cannot be cast to the declared kind
	// (for example a non-integral float written to an integer array).
	ErrBadValue = errors.New("population: value not representable in declared kind")

	// ErrSchemaMismatch indicates contact layers that disagree with the
	// schema's layer keys, or two populations with different schemas.
	ErrSchemaMismatch = errors.New("population: schema mismatch")

	// ErrIndexOutOfRange indicates an agent index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("population: agent index out of range")

	// ErrUnsupportedContacts indicates a contact input shape AddContacts does not understand.
	ErrUnsupportedContacts = errors.New("population: unsupported contacts type")

	// ErrNoLayerKey indicates that no layer key was given and the schema declares none.
	ErrNoLayerKey = errors.New("population: no layer key available")
)
