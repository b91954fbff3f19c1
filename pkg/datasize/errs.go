package datasize

import "errors"

var (
	// ErrInvalidLiteral indicates that a string could not be interpreted as
	// a data size. Wrapped errors carry the offending literal verbatim.
	ErrInvalidLiteral = errors.New("datasize: invalid data size literal")

	// ErrUnknownUnit indicates a forced display unit that matches no entry
	// of the selected system's unit table.
	ErrUnknownUnit = errors.New("datasize: unknown unit")
)
