package partition

import "errors"

var (
	// ErrInvalidFormat indicates a name without a partition marker was passed
	// to an operation that needs one, or that the requested marker could not
	// be encoded.
	ErrInvalidFormat = errors.New("invalid partition filename")

	// ErrAlreadyPartitioned indicates a marker was about to be inserted into a
	// name that already carries one.
	ErrAlreadyPartitioned = errors.New("filename already has a partition marker")

	// ErrOutOfRange is returned by strict validation when the current index
	// or the total falls outside the sequence.
	ErrOutOfRange = errors.New("partition index out of range")
)
