package common

import "errors"

var (
	// ErrInvalidFormat indicates structurally unparsable input.
	ErrInvalidFormat = errors.New("readers: invalid file format")

	// ErrEmptyFile indicates an input file with no usable records.
	ErrEmptyFile = errors.New("readers: no data found in file")

	// ErrUnsupportedFormat indicates a file extension no driver handles.
	ErrUnsupportedFormat = errors.New("readers: unsupported file format")
)
