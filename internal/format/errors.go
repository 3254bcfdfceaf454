package format

import "github.com/joshuapare/epckit/pkg/types"

var (
	// ErrOutOfBounds indicates the buffer lacked the bytes required for a field.
	ErrOutOfBounds = types.ErrOutOfBounds
	// ErrNameUnterminated indicates no NUL was found inside the name lookahead.
	ErrNameUnterminated = types.ErrNameResolution
)
