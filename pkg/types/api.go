package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFileRead       ErrKind = iota // whole-file read failed; load aborted
	ErrKindOutOfBounds                   // field or extent read past the buffer
	ErrKindInvalidSize                   // computed extent <= 0
	ErrKindNameResolution                // no terminator within lookahead (non-fatal)
	ErrKindEmptyResult                   // no strings/textures/records found (notice)
	ErrKindCodec                         // image decode failed (non-fatal)
	ErrKindNotFound                      // index or pattern missing
	ErrKindStale                         // selection computed against a replaced buffer
)

var kindNames = map[ErrKind]string{
	ErrKindFileRead:       "file-read",
	ErrKindOutOfBounds:    "out-of-bounds",
	ErrKindInvalidSize:    "invalid-size",
	ErrKindNameResolution: "name-resolution",
	ErrKindEmptyResult:    "empty-result",
	ErrKindCodec:          "codec",
	ErrKindNotFound:       "not-found",
	ErrKindStale:          "stale",
}

func (k ErrKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrKind(%d)", int(k))
}

// NoOffset marks an Error that is not tied to a buffer position.
const NoOffset int64 = -1

// Error is a typed error with an optional underlying cause and the offset
// of the offending item.
type Error struct {
	Kind   ErrKind
	Msg    string
	Offset int64 // NoOffset when not applicable
	Err    error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s at 0x%08X", msg, e.Offset)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so the sentinels below work with
// errors.Is regardless of message or offset.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Errorf builds an *Error of the given kind at offset.
func Errorf(kind ErrKind, offset int64, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Offset: offset, Err: cause}
}

// KindOf returns the ErrKind of err, or false if err is not an *Error.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if !errors.As(err, &e) || e == nil {
		return 0, false
	}
	return e.Kind, true
}

// Sentinels commonly returned by implementations.
var (
	// ErrFileRead indicates the container could not be read.
	ErrFileRead = &Error{Kind: ErrKindFileRead, Msg: "cannot read container", Offset: NoOffset}
	// ErrOutOfBounds indicates a read past the end of the buffer.
	ErrOutOfBounds = &Error{Kind: ErrKindOutOfBounds, Msg: "read out of bounds", Offset: NoOffset}
	// ErrInvalidSize indicates a computed blob extent that is empty or negative.
	ErrInvalidSize = &Error{Kind: ErrKindInvalidSize, Msg: "invalid blob size", Offset: NoOffset}
	// ErrNameResolution indicates a resource name ran past the lookahead window.
	ErrNameResolution = &Error{Kind: ErrKindNameResolution, Msg: "name not terminated", Offset: NoOffset}
	// ErrEmptyResult is a notice that a scan produced nothing.
	ErrEmptyResult = &Error{Kind: ErrKindEmptyResult, Msg: "no results", Offset: NoOffset}
	// ErrCodec indicates a blob could not be decoded as an image.
	ErrCodec = &Error{Kind: ErrKindCodec, Msg: "image decode failed", Offset: NoOffset}
	// ErrNotFound indicates a missing index, pattern, or entry.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found", Offset: NoOffset}
	// ErrStale indicates a selection made against a buffer that has since been replaced.
	ErrStale = &Error{Kind: ErrKindStale, Msg: "selection is stale", Offset: NoOffset}
)

// -----------------------------------------------------------------------------
// Data model
// -----------------------------------------------------------------------------

// StringEntry is a printable-ASCII run found in the buffer. Text only holds
// bytes in [0x20, 0x7E].
type StringEntry struct {
	Offset uint32 `json:"offset"`
	Text   string `json:"text"`
}

func (s StringEntry) String() string {
	return fmt.Sprintf("0x%08X: %s", s.Offset, s.Text)
}

// RecordRef is a byte position where a target offset value was found encoded
// as a little-endian uint32. Position+12 < len(buffer) always holds.
type RecordRef uint32

// RecordFields are the two fields read out of a presumed index record.
type RecordFields struct {
	NameOffset uint32 `json:"name_offset"`
	DataOffset uint32 `json:"data_offset"`
}

// Blob is a derived view [Start, Start+Length) into the buffer.
type Blob struct {
	Start  uint32 `json:"start"`
	Length uint32 `json:"length"`
}

// End returns the exclusive end offset.
func (b Blob) End() uint64 { return uint64(b.Start) + uint64(b.Length) }

func (b Blob) String() string {
	return fmt.Sprintf("[0x%08X, 0x%08X) %d bytes", b.Start, b.End(), b.Length)
}
