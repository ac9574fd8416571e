package broodrep

import "fmt"

// ErrorKind classifies the reason a parse failed, matching one of the
// documented failure modes of the decoder.
type ErrorKind int

const (
	// UnknownFormat means variant detection failed to recognize the buffer.
	UnknownFormat ErrorKind = iota
	// UnexpectedEOF means the input ended mid-record, mid-block, or mid-token.
	UnexpectedEOF
	// SizeMismatch means produced bytes differed from a claimed decompressed size.
	SizeMismatch
	// InvalidHeader means the legacy codec's 2-byte prelude was out of range.
	InvalidHeader
	// InvalidCode means no legacy prefix-table entry matched the input bits.
	InvalidCode
	// BadDistance means a legacy back-reference pointed before the output start.
	BadDistance
	// CodecError wraps an opaque failure from the zlib implementation.
	CodecError
	// BombDetected means the decompression guard tripped. DecodeError.Limit
	// (a BombLimit) says which limit.
	BombDetected
	// InvalidSection means a typed decoder received a region of unexpected
	// length or contents.
	InvalidSection
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownFormat:
		return "UnknownFormat"
	case UnexpectedEOF:
		return "UnexpectedEOF"
	case SizeMismatch:
		return "SizeMismatch"
	case InvalidHeader:
		return "InvalidHeader"
	case InvalidCode:
		return "InvalidCode"
	case BadDistance:
		return "BadDistance"
	case CodecError:
		return "CodecError"
	case BombDetected:
		return "BombDetected"
	case InvalidSection:
		return "InvalidSection"
	default:
		return "Unknown"
	}
}

// BombLimit identifies which decompression-guard limit was exceeded.
type BombLimit int

const (
	// SizeLimit means produced bytes exceeded the configured maximum.
	SizeLimit BombLimit = iota
	// RatioLimit means the produced/consumed byte ratio exceeded the configured maximum.
	RatioLimit
	// TimeLimit means the configured wall-clock budget elapsed.
	TimeLimit
)

func (l BombLimit) String() string {
	switch l {
	case SizeLimit:
		return "SizeLimit"
	case RatioLimit:
		return "RatioLimit"
	case TimeLimit:
		return "TimeLimit"
	default:
		return "Unknown"
	}
}

// DecodeError is the error type returned by every operation in this package.
type DecodeError struct {
	Kind    ErrorKind
	Message string
	// Offset is the byte offset at which the error was detected, if known.
	Offset int
	// HasOffset reports whether Offset is meaningful.
	HasOffset bool
	// Limit is populated when Kind is BombDetected.
	Limit BombLimit
	// Cause is the underlying error, if any (e.g. from compress/zlib).
	Cause error
}

func (e *DecodeError) Error() string {
	if e.Kind == BombDetected {
		if e.Message != "" {
			return fmt.Sprintf("broodrep: BombDetected(%s): %s", e.Limit, e.Message)
		}
		return fmt.Sprintf("broodrep: BombDetected(%s)", e.Limit)
	}
	if e.HasOffset {
		if e.Message != "" {
			return fmt.Sprintf("broodrep: %s at offset 0x%x: %s", e.Kind, e.Offset, e.Message)
		}
		return fmt.Sprintf("broodrep: %s at offset 0x%x", e.Kind, e.Offset)
	}
	if e.Message != "" {
		return fmt.Sprintf("broodrep: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("broodrep: %s", e.Kind)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is allows errors.Is(err, broodrep.ErrUnknownFormat) style checks against
// the sentinel values below.
func (e *DecodeError) Is(target error) bool {
	other, ok := target.(*DecodeError)
	if !ok {
		return false
	}
	if other.Kind != e.Kind {
		return false
	}
	if other.Kind == BombDetected {
		return other.Limit == e.Limit
	}
	return true
}

// Sentinel errors for use with errors.Is. Only Kind (and, for BombDetected,
// Limit) are compared; Message/Offset/Cause are ignored.
var (
	ErrUnknownFormat  = &DecodeError{Kind: UnknownFormat}
	ErrUnexpectedEOF  = &DecodeError{Kind: UnexpectedEOF}
	ErrSizeMismatch   = &DecodeError{Kind: SizeMismatch}
	ErrInvalidHeader  = &DecodeError{Kind: InvalidHeader}
	ErrInvalidCode    = &DecodeError{Kind: InvalidCode}
	ErrBadDistance    = &DecodeError{Kind: BadDistance}
	ErrCodecError     = &DecodeError{Kind: CodecError}
	ErrInvalidSection = &DecodeError{Kind: InvalidSection}
	ErrBombSizeLimit  = &DecodeError{Kind: BombDetected, Limit: SizeLimit}
	ErrBombRatioLimit = &DecodeError{Kind: BombDetected, Limit: RatioLimit}
	ErrBombTimeLimit  = &DecodeError{Kind: BombDetected, Limit: TimeLimit}
)

func newErr(kind ErrorKind, msg string) *DecodeError {
	return &DecodeError{Kind: kind, Message: msg}
}

func newErrAt(kind ErrorKind, offset int, msg string) *DecodeError {
	return &DecodeError{Kind: kind, Message: msg, Offset: offset, HasOffset: true}
}

func newBombErr(limit BombLimit, msg string) *DecodeError {
	return &DecodeError{Kind: BombDetected, Limit: limit, Message: msg}
}

func newCodecErr(cause error) *DecodeError {
	return &DecodeError{Kind: CodecError, Message: cause.Error(), Cause: cause}
}
