package worlderr

import (
	"errors"

	"github.com/udisondev/worldfile/internal/binutil"
	"github.com/udisondev/worldfile/internal/header"
)

// Kind names an error classification for the terminal load_error
// event (spec's LoadError(kind)). It exists purely for
// logging/reporting; callers that need type-safe dispatch should use
// errors.As against the concrete error types directly.
type Kind string

const (
	KindUnsupportedVersion Kind = "UnsupportedVersion"
	KindVersionTooOld      Kind = "VersionTooOld"
	KindNotARelogicMap     Kind = "NotARelogicMap"
	KindNotAMapFile        Kind = "NotAMapFile"
	KindUnexpectedEOF      Kind = "UnexpectedEof"
	KindInvalidUTF8        Kind = "InvalidUtf8"
	KindInvalidLength      Kind = "InvalidLength"
	KindCorruptTileStream  Kind = "CorruptTileStream"
	KindUnknownEntityKind  Kind = "UnknownEntityKind"
	KindCorruptPlayerMap   Kind = "CorruptPlayerMap"
	KindDeflateFailed      Kind = "DeflateFailed"
	KindInitFailure        Kind = "InitFailure"
	KindUnknown            Kind = "Unknown"
)

// Classify maps err to a Kind by walking its error chain. It never
// returns an error; unmatched errors classify as KindUnknown.
func Classify(err error) Kind {
	switch {
	case errors.As(err, new(*UnsupportedVersionError)):
		return KindUnsupportedVersion
	case errors.As(err, new(*VersionTooOldError)):
		return KindVersionTooOld
	case errors.As(err, new(*NotARelogicMapError)):
		return KindNotARelogicMap
	case errors.As(err, new(*NotAMapFileError)):
		return KindNotAMapFile
	case errors.As(err, new(*binutil.UnexpectedEofError)):
		return KindUnexpectedEOF
	case errors.As(err, new(*binutil.InvalidUTF8Error)):
		return KindInvalidUTF8
	case errors.As(err, new(*binutil.InvalidLengthError)):
		return KindInvalidLength
	case errors.As(err, new(*CorruptTileStreamError)):
		return KindCorruptTileStream
	case errors.As(err, new(*UnknownEntityKindError)):
		return KindUnknownEntityKind
	case errors.As(err, new(*CorruptPlayerMapError)):
		return KindCorruptPlayerMap
	case errors.As(err, new(*DeflateFailedError)):
		return KindDeflateFailed
	case errors.As(err, new(*header.InitFailureError)):
		return KindInitFailure
	default:
		return KindUnknown
	}
}
