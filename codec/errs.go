package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/nbt-format/go-nbt/tag"
)

var (
	// ErrUnknownKind is tag.ErrUnknownKind, reported for kind bytes
	// outside 0-11.
	ErrUnknownKind     = tag.ErrUnknownKind
	ErrRootNotCompound = errors.New("root tag is not a compound")
	ErrTruncated       = fmt.Errorf("truncated input: %w", io.ErrUnexpectedEOF)
	ErrStringTooLong   = errors.New("string exceeds 65535 encoded bytes")
	ErrMalformedString = errors.New("malformed modified UTF-8")
	ErrNegativeLength  = errors.New("negative length")
	ErrMaxDepth        = errors.New("maximum nesting depth exceeded")
)
