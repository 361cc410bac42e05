package tag

import "errors"

var (
	ErrUnknownKind  = errors.New("unknown tag kind")
	ErrKindMismatch = errors.New("tag kind mismatch")
	ErrMissingKey   = errors.New("missing key")
	ErrWrongVariant = errors.New("wrong tag variant")
	ErrNilTag       = errors.New("nil tag")
	ErrCycle        = errors.New("tag would contain itself")
	ErrPathNotFound = errors.New("path not found")
	ErrBadPath      = errors.New("bad path")
)
