package codec

import "errors"

// Errors
var (
	ErrInvalidTypeCode  = errors.New("invalid chunk type code")
	ErrMalformedChunk   = errors.New("malformed chunk")
	ErrChecksumMismatch = errors.New("chunk checksum mismatch")
	ErrBadSignature     = errors.New("bad png signature")
	ErrChunkNotFound    = errors.New("chunk not found")
	ErrTextDecode       = errors.New("chunk data is not valid utf-8")
)
