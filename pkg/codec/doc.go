// Package codec implements the PNG chunk wire format: the 4-byte type
// code and the length-prefixed, CRC-checked chunk record. This is the
// foundation muninn builds on to hide and recover messages in PNG files.
//
// # Chunk Format
//
// Chunks are serialized in a binary format with the following structure
// (all integers big-endian):
//
//	[Length(4)][TypeCode(4)][Data(Length)][CRC(4)]
//
// Fields:
//   - Length: 32-bit unsigned byte count of the data field only; it does
//     not count itself, the type code, or the CRC
//   - TypeCode: four ASCII letters whose per-byte case encodes the chunk's
//     handling properties (see TypeCode)
//   - Data: opaque bytes, may be empty
//   - CRC: CRC-32 (ISO-HDLC, the zlib/PNG variant) over TypeCode and Data
//
// The total wire size of a chunk is Length + 12.
//
// # Integrity
//
// The CRC is computed over the type code and data fields, never over the
// length field. Chunks built with NewChunk carry a freshly computed CRC;
// chunks obtained from DecodeChunk had their stored CRC verified, so any
// *Chunk in hand satisfies the invariant.
//
// # Error Handling
//
// Decode failures wrap one of the package's sentinel errors
// (ErrMalformedChunk, ErrInvalidTypeCode, ErrChecksumMismatch, ...) so
// callers can branch with errors.Is while keeping human-readable detail.
//
// # Thread Safety
//
// TypeCode is a value type and Chunk is immutable after construction;
// both are safe to share between goroutines.
package codec
