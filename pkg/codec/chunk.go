package codec

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"unicode/utf8"
)

const (
	lengthFieldSize = 4
	crcFieldSize    = 4

	// Overhead is the number of wire bytes a chunk occupies beyond its
	// data: the length, type code and CRC fields.
	Overhead = lengthFieldSize + TypeCodeSize + crcFieldSize
)

// Chunk is one length-prefixed, checksummed PNG record. A Chunk is
// immutable once built; both constructors guarantee the CRC invariant
// (NewChunk recomputes it, DecodeChunk verifies it).
type Chunk struct {
	length   uint32
	typeCode TypeCode
	data     []byte
	crc      uint32
}

// NewChunk builds a chunk from a type code and raw data. The length and
// CRC fields are derived from the inputs, so this never fails.
func NewChunk(typeCode TypeCode, data []byte) *Chunk {
	return &Chunk{
		length:   uint32(len(data)),
		typeCode: typeCode,
		data:     data,
		crc:      Checksum(typeCode, data),
	}
}

// NewTextChunk builds a chunk carrying a UTF-8 message under the given
// type code string.
func NewTextChunk(typeCode, message string) (*Chunk, error) {
	tc, err := TypeCodeFromString(typeCode)
	if err != nil {
		return nil, err
	}
	return NewChunk(tc, []byte(message)), nil
}

// Checksum computes the CRC-32 (ISO-HDLC polynomial, the zlib/PNG
// variant) over the type code bytes followed by the data. The length
// field is never checksummed.
func Checksum(typeCode TypeCode, data []byte) uint32 {
	crc := crc32.NewIEEE()
	tb := typeCode.Bytes()
	crc.Write(tb[:]) // hash.Hash.Write never errors
	crc.Write(data)
	return crc.Sum32()
}

// DecodeChunk parses exactly one chunk from b. The buffer must hold the
// whole chunk and nothing else: its size must equal the declared data
// length plus Overhead. The stored CRC is verified against a fresh
// computation; the returned chunk carries the parsed fields as-is.
func DecodeChunk(b []byte) (*Chunk, error) {
	if len(b) < Overhead {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the %d-byte minimum", ErrMalformedChunk, len(b), Overhead)
	}
	length := binary.BigEndian.Uint32(b[:lengthFieldSize])
	if uint64(len(b)) != uint64(length)+Overhead {
		return nil, fmt.Errorf("%w: declares %d data bytes but buffer holds %d", ErrMalformedChunk, length, len(b)-Overhead)
	}

	// The bounds above make this slice exactly TypeCodeSize bytes.
	typeCode, err := TypeCodeFromBytes([TypeCodeSize]byte(b[lengthFieldSize : lengthFieldSize+TypeCodeSize]))
	if err != nil {
		return nil, err
	}

	dataStart := lengthFieldSize + TypeCodeSize
	data := append([]byte(nil), b[dataStart:dataStart+int(length)]...)
	crc := binary.BigEndian.Uint32(b[len(b)-crcFieldSize:])

	if computed := Checksum(typeCode, data); computed != crc {
		return nil, fmt.Errorf("%w: stored %d, computed %d", ErrChecksumMismatch, crc, computed)
	}

	return &Chunk{
		length:   length,
		typeCode: typeCode,
		data:     data,
		crc:      crc,
	}, nil
}

// Encode serializes the chunk into its wire form, the exact inverse of
// DecodeChunk.
func (c *Chunk) Encode() []byte {
	buf := make([]byte, c.WireSize())
	binary.BigEndian.PutUint32(buf[0:], c.length)
	tb := c.typeCode.Bytes()
	copy(buf[lengthFieldSize:], tb[:])
	copy(buf[lengthFieldSize+TypeCodeSize:], c.data)
	binary.BigEndian.PutUint32(buf[len(buf)-crcFieldSize:], c.crc)
	return buf
}

// Length returns the byte count of the data field.
func (c *Chunk) Length() uint32 {
	return c.length
}

// Type returns the chunk's type code.
func (c *Chunk) Type() TypeCode {
	return c.typeCode
}

// Data returns the chunk's data field.
func (c *Chunk) Data() []byte {
	return c.data
}

// CRC returns the chunk's stored checksum.
func (c *Chunk) CRC() uint32 {
	return c.crc
}

// WireSize returns the total size of the chunk when encoded.
func (c *Chunk) WireSize() int {
	return int(c.length) + Overhead
}

// Text decodes the chunk data as UTF-8.
func (c *Chunk) Text() (string, error) {
	if !utf8.Valid(c.data) {
		return "", fmt.Errorf("%w: %s chunk", ErrTextDecode, c.typeCode)
	}
	return string(c.data), nil
}

func (c *Chunk) String() string {
	return fmt.Sprintf("%s chunk: %d data bytes, crc %#08x", c.typeCode, c.length, c.crc)
}
