// Package png models a PNG file as its 8-byte signature followed by an
// ordered sequence of chunks. It does not decode pixel data; every chunk
// it does not manipulate passes through as opaque bytes, which is what
// lets muninn add and remove hidden-message chunks without re-encoding
// the image.
package png

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/muninnlabs/muninn/pkg/codec"
)

// SignatureSize is the width of the fixed PNG file header.
const SignatureSize = 8

// Signature is the fixed 8-byte prefix every PNG file starts with.
var Signature = [SignatureSize]byte{137, 80, 78, 71, 13, 10, 26, 10}

// Png is an ordered chunk sequence. Chunk order is the on-disk byte
// order; Encode after Parse reproduces the input buffer byte for byte.
type Png struct {
	chunks []*codec.Chunk
}

// FromChunks builds a Png from an already-decoded chunk list.
func FromChunks(chunks []*codec.Chunk) *Png {
	return &Png{chunks: chunks}
}

// Parse decodes a whole PNG buffer. The signature is checked first, then
// chunks are decoded back-to-back until the buffer is exhausted exactly.
// Any failure aborts the whole parse; no partial sequence is returned.
func Parse(b []byte) (*Png, error) {
	if len(b) < SignatureSize || !bytes.Equal(b[:SignatureSize], Signature[:]) {
		return nil, fmt.Errorf("%w: missing %d-byte png header", codec.ErrBadSignature, SignatureSize)
	}

	p := &Png{}
	rest := b[SignatureSize:]
	for len(rest) > 0 {
		if len(rest) < codec.Overhead {
			return nil, fmt.Errorf("%w: %d trailing bytes", codec.ErrMalformedChunk, len(rest))
		}
		length := binary.BigEndian.Uint32(rest)
		wireSize := int(length) + codec.Overhead
		if len(rest) < wireSize {
			return nil, fmt.Errorf("%w: chunk needs %d bytes, %d remain", codec.ErrMalformedChunk, wireSize, len(rest))
		}

		chunk, err := codec.DecodeChunk(rest[:wireSize])
		if err != nil {
			return nil, err
		}
		p.chunks = append(p.chunks, chunk)
		rest = rest[wireSize:]
	}
	return p, nil
}

// FromFile reads and parses a PNG file.
func FromFile(path string) (*Png, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Encode serializes the signature followed by each chunk in sequence
// order, the exact inverse of Parse.
func (p *Png) Encode() []byte {
	buf := make([]byte, 0, p.Size())
	buf = append(buf, Signature[:]...)
	for _, c := range p.chunks {
		buf = append(buf, c.Encode()...)
	}
	return buf
}

// WriteFile serializes the sequence to a file.
func (p *Png) WriteFile(path string) error {
	return os.WriteFile(path, p.Encode(), 0600)
}

// Append adds a chunk at the end of the sequence. Duplicate type codes
// are allowed.
func (p *Png) Append(c *codec.Chunk) {
	p.chunks = append(p.chunks, c)
}

// ChunkByType returns the first chunk whose type code matches typeCode,
// or nil if none does.
func (p *Png) ChunkByType(typeCode string) *codec.Chunk {
	for _, c := range p.chunks {
		if c.Type().String() == typeCode {
			return c
		}
	}
	return nil
}

// RemoveByType removes the first chunk whose type code matches typeCode
// and returns it. Later chunks of the same type stay in place.
func (p *Png) RemoveByType(typeCode string) (*codec.Chunk, error) {
	for i, c := range p.chunks {
		if c.Type().String() == typeCode {
			p.chunks = append(p.chunks[:i], p.chunks[i+1:]...)
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: no %q chunk in sequence", codec.ErrChunkNotFound, typeCode)
}

// Chunks returns the sequence in on-disk order.
func (p *Png) Chunks() []*codec.Chunk {
	return p.chunks
}

// Size returns the total encoded size: signature plus each chunk's wire
// size.
func (p *Png) Size() int {
	n := SignatureSize
	for _, c := range p.chunks {
		n += c.WireSize()
	}
	return n
}
