package png

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/muninnlabs/muninn/pkg/codec"
)

// ChunkReader provides sequential access to the chunks of a PNG stream
// without materializing the whole sequence. The signature is consumed
// and checked on the first call to Next.
type ChunkReader struct {
	reader  *bufio.Reader
	started bool
}

// NewChunkReader creates a reader over a PNG byte stream.
func NewChunkReader(r io.Reader) *ChunkReader {
	return &ChunkReader{reader: bufio.NewReader(r)}
}

// Next returns the next chunk in the stream, or io.EOF once the stream
// ends cleanly on a chunk boundary. A stream that ends mid-chunk yields
// ErrMalformedChunk.
func (cr *ChunkReader) Next() (*codec.Chunk, error) {
	if !cr.started {
		if err := cr.readSignature(); err != nil {
			return nil, err
		}
		cr.started = true
	}

	header := make([]byte, 4)
	if _, err := io.ReadFull(cr.reader, header); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%w: truncated length field: %v", codec.ErrMalformedChunk, err)
	}

	length := binary.BigEndian.Uint32(header)
	wire := make([]byte, int(length)+codec.Overhead)
	copy(wire, header)
	if _, err := io.ReadFull(cr.reader, wire[4:]); err != nil {
		return nil, fmt.Errorf("%w: stream ended inside a %d-byte chunk: %v", codec.ErrMalformedChunk, len(wire), err)
	}

	return codec.DecodeChunk(wire)
}

func (cr *ChunkReader) readSignature() error {
	sig := make([]byte, SignatureSize)
	if _, err := io.ReadFull(cr.reader, sig); err != nil {
		return fmt.Errorf("%w: %v", codec.ErrBadSignature, err)
	}
	if [SignatureSize]byte(sig) != Signature {
		return fmt.Errorf("%w: got % x", codec.ErrBadSignature, sig)
	}
	return nil
}
