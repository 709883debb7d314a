package png

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muninnlabs/muninn/pkg/codec"
)

func textChunk(t *testing.T, typeCode, message string) *codec.Chunk {
	t.Helper()
	chunk, err := codec.NewTextChunk(typeCode, message)
	require.NoError(t, err)
	return chunk
}

func testPng(t *testing.T) *Png {
	t.Helper()
	return FromChunks([]*codec.Chunk{
		textChunk(t, "FrSt", "I am the first chunk"),
		textChunk(t, "miDl", "I am another chunk"),
		textChunk(t, "LASt", "I am the last chunk"),
	})
}

func TestParseValidBuffer(t *testing.T) {
	original := testPng(t)

	parsed, err := Parse(original.Encode())
	require.NoError(t, err)

	assert.Len(t, parsed.Chunks(), 3)
	assert.Equal(t, original.Size(), parsed.Size())
}

func TestParseRejectsBadSignature(t *testing.T) {
	buf := testPng(t).Encode()
	buf[0] = 13

	_, err := Parse(buf)
	assert.ErrorIs(t, err, codec.ErrBadSignature)

	_, err = Parse([]byte{137, 80})
	assert.ErrorIs(t, err, codec.ErrBadSignature)
}

func TestParseRejectsCorruptChunk(t *testing.T) {
	buf := testPng(t).Encode()

	// Flip a data byte of the middle chunk; the whole parse must fail.
	buf[SignatureSize+textChunk(t, "FrSt", "I am the first chunk").WireSize()+10] ^= 0xFF

	_, err := Parse(buf)
	assert.ErrorIs(t, err, codec.ErrChecksumMismatch)
}

func TestParseRejectsTrailingPartialChunk(t *testing.T) {
	buf := testPng(t).Encode()

	_, err := Parse(buf[:len(buf)-3])
	assert.ErrorIs(t, err, codec.ErrMalformedChunk)

	_, err = Parse(append(buf, 0x00, 0x01))
	assert.ErrorIs(t, err, codec.ErrMalformedChunk)
}

func TestEncodeRoundTripIsByteIdentical(t *testing.T) {
	first := testPng(t).Encode()

	parsed, err := Parse(first)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, parsed.Encode()), "round-trip must be byte-identical")
}

func TestEmptySequence(t *testing.T) {
	parsed, err := Parse(Signature[:])
	require.NoError(t, err)
	assert.Empty(t, parsed.Chunks())
	assert.Equal(t, SignatureSize, parsed.Size())
	assert.Equal(t, Signature[:], parsed.Encode())
}

func TestAppendThenFind(t *testing.T) {
	p := testPng(t)
	p.Append(textChunk(t, "ruSt", "hello there"))

	found := p.ChunkByType("ruSt")
	require.NotNil(t, found)

	text, err := found.Text()
	require.NoError(t, err)
	assert.Equal(t, "hello there", text)
}

func TestFindMissingTypeReturnsNil(t *testing.T) {
	assert.Nil(t, testPng(t).ChunkByType("noPe"))
}

func TestFindReturnsFirstMatch(t *testing.T) {
	p := testPng(t)
	p.Append(textChunk(t, "dupe", "first"))
	p.Append(textChunk(t, "dupe", "second"))

	found := p.ChunkByType("dupe")
	require.NotNil(t, found)
	text, err := found.Text()
	require.NoError(t, err)
	assert.Equal(t, "first", text)
}

func TestRemoveByType(t *testing.T) {
	p := testPng(t)
	p.Append(textChunk(t, "ruSt", "hello"))

	removed, err := p.RemoveByType("ruSt")
	require.NoError(t, err)
	assert.Equal(t, "ruSt", removed.Type().String())
	assert.Nil(t, p.ChunkByType("ruSt"))
	assert.Len(t, p.Chunks(), 3)
}

func TestRemoveMissingTypeLeavesSequenceUnchanged(t *testing.T) {
	p := testPng(t)
	before := p.Encode()

	_, err := p.RemoveByType("noPe")
	assert.ErrorIs(t, err, codec.ErrChunkNotFound)
	assert.Equal(t, before, p.Encode())
}

func TestRemoveOnlyFirstDuplicate(t *testing.T) {
	p := FromChunks([]*codec.Chunk{
		textChunk(t, "FrSt", "keep me"),
		textChunk(t, "dupe", "remove me"),
		textChunk(t, "miDl", "keep me too"),
		textChunk(t, "dupe", "keep the second copy"),
	})

	_, err := p.RemoveByType("dupe")
	require.NoError(t, err)

	require.Len(t, p.Chunks(), 3)
	assert.Equal(t, "FrSt", p.Chunks()[0].Type().String())
	assert.Equal(t, "miDl", p.Chunks()[1].Type().String())
	assert.Equal(t, "dupe", p.Chunks()[2].Type().String())

	text, err := p.Chunks()[2].Text()
	require.NoError(t, err)
	assert.Equal(t, "keep the second copy", text)
}

func TestSizeAccountsForEveryChunk(t *testing.T) {
	p := testPng(t)

	want := SignatureSize
	for _, c := range p.Chunks() {
		want += int(c.Length()) + codec.Overhead
	}
	assert.Equal(t, want, p.Size())
	assert.Equal(t, want, len(p.Encode()))
}

func TestFileRoundTrip(t *testing.T) {
	path := t.TempDir() + "/test.png"

	original := testPng(t)
	require.NoError(t, original.WriteFile(path))

	loaded, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, original.Encode(), loaded.Encode())
}

func TestFromFileMissingPath(t *testing.T) {
	_, err := FromFile(t.TempDir() + "/absent.png")
	assert.Error(t, err)
}
