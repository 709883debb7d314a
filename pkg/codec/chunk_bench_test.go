//go:build bench
// +build bench

package codec

import (
	"bytes"
	"testing"
)

func benchTypeCode(b *testing.B) TypeCode {
	b.Helper()
	tc, err := TypeCodeFromString("ruSt")
	if err != nil {
		b.Fatal(err)
	}
	return tc
}

func BenchmarkChunk_Encode(b *testing.B) {
	tc := benchTypeCode(b)

	benchmarks := []struct {
		name string
		data []byte
	}{
		{
			name: "small",
			data: []byte("meet me at dawn"),
		},
		{
			name: "medium",
			data: bytes.Repeat([]byte("m"), 1024),
		},
		{
			name: "large",
			data: bytes.Repeat([]byte("m"), 64*1024),
		},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			chunk := NewChunk(tc, bm.data)
			b.SetBytes(int64(chunk.WireSize()))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = chunk.Encode()
			}
		})
	}
}

func BenchmarkChunk_Decode(b *testing.B) {
	tc := benchTypeCode(b)

	benchmarks := []struct {
		name string
		data []byte
	}{
		{
			name: "small",
			data: []byte("meet me at dawn"),
		},
		{
			name: "medium",
			data: bytes.Repeat([]byte("m"), 1024),
		},
		{
			name: "large",
			data: bytes.Repeat([]byte("m"), 64*1024),
		},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			wire := NewChunk(tc, bm.data).Encode()
			b.SetBytes(int64(len(wire)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := DecodeChunk(wire); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
