package codec

import "fmt"

// TypeCodeSize is the fixed width of a chunk type code in bytes.
const TypeCodeSize = 4

// TypeCode is a 4-byte chunk type code. Each byte must be an ASCII
// letter (A-Z or a-z); decoders treat the bytes as fixed binary values,
// not text, so codes are compared byte-for-byte. The case of each byte
// position encodes one property bit, queried via the Is* methods.
type TypeCode struct {
	b [TypeCodeSize]byte
}

// TypeCodeFromBytes validates four raw bytes as a type code. Case is
// preserved, never normalized.
func TypeCodeFromBytes(b [TypeCodeSize]byte) (TypeCode, error) {
	for i, c := range b {
		if !isASCIILetter(c) {
			return TypeCode{}, fmt.Errorf("%w: byte %d (%#02x) is not an ASCII letter", ErrInvalidTypeCode, i, c)
		}
	}
	return TypeCode{b: b}, nil
}

// TypeCodeFromString validates a string as a type code. The string must
// be exactly four bytes of ASCII letters.
func TypeCodeFromString(s string) (TypeCode, error) {
	if len(s) != TypeCodeSize {
		return TypeCode{}, fmt.Errorf("%w: %q is %d bytes, want %d", ErrInvalidTypeCode, s, len(s), TypeCodeSize)
	}
	var b [TypeCodeSize]byte
	copy(b[:], s)
	return TypeCodeFromBytes(b)
}

// Bytes returns the raw 4-byte representation.
func (t TypeCode) Bytes() [TypeCodeSize]byte {
	return t.b
}

func (t TypeCode) String() string {
	return string(t.b[:])
}

// IsCritical reports whether a decoder must understand this chunk to
// process the file safely (first byte uppercase). Informational only.
func (t TypeCode) IsCritical() bool {
	return isUpper(t.b[0])
}

// IsPublic reports whether the code is defined by a public specification
// rather than privately by an application (second byte uppercase).
func (t TypeCode) IsPublic() bool {
	return isUpper(t.b[1])
}

// IsReservedBitValid reports whether the code conforms to the reserved-bit
// convention of the current PNG specification (third byte uppercase).
func (t TypeCode) IsReservedBitValid() bool {
	return isUpper(t.b[2])
}

// IsSafeToCopy reports whether an editor that does not recognize this
// chunk may copy it unmodified (fourth byte lowercase).
func (t TypeCode) IsSafeToCopy() bool {
	return !isUpper(t.b[3])
}

// IsValid reports whether the code is a private, reserved-bit-conformant
// type: the convention muninn's hidden-message chunks use. Note this is
// stricter than the letter of the PNG spec, which allows public codes too.
func (t TypeCode) IsValid() bool {
	return !t.IsPublic() && t.IsReservedBitValid()
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
