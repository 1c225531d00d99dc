// Package valuecodec implements the typed-value wire shapes of spec.md §6
// that sit one layer above bitio's raw primitives: length-prefixed binary
// blobs, length-prefixed strings with the EXI string-table-miss offset,
// percent values, and biased exponents. Shared by dctypes and xmldsig so
// neither package needs to depend on the other for these leaf encodings.
//
// Grounded on core/channels.go's EncodeBinary/DecodeBinary and
// EncodeString/DecodeStringOnly in the teacher's pack, simplified from
// arbitrary-precision UCS codepoints to the fixed-capacity octet runs
// spec.md §3 requires ("a compile-time upper bound per occurrence site").
package valuecodec

import (
	"github.com/EVerest/everest-core-sub002/bitio"
	"github.com/EVerest/everest-core-sub002/exierr"
)

// EncodeBinary writes data as "zero bit, unsigned_var_int(len), len raw
// octets" (spec.md §6 base64Binary/hexBinary/wildcard-bytes shape).
func EncodeBinary(c *bitio.Cursor, data []byte) error {
	if err := c.WriteBit(0); err != nil {
		return err
	}
	if err := c.WriteUint32(uint32(len(data))); err != nil {
		return err
	}
	return c.WriteBytes(data)
}

// DecodeBinary reads a value encoded by EncodeBinary, failing with
// UnknownEventCode if the decoded length exceeds capacity (the call
// site's declared capacity, spec.md §3 invariant 3).
func DecodeBinary(c *bitio.Cursor, capacity int) ([]byte, error) {
	if _, err := c.ReadBit(); err != nil {
		return nil, err
	}
	length, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	if int(length) > capacity {
		return nil, exierr.New(exierr.UnknownEventCode, "binary length %d exceeds site capacity %d", length, capacity)
	}
	return c.ReadBytes(int(length))
}

// EncodeString writes s as "zero bit, unsigned_var_int(len+2), len octets"
// (spec.md §6 string/anyURI/NCName shape; the +2 is the EXI
// string-table-miss offset).
func EncodeString(c *bitio.Cursor, s string) error {
	if err := c.WriteBit(0); err != nil {
		return err
	}
	if err := c.WriteUint32(uint32(len(s) + 2)); err != nil {
		return err
	}
	return c.WriteCharacters(s)
}

// DecodeString reads a value encoded by EncodeString.
func DecodeString(c *bitio.Cursor, capacity int) (string, error) {
	if _, err := c.ReadBit(); err != nil {
		return "", err
	}
	lengthPlus2, err := c.ReadUint32()
	if err != nil {
		return "", err
	}
	if lengthPlus2 < 2 {
		return "", exierr.New(exierr.UnknownEventCode, "string length prefix %d underflows table-miss offset", lengthPlus2)
	}
	length := int(lengthPlus2) - 2
	if length > capacity {
		return "", exierr.New(exierr.UnknownEventCode, "string length %d exceeds site capacity %d", length, capacity)
	}
	return c.ReadCharacters(length)
}

// EncodePercentValue writes a percentValueType: a 7-bit unsigned integer
// in [0,100] (spec.md §3/§8).
func EncodePercentValue(c *bitio.Cursor, v uint8) error {
	if v > 100 {
		return exierr.New(exierr.UnknownEventCode, "percent value %d out of range [0,100]", v)
	}
	return c.WriteNBitUint(7, uint32(v))
}

// DecodePercentValue reads a percentValueType.
func DecodePercentValue(c *bitio.Cursor) (uint8, error) {
	v, err := c.ReadNBitUint(7)
	if err != nil {
		return 0, err
	}
	if v > 100 {
		return 0, exierr.New(exierr.UnknownEventCode, "decoded percent value %d out of range [0,100]", v)
	}
	return uint8(v), nil
}

// exponentBias is the offset applied to an 8-bit signed Exponent so it can
// be emitted as a raw unsigned 8-bit integer (spec.md §3/§8: "an 8-bit
// signed Exponent is emitted biased by +128").
const exponentBias = 128

// EncodeExponent writes an int8 exponent biased by +128 as a raw 8-bit
// uint.
func EncodeExponent(c *bitio.Cursor, v int8) error {
	return c.WriteNBitUint(8, uint32(int(v)+exponentBias))
}

// DecodeExponent reads an exponent encoded by EncodeExponent.
func DecodeExponent(c *bitio.Cursor) (int8, error) {
	raw, err := c.ReadNBitUint(8)
	if err != nil {
		return 0, err
	}
	return int8(int(raw) - exponentBias), nil
}
