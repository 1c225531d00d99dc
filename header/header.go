// Package header writes/reads the fixed EXI options prelude used by every
// message in this codec: bit-packed, no self-contained options, no
// compression, cookie-less (spec.md §6).
//
// Grounded on the naming convention of the teacher's core/exi_header.go
// (EXIHeader_* constants), without porting its dynamic options-document
// grammar: this codec never negotiates options, it always emits the one
// fixed prelude spec.md §6 mandates.
package header

import (
	"github.com/EVerest/everest-core-sub002/bitio"
	"github.com/EVerest/everest-core-sub002/exierr"
)

const (
	// DistinguishingBitValue is bit 0 of the header. spec.md §6 fixes the
	// emitted first byte at "10000000" when options are absent, so this
	// bit is 1.
	DistinguishingBitValue int = 1
	// FormatVersionMajor is bits 1-2 of the header (always 0 here).
	FormatVersionMajor int = 0
	// FormatVersionMinor is bits 3-6 of the header (always 0 here).
	FormatVersionMinor int = 0

	// FirstByte is the fixed first octet of the header when options are
	// absent: "10000000".
	FirstByte byte = 0x80
)

// Write emits the fixed one-byte prelude: distinguishing bit (1),
// 2-bit format version major (0), 4-bit format version minor (0), padded
// with zero bits to the next byte boundary.
func Write(c *bitio.Cursor) error {
	if err := c.WriteBit(DistinguishingBitValue); err != nil {
		return err
	}
	if err := c.WriteNBitUint(2, uint32(FormatVersionMajor)); err != nil {
		return err
	}
	if err := c.WriteNBitUint(4, uint32(FormatVersionMinor)); err != nil {
		return err
	}
	return c.Align()
}

// Read consumes the fixed prelude and validates it matches the one this
// codec emits; any other bit pattern means the peer negotiated EXI
// options this codec does not support (out of scope per spec.md §1).
func Read(c *bitio.Cursor) error {
	distinguishing, err := c.ReadBit()
	if err != nil {
		return err
	}
	major, err := c.ReadNBitUint(2)
	if err != nil {
		return err
	}
	minor, err := c.ReadNBitUint(4)
	if err != nil {
		return err
	}
	if err := c.Align(); err != nil {
		return err
	}
	if distinguishing != DistinguishingBitValue || major != uint32(FormatVersionMajor) || minor != uint32(FormatVersionMinor) {
		return exierr.New(exierr.NotImplementedYet, "EXI header carries options/version this codec does not support (distinguishing=%d major=%d minor=%d)", distinguishing, major, minor)
	}
	return nil
}
