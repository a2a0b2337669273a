package assembler

import (
	"fmt"
	"math"
)

// OffsetSize is the width chosen for a displacement.
type OffsetSize uint8

const (
	// OffsetNone means no displacement.
	OffsetNone OffsetSize = iota
	// Offset8 is an 8-bit displacement.
	Offset8
	// Offset16 is a 16-bit displacement.
	Offset16
)

// Offset is the displacement of a memory operand, stored at the smallest
// size that holds it.
type Offset struct {
	size  OffsetSize
	value uint16
}

// NoOffset is the absent displacement.
var NoOffset = Offset{}

// NewOffset narrows v to an 8-bit or 16-bit offset.
// Values above 65535 fail with ErrTooLarge.
func NewOffset(v uint64) (Offset, error) {
	return normalizeOffset(v, "")
}

func normalizeOffset(v uint64, input string) (Offset, error) {
	switch {
	case v > math.MaxUint16:
		return Offset{}, newError(ErrTooLarge, fmt.Sprintf("%d does not fit in 16 bits", v), input)
	case v > math.MaxUint8:
		return Offset{size: Offset16, value: uint16(v)}, nil
	default:
		return Offset{size: Offset8, value: uint16(v)}, nil
	}
}

// Size returns the chosen width.
func (o Offset) Size() OffsetSize {
	return o.size
}

// Value returns the displacement, 0 when absent.
func (o Offset) Value() uint16 {
	return o.value
}

// U8 returns the value if this is an 8-bit offset.
func (o Offset) U8() (uint8, bool) {
	return uint8(o.value), o.size == Offset8
}

// U16 returns the value if this is a 16-bit offset.
func (o Offset) U16() (uint16, bool) {
	return o.value, o.size == Offset16
}

// IsNone returns true if there is no displacement.
func (o Offset) IsNone() bool {
	return o.size == OffsetNone
}

func (o Offset) String() string {
	switch o.size {
	case Offset8:
		return fmt.Sprintf("0x%02x", o.value)
	case Offset16:
		return fmt.Sprintf("0x%04x", o.value)
	default:
		return ""
	}
}
