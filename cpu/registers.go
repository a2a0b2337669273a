package cpu

// Family identifies a register independently of the width it is viewed at.
type Family uint8

// General-purpose register families, in encoding order.
const (
	AX Family = iota
	CX
	DX
	BX
	SP
	BP
	SI
	DI
)

// Segment registers. They carry no width.
const (
	CS Family = iota + 8
	SS
	DS
	ES
	FS
	GS
)

var familyNames = [...]string{
	AX: "ax", CX: "cx", DX: "dx", BX: "bx",
	SP: "sp", BP: "bp", SI: "si", DI: "di",
	CS: "cs", SS: "ss", DS: "ds", ES: "es", FS: "fs", GS: "gs",
}

// String returns the conventional 16-bit name of the family.
func (f Family) String() string {
	if int(f) < len(familyNames) {
		return familyNames[f]
	}
	return "?"
}

// IsSegment returns true for CS, SS, DS, ES, FS and GS.
func (f Family) IsSegment() bool {
	return f >= CS && f <= GS
}

// IsGeneral returns true for the eight general-purpose families.
func (f Family) IsGeneral() bool {
	return f <= DI
}

// HasByteHalves returns true if the family has 8-bit low/high views (AX, CX, DX, BX).
func (f Family) HasByteHalves() bool {
	return f <= BX
}

// Width is the bit-size view of a register.
type Width uint8

const (
	// WidthNone is used by segment registers.
	WidthNone Width = iota
	// WidthLow8 is the low byte (al, cl, dl, bl).
	WidthLow8
	// WidthHigh8 is the high byte of the low word (ah, ch, dh, bh).
	WidthHigh8
	// Width16 is the low word (ax, sp, ...).
	Width16
	// Width32 is the low doubleword (eax, esp, ...).
	Width32
	// WidthFull is the full 64-bit register (rax, rsp, ...).
	WidthFull
)

// Bits returns the size of the view in bits, or 0 for WidthNone.
func (w Width) Bits() int {
	switch w {
	case WidthLow8, WidthHigh8:
		return 8
	case Width16:
		return 16
	case Width32:
		return 32
	case WidthFull:
		return 64
	default:
		return 0
	}
}

func (w Width) String() string {
	switch w {
	case WidthLow8:
		return "low8"
	case WidthHigh8:
		return "high8"
	case Width16:
		return "16"
	case Width32:
		return "32"
	case WidthFull:
		return "full"
	default:
		return "none"
	}
}

// Supports reports whether the family can be viewed at width w.
func (f Family) Supports(w Width) bool {
	switch {
	case f.IsSegment():
		return w == WidthNone
	case f.HasByteHalves():
		return w != WidthNone
	case f.IsGeneral():
		return w == Width16 || w == Width32 || w == WidthFull
	}
	return false
}
