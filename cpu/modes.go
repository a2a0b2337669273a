package cpu

// Mode is a 16-bit memory addressing mode. The first eight follow the
// order of the 3-bit r/m field.
type Mode uint8

const (
	// 000 — Base plus index: [bx+si+disp]
	ModeBXSI Mode = iota

	// 001 — Base plus index: [bx+di+disp]
	ModeBXDI

	// 010 — Base plus index: [bp+si+disp]
	ModeBPSI

	// 011 — Base plus index: [bp+di+disp]
	ModeBPDI

	// 100 — Index: [si+disp]
	ModeSI

	// 101 — Index: [di+disp]
	ModeDI

	// 110 — Base: [bp+disp]
	ModeBP

	// 111 — Base: [bx+disp]
	ModeBX

	// Direct addressing: [disp]
	ModeDirect
)

var modeRegisters = [...][]Family{
	ModeBXSI:   {BX, SI},
	ModeBXDI:   {BX, DI},
	ModeBPSI:   {BP, SI},
	ModeBPDI:   {BP, DI},
	ModeSI:     {SI},
	ModeDI:     {DI},
	ModeBP:     {BP},
	ModeBX:     {BX},
	ModeDirect: nil,
}

// Registers returns the 16-bit register families taking part in the mode,
// base first. Direct addressing returns nil.
func (m Mode) Registers() []Family {
	if int(m) >= len(modeRegisters) {
		return nil
	}
	regs := modeRegisters[m]
	if regs == nil {
		return nil
	}
	return append([]Family(nil), regs...)
}

// Valid returns true for the nine defined modes.
func (m Mode) Valid() bool {
	return m <= ModeDirect
}

// String returns the register part of the mode in assembler syntax, e.g. "bx+si".
func (m Mode) String() string {
	switch m {
	case ModeBXSI:
		return "bx+si"
	case ModeBXDI:
		return "bx+di"
	case ModeBPSI:
		return "bp+si"
	case ModeBPDI:
		return "bp+di"
	case ModeSI:
		return "si"
	case ModeDI:
		return "di"
	case ModeBP:
		return "bp"
	case ModeBX:
		return "bx"
	case ModeDirect:
		return "direct"
	default:
		return "?"
	}
}

// BaseIndexMode returns the mode for a base register (BX or BP) combined
// with an index register (SI or DI).
func BaseIndexMode(base, index Family) (Mode, bool) {
	switch {
	case base == BX && index == SI:
		return ModeBXSI, true
	case base == BX && index == DI:
		return ModeBXDI, true
	case base == BP && index == SI:
		return ModeBPSI, true
	case base == BP && index == DI:
		return ModeBPDI, true
	}
	return 0, false
}

// SingleMode returns the mode addressing through one of BX, BP, SI or DI.
func SingleMode(f Family) (Mode, bool) {
	switch f {
	case SI:
		return ModeSI, true
	case DI:
		return ModeDI, true
	case BP:
		return ModeBP, true
	case BX:
		return ModeBX, true
	}
	return 0, false
}
