package assembler

import (
	"strings"

	"github.com/Urethramancer/x86/cpu"
)

// Register is a general-purpose register viewed at a width, or a segment register.
type Register struct {
	family cpu.Family
	width  cpu.Width
}

// GPR returns a general-purpose register at the given width.
// The second result is false if the family has no such view.
func GPR(f cpu.Family, w cpu.Width) (Register, bool) {
	if !f.IsGeneral() || !f.Supports(w) {
		return Register{}, false
	}
	return Register{family: f, width: w}, true
}

// SegmentRegister returns one of CS, SS, DS, ES, FS or GS.
func SegmentRegister(f cpu.Family) (Register, bool) {
	if !f.IsSegment() {
		return Register{}, false
	}
	return Register{family: f, width: cpu.WidthNone}, true
}

// Family returns the register family.
func (r Register) Family() cpu.Family {
	return r.family
}

// Width returns the view width. Segment registers return cpu.WidthNone.
func (r Register) Width() cpu.Width {
	return r.width
}

// IsSegment returns true for segment registers.
func (r Register) IsSegment() bool {
	return r.family.IsSegment()
}

// is16 returns true if r is the 16-bit view of f.
func (r Register) is16(f cpu.Family) bool {
	return r.family == f && r.width == cpu.Width16
}

// String returns the canonical alias of the register.
func (r Register) String() string {
	for _, a := range aliasTable {
		if a.Family == r.family && a.Width == r.width {
			return a.Text
		}
	}
	return "?"
}

// Alias is one spelling of a register.
type Alias struct {
	Text   string
	Family cpu.Family
	Width  cpu.Width
}

type spelling struct {
	text  string
	width cpu.Width
}

// Widest first. No alias may be a prefix of a later alias in its family.
var families = []struct {
	family  cpu.Family
	aliases []spelling
}{
	{cpu.AX, []spelling{{"rax", cpu.WidthFull}, {"eax", cpu.Width32}, {"ax", cpu.Width16}, {"ah", cpu.WidthHigh8}, {"al", cpu.WidthLow8}}},
	{cpu.CX, []spelling{{"rcx", cpu.WidthFull}, {"ecx", cpu.Width32}, {"cx", cpu.Width16}, {"ch", cpu.WidthHigh8}, {"cl", cpu.WidthLow8}}},
	{cpu.DX, []spelling{{"rdx", cpu.WidthFull}, {"edx", cpu.Width32}, {"dx", cpu.Width16}, {"dh", cpu.WidthHigh8}, {"dl", cpu.WidthLow8}}},
	{cpu.BX, []spelling{{"rbx", cpu.WidthFull}, {"ebx", cpu.Width32}, {"bx", cpu.Width16}, {"bh", cpu.WidthHigh8}, {"bl", cpu.WidthLow8}}},
	{cpu.SP, []spelling{{"rsp", cpu.WidthFull}, {"esp", cpu.Width32}, {"sp", cpu.Width16}}},
	{cpu.BP, []spelling{{"rbp", cpu.WidthFull}, {"ebp", cpu.Width32}, {"bp", cpu.Width16}}},
	{cpu.SI, []spelling{{"rsi", cpu.WidthFull}, {"esi", cpu.Width32}, {"si", cpu.Width16}}},
	{cpu.DI, []spelling{{"rdi", cpu.WidthFull}, {"edi", cpu.Width32}, {"di", cpu.Width16}}},
}

// Tried only after every general-purpose family failed.
var segments = []struct {
	text   string
	family cpu.Family
}{
	{"ss", cpu.SS},
	{"cs", cpu.CS},
	{"ds", cpu.DS},
	{"es", cpu.ES},
	{"gs", cpu.GS},
	{"fs", cpu.FS},
}

// aliasTable is the flattened table in recognition order.
var aliasTable = buildAliasTable()

func buildAliasTable() []Alias {
	var list []Alias
	for _, f := range families {
		for _, a := range f.aliases {
			list = append(list, Alias{Text: a.text, Family: f.family, Width: a.width})
		}
	}
	for _, s := range segments {
		list = append(list, Alias{Text: s.text, Family: s.family, Width: cpu.WidthNone})
	}
	return list
}

// Aliases returns every register spelling in the order they are tried.
func Aliases() []Alias {
	return append([]Alias(nil), aliasTable...)
}

// LookupRegister resolves a complete register name.
func LookupRegister(name string) (Register, bool) {
	for _, a := range aliasTable {
		if a.Text == name {
			return Register{family: a.Family, width: a.Width}, true
		}
	}
	return Register{}, false
}

// matchRegister consumes the first register alias that prefixes input.
// Nothing is consumed on failure.
func matchRegister(input string) (string, Register, error) {
	for _, f := range families {
		for _, a := range f.aliases {
			if strings.HasPrefix(input, a.text) {
				return input[len(a.text):], Register{family: f.family, width: a.width}, nil
			}
		}
	}
	for _, s := range segments {
		if strings.HasPrefix(input, s.text) {
			return input[len(s.text):], Register{family: s.family, width: cpu.WidthNone}, nil
		}
	}
	return input, Register{}, newError(ErrTag, "expected register", input)
}
