package assembler

import (
	"strings"

	"github.com/Urethramancer/x86/cpu"
)

// Memory is a 16-bit memory operand: an addressing mode and its displacement.
type Memory struct {
	mode   cpu.Mode
	offset Offset
}

// NewMemory builds a memory operand. Direct addressing needs a displacement.
func NewMemory(mode cpu.Mode, off Offset) (Memory, bool) {
	if !mode.Valid() || (mode == cpu.ModeDirect && off.IsNone()) {
		return Memory{}, false
	}
	return Memory{mode: mode, offset: off}, true
}

// Mode returns the addressing mode.
func (m Memory) Mode() cpu.Mode {
	return m.mode
}

// Offset returns the displacement.
func (m Memory) Offset() Offset {
	return m.offset
}

// Registers returns the 16-bit registers used by the addressing mode.
func (m Memory) Registers() []Register {
	var list []Register
	for _, f := range m.mode.Registers() {
		list = append(list, Register{family: f, width: cpu.Width16})
	}
	return list
}

// String returns the operand in assembler syntax, e.g. "[bp+di+0x0100]".
func (m Memory) String() string {
	var b strings.Builder
	b.WriteByte('[')
	if m.mode != cpu.ModeDirect {
		b.WriteString(m.mode.String())
		if !m.offset.IsNone() {
			b.WriteByte('+')
		}
	}
	b.WriteString(m.offset.String())
	b.WriteByte(']')
	return b.String()
}

// memoryProductions are tried in order on the text after '['.
var memoryProductions = []func(string) (string, Memory, error){
	parseBaseIndex,
	parseBaseOffset,
	parseDirect,
}

// parseMemory handles ws "[" inner "]" ws. A production that does not fit
// the input gives way to the next one, but register and offset validation
// failures end the search.
func parseMemory(input string) (string, Memory, error) {
	s := skipSpace(input)
	if !strings.HasPrefix(s, "[") {
		return input, Memory{}, newError(ErrTag, "expected '['", s)
	}
	inner := s[1:]

	var err error
	for _, production := range memoryProductions {
		var rest string
		var mem Memory
		rest, mem, err = production(inner)
		if err == nil {
			if !strings.HasPrefix(rest, "]") {
				return input, Memory{}, newError(ErrTag, "expected ']'", rest)
			}
			return skipSpace(rest[1:]), mem, nil
		}
		if isTerminal(err) {
			return input, Memory{}, err
		}
	}
	return input, Memory{}, err
}

// parseBaseIndex handles reg + reg [+ imm].
func parseBaseIndex(s string) (string, Memory, error) {
	rest, base, err := parseRegister(s)
	if err != nil {
		return s, Memory{}, err
	}
	rest, ok := cutPlus(rest)
	if !ok {
		return s, Memory{}, newError(ErrTag, "expected '+'", rest)
	}
	rest, index, err := parseRegister(rest)
	if err != nil {
		return s, Memory{}, err
	}
	rest, imm, hasOffset, err := parseOffsetTail(rest)
	if err != nil {
		return s, Memory{}, err
	}

	if !base.is16(cpu.BX) && !base.is16(cpu.BP) {
		return s, Memory{}, newError(ErrVerify, "reg1 must be bx or bp", s)
	}
	if !index.is16(cpu.SI) && !index.is16(cpu.DI) {
		return s, Memory{}, newError(ErrVerify, "reg2 must be si or di", s)
	}
	mode, _ := cpu.BaseIndexMode(base.family, index.family)

	off, err := offsetFor(imm, hasOffset, s)
	if err != nil {
		return s, Memory{}, err
	}
	return rest, Memory{mode: mode, offset: off}, nil
}

// parseBaseOffset handles reg [+ imm].
func parseBaseOffset(s string) (string, Memory, error) {
	rest, reg, err := parseRegister(s)
	if err != nil {
		return s, Memory{}, err
	}
	rest, imm, hasOffset, err := parseOffsetTail(rest)
	if err != nil {
		return s, Memory{}, err
	}

	if reg.width != cpu.Width16 {
		return s, Memory{}, newError(ErrVerify, "reg1 must be bx/bp/si/di", s)
	}
	mode, ok := cpu.SingleMode(reg.family)
	if !ok {
		return s, Memory{}, newError(ErrVerify, "reg1 must be bx/bp/si/di", s)
	}

	off, err := offsetFor(imm, hasOffset, s)
	if err != nil {
		return s, Memory{}, err
	}
	return rest, Memory{mode: mode, offset: off}, nil
}

// parseDirect handles a bare displacement.
func parseDirect(s string) (string, Memory, error) {
	rest, imm, err := parseImmediate(s)
	if err != nil {
		return s, Memory{}, err
	}
	off, err := offsetFor(imm, true, s)
	if err != nil {
		return s, Memory{}, err
	}
	return rest, Memory{mode: cpu.ModeDirect, offset: off}, nil
}

// parseOffsetTail reads an optional "+ imm".
func parseOffsetTail(s string) (string, uint64, bool, error) {
	rest, ok := cutPlus(s)
	if !ok {
		return s, 0, false, nil
	}
	rest, imm, err := parseImmediate(rest)
	if err != nil {
		return s, 0, false, err
	}
	return rest, imm, true, nil
}

func offsetFor(imm uint64, present bool, input string) (Offset, error) {
	if !present {
		return NoOffset, nil
	}
	return normalizeOffset(imm, input)
}

func cutPlus(s string) (string, bool) {
	return strings.CutPrefix(s, "+")
}
