package assembler

import "fmt"

// Kind says which variant an Operand holds.
type Kind uint8

const (
	// KindNone is the zero Operand.
	KindNone Kind = iota
	// KindRegister is a register operand.
	KindRegister
	// KindMemory is a memory operand.
	KindMemory
	// KindImmediate is an immediate constant.
	KindImmediate
)

func (k Kind) String() string {
	switch k {
	case KindRegister:
		return "register"
	case KindMemory:
		return "memory"
	case KindImmediate:
		return "immediate"
	default:
		return "none"
	}
}

// Immediate is an unsigned constant. Its width is decided by whoever uses it.
type Immediate uint64

// Offset reinterprets the constant as a memory displacement.
func (i Immediate) Offset() (Offset, error) {
	return NewOffset(uint64(i))
}

func (i Immediate) String() string {
	return fmt.Sprintf("0x%x", uint64(i))
}

// Operand represents a parsed instruction operand: a register, a memory
// reference or an immediate. Only the field selected by kind is meaningful.
type Operand struct {
	kind Kind
	reg  Register
	mem  Memory
	imm  Immediate
}

// RegisterOperand wraps a register.
func RegisterOperand(r Register) Operand {
	return Operand{kind: KindRegister, reg: r}
}

// MemoryOperand wraps a memory reference.
func MemoryOperand(m Memory) Operand {
	return Operand{kind: KindMemory, mem: m}
}

// ImmediateOperand wraps a constant.
func ImmediateOperand(i Immediate) Operand {
	return Operand{kind: KindImmediate, imm: i}
}

// Kind returns the variant held by the operand.
func (o Operand) Kind() Kind {
	return o.kind
}

// IsRegister returns true if this operand is a register.
func (o Operand) IsRegister() bool {
	return o.kind == KindRegister
}

// IsMemory returns true if this operand is a memory reference.
func (o Operand) IsMemory() bool {
	return o.kind == KindMemory
}

// IsImmediate returns true if this operand is an immediate constant.
func (o Operand) IsImmediate() bool {
	return o.kind == KindImmediate
}

// Register returns the register if the operand is one.
func (o Operand) Register() (Register, bool) {
	return o.reg, o.kind == KindRegister
}

// Memory returns the memory reference if the operand is one.
func (o Operand) Memory() (Memory, bool) {
	return o.mem, o.kind == KindMemory
}

// Immediate returns the constant if the operand is one.
func (o Operand) Immediate() (Immediate, bool) {
	return o.imm, o.kind == KindImmediate
}

func (o Operand) String() string {
	switch o.kind {
	case KindRegister:
		return o.reg.String()
	case KindMemory:
		return o.mem.String()
	case KindImmediate:
		return o.imm.String()
	default:
		return ""
	}
}
