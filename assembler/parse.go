package assembler

import (
	"fmt"
	"strings"
)

// ParseRegister reads a register, skipping spaces around it.
// It returns the unconsumed input and a register operand.
func ParseRegister(input string) (string, Operand, error) {
	rest, reg, err := parseRegister(input)
	if err != nil {
		return input, Operand{}, err
	}
	return rest, RegisterOperand(reg), nil
}

// ParseMemory reads a bracketed memory reference such as "[bx + si + 4]".
// It returns the unconsumed input and a memory operand.
func ParseMemory(input string) (string, Operand, error) {
	rest, mem, err := parseMemory(input)
	if err != nil {
		return input, Operand{}, err
	}
	return rest, MemoryOperand(mem), nil
}

// ParseImmediate reads a numeric literal, skipping spaces around it.
// It returns the unconsumed input and an immediate operand.
func ParseImmediate(input string) (string, Operand, error) {
	rest, v, err := parseImmediate(input)
	if err != nil {
		return input, Operand{}, err
	}
	return rest, ImmediateOperand(Immediate(v)), nil
}

// ParseOperand converts a complete operand string into an Operand.
// It acts as a dispatcher, trying register, memory and immediate forms in order.
func ParseOperand(s string) (Operand, error) {
	if op, ok, err := tryParseRegister(s); ok || err != nil {
		return op, err
	}
	if op, ok, err := tryParseMemory(s); ok || err != nil {
		return op, err
	}
	if op, ok, err := tryParseImmediate(s); ok || err != nil {
		return op, err
	}
	return Operand{}, newError(ErrTag, "unknown operand format", strings.TrimSpace(s))
}

// ParseOperands parses a comma separated operand list like "ax, [bx+si+2]".
func ParseOperands(s string) ([]Operand, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var operands []Operand
	for i, part := range splitOperands(s) {
		op, err := ParseOperand(part)
		if err != nil {
			return nil, fmt.Errorf("operand %d: %w", i+1, err)
		}
		operands = append(operands, op)
	}
	return operands, nil
}

// --- Helper Functions for the dispatcher ---

// tryParseRegister accepts only a register spanning the whole input.
func tryParseRegister(s string) (Operand, bool, error) {
	rest, op, err := ParseRegister(s)
	if err != nil || rest != "" {
		return Operand{}, false, nil
	}
	return op, true, nil
}

// tryParseMemory handles anything starting with '['.
func tryParseMemory(s string) (Operand, bool, error) {
	if !strings.HasPrefix(skipSpace(s), "[") {
		return Operand{}, false, nil
	}
	rest, op, err := ParseMemory(s)
	if err != nil {
		return Operand{}, true, err
	}
	if rest != "" {
		return Operand{}, true, newError(ErrTag, "unexpected text after operand", rest)
	}
	return op, true, nil
}

// tryParseImmediate handles anything starting with a digit.
func tryParseImmediate(s string) (Operand, bool, error) {
	t := skipSpace(s)
	if t == "" || !isDigit(t[0], 10) {
		return Operand{}, false, nil
	}
	rest, op, err := ParseImmediate(s)
	if err != nil {
		return Operand{}, true, err
	}
	if rest != "" {
		return Operand{}, true, newError(ErrTag, "unexpected text after operand", rest)
	}
	return op, true, nil
}

// parseRegister is register := ws alias ws.
func parseRegister(input string) (string, Register, error) {
	rest, reg, err := matchRegister(skipSpace(input))
	if err != nil {
		return input, Register{}, err
	}
	return skipSpace(rest), reg, nil
}

// parseImmediate is immediate := ws digits ws.
func parseImmediate(input string) (string, uint64, error) {
	rest, v, err := ParseNumber(skipSpace(input))
	if err != nil {
		return input, 0, err
	}
	return skipSpace(rest), v, nil
}

func skipSpace(s string) string {
	return strings.TrimLeft(s, " \t")
}

// splitOperands splits an operand string by commas, but ignores commas inside brackets.
func splitOperands(s string) []string {
	var result []string
	depth := 0
	last := 0
	for i, r := range s {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				result = append(result, strings.TrimSpace(s[last:i]))
				last = i + 1
			}
		}
	}
	result = append(result, strings.TrimSpace(s[last:]))
	return result
}
