package assembler

import (
	"strconv"
	"strings"
)

// ParseNumber reads an unsigned literal from the start of input: 0b for
// binary, 0x for hexadecimal, decimal otherwise. It returns the text after
// the digits. Whitespace is not skipped.
func ParseNumber(input string) (string, uint64, error) {
	base := 10
	digits := input
	switch {
	case strings.HasPrefix(input, "0b"):
		base = 2
		digits = input[2:]
	case strings.HasPrefix(input, "0x"):
		base = 16
		digits = input[2:]
	}

	n := 0
	for n < len(digits) && isDigit(digits[n], base) {
		n++
	}
	if n == 0 {
		return input, 0, newError(ErrMalformed, "expected base "+strconv.Itoa(base)+" digits", input)
	}

	val, err := strconv.ParseUint(digits[:n], base, 64)
	if err != nil {
		return input, 0, newError(ErrMalformed, "number out of range", input)
	}
	return digits[n:], val, nil
}

func isDigit(c byte, base int) bool {
	switch base {
	case 2:
		return c == '0' || c == '1'
	case 16:
		return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	default:
		return c >= '0' && c <= '9'
	}
}
