package assembler_test

import (
	"errors"
	"testing"

	"github.com/Urethramancer/x86/assembler"
	"github.com/Urethramancer/x86/cpu"
)

func mustMemory(t *testing.T, input string) (assembler.Memory, string) {
	t.Helper()

	rest, op, err := assembler.ParseMemory(input)
	if err != nil {
		t.Fatalf("%q: unexpected error: %v", input, err)
	}
	mem, ok := op.Memory()
	if !ok {
		t.Fatalf("%q: not a memory operand", input)
	}
	return mem, rest
}

func TestMemoryParse(t *testing.T) {
	tests := []struct {
		input string
		mode  cpu.Mode
		size  assembler.OffsetSize
		value uint16
	}{
		{"[0x8000]", cpu.ModeDirect, assembler.Offset16, 0x8000},
		{"[bx + 0x1]", cpu.ModeBX, assembler.Offset8, 1},
		{"[bx + si + 0b10010]", cpu.ModeBXSI, assembler.Offset8, 18},
		{"[bx+si+1]", cpu.ModeBXSI, assembler.Offset8, 1},
		{"[bx+di+1]", cpu.ModeBXDI, assembler.Offset8, 1},
		{"[bp+si+1]", cpu.ModeBPSI, assembler.Offset8, 1},
		{"[bp+di+1]", cpu.ModeBPDI, assembler.Offset8, 1},
		{"[si+1]", cpu.ModeSI, assembler.Offset8, 1},
		{"[di+1]", cpu.ModeDI, assembler.Offset8, 1},
		{"[bp+1]", cpu.ModeBP, assembler.Offset8, 1},
		{"[bx+1]", cpu.ModeBX, assembler.Offset8, 1},
		{"[1]", cpu.ModeDirect, assembler.Offset8, 1},
		{"  [ bp + di + 0x100 ]  ", cpu.ModeBPDI, assembler.Offset16, 0x100},
		{"[65535]", cpu.ModeDirect, assembler.Offset16, 65535},
		{"[256]", cpu.ModeDirect, assembler.Offset16, 256},
		{"[255]", cpu.ModeDirect, assembler.Offset8, 255},
		{"[bx+si]", cpu.ModeBXSI, assembler.OffsetNone, 0},
		{"[ bp ]", cpu.ModeBP, assembler.OffsetNone, 0},
	}
	for _, tt := range tests {
		mem, rest := mustMemory(t, tt.input)
		if mem.Mode() != tt.mode {
			t.Errorf("%q: mode %s, want %s", tt.input, mem.Mode(), tt.mode)
		}
		if mem.Offset().Size() != tt.size || mem.Offset().Value() != tt.value {
			t.Errorf("%q: offset %d/%d, want %d/%d", tt.input,
				mem.Offset().Size(), mem.Offset().Value(), tt.size, tt.value)
		}
		if rest != "" {
			t.Errorf("%q: remainder %q", tt.input, rest)
		}
	}
}

func TestMemoryRemainder(t *testing.T) {
	mem, rest := mustMemory(t, "[bx+2] , ax")
	if mem.Mode() != cpu.ModeBX {
		t.Errorf("mode %s", mem.Mode())
	}
	if rest != ", ax" {
		t.Errorf("remainder %q", rest)
	}
}

func TestMemoryErrors(t *testing.T) {
	tests := []struct {
		input  string
		kind   error
		reason string
	}{
		{"[cx + si + 1]", assembler.ErrVerify, "reg1 must be bx or bp"},
		{"[si + di + 1]", assembler.ErrVerify, "reg1 must be bx or bp"},
		{"[bx + ax + 1]", assembler.ErrVerify, "reg2 must be si or di"},
		{"[bp + bx]", assembler.ErrVerify, "reg2 must be si or di"},
		{"[ebx + esi + 1]", assembler.ErrVerify, "reg1 must be bx or bp"},
		{"[ax + 1]", assembler.ErrVerify, "reg1 must be bx/bp/si/di"},
		{"[ebx + 1]", assembler.ErrVerify, "reg1 must be bx/bp/si/di"},
		{"[bl + 1]", assembler.ErrVerify, "reg1 must be bx/bp/si/di"},
		{"[ds + 1]", assembler.ErrVerify, "reg1 must be bx/bp/si/di"},
		{"[cx]", assembler.ErrVerify, "reg1 must be bx/bp/si/di"},
		// Registers are checked before the offset.
		{"[cx + si + 70000]", assembler.ErrVerify, "reg1 must be bx or bp"},
		{"[65536]", assembler.ErrTooLarge, ""},
		{"[bx + 65536]", assembler.ErrTooLarge, ""},
		{"[bx + si + 0x10000]", assembler.ErrTooLarge, ""},
		{"bx + 1", assembler.ErrTag, "expected '['"},
		{"", assembler.ErrTag, "expected '['"},
		{"[bx + si + 1", assembler.ErrTag, "expected ']'"},
		{"[bx + si + 1 + 2]", assembler.ErrTag, "expected ']'"},
		{"[zz]", assembler.ErrMalformed, ""},
		{"[]", assembler.ErrMalformed, ""},
		{"[bx + si + zz]", assembler.ErrMalformed, ""},
	}
	for _, tt := range tests {
		rest, _, err := assembler.ParseMemory(tt.input)
		if !errors.Is(err, tt.kind) {
			t.Errorf("%q: expected %v, got %v", tt.input, tt.kind, err)
			continue
		}
		if rest != tt.input {
			t.Errorf("%q: consumed input on failure, remainder %q", tt.input, rest)
		}
		if tt.reason == "" {
			continue
		}
		var pe *assembler.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%q: %v is not a ParseError", tt.input, err)
			continue
		}
		if pe.Reason != tt.reason {
			t.Errorf("%q: reason %q, want %q", tt.input, pe.Reason, tt.reason)
		}
	}
}

func TestMemoryRegisters(t *testing.T) {
	mem, _ := mustMemory(t, "[bp+di+4]")
	regs := mem.Registers()
	if len(regs) != 2 || regs[0].String() != "bp" || regs[1].String() != "di" {
		t.Errorf("got %v", regs)
	}

	mem, _ = mustMemory(t, "[4]")
	if regs := mem.Registers(); len(regs) != 0 {
		t.Errorf("direct addressing reported registers %v", regs)
	}
}

// Rendering a memory operand and parsing it again gives the same value.
func TestMemoryRoundTrip(t *testing.T) {
	inputs := []string{
		"[bx+si+0b10010]", "[bx+di+300]", "[bp+si]", "[bp+di+0xff]",
		"[si+0]", "[di+65535]", "[bp+1]", "[bx]", "[0x8000]", "[7]",
	}
	for _, input := range inputs {
		mem, _ := mustMemory(t, input)
		again, rest := mustMemory(t, mem.String())
		if again != mem || rest != "" {
			t.Errorf("%q: %q parsed back as %v", input, mem.String(), again)
		}
	}
}

func TestNewMemory(t *testing.T) {
	if _, ok := assembler.NewMemory(cpu.ModeDirect, assembler.NoOffset); ok {
		t.Errorf("direct addressing without displacement accepted")
	}
	if _, ok := assembler.NewMemory(cpu.Mode(42), assembler.NoOffset); ok {
		t.Errorf("undefined mode accepted")
	}

	off, _ := assembler.NewOffset(18)
	built, ok := assembler.NewMemory(cpu.ModeBXSI, off)
	if !ok {
		t.Fatalf("NewMemory(BXSI) failed")
	}
	parsed, _ := mustMemory(t, "[bx + si + 0b10010]")
	if built != parsed {
		t.Errorf("built %v, parsed %v", built, parsed)
	}
}
