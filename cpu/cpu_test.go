package cpu_test

import (
	"testing"

	"github.com/vectrexcore/vectrexcore/cpu"
)

// flatMemory is a 64KiB RAM used only to exercise the CPU in isolation,
// without needing the full memory.Bus device-binding machinery.
type flatMemory struct {
	data [65536]uint8
}

func (m *flatMemory) Read(addr uint16) (uint8, error)       { return m.data[addr], nil }
func (m *flatMemory) Write(addr uint16, v uint8) error       { m.data[addr] = v; return nil }
func (m *flatMemory) load(addr uint16, bytes ...uint8)       { copy(m.data[addr:], bytes) }
func (m *flatMemory) setResetVector(addr uint16)             { m.load(0xfffe, uint8(addr>>8), uint8(addr)) }

func newTestCPU(program ...uint8) (*cpu.CPU, *flatMemory) {
	mem := &flatMemory{}
	mem.setResetVector(0x0200)
	mem.load(0x0200, program...)
	c := cpu.NewCPU(mem)
	if err := c.Reset(); err != nil {
		panic(err)
	}
	return c, mem
}

func TestResetLoadsPCFromVector(t *testing.T) {
	c, _ := newTestCPU()
	if c.PC.Value() != 0x0200 {
		t.Fatalf("expected PC 0x0200 after reset, got %#04x", c.PC.Value())
	}
}

func TestResetSetsInterruptMasks(t *testing.T) {
	c, _ := newTestCPU()
	if !c.CC.IRQMask || !c.CC.FIRQMask {
		t.Fatalf("expected IRQMask and FIRQMask set after reset, got %+v", c.CC)
	}
	if c.A.Value() != 0 || c.B.Value() != 0 || c.X.Value() != 0 {
		t.Fatalf("expected other registers zeroed after reset")
	}
}

func TestLDAImmediateSetsRegisterAndFlags(t *testing.T) {
	c, _ := newTestCPU(0x86, 0x00) // LDA #0
	c.Step()
	if c.A.Value() != 0 {
		t.Fatalf("expected A=0, got %#02x", c.A.Value())
	}
	if !c.CC.Zero {
		t.Fatal("expected Z flag set")
	}
}

func TestSTADirectWritesMemory(t *testing.T) {
	c, mem := newTestCPU(0x86, 0x42, 0x97, 0x80) // LDA #$42; STA <$80
	c.Step()
	c.Step()
	if v, _ := mem.Read(0x0080); v != 0x42 {
		t.Fatalf("expected memory at $0080 to be 0x42, got %#02x", v)
	}
}

func TestADDASetsCarryOnOverflow(t *testing.T) {
	c, _ := newTestCPU(0x86, 0xff, 0x8b, 0x01) // LDA #$ff; ADDA #$01
	c.Step()
	c.Step()
	if c.A.Value() != 0 {
		t.Fatalf("expected wraparound to 0, got %#02x", c.A.Value())
	}
	if !c.CC.Carry {
		t.Fatal("expected carry flag set")
	}
	if !c.CC.Zero {
		t.Fatal("expected zero flag set")
	}
}

func TestBranchTaken(t *testing.T) {
	c, _ := newTestCPU(0x86, 0x00, 0x27, 0x02, 0x86, 0xff, 0x86, 0x11) // LDA#0; BEQ +2; LDA#$ff; LDA#$11
	c.Step() // LDA #0, sets Z
	c.Step() // BEQ taken, skip the LDA #$ff
	c.Step() // LDA #$11
	if c.A.Value() != 0x11 {
		t.Fatalf("expected branch to skip to LDA #$11, got A=%#02x", c.A.Value())
	}
}

func TestJSRThenRTSRestoresPC(t *testing.T) {
	// at $0200: JSR <$10; NOP
	// at $0010: RTS
	c, mem := newTestCPU(0x9d, 0x10, 0x12) // JSR <$10 (direct page 0); NOP
	mem.load(0x0010, 0x39)                 // RTS, placed on the direct page
	c.Step()                               // JSR
	if c.PC.Value() != 0x0010 {
		t.Fatalf("expected PC at subroutine, got %#04x", c.PC.Value())
	}
	c.Step() // RTS
	if c.PC.Value() != 0x0202 {
		t.Fatalf("expected PC restored to 0x0202 after RTS, got %#04x", c.PC.Value())
	}
}

func TestPSHSPULSRoundTrip(t *testing.T) {
	c, _ := newTestCPU(
		0x86, 0x7a, // LDA #$7a
		0x34, 0x02, // PSHS A
		0x86, 0x00, // LDA #0 (clobber A)
		0x35, 0x02, // PULS A
	)
	c.Step() // LDA #$7a
	c.Step() // PSHS A
	c.Step() // LDA #0
	if c.A.Value() != 0 {
		t.Fatal("expected A clobbered to 0")
	}
	c.Step() // PULS A
	if c.A.Value() != 0x7a {
		t.Fatalf("expected A restored to 0x7a, got %#02x", c.A.Value())
	}
}

func TestEXGMismatchedWidthFaults(t *testing.T) {
	c, _ := newTestCPU(0x1e, 0x18) // EXG X(16),A(8) -- high nibble 0x1 (X), low nibble 0x8 (A)
	c.Step()
	if err := c.Fault(); err == nil {
		t.Fatal("expected a fault for mismatched-width EXG")
	}
}

func TestPSHSCyclesCountEachRegister(t *testing.T) {
	// PSHS A,X,CC (postbyte bits 0x01|0x02|0x10 = 0x13): 3 registers moved,
	// one 8-bit (A), one 16-bit (X), one 8-bit (CC) -- 1 cycle each
	// regardless of width, per the original source's NumBitsSet accounting.
	c, _ := newTestCPU(0x34, 0x13)
	if got := c.Step(); got != 5+3 {
		t.Fatalf("expected 5+3=8 cycles for PSHS with 3 registers, got %d", got)
	}
}

func TestTakenBranchCostsOneMoreCycleThanNotTaken(t *testing.T) {
	c, _ := newTestCPU(0x27, 0x02) // BEQ +2 (CC.Zero starts false, so not taken)
	if got := c.Step(); got != 3 {
		t.Fatalf("expected 3 cycles for a not-taken short branch, got %d", got)
	}

	c, _ = newTestCPU(0x86, 0x00, 0x27, 0x02) // LDA #0 (sets Zero); BEQ +2
	c.Step()
	if got := c.Step(); got != 4 {
		t.Fatalf("expected 4 cycles for a taken short branch, got %d", got)
	}
}

func TestLBRAIsFixedCostRegardlessOfTakenBonus(t *testing.T) {
	c, _ := newTestCPU(0x16, 0x00, 0x00) // LBRA +0
	if got := c.Step(); got != 5 {
		t.Fatalf("expected LBRA to cost a fixed 5 cycles, got %d", got)
	}
}

func TestTFRCopiesRegister(t *testing.T) {
	c, _ := newTestCPU(
		0x8e, 0x12, 0x34, // LDX #$1234
		0x1f, 0x12, // TFR X,Y (nibble hi=0x1 X, nibble lo=0x2 Y)
	)
	c.Step()
	c.Step()
	if c.Y.Value() != 0x1234 {
		t.Fatalf("expected Y=0x1234 after TFR X,Y, got %#04x", c.Y.Value())
	}
}

func TestIndexedPostIncrement(t *testing.T) {
	c, mem := newTestCPU(
		0x8e, 0x03, 0x00, // LDX #$0300
		0xa6, 0x80, // LDA ,X+
	)
	mem.load(0x0300, 0x99)
	c.Step() // LDX
	c.Step() // LDA ,X+
	if c.A.Value() != 0x99 {
		t.Fatalf("expected A=0x99, got %#02x", c.A.Value())
	}
	if c.X.Value() != 0x0301 {
		t.Fatalf("expected X post-incremented to 0x0301, got %#04x", c.X.Value())
	}
}

func TestCLRClearsFlagsAndMemory(t *testing.T) {
	c, mem := newTestCPU(0x0f, 0x80) // CLR <$80
	mem.load(0x0080, 0xff)
	c.Step()
	if v, _ := mem.Read(0x0080); v != 0 {
		t.Fatalf("expected memory cleared, got %#02x", v)
	}
	if !c.CC.Zero || c.CC.Negative || c.CC.Carry || c.CC.Overflow {
		t.Fatal("expected only Z set after CLR")
	}
}
