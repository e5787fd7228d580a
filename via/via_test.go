package via_test

import (
	"testing"

	"github.com/vectrexcore/vectrexcore/psg"
	"github.com/vectrexcore/vectrexcore/via"
)

func TestPortReadWriteRoundTrip(t *testing.T) {
	v := via.NewVia(nil)
	v.WriteDevice(1, 0x55) // Port A
	if got := v.ReadDevice(1); got != 0x55 {
		t.Fatalf("expected port A round-trip, got %#02x", got)
	}
}

func TestZeroResetsBeamAndClearsLines(t *testing.T) {
	v := via.NewVia(nil)

	// unblank, then drive port A through the MUX's Z-brightness selection
	// (MUX enabled, sel=muxSelZBright) so brightness goes nonzero and the
	// next integrator update actually buffers a line.
	v.WriteDevice(12, 0b111_0_111_0) // CA2=0b111 (no-op), CB2=0b111 (unblank)
	v.WriteDevice(1, 200)            // port A -> brightness, once MUX selects it
	v.WriteDevice(0, 0b0000_0100)    // port B: MUX enabled, sel=Z-bright(2), /RAMP active (bit7=0)

	// Lines() drains its buffer, so confirm the setup actually buffers a
	// line before relying on that same mechanism to prove /ZERO clears one.
	if lines := v.Lines(); len(lines) == 0 {
		t.Fatal("expected a line to be buffered once brightness is nonzero")
	}

	// brightness is still latched from the write above, so this repeats the
	// same update and buffers another line, which /ZERO must then discard.
	v.WriteDevice(0, 0b0000_0100)

	// now assert /ZERO: CA2 = 0b110
	v.WriteDevice(12, 0b111_0_110_0)
	if lines := v.Lines(); len(lines) != 0 {
		t.Fatalf("expected /ZERO to clear buffered lines, got %d", len(lines))
	}
}

func TestAuxControlRejectsNonOneShot(t *testing.T) {
	v := via.NewVia(nil)
	v.WriteDevice(11, 0b0110_0000) // timer mode bits set: not one-shot
	if err := v.Fault(); err == nil {
		t.Fatal("expected a fault for non-one-shot auxiliary control")
	}
}

func TestTimer1FiresAfterLatchedPeriod(t *testing.T) {
	v := via.NewVia(nil)
	v.WriteDevice(4, 0x02) // Timer1 low
	v.WriteDevice(5, 0x00) // Timer1 high, arms with counter=2

	v.Update(1)
	if v.ReadDevice(13)&(1<<6) != 0 {
		t.Fatal("interrupt flag set before timer expired")
	}
	v.Update(2)
	if v.ReadDevice(13)&(1<<6) == 0 {
		t.Fatal("expected timer1 interrupt flag bit 6 to be set after expiry")
	}
}

type fakeAnalog struct{ x, y uint8 }

func (f fakeAnalog) AnalogX() uint8 { return f.x }
func (f fakeAnalog) AnalogY() uint8 { return f.y }

func TestPortAReadsAnalogWhenConfiguredAsInput(t *testing.T) {
	v := via.NewVia(nil)
	v.SetAnalogInput(fakeAnalog{x: 0x40, y: 0xc0})

	// dataDirA left at its zero value: Port A configured entirely as input.
	// MUX select bits default to muxSelYVelocity (0), so Port A should read
	// back the Y axis; selecting any other value should read X.
	if got := v.ReadDevice(1); got != 0xc0 {
		t.Fatalf("expected Port A to read AnalogY() when MUX selects Y velocity, got %#02x", got)
	}

	v.WriteDevice(0, 1<<1) // port B: MUX sel=XY-offset (1), not Y-velocity
	if got := v.ReadDevice(1); got != 0x40 {
		t.Fatalf("expected Port A to read AnalogX() once MUX selects something other than Y, got %#02x", got)
	}
}

func TestPortBDrivesPsgControlLines(t *testing.T) {
	sound := psg.NewPSG()
	v := via.NewVia(sound)

	// latch address 0 on the PSG: BDIR=1 (bit3), BC1=1 (bit4)
	v.WriteDevice(1, 0x00)          // Port A -> DA = 0
	v.WriteDevice(0, (1<<3)|(1<<4)) // BDIR=1, BC1=1 -> LatchAddress

	// write mode: BDIR=1, BC1=0
	v.WriteDevice(1, 0x80)
	v.WriteDevice(0, 1<<3)

	if got := sound.Read(psg.ChannelALow); got != 0x80 {
		t.Fatalf("expected VIA port writes to reach PSG register, got %#02x", got)
	}
}
