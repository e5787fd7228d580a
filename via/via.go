// Package via emulates the 6522 Versatile Interface Adapter as wired into
// the Vectrex: its two ports and one-shot timers, and the analog beam
// integrator and PSG bus-control lines that Port A/B drive.
//
// Grounded on original_source/src/Via.cpp for the register map and bit
// semantics, and structured after the teacher's hardware/riot package
// (registers.go + timer.go + a top-level component wired to the bus) for
// the Go idiom.
package via

import (
	"fmt"

	"github.com/vectrexcore/vectrexcore/curated"
	"github.com/vectrexcore/vectrexcore/psg"
)

// Via is the VIA component. It owns the analog beam integrator directly
// (spec.md §4.3 describes the integrator as VIA state, not a separate
// device) and drives an attached Psg's BDIR/BC1/DA lines from port writes.
type Via struct {
	portA, portB       uint8
	dataDirA, dataDirB uint8

	// timer1 backs both the Timer1 and Timer2 register pairs: the original
	// engine (original_source/src/Via.cpp) routes Timer2 writes into the same
	// one-shot counter object as Timer1, and this port does the same, so
	// there is no separate Timer2 counter.
	timer1 oneShotTimer

	shift         uint8
	auxCntl       uint8
	periphCntl    uint8
	interruptFlag uint8
	interruptEn   uint8

	integrator integrator

	psg    *psg.Psg
	analog AnalogSource

	// fault latches the first fatal configuration error seen since the
	// last Fault() call, so the hardware package can surface it once the
	// current instruction step completes rather than unwinding mid-instruction.
	fault error
}

// AnalogSource supplies the controller's joystick axis samples for Port A
// reads taken while Port A is configured as an input (the BIOS's usual way
// of polling stick position, once it has finished driving the DAC output
// the other direction).
type AnalogSource interface {
	AnalogX() uint8
	AnalogY() uint8
}

// NewVia returns a VIA with all registers cleared, wired to drive sound
// *driver*, which may be nil in configurations that don't exercise sound
// (e.g. isolated VIA tests).
func NewVia(driver *psg.Psg) *Via {
	return &Via{psg: driver}
}

// SetAnalogInput attaches the controller whose axis samples Port A reflects
// while Port A is configured as an input. A nil source (the default) reads
// back whatever was last written to the port, as on a VIA with nothing
// wired to Port A's input side.
func (v *Via) SetAnalogInput(src AnalogSource) { v.analog = src }

// Label implements memory.Device.
func (v *Via) Label() string { return "VIA" }

func (v Via) String() string {
	return fmt.Sprintf("VIA portA=%#02x portB=%#02x t1=%#04x IFR=%#02x IER=%#02x",
		v.portA, v.portB, v.timer1.counter, v.interruptFlag, v.interruptEn)
}

// Reset clears every register, as a hardware reset would.
func (v *Via) Reset() {
	psgRef := v.psg
	*v = Via{psg: psgRef}
}

// Lines returns the beam segments accumulated since the last call, for the
// caller (hardware.Emulator) to hand to a display sink once per frame.
func (v *Via) Lines() []Line {
	return v.integrator.drainLines()
}

// ReadDevice implements memory.Device.
func (v *Via) ReadDevice(addr uint16) uint8 {
	switch register(addr % numRegisters) {
	case regPortB:
		return v.portB
	case regPortA:
		// dataDirA all-zero means the BIOS has turned Port A around to read
		// back the joystick position it just requested via the MUX, rather
		// than driving the DAC output.
		if v.dataDirA == 0 && v.analog != nil {
			if (v.portB&portBMuxSelMask)>>1 == muxSelYVelocity {
				return v.analog.AnalogY()
			}
			return v.analog.AnalogX()
		}
		return v.portA
	case regDataDirB:
		return v.dataDirB
	case regDataDirA:
		return v.dataDirA
	case regTimer1Low:
		return v.timer1.counterLow()
	case regTimer1High:
		return v.timer1.counterHigh()
	case regTimer1LatchLo:
		return v.timer1.latchLow
	case regTimer1LatchHi:
		return v.timer1.latchHigh
	case regTimer2Low:
		return v.timer1.counterLow()
	case regTimer2High:
		return v.timer1.counterHigh()
	case regShift:
		return v.shift
	case regAuxCntl:
		return v.auxCntl
	case regPeriphCntl:
		return v.periphCntl
	case regInterruptFlag:
		return v.interruptFlag
	case regInterruptEn:
		return v.interruptEn
	}
	return 0
}

// WriteDevice implements memory.Device. It latches a curated error (read
// by the caller through Fault, see hardware.Emulator) only for the
// configurations spec.md §7.1 calls out as fatal; everything else is
// applied directly.
func (v *Via) WriteDevice(addr uint16, data uint8) {
	switch register(addr % numRegisters) {
	case regPortB:
		v.portB = data
		v.updateMux()
		v.updatePsgControlLines()
		v.integrator.update(v.portB, via6809FrameDelta)
	case regPortA:
		v.portA = data
		v.updateMux()
		if v.psg != nil {
			v.psg.WriteDA(data)
		}
	case regDataDirB:
		v.dataDirB = data
	case regDataDirA:
		v.dataDirA = data
	case regTimer1Low:
		v.timer1.SetCounterLow(data)
	case regTimer1High:
		v.timer1.SetCounterHigh(data)
	case regTimer1LatchLo:
		v.timer1.latchLow = data
	case regTimer1LatchHi:
		v.timer1.latchHigh = data
	case regTimer2Low:
		// original_source/src/Via.cpp's Timer2 writes route to the same
		// one-shot counter object as Timer1; there is no independent
		// Timer2 counter.
		v.timer1.SetCounterLow(data)
	case regTimer2High:
		v.timer1.SetCounterHigh(data)
	case regShift:
		v.shift = data
	case regAuxCntl:
		v.auxCntl = data
		v.latchFault(v.checkAuxControl())
	case regPeriphCntl:
		v.periphCntl = data
		v.latchFault(v.decodePeripheralControl())
	case regInterruptFlag:
		v.interruptFlag = data
	case regInterruptEn:
		v.interruptEn = data
	}
}

// via6809FrameDelta is the fixed per-update timestep the integrator
// advances by. The Vectrex's BIOS drives the VIA at a steady cadence tied
// to the CPU clock; spec.md §4.3 leaves the exact per-call dt unspecified
// beyond "per VIA update step", so Update's caller supplies cycles and this
// constant converts one integrator step (one Port B write) into seconds at
// the nominal 1.5MHz CPU clock.
const via6809FrameDelta = 1.0 / 1_500_000.0

func (v *Via) updateMux() {
	if v.portB&portBMuxEnableMask != 0 {
		v.integrator.velocity.X = float32(v.portA)
		return
	}
	switch (v.portB & portBMuxSelMask) >> 1 {
	case muxSelYVelocity:
		v.integrator.velocity.Y = float32(v.portA)
	case muxSelXYOffset:
		v.integrator.xyOffset = v.portA
	case muxSelZBright:
		v.integrator.brightness = v.portA
	case muxSelAudio:
		// routed to the PSG's audio input line; not modeled (spec.md §4.3)
	}
}

// updatePsgControlLines derives BDIR/BC1 from Port B bits 3 and 4 and
// forwards the transition to the attached PSG.
func (v *Via) updatePsgControlLines() {
	if v.psg == nil {
		return
	}
	bdir := v.portB&(1<<3) != 0
	bc1 := v.portB&(1<<4) != 0
	v.psg.SetControlLines(bdir, bc1)
}

func (v *Via) decodePeripheralControl() error {
	ca2 := (v.periphCntl & periphCA2Mask) >> periphCA2Shift
	switch ca2 {
	case ca2Zero:
		v.integrator.reset()
	case ca2ZeroOff:
		// no-op
	default:
		return curated.Errorf("via: CA2 value %#03b is not a supported /ZERO state", ca2)
	}

	cb2 := (v.periphCntl & periphCB2Mask) >> periphCB2Shift
	switch cb2 {
	case cb2Blank:
		v.integrator.blank = true
	case cb2Unblank:
		v.integrator.blank = false
	default:
		return curated.Errorf("via: CB2 value %#03b is not a supported /BLANK state", cb2)
	}
	return nil
}

// Update advances the VIA's timers by cycles CPU cycles and folds Timer1's
// expiry into the interrupt flag register.
func (v *Via) Update(cycles int) {
	v.timer1.Update(cycles)

	if v.timer1.InterruptEnabled() {
		v.interruptFlag |= interruptFlagTimer1
	}
}

// checkAuxControl validates that both timers remain in one-shot mode, per
// the fatal configuration spec.md §7.1 calls out.
func (v *Via) checkAuxControl() error {
	if v.auxCntl&auxCntlTimerModeMask != 0 {
		return curated.Errorf("via: auxiliary control %#08b selects an unsupported timer mode", v.auxCntl)
	}
	return nil
}

func (v *Via) latchFault(err error) {
	if err != nil && v.fault == nil {
		v.fault = err
	}
}

// Fault returns and clears the first fatal configuration error raised
// since the last call, for hardware.Emulator to check after every
// instruction step.
func (v *Via) Fault() error {
	err := v.fault
	v.fault = nil
	return err
}

// InterruptPending reports whether the VIA is currently asserting IRQ,
// i.e. any enabled interrupt source has its flag set.
func (v *Via) InterruptPending() bool {
	return v.interruptFlag&v.interruptEn != 0
}
