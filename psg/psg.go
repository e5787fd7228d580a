// Package psg emulates the AY-3-8912 Programmable Sound Generator: three
// square-wave tone channels, a shared /16 master divider, and a mixer that
// averages the enabled channels into a single mono sample.
//
// Grounded on original_source/src/Psg.cpp (register map, BDIR/BC1 mode
// state machine, master divider, mixer averaging-by-6) and structured after
// the teacher's hardware/tia/audio package: a Step-per-clock component that
// buffers samples for the caller to drain once per frame.
package psg

import "github.com/vectrexcore/vectrexcore/curated"

// Mode mirrors the AY-3-8912's BDIR/BC1-derived bus state.
type Mode int

const (
	Inactive Mode = iota
	Read
	Write
	LatchAddress
)

const masterDividerPeriod = 16

// Psg is the sound generator. It is driven by Update, which is passed the
// number of CPU cycles elapsed; the /16 master divider and mixer handle
// their own internal rates from there.
type Psg struct {
	registers [numRegisters]uint8
	tone      [3]toneGenerator

	latchedAddress uint8
	mode           Mode
	da             uint8 // data/address bus, as driven by the host or the PSG

	dividerCounter int

	// envelope output is always silent: spec.md leaves envelope generation
	// out of scope, and original_source/src/Psg.cpp's envelope unit is not
	// exercised by any Vectrex title's default sound driver. Register
	// writes are still accepted and read back unchanged.
	samples []float32

	buttons ButtonSource
}

// ButtonSource supplies the controller's active-low button state for the
// PSG's I/O port A, which the Vectrex wires directly to the four buttons.
type ButtonSource interface {
	ButtonsActiveLow() uint8
}

// SetInput attaches the controller that IOPortA reads reflect. A nil
// source (the default) reads back whatever was last written to the
// register, as on a PSG with its I/O port wired to nothing.
func (p *Psg) SetInput(src ButtonSource) { p.buttons = src }

// NewPSG returns a PSG with all registers cleared, as after a hardware reset.
func NewPSG() *Psg {
	return &Psg{}
}

// Label implements memory.Device.
func (p *Psg) Label() string { return "PSG" }

// SetControlLines updates the BDIR/BC1 bus-control state and performs
// whatever bus action that transition implies (latch the address currently
// on DA, write DA into the addressed register, or drive DA from the
// addressed register for a read). This mirrors the real chip's bus
// protocol, where BDIR/BC1 - not a dedicated chip-select - gate register
// access.
func (p *Psg) SetControlLines(bdir, bc1 bool) {
	next := modeFor(bdir, bc1)
	if next == p.mode {
		// staying in the same mode is idempotent (spec.md §4.4)
		return
	}
	p.mode = next

	switch next {
	case LatchAddress:
		p.latchedAddress = p.da & 0x0f
	case Write:
		p.writeRegister(Register(p.latchedAddress), p.da)
	case Read:
		p.da = p.readRegister(Register(p.latchedAddress))
	}
}

func modeFor(bdir, bc1 bool) Mode {
	switch {
	case bdir && bc1:
		return LatchAddress
	case bdir && !bc1:
		return Write
	case !bdir && bc1:
		return Read
	default:
		return Inactive
	}
}

// WriteDA drives a byte onto the data/address bus, as the host CPU would
// before asserting BDIR/BC1.
func (p *Psg) WriteDA(v uint8) { p.da = v }

// ReadDA returns the byte currently on the data/address bus.
func (p *Psg) ReadDA() uint8 { return p.da }

// Read and Write give direct register-file access, bypassing the BDIR/BC1
// protocol, for test setup and for devices that address the PSG like plain
// bus-mapped memory.
func (p *Psg) Read(reg Register) uint8           { return p.readRegister(reg) }
func (p *Psg) Write(reg Register, v uint8) error { return p.writeCheckedRegister(reg, v) }

func (p *Psg) readRegister(reg Register) uint8 {
	switch reg {
	case ChannelAHigh:
		return p.tone[0].PeriodHigh()
	case ChannelBHigh:
		return p.tone[1].PeriodHigh()
	case ChannelCHigh:
		return p.tone[2].PeriodHigh()
	case IOPortA:
		if p.buttons != nil {
			return p.buttons.ButtonsActiveLow()
		}
		return p.registers[reg]
	default:
		if int(reg) >= numRegisters {
			return 0
		}
		return p.registers[reg]
	}
}

func (p *Psg) writeRegister(reg Register, v uint8) {
	if int(reg) >= numRegisters {
		return
	}
	p.registers[reg] = v
	switch reg {
	case ChannelALow:
		p.tone[0].SetPeriodLow(v)
	case ChannelAHigh:
		p.tone[0].SetPeriodHigh(v)
	case ChannelBLow:
		p.tone[1].SetPeriodLow(v)
	case ChannelBHigh:
		p.tone[1].SetPeriodHigh(v)
	case ChannelCLow:
		p.tone[2].SetPeriodLow(v)
	case ChannelCHigh:
		p.tone[2].SetPeriodHigh(v)
	}
}

func (p *Psg) writeCheckedRegister(reg Register, v uint8) error {
	if int(reg) >= numRegisters {
		return curated.Errorf("psg: register index %d out of range", reg)
	}
	p.writeRegister(reg, v)
	return nil
}

// Reset clears every register and tone generator, as a hardware reset would.
func (p *Psg) Reset() {
	*p = Psg{}
}

// Update clocks the PSG by n CPU cycles. The master divider runs at
// CPU-clock/16; each time it fires, all three tone generators are clocked
// once and a new mixed sample is appended to the sample buffer.
func (p *Psg) Update(cycles int) {
	for i := 0; i < cycles; i++ {
		p.dividerCounter++
		if p.dividerCounter < masterDividerPeriod {
			continue
		}
		p.dividerCounter = 0

		p.tone[0].clock()
		p.tone[1].clock()
		p.tone[2].clock()

		p.samples = append(p.samples, p.mix())
	}
}

func (p *Psg) mix() float32 {
	mixer := p.registers[MixerControl]

	sum := 0
	if mixer&mixerToneADisable == 0 {
		sum += p.tone[0].value() * p.amplitude(AmplitudeA)
	}
	if mixer&mixerToneBDisable == 0 {
		sum += p.tone[1].value() * p.amplitude(AmplitudeB)
	}
	if mixer&mixerToneCDisable == 0 {
		sum += p.tone[2].value() * p.amplitude(AmplitudeC)
	}

	// Each channel's 4-bit fixed amplitude level is a volume ratio of
	// level/16, hence the /16. original_source/src/Psg.cpp's
	// SampleAllChannels then divides the three-channel sum by 6, not 3, for
	// headroom, which keeps every mixed sample within [0, 0.5).
	return float32(sum) / 16 / 6
}

func (p *Psg) amplitude(reg Register) int {
	v := p.registers[reg]
	if v&amplitudeEnvelopeBit != 0 {
		// envelope mode: output is wired to silence (see Psg doc comment).
		return 0
	}
	return int(v & 0x0f)
}

// DrainSamples returns and clears the samples accumulated since the last
// call, for the caller (hardware.Emulator) to hand to an audio sink once
// per frame.
func (p *Psg) DrainSamples() []float32 {
	out := p.samples
	p.samples = nil
	return out
}

// ReadDevice implements memory.Device for PSG variants wired directly onto
// the address bus rather than through VIA port A/B.
func (p *Psg) ReadDevice(addr uint16) uint8 {
	return p.ReadDA()
}

// WriteDevice implements memory.Device.
func (p *Psg) WriteDevice(addr uint16, data uint8) {
	p.WriteDA(data)
}
