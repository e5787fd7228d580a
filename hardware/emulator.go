// Package hardware assembles a CPU, a MemoryBus, a VIA, and a PSG into a
// complete Vectrex core, and drives them together frame by frame.
//
// Grounded on the teacher's hardware package (vcs.go's NewVCS/Reset/
// AttachCartridge shape, run.go's RunForFrameCount cadence) adapted from an
// always-on TIA/RIOT video-cycle loop to a CPU-cycle-budgeted one, since
// the Vectrex core has no discrete scanline clock to key off of.
package hardware

import (
	"github.com/vectrexcore/vectrexcore/cpu"
	"github.com/vectrexcore/vectrexcore/curated"
	"github.com/vectrexcore/vectrexcore/environment"
	"github.com/vectrexcore/vectrexcore/input"
	"github.com/vectrexcore/vectrexcore/logger"
	"github.com/vectrexcore/vectrexcore/memory"
	"github.com/vectrexcore/vectrexcore/psg"
	"github.com/vectrexcore/vectrexcore/via"
)

// Emulator is the complete Vectrex core: CPU, bus, VIA, and PSG wired
// together, plus the controller the host drives.
type Emulator struct {
	Env *environment.Environment

	CPU  *cpu.CPU
	Bus  *memory.Bus
	VIA  *via.Via
	PSG  *psg.Psg
	Ctrl *input.Controller

	bios       *memory.ROM
	cartridge  *memory.ROM
	ram        *memory.RAM

	cyclesCarry float64
}

// NewEmulator builds an Emulator from a loaded BIOS image and an optional
// cartridge image (nil if none is attached). label selects which
// environment.Environment preset the core reports itself under (regression
// runs, thumbnail generation, or ordinary play).
func NewEmulator(bios []byte, cartridge []byte, label environment.Label) (*Emulator, error) {
	biosROM, err := memory.NewBiosROM(bios)
	if err != nil {
		return nil, curated.Errorf("hardware: %v", err)
	}

	e := &Emulator{
		Env:  environment.NewEnvironment(label),
		Bus:  memory.NewBus(),
		PSG:  psg.NewPSG(),
		Ctrl: input.NewController(),
		ram:  memory.NewRAM(),
		bios: biosROM,
	}
	e.VIA = via.NewVia(e.PSG)
	e.PSG.SetInput(e.Ctrl)
	e.VIA.SetAnalogInput(e.Ctrl)
	e.CPU = cpu.NewCPU(e.Bus)

	if cartridge != nil {
		if err := e.AttachCartridge(cartridge); err != nil {
			return nil, err
		}
	} else if err := e.wireBus(); err != nil {
		return nil, err
	}

	if err := e.Reset(); err != nil {
		return nil, err
	}
	return e, nil
}

// wireBus (re-)binds every device onto the address space. Called once at
// construction and again whenever a cartridge is attached, since
// memory.Bus bindings are immutable once made.
func (e *Emulator) wireBus() error {
	e.Bus = memory.NewBus()
	e.CPU = cpu.NewCPU(e.Bus)

	if e.cartridge != nil {
		if err := e.Bus.Bind(memory.CartridgeOrigin, memory.CartridgeMemtop, e.cartridge, false); err != nil {
			return curated.Errorf("hardware: %v", err)
		}
	}
	if err := e.Bus.Bind(memory.RAMOrigin, memory.RAMMemtop, e.ram, true); err != nil {
		return curated.Errorf("hardware: %v", err)
	}
	if err := e.Bus.Bind(memory.ViaOrigin, memory.ViaMemtop, e.VIA, true); err != nil {
		return curated.Errorf("hardware: %v", err)
	}
	if err := e.Bus.Bind(memory.BiosOrigin, memory.BiosMemtop, e.bios, false); err != nil {
		return curated.Errorf("hardware: %v", err)
	}
	return nil
}

// AttachCartridge loads and binds a cartridge image, rebuilding the bus and
// resetting the core, matching the teacher's AttachCartridge->Reset idiom.
func (e *Emulator) AttachCartridge(image []byte) error {
	rom, err := memory.NewCartridgeROM(image)
	if err != nil {
		return curated.Errorf("hardware: %v", err)
	}
	e.cartridge = rom
	if err := e.wireBus(); err != nil {
		return err
	}
	return e.Reset()
}

// Reset reinitializes the CPU, VIA, and PSG, loading PC from the reset
// vector, as spec.md §3's reset invariant requires. RAM contents are left
// as they were.
func (e *Emulator) Reset() error {
	e.VIA.Reset()
	e.PSG.Reset()
	e.PSG.SetInput(e.Ctrl)
	e.VIA.SetAnalogInput(e.Ctrl)
	e.cyclesCarry = 0
	return e.CPU.Reset()
}

// FrameUpdate advances the core by dt seconds of wall-clock time, converting
// it to a CPU-cycle budget at the environment's clock rate, stepping the
// CPU/VIA/PSG together until that budget is spent. It returns the vector
// line segments and audio samples produced during the step.
func (e *Emulator) FrameUpdate(dt float64) ([]via.Line, []float32, error) {
	budget := dt*e.Env.CPUClockHz + e.cyclesCarry
	cycles := int(budget)
	e.cyclesCarry = budget - float64(cycles)

	spent := 0
	for spent < cycles {
		n := e.CPU.Step()
		if n <= 0 {
			n = 1
		}
		e.VIA.Update(n)
		e.PSG.Update(n)
		spent += n

		if err := e.CPU.Fault(); err != nil {
			return nil, nil, err
		}
		if err := e.VIA.Fault(); err != nil {
			return nil, nil, err
		}
	}

	logger.Logf(logger.Allow, "hardware", "frame_update: %d cycles, budget %.1f", spent, budget)

	return e.VIA.Lines(), e.PSG.DrainSamples(), nil
}
