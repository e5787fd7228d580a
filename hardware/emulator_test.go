package hardware_test

import (
	"testing"

	"github.com/vectrexcore/vectrexcore/environment"
	"github.com/vectrexcore/vectrexcore/hardware"
	"github.com/vectrexcore/vectrexcore/memory"
)

func blankBIOS() []byte {
	return make([]byte, memory.BiosSize)
}

func TestNewEmulatorResetsPCFromVector(t *testing.T) {
	e, err := hardware.NewEmulator(blankBIOS(), nil, environment.Main)
	if err != nil {
		t.Fatal(err)
	}
	if e.CPU.PC.Value() != 0 {
		t.Fatalf("expected PC=0 from a zeroed reset vector, got %#04x", e.CPU.PC.Value())
	}
}

func TestFrameUpdateAdvancesWithoutFault(t *testing.T) {
	e, err := hardware.NewEmulator(blankBIOS(), nil, environment.Main)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := e.FrameUpdate(1.0 / 50); err != nil {
		t.Fatalf("unexpected fault during frame update: %v", err)
	}
}

func TestAttachCartridgeMapsImageAtOrigin(t *testing.T) {
	e, err := hardware.NewEmulator(blankBIOS(), nil, environment.Main)
	if err != nil {
		t.Fatal(err)
	}
	cart := make([]byte, 1024)
	cart[0] = 0xAA
	if err := e.AttachCartridge(cart); err != nil {
		t.Fatal(err)
	}
	v, err := e.Bus.Read(0x0000)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0xAA {
		t.Fatalf("expected cartridge byte at $0000, got %#02x", v)
	}
}

func TestRejectsMismatchedBIOSSize(t *testing.T) {
	_, err := hardware.NewEmulator(make([]byte, 100), nil, environment.Main)
	if err == nil {
		t.Fatal("expected an error for a malformed BIOS image")
	}
}
