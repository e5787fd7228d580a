package memory_test

import (
	"testing"

	"github.com/vectrexcore/vectrexcore/memory"
)

func TestUnmappedReadsReturnZero(t *testing.T) {
	bus := memory.NewBus()
	v, err := bus.Read(0x9000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0 {
		t.Fatalf("expected 0 from unmapped address, got %#02x", v)
	}
}

func TestUnmappedWritesAreDiscarded(t *testing.T) {
	bus := memory.NewBus()
	if err := bus.Write(0x9000, 0xff); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRAMMirroring(t *testing.T) {
	bus := memory.NewBus()
	ram := memory.NewRAM()
	if err := bus.Bind(memory.RAMOrigin, memory.RAMMemtop, ram, true); err != nil {
		t.Fatal(err)
	}

	if err := bus.Write(memory.RAMOrigin, 0x42); err != nil {
		t.Fatal(err)
	}

	mirrored := memory.RAMOrigin + memory.RAMSize
	v, err := bus.Read(mirrored)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x42 {
		t.Fatalf("expected mirrored RAM to read back 0x42, got %#02x", v)
	}
}

func TestROMWritesAreDiscarded(t *testing.T) {
	image := make([]byte, memory.BiosSize)
	image[0] = 0xAA
	rom, err := memory.NewBiosROM(image)
	if err != nil {
		t.Fatal(err)
	}

	bus := memory.NewBus()
	if err := bus.Bind(memory.BiosOrigin, memory.BiosMemtop, rom, false); err != nil {
		t.Fatal(err)
	}

	if err := bus.Write(memory.BiosOrigin, 0xFF); err != nil {
		t.Fatal(err)
	}

	v, err := bus.Read(memory.BiosOrigin)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0xAA {
		t.Fatalf("expected ROM write to be discarded, got %#02x", v)
	}
}

func TestOverlappingBindIsRejected(t *testing.T) {
	bus := memory.NewBus()
	ram := memory.NewRAM()
	if err := bus.Bind(0x1000, 0x1fff, ram, true); err != nil {
		t.Fatal(err)
	}
	if err := bus.Bind(0x1800, 0x27ff, ram, true); err == nil {
		t.Fatal("expected overlapping bind to fail")
	}
}

func TestBig16BitReadIsBigEndian(t *testing.T) {
	bus := memory.NewBus()
	ram := memory.NewRAM()
	if err := bus.Bind(memory.RAMOrigin, memory.RAMMemtop, ram, true); err != nil {
		t.Fatal(err)
	}

	if err := bus.Write(memory.RAMOrigin, 0x12); err != nil {
		t.Fatal(err)
	}
	if err := bus.Write(memory.RAMOrigin+1, 0x34); err != nil {
		t.Fatal(err)
	}

	v, err := bus.Read16(memory.RAMOrigin)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x1234 {
		t.Fatalf("expected big-endian 0x1234, got %#04x", v)
	}
}
