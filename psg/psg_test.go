package psg_test

import (
	"testing"

	"github.com/vectrexcore/vectrexcore/input"
	"github.com/vectrexcore/vectrexcore/psg"
)

func TestWriteReadRoundTrip(t *testing.T) {
	p := psg.NewPSG()
	if err := p.Write(psg.ChannelALow, 0x80); err != nil {
		t.Fatal(err)
	}
	if got := p.Read(psg.ChannelALow); got != 0x80 {
		t.Fatalf("expected round-trip 0x80, got %#02x", got)
	}
}

func TestAmplitudeRoundTrip(t *testing.T) {
	p := psg.NewPSG()
	if err := p.Write(psg.AmplitudeA, 0x0f); err != nil {
		t.Fatal(err)
	}
	if got := p.Read(psg.AmplitudeA); got != 0x0f {
		t.Fatalf("expected 0x0f, got %#02x", got)
	}
}

func TestLatchThenWrite(t *testing.T) {
	p := psg.NewPSG()

	// latch address 0 (ChannelALow)
	p.WriteDA(0x00)
	p.SetControlLines(true, true)

	// write 0x80 into the latched register
	p.WriteDA(0x80)
	p.SetControlLines(true, false)

	p.SetControlLines(false, false) // return bus to inactive

	// latch address 0 again and read it back
	p.WriteDA(0x00)
	p.SetControlLines(true, true)
	p.SetControlLines(false, true)

	if got := p.ReadDA(); got != 0x80 {
		t.Fatalf("expected latched read-back of 0x80, got %#02x", got)
	}
}

func TestMixerDisabledChannelIsSilent(t *testing.T) {
	p := psg.NewPSG()
	_ = p.Write(psg.ChannelALow, 4)
	_ = p.Write(psg.ChannelAHigh, 0)
	_ = p.Write(psg.AmplitudeA, 0x0f)
	// disable all three tone channels
	_ = p.Write(psg.MixerControl, 0x3f)

	p.Update(64)
	for _, s := range p.DrainSamples() {
		if s != 0 {
			t.Fatalf("expected silence with all channels disabled, got %v", s)
		}
	}
}

func TestUpdateProducesSamplesAtDividerRate(t *testing.T) {
	p := psg.NewPSG()
	p.Update(16)
	samples := p.DrainSamples()
	if len(samples) != 1 {
		t.Fatalf("expected exactly 1 sample after 16 cycles, got %d", len(samples))
	}
}

func TestIOPortAReflectsController(t *testing.T) {
	p := psg.NewPSG()
	c := input.NewController()
	c.SetButtons(input.Button2)
	p.SetInput(c)

	if got := p.Read(psg.IOPortA); got != c.ButtonsActiveLow() {
		t.Fatalf("expected IOPortA to mirror controller state, got %#02x want %#02x", got, c.ButtonsActiveLow())
	}
}

func TestDrainSamplesClearsBuffer(t *testing.T) {
	p := psg.NewPSG()
	p.Update(32)
	if len(p.DrainSamples()) == 0 {
		t.Fatal("expected samples after Update")
	}
	if len(p.DrainSamples()) != 0 {
		t.Fatal("expected drain to clear the buffer")
	}
}
