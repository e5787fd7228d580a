package input_test

import (
	"testing"

	"github.com/vectrexcore/vectrexcore/input"
)

func TestButtonsActiveLow(t *testing.T) {
	c := input.NewController()
	c.SetButtons(input.Button1 | input.Button3)

	got := c.ButtonsActiveLow()
	want := ^uint8(0b0000_0101)
	if got != want {
		t.Fatalf("expected active-low mask %#08b, got %#08b", want, got)
	}
}

func TestAnalogDefaultsCentered(t *testing.T) {
	c := input.NewController()
	if c.AnalogX() != 128 || c.AnalogY() != 128 {
		t.Fatalf("expected centered stick, got (%d,%d)", c.AnalogX(), c.AnalogY())
	}
	c.SetAnalog(10, 250)
	if c.AnalogX() != 10 || c.AnalogY() != 250 {
		t.Fatal("expected SetAnalog to update both axes")
	}
}
