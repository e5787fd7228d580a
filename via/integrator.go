package via

// Vector2 is a single beam position, in the integrator's analog units.
type Vector2 struct {
	X, Y float32
}

// Line is one vector-drawn segment: the beam's position before and after
// one integrator update.
type Line struct {
	From, To Vector2
}

// integrator models the analog beam-position integrator driven by the
// VIA's DAC output (port A) and the Y-axis/offset/brightness values
// multiplexed onto it through port B.
//
// Grounded on the commented-out reference implementation in
// original_source/src/Via.cpp's Via::Update: the formula here is that code,
// ported from C++ rather than the additive-delta simplification spec.md's
// distillation describes (SPEC_FULL.md §6 records this as a resolved Open
// Question - the commented block is definitive for the original engine's
// intended beam math).
type integrator struct {
	velocity   Vector2 // raw 0-255 DAC samples latched for X and Y
	xyOffset   uint8
	brightness uint8
	blank      bool

	pos   Vector2
	lines []Line
}

const (
	integratorScale = 10.0 / 256.0
	integratorGain  = 10000.0
)

// enabled reports whether the integrator runs this update, gated by the
// VIA's /RAMP line (port B bit 7, active low).
func (in *integrator) enabled(portB uint8) bool {
	return portB&0b1000_0000 == 0
}

// update advances the beam by one integrator step of deltaTime seconds,
// following original_source/src/Via.cpp's target-position formula exactly.
func (in *integrator) update(portB uint8, deltaTime float32) {
	if !in.enabled(portB) {
		return
	}

	inputX := (float32(in.velocity.X) - 128) * integratorScale
	inputY := (float32(in.velocity.Y) - 128) * integratorScale
	offset := (float32(in.xyOffset) - 128) * integratorScale

	target := Vector2{
		X: -((integratorGain * (inputX - offset) * deltaTime) + in.pos.X),
		Y: -((integratorGain * (inputY - offset) * deltaTime) + in.pos.Y),
	}

	if !in.blank && in.brightness > 0 {
		in.lines = append(in.lines, Line{From: in.pos, To: target})
	}

	in.pos = target
}

// reset recenters the beam and discards any buffered line segments. Called
// when CA2 drives /ZERO low (PeriphCntl's CA2 field == 0b110).
func (in *integrator) reset() {
	in.pos = Vector2{}
	in.lines = in.lines[:0]
}

// drainLines returns and clears the line segments accumulated since the
// last call, for the caller to hand to a display sink once per frame.
func (in *integrator) drainLines() []Line {
	out := in.lines
	in.lines = nil
	return out
}
