package via

// register indexes the VIA's 16-register page, in the order spec.md's
// register map table lists them (and matching original_source/src/Via.cpp's
// MapAddress switch).
type register uint8

const (
	regPortB         register = 0
	regPortA         register = 1
	regDataDirB      register = 2
	regDataDirA      register = 3
	regTimer1Low     register = 4
	regTimer1High    register = 5
	regTimer1LatchLo register = 6
	regTimer1LatchHi register = 7
	regTimer2Low     register = 8
	regTimer2High    register = 9
	regShift         register = 10
	regAuxCntl       register = 11
	regPeriphCntl    register = 12
	regInterruptFlag register = 13
	regInterruptEn   register = 14

	numRegisters = 16
)

// Port B bit layout.
const (
	portBMuxEnableMask = 1 << 0 // 0 = MUX enabled
	portBMuxSelMask    = 0b0000_0110
	portBRampMask      = 1 << 7 // 0 = /RAMP active, integrator enabled
)

// MUX select values (valid only when the MUX-enable bit is clear).
const (
	muxSelYVelocity = 0
	muxSelXYOffset  = 1
	muxSelZBright   = 2
	muxSelAudio     = 3
)

// Peripheral control register bit fields.
const (
	periphCA2Shift = 1
	periphCA2Mask  = 0b0000_1110
	periphCB2Shift = 5
	periphCB2Mask  = 0b1110_0000
)

const (
	ca2Zero    = 0b110 // /ZERO active: recenter beam, clear line buffer
	ca2ZeroOff = 0b111

	cb2Blank   = 0b110 // /BLANK active: beam off
	cb2Unblank = 0b111
)

// interrupt flag bits.
const interruptFlagTimer1 = 1 << 6

// auxiliary control: bits 6-5 select the timers' modes. Only one-shot (00) is
// supported; anything else is a fatal configuration error (spec.md §7.1).
const auxCntlTimerModeMask = 0b0110_0000
