package psg

// Register indexes the AY-3-8912's 16-register file, in the same order the
// original engine's Psg.cpp enumerates them.
type Register uint8

const (
	ChannelALow  Register = 0
	ChannelAHigh Register = 1
	ChannelBLow  Register = 2
	ChannelBHigh Register = 3
	ChannelCLow  Register = 4
	ChannelCHigh Register = 5
	NoisePeriod  Register = 6
	MixerControl Register = 7
	AmplitudeA   Register = 8
	AmplitudeB   Register = 9
	AmplitudeC   Register = 10
	EnvelopeLow  Register = 11
	EnvelopeHigh Register = 12
	EnvelopeShape Register = 13
	IOPortA      Register = 14
	IOPortB      Register = 15

	numRegisters = 16
)

// MixerControl bit layout: a 0 bit enables the corresponding generator, a 1
// bit disables it (Psg.cpp's active-low convention).
const (
	mixerToneADisable  = 1 << 0
	mixerToneBDisable  = 1 << 1
	mixerToneCDisable  = 1 << 2
	mixerNoiseADisable = 1 << 3
	mixerNoiseBDisable = 1 << 4
	mixerNoiseCDisable = 1 << 5
)

// amplitudeEnvelopeBit, when set in an AmplitudeX register, selects envelope
// mode for that channel instead of the fixed 4-bit level in bits 0-3.
const amplitudeEnvelopeBit = 1 << 4
