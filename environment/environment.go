// Package environment carries the handful of values that might differ
// between instances of the emulator core (useful when more than one core is
// run in the same process, eg. regression testing many ROMs in parallel)
// but which are not part of the emulated hardware state itself.
package environment

// Label identifies the purpose of a running instance.
type Label string

// Recognised instance labels.
const (
	Main       Label = ""
	Regression Label = "regression"
	Thumbnail  Label = "thumbnail"
)

// Environment is passed down to every component that needs to behave
// differently depending on why it is running, without resorting to
// package-level state.
type Environment struct {
	Label Label

	// CPUClockHz is the notional 6809 clock rate used to translate a
	// host-supplied time delta into a cycle budget. The real Vectrex runs
	// its CPU at 1.5MHz.
	CPUClockHz float64

	// AudioSampleRate is the rate, in Hz, at which the PSG mixer emits
	// samples into the frame's audio stream.
	AudioSampleRate int
}

// NewEnvironment returns an Environment with the standard Vectrex clock and
// sample rates.
func NewEnvironment(label Label) *Environment {
	return &Environment{
		Label:           label,
		CPUClockHz:      1_500_000,
		AudioSampleRate: 1_500_000 / 16, // one PSG sample per 16-cycle master-divider tick
	}
}

func (env *Environment) IsEmulation(label Label) bool {
	if env == nil {
		return label == Main
	}
	return env.Label == label
}
