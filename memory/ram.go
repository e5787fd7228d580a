package memory

// RAM implements Device over the Vectrex's 1KiB of work RAM. The window at
// $C800-$CFFF is twice the size of the physical RAM, so addresses mirror
// every 1KiB.
type RAM struct {
	data [RAMSize]uint8
}

// NewRAM returns a zero-initialised RAM bank.
func NewRAM() *RAM {
	return &RAM{}
}

func (r *RAM) Label() string { return "RAM" }

func (r *RAM) ReadDevice(addr uint16) uint8 {
	return r.data[(addr-RAMOrigin)%RAMSize]
}

func (r *RAM) WriteDevice(addr uint16, data uint8) {
	r.data[(addr-RAMOrigin)%RAMSize] = data
}

// Reset zeroes RAM contents. Real hardware does not clear RAM on reset, but
// this is provided for test determinism; the Emulator does not call it.
func (r *RAM) Reset() {
	for i := range r.data {
		r.data[i] = 0
	}
}
