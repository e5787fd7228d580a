package memory

import "github.com/vectrexcore/vectrexcore/curated"

// ROM implements Device over a fixed-size, read-only image: either the
// 8KiB BIOS at $E000-$FFFF or a cartridge of up to 32KiB at $0000-$7FFF.
// Writes are silently discarded, per spec.md §7's "silent no-op" error kind.
type ROM struct {
	label  string
	origin uint16
	data   []uint8
}

// NewBiosROM creates the BIOS ROM bound at $E000. image must be exactly
// BiosSize bytes.
func NewBiosROM(image []byte) (*ROM, error) {
	if len(image) != BiosSize {
		return nil, curated.Errorf("memory: BIOS image must be exactly %d bytes, got %d", BiosSize, len(image))
	}
	return newROM("BIOS", BiosOrigin, image), nil
}

// NewCartridgeROM creates a cartridge ROM bound at $0000. image must be no
// larger than CartridgeMaxSize bytes. Shorter images are not padded; reads
// of addresses past the end of the image return 0 from this device.
func NewCartridgeROM(image []byte) (*ROM, error) {
	if len(image) == 0 {
		return nil, curated.Errorf("memory: cartridge image is empty")
	}
	if len(image) > CartridgeMaxSize {
		return nil, curated.Errorf("memory: cartridge image exceeds %d bytes, got %d", CartridgeMaxSize, len(image))
	}
	return newROM("Cartridge", CartridgeOrigin, image), nil
}

func newROM(label string, origin uint16, image []byte) *ROM {
	data := make([]uint8, len(image))
	copy(data, image)
	return &ROM{label: label, origin: origin, data: data}
}

func (r *ROM) Label() string { return r.label }

func (r *ROM) ReadDevice(addr uint16) uint8 {
	i := int(addr - r.origin)
	if i < 0 || i >= len(r.data) {
		return 0
	}
	return r.data[i]
}

func (r *ROM) WriteDevice(addr uint16, data uint8) {
	// writes to ROM are discarded (spec.md §7.3)
}
