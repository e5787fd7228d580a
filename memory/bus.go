package memory

import "github.com/vectrexcore/vectrexcore/curated"

// binding associates an immutable address range with the device that owns
// it. Ranges never overlap once wired (spec.md §4.1).
type binding struct {
	lo, hi   uint16
	device   Device
	writable bool
}

func (b binding) contains(addr uint16) bool {
	return addr >= b.lo && addr <= b.hi
}

// Bus is the Vectrex's 16-bit address space. It owns no storage itself: it
// only decodes addresses and dispatches to whichever Device was bound to the
// range that contains them. An address claimed by no device reads as 0 and
// discards writes (spec.md §4.1, §7.3).
type Bus struct {
	bindings []binding
}

// NewBus returns an empty bus. Devices are attached with Bind.
func NewBus() *Bus {
	return &Bus{}
}

// Bind attaches device to [lo, hi]. It is a programming error (returned as a
// curated error) to bind a range that overlaps one already bound.
func (b *Bus) Bind(lo, hi uint16, device Device, writable bool) error {
	for _, existing := range b.bindings {
		if lo <= existing.hi && hi >= existing.lo {
			return curated.Errorf("memory: range %#04x-%#04x overlaps existing binding %#04x-%#04x (%s)",
				lo, hi, existing.lo, existing.hi, existing.device.Label())
		}
	}
	b.bindings = append(b.bindings, binding{lo: lo, hi: hi, device: device, writable: writable})
	return nil
}

func (b *Bus) find(addr uint16) (binding, bool) {
	for _, bind := range b.bindings {
		if bind.contains(addr) {
			return bind, true
		}
	}
	return binding{}, false
}

// Read implements CPUBus.
func (b *Bus) Read(addr uint16) (uint8, error) {
	if bind, ok := b.find(addr); ok {
		return bind.device.ReadDevice(addr), nil
	}
	return 0, nil
}

// Write implements CPUBus.
func (b *Bus) Write(addr uint16, data uint8) error {
	if bind, ok := b.find(addr); ok && bind.writable {
		bind.device.WriteDevice(addr, data)
	}
	return nil
}

// Read16 reads a big-endian 16-bit value, as required by every 16-bit
// addressing mode and register load/store (spec.md §3's invariant).
func (b *Bus) Read16(addr uint16) (uint16, error) {
	hi, err := b.Read(addr)
	if err != nil {
		return 0, err
	}
	lo, err := b.Read(addr + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// Write16 writes a big-endian 16-bit value.
func (b *Bus) Write16(addr uint16, val uint16) error {
	if err := b.Write(addr, uint8(val>>8)); err != nil {
		return err
	}
	return b.Write(addr+1, uint8(val))
}

// DeviceAt returns the device bound to addr, if any.
func (b *Bus) DeviceAt(addr uint16) (Device, bool) {
	if bind, ok := b.find(addr); ok {
		return bind.device, true
	}
	return nil, false
}

// Bindings returns a snapshot of the bus's device ranges, in the order they
// were bound (no overlaps, so no ambiguity).
type Binding struct {
	Lo, Hi   uint16
	Label    string
	Writable bool
}

func (b *Bus) Bindings() []Binding {
	out := make([]Binding, 0, len(b.bindings))
	for _, bind := range b.bindings {
		out = append(out, Binding{Lo: bind.lo, Hi: bind.hi, Label: bind.device.Label(), Writable: bind.writable})
	}
	return out
}
