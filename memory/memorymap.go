package memory

// Address ranges of the Vectrex memory map (spec.md §6).
const (
	CartridgeOrigin = uint16(0x0000)
	CartridgeMemtop = uint16(0x7fff)

	RAMOrigin = uint16(0xc800)
	RAMMemtop = uint16(0xcfff)
	RAMSize   = 1024 // 1KiB, mirrored across the 2KiB window

	ViaOrigin = uint16(0xd000)
	ViaMemtop = uint16(0xd7ff)
	ViaRegs   = 16 // mirrored across the 2KiB window

	BiosOrigin = uint16(0xe000)
	BiosMemtop = uint16(0xffff)
	BiosSize   = 8192

	// ResetVector holds the address the Cpu should load into PC on reset.
	ResetVector = uint16(0xfffe)
)

// CartridgeMaxSize is the largest cartridge ROM the bus will accept.
const CartridgeMaxSize = 32768
