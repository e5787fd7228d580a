// Package cartridgeloader is used to specify the BIOS and cartridge images
// to be attached to the emulated console.
//
// When an image is ready to be loaded, the Load method should be used. It
// handles loading from both local files and HTTP(S) URLs. The preferred way
// to construct a Loader is NewLoader:
//
//	cl := cartridgeloader.NewLoader("roms/minestorm.bin")
//	if err := cl.Load(); err != nil {
//		// handle error
//	}
package cartridgeloader
