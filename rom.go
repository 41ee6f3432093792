// rom.go - ROM image flavor detection and boot parameters.

package main

import "fmt"

// Flavor selects which drive loop and host wiring a ROM image gets.
type Flavor int

const (
	FlavorDiagnostic Flavor = iota
	FlavorInvaders
)

func (f Flavor) String() string {
	if f == FlavorDiagnostic {
		return "diagnostic"
	}
	return "invaders"
}

const (
	magicDiagnostic uint32 = 0x4d01abc3
	magicInvaders   uint32 = 0xc3000000
)

// BootParams names where a ROM image is loaded and where execution begins.
type BootParams struct {
	Flavor   Flavor
	LoadAddr uint16
	EntryPC  uint16
}

// DetectFlavor reads the image's first 4 bytes as a native-byte-order
// magic number and returns the matching boot parameters. The magic bytes
// are not a stripped header: they double as the ROM's first real
// instruction bytes, so callers load the image in full, unmodified, at
// BootParams.LoadAddr.
func DetectFlavor(image []byte) (BootParams, error) {
	if len(image) < 4 {
		return BootParams{}, fmt.Errorf("rom: image too short to contain a magic number (%d bytes)", len(image))
	}
	magic := uint32(image[0]) | uint32(image[1])<<8 | uint32(image[2])<<16 | uint32(image[3])<<24

	switch magic {
	case magicDiagnostic:
		return BootParams{Flavor: FlavorDiagnostic, LoadAddr: 0x0100, EntryPC: 0x0100}, nil
	case magicInvaders:
		return BootParams{Flavor: FlavorInvaders, LoadAddr: 0x0000, EntryPC: 0x0000}, nil
	default:
		return BootParams{}, fmt.Errorf("rom: unrecognized magic number 0x%08x", magic)
	}
}
