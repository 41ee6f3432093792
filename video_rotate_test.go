package main

import "testing"

func TestRotateVRAMDimensions(t *testing.T) {
	vram := make([]byte, vramBytes)
	frame := RotateVRAM(vram)
	requireBool(t, "width", frame.Width == vramHeight, true)
	requireBool(t, "height", frame.Height == vramWidth, true)
	requireBool(t, "pixel count", len(frame.Pixels) == vramHeight*vramWidth, true)
}

func TestRotateVRAMSinglePixel(t *testing.T) {
	vram := make([]byte, vramBytes)
	// Set row 0, col 0 (the first bit of the first scanline byte).
	vram[0] = 0x01

	frame := RotateVRAM(vram)
	hostX, hostY := 0, vramWidth-1-0
	idx := hostY*frame.Width + hostX
	requireBool(t, "rotated pixel set", frame.Pixels[idx], true)

	for i, p := range frame.Pixels {
		if i != idx && p {
			t.Fatalf("unexpected set pixel at index %d", i)
		}
	}
}

func TestRotateVRAMHandlesShortInput(t *testing.T) {
	vram := make([]byte, 4) // far short of vramBytes
	frame := RotateVRAM(vram) // must not panic
	requireBool(t, "still right size", len(frame.Pixels) == vramHeight*vramWidth, true)
}
