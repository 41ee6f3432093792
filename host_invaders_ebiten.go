//go:build !headless

// host_invaders_ebiten.go - the Invaders flavor's window, keyboard, and
// VRAM blit. Grounded on video_backend_ebiten.go's ebiten.Game loop and
// inpututil key-edge pattern, narrowed to the one cabinet button layout
// the arcade control panel uses.

package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenInvadersHost is the GUI adapter: an ebiten.Game whose Update
// bumps the CPU's IRQ handshake twice per tick (~120 Hz at the default
// 60 TPS) and translates key edges into InvadersIO.OnKey calls, and
// whose Draw blits the rotated VRAM each tick.
type EbitenInvadersHost struct {
	m   *MachineState
	io  *InvadersIO
	img *ebiten.Image
}

// NewInvadersHost returns the build-selected host adapter.
func NewInvadersHost() InvadersHost {
	return &EbitenInvadersHost{}
}

var trackedKeys = []struct {
	ebiten ebiten.Key
	cabinet Key
}{
	{ebiten.KeySpace, KeySpace},
	{ebiten.KeyControl, KeyControl},
	{ebiten.KeyLeft, KeyLeft},
	{ebiten.KeyRight, KeyRight},
	{ebiten.Key5, Key5},
	{ebiten.Key1, Key1},
	{ebiten.Key2, Key2},
	{ebiten.KeyEscape, KeyEscape},
}

func (h *EbitenInvadersHost) Run(m *MachineState, io *InvadersIO) error {
	h.m = m
	h.io = io
	h.img = ebiten.NewImage(vramHeight, vramWidth)

	ebiten.SetWindowSize(vramHeight*2, vramWidth*2)
	ebiten.SetWindowTitle("Space Invaders")
	ebiten.SetWindowResizable(true)

	return ebiten.RunGame(h)
}

func (h *EbitenInvadersHost) Update() error {
	for _, k := range trackedKeys {
		if inpututil.IsKeyJustPressed(k.ebiten) {
			h.io.OnKey(k.cabinet, KeyPress)
		}
		if inpututil.IsKeyJustReleased(k.ebiten) {
			h.io.OnKey(k.cabinet, KeyRelease)
		}
	}

	// Two interrupts per frame (~120 Hz at ebiten's 60 TPS default);
	// PendingIRQ alternates mid-screen/end-of-frame by consumption order,
	// not by how many of these land before the drive loop catches up.
	h.m.BumpIRQSet()
	h.m.BumpIRQSet()

	if h.io.HaltRequested() || !h.m.Running() {
		return ebiten.Termination
	}
	return nil
}

func (h *EbitenInvadersHost) Draw(screen *ebiten.Image) {
	frame := RotateVRAM(h.m.vramSlice())
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			c := color.Black
			if frame.Pixels[y*frame.Width+x] {
				c = color.White
			}
			h.img.Set(x, y, c)
		}
	}
	screen.DrawImage(h.img, nil)
}

func (h *EbitenInvadersHost) Layout(outsideWidth, outsideHeight int) (int, int) {
	return vramHeight, vramWidth
}
