//go:build headless

// host_invaders_headless.go - headless Invaders host: no window, no real
// keyboard, a synthetic ticker that bumps the IRQ handshake twice per tick
// (~120 Hz at the default 60 ticks per second). Grounded on
// video_backend_headless.go's pattern of a build-tag-selected stand-in
// that satisfies the same interface as the GUI backend for tests and CI.

package main

import (
	"time"
)

// HeadlessInvadersHost drives the IRQ handshake on a timer but never
// touches a window or real input device. Used for CI and for drive-loop
// scenario tests that need the IRQ cadence without a display.
type HeadlessInvadersHost struct {
	FrameHz int // ticks per second; two IRQs injected per tick
}

// NewInvadersHost returns the build-selected host adapter.
func NewInvadersHost() InvadersHost {
	return &HeadlessInvadersHost{FrameHz: 60}
}

// SetFrameHz implements frameRateSetter.
func (h *HeadlessInvadersHost) SetFrameHz(hz int) { h.FrameHz = hz }

func (h *HeadlessInvadersHost) Run(m *MachineState, io *InvadersIO) error {
	hz := h.FrameHz
	if hz <= 0 {
		hz = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(hz))
	defer ticker.Stop()

	for m.Running() {
		<-ticker.C
		m.BumpIRQSet()
		m.BumpIRQSet()
	}
	return nil
}
