package main

import "testing"

func TestNewInvadersIODefaultDIPs(t *testing.T) {
	io := NewInvadersIO()
	requireBool(t, "DIP3 (3 lives)", io.port2&port2DIP3 != 0, true)
	requireBool(t, "DIP5", io.port2&port2DIP5 != 0, true)
	requireBool(t, "DIP6 (bonus at 1000)", io.port2&port2DIP6 != 0, true)
	requireBool(t, "port1 bit3 always 1", io.port1&port1Always1 != 0, true)
}

func TestShiftRegisterDeterministic(t *testing.T) {
	io := NewInvadersIO()
	bus := NewPortBus()
	io.AttachTo(bus)
	h := bus.Handler()

	h(2, 0x07, IODirectionOut) // offset=7
	h(4, 0xAA, IODirectionOut) // shift in 0xAA as high byte
	h(4, 0xFF, IODirectionOut) // shift in 0xFF, 0xAA moves to low byte

	got := h(3, 0, IODirectionIn)
	want := uint8((uint16(0xFFAA) >> (8 - 7)) & 0xFF)
	requireU8(t, "shiftRead with offset 7", got, want)
}

func TestShiftRegisterOffsetZeroReturnsHighByte(t *testing.T) {
	io := NewInvadersIO()
	bus := NewPortBus()
	io.AttachTo(bus)
	h := bus.Handler()

	h(2, 0x00, IODirectionOut)
	h(4, 0x12, IODirectionOut)
	h(4, 0x34, IODirectionOut)

	got := h(3, 0, IODirectionIn)
	requireU8(t, "offset 0 returns high byte", got, 0x34)
}

func TestOnKeyPressAndRelease(t *testing.T) {
	io := NewInvadersIO()
	io.OnKey(KeyLeft, KeyPress)
	requireBool(t, "left set", io.port1&port1P1Left != 0, true)
	io.OnKey(KeyLeft, KeyRelease)
	requireBool(t, "left cleared", io.port1&port1P1Left != 0, false)
}

func TestOnKeyEscapeRequestsHalt(t *testing.T) {
	io := NewInvadersIO()
	requireBool(t, "not halted yet", io.HaltRequested(), false)
	io.OnKey(KeyEscape, KeyPress)
	requireBool(t, "halted after escape", io.HaltRequested(), true)
}

func TestUnmappedPortsReadZeroAndDiscardWrites(t *testing.T) {
	io := NewInvadersIO()
	bus := NewPortBus()
	io.AttachTo(bus)
	h := bus.Handler()

	requireU8(t, "port 0 reads 0", h(0, 0, IODirectionIn), 0)
	h(5, 0xFF, IODirectionOut) // must not panic; port 5 is write-discard
	h(6, 0xFF, IODirectionOut)
}

func TestCoinAndStartCreditBits(t *testing.T) {
	io := NewInvadersIO()
	io.OnKey(Key5, KeyPress)
	requireBool(t, "credit bit", io.port1&port1Credit != 0, true)
	io.OnKey(Key1, KeyPress)
	requireBool(t, "P1 start bit", io.port1&port1P1Start != 0, true)
	io.OnKey(Key2, KeyPress)
	requireBool(t, "P2 start bit", io.port1&port1P2Start != 0, true)
}
