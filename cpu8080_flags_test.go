package main

import "testing"

func TestPackUnpackReservedBits(t *testing.T) {
	f := Flags{S: true, Z: false, P: true, CY: true, AC: false}
	packed := f.Pack()

	requireBool(t, "bit1 hardwired", packed&(1<<1) != 0, true)
	requireBool(t, "bit3 unused", packed&(1<<3) != 0, false)
	requireBool(t, "bit5 unused", packed&(1<<5) != 0, false)

	var got Flags
	got.Unpack(packed)
	if got != f {
		t.Fatalf("round-trip = %+v, want %+v", got, f)
	}
}

func TestParityTable(t *testing.T) {
	cases := []struct {
		v    uint8
		even bool
	}{
		{0x00, true},
		{0x01, false},
		{0x03, true},
		{0x07, false},
		{0xFF, true},
		{0x80, false},
	}
	for _, c := range cases {
		requireBool(t, "parity", parity(c.v), c.even)
	}
}

func TestAddFlagsCarryAndAux(t *testing.T) {
	m := NewMachineState()
	r := m.addFlags(0xFF, 0x01, 0)
	requireU8(t, "result", r, 0x00)
	requireBool(t, "CY", m.F.CY, true)
	requireBool(t, "AC", m.F.AC, true)
	requireBool(t, "Z", m.F.Z, true)
}

func TestSubFlagsBorrow(t *testing.T) {
	m := NewMachineState()
	r := m.subFlags(0x00, 0x01, 0)
	requireU8(t, "result", r, 0xFF)
	requireBool(t, "CY borrow", m.F.CY, true)
	requireBool(t, "S", m.F.S, true)
}

func TestLogicFlagsClearsCY(t *testing.T) {
	m := NewMachineState()
	m.F.CY = true
	m.logicFlags(0x0F, true)
	requireBool(t, "CY cleared", m.F.CY, false)
	requireBool(t, "AC passthrough", m.F.AC, true)
}

func TestDAAAfterBCDAdd(t *testing.T) {
	// 0x9 + 0x9 = 0x12 in raw binary; DAA should turn it into BCD 0x18.
	m := newTestMachine(0x0100, []byte{0x27}) // DAA
	m.A = 0x12
	m.F.AC = true // the 9+9 add carried out of the low nibble
	m.Step()
	requireU8(t, "A", m.A, 0x18)
	requireBool(t, "AC", m.F.AC, true)
	requireBool(t, "CY", m.F.CY, false)
}

func TestDAAHighNibbleCarry(t *testing.T) {
	m := newTestMachine(0x0100, []byte{0x27}) // DAA
	m.A = 0xA0
	m.Step()
	requireU8(t, "A", m.A, 0x00)
	requireBool(t, "CY", m.F.CY, true)
}

func TestDAAPreservesIncomingCarry(t *testing.T) {
	m := newTestMachine(0x0100, []byte{0x27}) // DAA
	m.A = 0x05
	m.F.CY = true
	m.Step()
	requireU8(t, "A", m.A, 0x65)
	requireBool(t, "CY stays set", m.F.CY, true)
}
