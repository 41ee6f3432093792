// cpu8080_ops_stack.go - PUSH/POP (including PSW), XTHL, SPHL.
//
// The rp field in PUSH/POP opcodes names BC/DE/HL/PSW, unlike the
// DAD/LXI/INX/DCX family where rp==3 names SP. Handled with its own
// small map rather than reusing regPair.

package main

func installStackOps(table *[256]opFunc) {
	rpOf := map[int]uint8{0xC5: 0, 0xD5: 1, 0xE5: 2, 0xF5: 3}
	for op, rp := range rpOf {
		pair := rp
		table[op] = func(m *MachineState) { m.pushRP(pair) }
	}
	popOf := map[int]uint8{0xC1: 0, 0xD1: 1, 0xE1: 2, 0xF1: 3}
	for op, rp := range popOf {
		pair := rp
		table[op] = func(m *MachineState) { m.popRP(pair) }
	}

	table[0xE3] = func(m *MachineState) { // XTHL
		lo := m.readByte(m.SP)
		hi := m.readByte(m.SP + 1)
		m.writeByte(m.SP, m.L)
		m.writeByte(m.SP+1, m.H)
		m.L, m.H = lo, hi
	}
	table[0xF9] = func(m *MachineState) { m.SP = m.HL() } // SPHL
}

func (m *MachineState) pushRP(rp uint8) {
	switch rp {
	case 3: // PSW
		m.push(uint16(m.A)<<8 | uint16(m.F.Pack()))
	default:
		m.push(m.regPair(rp))
	}
}

func (m *MachineState) popRP(rp uint8) {
	v := m.pop()
	switch rp {
	case 3: // PSW
		m.A = uint8(v >> 8)
		m.F.Unpack(uint8(v))
	default:
		m.setRegPair(rp, v)
	}
}
