// cpu8080_ops_mov.go - MOV family (0x40-0x7F except 0x76 HLT) and the
// MVI/LXI immediate loads, register/memory moves.

package main

func installMovOps(table *[256]opFunc) {
	for op := 0x40; op <= 0x7F; op++ {
		if op == 0x76 {
			continue // HLT, handled specially in Step
		}
		dest := uint8((op >> 3) & 7)
		src := uint8(op & 7)
		table[op] = func(m *MachineState) {
			m.setRegCode(dest, m.regCode(src))
		}
	}

	mviOpcodes := map[int]uint8{
		0x06: 0, 0x0E: 1, 0x16: 2, 0x1E: 3,
		0x26: 4, 0x2E: 5, 0x36: 6, 0x3E: 7,
	}
	for op, reg := range mviOpcodes {
		dest := reg
		table[op] = func(m *MachineState) {
			m.setRegCode(dest, m.fetchByte())
		}
	}

	lxiOpcodes := map[int]uint8{0x01: 0, 0x11: 1, 0x21: 2, 0x31: 3}
	for op, rp := range lxiOpcodes {
		pair := rp
		table[op] = func(m *MachineState) {
			m.setRegPair(pair, m.fetchWord())
		}
	}

	table[0x0A] = func(m *MachineState) { m.A = m.readByte(m.BC()) } // LDAX B
	table[0x1A] = func(m *MachineState) { m.A = m.readByte(m.DE()) } // LDAX D
	table[0x02] = func(m *MachineState) { m.writeByte(m.BC(), m.A) } // STAX B
	table[0x12] = func(m *MachineState) { m.writeByte(m.DE(), m.A) } // STAX D

	table[0x3A] = func(m *MachineState) { // LDA addr
		m.A = m.readByte(m.fetchWord())
	}
	table[0x32] = func(m *MachineState) { // STA addr
		m.writeByte(m.fetchWord(), m.A)
	}
	table[0x2A] = func(m *MachineState) { // LHLD addr
		addr := m.fetchWord()
		m.L = m.readByte(addr)
		m.H = m.readByte(addr + 1)
	}
	table[0x22] = func(m *MachineState) { // SHLD addr
		addr := m.fetchWord()
		m.writeByte(addr, m.L)
		m.writeByte(addr+1, m.H)
	}

	table[0xEB] = func(m *MachineState) { // XCHG
		hl := m.HL()
		m.SetHL(m.DE())
		m.SetDE(hl)
	}
}
