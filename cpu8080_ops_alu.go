// cpu8080_ops_alu.go - the eight ALU groups over register/memory (0x80-0xBF)
// and their immediate forms (0xC6.. step of 8), plus INR/DCR/DAD and the
// rotate/DAA family that shares the same flag machinery.

package main

type aluOp int

const (
	aluAdd aluOp = iota
	aluAdc
	aluSub
	aluSbb
	aluAna
	aluXra
	aluOra
	aluCmp
)

func (m *MachineState) performALU(op aluOp, src uint8) {
	switch op {
	case aluAdd:
		m.A = m.addFlags(m.A, src, 0)
	case aluAdc:
		cy := uint8(0)
		if m.F.CY {
			cy = 1
		}
		m.A = m.addFlags(m.A, src, cy)
	case aluSub:
		m.A = m.subFlags(m.A, src, 0)
	case aluSbb:
		bw := uint8(0)
		if m.F.CY {
			bw = 1
		}
		m.A = m.subFlags(m.A, src, bw)
	case aluAna:
		ac := (m.A|src)&0x08 != 0
		m.A = m.A & src
		m.logicFlags(m.A, ac)
	case aluXra:
		m.A = m.A ^ src
		m.logicFlags(m.A, false)
	case aluOra:
		m.A = m.A | src
		m.logicFlags(m.A, false)
	case aluCmp:
		m.subFlags(m.A, src, 0) // result discarded, flags only
	}
}

func installALUOps(table *[256]opFunc) {
	groups := []struct {
		base uint8
		op   aluOp
	}{
		{0x80, aluAdd}, {0x88, aluAdc}, {0x90, aluSub}, {0x98, aluSbb},
		{0xA0, aluAna}, {0xA8, aluXra}, {0xB0, aluOra}, {0xB8, aluCmp},
	}
	for _, g := range groups {
		op := g.op
		for src := uint8(0); src < 8; src++ {
			s := src
			table[int(g.base)+int(s)] = func(m *MachineState) {
				m.performALU(op, m.regCode(s))
			}
		}
	}

	immOpcodes := map[int]aluOp{
		0xC6: aluAdd, 0xCE: aluAdc, 0xD6: aluSub, 0xDE: aluSbb,
		0xE6: aluAna, 0xEE: aluXra, 0xF6: aluOra, 0xFE: aluCmp,
	}
	for opcode, op := range immOpcodes {
		aop := op
		table[opcode] = func(m *MachineState) {
			m.performALU(aop, m.fetchByte())
		}
	}

	installINRDCR(table)
	installDAD(table)

	table[0x27] = func(m *MachineState) { m.daa() }

	table[0x07] = func(m *MachineState) { // RLC
		bit7 := m.A >> 7
		m.A = m.A<<1 | bit7
		m.F.CY = bit7 != 0
	}
	table[0x0F] = func(m *MachineState) { // RRC
		bit0 := m.A & 1
		m.A = m.A>>1 | bit0<<7
		m.F.CY = bit0 != 0
	}
	table[0x17] = func(m *MachineState) { // RAL
		var cyIn uint8
		if m.F.CY {
			cyIn = 1
		}
		bit7 := m.A >> 7
		m.A = m.A<<1 | cyIn
		m.F.CY = bit7 != 0
	}
	table[0x1F] = func(m *MachineState) { // RAR
		var cyIn uint8
		if m.F.CY {
			cyIn = 0x80
		}
		bit0 := m.A & 1
		m.A = m.A>>1 | cyIn
		m.F.CY = bit0 != 0
	}

	table[0x2F] = func(m *MachineState) { m.A = ^m.A }          // CMA
	table[0x37] = func(m *MachineState) { m.F.CY = true }       // STC
	table[0x3F] = func(m *MachineState) { m.F.CY = !m.F.CY }    // CMC
}

func installINRDCR(table *[256]opFunc) {
	inrOpcodes := map[int]uint8{
		0x04: 0, 0x0C: 1, 0x14: 2, 0x1C: 3, 0x24: 4, 0x2C: 5, 0x34: 6, 0x3C: 7,
	}
	for opcode, reg := range inrOpcodes {
		r := reg
		table[opcode] = func(m *MachineState) {
			m.setRegCode(r, m.addFlagsNoCY(m.regCode(r), 1))
		}
	}
	dcrOpcodes := map[int]uint8{
		0x05: 0, 0x0D: 1, 0x15: 2, 0x1D: 3, 0x25: 4, 0x2D: 5, 0x35: 6, 0x3D: 7,
	}
	for opcode, reg := range dcrOpcodes {
		r := reg
		table[opcode] = func(m *MachineState) {
			m.setRegCode(r, m.subFlagsNoCY(m.regCode(r), 1))
		}
	}
}

func installDAD(table *[256]opFunc) {
	dadOpcodes := map[int]uint8{0x09: 0, 0x19: 1, 0x29: 2, 0x39: 3}
	for opcode, rp := range dadOpcodes {
		pair := rp
		table[opcode] = func(m *MachineState) {
			sum := uint32(m.HL()) + uint32(m.regPair(pair))
			m.SetHL(uint16(sum))
			m.F.CY = sum&0x10000 != 0
		}
	}

	inxOpcodes := map[int]uint8{0x03: 0, 0x13: 1, 0x23: 2, 0x33: 3}
	for opcode, rp := range inxOpcodes {
		pair := rp
		table[opcode] = func(m *MachineState) {
			m.setRegPair(pair, m.regPair(pair)+1)
		}
	}
	dcxOpcodes := map[int]uint8{0x0B: 0, 0x1B: 1, 0x2B: 2, 0x3B: 3}
	for opcode, rp := range dcxOpcodes {
		pair := rp
		table[opcode] = func(m *MachineState) {
			m.setRegPair(pair, m.regPair(pair)-1)
		}
	}
}
