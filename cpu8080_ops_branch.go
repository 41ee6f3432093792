// cpu8080_ops_branch.go - JMP/Jcc, CALL/Ccc, RET/Rcc, RST, PCHL.
//
// Conditional forms share one helper keyed by the already-decoded
// condition-code predicate (design note: "centralize register/condition
// decoding rather than replicate per-case").

package main

func installBranchOps(table *[256]opFunc) {
	table[0xC3] = func(m *MachineState) { m.PC = m.fetchWord() } // JMP
	table[0xCD] = func(m *MachineState) { m.call(m.fetchWord()) } // CALL
	table[0xC9] = func(m *MachineState) { m.PC = m.pop() }        // RET
	table[0xE9] = func(m *MachineState) { m.PC = m.HL() }         // PCHL

	for cc := uint8(0); cc < 8; cc++ {
		cond := cc
		jOp := 0xC2 | int(cc)<<3
		cOp := 0xC4 | int(cc)<<3
		rOp := 0xC0 | int(cc)<<3

		table[jOp] = func(m *MachineState) {
			target := m.fetchWord()
			if m.condCode(cond) {
				m.PC = target
			}
		}
		table[cOp] = func(m *MachineState) {
			target := m.fetchWord()
			if m.condCode(cond) {
				m.call(target)
			}
		}
		table[rOp] = func(m *MachineState) {
			if m.condCode(cond) {
				m.PC = m.pop()
			}
		}
	}

	for n := uint8(0); n < 8; n++ {
		vector := n
		table[0xC7|int(n)<<3] = func(m *MachineState) { // RST n
			m.push(m.PC)
			m.PC = uint16(vector) * 8
		}
	}
}

func (m *MachineState) call(target uint16) {
	m.push(m.PC)
	m.PC = target
}
