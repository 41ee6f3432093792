// cpu8080.go - Intel 8080 machine state and register-pair views

package main

import "sync/atomic"

// StepResult reports what happened after one call to Step.
type StepResult int

const (
	StepContinue StepResult = iota
	StepHalted
	StepTrapStopped
	StepDecodeError
)

func (r StepResult) String() string {
	switch r {
	case StepContinue:
		return "continue"
	case StepHalted:
		return "halted"
	case StepTrapStopped:
		return "trap-stopped"
	case StepDecodeError:
		return "decode-error"
	default:
		return "unknown"
	}
}

// IODirection distinguishes an IN from an OUT at the port handler.
type IODirection int

const (
	IODirectionIn IODirection = iota
	IODirectionOut
)

// PortHandler services IN/OUT instructions. For IN, value is ignored and
// the return value is read into A. For OUT, the return value is unused.
type PortHandler func(port uint8, value uint8, dir IODirection) uint8

// PreDecodeTrap runs before every instruction decode. Returning
// (_, false) lets the CPU decode normally; returning (result, true)
// short-circuits Step with that result.
type PreDecodeTrap func(m *MachineState) (StepResult, bool)

// Flags is the 8080's five-bit condition code bundle. The official
// byte packing (S Z 0 AC 0 P 1 CY) is only materialized at PUSH/POP PSW.
type Flags struct {
	S  bool
	Z  bool
	P  bool
	CY bool
	AC bool
}

const (
	flagCYBit = 1 << 0
	flagPBit  = 1 << 2
	flagACBit = 1 << 4
	flagZBit  = 1 << 6
	flagSBit  = 1 << 7
)

// Pack returns the official 8080 flag byte layout used by PUSH PSW.
func (f Flags) Pack() uint8 {
	var b uint8 = 1 << 1 // bit 1 is wired high
	if f.CY {
		b |= flagCYBit
	}
	if f.P {
		b |= flagPBit
	}
	if f.AC {
		b |= flagACBit
	}
	if f.Z {
		b |= flagZBit
	}
	if f.S {
		b |= flagSBit
	}
	return b
}

// Unpack decodes a flag byte as produced by POP PSW, per the same layout.
func (f *Flags) Unpack(b uint8) {
	f.CY = b&flagCYBit != 0
	f.P = b&flagPBit != 0
	f.AC = b&flagACBit != 0
	f.Z = b&flagZBit != 0
	f.S = b&flagSBit != 0
}

// MachineState is the CPU's full architectural state plus the memory it
// operates on. Exclusively owned by the drive loop; the host timer only
// ever touches the irqSet counter (via BumpIRQSet) from another goroutine.
type MachineState struct {
	A, B, C, D, E, H, L uint8
	SP, PC              uint16
	IE                  bool
	F                   Flags

	mem [65536]byte

	haltReq   bool
	decodeErr bool
	running   bool

	ioHandler PortHandler
	trap      PreDecodeTrap

	// irqSet/irqClr form a Lamport-style one-slot handshake: the host
	// timer only increments irqSet, the drive loop only increments
	// irqClr, and only when irqClr < irqSet.
	irqSet uint64
	irqClr uint64

	lastOpcode uint8
	lastPC     uint16
}

// NewMachineState allocates a zeroed 64 KiB machine, matching power-on RESET.
func NewMachineState() *MachineState {
	return &MachineState{running: true}
}

// Reset zeroes all registers, flags, IE, and memory.
func (m *MachineState) Reset() {
	*m = MachineState{running: true}
}

// Load copies bytes into memory starting at offset, truncating silently
// at the 64 KiB boundary when the image runs past the end of memory.
func (m *MachineState) Load(offset uint16, data []byte) {
	for i, b := range data {
		addr := int(offset) + i
		if addr >= len(m.mem) {
			break
		}
		m.mem[addr] = b
	}
}

func (m *MachineState) SetPC(addr uint16) { m.PC = addr }

func (m *MachineState) SetIO(handler PortHandler)   { m.ioHandler = handler }
func (m *MachineState) SetTrap(trap PreDecodeTrap)  { m.trap = trap }

func (m *MachineState) RequestHalt() { m.haltReq = true }

func (m *MachineState) Running() bool { return m.running }

// BC, DE, HL are recomputed from their 8-bit halves on every access rather
// than cached, per the "no memory aliasing across steps" design note.
func (m *MachineState) BC() uint16 { return uint16(m.B)<<8 | uint16(m.C) }
func (m *MachineState) DE() uint16 { return uint16(m.D)<<8 | uint16(m.E) }
func (m *MachineState) HL() uint16 { return uint16(m.H)<<8 | uint16(m.L) }

func (m *MachineState) SetBC(v uint16) { m.B, m.C = uint8(v>>8), uint8(v) }
func (m *MachineState) SetDE(v uint16) { m.D, m.E = uint8(v>>8), uint8(v) }
func (m *MachineState) SetHL(v uint16) { m.H, m.L = uint8(v>>8), uint8(v) }

// vramSlice returns the live 7168-byte Invaders VRAM region at 0x2400,
// read-only to its caller by convention.
func (m *MachineState) vramSlice() []byte {
	return m.mem[vramAddr : vramAddr+vramBytes]
}

func (m *MachineState) readByte(addr uint16) uint8  { return m.mem[addr] }
func (m *MachineState) writeByte(addr uint16, v uint8) { m.mem[addr] = v }

func (m *MachineState) readWord(addr uint16) uint16 {
	lo := uint16(m.mem[addr])
	hi := uint16(m.mem[addr+1])
	return lo | hi<<8
}

func (m *MachineState) writeWord(addr uint16, v uint16) {
	m.mem[addr] = uint8(v)
	m.mem[addr+1] = uint8(v >> 8)
}

func (m *MachineState) push(v uint16) {
	m.SP -= 2
	m.writeWord(m.SP, v)
}

func (m *MachineState) pop() uint16 {
	v := m.readWord(m.SP)
	m.SP += 2
	return v
}

// RaiseIRQ behaves like a single-byte RST vector when IE is set;
// otherwise it is a no-op. vector*8 is the jump target; the high byte
// of the pushed PC is masked with 0xff00 — original_source/i8080.c's
// 0xeff00 is a documented typo, corrected here.
func (m *MachineState) RaiseIRQ(vector uint8) {
	if !m.IE {
		return
	}
	m.SP -= 2
	m.mem[m.SP] = uint8(m.PC)
	m.mem[m.SP+1] = uint8((m.PC & 0xff00) >> 8)
	m.IE = false
	m.PC = uint16(vector) * 8
}

// BumpIRQSet is the host-timer side of the handshake: called from a
// different goroutine than the drive loop, it only ever increments.
func (m *MachineState) BumpIRQSet() {
	atomic.AddUint64(&m.irqSet, 1)
}

// PendingIRQ reports whether the drive loop has an unconsumed interrupt
// and, if so, which vector to raise, and consumes it by bumping irqClr.
// The vector alternates by the parity of irqClr (the index of the event
// being consumed), not of the accumulated irqSet snapshot: a host may
// bump irqSet more than once before the drive loop gets a chance to
// consume any of them (the ebiten host bumps twice per Update with no
// step in between), and keying off irqSet's parity would then hand out
// the same vector for every pending event in that backlog. Keying off
// irqClr instead guarantees each consumption alternates 1, 2, 1, 2, ...
// in the order the events were queued: the first event consumed is
// mid-screen (vector 1), the second is end-of-frame (vector 2), and so on.
func (m *MachineState) PendingIRQ() (vector uint8, ok bool) {
	set := atomic.LoadUint64(&m.irqSet)
	if m.irqClr >= set {
		return 0, false
	}
	if m.irqClr%2 == 0 {
		vector = 1
	} else {
		vector = 2
	}
	m.irqClr++
	return vector, true
}
