// drive_loop.go - the two drive-loop flavors: load image, set entry PC,
// step the CPU, inject IRQs between steps.

package main

// RunDiagnostic drives the CP/M diagnostic flavor to completion: install
// the BDOS trap, step until Stopped(_), return the stop reason. image is
// loaded whole, magic bytes included — they double as real opcodes.
func RunDiagnostic(m *MachineState, image []byte, boot BootParams, sink ConsoleSink) StepResult {
	m.Load(boot.LoadAddr, image)
	m.SetPC(boot.EntryPC)
	m.SetTrap(NewBDOSTrap(sink))

	var result StepResult
	for m.Running() {
		result = m.Step()
	}
	if sc, ok := sink.(*StdConsole); ok {
		sc.Flush()
	}
	return result
}

// InvadersHost is the external collaborator pair: the framebuffer
// refresh and the keyboard listener. Concrete adapters live
// in host_invaders_ebiten.go / host_invaders_headless.go. Run starts
// whatever event loop the host needs (a GUI window, or nothing at all
// for the headless backend) and bumps m's IRQ handshake at ~120 Hz for
// as long as the host is up.
type InvadersHost interface {
	Run(m *MachineState, io *InvadersIO) error
}

// frameRateSetter is implemented only by hosts whose tick rate is
// configurable (the headless stand-in); the GUI host ignores --frame-hz
// and ticks at ebiten's own tick rate (60 TPS by default) instead.
type frameRateSetter interface {
	SetFrameHz(hz int)
}

// RunInvaders drives the arcade flavor: load the ROM at 0x0000, install
// the cabinet's I/O ports, start the CPU drive loop in the background,
// and hand control to the host's own event loop (which owns the real
// time base and the IRQ cadence). It returns once both have stopped.
// image is loaded whole, magic bytes included.
func RunInvaders(m *MachineState, image []byte, boot BootParams, host InvadersHost) (StepResult, error) {
	m.Load(boot.LoadAddr, image)
	m.SetPC(boot.EntryPC)

	io := NewInvadersIO()
	bus := NewPortBus()
	io.AttachTo(bus)
	m.SetIO(bus.Handler())

	cpuDone := make(chan StepResult, 1)
	go func() {
		cpuDone <- RunCPULoop(m, io)
	}()

	err := host.Run(m, io)
	m.RequestHalt()
	result := <-cpuDone
	return result, err
}

// RunCPULoop is the arcade flavor's drive loop proper: step the CPU;
// whenever a step returns Continue, consume one pending
// IRQ if the host timer has bumped irqSet past irqClr. It runs until
// Step returns something other than Continue.
func RunCPULoop(m *MachineState, io *InvadersIO) StepResult {
	for {
		if io.HaltRequested() {
			m.RequestHalt()
		}
		result := m.Step()
		if result != StepContinue {
			return result
		}
		if vector, ok := m.PendingIRQ(); ok {
			m.RaiseIRQ(vector)
		}
	}
}
