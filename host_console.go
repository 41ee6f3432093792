// host_console.go - the diagnostic flavor's console sink. Buffers
// characters the way original_source/stdio.c's console driver does
// (flush on newline or on explicit Flush), and leaves the terminal in
// whatever mode golang.org/x/term reports it started in — grounded on
// terminal_host.go's use of the same package for raw-mode lifecycle,
// generalized here to the CP/M diagnostic's output-only console.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// StdConsole writes characters to an io.Writer, buffering a line at a
// time. It implements ConsoleSink.
type StdConsole struct {
	w   *bufio.Writer
	raw bool
}

// NewStdConsole wraps w (os.Stdout in production, a bytes.Buffer in
// tests) with line buffering.
func NewStdConsole(w io.Writer) *StdConsole {
	return &StdConsole{w: bufio.NewWriter(w)}
}

// PutChar implements ConsoleSink.
func (c *StdConsole) PutChar(b byte) {
	_ = c.w.WriteByte(b)
	if b == '\n' {
		c.Flush()
	}
}

// Flush forces any buffered characters out.
func (c *StdConsole) Flush() {
	_ = c.w.Flush()
}

// EnableRawMode puts stdin in raw mode for the duration of a run, so the
// diagnostic's console doesn't fight the OS's own line discipline. Only
// meaningful when stdin is a real terminal; a no-op otherwise.
func EnableRawMode() (restore func(), ok bool) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, false
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return func() {}, false
	}
	return func() { _ = term.Restore(fd, state) }, true
}

// ReportHalt prints the final "CPU HALTED" message once the drive loop
// has returned its stop reason.
func ReportHalt(w io.Writer, reason StepResult, pc uint16, opcode uint8) {
	switch reason {
	case StepDecodeError:
		fmt.Fprintf(w, "\nCPU HALTED: decode error at PC=0x%04X opcode=0x%02X\n", pc, opcode)
	default:
		fmt.Fprintf(w, "\nCPU HALTED: %s\n", reason)
	}
}
