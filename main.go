// main.go - CLI entry point: load a ROM image, detect its flavor, and run
// the matching drive loop.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagROM      string
	flagMode     string
	flagFrameHz  int
)

func buildRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "i8080run",
		Short: "Run an Intel 8080 ROM image (CP/M diagnostic or Space Invaders)",
		RunE:  runROM,
	}
	root.Flags().StringVar(&flagROM, "rom", "", "path to the ROM image (required)")
	root.Flags().StringVar(&flagMode, "mode", "auto", "auto|diagnostic|invaders")
	root.Flags().IntVar(&flagFrameHz, "frame-hz", 60, "headless host tick rate (ticks/sec); ignored by the GUI host")
	_ = root.MarkFlagRequired("rom")
	return root
}

func runROM(cmd *cobra.Command, args []string) error {
	image, err := os.ReadFile(flagROM)
	if err != nil {
		return fmt.Errorf("reading rom: %w", err)
	}

	boot, err := DetectFlavor(image)
	if err != nil {
		return err
	}
	if flagMode != "auto" {
		switch flagMode {
		case "diagnostic":
			boot.Flavor, boot.LoadAddr, boot.EntryPC = FlavorDiagnostic, 0x0100, 0x0100
		case "invaders":
			boot.Flavor, boot.LoadAddr, boot.EntryPC = FlavorInvaders, 0x0000, 0x0000
		default:
			return fmt.Errorf("unknown --mode %q", flagMode)
		}
	}
	m := NewMachineState()

	switch boot.Flavor {
	case FlavorDiagnostic:
		restore, ok := EnableRawMode()
		if ok {
			defer restore()
		}
		sink := NewStdConsole(os.Stdout)
		result := RunDiagnostic(m, image, boot, sink)
		ReportHalt(os.Stdout, result, m.lastPC, m.lastOpcode)
		return nil

	case FlavorInvaders:
		host := NewInvadersHost()
		if h, ok := host.(frameRateSetter); ok {
			h.SetFrameHz(flagFrameHz)
		}
		result, err := RunInvaders(m, image, boot, host)
		ReportHalt(os.Stdout, result, m.lastPC, m.lastOpcode)
		return err

	default:
		return fmt.Errorf("unrecognized flavor")
	}
}

func main() {
	if err := buildRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
