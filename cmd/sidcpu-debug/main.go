package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"sidcpu/cpu"
)

func main() {
	var addrStr string
	var rsid bool

	rootCmd := &cobra.Command{
		Use:   "sidcpu-debug [program.bin]",
		Short: "Interactive cycle-by-cycle 6510 debugger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseAddr(addrStr)
			if err != nil {
				return fmt.Errorf("invalid --addr: %w", err)
			}

			program, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			return cpu.Debug(program, addr, rsid)
		},
	}
	rootCmd.Flags().StringVar(&addrStr, "addr", "0x0801", "load address, decimal or 0x-prefixed hex")
	rootCmd.Flags().BoolVar(&rsid, "rsid", true, "treat as RSID (NMI-driven); false for PSID (IRQ-driven)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseAddr accepts both "0x1000" and plain decimal forms.
func parseAddr(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(strings.ToLower(s), "0x") {
		s = s[2:]
		base = 16
	}
	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}
