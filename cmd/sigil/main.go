// sigil - SIGIL alphabet codec CLI tool
//
// Usage:
//
//	sigil encode [--hex] <text>            Encode text to a code sequence
//	sigil decode <code>...                 Decode codes (decimal or 0x hex) to text
//	sigil table [--fingerprint]            Print the alphabet or its fingerprint
//	sigil mass <frequency>                 Mass equivalent under configured constants
//	sigil verify [--tolerance] <in> <out> <fee>  Conservation check
//
// Constants (c1, c2, floor_frequency, tolerance) come from an optional TOML
// file passed with --config; undefined keys keep the library defaults.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Exit codes shared by all subcommands.
const (
	exitSuccess    = 0
	exitImbalanced = 1
	exitError      = 2
)

var (
	flagConfig string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "sigil",
	Short: "SIGIL alphabet codec and conservation tools",
	Long: `sigil encodes text against the fixed 256-entry SIGIL alphabet,
decodes code sequences back to text, and runs the mass-equivalence and
conservation checks over the configured constants.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a TOML constants file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(massCmd)
	rootCmd.AddCommand(verifyCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitError)
	}
}
