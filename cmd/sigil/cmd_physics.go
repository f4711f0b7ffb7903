package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Neumenon/sigil/sigil"
	"github.com/spf13/cobra"
)

var verifyTolerance float64

var massCmd = &cobra.Command{
	Use:   "mass <frequency>",
	Short: "Compute the mass equivalent of a frequency",
	Args:  cobra.ExactArgs(1),
	Run:   runMass,
}

var verifyCmd = &cobra.Command{
	Use:   "verify <in> <out> <fee>",
	Short: "Check three-way conservation within tolerance",
	Long: `verify accepts when |in - (out + fee)| <= tolerance. The tolerance
comes from --tolerance, falling back to the config file, then the library
default. Exit code 0 means balanced, 1 imbalanced, 2 bad input.`,
	Args: cobra.ExactArgs(3),
	Run:  runVerify,
}

func init() {
	verifyCmd.Flags().Float64Var(&verifyTolerance, "tolerance", -1, "imbalance tolerance (negative means configured default)")
}

func runMass(cmd *cobra.Command, args []string) {
	logger := initLogger()

	cfg, err := loadRuntimeConfig(flagConfig)
	if err != nil {
		logger.Error().Err(err).Msg("bad config")
		os.Exit(exitError)
	}

	frequency, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		logger.Error().Str("arg", args[0]).Msg("frequency must be a number")
		os.Exit(exitError)
	}

	mass, err := cfg.Constants.MassEquivalent(frequency)
	if err != nil {
		logger.Error().Err(err).Msg("mass computation failed")
		os.Exit(exitError)
	}

	logger.Debug().Float64("c1", cfg.Constants.C1).Float64("c2", cfg.Constants.C2).Msg("constants")
	fmt.Printf("%g\n", mass)
}

func runVerify(cmd *cobra.Command, args []string) {
	logger := initLogger()

	cfg, err := loadRuntimeConfig(flagConfig)
	if err != nil {
		logger.Error().Err(err).Msg("bad config")
		os.Exit(exitError)
	}

	values := make([]float64, 3)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			logger.Error().Str("arg", arg).Msg("amount must be a number")
			os.Exit(exitError)
		}
		values[i] = v
	}

	tolerance := cfg.Tolerance
	if verifyTolerance >= 0 {
		tolerance = verifyTolerance
	}

	verdict := sigil.Conservation{In: values[0], Out: values[1], Fee: values[2]}.Check(tolerance)
	fmt.Println(verdict.Reason)
	if !verdict.Balanced {
		os.Exit(exitImbalanced)
	}
}
