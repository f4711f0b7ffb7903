package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Neumenon/sigil/sigil"
	"github.com/spf13/cobra"
)

var (
	encodeHex        bool
	tableFingerprint bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode <text>",
	Short: "Encode text into a SIGIL code sequence",
	Args:  cobra.ExactArgs(1),
	Run:   runEncode,
}

var decodeCmd = &cobra.Command{
	Use:   "decode <code>...",
	Short: "Decode a code sequence back to text",
	Args:  cobra.MinimumNArgs(1),
	Run:   runDecode,
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the alphabet, or its artifact fingerprint",
	Args:  cobra.NoArgs,
	Run:   runTable,
}

func init() {
	encodeCmd.Flags().BoolVar(&encodeHex, "hex", false, "print codes as two-digit hex")
	tableCmd.Flags().BoolVar(&tableFingerprint, "fingerprint", false, "print the sha256 table fingerprint only")
}

func runEncode(cmd *cobra.Command, args []string) {
	logger := initLogger()

	msg, err := sigil.Default().Encode(args[0])
	if err != nil {
		var encErr *sigil.EncodeError
		if errors.As(err, &encErr) {
			logger.Error().
				Str("unit", encErr.Unit).
				Int("index", encErr.Index).
				Int("offset", encErr.Offset).
				Msg("unknown symbol")
		} else {
			logger.Error().Err(err).Msg("encode failed")
		}
		os.Exit(exitError)
	}

	parts := make([]string, len(msg))
	for i, sym := range msg {
		if encodeHex {
			parts[i] = fmt.Sprintf("%02x", sym.Code)
		} else {
			parts[i] = strconv.Itoa(int(sym.Code))
		}
	}
	fmt.Println(strings.Join(parts, " "))
}

func runDecode(cmd *cobra.Command, args []string) {
	logger := initLogger()

	codes := make([]byte, len(args))
	for i, arg := range args {
		code, err := parseCode(arg)
		if err != nil {
			logger.Error().Str("arg", arg).Err(err).Msg("bad code argument")
			os.Exit(exitError)
		}
		codes[i] = code
	}

	msg, err := sigil.Default().Decode(codes)
	if err != nil {
		logger.Error().Err(err).Msg("decode failed")
		os.Exit(exitError)
	}
	fmt.Println(msg.Text())
}

// parseCode accepts decimal or 0x-prefixed hex in [0,255].
func parseCode(s string) (byte, error) {
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("code %d outside [0,255]", v)
	}
	return byte(v), nil
}

func runTable(cmd *cobra.Command, args []string) {
	tbl := sigil.Default()
	if tableFingerprint {
		fmt.Println(tbl.Fingerprint())
		return
	}
	fmt.Print(tbl.Dump())
}
