package sigil

import (
	"bytes"
	"fmt"
)

// Dump renders the table as an aligned listing, one row per code. Intended
// for inspection tooling; the format is not a stable artifact (use
// Fingerprint to pin a table version).
func (t *Table) Dump() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%4s  %-5s  %12s  %3s  %5s\n", "code", "text", "frequency", "amp", "state")
	for code := 0; code < TableSize; code++ {
		sym := t.byCode[code]
		if sym.Text == "" {
			fmt.Fprintf(&buf, "%4d  %-5s  %12s  %3s  %5s\n", code, "-", "-", "-", "-")
			continue
		}
		fmt.Fprintf(&buf, "%4d  %-5q  %12.4f  %3d  %5d\n", code, sym.Text, sym.Frequency, sym.Amplitude, sym.State)
	}
	return buf.String()
}
