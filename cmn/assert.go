// Package cmn provides the small set of ambient, cross-package helpers used
// throughout this module: invariant assertions and a human-readable
// byte-size formatter for log messages.
package cmn

import "fmt"

// Assert panics if cond is false. Used for invariants that indicate a
// programmer error rather than a runtime condition a caller can recover
// from (e.g. a Model Table row with a non-positional id).
func Assert(cond bool) {
	if !cond {
		panic("assertion failed")
	}
}

// AssertMsg panics with msg if cond is false.
func AssertMsg(cond bool, msg string) {
	if !cond {
		panic("assertion failed: " + msg)
	}
}

// B2S formats a byte count as a human-readable string with digits decimal
// places (e.g. B2S(1536, 1) == "1.5KiB"), for use in log lines reporting
// transferred/compressed sizes.
func B2S(b int64, digits int) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%dB", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	return fmt.Sprintf("%.*f%s", digits, float64(b)/float64(div), suffixes[exp])
}
