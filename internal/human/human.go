// Package human renders byte counts and plain integers the way GNU
// coreutils presents them: short human-readable magnitudes with the
// block-size suffix conventions of human_readable(), and decimal digit
// strings grouped with a locale-appropriate thousands separator.
//
// Every function here is pure and infallible: all inputs, including
// malformed locale values, map to a defined output.
package human

import (
	"math"
	"strconv"
)

// SizeFormat selects the scaling HumanReadable applies to a magnitude.
type SizeFormat int

const (
	// Bytes renders the raw byte count with no scaling or suffix.
	Bytes SizeFormat = iota

	// Binary scales by powers of 1024 (--human-readable, -h).
	Binary

	// Decimal scales by powers of 1000 (--si).
	Decimal
)

// Suffix ladders for each scaling mode. Following GNU convention the
// "i" infix of the binary prefixes is never shown (Ki renders as K),
// and decimal kilo is lowercase while binary Kibi is uppercase.
var (
	binarySuffixes  = [...]string{"K", "M", "G", "T", "P", "E"}
	decimalSuffixes = [...]string{"k", "M", "G", "T", "P", "E"}
)

// HumanReadable formats size with the GNU human_readable conventions:
//  1. One decimal place is shown if and only if the scaled value is
//     smaller than 10.
//  2. Values always round up, never to nearest; sizes are never
//     under-reported.
//  3. Sizes below one scaling unit render as plain digits with no
//     suffix and no decimal point.
func HumanReadable(size uint64, format SizeFormat) string {
	switch format {
	case Binary:
		return formatScaled(size, 1024, binarySuffixes[:])
	case Decimal:
		return formatScaled(size, 1000, decimalSuffixes[:])
	default:
		return strconv.FormatUint(size, 10)
	}
}

func formatScaled(size uint64, base float64, suffixes []string) string {
	if size < uint64(base) {
		return strconv.FormatUint(size, 10)
	}

	v := float64(size)
	step := 0
	for v >= base && step < len(suffixes) {
		v /= base
		step++
	}
	suffix := suffixes[step-1]

	// The two rounding branches form one decision: check whether
	// rounding up to the first decimal already reaches 10.0, because
	// 9.81 must read "9.9", not "10.0".
	if math.Ceil(10*v) >= 100 {
		return strconv.FormatFloat(math.Ceil(v), 'f', 0, 64) + suffix
	}
	return strconv.FormatFloat(math.Ceil(10*v)/10, 'f', 1, 64) + suffix
}
