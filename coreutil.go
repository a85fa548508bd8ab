// Package coreutil provides two small diagnostic and formatting
// services shared by command-line file-processing tools: a one-time,
// cached probe of the CPU instruction-set extensions that affect
// checksum throughput, and GNU-compatible rendering of byte counts and
// locale-grouped integers.
//
// The two services are independent; they compose only as sibling
// library calls made by CLI front ends.
package coreutil

import (
	"io"

	"github.com/biggeezerdevelopment/coreutil-go/internal/human"
	"github.com/biggeezerdevelopment/coreutil-go/internal/hwcap"
)

// Features is an immutable snapshot of the capability flags detected
// on the running processor. See hwcap.Features.
type Features = hwcap.Features

// SizeFormat selects the scaling applied by HumanReadable.
type SizeFormat = human.SizeFormat

const (
	// Bytes renders the raw byte count with no scaling or suffix.
	Bytes = human.Bytes

	// Binary scales by powers of 1024 (--human-readable, -h).
	Binary = human.Binary

	// Decimal scales by powers of 1000 (--si).
	Decimal = human.Decimal
)

// Detect returns the capability snapshot for the current processor.
// The underlying hardware probes run exactly once per process no
// matter how many callers invoke Detect concurrently; every caller
// observes the same fully-populated snapshot.
func Detect() Features {
	return hwcap.Detect()
}

// PrintDebug writes the fixed-format capability report to stderr, one
// line per flag. Text and order match GNU cksum --debug byte for byte.
func PrintDebug(f Features) {
	hwcap.PrintDebug(f)
}

// WriteDebug is PrintDebug with an explicit destination.
func WriteDebug(w io.Writer, f Features) {
	hwcap.WriteDebug(w, f)
}

// HumanReadable formats size following the GNU human_readable
// conventions: ceiling rounding, one decimal place only below 10, and
// binary suffixes without the "i" infix.
func HumanReadable(size uint64, format SizeFormat) string {
	return human.HumanReadable(size, format)
}

// FormatWithThousandsSeparator renders number with the thousands
// separator implied by the LC_NUMERIC, LC_ALL, or LANG environment
// variables, checked in that order on every call.
func FormatWithThousandsSeparator(number uint64) string {
	return human.FormatWithThousandsSeparator(number)
}

// GroupingSeparator returns the separator the locale environment
// currently implies: 0 (no grouping), '.', or ','.
func GroupingSeparator() byte {
	return human.GroupingSeparator()
}

// SeparatorForLocale maps a locale name to its thousands separator
// without consulting the environment.
func SeparatorForLocale(locale string) byte {
	return human.SeparatorForLocale(locale)
}

// FormatGrouped renders number with an explicit separator, bypassing
// the locale environment. A zero separator disables grouping.
func FormatGrouped(number uint64, sep byte) string {
	return human.FormatGrouped(number, sep)
}
