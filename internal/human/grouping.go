package human

import (
	"os"
	"strconv"
	"strings"
)

// groupSize is the number of digits per thousands group.
const groupSize = 3

// localeVars are the environment variables consulted for the grouping
// separator, in precedence order. The first one that is set wins.
var localeVars = [...]string{"LC_NUMERIC", "LC_ALL", "LANG"}

// periodLangs are the language codes whose locales group digits with a
// period (de_DE, fr_FR, it_IT, ...). Compared case-sensitively against
// the part of the locale name before the first underscore.
var periodLangs = [...]string{"de", "fr", "it", "es", "nl", "pt", "da", "sv", "no", "fi"}

// GroupingSeparator returns the thousands separator implied by the
// process locale environment: 0 for the C/POSIX locales (no grouping),
// '.' for the common European locales, and ',' for everything else,
// including the case where none of the variables is set.
//
// The environment is re-read on every call, never cached. A concurrent
// environment mutation yields old-or-new for that one call.
func GroupingSeparator() byte {
	for _, name := range localeVars {
		if locale, ok := os.LookupEnv(name); ok {
			return SeparatorForLocale(locale)
		}
	}
	return ','
}

// SeparatorForLocale maps a locale name such as "de_DE.UTF-8" to its
// thousands separator without consulting the environment. A zero byte
// means no grouping. Unrecognized values fall back to the comma
// default rather than failing.
func SeparatorForLocale(locale string) byte {
	if locale == "C" || locale == "POSIX" || strings.HasPrefix(locale, "C.") {
		return 0
	}
	if lang, _, ok := strings.Cut(locale, "_"); ok {
		for _, code := range periodLangs {
			if lang == code {
				return '.'
			}
		}
	}
	return ','
}

// FormatWithThousandsSeparator renders number with the separator
// selected from the locale environment (see GroupingSeparator).
func FormatWithThousandsSeparator(number uint64) string {
	return FormatGrouped(number, GroupingSeparator())
}

// FormatGrouped renders number with an explicit separator inserted
// every three digits counting from the least-significant digit. A zero
// separator disables grouping. Numbers of three digits or fewer are
// returned unchanged; the output never carries a leading or trailing
// separator.
func FormatGrouped(number uint64, sep byte) string {
	digits := strconv.FormatUint(number, 10)
	if sep == 0 || len(digits) <= groupSize {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + (len(digits)-1)/groupSize)
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%groupSize == 0 {
			b.WriteByte(sep)
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}
