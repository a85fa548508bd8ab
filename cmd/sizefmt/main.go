// Command sizefmt prints integers the way GNU file utilities report
// sizes: scaled human-readable magnitudes or locale-grouped digit
// strings.
//
// Usage:
//
//	sizefmt [flags] N ...
//
// Examples:
//
//	sizefmt 133456345          -> 128M
//	sizefmt -si 133456345      -> 134M
//	sizefmt -b 133456345       -> 133456345
//	sizefmt -g 1234567         -> 1,234,567
//	sizefmt -debug 8500        also prints the CPU capability report
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	coreutil "github.com/biggeezerdevelopment/coreutil-go"
)

func main() {
	si := flag.Bool("si", false, "scale by powers of 1000 instead of 1024")
	raw := flag.Bool("b", false, "print raw byte counts without scaling")
	group := flag.Bool("g", false, "group digits with the locale thousands separator")
	debug := flag.Bool("debug", false, "print the CPU capability report to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sizefmt [flags] N ...\n\n")
		fmt.Fprintf(os.Stderr, "Prints integers as human-readable sizes or grouped digit strings.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *debug {
		coreutil.PrintDebug(coreutil.Detect())
	}

	if flag.NArg() == 0 && !*debug {
		flag.Usage()
		os.Exit(2)
	}

	format := coreutil.Binary
	switch {
	case *raw:
		format = coreutil.Bytes
	case *si:
		format = coreutil.Decimal
	}

	exit := 0
	for _, arg := range flag.Args() {
		n, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sizefmt: invalid number %q\n", arg)
			exit = 1
			continue
		}
		if *group {
			fmt.Println(coreutil.FormatWithThousandsSeparator(n))
		} else {
			fmt.Println(coreutil.HumanReadable(n, format))
		}
	}
	os.Exit(exit)
}
