package coreutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestPublicSurface(t *testing.T) {
	if got := HumanReadable(8500, Binary); got != "8.4K" {
		t.Errorf("HumanReadable(8500, Binary) = %q, want %q", got, "8.4K")
	}
	if got := HumanReadable(8500, Decimal); got != "8.5k" {
		t.Errorf("HumanReadable(8500, Decimal) = %q, want %q", got, "8.5k")
	}
	if got := HumanReadable(8500, Bytes); got != "8500" {
		t.Errorf("HumanReadable(8500, Bytes) = %q, want %q", got, "8500")
	}
	if got := FormatGrouped(1234567, '.'); got != "1.234.567" {
		t.Errorf("FormatGrouped(1234567, '.') = %q, want %q", got, "1.234.567")
	}
	if got := SeparatorForLocale("POSIX"); got != 0 {
		t.Errorf("SeparatorForLocale(POSIX) = %q, want no separator", got)
	}
}

func TestDetectStable(t *testing.T) {
	first := Detect()
	if got := Detect(); got != first {
		t.Errorf("second Detect returned %+v, want %+v", got, first)
	}
}

func TestWriteDebugReport(t *testing.T) {
	var buf bytes.Buffer
	WriteDebug(&buf, Detect())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) < 3 {
		t.Fatalf("report has %d lines, want at least 3:\n%s", len(lines), buf.String())
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "cksum: ") {
			t.Errorf("line %q missing tool prefix", line)
		}
	}
}
