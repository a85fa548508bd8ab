package hwcap

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestDetectIdempotent(t *testing.T) {
	first := Detect()
	for i := 0; i < 100; i++ {
		if got := Detect(); got != first {
			t.Fatalf("call %d returned %+v, want %+v", i, got, first)
		}
	}
}

func TestDetectConcurrentSingleExecution(t *testing.T) {
	ResetDetection()
	before := probeCalls.Load()

	const callers = 64
	results := make([]Features, callers)

	var g errgroup.Group
	for i := 0; i < callers; i++ {
		i := i
		g.Go(func() error {
			results[i] = Detect()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	if got := probeCalls.Load() - before; got != 1 {
		t.Errorf("probes executed %d times, want exactly 1", got)
	}

	want := Detect()
	for i, got := range results {
		if got != want {
			t.Errorf("caller %d observed %+v, want %+v", i, got, want)
		}
	}
}

func TestDetectArchDefaults(t *testing.T) {
	f := Detect()

	if runtime.GOARCH != "amd64" && (f.AVX512 || f.AVX2 || f.PCLMUL) {
		t.Errorf("x86 flags set on %s: %+v", runtime.GOARCH, f)
	}

	// vmull detection is a stub pending a PMULL checksum kernel, so the
	// flag must read false on every architecture, arm64 included.
	if f.VMULL {
		t.Errorf("vmull reported available, detection is not implemented")
	}
}

func TestWriteDebug(t *testing.T) {
	tests := []struct {
		name  string
		f     Features
		lines []string
		vmull string
	}{
		{
			name: "nothing detected",
			f:    Features{},
			lines: []string{
				"cksum: avx512 support not detected",
				"cksum: avx2 support not detected",
				"cksum: pclmul support not detected",
			},
			vmull: "cksum: vmull support not detected",
		},
		{
			name: "avx2 and pclmul",
			f:    Features{AVX2: true, PCLMUL: true},
			lines: []string{
				"cksum: avx512 support not detected",
				"cksum: using avx2 hardware support",
				"cksum: using pclmul hardware support",
			},
			vmull: "cksum: vmull support not detected",
		},
		{
			name: "everything",
			f:    Features{AVX512: true, AVX2: true, PCLMUL: true, VMULL: true},
			lines: []string{
				"cksum: using avx512 hardware support",
				"cksum: using avx2 hardware support",
				"cksum: using pclmul hardware support",
			},
			vmull: "cksum: using vmull hardware support",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := strings.Join(tt.lines, "\n") + "\n"
			if runtime.GOARCH == "arm64" {
				want += tt.vmull + "\n"
			}

			var buf bytes.Buffer
			WriteDebug(&buf, tt.f)
			if got := buf.String(); got != want {
				t.Errorf("report mismatch:\ngot:\n%swant:\n%s", got, want)
			}
		})
	}
}
