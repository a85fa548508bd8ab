// Package hwcap detects the CPU instruction-set extensions that affect
// checksum throughput and renders the cksum --debug capability report.
//
// Detection runs lazily on the first call to Detect and is cached for
// the rest of the process lifetime using sync.Once for thread-safety.
// The probes never fail: a feature that cannot be checked on the
// current architecture simply reads false.
package hwcap

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
)

// toolName prefixes every diagnostic line, matching GNU cksum --debug.
const toolName = "cksum"

// Features is an immutable snapshot of the instruction-set extensions
// available on the running processor. The struct shape is the same on
// every architecture; flags that do not apply to the current
// instruction-set family are always false rather than absent.
type Features struct {
	AVX512 bool // x86-64 AVX-512 (requires both AVX512F and AVX512BW)
	AVX2   bool // x86-64 AVX2
	PCLMUL bool // x86-64 carry-less multiply (PCLMULQDQ)
	VMULL  bool // arm64 polynomial multiply (PMULL)
}

var (
	// detected holds the cached snapshot, published by detectOnce.
	detected   Features
	detectOnce sync.Once

	// probeCalls counts executions of the underlying probes; tests read
	// it to verify the single-execution guarantee.
	probeCalls atomic.Uint32
)

// Detect returns the capability snapshot for the current processor,
// running the hardware probes on the first call and serving the cached
// result afterwards. Safe to call from any number of goroutines: the
// probes execute exactly once per process, and callers that race the
// first call block until the fully-populated snapshot is available.
func Detect() Features {
	detectOnce.Do(func() {
		probeCalls.Add(1)
		detected = detectImpl()
	})
	return detected
}

// PrintDebug writes one diagnostic line per capability flag to stderr,
// in the fixed order avx512, avx2, pclmul, vmull. The vmull line is
// emitted only on arm64 builds; the other three appear on every
// architecture. Text and order are an external contract consumed by
// scripts that scrape cksum --debug output.
func PrintDebug(f Features) {
	WriteDebug(os.Stderr, f)
}

// WriteDebug is PrintDebug with an explicit destination.
func WriteDebug(w io.Writer, f Features) {
	writeFeature(w, "avx512", f.AVX512)
	writeFeature(w, "avx2", f.AVX2)
	writeFeature(w, "pclmul", f.PCLMUL)
	if runtime.GOARCH == "arm64" {
		writeFeature(w, "vmull", f.VMULL)
	}
}

func writeFeature(w io.Writer, name string, available bool) {
	if available {
		fmt.Fprintf(w, "%s: using %s hardware support\n", toolName, name)
	} else {
		fmt.Fprintf(w, "%s: %s support not detected\n", toolName, name)
	}
}

// ResetDetection clears the cached snapshot so the probes run again on
// the next Detect call. Intended for testing only; not safe to call
// concurrently with Detect.
func ResetDetection() {
	detectOnce = sync.Once{}
	detected = Features{}
}
