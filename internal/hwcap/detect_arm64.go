//go:build arm64

package hwcap

// detectImpl probes arm64 feature flags.
//
// VMULL is deliberately left false: there is no PMULL-accelerated
// checksum kernel yet, and the flag must not report support that
// nothing uses.
// TODO: report golang.org/x/sys/cpu ARM64.HasPMULL once the vmull CRC
// kernel lands.
func detectImpl() Features {
	return Features{}
}
