//go:build !amd64 && !arm64

package hwcap

// detectImpl is the fallback for architectures without accelerated
// checksum kernels; every flag reads false.
func detectImpl() Features {
	return Features{}
}
