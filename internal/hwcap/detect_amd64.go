//go:build amd64

package hwcap

import (
	"golang.org/x/sys/cpu"
)

// detectImpl probes x86-64 feature flags via golang.org/x/sys/cpu,
// which provides portable CPUID access.
//
// The 512-bit CRC kernels need both the foundation and byte/word
// AVX-512 subsets, so the avx512 flag requires AVX512F and AVX512BW.
func detectImpl() Features {
	return Features{
		AVX512: cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW,
		AVX2:   cpu.X86.HasAVX2,
		PCLMUL: cpu.X86.HasPCLMULQDQ,
	}
}
