package lanes

import "github.com/veclane/go-lanes/lanes/inst/neon"

// NEON kernels. AArch64 permutes operate on whole 128-bit registers
// with no in-lane split, so the 128-bit forms map one-to-one and wider
// vectors decompose through the generic rules. The conversions
// saturate natively with NaN going to zero, which makes the precise
// forms the same as the fast ones.

var neonKernels kernelSet

// Assigned in init rather than in the declaration: the fallback paths of
// the shuffle functions below refer back to neonKernels, which would
// otherwise be an initialization cycle.
func init() {
	neonKernels = kernelSet{
		name:      "neon",
		zipLow:    neonZipLow,
		zipHigh:   neonZipHigh,
		unzipLow:  neonUnzipLow,
		unzipHigh: neonUnzipHigh,

		selectBits: neon.Vbsl,
		slide128:   neonSlide128,
		maskAny:    neonMaskAny,
		maskAll:    neonMaskAll,

		loadInterleaved4:  neon.Vld4,
		storeInterleaved4: neon.Vst4,

		widenU8:   neon.VmovlU8,
		narrowU16: neon.VmovnU16,

		cvtF32ToU32:        neon.VcvtU32F32,
		cvtF32ToU32Precise: neon.VcvtU32F32,
		cvtF32ToI32:        neon.VcvtS32F32,
		cvtF32ToI32Precise: neon.VcvtS32F32,
		cvtU32ToF32:        neon.VcvtF32U32,
		cvtI32ToF32:        neon.VcvtF32S32,
	}
}

func neonZipLow(a, b []byte, elemSize int) []byte {
	if len(a) == 16 {
		return neon.Vzip1(a, b, elemSize)
	}
	return genericZipLow(&neonKernels, a, b, elemSize)
}

func neonZipHigh(a, b []byte, elemSize int) []byte {
	if len(a) == 16 {
		return neon.Vzip2(a, b, elemSize)
	}
	return genericZipHigh(&neonKernels, a, b, elemSize)
}

func neonUnzipLow(a, b []byte, elemSize int) []byte {
	if len(a) == 16 {
		return neon.Vuzp1(a, b, elemSize)
	}
	return genericUnzipLow(&neonKernels, a, b, elemSize)
}

func neonUnzipHigh(a, b []byte, elemSize int) []byte {
	if len(a) == 16 {
		return neon.Vuzp2(a, b, elemSize)
	}
	return genericUnzipHigh(&neonKernels, a, b, elemSize)
}

func neonSlide128(hi, lo []byte, r int) []byte {
	// EXT reads its first operand starting at the immediate and fills
	// from the second, so the window order is [lo, hi].
	return neon.Vext(lo, hi, r)
}

func neonMaskAny(m []byte, _ int) bool {
	// UMAXV across bytes: any true lane raises the maximum above zero.
	for off := 0; off < len(m); off += 16 {
		if neon.VmaxvU8(m[off:off+16]) != 0 {
			return true
		}
	}
	return false
}

func neonMaskAll(m []byte, _ int) bool {
	// UMINV across bytes: canonical true lanes keep every byte 0xFF.
	for off := 0; off < len(m); off += 16 {
		if neon.VminvU8(m[off:off+16]) != 0xFF {
			return false
		}
	}
	return true
}
