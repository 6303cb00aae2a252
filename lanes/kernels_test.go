package lanes

import (
	"fmt"
	"math"
	"reflect"
	"testing"
)

// The kernel tests run every backend on the same inputs and demand the
// fallback's bytes. The accelerated sets model their instruction set's
// strategy, so this is the one place where a modeling mistake shows up
// directly instead of through some exported wrapper.

func patternBytes(n int, seed byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = seed + byte(i)*7 + 3
	}
	return out
}

func canonicalMaskBytes(truth []bool, elemSize int) []byte {
	out := make([]byte, len(truth)*elemSize)
	for i, set := range truth {
		if !set {
			continue
		}
		for b := 0; b < elemSize; b++ {
			out[i*elemSize+b] = 0xFF
		}
	}
	return out
}

func alternating(n, period int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = (i/period)%2 == 0
	}
	return out
}

var kernelWidths = []int{16, 32, 64}
var kernelElemSizes = []int{1, 2, 4, 8}

func TestZipKernelsAgree(t *testing.T) {
	for _, k := range allKernels {
		t.Run(k.name, func(t *testing.T) {
			for _, width := range kernelWidths {
				for _, elem := range kernelElemSizes {
					a := patternBytes(width, 1)
					b := patternBytes(width, 101)
					label := fmt.Sprintf("width %d elem %d", width, elem)

					if got, want := k.zipLow(a, b, elem), fallbackKernels.zipLow(a, b, elem); !reflect.DeepEqual(got, want) {
						t.Errorf("zipLow %s = % x, want % x", label, got, want)
					}
					if got, want := k.zipHigh(a, b, elem), fallbackKernels.zipHigh(a, b, elem); !reflect.DeepEqual(got, want) {
						t.Errorf("zipHigh %s = % x, want % x", label, got, want)
					}
					if got, want := k.unzipLow(a, b, elem), fallbackKernels.unzipLow(a, b, elem); !reflect.DeepEqual(got, want) {
						t.Errorf("unzipLow %s = % x, want % x", label, got, want)
					}
					if got, want := k.unzipHigh(a, b, elem), fallbackKernels.unzipHigh(a, b, elem); !reflect.DeepEqual(got, want) {
						t.Errorf("unzipHigh %s = % x, want % x", label, got, want)
					}
				}
			}
		})
	}
}

func TestSelectBitsKernelsAgree(t *testing.T) {
	for _, k := range allKernels {
		t.Run(k.name, func(t *testing.T) {
			for _, width := range kernelWidths {
				for _, elem := range kernelElemSizes {
					lanes := width / elem
					a := patternBytes(width, 11)
					b := patternBytes(width, 211)
					for _, period := range []int{1, 2} {
						m := canonicalMaskBytes(alternating(lanes, period), elem)
						got := k.selectBits(m, a, b)
						want := fallbackKernels.selectBits(m, a, b)
						if !reflect.DeepEqual(got, want) {
							t.Errorf("selectBits width %d elem %d period %d = % x, want % x", width, elem, period, got, want)
						}
					}
				}
			}
		})
	}
}

func TestSelectBitsPicksWholeLanes(t *testing.T) {
	a := patternBytes(16, 40)
	b := patternBytes(16, 140)
	m := canonicalMaskBytes([]bool{true, false, false, true}, 4)
	for _, k := range allKernels {
		got := k.selectBits(m, a, b)
		for i := 0; i < 16; i++ {
			want := b[i]
			if lane := i / 4; lane == 0 || lane == 3 {
				want = a[i]
			}
			if got[i] != want {
				t.Errorf("%s: selectBits byte %d = %#x, want %#x", k.name, i, got[i], want)
			}
		}
	}
}

func TestMaskReduceKernelsAgree(t *testing.T) {
	for _, k := range allKernels {
		t.Run(k.name, func(t *testing.T) {
			for _, width := range kernelWidths {
				for _, elem := range kernelElemSizes {
					lanes := width / elem
					for _, tc := range []struct {
						name     string
						truth    []bool
						any, all bool
					}{
						{"none", make([]bool, lanes), false, false},
						{"all", alternating(lanes, lanes), true, true},
						{"first", firstOnly(lanes), true, lanes == 1},
						{"alternate", alternating(lanes, 1), true, lanes == 1},
					} {
						m := canonicalMaskBytes(tc.truth, elem)
						if got := k.maskAny(m, elem); got != tc.any {
							t.Errorf("maskAny(%s) width %d elem %d = %v, want %v", tc.name, width, elem, got, tc.any)
						}
						if got := k.maskAll(m, elem); got != tc.all {
							t.Errorf("maskAll(%s) width %d elem %d = %v, want %v", tc.name, width, elem, got, tc.all)
						}
					}
				}
			}
		})
	}
}

func firstOnly(n int) []bool {
	out := make([]bool, n)
	out[0] = true
	return out
}

func TestSlide128KernelsAgree(t *testing.T) {
	hi := patternBytes(16, 60)
	lo := patternBytes(16, 160)
	for _, k := range allKernels {
		for r := 0; r < 16; r++ {
			got := k.slide128(hi, lo, r)
			want := fallbackKernels.slide128(hi, lo, r)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("%s: slide128(r=%d) = % x, want % x", k.name, r, got, want)
			}
		}
	}
}

func TestInterleaveKernelsAgree(t *testing.T) {
	src := patternBytes(64, 5)
	for _, k := range allKernels {
		t.Run(k.name, func(t *testing.T) {
			for _, elem := range kernelElemSizes {
				load := k.loadInterleaved4(src, elem)
				want := fallbackKernels.loadInterleaved4(src, elem)
				if !reflect.DeepEqual(load, want) {
					t.Errorf("loadInterleaved4 elem %d = % x, want % x", elem, load, want)
				}
				store := k.storeInterleaved4(load, elem)
				if !reflect.DeepEqual(store, src) {
					t.Errorf("storeInterleaved4(loadInterleaved4(src)) elem %d = % x, want src", elem, store)
				}
			}
		})
	}
}

func TestWidenNarrowKernelsAgree(t *testing.T) {
	bytes := []uint8{0, 1, 2, 3, 127, 128, 200, 255, 16, 17, 18, 19, 250, 251, 252, 253}
	words := []uint16{
		0, 1, 0x00FF, 0x0100, 0x0101, 0xABCD, 0xFF00, 0xFFFF,
		2, 3, 0x0080, 0x7FFF, 0x8000, 0x8001, 0x1234, 0xFEDC,
	}
	for _, k := range allKernels {
		if got, want := k.widenU8(bytes), fallbackKernels.widenU8(bytes); !reflect.DeepEqual(got, want) {
			t.Errorf("%s: widenU8 = %v, want %v", k.name, got, want)
		}
		if got, want := k.narrowU16(words), fallbackKernels.narrowU16(words); !reflect.DeepEqual(got, want) {
			t.Errorf("%s: narrowU16 = %v, want %v", k.name, got, want)
		}
		round := k.narrowU16(k.widenU8(bytes))
		if !reflect.DeepEqual(round, bytes) {
			t.Errorf("%s: narrowU16(widenU8(x)) = %v, want x", k.name, round)
		}
	}
}

func TestPreciseConversionKernelsAgree(t *testing.T) {
	// The precise forms must agree everywhere, out-of-range and NaN
	// included. That is their whole contract.
	src := []float32{
		0, 1, -1, 0.5, -0.5, 42.7, -42.7,
		float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1)),
		5e9, -5e9, 4294967040, 2147483648.0, -2147483648.0, 2147483520,
	}
	for _, k := range allKernels {
		if got, want := k.cvtF32ToU32Precise(src), fallbackKernels.cvtF32ToU32Precise(src); !reflect.DeepEqual(got, want) {
			t.Errorf("%s: cvtF32ToU32Precise = %v, want %v", k.name, got, want)
		}
		if got, want := k.cvtF32ToI32Precise(src), fallbackKernels.cvtF32ToI32Precise(src); !reflect.DeepEqual(got, want) {
			t.Errorf("%s: cvtF32ToI32Precise = %v, want %v", k.name, got, want)
		}
	}
}

func TestFastConversionKernelsAgreeInRange(t *testing.T) {
	// The native forms only promise anything for in-range inputs.
	unsignedSrc := []float32{0, 1, 0.5, 42.7, 100, 3.999, 4294967040, 65535.9}
	signedSrc := []float32{0, 1, -1, 0.5, -0.5, 42.7, -42.7, 2147483520, -2147483648.0, 3.999, -3.999, 100}
	for _, k := range allKernels {
		if got, want := k.cvtF32ToU32(unsignedSrc), fallbackKernels.cvtF32ToU32(unsignedSrc); !reflect.DeepEqual(got, want) {
			t.Errorf("%s: cvtF32ToU32 in range = %v, want %v", k.name, got, want)
		}
		if got, want := k.cvtF32ToI32(signedSrc), fallbackKernels.cvtF32ToI32(signedSrc); !reflect.DeepEqual(got, want) {
			t.Errorf("%s: cvtF32ToI32 in range = %v, want %v", k.name, got, want)
		}
	}
}

func TestIntToFloatConversionKernelsAgree(t *testing.T) {
	u32 := []uint32{0, 1, 2, 16777216, 16777217, 2147483648, 4294967295}
	i32 := []int32{0, 1, -1, 16777217, -16777217, math.MaxInt32, math.MinInt32}
	for _, k := range allKernels {
		gotU := k.cvtU32ToF32(u32)
		wantU := fallbackKernels.cvtU32ToF32(u32)
		for i := range wantU {
			if math.Float32bits(gotU[i]) != math.Float32bits(wantU[i]) {
				t.Errorf("%s: cvtU32ToF32 lane %d = %v, want %v", k.name, i, gotU[i], wantU[i])
			}
		}
		gotI := k.cvtI32ToF32(i32)
		wantI := fallbackKernels.cvtI32ToF32(i32)
		for i := range wantI {
			if math.Float32bits(gotI[i]) != math.Float32bits(wantI[i]) {
				t.Errorf("%s: cvtI32ToF32 lane %d = %v, want %v", k.name, i, gotI[i], wantI[i])
			}
		}
	}
}
