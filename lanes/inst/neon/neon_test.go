package neon

import (
	"math"
	"reflect"
	"testing"
)

func TestVcvtU32F32Saturates(t *testing.T) {
	src := []float32{
		42.9,
		float32(math.NaN()),
		-7,
		4294967296.0, // 2^32
		4294967040,   // largest float32 below 2^32
		float32(math.Inf(1)),
		0.5,
	}
	want := []uint32{42, 0, 0, math.MaxUint32, 4294967040, math.MaxUint32, 0}
	if got := VcvtU32F32(src); !reflect.DeepEqual(got, want) {
		t.Errorf("VcvtU32F32(%v) = %v, want %v", src, got, want)
	}
}

func TestVcvtS32F32Saturates(t *testing.T) {
	src := []float32{
		-42.9,
		float32(math.NaN()), // zero here, unlike the x86 indefinite
		2147483648.0,
		-2147483648.0,
		2147483520, // largest float32 below 2^31
		float32(math.Inf(-1)),
	}
	want := []int32{-42, 0, math.MaxInt32, math.MinInt32, 2147483520, math.MinInt32}
	if got := VcvtS32F32(src); !reflect.DeepEqual(got, want) {
		t.Errorf("VcvtS32F32(%v) = %v, want %v", src, got, want)
	}
}

func TestVextWindow(t *testing.T) {
	a := make([]byte, 16)
	b := make([]byte, 16)
	for i := range a {
		a[i] = byte(i)
		b[i] = byte(16 + i)
	}

	got := Vext(a, b, 3)
	want := []byte{3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Vext(r=3) = %v, want %v", got, want)
	}
	if got := Vext(a, b, 0); !reflect.DeepEqual(got, a) {
		t.Errorf("Vext(r=0) = %v, want a unchanged", got)
	}
}

func TestVbsl(t *testing.T) {
	m := []byte{0xFF, 0x00, 0x0F, 0xA5}
	a := []byte{0x12, 0x34, 0xFF, 0xFF}
	b := []byte{0xAB, 0xCD, 0x00, 0x00}

	got := Vbsl(m, a, b)
	want := []byte{0x12, 0xCD, 0x0F, 0xA5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Vbsl = %#x, want %#x", got, want)
	}
}

func TestVmaxvVminv(t *testing.T) {
	v := []byte{7, 1, 255, 0, 9, 9, 3, 128, 64, 32, 16, 8, 4, 2, 200, 100}
	if got := VmaxvU8(v); got != 255 {
		t.Errorf("VmaxvU8 = %d, want 255", got)
	}
	if got := VminvU8(v); got != 0 {
		t.Errorf("VminvU8 = %d, want 0", got)
	}
}

func TestVmovnWraps(t *testing.T) {
	src := []uint16{0x0000, 0x00FF, 0x0100, 0xABCD, 0xFFFF, 0x8001, 0x0042, 0x1234}
	want := []uint8{0x00, 0xFF, 0x00, 0xCD, 0xFF, 0x01, 0x42, 0x34}
	if got := VmovnU16(src); !reflect.DeepEqual(got, want) {
		t.Errorf("VmovnU16(%#x) = %#x, want %#x", src, got, want)
	}
}

func TestVld4DeinterleavesStreams(t *testing.T) {
	// 16 4-byte structures; field k of structure j carries 50*k + j.
	src := make([]byte, 64)
	for j := 0; j < 16; j++ {
		for k := 0; k < 4; k++ {
			src[j*4+k] = byte(50*k + j)
		}
	}

	got := Vld4(src, 1)
	for k := 0; k < 4; k++ {
		for j := 0; j < 16; j++ {
			if want := byte(50*k + j); got[k*16+j] != want {
				t.Errorf("stream %d element %d = %d, want %d", k, j, got[k*16+j], want)
			}
		}
	}

	if back := Vst4(got, 1); !reflect.DeepEqual(back, src) {
		t.Errorf("Vst4(Vld4(src)) = %v, want src", back)
	}
}
