package lanes

import (
	"math"
	"reflect"
	"testing"
)

func TestLaneCounts(t *testing.T) {
	if got := Lanes128[float32](); got != 4 {
		t.Errorf("Lanes128[float32]() = %d, want 4", got)
	}
	if got := Lanes128[float64](); got != 2 {
		t.Errorf("Lanes128[float64]() = %d, want 2", got)
	}
	if got := Lanes128[uint8](); got != 16 {
		t.Errorf("Lanes128[uint8]() = %d, want 16", got)
	}
	if got := Lanes256[int16](); got != 16 {
		t.Errorf("Lanes256[int16]() = %d, want 16", got)
	}
	if got := Lanes512[uint64](); got != 8 {
		t.Errorf("Lanes512[uint64]() = %d, want 8", got)
	}
	if got := Lanes512[int8](); got != 64 {
		t.Errorf("Lanes512[int8]() = %d, want 64", got)
	}
}

func TestNumLanes(t *testing.T) {
	if got := Zero128[uint32]().NumLanes(); got != 4 {
		t.Errorf("Zero128[uint32]().NumLanes() = %d, want 4", got)
	}
	if got := Zero256[uint8]().NumLanes(); got != 32 {
		t.Errorf("Zero256[uint8]().NumLanes() = %d, want 32", got)
	}
	if got := Zero512[float64]().NumLanes(); got != 8 {
		t.Errorf("Zero512[float64]().NumLanes() = %d, want 8", got)
	}
	if got := SplatMask256[int16](true).NumLanes(); got != 16 {
		t.Errorf("SplatMask256[int16](true).NumLanes() = %d, want 16", got)
	}
}

func TestCombineSplitRoundTrip(t *testing.T) {
	lo := Load128([]uint32{1, 2, 3, 4})
	hi := Load128([]uint32{5, 6, 7, 8})

	wide := Combine128(lo, hi)
	want := []uint32{1, 2, 3, 4, 5, 6, 7, 8}
	if !reflect.DeepEqual(wide.Data(), want) {
		t.Fatalf("Combine128() = %v, want %v", wide.Data(), want)
	}

	gotLo, gotHi := Split256(wide)
	if !reflect.DeepEqual(gotLo.Data(), lo.Data()) {
		t.Errorf("Split256 lo = %v, want %v", gotLo.Data(), lo.Data())
	}
	if !reflect.DeepEqual(gotHi.Data(), hi.Data()) {
		t.Errorf("Split256 hi = %v, want %v", gotHi.Data(), hi.Data())
	}

	full := Combine256(wide, wide)
	if full.NumLanes() != 16 {
		t.Fatalf("Combine256 lanes = %d, want 16", full.NumLanes())
	}
	backLo, backHi := Split512(full)
	if !reflect.DeepEqual(backLo.Data(), want) || !reflect.DeepEqual(backHi.Data(), want) {
		t.Errorf("Split512 halves = %v / %v, want %v twice", backLo.Data(), backHi.Data(), want)
	}
}

func TestCombineSplitMask(t *testing.T) {
	lo := MaskFromBools128[int16]([]bool{true, false, true, false, false, false, true, true})
	hi := MaskFromBools128[int16]([]bool{false, true, false, true, true, true, false, false})

	wide := CombineMask128(lo, hi)
	if wide.NumLanes() != 16 {
		t.Fatalf("CombineMask128 lanes = %d, want 16", wide.NumLanes())
	}
	for i := 0; i < 8; i++ {
		if wide.Lane(i) != lo.Lane(i) {
			t.Errorf("combined lane %d = %v, want lower half lane", i, wide.Lane(i))
		}
		if wide.Lane(8+i) != hi.Lane(i) {
			t.Errorf("combined lane %d = %v, want upper half lane", 8+i, wide.Lane(8+i))
		}
	}

	gotLo, gotHi := SplitMask256(wide)
	if !reflect.DeepEqual(gotLo.Data(), lo.Data()) || !reflect.DeepEqual(gotHi.Data(), hi.Data()) {
		t.Errorf("SplitMask256 does not invert CombineMask128")
	}

	full := CombineMask256(wide, wide)
	backLo, backHi := SplitMask512(full)
	if !reflect.DeepEqual(backLo.Data(), wide.Data()) || !reflect.DeepEqual(backHi.Data(), wide.Data()) {
		t.Errorf("SplitMask512 does not invert CombineMask256")
	}
}

func TestBytesLittleEndian(t *testing.T) {
	v := Load128([]uint32{0x04030201, 0x08070605, 0x0C0B0A09, 0x100F0E0D})
	got := v.Bytes()
	want := make([]byte, 16)
	for i := range want {
		want[i] = byte(i + 1)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Bytes() = % x, want % x", got, want)
	}

	if back := FromBytes128[uint32](got); !reflect.DeepEqual(back.Data(), v.Data()) {
		t.Errorf("FromBytes128(Bytes()) = %v, want %v", back.Data(), v.Data())
	}
}

func TestBytesFloat(t *testing.T) {
	v := Load128([]float32{1.0, -2.5, 0, float32(math.Inf(1))})
	raw := v.Bytes()
	if len(raw) != 16 {
		t.Fatalf("Bytes() length = %d, want 16", len(raw))
	}
	for i, f := range v.Data() {
		bits := math.Float32bits(f)
		for b := 0; b < 4; b++ {
			if raw[i*4+b] != byte(bits>>(8*b)) {
				t.Errorf("byte %d = %#x, want %#x", i*4+b, raw[i*4+b], byte(bits>>(8*b)))
			}
		}
	}
	if back := FromBytes128[float32](raw); !reflect.DeepEqual(back.Bytes(), raw) {
		t.Errorf("FromBytes128 round trip changed the bit patterns")
	}
}

func TestBytesWideWidths(t *testing.T) {
	v256 := Splat256[uint16](0x1234)
	raw := v256.Bytes()
	if len(raw) != 32 {
		t.Fatalf("Vec256.Bytes() length = %d, want 32", len(raw))
	}
	if raw[0] != 0x34 || raw[1] != 0x12 {
		t.Errorf("lane 0 bytes = %#x %#x, want 0x34 0x12", raw[0], raw[1])
	}

	v512 := Splat512[uint64](0x0102030405060708)
	raw = v512.Bytes()
	if len(raw) != 64 {
		t.Fatalf("Vec512.Bytes() length = %d, want 64", len(raw))
	}
	if raw[0] != 0x08 || raw[7] != 0x01 {
		t.Errorf("lane 0 bytes = %#x..%#x, want 0x08..0x01", raw[0], raw[7])
	}
}

func TestStoreStopsAtShorter(t *testing.T) {
	v := Load128([]int32{1, 2, 3, 4})

	short := make([]int32, 2)
	v.Store(short)
	if !reflect.DeepEqual(short, []int32{1, 2}) {
		t.Errorf("Store into short dst = %v, want [1 2]", short)
	}

	long := []int32{9, 9, 9, 9, 9, 9}
	v.Store(long)
	if !reflect.DeepEqual(long, []int32{1, 2, 3, 4, 9, 9}) {
		t.Errorf("Store into long dst = %v, want [1 2 3 4 9 9]", long)
	}
}

func TestDataIsNotAliasedAcrossOps(t *testing.T) {
	a := Load128([]int32{1, 2, 3, 4})
	b := Load128([]int32{10, 20, 30, 40})
	sum := Add128(a, b)
	a.Data()[0] = 99
	if sum.Data()[0] != 11 {
		t.Errorf("result aliases an input: sum lane 0 = %d after mutating a", sum.Data()[0])
	}
}
