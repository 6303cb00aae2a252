package lanes

import (
	"reflect"
	"testing"
)

func TestZip128(t *testing.T) {
	a := Load128([]uint32{0, 1, 2, 3})
	b := Load128([]uint32{4, 5, 6, 7})

	if got, want := ZipLow128(a, b).Data(), []uint32{0, 4, 1, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("ZipLow128() = %v, want %v", got, want)
	}
	if got, want := ZipHigh128(a, b).Data(), []uint32{2, 6, 3, 7}; !reflect.DeepEqual(got, want) {
		t.Errorf("ZipHigh128() = %v, want %v", got, want)
	}
}

func TestZipBytes(t *testing.T) {
	av := make([]uint8, 16)
	bv := make([]uint8, 16)
	for i := range av {
		av[i] = uint8(i)
		bv[i] = uint8(16 + i)
	}
	a, b := Load128(av), Load128(bv)

	low := ZipLow128(a, b).Data()
	high := ZipHigh128(a, b).Data()
	for i := 0; i < 8; i++ {
		if low[2*i] != av[i] || low[2*i+1] != bv[i] {
			t.Errorf("ZipLow128 pair %d = (%d, %d), want (%d, %d)", i, low[2*i], low[2*i+1], av[i], bv[i])
		}
		if high[2*i] != av[8+i] || high[2*i+1] != bv[8+i] {
			t.Errorf("ZipHigh128 pair %d = (%d, %d), want (%d, %d)", i, high[2*i], high[2*i+1], av[8+i], bv[8+i])
		}
	}
}

func TestZipWideWidths(t *testing.T) {
	a := Load256([]uint32{0, 1, 2, 3, 4, 5, 6, 7})
	b := Load256([]uint32{10, 11, 12, 13, 14, 15, 16, 17})

	// Zips interleave across the whole vector width, not per 128-bit block.
	if got, want := ZipLow256(a, b).Data(), []uint32{0, 10, 1, 11, 2, 12, 3, 13}; !reflect.DeepEqual(got, want) {
		t.Errorf("ZipLow256() = %v, want %v", got, want)
	}
	if got, want := ZipHigh256(a, b).Data(), []uint32{4, 14, 5, 15, 6, 16, 7, 17}; !reflect.DeepEqual(got, want) {
		t.Errorf("ZipHigh256() = %v, want %v", got, want)
	}

	x := Load512([]uint64{0, 1, 2, 3, 4, 5, 6, 7})
	y := Load512([]uint64{8, 9, 10, 11, 12, 13, 14, 15})
	if got, want := ZipLow512(x, y).Data(), []uint64{0, 8, 1, 9, 2, 10, 3, 11}; !reflect.DeepEqual(got, want) {
		t.Errorf("ZipLow512() = %v, want %v", got, want)
	}
}

func TestUnzip128(t *testing.T) {
	a := Load128([]uint32{0, 1, 2, 3})
	b := Load128([]uint32{4, 5, 6, 7})

	if got, want := UnzipLow128(a, b).Data(), []uint32{0, 2, 4, 6}; !reflect.DeepEqual(got, want) {
		t.Errorf("UnzipLow128() = %v, want %v", got, want)
	}
	if got, want := UnzipHigh128(a, b).Data(), []uint32{1, 3, 5, 7}; !reflect.DeepEqual(got, want) {
		t.Errorf("UnzipHigh128() = %v, want %v", got, want)
	}
}

func TestUnzipInvertsZip(t *testing.T) {
	av := []int16{1, -2, 3, -4, 5, -6, 7, -8}
	bv := []int16{10, 20, 30, 40, 50, 60, 70, 80}
	a, b := Load128(av), Load128(bv)

	zl := ZipLow128(a, b)
	zh := ZipHigh128(a, b)
	if got := UnzipLow128(zl, zh).Data(); !reflect.DeepEqual(got, av) {
		t.Errorf("UnzipLow128(zip halves) = %v, want %v", got, av)
	}
	if got := UnzipHigh128(zl, zh).Data(); !reflect.DeepEqual(got, bv) {
		t.Errorf("UnzipHigh128(zip halves) = %v, want %v", got, bv)
	}
}

func TestSlide128(t *testing.T) {
	a := Load128([]uint32{10, 11, 12, 13})
	b := Load128([]uint32{0, 1, 2, 3})

	tests := []struct {
		shift uint
		want  []uint32
	}{
		{0, []uint32{0, 1, 2, 3}},
		{1, []uint32{1, 2, 3, 10}},
		{2, []uint32{2, 3, 10, 11}},
		{3, []uint32{3, 10, 11, 12}},
		{4, []uint32{0, 1, 2, 3}}, // saturates back to b
		{9, []uint32{0, 1, 2, 3}},
	}
	for _, tt := range tests {
		if got := Slide128(a, b, tt.shift).Data(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Slide128(shift=%d) = %v, want %v", tt.shift, got, tt.want)
		}
	}
}

func TestSlideWideWidths(t *testing.T) {
	av := make([]uint8, 64)
	bv := make([]uint8, 64)
	for i := range av {
		av[i] = uint8(100 + i)
		bv[i] = uint8(i)
	}
	a, b := Load512(av), Load512(bv)

	got := Slide512(a, b, 3).Data()
	want := append(append([]uint8{}, bv[3:]...), av[:3]...)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Slide512(shift=3) = %v, want %v", got, want)
	}

	f := Load256([]float64{1, 2, 3, 4})
	g := Load256([]float64{5, 6, 7, 8})
	if got, want := Slide256(f, g, 2).Data(), []float64{7, 8, 1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("Slide256(shift=2) = %v, want %v", got, want)
	}
}

func TestSlideMask(t *testing.T) {
	a := MaskFromBools128[uint32]([]bool{true, true, true, true})
	b := MaskFromBools128[uint32]([]bool{false, false, false, true})

	got := SlideMask128(a, b, 2)
	want := []bool{false, true, true, true}
	for i := range want {
		if got.Lane(i) != want[i] {
			t.Errorf("SlideMask128(shift=2) lane %d = %v, want %v", i, got.Lane(i), want[i])
		}
	}
}

func TestSlideWithinBlocks(t *testing.T) {
	a := Load256([]uint32{20, 21, 22, 23, 24, 25, 26, 27})
	b := Load256([]uint32{0, 1, 2, 3, 4, 5, 6, 7})

	tests := []struct {
		shift uint
		want  []uint32
	}{
		{0, []uint32{0, 1, 2, 3, 4, 5, 6, 7}},
		{1, []uint32{1, 2, 3, 20, 5, 6, 7, 24}},
		{3, []uint32{3, 20, 21, 22, 7, 24, 25, 26}},
		// Saturation uses the block's lane count, not the vector's.
		{4, []uint32{0, 1, 2, 3, 4, 5, 6, 7}},
		{7, []uint32{0, 1, 2, 3, 4, 5, 6, 7}},
	}
	for _, tt := range tests {
		if got := SlideWithinBlocks256(a, b, tt.shift).Data(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SlideWithinBlocks256(shift=%d) = %v, want %v", tt.shift, got, tt.want)
		}
	}
}

func TestSlideWithinBlocksSingleBlock(t *testing.T) {
	a := Load128([]uint16{8, 9, 10, 11, 12, 13, 14, 15})
	b := Load128([]uint16{0, 1, 2, 3, 4, 5, 6, 7})
	for shift := uint(0); shift <= 9; shift++ {
		whole := Slide128(a, b, shift).Data()
		blocks := SlideWithinBlocks128(a, b, shift).Data()
		if !reflect.DeepEqual(whole, blocks) {
			t.Errorf("shift %d: SlideWithinBlocks128 = %v, Slide128 = %v; want equal", shift, blocks, whole)
		}
	}
}

func TestSlideWithinBlocks512(t *testing.T) {
	av := make([]uint64, 8)
	bv := make([]uint64, 8)
	for i := range av {
		av[i] = uint64(50 + i)
		bv[i] = uint64(i)
	}
	a, b := Load512(av), Load512(bv)

	// uint64 blocks hold two lanes, so shift 1 slides one lane in each of
	// the four blocks.
	got := SlideWithinBlocks512(a, b, 1).Data()
	want := []uint64{1, 50, 3, 52, 5, 54, 7, 56}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SlideWithinBlocks512(shift=1) = %v, want %v", got, want)
	}

	if got := SlideWithinBlocks512(a, b, 2).Data(); !reflect.DeepEqual(got, bv) {
		t.Errorf("SlideWithinBlocks512(shift=2) = %v, want %v (saturated)", got, bv)
	}
}

func TestSlideWithinBlocksMask(t *testing.T) {
	a := SplatMask256[uint32](true)
	b := SplatMask256[uint32](false)

	got := SlideWithinBlocksMask256(a, b, 3)
	want := []bool{false, true, true, true, false, true, true, true}
	for i := range want {
		if got.Lane(i) != want[i] {
			t.Errorf("SlideWithinBlocksMask256(shift=3) lane %d = %v, want %v", i, got.Lane(i), want[i])
		}
	}
}
