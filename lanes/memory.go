package lanes

// Load128 copies the first Lanes128[T] elements of src into a new vector.
// Panics when src holds fewer elements than one vector.
func Load128[T Lanes](src []T) Vec128[T] {
	return Vec128[T]{v: loadLanes(src, Lanes128[T]())}
}

// Load256 copies the first Lanes256[T] elements of src into a new vector.
func Load256[T Lanes](src []T) Vec256[T] {
	return Vec256[T]{v: loadLanes(src, Lanes256[T]())}
}

// Load512 copies the first Lanes512[T] elements of src into a new vector.
func Load512[T Lanes](src []T) Vec512[T] {
	return Vec512[T]{v: loadLanes(src, Lanes512[T]())}
}

// Splat128 broadcasts val to every lane of a 128-bit vector.
func Splat128[T Lanes](val T) Vec128[T] {
	return Vec128[T]{v: splatLanes(val, Lanes128[T]())}
}

// Splat256 broadcasts val to every lane of a 256-bit vector.
func Splat256[T Lanes](val T) Vec256[T] {
	return Vec256[T]{v: splatLanes(val, Lanes256[T]())}
}

// Splat512 broadcasts val to every lane of a 512-bit vector.
func Splat512[T Lanes](val T) Vec512[T] {
	return Vec512[T]{v: splatLanes(val, Lanes512[T]())}
}

// Zero128 returns the all-zero 128-bit vector.
func Zero128[T Lanes]() Vec128[T] { var zero T; return Splat128(zero) }

// Zero256 returns the all-zero 256-bit vector.
func Zero256[T Lanes]() Vec256[T] { var zero T; return Splat256(zero) }

// Zero512 returns the all-zero 512-bit vector.
func Zero512[T Lanes]() Vec512[T] { var zero T; return Splat512(zero) }

// FromBytes128 rebuilds a vector from its little-endian serialization.
// Panics when raw is not exactly 16 bytes.
func FromBytes128[T Lanes](raw []byte) Vec128[T] {
	if len(raw) != 16 {
		panic("lanes: FromBytes128 wants 16 bytes")
	}
	return Vec128[T]{v: lanesFromBytes[T](raw)}
}

// FromBytes256 rebuilds a 256-bit vector from 32 little-endian bytes.
func FromBytes256[T Lanes](raw []byte) Vec256[T] {
	if len(raw) != 32 {
		panic("lanes: FromBytes256 wants 32 bytes")
	}
	return Vec256[T]{v: lanesFromBytes[T](raw)}
}

// FromBytes512 rebuilds a 512-bit vector from 64 little-endian bytes.
func FromBytes512[T Lanes](raw []byte) Vec512[T] {
	if len(raw) != 64 {
		panic("lanes: FromBytes512 wants 64 bytes")
	}
	return Vec512[T]{v: lanesFromBytes[T](raw)}
}

// SplatMask128 returns the canonical mask with every lane set or cleared.
func SplatMask128[T Lanes](truth bool) Mask128[T] {
	return Mask128[T]{m: splatMaskLanes[T](truth, Lanes128[T]())}
}

// SplatMask256 is SplatMask128 at 256 bits.
func SplatMask256[T Lanes](truth bool) Mask256[T] {
	return Mask256[T]{m: splatMaskLanes[T](truth, Lanes256[T]())}
}

// SplatMask512 is SplatMask128 at 512 bits.
func SplatMask512[T Lanes](truth bool) Mask512[T] {
	return Mask512[T]{m: splatMaskLanes[T](truth, Lanes512[T]())}
}

// MaskFromBools128 builds a canonical mask from per-lane truth values.
func MaskFromBools128[T Lanes](truth []bool) Mask128[T] {
	return Mask128[T]{m: maskLanesFromBools[T](truth, Lanes128[T]())}
}

// MaskFromBools256 is MaskFromBools128 at 256 bits.
func MaskFromBools256[T Lanes](truth []bool) Mask256[T] {
	return Mask256[T]{m: maskLanesFromBools[T](truth, Lanes256[T]())}
}

// MaskFromBools512 is MaskFromBools128 at 512 bits.
func MaskFromBools512[T Lanes](truth []bool) Mask512[T] {
	return Mask512[T]{m: maskLanesFromBools[T](truth, Lanes512[T]())}
}

// MaskFromData128 wraps raw lanes as a mask without canonicalizing them.
// Exists so callers (and tests) can exercise the junk-pattern contract.
func MaskFromData128[T Lanes](raw []T) Mask128[T] {
	return Mask128[T]{m: loadLanes(raw, Lanes128[T]())}
}

// MaskFromData256 is MaskFromData128 at 256 bits.
func MaskFromData256[T Lanes](raw []T) Mask256[T] {
	return Mask256[T]{m: loadLanes(raw, Lanes256[T]())}
}

// MaskFromData512 is MaskFromData128 at 512 bits.
func MaskFromData512[T Lanes](raw []T) Mask512[T] {
	return Mask512[T]{m: loadLanes(raw, Lanes512[T]())}
}

// Interleavable constrains the element types that support 4-way interleaved
// transfers: the unsigned integers and float32, at 512-bit width.
type Interleavable interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32
}

// LoadInterleaved4 reads four interleaved streams from src — elements
// src[0], src[4], src[8], ... belong to stream 0 — and returns a 512-bit
// vector whose four 128-bit blocks hold one deinterleaved stream each.
// Panics when src holds fewer elements than one 512-bit vector.
func LoadInterleaved4[T Interleavable](src []T) Vec512[T] {
	n := Lanes512[T]()
	raw := lanesToBytes(loadLanes(src, n))
	out := activeKernels().loadInterleaved4(raw, laneSize[T]())
	return Vec512[T]{v: lanesFromBytes[T](out)}
}

// StoreInterleaved4 is the inverse of LoadInterleaved4: it interleaves the
// four 128-bit blocks of v back into element-granular round-robin order and
// writes them to dst. Panics when dst is shorter than one 512-bit vector.
func StoreInterleaved4[T Interleavable](v Vec512[T], dst []T) {
	n := Lanes512[T]()
	if len(dst) < n {
		panic("lanes: StoreInterleaved4 destination too short")
	}
	out := activeKernels().storeInterleaved4(lanesToBytes(v.v), laneSize[T]())
	copy(dst, lanesFromBytes[T](out))
}

func loadLanes[T Lanes](src []T, n int) []T {
	v := make([]T, n)
	copy(v, src[:n])
	return v
}

func splatLanes[T Lanes](val T, n int) []T {
	v := make([]T, n)
	for i := range v {
		v[i] = val
	}
	return v
}

func splatMaskLanes[T Lanes](truth bool, n int) []T {
	var lane T
	if truth {
		lane = allOnes[T]()
	}
	return splatLanes(lane, n)
}

func maskLanesFromBools[T Lanes](truth []bool, n int) []T {
	m := make([]T, n)
	for i := range m {
		if truth[i] {
			m[i] = allOnes[T]()
		}
	}
	return m
}
