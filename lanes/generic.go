package lanes

// Decomposition rules for vector widths beyond a backend's native
// register size. Each rule reduces a full-vector shuffle at width 2N
// to shuffles at width N on the operand halves, recursing through the
// kernel set until it reaches a width the backend handles natively.
//
// A zip reads only one half of each operand, so that half can be
// interleaved completely and the two results stacked. An unzip of the
// concatenation [a, b] is the unzip of a's halves followed by the
// unzip of b's halves.

func genericZipLow(k *kernelSet, a, b []byte, elemSize int) []byte {
	h := len(a) / 2
	out := make([]byte, 0, len(a))
	out = append(out, k.zipLow(a[:h], b[:h], elemSize)...)
	out = append(out, k.zipHigh(a[:h], b[:h], elemSize)...)
	return out
}

func genericZipHigh(k *kernelSet, a, b []byte, elemSize int) []byte {
	h := len(a) / 2
	out := make([]byte, 0, len(a))
	out = append(out, k.zipLow(a[h:], b[h:], elemSize)...)
	out = append(out, k.zipHigh(a[h:], b[h:], elemSize)...)
	return out
}

func genericUnzipLow(k *kernelSet, a, b []byte, elemSize int) []byte {
	h := len(a) / 2
	out := make([]byte, 0, len(a))
	out = append(out, k.unzipLow(a[:h], a[h:], elemSize)...)
	out = append(out, k.unzipLow(b[:h], b[h:], elemSize)...)
	return out
}

func genericUnzipHigh(k *kernelSet, a, b []byte, elemSize int) []byte {
	h := len(a) / 2
	out := make([]byte, 0, len(a))
	out = append(out, k.unzipHigh(a[:h], a[h:], elemSize)...)
	out = append(out, k.unzipHigh(b[:h], b[h:], elemSize)...)
	return out
}
