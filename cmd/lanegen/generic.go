package main

import "strings"

// vecParamNames lists op's vector-shaped parameters in signature order.
func vecParamNames(op Op) []string {
	switch op.Sig {
	case SigUnary, SigShiftImm:
		return []string{"a"}
	case SigTernary:
		return []string{"a", "b", "c"}
	case SigSelect:
		return []string{"m", "a", "b"}
	default:
		return []string{"a", "b"}
	}
}

// emitDecomposed lowers an op wider than the target handles natively:
// split every operand, recurse at half width, and reassemble. The zip
// and unzip recursions cross operands instead of halving lane-wise,
// because interleaving N lanes consumes only the low N/2 of each input.
func emitDecomposed(f *fileBuf, op Op, ty VecType, tgt Target) {
	half := ty.Half()
	hn := half.Lanes

	for _, p := range vecParamNames(op) {
		pt := half
		if p == "m" {
			pt = half.Mask()
		}
		f.ln("var %sLo, %sHi %s", p, p, pt.Go())
		f.ln("copy(%sLo[:], %s[:%d])", p, p, hn)
		f.ln("copy(%sHi[:], %s[%d:])", p, p, hn)
	}

	zipLow := internalName(Op{Method: "zip_low"}, half, tgt)
	zipHigh := internalName(Op{Method: "zip_high"}, half, tgt)
	unzipLow := internalName(Op{Method: "unzip_low"}, half, tgt)
	unzipHigh := internalName(Op{Method: "unzip_high"}, half, tgt)

	switch op.Method {
	case "zip_low":
		f.ln("lo := %s(aLo, bLo)", zipLow)
		f.ln("hi := %s(aLo, bLo)", zipHigh)
	case "zip_high":
		f.ln("lo := %s(aHi, bHi)", zipLow)
		f.ln("hi := %s(aHi, bHi)", zipHigh)
	case "unzip_low":
		f.ln("lo := %s(aLo, aHi)", unzipLow)
		f.ln("hi := %s(bLo, bHi)", unzipLow)
	case "unzip_high":
		f.ln("lo := %s(aLo, aHi)", unzipHigh)
		f.ln("hi := %s(bLo, bHi)", unzipHigh)
	default:
		name := internalName(op, half, tgt)
		tail := ""
		if op.Sig == SigShiftImm {
			tail = ", k"
		}
		params := vecParamNames(op)
		loArgs := make([]string, len(params))
		hiArgs := make([]string, len(params))
		for i, p := range params {
			loArgs[i] = p + "Lo"
			hiArgs[i] = p + "Hi"
		}
		f.ln("lo := %s(%s%s)", name, strings.Join(loArgs, ", "), tail)
		f.ln("hi := %s(%s%s)", name, strings.Join(hiArgs, ", "), tail)
	}

	res := ty
	if op.Sig == SigCompare {
		res = ty.Mask()
	}
	f.ln("var out %s", res.Go())
	f.ln("copy(out[:%d], lo[:])", hn)
	f.ln("copy(out[%d:], hi[:])", hn)
	f.ln("return out")
}
