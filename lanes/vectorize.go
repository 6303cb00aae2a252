package lanes

// Vectorize runs f with lv installed as the routing level, verifying the
// level's feature string against the host once, up front. The per-dispatch
// check is the runtime rendition of a compile-time capability proof: inside
// f, operations use lv's kernels without further checks.
//
// Passing a level the host cannot satisfy — possible only through the
// unchecked constructors or a hand-built Level value — panics, since no
// meaningful result exists. Fallback always verifies.
func Vectorize[R any](lv Level, f func() R) R {
	if missing, ok := HasFlags(lv.Features()); !ok && lv != LevelFallback {
		panic("lanes: level " + lv.String() + " not supported by host (missing " + missing + ")")
	}
	prev := SetActive(lv)
	defer SetActive(prev)
	return f()
}
