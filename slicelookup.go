package aseprite

// LookupSliceKey returns the index into s.Keys of the key with the greatest
// FrameIndex <= frameIndex, or -1 if no key qualifies (spec.md §4.7).
// Keys must be sorted by FrameIndex ascending (spec.md §3.2 invariant 8);
// callers that built a Slice by hand should sort before calling this.
func LookupSliceKey(s *Slice, frameIndex uint32) int {
	best := -1
	for i, k := range s.Keys {
		if k.FrameIndex <= frameIndex {
			best = i
		} else {
			break
		}
	}
	return best
}
