package aseprite

import "github.com/pkg/errors"

// ResolveLinkedCel follows a Linked cel to the cel it references, recursing
// through chained links (spec.md §4.4.4). Non-Linked cels are returned
// unchanged.
func ResolveLinkedCel(file *File, cel *Cel) (*Cel, error) {
	seen := map[int]bool{}
	cur := cel
	for cur.Variant == CelLinked {
		frameIdx := int(cur.LinkedFrameIndex)
		if seen[frameIdx] {
			return nil, errors.WithStack(newCodecError(ErrInvalidLinkedCel, 0, "cyclic linked cel chain"))
		}
		seen[frameIdx] = true

		if frameIdx < 0 || frameIdx >= len(file.Frames) {
			return nil, errors.WithStack(newCodecError(ErrInvalidLinkedCel, 0, "linked frame index out of range"))
		}
		var found *Cel
		for i := range file.Frames[frameIdx].Cels {
			c := &file.Frames[frameIdx].Cels[i]
			if c.LayerIndex == cel.LayerIndex {
				found = c
				break
			}
		}
		if found == nil {
			return nil, errors.WithStack(newCodecError(ErrInvalidLinkedCel, 0, "no matching cel at linked frame"))
		}
		cur = found
	}
	return cur, nil
}
