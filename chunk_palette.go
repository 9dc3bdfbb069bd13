package aseprite

import "github.com/pkg/errors"

func decodePaletteChunk(c *Cursor) (*Palette, error) {
	size, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	first, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	last, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	if err := c.Skip(8); err != nil { // reserved
		return nil, err
	}

	if last < first {
		return nil, errors.WithStack(newCodecError(ErrBadChunkSize, c.Offset(), "palette last index precedes first index"))
	}
	n := last - first + 1
	entries := make([]PaletteEntry, n)
	for i := uint32(0); i < n; i++ {
		flags, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		r, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		g, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		b, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		a, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		entry := PaletteEntry{R: r, G: g, B: b, A: a}
		if flags&1 != 0 {
			name, err := c.ReadString()
			if err != nil {
				return nil, err
			}
			entry.Name = &name
		}
		entries[i] = entry
	}

	return &Palette{Size: size, FirstIndex: first, LastIndex: last, Entries: entries}, nil
}

func encodePaletteChunk(w *Writer, p *Palette) error {
	w.WriteU32(p.Size)
	w.WriteU32(p.FirstIndex)
	w.WriteU32(p.LastIndex)
	w.WriteZero(8)
	for _, e := range p.Entries {
		var flags uint16
		if e.Name != nil {
			flags |= 1
		}
		w.WriteU16(flags)
		w.WriteU8(e.R)
		w.WriteU8(e.G)
		w.WriteU8(e.B)
		w.WriteU8(e.A)
		if e.Name != nil {
			if err := w.WriteString(*e.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

// oldPalettePacket is one packet from an OldPalette chunk (0x0004 / 0x0011):
// skip-count advances the write index, then a run of RGB colors is written
// starting at that index (spec.md §4.3 step 3).
type oldPalettePacket struct {
	skip   uint8
	colors [][3]uint8
}

func decodeOldPaletteChunk(c *Cursor) ([]oldPalettePacket, error) {
	numPackets, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	packets := make([]oldPalettePacket, numPackets)
	for i := uint16(0); i < numPackets; i++ {
		skip, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		numColors, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		count := int(numColors)
		if count == 0 {
			count = 256
		}
		colors := make([][3]uint8, count)
		for j := 0; j < count; j++ {
			r, err := c.ReadU8()
			if err != nil {
				return nil, err
			}
			g, err := c.ReadU8()
			if err != nil {
				return nil, err
			}
			b, err := c.ReadU8()
			if err != nil {
				return nil, err
			}
			colors[j] = [3]uint8{r, g, b}
		}
		packets[i] = oldPalettePacket{skip: skip, colors: colors}
	}
	return packets, nil
}

// foldInOldPalette replays OldPalette packets into a synthesized Palette
// (spec.md §4.3 step 3, §8.1 invariant 6): every emitted entry gets alpha
// 255, and the write index advances by each packet's skip-count before its
// run of colors is written.
func foldInOldPalette(packetSets [][]oldPalettePacket) *Palette {
	entries := make(map[uint32]PaletteEntry)
	var maxIndex uint32
	idx := uint32(0)
	for _, packets := range packetSets {
		for _, p := range packets {
			idx += uint32(p.skip)
			for _, col := range p.colors {
				entries[idx] = PaletteEntry{R: col[0], G: col[1], B: col[2], A: 255}
				if idx > maxIndex {
					maxIndex = idx
				}
				idx++
			}
		}
	}
	n := maxIndex + 1
	out := make([]PaletteEntry, n)
	for i := uint32(0); i < n; i++ {
		if e, ok := entries[i]; ok {
			out[i] = e
		} else {
			out[i] = PaletteEntry{A: 255}
		}
	}
	return &Palette{Size: n, FirstIndex: 0, LastIndex: maxIndex, Entries: out}
}
