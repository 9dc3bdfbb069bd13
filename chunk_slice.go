package aseprite

func decodeSliceChunk(c *Cursor) (*Slice, error) {
	count, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	flags, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	if err := c.Skip(4); err != nil { // reserved
		return nil, err
	}
	name, err := c.ReadString()
	if err != nil {
		return nil, err
	}

	keys := make([]SliceKey, count)
	for i := uint32(0); i < count; i++ {
		frameIdx, err := c.ReadU32()
		if err != nil {
			return nil, err
		}
		x, err := c.ReadI32()
		if err != nil {
			return nil, err
		}
		y, err := c.ReadI32()
		if err != nil {
			return nil, err
		}
		width, err := c.ReadU32()
		if err != nil {
			return nil, err
		}
		height, err := c.ReadU32()
		if err != nil {
			return nil, err
		}
		key := SliceKey{FrameIndex: frameIdx, X: x, Y: y, Width: width, Height: height}

		if flags&SliceFlagHas9Patch != 0 {
			cx, err := c.ReadI32()
			if err != nil {
				return nil, err
			}
			cy, err := c.ReadI32()
			if err != nil {
				return nil, err
			}
			cw, err := c.ReadU32()
			if err != nil {
				return nil, err
			}
			chh, err := c.ReadU32()
			if err != nil {
				return nil, err
			}
			key.HasCenter = true
			key.CenterX, key.CenterY, key.CenterW, key.CenterH = cx, cy, cw, chh
		}

		if flags&SliceFlagHasPivot != 0 {
			px, err := c.ReadI32()
			if err != nil {
				return nil, err
			}
			py, err := c.ReadI32()
			if err != nil {
				return nil, err
			}
			key.HasPivot = true
			key.PivotX, key.PivotY = px, py
		}

		keys[i] = key
	}

	return &Slice{Name: name, Flags: flags, Keys: keys}, nil
}

func encodeSliceChunk(w *Writer, s *Slice) error {
	w.WriteU32(uint32(len(s.Keys)))
	w.WriteU32(s.Flags)
	w.WriteZero(4)
	if err := w.WriteString(s.Name); err != nil {
		return err
	}
	for _, k := range s.Keys {
		w.WriteU32(k.FrameIndex)
		w.WriteI32(k.X)
		w.WriteI32(k.Y)
		w.WriteU32(k.Width)
		w.WriteU32(k.Height)
		if s.Flags&SliceFlagHas9Patch != 0 {
			w.WriteI32(k.CenterX)
			w.WriteI32(k.CenterY)
			w.WriteU32(k.CenterW)
			w.WriteU32(k.CenterH)
		}
		if s.Flags&SliceFlagHasPivot != 0 {
			w.WriteI32(k.PivotX)
			w.WriteI32(k.PivotY)
		}
	}
	return nil
}
