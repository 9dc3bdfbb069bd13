package aseprite

func decodeColorProfileChunk(c *Cursor, chunkEnd int) (*ColorProfile, error) {
	typ, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	flags, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	gamma, err := c.ReadFixed()
	if err != nil {
		return nil, err
	}
	if err := c.Skip(8); err != nil { // reserved
		return nil, err
	}

	cp := &ColorProfile{Type: ColorProfileType(typ), Flags: flags}
	if flags&1 != 0 { // has gamma, mirrors the fixed-point-gamma flag
		cp.Gamma = &gamma
	}
	if cp.Type == ColorProfileICC {
		n := chunkEnd - c.Offset()
		if n > 0 {
			icc, err := c.CopyBytes(n)
			if err != nil {
				return nil, err
			}
			cp.ICC = icc
		}
	}
	return cp, nil
}

func encodeColorProfileChunk(w *Writer, cp *ColorProfile) error {
	w.WriteU16(uint16(cp.Type))
	w.WriteU16(cp.Flags)
	if cp.Gamma != nil {
		w.WriteFixed(*cp.Gamma)
	} else {
		w.WriteFixed(0)
	}
	w.WriteZero(8)
	if cp.Type == ColorProfileICC {
		w.WriteBytes(cp.ICC)
	}
	return nil
}
