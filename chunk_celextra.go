package aseprite

func decodeCelExtraChunk(c *Cursor) (*CelExtra, error) {
	flags, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	x, err := c.ReadFixed()
	if err != nil {
		return nil, err
	}
	y, err := c.ReadFixed()
	if err != nil {
		return nil, err
	}
	width, err := c.ReadFixed()
	if err != nil {
		return nil, err
	}
	height, err := c.ReadFixed()
	if err != nil {
		return nil, err
	}
	if err := c.Skip(16); err != nil { // reserved
		return nil, err
	}
	return &CelExtra{Flags: flags, X: x, Y: y, Width: width, Height: height}, nil
}

func encodeCelExtraChunk(w *Writer, ce *CelExtra) error {
	w.WriteU32(ce.Flags)
	w.WriteFixed(ce.X)
	w.WriteFixed(ce.Y)
	w.WriteFixed(ce.Width)
	w.WriteFixed(ce.Height)
	w.WriteZero(16)
	return nil
}
