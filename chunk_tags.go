package aseprite

func decodeTagsChunk(c *Cursor) ([]Tag, error) {
	count, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	if err := c.Skip(8); err != nil { // reserved
		return nil, err
	}
	tags := make([]Tag, count)
	for i := uint16(0); i < count; i++ {
		from, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		to, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		direction, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		repeat, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		if err := c.Skip(6); err != nil { // reserved
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
		if err := c.Skip(1); err != nil { // reserved (extra byte before name)
			return nil, err
		}
		name, err := c.ReadString()
		if err != nil {
			return nil, err
		}
		tags[i] = Tag{
			From: from, To: to,
			Direction: TagDirection(direction),
			Repeat:    repeat,
			Color:     [3]uint8{r, g, b},
			Name:      name,
		}
	}
	return tags, nil
}

func encodeTagsChunk(w *Writer, tags []Tag) error {
	w.WriteU16(uint16(len(tags)))
	w.WriteZero(8)
	for _, t := range tags {
		w.WriteU16(t.From)
		w.WriteU16(t.To)
		w.WriteU8(uint8(t.Direction))
		w.WriteU16(t.Repeat)
		w.WriteZero(6)
		w.WriteU8(t.Color[0])
		w.WriteU8(t.Color[1])
		w.WriteU8(t.Color[2])
		w.WriteZero(1)
		if err := w.WriteString(t.Name); err != nil {
			return err
		}
	}
	return nil
}
