package aseprite

func decodeUserDataChunk(c *Cursor) (*UserData, error) {
	flags, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	ud := &UserData{}
	if flags&1 != 0 {
		text, err := c.ReadString()
		if err != nil {
			return nil, err
		}
		ud.Text = &text
	}
	if flags&2 != 0 {
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
		col := [4]uint8{r, g, b, a}
		ud.Color = &col
	}
	if flags&4 != 0 {
		props, err := decodeExtensionBlocks(c)
		if err != nil {
			return nil, err
		}
		ud.Properties = props
	}
	return ud, nil
}

func encodeUserDataChunk(w *Writer, ud *UserData) error {
	var flags uint32
	if ud.Text != nil {
		flags |= 1
	}
	if ud.Color != nil {
		flags |= 2
	}
	if ud.Properties != nil {
		flags |= 4
	}
	w.WriteU32(flags)
	if ud.Text != nil {
		if err := w.WriteString(*ud.Text); err != nil {
			return err
		}
	}
	if ud.Color != nil {
		w.WriteU8(ud.Color[0])
		w.WriteU8(ud.Color[1])
		w.WriteU8(ud.Color[2])
		w.WriteU8(ud.Color[3])
	}
	if ud.Properties != nil {
		if err := encodeExtensionBlocks(w, ud.Properties); err != nil {
			return err
		}
	}
	return nil
}
