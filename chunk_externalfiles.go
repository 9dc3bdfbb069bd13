package aseprite

func decodeExternalFilesChunk(c *Cursor) ([]ExternalFile, error) {
	count, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	if err := c.Skip(8); err != nil { // reserved
		return nil, err
	}
	out := make([]ExternalFile, count)
	for i := uint32(0); i < count; i++ {
		id, err := c.ReadU32()
		if err != nil {
			return nil, err
		}
		typ, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		if err := c.Skip(7); err != nil { // reserved
			return nil, err
		}
		name, err := c.ReadString()
		if err != nil {
			return nil, err
		}
		out[i] = ExternalFile{ID: id, Type: ExternalFileType(typ), Filename: name}
	}
	return out, nil
}

func encodeExternalFilesChunk(w *Writer, files []ExternalFile) error {
	w.WriteU32(uint32(len(files)))
	w.WriteZero(8)
	for _, f := range files {
		w.WriteU32(f.ID)
		w.WriteU8(uint8(f.Type))
		w.WriteZero(7)
		if err := w.WriteString(f.Filename); err != nil {
			return err
		}
	}
	return nil
}
