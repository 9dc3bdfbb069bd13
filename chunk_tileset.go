package aseprite

// Tileset flag bits gating the optional tail regions (spec.md §4.2).
const (
	tilesetFlagExternalFile = 1 << 0
	tilesetFlagEmbedded     = 1 << 1
)

func decodeTilesetChunk(c *Cursor) (*Tileset, error) {
	id, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	flags, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	tileCount, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	tw, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	th, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	baseIndex, err := c.ReadI16()
	if err != nil {
		return nil, err
	}
	if err := c.Skip(14); err != nil { // reserved
		return nil, err
	}
	name, err := c.ReadString()
	if err != nil {
		return nil, err
	}

	ts := &Tileset{
		ID: id, Flags: flags, TileCount: tileCount,
		TileWidth: tw, TileHeight: th, BaseIndex: baseIndex, Name: name,
	}

	if flags&tilesetFlagExternalFile != 0 {
		fileID, err := c.ReadU32()
		if err != nil {
			return nil, err
		}
		tilesetID, err := c.ReadU32()
		if err != nil {
			return nil, err
		}
		ts.ExternalFileID = &fileID
		ts.ExternalTilesetID = &tilesetID
	}

	if flags&tilesetFlagEmbedded != 0 {
		compLen, err := c.ReadU32()
		if err != nil {
			return nil, err
		}
		payload, err := c.CopyBytes(int(compLen))
		if err != nil {
			return nil, err
		}
		ts.Compressed = payload
	}

	return ts, nil
}

func encodeTilesetChunk(w *Writer, ts *Tileset, comp CompressionCapability) error {
	w.WriteU32(ts.ID)
	w.WriteU32(ts.Flags)
	w.WriteU32(ts.TileCount)
	w.WriteU16(ts.TileWidth)
	w.WriteU16(ts.TileHeight)
	w.WriteI16(ts.BaseIndex)
	w.WriteZero(14)
	if err := w.WriteString(ts.Name); err != nil {
		return err
	}
	if ts.Flags&tilesetFlagExternalFile != 0 {
		w.WriteU32(*ts.ExternalFileID)
		w.WriteU32(*ts.ExternalTilesetID)
	}
	if ts.Flags&tilesetFlagEmbedded != 0 {
		payload, err := tilesetCompressedPayload(ts, comp)
		if err != nil {
			return err
		}
		w.WriteU32(uint32(len(payload)))
		w.WriteBytes(payload)
	}
	return nil
}

func tilesetCompressedPayload(ts *Tileset, comp CompressionCapability) ([]byte, error) {
	if ts.Compressed != nil {
		return ts.Compressed, nil
	}
	raw := NewWriter()
	for _, tile := range ts.decodedTiles {
		raw.WriteBytes(tile)
	}
	return comp.Deflate(raw.Bytes())
}
