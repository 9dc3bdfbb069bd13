package aseprite

import "github.com/pkg/errors"

func decodeLayerChunk(c *Cursor) (*Layer, error) {
	flags, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	variant, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	childLevel, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	if _, err := c.ReadU16(); err != nil { // default layer width, ignored
		return nil, err
	}
	if _, err := c.ReadU16(); err != nil { // default layer height, ignored
		return nil, err
	}
	blendMode, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	opacity, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	if err := c.Skip(3); err != nil { // reserved
		return nil, err
	}
	name, err := c.ReadString()
	if err != nil {
		return nil, err
	}

	l := &Layer{
		Flags:      flags,
		Variant:    LayerVariant(variant),
		ChildLevel: childLevel,
		BlendMode:  BlendMode(blendMode),
		Opacity:    opacity,
		Name:       name,
	}

	if l.Variant == LayerTilemap {
		idx, err := c.ReadU32()
		if err != nil {
			return nil, err
		}
		l.TilesetIndex = &idx
	}

	return l, nil
}

func encodeLayerChunk(w *Writer, l *Layer) error {
	if l.Variant == LayerTilemap && l.TilesetIndex == nil {
		return errors.WithStack(newCodecError(ErrInvalidLayerType, w.Len(), "tilemap layer missing tileset index"))
	}
	if l.Variant != LayerTilemap && l.TilesetIndex != nil {
		return errors.WithStack(newCodecError(ErrInvalidLayerType, w.Len(), "non-tilemap layer carries a tileset index"))
	}
	w.WriteU16(l.Flags)
	w.WriteU16(uint16(l.Variant))
	w.WriteU16(l.ChildLevel)
	w.WriteU16(0) // default width
	w.WriteU16(0) // default height
	w.WriteU16(uint16(l.BlendMode))
	w.WriteU8(l.Opacity)
	w.WriteZero(3)
	if err := w.WriteString(l.Name); err != nil {
		return err
	}
	if l.Variant == LayerTilemap {
		w.WriteU32(*l.TilesetIndex)
	}
	return nil
}
