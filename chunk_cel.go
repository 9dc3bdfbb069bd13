package aseprite

import "github.com/pkg/errors"

// decodeCelChunk reads a Cel chunk. chunkEnd bounds the payload for
// variants whose tail is "the remainder of the chunk" (spec.md §4.2).
func decodeCelChunk(c *Cursor, chunkEnd int) (*Cel, error) {
	layerIndex, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	x, err := c.ReadI16()
	if err != nil {
		return nil, err
	}
	y, err := c.ReadI16()
	if err != nil {
		return nil, err
	}
	opacity, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	variantTag, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	zIndex, err := c.ReadI16()
	if err != nil {
		return nil, err
	}
	if err := c.Skip(5); err != nil { // reserved
		return nil, err
	}

	cel := &Cel{
		LayerIndex: layerIndex,
		X:          x,
		Y:          y,
		Opacity:    opacity,
		ZIndex:     zIndex,
	}

	switch variantTag {
	case 0: // raw image
		cel.Variant = CelRawImage
		w, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		h, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		cel.Width, cel.Height = w, h
		n := chunkEnd - c.Offset()
		if n < 0 {
			return nil, errors.WithStack(newCodecError(ErrBadChunkSize, c.Offset(), "raw cel payload runs past chunk end"))
		}
		pix, err := c.CopyBytes(n)
		if err != nil {
			return nil, err
		}
		cel.Pixels = pix

	case 1: // linked cel
		cel.Variant = CelLinked
		idx, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		cel.LinkedFrameIndex = idx

	case 2: // compressed image
		cel.Variant = CelCompressedImage
		w, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		h, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		cel.Width, cel.Height = w, h
		n := chunkEnd - c.Offset()
		if n < 0 {
			return nil, errors.WithStack(newCodecError(ErrBadChunkSize, c.Offset(), "compressed cel payload runs past chunk end"))
		}
		raw, err := c.CopyBytes(n)
		if err != nil {
			return nil, err
		}
		cel.Compressed = raw

	case 3: // compressed tilemap
		cel.Variant = CelCompressedTilemap
		w, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		h, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		bpt, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		tileIDMask, err := c.ReadU32()
		if err != nil {
			return nil, err
		}
		xFlipMask, err := c.ReadU32()
		if err != nil {
			return nil, err
		}
		yFlipMask, err := c.ReadU32()
		if err != nil {
			return nil, err
		}
		rotMask, err := c.ReadU32()
		if err != nil {
			return nil, err
		}
		if err := c.Skip(10); err != nil { // reserved
			return nil, err
		}
		cel.TileWidth, cel.TileHeight = w, h
		cel.BitsPerTile = bpt
		cel.TileIDMask = tileIDMask
		cel.XFlipMask = xFlipMask
		cel.YFlipMask = yFlipMask
		cel.RotationMask = rotMask
		n := chunkEnd - c.Offset()
		if n < 0 {
			return nil, errors.WithStack(newCodecError(ErrBadChunkSize, c.Offset(), "tilemap cel payload runs past chunk end"))
		}
		raw, err := c.CopyBytes(n)
		if err != nil {
			return nil, err
		}
		cel.Compressed = raw

	default:
		return nil, errors.WithStack(newCodecError(ErrInvalidCelType, c.Offset(), "unknown cel variant tag"))
	}

	return cel, nil
}

func encodeCelChunk(w *Writer, cel *Cel, comp CompressionCapability) error {
	w.WriteU16(cel.LayerIndex)
	w.WriteI16(cel.X)
	w.WriteI16(cel.Y)
	w.WriteU8(cel.Opacity)

	switch cel.Variant {
	case CelRawImage:
		w.WriteU16(0)
		w.WriteI16(cel.ZIndex)
		w.WriteZero(5)
		w.WriteU16(cel.Width)
		w.WriteU16(cel.Height)
		w.WriteBytes(cel.Pixels)

	case CelLinked:
		w.WriteU16(1)
		w.WriteI16(cel.ZIndex)
		w.WriteZero(5)
		w.WriteU16(cel.LinkedFrameIndex)

	case CelCompressedImage:
		w.WriteU16(2)
		w.WriteI16(cel.ZIndex)
		w.WriteZero(5)
		w.WriteU16(cel.Width)
		w.WriteU16(cel.Height)
		payload, err := celCompressedPayload(cel, comp)
		if err != nil {
			return err
		}
		w.WriteBytes(payload)

	case CelCompressedTilemap:
		w.WriteU16(3)
		w.WriteI16(cel.ZIndex)
		w.WriteZero(5)
		w.WriteU16(cel.TileWidth)
		w.WriteU16(cel.TileHeight)
		w.WriteU16(cel.BitsPerTile)
		w.WriteU32(cel.TileIDMask)
		w.WriteU32(cel.XFlipMask)
		w.WriteU32(cel.YFlipMask)
		w.WriteU32(cel.RotationMask)
		w.WriteZero(10)
		payload, err := celCompressedTilemapPayload(cel, comp)
		if err != nil {
			return err
		}
		w.WriteBytes(payload)

	default:
		return errors.WithStack(newCodecError(ErrInvalidCelType, w.Len(), "unknown cel variant"))
	}

	return nil
}

// celCompressedPayload re-emits preserved zlib bytes verbatim if present
// (round-trip byte preservation, spec.md §4.8), else deflates the decoded
// pixel cache.
func celCompressedPayload(cel *Cel, comp CompressionCapability) ([]byte, error) {
	if cel.Compressed != nil {
		return cel.Compressed, nil
	}
	if cel.decodedPixels == nil {
		return nil, errors.WithStack(newCodecError(ErrCompressionFailed, 0, "compressed cel has neither preserved bytes nor decoded pixels"))
	}
	out, err := comp.Deflate(cel.decodedPixels)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func celCompressedTilemapPayload(cel *Cel, comp CompressionCapability) ([]byte, error) {
	if cel.Compressed != nil {
		return cel.Compressed, nil
	}
	if cel.decodedTiles == nil {
		return nil, errors.WithStack(newCodecError(ErrCompressionFailed, 0, "compressed tilemap cel has neither preserved bytes nor decoded tiles"))
	}
	masks := TileMasks{TileID: cel.TileIDMask, XFlip: cel.XFlipMask, YFlip: cel.YFlipMask, Rotation: cel.RotationMask}
	raw := NewWriter()
	bytesPerTile := int(cel.BitsPerTile) / 8
	for _, t := range cel.decodedTiles {
		encoded := EncodeTile(t, masks)
		switch bytesPerTile {
		case 1:
			raw.WriteU8(uint8(encoded))
		case 2:
			raw.WriteU16(uint16(encoded))
		case 4:
			raw.WriteU32(encoded)
		}
	}
	return comp.Deflate(raw.Bytes())
}
