package aseprite

import "github.com/pkg/errors"

// DecodeImagesMode controls how eagerly compressed cel/tileset pixel data
// is inflated during Decode (spec.md §6.2).
type DecodeImagesMode int

const (
	DecodeImagesNone DecodeImagesMode = iota
	DecodeImagesMetadata
	DecodeImagesPixels
)

// DecodeOptions configures Decode (spec.md §6.2).
type DecodeOptions struct {
	PreserveChunks     bool
	PreserveCompressed bool
	DecodeImages       DecodeImagesMode
	Strict             bool
	Compression        CompressionCapability
}

// DefaultDecodeOptions returns the documented defaults: preserve chunks,
// preserve compressed payloads, decode no images eagerly, strict on.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{
		PreserveChunks:     true,
		PreserveCompressed: true,
		DecodeImages:       DecodeImagesNone,
		Strict:             true,
		Compression:        DefaultCompression,
	}
}

// Decode parses bytes into a File (spec.md §4.3).
func Decode(data []byte, opts DecodeOptions) (*File, error) {
	if opts.Compression == nil {
		opts.Compression = DefaultCompression
	}
	c := NewCursor(data)

	header, err := decodeHeader(c, opts.Strict)
	if err != nil {
		return nil, err
	}

	file := &File{Header: header}
	interp := newStreamInterpreter(file)

	var oldPalettePacketSets [][]oldPalettePacket
	sawModernPalette := false

	for frameIdx := 0; frameIdx < int(header.FrameCount); frameIdx++ {
		frameStart := c.Offset()
		frameSize, err := c.ReadU32()
		if err != nil {
			return nil, err
		}
		fmagic, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		if fmagic != frameMagic && opts.Strict {
			return nil, newCodecErrorInFrame(ErrBadMagic, c.Offset(), frameIdx, "frame magic mismatch")
		}
		oldChunkCount, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		durationMS, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		if err := c.Skip(2); err != nil { // reserved
			return nil, err
		}
		newChunkCount, err := c.ReadU32()
		if err != nil {
			return nil, err
		}

		chunkCount := int(oldChunkCount)
		if newChunkCount != 0 && oldChunkCount == 0xFFFF {
			chunkCount = int(newChunkCount)
		}

		if durationMS == 0 {
			durationMS = header.Speed
		}

		frame := &Frame{DurationMS: durationMS}
		interp.beginFrame(frameIdx, frame)

		for i := 0; i < chunkCount; i++ {
			chunkStart := c.Offset()
			chunkSize, err := c.ReadU32()
			if err != nil {
				return nil, err
			}
			chunkType, err := c.ReadU16()
			if err != nil {
				return nil, err
			}
			chunkEnd := chunkStart + int(chunkSize)

			var preservedPayload []byte
			if opts.PreserveChunks {
				n := int(chunkSize) - chunkHeaderSize
				if n >= 0 && chunkStart+int(chunkSize) <= c.Len() {
					preservedPayload, _ = peekBytes(c, n)
				}
			}

			if err := decodeOneChunk(c, file, interp, &sawModernPalette, &oldPalettePacketSets, frame, frameIdx, chunkType, chunkEnd, opts); err != nil {
				return nil, err
			}

			if opts.PreserveChunks {
				frame.Preserved = append(frame.Preserved, RawChunk{Type: chunkType, Raw: preservedPayload})
			}

			// Defensive: always resume at the declared chunk end, regardless
			// of whether the codec over- or under-read (spec.md §4.3).
			if err := c.Seek(chunkEnd); err != nil {
				return nil, err
			}
		}

		file.Frames = append(file.Frames, *frame)

		if err := c.Seek(frameStart + int(frameSize)); err != nil {
			return nil, err
		}
	}

	if !sawModernPalette && len(oldPalettePacketSets) > 0 {
		file.Palette = foldInOldPalette(oldPalettePacketSets)
	}

	return file, nil
}

// peekBytes copies n bytes starting at the cursor's current offset without
// advancing it, used to snapshot a chunk's payload for preserved-mode
// re-encode before the typed decoder consumes it.
func peekBytes(c *Cursor, n int) ([]byte, error) {
	save := c.Offset()
	b, err := c.CopyBytes(n)
	if serr := c.Seek(save); serr != nil {
		return b, serr
	}
	return b, err
}

func decodeOneChunk(
	c *Cursor, file *File, interp *streamInterpreter,
	sawModernPalette *bool, oldPalettePacketSets *[][]oldPalettePacket,
	frame *Frame, frameIdx int, chunkType uint16, chunkEnd int, opts DecodeOptions,
) error {
	switch chunkType {
	case chunkLayer:
		l, err := decodeLayerChunk(c)
		if err != nil {
			return wrapChunkErr(err, frameIdx, chunkType)
		}
		file.Layers = append(file.Layers, *l)
		interp.onLayer(len(file.Layers) - 1)

	case chunkCel:
		cel, err := decodeCelChunk(c, chunkEnd)
		if err != nil {
			return wrapChunkErr(err, frameIdx, chunkType)
		}
		if opts.DecodeImages == DecodeImagesPixels {
			if cel.Variant == CelCompressedImage && cel.Compressed != nil {
				px, derr := opts.Compression.Inflate(cel.Compressed)
				if derr == nil {
					cel.decodedPixels = px
				}
			}
		}
		if !opts.PreserveCompressed {
			// caller asked not to retain the compressed payload; decode
			// eagerly so the cel is still usable, then drop the raw bytes.
			if cel.Variant == CelCompressedImage && cel.Compressed != nil && cel.decodedPixels == nil {
				if px, derr := opts.Compression.Inflate(cel.Compressed); derr == nil {
					cel.decodedPixels = px
				}
			}
			cel.Compressed = nil
		}
		frame.Cels = append(frame.Cels, *cel)
		interp.onCel(len(frame.Cels) - 1)

	case chunkCelExtra:
		ce, err := decodeCelExtraChunk(c)
		if err != nil {
			return wrapChunkErr(err, frameIdx, chunkType)
		}
		if interp.lastCelIdx >= 0 && interp.lastCelIdx < len(frame.Cels) {
			frame.Cels[interp.lastCelIdx].Extra = ce
		}

	case chunkColorProfile:
		cp, err := decodeColorProfileChunk(c, chunkEnd)
		if err != nil {
			return wrapChunkErr(err, frameIdx, chunkType)
		}
		file.ColorProfile = cp
		interp.onOther()

	case chunkExternalFile:
		efs, err := decodeExternalFilesChunk(c)
		if err != nil {
			return wrapChunkErr(err, frameIdx, chunkType)
		}
		file.ExternalFiles = append(file.ExternalFiles, efs...)
		interp.onOther()

	case chunkTags:
		tags, err := decodeTagsChunk(c)
		if err != nil {
			return wrapChunkErr(err, frameIdx, chunkType)
		}
		file.Tags = append(file.Tags, tags...)
		interp.onTags(len(tags))

	case chunkPalette:
		p, err := decodePaletteChunk(c)
		if err != nil {
			return wrapChunkErr(err, frameIdx, chunkType)
		}
		file.Palette = p
		*sawModernPalette = true
		interp.onOther()

	case chunkOldPalette4, chunkOldPalette6:
		packets, err := decodeOldPaletteChunk(c)
		if err != nil {
			return wrapChunkErr(err, frameIdx, chunkType)
		}
		*oldPalettePacketSets = append(*oldPalettePacketSets, packets)
		interp.onOther()

	case chunkUserData:
		ud, err := decodeUserDataChunk(c)
		if err != nil {
			return wrapChunkErr(err, frameIdx, chunkType)
		}
		interp.onUserData(ud)

	case chunkSlice:
		s, err := decodeSliceChunk(c)
		if err != nil {
			return wrapChunkErr(err, frameIdx, chunkType)
		}
		file.Slices = append(file.Slices, *s)
		interp.onSlice(len(file.Slices) - 1)

	case chunkTileset:
		ts, err := decodeTilesetChunk(c)
		if err != nil {
			return wrapChunkErr(err, frameIdx, chunkType)
		}
		if opts.DecodeImages == DecodeImagesPixels && ts.Compressed != nil {
			if raw, derr := opts.Compression.Inflate(ts.Compressed); derr == nil {
				tileSize := int(ts.TileWidth) * int(ts.TileHeight)
				ts.decodedTiles = splitTiles(raw, tileSize, int(ts.TileCount))
			}
		}
		file.Tilesets = append(file.Tilesets, *ts)
		interp.onTileset(len(file.Tilesets) - 1)

	default:
		n := chunkEnd - c.Offset()
		if n < 0 {
			return newCodecErrorInChunk(ErrBadChunkSize, c.Offset(), frameIdx, chunkType, "unknown chunk overruns declared size")
		}
		payload, err := c.CopyBytes(n)
		if err != nil {
			return wrapChunkErr(err, frameIdx, chunkType)
		}
		file.UnknownChunks = append(file.UnknownChunks, UnknownChunk{Type: chunkType, Payload: payload})
		interp.onOther()
	}
	return nil
}

func splitTiles(raw []byte, tileSize, count int) [][]byte {
	out := make([][]byte, 0, count)
	for i := 0; i < count && (i+1)*tileSize <= len(raw); i++ {
		out = append(out, raw[i*tileSize:(i+1)*tileSize])
	}
	return out
}

// wrapChunkErr annotates an error raised inside a chunk decoder with the
// frame index and chunk type it occurred in (spec.md §7).
func wrapChunkErr(err error, frameIdx int, chunkType uint16) error {
	var ce *CodecError
	if errors.As(err, &ce) {
		ce.FrameIdx = frameIdx
		ce.ChunkType = chunkType
		ce.HasChunk = true
		return err
	}
	return errors.WithStack(&CodecError{
		Kind: err, FrameIdx: frameIdx, ChunkType: chunkType, HasChunk: true,
	})
}
