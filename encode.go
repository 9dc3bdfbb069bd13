package aseprite

import "github.com/pkg/errors"

// EncodeMode selects how chunks are (re)assembled into frames (spec.md §4.8).
type EncodeMode int

const (
	EncodeAuto EncodeMode = iota
	EncodePreserved
	EncodeCanonical
)

// EncodeOptions configures Encode (spec.md §6.2).
type EncodeOptions struct {
	Mode                   EncodeMode
	WriteLegacyPaletteChunks bool
	Compression            CompressionCapability
}

// DefaultEncodeOptions returns the documented defaults.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{Mode: EncodeAuto, Compression: DefaultCompression}
}

// Encode serializes a File back to bytes (spec.md §4.8).
func Encode(file *File, opts EncodeOptions) ([]byte, error) {
	if opts.Compression == nil {
		opts.Compression = DefaultCompression
	}

	mode := opts.Mode
	if mode == EncodeAuto {
		if len(file.Frames) > 0 && file.Frames[0].Preserved != nil {
			mode = EncodePreserved
		} else {
			mode = EncodeCanonical
		}
	}

	w := NewWriter()
	encodeHeader(w, file.Header)
	sizePatchOffset := 0 // fileSize lives at byte 0

	for i := range file.Frames {
		frame := &file.Frames[i]
		frameStart := w.Mark()
		w.WriteU32(0) // frame size, patched below
		w.WriteU16(frameMagic)

		var chunkBytesList [][]byte
		var err error
		switch mode {
		case EncodePreserved:
			chunkBytesList, err = encodeFramePreserved(frame)
		default:
			chunkBytesList, err = encodeFrameCanonical(file, i, frame, opts)
		}
		if err != nil {
			return nil, err
		}

		chunkCount := len(chunkBytesList)
		if chunkCount <= 0xFFFE {
			w.WriteU16(uint16(chunkCount))
		} else {
			w.WriteU16(0xFFFF)
		}
		w.WriteU16(frame.DurationMS)
		w.WriteZero(2)
		if chunkCount > 0xFFFE {
			w.WriteU32(uint32(chunkCount))
		} else {
			w.WriteU32(0)
		}

		for _, cb := range chunkBytesList {
			w.WriteBytes(cb)
		}

		frameSize := w.Mark() - frameStart
		w.PatchU32(frameStart, uint32(frameSize))
	}

	w.PatchU32(sizePatchOffset, uint32(w.Len()))
	return w.Bytes(), nil
}

// frameChunk builds one complete {header+payload} chunk.
func frameChunk(chunkType uint16, payload []byte) []byte {
	fw := NewWriter()
	fw.WriteU32(uint32(len(payload) + chunkHeaderSize))
	fw.WriteU16(chunkType)
	fw.WriteBytes(payload)
	return fw.Bytes()
}

func encodeFramePreserved(frame *Frame) ([][]byte, error) {
	out := make([][]byte, 0, len(frame.Preserved))
	for _, rc := range frame.Preserved {
		if rc.Raw == nil {
			return nil, errors.WithStack(newCodecError(ErrBadChunkSize, 0, "preserved-mode chunk has no raw bytes to re-emit"))
		}
		out = append(out, frameChunk(rc.Type, rc.Raw))
	}
	return out, nil
}

func encodeFrameCanonical(file *File, frameIdx int, frame *Frame, opts EncodeOptions) ([][]byte, error) {
	var out [][]byte

	appendUD := func(ud *UserData) error {
		if ud == nil {
			return nil
		}
		b, err := encodedUserDataChunk(ud)
		if err != nil {
			return err
		}
		out = append(out, b)
		return nil
	}

	if frameIdx == 0 {
		for i := range file.Layers {
			lw := NewWriter()
			if err := encodeLayerChunk(lw, &file.Layers[i]); err != nil {
				return nil, err
			}
			out = append(out, frameChunk(chunkLayer, lw.Bytes()))
			if err := appendUD(file.Layers[i].UserData); err != nil {
				return nil, err
			}
		}

		if file.ColorProfile != nil {
			cw := NewWriter()
			if err := encodeColorProfileChunk(cw, file.ColorProfile); err != nil {
				return nil, err
			}
			out = append(out, frameChunk(chunkColorProfile, cw.Bytes()))
		}

		if len(file.ExternalFiles) > 0 {
			ew := NewWriter()
			if err := encodeExternalFilesChunk(ew, file.ExternalFiles); err != nil {
				return nil, err
			}
			out = append(out, frameChunk(chunkExternalFile, ew.Bytes()))
		}

		if file.Palette != nil {
			pw := NewWriter()
			if err := encodePaletteChunk(pw, file.Palette); err != nil {
				return nil, err
			}
			out = append(out, frameChunk(chunkPalette, pw.Bytes()))
		}

		if len(file.Tags) > 0 {
			tw := NewWriter()
			if err := encodeTagsChunk(tw, file.Tags); err != nil {
				return nil, err
			}
			out = append(out, frameChunk(chunkTags, tw.Bytes()))
			for _, t := range file.Tags {
				if err := appendUD(t.UserData); err != nil {
					return nil, err
				}
			}
		}

		for i := range file.Slices {
			sl := &file.Slices[i]
			sw := NewWriter()
			if err := encodeSliceChunk(sw, sl); err != nil {
				return nil, err
			}
			out = append(out, frameChunk(chunkSlice, sw.Bytes()))
			if err := appendUD(sl.UserData); err != nil {
				return nil, err
			}
		}

		for i := range file.Tilesets {
			ts := &file.Tilesets[i]
			tsw := NewWriter()
			if err := encodeTilesetChunk(tsw, ts, opts.Compression); err != nil {
				return nil, err
			}
			out = append(out, frameChunk(chunkTileset, tsw.Bytes()))
			if err := appendUD(ts.UserData); err != nil {
				return nil, err
			}
			for _, tud := range ts.TileUserData {
				if err := appendUD(tud); err != nil {
					return nil, err
				}
			}
		}

		if err := appendUD(file.UserData); err != nil {
			return nil, err
		}

		for _, uk := range file.UnknownChunks {
			out = append(out, frameChunk(uk.Type, uk.Payload))
		}
	}

	for i := range frame.Cels {
		cel := &frame.Cels[i]
		cw := NewWriter()
		if err := encodeCelChunk(cw, cel, opts.Compression); err != nil {
			return nil, err
		}
		out = append(out, frameChunk(chunkCel, cw.Bytes()))

		if cel.Extra != nil {
			ew := NewWriter()
			if err := encodeCelExtraChunk(ew, cel.Extra); err != nil {
				return nil, err
			}
			out = append(out, frameChunk(chunkCelExtra, ew.Bytes()))
		}
		if err := appendUD(cel.UserData); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func encodedUserDataChunk(ud *UserData) ([]byte, error) {
	uw := NewWriter()
	if err := encodeUserDataChunk(uw, ud); err != nil {
		return nil, err
	}
	return frameChunk(chunkUserData, uw.Bytes()), nil
}
