package aseprite

import "github.com/pkg/errors"

func decodeHeader(c *Cursor, strict bool) (Header, error) {
	fileSize, err := c.ReadU32()
	if err != nil {
		return Header{}, err
	}
	magic, err := c.ReadU16()
	if err != nil {
		return Header{}, err
	}
	if magic != headerMagic {
		if strict {
			return Header{}, errors.WithStack(newCodecError(ErrBadMagic, c.Offset(), "file magic mismatch"))
		}
	}
	frameCount, err := c.ReadU16()
	if err != nil {
		return Header{}, err
	}
	width, err := c.ReadU16()
	if err != nil {
		return Header{}, err
	}
	height, err := c.ReadU16()
	if err != nil {
		return Header{}, err
	}
	colorDepth, err := c.ReadU16()
	if err != nil {
		return Header{}, err
	}
	if strict && colorDepth != 8 && colorDepth != 16 && colorDepth != 32 {
		return Header{}, errors.WithStack(newCodecError(ErrUnsupportedColorDepth, c.Offset(), "color depth must be 8, 16, or 32"))
	}
	flags, err := c.ReadU32()
	if err != nil {
		return Header{}, err
	}
	speed, err := c.ReadU16()
	if err != nil {
		return Header{}, err
	}
	if err := c.Skip(8); err != nil { // reserved (must be 0), two DWORDs
		return Header{}, err
	}
	transparentIndex, err := c.ReadU8()
	if err != nil {
		return Header{}, err
	}
	if err := c.Skip(3); err != nil { // ignored
		return Header{}, err
	}
	colorCount, err := c.ReadU16()
	if err != nil {
		return Header{}, err
	}
	pixelW, err := c.ReadU8()
	if err != nil {
		return Header{}, err
	}
	pixelH, err := c.ReadU8()
	if err != nil {
		return Header{}, err
	}
	gridX, err := c.ReadI16()
	if err != nil {
		return Header{}, err
	}
	gridY, err := c.ReadI16()
	if err != nil {
		return Header{}, err
	}
	gridW, err := c.ReadU16()
	if err != nil {
		return Header{}, err
	}
	gridH, err := c.ReadU16()
	if err != nil {
		return Header{}, err
	}
	if err := c.Skip(84); err != nil { // reserved
		return Header{}, err
	}

	return Header{
		FileSize: fileSize, FrameCount: frameCount,
		Width: width, Height: height, ColorDepth: colorDepth,
		Flags: flags, Speed: speed, TransparentIndex: transparentIndex,
		ColorCount: colorCount, PixelWidth: pixelW, PixelHeight: pixelH,
		GridX: gridX, GridY: gridY, GridWidth: gridW, GridHeight: gridH,
	}, nil
}

func encodeHeader(w *Writer, h Header) {
	sizePatch := w.Mark()
	w.WriteU32(0) // back-patched below
	w.WriteU16(headerMagic)
	w.WriteU16(h.FrameCount)
	w.WriteU16(h.Width)
	w.WriteU16(h.Height)
	w.WriteU16(h.ColorDepth)
	w.WriteU32(h.Flags)
	w.WriteU16(h.Speed)
	w.WriteZero(8)
	w.WriteU8(h.TransparentIndex)
	w.WriteZero(3)
	w.WriteU16(h.ColorCount)
	w.WriteU8(h.PixelWidth)
	w.WriteU8(h.PixelHeight)
	w.WriteI16(h.GridX)
	w.WriteI16(h.GridY)
	w.WriteU16(h.GridWidth)
	w.WriteU16(h.GridHeight)
	w.WriteZero(84)
	_ = sizePatch // patched by caller once total size is known
}
