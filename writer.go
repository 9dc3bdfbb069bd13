package aseprite

import (
	"math"

	"github.com/pkg/errors"
)

// Writer is a growable little-endian output buffer with mark/patch support
// for size back-patching (spec.md §4.1, §4.8). Growth is power-of-two
// doubling starting at 4 KiB, matching the cursor's "growable output buffer
// analogue" requirement.
type Writer struct {
	buf []byte
}

const writerInitialCapacity = 4 << 10

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, writerInitialCapacity)}
}

// Bytes returns the accumulated output. The slice aliases the Writer's
// internal buffer and is invalidated by further writes.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

func (w *Writer) grow(n int) {
	need := len(w.buf) + n
	if cap(w.buf) >= need {
		return
	}
	newCap := cap(w.buf)
	if newCap == 0 {
		newCap = writerInitialCapacity
	}
	for newCap < need {
		newCap *= 2
	}
	nb := make([]byte, len(w.buf), newCap)
	copy(nb, w.buf)
	w.buf = nb
}

// WriteBytes appends raw bytes verbatim.
func (w *Writer) WriteBytes(b []byte) {
	w.grow(len(b))
	w.buf = append(w.buf, b...)
}

// WriteZero appends n zero bytes (used for reserved/padding fields).
func (w *Writer) WriteZero(n int) {
	w.grow(n)
	for i := 0; i < n; i++ {
		w.buf = append(w.buf, 0)
	}
}

// WriteU8 appends one byte.
func (w *Writer) WriteU8(v uint8) {
	w.grow(1)
	w.buf = append(w.buf, v)
}

// WriteU16 appends a little-endian uint16.
func (w *Writer) WriteU16(v uint16) {
	w.grow(2)
	w.buf = append(w.buf, byte(v), byte(v>>8))
}

// WriteI16 appends a little-endian int16.
func (w *Writer) WriteI16(v int16) { w.WriteU16(uint16(v)) }

// WriteU32 appends a little-endian uint32.
func (w *Writer) WriteU32(v uint32) {
	w.grow(4)
	w.buf = append(w.buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// WriteI32 appends a little-endian int32.
func (w *Writer) WriteI32(v int32) { w.WriteU32(uint32(v)) }

// WriteU64 appends a little-endian uint64.
func (w *Writer) WriteU64(v uint64) {
	w.grow(8)
	for i := 0; i < 8; i++ {
		w.buf = append(w.buf, byte(v>>(8*i)))
	}
}

// WriteI64 appends a little-endian int64.
func (w *Writer) WriteI64(v int64) { w.WriteU64(uint64(v)) }

// WriteF32 appends a little-endian IEEE-754 single.
func (w *Writer) WriteF32(v float32) { w.WriteU32(math.Float32bits(v)) }

// WriteF64 appends a little-endian IEEE-754 double.
func (w *Writer) WriteF64(v float64) { w.WriteU64(math.Float64bits(v)) }

// WriteFixed appends a 16.16 fixed-point value.
func (w *Writer) WriteFixed(v Fixed16_16) { w.WriteI32(int32(v)) }

// WriteString appends a u16 byte-length prefix followed by the UTF-8 bytes.
// Fails if s is longer than 65535 bytes (spec.md §4.1).
func (w *Writer) WriteString(s string) error {
	if len(s) > 0xFFFF {
		return errors.WithStack(newCodecError(ErrBadChunkSize, w.Len(), "string exceeds 65535 bytes"))
	}
	w.WriteU16(uint16(len(s)))
	w.WriteBytes([]byte(s))
	return nil
}

// WriteUUID writes a canonical (with or without dashes) UUID string as 16
// raw bytes. Returns an error if s is not a well-formed UUID.
func (w *Writer) WriteUUID(s string) error {
	b, ok := parseUUID(s)
	if !ok {
		return errors.WithStack(newCodecError(ErrBadChunkSize, w.Len(), "malformed uuid: "+s))
	}
	w.WriteBytes(b[:])
	return nil
}

// Mark records the current write position for a later patch.
func (w *Writer) Mark() int { return len(w.buf) }

// PatchU16 overwrites a previously-written little-endian uint16 at offset.
func (w *Writer) PatchU16(offset int, v uint16) {
	w.buf[offset] = byte(v)
	w.buf[offset+1] = byte(v >> 8)
}

// PatchU32 overwrites a previously-written little-endian uint32 at offset.
func (w *Writer) PatchU32(offset int, v uint32) {
	w.buf[offset] = byte(v)
	w.buf[offset+1] = byte(v >> 8)
	w.buf[offset+2] = byte(v >> 16)
	w.buf[offset+3] = byte(v >> 24)
}
