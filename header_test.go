package aseprite

import "testing"

func TestEncodeHeaderIsExactly128Bytes(t *testing.T) {
	w := NewWriter()
	encodeHeader(w, Header{Width: 1, Height: 1, ColorDepth: 32, FrameCount: 1})
	if w.Len() != headerSize {
		t.Fatalf("encoded header = %d bytes, want %d", w.Len(), headerSize)
	}
}

func TestDecodeHeaderConsumesExactly128Bytes(t *testing.T) {
	w := NewWriter()
	encodeHeader(w, Header{Width: 16, Height: 16, ColorDepth: 32, FrameCount: 1})
	data := w.Bytes()

	c := NewCursor(data)
	if _, err := decodeHeader(c, true); err != nil {
		t.Fatal(err)
	}
	if c.Offset() != headerSize {
		t.Fatalf("decodeHeader left cursor at offset %d, want %d", c.Offset(), headerSize)
	}
}
