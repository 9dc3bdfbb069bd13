package aseprite

import "testing"

func TestWriterGrowthBeyondInitialCapacity(t *testing.T) {
	w := NewWriter()
	for i := 0; i < writerInitialCapacity*3; i++ {
		w.WriteU8(byte(i))
	}
	if w.Len() != writerInitialCapacity*3 {
		t.Fatalf("Len = %d, want %d", w.Len(), writerInitialCapacity*3)
	}
	for i := 0; i < 10; i++ {
		if w.Bytes()[i] != byte(i) {
			t.Fatalf("byte %d = %d, want %d", i, w.Bytes()[i], byte(i))
		}
	}
}

func TestWriterMarkAndPatch(t *testing.T) {
	w := NewWriter()
	mark := w.Mark()
	w.WriteU32(0)
	w.WriteBytes([]byte{1, 2, 3, 4, 5})
	w.PatchU32(mark, uint32(w.Len()))

	c := NewCursor(w.Bytes())
	size, err := c.ReadU32()
	if err != nil {
		t.Fatal(err)
	}
	if int(size) != w.Len() {
		t.Fatalf("patched size = %d, want %d", size, w.Len())
	}
}

func TestWriterStringTooLong(t *testing.T) {
	w := NewWriter()
	big := make([]byte, 0x10000)
	if err := w.WriteString(string(big)); err == nil {
		t.Fatal("expected error for oversized string")
	}
}

func TestWriterUUIDRejectsMalformed(t *testing.T) {
	w := NewWriter()
	if err := w.WriteUUID("not-a-uuid"); err == nil {
		t.Fatal("expected error for malformed uuid")
	}
}
