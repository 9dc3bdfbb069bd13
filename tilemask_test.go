package aseprite

import "testing"

func TestTileMaskRoundTrip(t *testing.T) {
	masks := TileMasks{
		TileID:   0x1FFFFFFF,
		XFlip:    0x20000000,
		YFlip:    0x40000000,
		Rotation: 0x80000000,
	}

	tile := Tile{TileID: 123, XFlip: true, YFlip: false, Rot90: true}
	encoded := EncodeTile(tile, masks)
	got := DecodeTile(encoded, masks)
	if got != tile {
		t.Fatalf("round trip = %+v, want %+v", got, tile)
	}
}

func TestTileMaskDecodeRawValue(t *testing.T) {
	masks := TileMasks{
		TileID:   0x1FFFFFFF,
		XFlip:    0x20000000,
		YFlip:    0x40000000,
		Rotation: 0x80000000,
	}
	got := DecodeTile(100|0x20000000, masks)
	want := Tile{TileID: 100, XFlip: true, YFlip: false, Rot90: false}
	if got != want {
		t.Fatalf("decode = %+v, want %+v", got, want)
	}
}
