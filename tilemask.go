package aseprite

// TileMasks are the four disjoint bitmasks that pack a tile's id and
// orientation into one integer (spec.md §3.2 invariant 9).
type TileMasks struct {
	TileID   uint32
	XFlip    uint32
	YFlip    uint32
	Rotation uint32
}

// DecodeTile unpacks a raw tile value per the given masks.
func DecodeTile(encoded uint32, m TileMasks) Tile {
	return Tile{
		TileID: encoded & m.TileID,
		XFlip:  encoded&m.XFlip != 0,
		YFlip:  encoded&m.YFlip != 0,
		Rot90:  encoded&m.Rotation != 0,
	}
}

// EncodeTile packs a tile back into a raw value per the given masks.
func EncodeTile(t Tile, m TileMasks) uint32 {
	v := t.TileID & m.TileID
	if t.XFlip {
		v |= m.XFlip
	}
	if t.YFlip {
		v |= m.YFlip
	}
	if t.Rot90 {
		v |= m.Rotation
	}
	return v
}
