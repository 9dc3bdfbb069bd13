package aseprite

import "testing"

func TestEncodeDecodeRoundTripRichFile(t *testing.T) {
	text := "hello"
	file := &File{
		Header: Header{Width: 8, Height: 8, ColorDepth: 8, FrameCount: 2},
		Layers: []Layer{
			{Flags: LayerFlagVisible, Name: "bg", Opacity: 255},
			{Flags: LayerFlagVisible, Name: "fg", Opacity: 128, UserData: &UserData{Text: &text}},
		},
		Palette: &Palette{
			Size: 2, FirstIndex: 0, LastIndex: 1,
			Entries: []PaletteEntry{{R: 0, G: 0, B: 0, A: 255}, {R: 255, G: 255, B: 255, A: 255}},
		},
		Tags: []Tag{
			{From: 0, To: 1, Direction: TagForward, Name: "walk"},
		},
		Slices: []Slice{
			{Name: "hitbox", Keys: []SliceKey{{FrameIndex: 0, X: 1, Y: 1, Width: 4, Height: 4}}},
		},
		Frames: []Frame{
			{
				DurationMS: 100,
				Cels: []Cel{
					{LayerIndex: 0, Variant: CelRawImage, Width: 2, Height: 2, Pixels: []byte{0, 1, 0, 1}},
					{LayerIndex: 1, Variant: CelRawImage, Width: 2, Height: 2, Pixels: []byte{1, 0, 1, 0}},
				},
			},
			{
				DurationMS: 100,
				Cels: []Cel{
					{LayerIndex: 0, Variant: CelLinked, LinkedFrameIndex: 0},
				},
			},
		},
	}

	data, err := Encode(file, EncodeOptions{Mode: EncodeCanonical, Compression: DefaultCompression})
	if err != nil {
		t.Fatal(err)
	}

	got, err := Decode(data, DefaultDecodeOptions())
	if err != nil {
		t.Fatal(err)
	}

	if len(got.Layers) != 2 || got.Layers[0].Name != "bg" || got.Layers[1].Name != "fg" {
		t.Fatalf("layers = %+v", got.Layers)
	}
	if got.Layers[1].UserData == nil || got.Layers[1].UserData.Text == nil || *got.Layers[1].UserData.Text != "hello" {
		t.Fatalf("layer user data not round tripped: %+v", got.Layers[1].UserData)
	}
	if got.Palette == nil || len(got.Palette.Entries) != 2 {
		t.Fatalf("palette = %+v", got.Palette)
	}
	if len(got.Tags) != 1 || got.Tags[0].Name != "walk" || got.Tags[0].To != 1 {
		t.Fatalf("tags = %+v", got.Tags)
	}
	if len(got.Slices) != 1 || got.Slices[0].Name != "hitbox" || len(got.Slices[0].Keys) != 1 {
		t.Fatalf("slices = %+v", got.Slices)
	}
	if len(got.Frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(got.Frames))
	}
	if got.Frames[1].Cels[0].Variant != CelLinked || got.Frames[1].Cels[0].LinkedFrameIndex != 0 {
		t.Fatalf("linked cel not round tripped: %+v", got.Frames[1].Cels[0])
	}

	resolved, err := ResolveLinkedCel(got, &got.Frames[1].Cels[0])
	if err != nil {
		t.Fatal(err)
	}
	if resolved.Variant != CelRawImage || resolved.LayerIndex != 0 {
		t.Fatalf("resolved linked cel = %+v", resolved)
	}
}

func TestEncodePreservedModeReemitsRawChunks(t *testing.T) {
	file := buildMinimalFile()
	encoded, err := Encode(file, EncodeOptions{Mode: EncodeCanonical, Compression: DefaultCompression})
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := Decode(encoded, DefaultDecodeOptions())
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Frames[0].Preserved == nil {
		t.Fatal("expected preserved chunk list to be populated")
	}

	reencoded, err := Encode(decoded, EncodeOptions{Mode: EncodePreserved, Compression: DefaultCompression})
	if err != nil {
		t.Fatal(err)
	}

	redecoded, err := Decode(reencoded, DefaultDecodeOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(redecoded.Layers) != 1 || redecoded.Layers[0].Name != "Layer 1" {
		t.Fatalf("preserved-mode round trip layers = %+v", redecoded.Layers)
	}
}

func TestEncodeCompressedCelRoundTrip(t *testing.T) {
	pixels := make([]byte, 4*4*4)
	for i := range pixels {
		pixels[i] = byte(i)
	}
	compressed, err := DefaultCompression.Deflate(pixels)
	if err != nil {
		t.Fatal(err)
	}

	file := &File{
		Header: Header{Width: 4, Height: 4, ColorDepth: 32, FrameCount: 1},
		Layers: []Layer{{Name: "Layer 1"}},
		Frames: []Frame{{Cels: []Cel{
			{LayerIndex: 0, Variant: CelCompressedImage, Width: 4, Height: 4, Compressed: compressed},
		}}},
	}

	data, err := Encode(file, EncodeOptions{Mode: EncodeCanonical, Compression: DefaultCompression})
	if err != nil {
		t.Fatal(err)
	}

	opts := DefaultDecodeOptions()
	opts.DecodeImages = DecodeImagesPixels
	got, err := Decode(data, opts)
	if err != nil {
		t.Fatal(err)
	}
	inflated, err := DefaultCompression.Inflate(got.Frames[0].Cels[0].Compressed)
	if err != nil {
		t.Fatal(err)
	}
	if len(inflated) != len(pixels) {
		t.Fatalf("inflated len = %d, want %d", len(inflated), len(pixels))
	}
}
