package aseprite

import "testing"

func TestPropertyValueScalarRoundTrip(t *testing.T) {
	cases := []PropertyValue{
		{Type: PropBool, Bool: true},
		{Type: PropInt8, Int: -5},
		{Type: PropUint8, Uint: 200},
		{Type: PropInt32, Int: -123456},
		{Type: PropUint64, Uint: 1 << 40},
		{Type: PropFixed, Fixed: NewFixed16_16(1.25)},
		{Type: PropFloat, Float: 3.5},
		{Type: PropDouble, Double: 2.71828},
		{Type: PropString, Str: "hello"},
		{Type: PropUUID, UUID: "01234567-89ab-cdef-0123-456789abcdef"},
		{Type: PropPoint, X: 10, Y: -20},
		{Type: PropSize, W: 5, H: 6},
		{Type: PropRect, X: 1, Y: 2, W: 3, H: 4},
	}

	for _, in := range cases {
		w := NewWriter()
		if err := encodePropertyValue(w, in); err != nil {
			t.Fatalf("type %v: encode error: %v", in.Type, err)
		}
		c := NewCursor(w.Bytes())
		got, err := decodePropertyValue(c)
		if err != nil {
			t.Fatalf("type %v: decode error: %v", in.Type, err)
		}
		if got.Type != in.Type || got.Bool != in.Bool || got.Int != in.Int || got.Uint != in.Uint ||
			got.Fixed != in.Fixed || got.Float != in.Float || got.Double != in.Double || got.Str != in.Str ||
			got.UUID != in.UUID || got.X != in.X || got.Y != in.Y || got.W != in.W || got.H != in.H {
			t.Fatalf("type %v: round trip = %+v, want %+v", in.Type, got, in)
		}
	}
}

func TestPropertyValueVectorRoundTrip(t *testing.T) {
	in := PropertyValue{
		Type:           PropVector,
		VectorElemType: PropInt32,
		Vector: []PropertyValue{
			{Type: PropInt32, Int: 1},
			{Type: PropInt32, Int: -2},
			{Type: PropInt32, Int: 3},
		},
	}
	w := NewWriter()
	if err := encodePropertyValue(w, in); err != nil {
		t.Fatal(err)
	}
	c := NewCursor(w.Bytes())
	got, err := decodePropertyValue(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Vector) != 3 || got.Vector[1].Int != -2 {
		t.Fatalf("vector round trip = %+v", got)
	}
}

func TestPropertiesMapRoundTrip(t *testing.T) {
	in := PropertyValue{
		Type: PropPropertiesMap,
		Map: []PropertiesMapEntry{
			{Properties: []NamedProperty{
				{Name: "speed", Value: PropertyValue{Type: PropInt32, Int: 42}},
				{Name: "label", Value: PropertyValue{Type: PropString, Str: "fast"}},
			}},
		},
	}
	w := NewWriter()
	if err := encodePropertyValue(w, in); err != nil {
		t.Fatal(err)
	}
	c := NewCursor(w.Bytes())
	got, err := decodePropertyValue(c)
	if err != nil {
		t.Fatal(err)
	}
	var props []NamedProperty
	for _, e := range got.Map {
		props = append(props, e.Properties...)
	}
	if len(props) != 2 || props[0].Name != "speed" || props[0].Value.Int != 42 {
		t.Fatalf("properties map round trip = %+v", props)
	}
}

func TestPropertyValueUnknownTagRequiresRawBytes(t *testing.T) {
	v := PropertyValue{Type: PropertyType(0xFFEE)}
	w := NewWriter()
	if err := encodePropertyValueBody(w, v); err == nil {
		t.Fatal("expected error encoding unknown type without raw bytes")
	}

	v.RawBytes = []byte{1, 2, 3}
	w = NewWriter()
	if err := encodePropertyValueBody(w, v); err != nil {
		t.Fatalf("expected raw fallback to succeed: %v", err)
	}
	if len(w.Bytes()) != 3 {
		t.Fatalf("expected raw bytes re-emitted verbatim, got %d bytes", len(w.Bytes()))
	}
}

func TestExtensionBlocksRoundTrip(t *testing.T) {
	blocks := []PropertiesMapEntry{
		{ExtensionID: 7, Properties: []NamedProperty{
			{Name: "a", Value: PropertyValue{Type: PropBool, Bool: true}},
		}},
		{ExtensionID: 9, Properties: []NamedProperty{
			{Name: "b", Value: PropertyValue{Type: PropUint16, Uint: 99}},
		}},
	}
	w := NewWriter()
	if err := encodeExtensionBlocks(w, blocks); err != nil {
		t.Fatal(err)
	}
	c := NewCursor(w.Bytes())
	got, err := decodeExtensionBlocks(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ExtensionID != 7 || got[1].ExtensionID != 9 {
		t.Fatalf("extension blocks round trip = %+v", got)
	}
	if got[0].Properties[0].Name != "a" || !got[0].Properties[0].Value.Bool {
		t.Fatalf("first block property mismatch: %+v", got[0].Properties[0])
	}
}
