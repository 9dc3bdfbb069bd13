package aseprite

import (
	"github.com/pkg/errors"
)

// PropertyType enumerates the wire type tags of spec.md §4.5.
type PropertyType uint16

const (
	PropNull PropertyType = iota
	PropBool
	PropInt8
	PropUint8
	PropInt16
	PropUint16
	PropInt32
	PropUint32
	PropInt64
	PropUint64
	PropFixed
	PropFloat
	PropDouble
	PropString
	PropPoint
	PropSize
	PropRect
	PropVector
	PropPropertiesMap
	PropUUID
)

// PropertyValue is a tagged variant holding one property value. Exactly one
// field group is populated, selected by Type. For a Type the encoder does
// not recognize, RawBytes is written verbatim after the type tag. Decoding
// never fills RawBytes: an unknown type tag fails with ErrBadChunkSize.
type PropertyValue struct {
	Type PropertyType

	Bool   bool
	Int    int64  // Int8/16/32/64
	Uint   uint64 // Uint8/16/32/64
	Fixed  Fixed16_16
	Float  float32
	Double float64
	Str    string
	UUID   string

	X, Y, W, H int32 // Point/Size/Rect (subset used per Type)

	VectorElemType PropertyType
	Vector         []PropertyValue

	Map []PropertiesMapEntry

	RawType  PropertyType
	RawBytes []byte // forward-compat payload for an unrecognized type tag
}

// decodePropertyValue reads one {name already consumed}{type tag, value}
// record per spec.md §4.5.
func decodePropertyValue(c *Cursor) (PropertyValue, error) {
	tagU, err := c.ReadU16()
	if err != nil {
		return PropertyValue{}, err
	}
	tag := PropertyType(tagU)
	switch tag {
	case PropNull:
		return PropertyValue{Type: tag}, nil
	case PropBool:
		v, err := c.ReadU8()
		return PropertyValue{Type: tag, Bool: v != 0}, err
	case PropInt8:
		v, err := c.ReadU8()
		return PropertyValue{Type: tag, Int: int64(int16(v) - 128)}, err
	case PropUint8:
		v, err := c.ReadU8()
		return PropertyValue{Type: tag, Uint: uint64(v)}, err
	case PropInt16:
		v, err := c.ReadI16()
		return PropertyValue{Type: tag, Int: int64(v)}, err
	case PropUint16:
		v, err := c.ReadU16()
		return PropertyValue{Type: tag, Uint: uint64(v)}, err
	case PropInt32:
		v, err := c.ReadI32()
		return PropertyValue{Type: tag, Int: int64(v)}, err
	case PropUint32:
		v, err := c.ReadU32()
		return PropertyValue{Type: tag, Uint: uint64(v)}, err
	case PropInt64:
		v, err := c.ReadI64()
		return PropertyValue{Type: tag, Int: v}, err
	case PropUint64:
		v, err := c.ReadU64()
		return PropertyValue{Type: tag, Uint: v}, err
	case PropFixed:
		v, err := c.ReadFixed()
		return PropertyValue{Type: tag, Fixed: v}, err
	case PropFloat:
		v, err := c.ReadF32()
		return PropertyValue{Type: tag, Float: v}, err
	case PropDouble:
		v, err := c.ReadF64()
		return PropertyValue{Type: tag, Double: v}, err
	case PropString:
		v, err := c.ReadString()
		return PropertyValue{Type: tag, Str: v}, err
	case PropUUID:
		v, err := c.ReadUUID()
		return PropertyValue{Type: tag, UUID: v}, err
	case PropPoint:
		x, err := c.ReadI32()
		if err != nil {
			return PropertyValue{}, err
		}
		y, err := c.ReadI32()
		return PropertyValue{Type: tag, X: x, Y: y}, err
	case PropSize:
		w, err := c.ReadI32()
		if err != nil {
			return PropertyValue{}, err
		}
		h, err := c.ReadI32()
		return PropertyValue{Type: tag, W: w, H: h}, err
	case PropRect:
		x, err := c.ReadI32()
		if err != nil {
			return PropertyValue{}, err
		}
		y, err := c.ReadI32()
		if err != nil {
			return PropertyValue{}, err
		}
		w, err := c.ReadI32()
		if err != nil {
			return PropertyValue{}, err
		}
		h, err := c.ReadI32()
		return PropertyValue{Type: tag, X: x, Y: y, W: w, H: h}, err
	case PropVector:
		count, err := c.ReadU32()
		if err != nil {
			return PropertyValue{}, err
		}
		elemU, err := c.ReadU16()
		if err != nil {
			return PropertyValue{}, err
		}
		elemType := PropertyType(elemU)
		vec := make([]PropertyValue, count)
		for i := uint32(0); i < count; i++ {
			vec[i], err = decodeTypedPropertyValue(c, elemType)
			if err != nil {
				return PropertyValue{}, err
			}
		}
		return PropertyValue{Type: tag, VectorElemType: elemType, Vector: vec}, nil
	case PropPropertiesMap:
		m, err := decodePropertiesMap(c)
		return PropertyValue{Type: tag, Map: m}, err
	default:
		// Unknown type tag: its size cannot be known, so decoding stops here
		// with BadChunkSize instead of producing a placeholder value.
		return PropertyValue{}, errors.WithStack(newCodecError(ErrBadChunkSize, c.Offset(), "unknown property type tag with no known size"))
	}
}

// decodeTypedPropertyValue reads a Vector element, which has no type tag of
// its own on the wire (the tag is the Vector's elemType).
func decodeTypedPropertyValue(c *Cursor, elemType PropertyType) (PropertyValue, error) {
	// PropertiesMap elements are read here; every other element type goes to
	// decodeScalarPropertyValue, which rejects nested Vectors.
	switch elemType {
	case PropPropertiesMap:
		m, err := decodePropertiesMap(c)
		return PropertyValue{Type: elemType, Map: m}, err
	default:
		return decodeScalarPropertyValue(c, elemType)
	}
}

func decodeScalarPropertyValue(c *Cursor, t PropertyType) (PropertyValue, error) {
	switch t {
	case PropNull:
		return PropertyValue{Type: t}, nil
	case PropBool:
		v, err := c.ReadU8()
		return PropertyValue{Type: t, Bool: v != 0}, err
	case PropInt8:
		v, err := c.ReadU8()
		return PropertyValue{Type: t, Int: int64(int16(v) - 128)}, err
	case PropUint8:
		v, err := c.ReadU8()
		return PropertyValue{Type: t, Uint: uint64(v)}, err
	case PropInt16:
		v, err := c.ReadI16()
		return PropertyValue{Type: t, Int: int64(v)}, err
	case PropUint16:
		v, err := c.ReadU16()
		return PropertyValue{Type: t, Uint: uint64(v)}, err
	case PropInt32:
		v, err := c.ReadI32()
		return PropertyValue{Type: t, Int: int64(v)}, err
	case PropUint32:
		v, err := c.ReadU32()
		return PropertyValue{Type: t, Uint: uint64(v)}, err
	case PropInt64:
		v, err := c.ReadI64()
		return PropertyValue{Type: t, Int: v}, err
	case PropUint64:
		v, err := c.ReadU64()
		return PropertyValue{Type: t, Uint: v}, err
	case PropFixed:
		v, err := c.ReadFixed()
		return PropertyValue{Type: t, Fixed: v}, err
	case PropFloat:
		v, err := c.ReadF32()
		return PropertyValue{Type: t, Float: v}, err
	case PropDouble:
		v, err := c.ReadF64()
		return PropertyValue{Type: t, Double: v}, err
	case PropString:
		v, err := c.ReadString()
		return PropertyValue{Type: t, Str: v}, err
	case PropUUID:
		v, err := c.ReadUUID()
		return PropertyValue{Type: t, UUID: v}, err
	case PropPoint:
		x, err := c.ReadI32()
		if err != nil {
			return PropertyValue{}, err
		}
		y, err := c.ReadI32()
		return PropertyValue{Type: t, X: x, Y: y}, err
	case PropSize:
		w, err := c.ReadI32()
		if err != nil {
			return PropertyValue{}, err
		}
		h, err := c.ReadI32()
		return PropertyValue{Type: t, W: w, H: h}, err
	case PropRect:
		x, err := c.ReadI32()
		if err != nil {
			return PropertyValue{}, err
		}
		y, err := c.ReadI32()
		if err != nil {
			return PropertyValue{}, err
		}
		w, err := c.ReadI32()
		if err != nil {
			return PropertyValue{}, err
		}
		h, err := c.ReadI32()
		return PropertyValue{Type: t, X: x, Y: y, W: w, H: h}, err
	default:
		return PropertyValue{}, errors.WithStack(newCodecError(ErrBadChunkSize, c.Offset(), "unsupported vector element type"))
	}
}

// decodePropertiesMap reads a recursive PropertiesMap value (spec.md §4.5):
// u32 size then that many {string key, u16 type, value} records. Unlike the
// top-level UserData properties payload, this is a flat list, not grouped
// by extension id; it is stored under a single synthetic group so both
// shapes share the []PropertiesMapEntry representation.
func decodePropertiesMap(c *Cursor) ([]PropertiesMapEntry, error) {
	count, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	props := make([]NamedProperty, count)
	for i := uint32(0); i < count; i++ {
		name, err := c.ReadString()
		if err != nil {
			return nil, err
		}
		v, err := decodePropertyValue(c)
		if err != nil {
			return nil, err
		}
		props[i] = NamedProperty{Name: name, Value: v}
	}
	return []PropertiesMapEntry{{Properties: props}}, nil
}

// decodeExtensionBlocks reads the has-properties payload of a UserData
// chunk: a u32 count of extension blocks, each {u32 extension-id, u32
// property-count, {string,type,value}...} (spec.md §4.5).
func decodeExtensionBlocks(c *Cursor) ([]PropertiesMapEntry, error) {
	blockCount, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	blocks := make([]PropertiesMapEntry, 0, blockCount)
	for i := uint32(0); i < blockCount; i++ {
		extID, err := c.ReadU32()
		if err != nil {
			return nil, err
		}
		propCount, err := c.ReadU32()
		if err != nil {
			return nil, err
		}
		props := make([]NamedProperty, propCount)
		for j := uint32(0); j < propCount; j++ {
			name, err := c.ReadString()
			if err != nil {
				return nil, err
			}
			v, err := decodePropertyValue(c)
			if err != nil {
				return nil, err
			}
			props[j] = NamedProperty{Name: name, Value: v}
		}
		blocks = append(blocks, PropertiesMapEntry{ExtensionID: extID, Properties: props})
	}
	return blocks, nil
}

func encodeExtensionBlocks(w *Writer, blocks []PropertiesMapEntry) error {
	w.WriteU32(uint32(len(blocks)))
	for _, b := range blocks {
		w.WriteU32(b.ExtensionID)
		w.WriteU32(uint32(len(b.Properties)))
		for _, p := range b.Properties {
			if err := w.WriteString(p.Name); err != nil {
				return err
			}
			if err := encodePropertyValue(w, p.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodePropertyValue(w *Writer, v PropertyValue) error {
	w.WriteU16(uint16(v.Type))
	return encodePropertyValueBody(w, v)
}

func encodePropertyValueBody(w *Writer, v PropertyValue) error {
	switch v.Type {
	case PropNull:
	case PropBool:
		if v.Bool {
			w.WriteU8(1)
		} else {
			w.WriteU8(0)
		}
	case PropInt8:
		w.WriteU8(uint8(v.Int + 128))
	case PropUint8:
		w.WriteU8(uint8(v.Uint))
	case PropInt16:
		w.WriteI16(int16(v.Int))
	case PropUint16:
		w.WriteU16(uint16(v.Uint))
	case PropInt32:
		w.WriteI32(int32(v.Int))
	case PropUint32:
		w.WriteU32(uint32(v.Uint))
	case PropInt64:
		w.WriteI64(v.Int)
	case PropUint64:
		w.WriteU64(v.Uint)
	case PropFixed:
		w.WriteFixed(v.Fixed)
	case PropFloat:
		w.WriteF32(v.Float)
	case PropDouble:
		w.WriteF64(v.Double)
	case PropString:
		return w.WriteString(v.Str)
	case PropUUID:
		return w.WriteUUID(v.UUID)
	case PropPoint:
		w.WriteI32(v.X)
		w.WriteI32(v.Y)
	case PropSize:
		w.WriteI32(v.W)
		w.WriteI32(v.H)
	case PropRect:
		w.WriteI32(v.X)
		w.WriteI32(v.Y)
		w.WriteI32(v.W)
		w.WriteI32(v.H)
	case PropVector:
		w.WriteU32(uint32(len(v.Vector)))
		w.WriteU16(uint16(v.VectorElemType))
		for _, e := range v.Vector {
			if err := encodePropertyValueBody(w, e); err != nil {
				return err
			}
		}
	case PropPropertiesMap:
		var props []NamedProperty
		for _, entry := range v.Map {
			props = append(props, entry.Properties...)
		}
		w.WriteU32(uint32(len(props)))
		for _, p := range props {
			if err := w.WriteString(p.Name); err != nil {
				return err
			}
			if err := encodePropertyValue(w, p.Value); err != nil {
				return err
			}
		}
	default:
		if v.RawBytes == nil {
			return errors.WithStack(newCodecError(ErrBadChunkSize, w.Len(), "cannot re-emit unknown property type without preserved bytes"))
		}
		w.WriteBytes(v.RawBytes)
	}
	return nil
}
