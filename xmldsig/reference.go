package xmldsig

import (
	"github.com/EVerest/everest-core-sub002/bitio"
	"github.com/EVerest/everest-core-sub002/exierr"
	"github.com/EVerest/everest-core-sub002/valuecodec"
)

const (
	idAttrCapacity   = 64
	uriAttrCapacity  = 256
	typeAttrCapacity = 256
)

// TransformType carries the required Algorithm URI attribute plus an
// opaque wildcard payload: the ##any content a Transform's parameters
// element allows, modeled per spec.md §4.2's wildcard-ANY contract
// (leading zero bit, length-prefixed byte run). Transform parameters are
// rarely populated in ISO 15118-20 traffic; when absent, AnyValueIsUsed is
// false and no payload bits are spent beyond the presence decision.
type TransformType struct {
	Algorithm      string
	AnyValue       []byte
	AnyValueIsUsed bool
}

const anyValueCapacity = 256

// gTransform* name the two productions offered once Algorithm has been
// read: SE(AnyValue) or EE (2 productions, width 1).
const (
	gTransformAnyValue = 0
	gTransformEnd      = 1
)

func (t *TransformType) Encode(c *bitio.Cursor) error {
	if err := valuecodec.EncodeString(c, t.Algorithm); err != nil {
		return err
	}
	if t.AnyValueIsUsed {
		if err := c.WriteNBitUint(1, gTransformAnyValue); err != nil {
			return err
		}
		return valuecodec.EncodeBinary(c, t.AnyValue)
	}
	return c.WriteNBitUint(1, gTransformEnd)
}

func DecodeTransformType(c *bitio.Cursor) (*TransformType, error) {
	algo, err := valuecodec.DecodeString(c, algorithmURICapacity)
	if err != nil {
		return nil, err
	}
	code, err := c.ReadNBitUint(1)
	if err != nil {
		return nil, err
	}
	t := &TransformType{Algorithm: algo}
	switch code {
	case gTransformAnyValue:
		t.AnyValue, err = valuecodec.DecodeBinary(c, anyValueCapacity)
		if err != nil {
			return nil, err
		}
		t.AnyValueIsUsed = true
	case gTransformEnd:
		// no payload
	default:
		return nil, exierr.New(exierr.UnknownEventCode, "TransformType: unexpected event code %d", code)
	}
	return t, nil
}

// MaxTransforms is the schema-declared maximum occurrence of Transform
// inside a Transforms element (spec.md §3 array bound).
const MaxTransforms = 4

// TransformsType holds a bounded array of Transform (spec.md §3: "Array
// ... { array: [T; N], arrayLen: u16 }").
type TransformsType struct {
	Transform    [MaxTransforms]TransformType
	TransformLen uint16
}

func (t *TransformsType) Encode(c *bitio.Cursor) error {
	if int(t.TransformLen) > MaxTransforms {
		return exierr.New(exierr.UnknownEventCode, "TransformsType: arrayLen %d exceeds max %d", t.TransformLen, MaxTransforms)
	}
	for i := 0; i < int(t.TransformLen); i++ {
		// SE(Transform) -> next chain state (spec.md §4.2 array chain)
		if err := c.WriteBit(0); err != nil {
			return err
		}
		if err := t.Transform[i].Encode(c); err != nil {
			return err
		}
	}
	// EE terminates the chain; omitted when the array reached MaxTransforms
	// (spec.md §8: "Maximum-capacity arrays encode without the post-array
	// SE branch ever being offered").
	if int(t.TransformLen) < MaxTransforms {
		return c.WriteBit(1)
	}
	return nil
}

func DecodeTransformsType(c *bitio.Cursor) (*TransformsType, error) {
	out := &TransformsType{}
	for out.TransformLen < MaxTransforms {
		bit, err := c.ReadBit()
		if err != nil {
			return nil, err
		}
		if bit == 1 {
			return out, nil
		}
		elem, err := DecodeTransformType(c)
		if err != nil {
			return nil, err
		}
		out.Transform[out.TransformLen] = *elem
		out.TransformLen++
	}
	return out, nil
}

// ReferenceType mirrors ds:ReferenceType: three optional attributes (Id,
// URI, Type) followed by an optional Transforms, a required DigestMethod,
// and a required DigestValue.
type ReferenceType struct {
	Id         string
	IdIsUsed   bool
	URI        string
	URIIsUsed  bool
	Type       string
	TypeIsUsed bool

	Transforms       TransformsType
	TransformsIsUsed bool

	DigestMethod DigestMethodType
	DigestValue  []byte
}

// Encode walks the attribute chain (each optional attribute is a 2-
// production binary decision, spec.md §4.2 "Attribute productions"), then
// the optional Transforms decision, then the two required trailing
// particles.
func (r *ReferenceType) Encode(c *bitio.Cursor) error {
	if err := encodeOptionalAttr(c, r.IdIsUsed, r.Id, idAttrCapacity); err != nil {
		return err
	}
	if err := encodeOptionalAttr(c, r.URIIsUsed, r.URI, uriAttrCapacity); err != nil {
		return err
	}
	if err := encodeOptionalAttr(c, r.TypeIsUsed, r.Type, typeAttrCapacity); err != nil {
		return err
	}
	if r.TransformsIsUsed {
		if err := c.WriteBit(0); err != nil {
			return err
		}
		if err := r.Transforms.Encode(c); err != nil {
			return err
		}
	} else {
		if err := c.WriteBit(1); err != nil {
			return err
		}
	}
	if err := r.DigestMethod.Encode(c); err != nil {
		return err
	}
	return EncodeDigestValue(c, r.DigestValue)
}

func DecodeReferenceType(c *bitio.Cursor) (*ReferenceType, error) {
	r := &ReferenceType{}
	var err error
	r.Id, r.IdIsUsed, err = decodeOptionalAttr(c, idAttrCapacity)
	if err != nil {
		return nil, err
	}
	r.URI, r.URIIsUsed, err = decodeOptionalAttr(c, uriAttrCapacity)
	if err != nil {
		return nil, err
	}
	r.Type, r.TypeIsUsed, err = decodeOptionalAttr(c, typeAttrCapacity)
	if err != nil {
		return nil, err
	}
	bit, err := c.ReadBit()
	if err != nil {
		return nil, err
	}
	if bit == 0 {
		tf, err := DecodeTransformsType(c)
		if err != nil {
			return nil, err
		}
		r.Transforms = *tf
		r.TransformsIsUsed = true
	}
	dm, err := DecodeDigestMethodType(c)
	if err != nil {
		return nil, err
	}
	r.DigestMethod = *dm
	r.DigestValue, err = DecodeDigestValue(c)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// encodeOptionalAttr is the shared shape for an optional xs:string/anyURI
// attribute: a 1-bit presence decision (2 productions: AT(attr) or move
// on) followed by the value when present.
func encodeOptionalAttr(c *bitio.Cursor, isUsed bool, value string, capacity int) error {
	if isUsed {
		if err := c.WriteBit(0); err != nil {
			return err
		}
		return valuecodec.EncodeString(c, value)
	}
	return c.WriteBit(1)
}

func decodeOptionalAttr(c *bitio.Cursor, capacity int) (string, bool, error) {
	bit, err := c.ReadBit()
	if err != nil {
		return "", false, err
	}
	if bit == 1 {
		return "", false, nil
	}
	v, err := valuecodec.DecodeString(c, capacity)
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// MaxReferences is the schema-declared maximum occurrence of Reference
// inside a SignedInfo or Manifest element (spec.md §3: "4 for
// SignedInfo.Reference").
const MaxReferences = 4

// ManifestType holds a bounded array of Reference plus an optional Id
// attribute.
type ManifestType struct {
	Id          string
	IdIsUsed    bool
	Reference   [MaxReferences]ReferenceType
	ReferenceLen uint16
}

func (m *ManifestType) Encode(c *bitio.Cursor) error {
	if err := encodeOptionalAttr(c, m.IdIsUsed, m.Id, idAttrCapacity); err != nil {
		return err
	}
	if int(m.ReferenceLen) > MaxReferences {
		return exierr.New(exierr.UnknownEventCode, "ManifestType: arrayLen %d exceeds max %d", m.ReferenceLen, MaxReferences)
	}
	for i := 0; i < int(m.ReferenceLen); i++ {
		if err := c.WriteBit(0); err != nil {
			return err
		}
		if err := m.Reference[i].Encode(c); err != nil {
			return err
		}
	}
	if int(m.ReferenceLen) < MaxReferences {
		return c.WriteBit(1)
	}
	return nil
}

func DecodeManifestType(c *bitio.Cursor) (*ManifestType, error) {
	out := &ManifestType{}
	var err error
	out.Id, out.IdIsUsed, err = decodeOptionalAttr(c, idAttrCapacity)
	if err != nil {
		return nil, err
	}
	for out.ReferenceLen < MaxReferences {
		bit, err := c.ReadBit()
		if err != nil {
			return nil, err
		}
		if bit == 1 {
			return out, nil
		}
		ref, err := DecodeReferenceType(c)
		if err != nil {
			return nil, err
		}
		out.Reference[out.ReferenceLen] = *ref
		out.ReferenceLen++
	}
	return out, nil
}
