package xmldsig

import (
	"github.com/EVerest/everest-core-sub002/bitio"
	"github.com/EVerest/everest-core-sub002/exierr"
	"github.com/EVerest/everest-core-sub002/valuecodec"
)

const (
	signatureValueCapacity = 128
	objectMimeTypeCapacity = 64
	objectEncodingCapacity = 64
	objectAnyCapacity      = 512
	spPropAnyCapacity      = 256
	// MaxSignatureProperties bounds SignaturePropertiesType.SignatureProperty.
	MaxSignatureProperties = 4
)

// SignedInfoType models ds:SignedInfoType (spec.md §8 scenario 5): an
// optional Id attribute, required CanonicalizationMethod and
// SignatureMethod, and a bounded, non-empty array of Reference (at least
// one Reference is required by the schema; this module still models the
// array with an arrayLen field rather than special-casing "at least one",
// matching spec.md §3's uniform array representation).
type SignedInfoType struct {
	Id       string
	IdIsUsed bool

	CanonicalizationMethod CanonicalizationMethodType
	SignatureMethod        SignatureMethodType

	Reference    [MaxReferences]ReferenceType
	ReferenceLen uint16
}

func (s *SignedInfoType) Encode(c *bitio.Cursor) error {
	if err := encodeOptionalAttr(c, s.IdIsUsed, s.Id, idAttrCapacity); err != nil {
		return err
	}
	if err := s.CanonicalizationMethod.Encode(c); err != nil {
		return err
	}
	if err := s.SignatureMethod.Encode(c); err != nil {
		return err
	}
	if int(s.ReferenceLen) > MaxReferences {
		return exierr.New(exierr.UnknownEventCode, "SignedInfoType: arrayLen %d exceeds max %d", s.ReferenceLen, MaxReferences)
	}
	if s.ReferenceLen == 0 {
		return exierr.New(exierr.UnknownEventForEncoding, "SignedInfoType: at least one Reference is required")
	}
	for i := 0; i < int(s.ReferenceLen); i++ {
		if err := c.WriteBit(0); err != nil {
			return err
		}
		if err := s.Reference[i].Encode(c); err != nil {
			return err
		}
	}
	if int(s.ReferenceLen) < MaxReferences {
		return c.WriteBit(1)
	}
	return nil
}

func DecodeSignedInfoType(c *bitio.Cursor) (*SignedInfoType, error) {
	out := &SignedInfoType{}
	var err error
	out.Id, out.IdIsUsed, err = decodeOptionalAttr(c, idAttrCapacity)
	if err != nil {
		return nil, err
	}
	cm, err := DecodeCanonicalizationMethodType(c)
	if err != nil {
		return nil, err
	}
	out.CanonicalizationMethod = *cm
	sm, err := DecodeSignatureMethodType(c)
	if err != nil {
		return nil, err
	}
	out.SignatureMethod = *sm
	for int(out.ReferenceLen) < MaxReferences {
		bit, err := c.ReadBit()
		if err != nil {
			return nil, err
		}
		if bit == 1 {
			break
		}
		ref, err := DecodeReferenceType(c)
		if err != nil {
			return nil, err
		}
		out.Reference[out.ReferenceLen] = *ref
		out.ReferenceLen++
	}
	if out.ReferenceLen == 0 {
		return nil, exierr.New(exierr.UnknownEventForEncoding, "SignedInfoType: at least one Reference is required")
	}
	return out, nil
}

// SignatureValueType is a simple-content extension type (spec.md §3): an
// optional Id attribute plus base64Binary CONTENT.
type SignatureValueType struct {
	Id       string
	IdIsUsed bool
	CONTENT  []byte
}

func (s *SignatureValueType) Encode(c *bitio.Cursor) error {
	if err := encodeOptionalAttr(c, s.IdIsUsed, s.Id, idAttrCapacity); err != nil {
		return err
	}
	return valuecodec.EncodeBinary(c, s.CONTENT)
}

func DecodeSignatureValueType(c *bitio.Cursor) (*SignatureValueType, error) {
	out := &SignatureValueType{}
	var err error
	out.Id, out.IdIsUsed, err = decodeOptionalAttr(c, idAttrCapacity)
	if err != nil {
		return nil, err
	}
	out.CONTENT, err = valuecodec.DecodeBinary(c, signatureValueCapacity)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ObjectType models ds:ObjectType's wildcard content reduced to an opaque
// byte run (spec.md §4.2 wildcard-ANY contract), plus its three optional
// attributes.
type ObjectType struct {
	Id               string
	IdIsUsed         bool
	MimeType         string
	MimeTypeIsUsed   bool
	Encoding         string
	EncodingIsUsed   bool
	Any              []byte
	AnyIsUsed        bool
}

func (o *ObjectType) Encode(c *bitio.Cursor) error {
	if err := encodeOptionalAttr(c, o.IdIsUsed, o.Id, idAttrCapacity); err != nil {
		return err
	}
	if err := encodeOptionalAttr(c, o.MimeTypeIsUsed, o.MimeType, objectMimeTypeCapacity); err != nil {
		return err
	}
	if err := encodeOptionalAttr(c, o.EncodingIsUsed, o.Encoding, objectEncodingCapacity); err != nil {
		return err
	}
	if o.AnyIsUsed {
		if err := c.WriteBit(0); err != nil {
			return err
		}
		return valuecodec.EncodeBinary(c, o.Any)
	}
	return c.WriteBit(1)
}

func DecodeObjectType(c *bitio.Cursor) (*ObjectType, error) {
	out := &ObjectType{}
	var err error
	out.Id, out.IdIsUsed, err = decodeOptionalAttr(c, idAttrCapacity)
	if err != nil {
		return nil, err
	}
	out.MimeType, out.MimeTypeIsUsed, err = decodeOptionalAttr(c, objectMimeTypeCapacity)
	if err != nil {
		return nil, err
	}
	out.Encoding, out.EncodingIsUsed, err = decodeOptionalAttr(c, objectEncodingCapacity)
	if err != nil {
		return nil, err
	}
	bit, err := c.ReadBit()
	if err != nil {
		return nil, err
	}
	if bit == 0 {
		out.Any, err = valuecodec.DecodeBinary(c, objectAnyCapacity)
		if err != nil {
			return nil, err
		}
		out.AnyIsUsed = true
	}
	return out, nil
}

// SignaturePropertyType carries a required Target attribute and an opaque
// wildcard content payload.
type SignaturePropertyType struct {
	Id             string
	IdIsUsed       bool
	Target         string
	Any            []byte
	AnyIsUsed      bool
}

func (s *SignaturePropertyType) Encode(c *bitio.Cursor) error {
	if err := encodeOptionalAttr(c, s.IdIsUsed, s.Id, idAttrCapacity); err != nil {
		return err
	}
	if err := valuecodec.EncodeString(c, s.Target); err != nil {
		return err
	}
	if s.AnyIsUsed {
		if err := c.WriteBit(0); err != nil {
			return err
		}
		return valuecodec.EncodeBinary(c, s.Any)
	}
	return c.WriteBit(1)
}

func DecodeSignaturePropertyType(c *bitio.Cursor) (*SignaturePropertyType, error) {
	out := &SignaturePropertyType{}
	var err error
	out.Id, out.IdIsUsed, err = decodeOptionalAttr(c, idAttrCapacity)
	if err != nil {
		return nil, err
	}
	out.Target, err = valuecodec.DecodeString(c, uriAttrCapacity)
	if err != nil {
		return nil, err
	}
	bit, err := c.ReadBit()
	if err != nil {
		return nil, err
	}
	if bit == 0 {
		out.Any, err = valuecodec.DecodeBinary(c, spPropAnyCapacity)
		if err != nil {
			return nil, err
		}
		out.AnyIsUsed = true
	}
	return out, nil
}

// SignaturePropertiesType holds a bounded, non-empty array of
// SignatureProperty plus an optional Id attribute.
type SignaturePropertiesType struct {
	Id       string
	IdIsUsed bool

	SignatureProperty    [MaxSignatureProperties]SignaturePropertyType
	SignaturePropertyLen uint16
}

func (s *SignaturePropertiesType) Encode(c *bitio.Cursor) error {
	if err := encodeOptionalAttr(c, s.IdIsUsed, s.Id, idAttrCapacity); err != nil {
		return err
	}
	if int(s.SignaturePropertyLen) > MaxSignatureProperties {
		return exierr.New(exierr.UnknownEventCode, "SignaturePropertiesType: arrayLen %d exceeds max %d", s.SignaturePropertyLen, MaxSignatureProperties)
	}
	if s.SignaturePropertyLen == 0 {
		return exierr.New(exierr.UnknownEventForEncoding, "SignaturePropertiesType: at least one SignatureProperty is required")
	}
	for i := 0; i < int(s.SignaturePropertyLen); i++ {
		if err := c.WriteBit(0); err != nil {
			return err
		}
		if err := s.SignatureProperty[i].Encode(c); err != nil {
			return err
		}
	}
	if int(s.SignaturePropertyLen) < MaxSignatureProperties {
		return c.WriteBit(1)
	}
	return nil
}

func DecodeSignaturePropertiesType(c *bitio.Cursor) (*SignaturePropertiesType, error) {
	out := &SignaturePropertiesType{}
	var err error
	out.Id, out.IdIsUsed, err = decodeOptionalAttr(c, idAttrCapacity)
	if err != nil {
		return nil, err
	}
	for int(out.SignaturePropertyLen) < MaxSignatureProperties {
		bit, err := c.ReadBit()
		if err != nil {
			return nil, err
		}
		if bit == 1 {
			break
		}
		sp, err := DecodeSignaturePropertyType(c)
		if err != nil {
			return nil, err
		}
		out.SignatureProperty[out.SignaturePropertyLen] = *sp
		out.SignaturePropertyLen++
	}
	if out.SignaturePropertyLen == 0 {
		return nil, exierr.New(exierr.UnknownEventForEncoding, "SignaturePropertiesType: at least one SignatureProperty is required")
	}
	return out, nil
}

// SignatureType is the xmldsig root element: required SignedInfo and
// SignatureValue, optional KeyInfo, and a bounded array of optional Object
// children (spec.md §9 supplemented feature: full Signature round-trip).
type SignatureType struct {
	Id       string
	IdIsUsed bool

	SignedInfo      SignedInfoType
	SignatureValue  SignatureValueType

	KeyInfo       KeyInfoType
	KeyInfoIsUsed bool

	Object    [MaxObjects]ObjectType
	ObjectLen uint16
}

// MaxObjects bounds the repeating Object particle of Signature.
const MaxObjects = 4

func (s *SignatureType) Encode(c *bitio.Cursor) error {
	if err := encodeOptionalAttr(c, s.IdIsUsed, s.Id, idAttrCapacity); err != nil {
		return err
	}
	if err := s.SignedInfo.Encode(c); err != nil {
		return err
	}
	if err := s.SignatureValue.Encode(c); err != nil {
		return err
	}
	if s.KeyInfoIsUsed {
		if err := c.WriteBit(0); err != nil {
			return err
		}
		if err := s.KeyInfo.Encode(c); err != nil {
			return err
		}
	} else {
		if err := c.WriteBit(1); err != nil {
			return err
		}
	}
	if int(s.ObjectLen) > MaxObjects {
		return exierr.New(exierr.UnknownEventCode, "SignatureType: arrayLen %d exceeds max %d", s.ObjectLen, MaxObjects)
	}
	for i := 0; i < int(s.ObjectLen); i++ {
		if err := c.WriteBit(0); err != nil {
			return err
		}
		if err := s.Object[i].Encode(c); err != nil {
			return err
		}
	}
	if int(s.ObjectLen) < MaxObjects {
		return c.WriteBit(1)
	}
	return nil
}

func DecodeSignatureType(c *bitio.Cursor) (*SignatureType, error) {
	out := &SignatureType{}
	var err error
	out.Id, out.IdIsUsed, err = decodeOptionalAttr(c, idAttrCapacity)
	if err != nil {
		return nil, err
	}
	si, err := DecodeSignedInfoType(c)
	if err != nil {
		return nil, err
	}
	out.SignedInfo = *si
	sv, err := DecodeSignatureValueType(c)
	if err != nil {
		return nil, err
	}
	out.SignatureValue = *sv
	bit, err := c.ReadBit()
	if err != nil {
		return nil, err
	}
	if bit == 0 {
		ki, err := DecodeKeyInfoType(c)
		if err != nil {
			return nil, err
		}
		out.KeyInfo = *ki
		out.KeyInfoIsUsed = true
	}
	for int(out.ObjectLen) < MaxObjects {
		b, err := c.ReadBit()
		if err != nil {
			return nil, err
		}
		if b == 1 {
			break
		}
		obj, err := DecodeObjectType(c)
		if err != nil {
			return nil, err
		}
		out.Object[out.ObjectLen] = *obj
		out.ObjectLen++
	}
	return out, nil
}
