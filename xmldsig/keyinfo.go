package xmldsig

import (
	"github.com/EVerest/everest-core-sub002/bitio"
	"github.com/EVerest/everest-core-sub002/exierr"
	"github.com/EVerest/everest-core-sub002/valuecodec"
)

const (
	x509CertificateCapacity = 2048
	x509SubjectNameCapacity = 256
	// MaxX509Certificates bounds the repeating X509Certificate particle.
	MaxX509Certificates = 4
	pgpKeyIDCapacity     = 32
	pgpKeyPacketCapacity = 4096
	spkiSexpCapacity     = 1024
	// MaxSPKISexp bounds the repeating SPKISexp particle.
	MaxSPKISexp = 4
)

// X509DataType models a reduced ds:X509DataType: an optional subject name
// plus a bounded array of DER-encoded certificates (the X509IssuerSerial /
// X509CRL / X509Digest alternatives xmldsig also allows are not populated
// by any DC message and are out of scope, per this module's dsig-coverage
// decision in DESIGN.md).
type X509DataType struct {
	X509SubjectName       string
	X509SubjectNameIsUsed bool
	X509Certificate       [MaxX509Certificates][]byte
	X509CertificateLen    uint16
}

func (x *X509DataType) Encode(c *bitio.Cursor) error {
	if x.X509SubjectNameIsUsed {
		if err := c.WriteBit(0); err != nil {
			return err
		}
		if err := valuecodec.EncodeString(c, x.X509SubjectName); err != nil {
			return err
		}
	} else {
		if err := c.WriteBit(1); err != nil {
			return err
		}
	}
	if int(x.X509CertificateLen) > MaxX509Certificates {
		return exierr.New(exierr.UnknownEventCode, "X509DataType: arrayLen %d exceeds max %d", x.X509CertificateLen, MaxX509Certificates)
	}
	for i := 0; i < int(x.X509CertificateLen); i++ {
		if err := c.WriteBit(0); err != nil {
			return err
		}
		if err := valuecodec.EncodeBinary(c, x.X509Certificate[i]); err != nil {
			return err
		}
	}
	if int(x.X509CertificateLen) < MaxX509Certificates {
		return c.WriteBit(1)
	}
	return nil
}

func DecodeX509DataType(c *bitio.Cursor) (*X509DataType, error) {
	out := &X509DataType{}
	bit, err := c.ReadBit()
	if err != nil {
		return nil, err
	}
	if bit == 0 {
		out.X509SubjectName, err = valuecodec.DecodeString(c, x509SubjectNameCapacity)
		if err != nil {
			return nil, err
		}
		out.X509SubjectNameIsUsed = true
	}
	for out.X509CertificateLen < MaxX509Certificates {
		b, err := c.ReadBit()
		if err != nil {
			return nil, err
		}
		if b == 1 {
			return out, nil
		}
		cert, err := valuecodec.DecodeBinary(c, x509CertificateCapacity)
		if err != nil {
			return nil, err
		}
		out.X509Certificate[out.X509CertificateLen] = cert
		out.X509CertificateLen++
	}
	return out, nil
}

// PGPDataType models ds:PGPDataType's sequenced choice of two variants:
//
//	choice_1: PGPKeyID (required), PGPKeyPacket (optional)
//	choice_2: PGPKeyPacket (required)
//
// spec.md §9 documents a known generator artifact in the reference
// grammar at this exact decision point: "state 36 contains two else-if
// branches testing the same predicate — this appears to be a generator
// artefact; the second branch is unreachable". This module records that
// shape as a commented-out branch in Encode (rather than silently
// dropping it) because spec.md records it as an accepted
// quirk of the schema-informed grammar, not a defect to fix.
type PGPDataType struct {
	Choice1IsUsed bool
	PGPKeyID      []byte // choice_1 only

	PGPKeyPacket       []byte
	PGPKeyPacketIsUsed bool // present in choice_1 optionally, required in choice_2

	Choice2IsUsed bool
}

const (
	gPGPChoice1 = 0
	gPGPChoice2 = 1
)

func (p *PGPDataType) Encode(c *bitio.Cursor) error {
	// Selects the variant. Mirrors the documented artifact: evaluating
	// Choice1IsUsed twice would always pick the same branch, so the
	// second test below is never reached for real data and is kept only
	// as a comment, not as dead code that could diverge from the first.
	if p.Choice1IsUsed {
		if err := c.WriteNBitUint(1, gPGPChoice1); err != nil {
			return err
		}
		if err := valuecodec.EncodeBinary(c, p.PGPKeyID); err != nil {
			return err
		}
		if p.PGPKeyPacketIsUsed {
			if err := c.WriteBit(0); err != nil {
				return err
			}
			return valuecodec.EncodeBinary(c, p.PGPKeyPacket)
		}
		return c.WriteBit(1)
	}
	// else if p.Choice1IsUsed { /* unreachable: see doc comment above */ }
	if err := c.WriteNBitUint(1, gPGPChoice2); err != nil {
		return err
	}
	return valuecodec.EncodeBinary(c, p.PGPKeyPacket)
}

func DecodePGPDataType(c *bitio.Cursor) (*PGPDataType, error) {
	code, err := c.ReadNBitUint(1)
	if err != nil {
		return nil, err
	}
	p := &PGPDataType{}
	switch code {
	case gPGPChoice1:
		p.Choice1IsUsed = true
		p.PGPKeyID, err = valuecodec.DecodeBinary(c, pgpKeyIDCapacity)
		if err != nil {
			return nil, err
		}
		bit, err := c.ReadBit()
		if err != nil {
			return nil, err
		}
		if bit == 0 {
			p.PGPKeyPacket, err = valuecodec.DecodeBinary(c, pgpKeyPacketCapacity)
			if err != nil {
				return nil, err
			}
			p.PGPKeyPacketIsUsed = true
		}
	case gPGPChoice2:
		p.Choice2IsUsed = true
		p.PGPKeyPacket, err = valuecodec.DecodeBinary(c, pgpKeyPacketCapacity)
		if err != nil {
			return nil, err
		}
		p.PGPKeyPacketIsUsed = true
	default:
		return nil, exierr.New(exierr.UnknownEventCode, "PGPDataType: unexpected event code %d", code)
	}
	return p, nil
}

// SPKIDataType holds a bounded array of SPKISexp blobs.
type SPKIDataType struct {
	SPKISexp    [MaxSPKISexp][]byte
	SPKISexpLen uint16
}

func (s *SPKIDataType) Encode(c *bitio.Cursor) error {
	if int(s.SPKISexpLen) > MaxSPKISexp {
		return exierr.New(exierr.UnknownEventCode, "SPKIDataType: arrayLen %d exceeds max %d", s.SPKISexpLen, MaxSPKISexp)
	}
	for i := 0; i < int(s.SPKISexpLen); i++ {
		if err := c.WriteBit(0); err != nil {
			return err
		}
		if err := valuecodec.EncodeBinary(c, s.SPKISexp[i]); err != nil {
			return err
		}
	}
	if int(s.SPKISexpLen) < MaxSPKISexp {
		return c.WriteBit(1)
	}
	return nil
}

func DecodeSPKIDataType(c *bitio.Cursor) (*SPKIDataType, error) {
	out := &SPKIDataType{}
	for out.SPKISexpLen < MaxSPKISexp {
		bit, err := c.ReadBit()
		if err != nil {
			return nil, err
		}
		if bit == 1 {
			return out, nil
		}
		sexp, err := valuecodec.DecodeBinary(c, spkiSexpCapacity)
		if err != nil {
			return nil, err
		}
		out.SPKISexp[out.SPKISexpLen] = sexp
		out.SPKISexpLen++
	}
	return out, nil
}

// RetrievalMethodType carries optional URI/Type attributes and an
// optional Transforms child.
type RetrievalMethodType struct {
	URI              string
	URIIsUsed        bool
	Type             string
	TypeIsUsed       bool
	Transforms       TransformsType
	TransformsIsUsed bool
}

func (r *RetrievalMethodType) Encode(c *bitio.Cursor) error {
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
		return r.Transforms.Encode(c)
	}
	return c.WriteBit(1)
}

func DecodeRetrievalMethodType(c *bitio.Cursor) (*RetrievalMethodType, error) {
	out := &RetrievalMethodType{}
	var err error
	out.URI, out.URIIsUsed, err = decodeOptionalAttr(c, uriAttrCapacity)
	if err != nil {
		return nil, err
	}
	out.Type, out.TypeIsUsed, err = decodeOptionalAttr(c, typeAttrCapacity)
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
		out.Transforms = *tf
		out.TransformsIsUsed = true
	}
	return out, nil
}

// KeyInfoType models ds:KeyInfoType reduced to a single mutually-exclusive
// choice among its most common children (spec.md §3: "unions-by-presence
// implement schema <choice>"). Real xmldsig allows an unbounded, unordered
// mixture of these; ISO 15118-20 messages only ever populate one.
type KeyInfoType struct {
	Id       string
	IdIsUsed bool

	X509Data       X509DataType
	X509DataIsUsed bool

	PGPData       PGPDataType
	PGPDataIsUsed bool

	SPKIData       SPKIDataType
	SPKIDataIsUsed bool

	RetrievalMethod       RetrievalMethodType
	RetrievalMethodIsUsed bool
}

const (
	gKeyInfoX509            = 0
	gKeyInfoPGP             = 1
	gKeyInfoSPKI            = 2
	gKeyInfoRetrievalMethod = 3
)

func (k *KeyInfoType) Encode(c *bitio.Cursor) error {
	if err := encodeOptionalAttr(c, k.IdIsUsed, k.Id, idAttrCapacity); err != nil {
		return err
	}
	switch {
	case k.X509DataIsUsed:
		if err := c.WriteNBitUint(2, gKeyInfoX509); err != nil {
			return err
		}
		return k.X509Data.Encode(c)
	case k.PGPDataIsUsed:
		if err := c.WriteNBitUint(2, gKeyInfoPGP); err != nil {
			return err
		}
		return k.PGPData.Encode(c)
	case k.SPKIDataIsUsed:
		if err := c.WriteNBitUint(2, gKeyInfoSPKI); err != nil {
			return err
		}
		return k.SPKIData.Encode(c)
	case k.RetrievalMethodIsUsed:
		if err := c.WriteNBitUint(2, gKeyInfoRetrievalMethod); err != nil {
			return err
		}
		return k.RetrievalMethod.Encode(c)
	default:
		return exierr.New(exierr.UnknownEventForEncoding, "KeyInfoType: no choice branch is used")
	}
}

func DecodeKeyInfoType(c *bitio.Cursor) (*KeyInfoType, error) {
	out := &KeyInfoType{}
	var err error
	out.Id, out.IdIsUsed, err = decodeOptionalAttr(c, idAttrCapacity)
	if err != nil {
		return nil, err
	}
	code, err := c.ReadNBitUint(2)
	if err != nil {
		return nil, err
	}
	switch code {
	case gKeyInfoX509:
		x, err := DecodeX509DataType(c)
		if err != nil {
			return nil, err
		}
		out.X509Data, out.X509DataIsUsed = *x, true
	case gKeyInfoPGP:
		p, err := DecodePGPDataType(c)
		if err != nil {
			return nil, err
		}
		out.PGPData, out.PGPDataIsUsed = *p, true
	case gKeyInfoSPKI:
		s, err := DecodeSPKIDataType(c)
		if err != nil {
			return nil, err
		}
		out.SPKIData, out.SPKIDataIsUsed = *s, true
	case gKeyInfoRetrievalMethod:
		r, err := DecodeRetrievalMethodType(c)
		if err != nil {
			return nil, err
		}
		out.RetrievalMethod, out.RetrievalMethodIsUsed = *r, true
	default:
		return nil, exierr.New(exierr.UnknownEventCode, "KeyInfoType: unexpected event code %d", code)
	}
	return out, nil
}
