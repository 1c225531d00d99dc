// Package document implements the root-level EXI event-code dispatch
// described in spec.md §4.3: a V2GMessage document body is one of a fixed
// set of DC request/response types, each selected by a document-level
// event code before the inner type's own grammar takes over. Grounded on
// the teacher's core/exi_header.go naming convention for a fixed prelude
// grammar, generalized from a dynamic document grammar to the static
// switch this module's fixed-schema scope allows.
package document

import (
	"github.com/EVerest/everest-core-sub002/dctypes"
	"github.com/EVerest/everest-core-sub002/exierr"
	"github.com/EVerest/everest-core-sub002/header"
	"github.com/EVerest/everest-core-sub002/xmldsig"

	"github.com/EVerest/everest-core-sub002/bitio"
)

// Document-level event codes (6-bit width per spec.md §4.3: exiDocument
// fixes its root event code at 6 bits).
const (
	DocCableCheckReq               = 0
	DocCableCheckRes               = 1
	DocPreChargeReq                = 2
	DocPreChargeRes                = 3
	DocChargeParameterDiscoveryReq = 4
	DocChargeParameterDiscoveryRes = 5
	DocChargeLoopReq               = 6
	DocChargeLoopRes               = 7
	DocWeldingDetectionReq         = 8
	DocWeldingDetectionRes         = 9
)

const documentEventCodeWidth = 6

// Document is a full EXI document: the fixed header prelude followed by
// exactly one of the implemented DC message bodies.
type Document struct {
	Code int

	CableCheckReq               *dctypes.DC_CableCheckReqType
	CableCheckRes               *dctypes.DC_CableCheckResType
	PreChargeReq                *dctypes.DC_PreChargeReqType
	PreChargeRes                *dctypes.DC_PreChargeResType
	ChargeParameterDiscoveryReq *dctypes.DC_ChargeParameterDiscoveryReqType
	ChargeParameterDiscoveryRes *dctypes.DC_ChargeParameterDiscoveryResType
	ChargeLoopReq               *dctypes.DC_ChargeLoopReqType
	ChargeLoopRes               *dctypes.DC_ChargeLoopResType
	WeldingDetectionReq         *dctypes.DC_WeldingDetectionReqType
	WeldingDetectionRes         *dctypes.DC_WeldingDetectionResType
}

// Encode writes the EXI header prelude and then the selected body.
func (d *Document) Encode(c *bitio.Cursor) error {
	if err := header.Write(c); err != nil {
		return err
	}
	if err := c.WriteNBitUint(documentEventCodeWidth, uint32(d.Code)); err != nil {
		return err
	}
	switch d.Code {
	case DocCableCheckReq:
		return d.CableCheckReq.Encode(c)
	case DocCableCheckRes:
		return d.CableCheckRes.Encode(c)
	case DocPreChargeReq:
		return d.PreChargeReq.Encode(c)
	case DocPreChargeRes:
		return d.PreChargeRes.Encode(c)
	case DocChargeParameterDiscoveryReq:
		return d.ChargeParameterDiscoveryReq.Encode(c)
	case DocChargeParameterDiscoveryRes:
		return d.ChargeParameterDiscoveryRes.Encode(c)
	case DocChargeLoopReq:
		return d.ChargeLoopReq.Encode(c)
	case DocChargeLoopRes:
		return d.ChargeLoopRes.Encode(c)
	case DocWeldingDetectionReq:
		return d.WeldingDetectionReq.Encode(c)
	case DocWeldingDetectionRes:
		return d.WeldingDetectionRes.Encode(c)
	default:
		return exierr.New(exierr.NotImplementedYet, "document: body code %d is not implemented", d.Code)
	}
}

// Decode reads the EXI header prelude and then the body it names.
func Decode(c *bitio.Cursor) (*Document, error) {
	if err := header.Read(c); err != nil {
		return nil, err
	}
	code, err := c.ReadNBitUint(documentEventCodeWidth)
	if err != nil {
		return nil, err
	}
	out := &Document{Code: int(code)}
	switch out.Code {
	case DocCableCheckReq:
		out.CableCheckReq, err = dctypes.DecodeDC_CableCheckReqType(c)
	case DocCableCheckRes:
		out.CableCheckRes, err = dctypes.DecodeDC_CableCheckResType(c)
	case DocPreChargeReq:
		out.PreChargeReq, err = dctypes.DecodeDC_PreChargeReqType(c)
	case DocPreChargeRes:
		out.PreChargeRes, err = dctypes.DecodeDC_PreChargeResType(c)
	case DocChargeParameterDiscoveryReq:
		out.ChargeParameterDiscoveryReq, err = dctypes.DecodeDC_ChargeParameterDiscoveryReqType(c)
	case DocChargeParameterDiscoveryRes:
		out.ChargeParameterDiscoveryRes, err = dctypes.DecodeDC_ChargeParameterDiscoveryResType(c)
	case DocChargeLoopReq:
		out.ChargeLoopReq, err = dctypes.DecodeDC_ChargeLoopReqType(c)
	case DocChargeLoopRes:
		out.ChargeLoopRes, err = dctypes.DecodeDC_ChargeLoopResType(c)
	case DocWeldingDetectionReq:
		out.WeldingDetectionReq, err = dctypes.DecodeDC_WeldingDetectionReqType(c)
	case DocWeldingDetectionRes:
		out.WeldingDetectionRes, err = dctypes.DecodeDC_WeldingDetectionResType(c)
	default:
		return nil, exierr.New(exierr.UnknownEventCode, "document: unrecognized body code %d", out.Code)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Fragment-level event codes (8-bit width per spec.md §4.3: exiFragment
// fixes its root event code at 8 bits) dispatching among the standalone
// value and receipt types a caller might transmit outside of a full
// V2GMessage. The stream ends with a fixed 8-bit end-fragment marker
// (spec.md §4.3), one past the largest body code below.
const (
	FragRationalNumber = 0
	FragReceipt        = 1
	FragSessionID      = 2

	fragmentEndMarker = 3
)

const fragmentEventCodeWidth = 8

// Fragment is a standalone EXI fragment: no header prelude, just one
// schema-informed grammar starting from its own fragment grammar (spec.md
// §4.3's fragment document grammar).
type Fragment struct {
	Code int

	RationalNumber *dctypes.RationalNumberType
	Receipt        *dctypes.Receipt
	SessionID      *dctypes.SessionIDType
}

func (f *Fragment) Encode(c *bitio.Cursor) error {
	if err := c.WriteNBitUint(fragmentEventCodeWidth, uint32(f.Code)); err != nil {
		return err
	}
	switch f.Code {
	case FragRationalNumber:
		if err := f.RationalNumber.Encode(c); err != nil {
			return err
		}
	case FragReceipt:
		if err := f.Receipt.Encode(c); err != nil {
			return err
		}
	case FragSessionID:
		if err := f.SessionID.Encode(c); err != nil {
			return err
		}
	default:
		return exierr.New(exierr.NotImplementedYet, "fragment: body code %d is not implemented", f.Code)
	}
	return c.WriteNBitUint(fragmentEventCodeWidth, fragmentEndMarker)
}

func DecodeFragment(c *bitio.Cursor) (*Fragment, error) {
	code, err := c.ReadNBitUint(fragmentEventCodeWidth)
	if err != nil {
		return nil, err
	}
	out := &Fragment{Code: int(code)}
	switch out.Code {
	case FragRationalNumber:
		out.RationalNumber, err = dctypes.DecodeRationalNumberType(c)
	case FragReceipt:
		out.Receipt, err = dctypes.DecodeReceipt(c)
	case FragSessionID:
		out.SessionID, err = dctypes.DecodeSessionIDType(c)
	default:
		return nil, exierr.New(exierr.UnknownEventCode, "fragment: unrecognized body code %d", out.Code)
	}
	if err != nil {
		return nil, err
	}
	marker, err := c.ReadNBitUint(fragmentEventCodeWidth)
	if err != nil {
		return nil, err
	}
	if marker != fragmentEndMarker {
		return nil, exierr.New(exierr.UnknownEventCode, "fragment: expected end marker %d, got %d", fragmentEndMarker, marker)
	}
	return out, nil
}

// Xmldsig fragment-level event codes (6-bit width per spec.md §4.3:
// xmldsigFragment fixes its root event code at 6 bits) dispatching among
// the xmldsig root elements a caller might transmit standalone, outside
// of an embedded MessageHeader.Signature. The stream ends with a fixed
// 6-bit end-fragment marker, one past the largest body code below.
const (
	XmldsigFragSignature           = 0
	XmldsigFragSignedInfo          = 1
	XmldsigFragManifest            = 2
	XmldsigFragObject              = 3
	XmldsigFragKeyInfo             = 4
	XmldsigFragSignatureProperties = 5

	xmldsigFragmentEndMarker = 6
)

const xmldsigFragmentEventCodeWidth = 6

// XmldsigFragment is a standalone xmldsig EXI fragment.
type XmldsigFragment struct {
	Code int

	Signature           *xmldsig.SignatureType
	SignedInfo          *xmldsig.SignedInfoType
	Manifest            *xmldsig.ManifestType
	Object              *xmldsig.ObjectType
	KeyInfo             *xmldsig.KeyInfoType
	SignatureProperties *xmldsig.SignaturePropertiesType
}

func (x *XmldsigFragment) Encode(c *bitio.Cursor) error {
	if err := c.WriteNBitUint(xmldsigFragmentEventCodeWidth, uint32(x.Code)); err != nil {
		return err
	}
	switch x.Code {
	case XmldsigFragSignature:
		if err := x.Signature.Encode(c); err != nil {
			return err
		}
	case XmldsigFragSignedInfo:
		if err := x.SignedInfo.Encode(c); err != nil {
			return err
		}
	case XmldsigFragManifest:
		if err := x.Manifest.Encode(c); err != nil {
			return err
		}
	case XmldsigFragObject:
		if err := x.Object.Encode(c); err != nil {
			return err
		}
	case XmldsigFragKeyInfo:
		if err := x.KeyInfo.Encode(c); err != nil {
			return err
		}
	case XmldsigFragSignatureProperties:
		if err := x.SignatureProperties.Encode(c); err != nil {
			return err
		}
	default:
		return exierr.New(exierr.NotImplementedYet, "xmldsig fragment: body code %d is not implemented", x.Code)
	}
	return c.WriteNBitUint(xmldsigFragmentEventCodeWidth, xmldsigFragmentEndMarker)
}

func DecodeXmldsigFragment(c *bitio.Cursor) (*XmldsigFragment, error) {
	code, err := c.ReadNBitUint(xmldsigFragmentEventCodeWidth)
	if err != nil {
		return nil, err
	}
	out := &XmldsigFragment{Code: int(code)}
	switch out.Code {
	case XmldsigFragSignature:
		out.Signature, err = xmldsig.DecodeSignatureType(c)
	case XmldsigFragSignedInfo:
		out.SignedInfo, err = xmldsig.DecodeSignedInfoType(c)
	case XmldsigFragManifest:
		out.Manifest, err = xmldsig.DecodeManifestType(c)
	case XmldsigFragObject:
		out.Object, err = xmldsig.DecodeObjectType(c)
	case XmldsigFragKeyInfo:
		out.KeyInfo, err = xmldsig.DecodeKeyInfoType(c)
	case XmldsigFragSignatureProperties:
		out.SignatureProperties, err = xmldsig.DecodeSignaturePropertiesType(c)
	default:
		return nil, exierr.New(exierr.UnknownEventCode, "xmldsig fragment: unrecognized body code %d", out.Code)
	}
	if err != nil {
		return nil, err
	}
	marker, err := c.ReadNBitUint(xmldsigFragmentEventCodeWidth)
	if err != nil {
		return nil, err
	}
	if marker != xmldsigFragmentEndMarker {
		return nil, exierr.New(exierr.UnknownEventCode, "xmldsig fragment: expected end marker %d, got %d", xmldsigFragmentEndMarker, marker)
	}
	return out, nil
}
