package dctypes

import (
	"github.com/EVerest/everest-core-sub002/bitio"
	"github.com/EVerest/everest-core-sub002/exierr"
)

// DC_CPDResEnergyTransferModeType is the abstract DC charge-parameter
// transfer-mode type. It is substituted by exactly one concrete
// alternative (spec.md §3 abstract-type substitution: "a tagged union of
// concrete alternatives"); here the only two concrete descendants are the
// unidirectional mode itself and its bidirectional extension
// (BPT_DC_CPDResEnergyTransferModeType), matching spec.md §8 scenario 3.
type DC_CPDResEnergyTransferModeType struct {
	EVSEMaximumChargePower RationalNumberType
	EVSEMaximumChargeCurrent RationalNumberType
	EVSEMaximumVoltage     RationalNumberType
	EVSEMinimumChargePower RationalNumberType
	EVSEMinimumChargeCurrent RationalNumberType
	EVSEMinimumVoltage     RationalNumberType
}

func (t *DC_CPDResEnergyTransferModeType) Encode(c *bitio.Cursor) error {
	fields := []*RationalNumberType{
		&t.EVSEMaximumChargePower,
		&t.EVSEMaximumChargeCurrent,
		&t.EVSEMaximumVoltage,
		&t.EVSEMinimumChargePower,
		&t.EVSEMinimumChargeCurrent,
		&t.EVSEMinimumVoltage,
	}
	for _, f := range fields {
		if err := f.Encode(c); err != nil {
			return err
		}
	}
	return nil
}

func DecodeDC_CPDResEnergyTransferModeType(c *bitio.Cursor) (*DC_CPDResEnergyTransferModeType, error) {
	out := &DC_CPDResEnergyTransferModeType{}
	targets := []*RationalNumberType{
		&out.EVSEMaximumChargePower, &out.EVSEMaximumChargeCurrent, &out.EVSEMaximumVoltage,
		&out.EVSEMinimumChargePower, &out.EVSEMinimumChargeCurrent, &out.EVSEMinimumVoltage,
	}
	for _, target := range targets {
		v, err := DecodeRationalNumberType(c)
		if err != nil {
			return nil, err
		}
		*target = *v
	}
	return out, nil
}

// BPT_DC_CPDResEnergyTransferModeType extends the unidirectional base with
// bidirectional-power-transfer fields (discharge limits).
type BPT_DC_CPDResEnergyTransferModeType struct {
	DC_CPDResEnergyTransferModeType

	EVSEMaximumDischargePower   RationalNumberType
	EVSEMaximumDischargeCurrent RationalNumberType
	EVSEMinimumDischargePower   RationalNumberType
	EVSEMinimumDischargeCurrent RationalNumberType
}

func (t *BPT_DC_CPDResEnergyTransferModeType) Encode(c *bitio.Cursor) error {
	if err := t.DC_CPDResEnergyTransferModeType.Encode(c); err != nil {
		return err
	}
	fields := []*RationalNumberType{
		&t.EVSEMaximumDischargePower,
		&t.EVSEMaximumDischargeCurrent,
		&t.EVSEMinimumDischargePower,
		&t.EVSEMinimumDischargeCurrent,
	}
	for _, f := range fields {
		if err := f.Encode(c); err != nil {
			return err
		}
	}
	return nil
}

func DecodeBPT_DC_CPDResEnergyTransferModeType(c *bitio.Cursor) (*BPT_DC_CPDResEnergyTransferModeType, error) {
	base, err := DecodeDC_CPDResEnergyTransferModeType(c)
	if err != nil {
		return nil, err
	}
	out := &BPT_DC_CPDResEnergyTransferModeType{DC_CPDResEnergyTransferModeType: *base}
	targets := []*RationalNumberType{
		&out.EVSEMaximumDischargePower, &out.EVSEMaximumDischargeCurrent,
		&out.EVSEMinimumDischargePower, &out.EVSEMinimumDischargeCurrent,
	}
	for _, target := range targets {
		v, err := DecodeRationalNumberType(c)
		if err != nil {
			return nil, err
		}
		*target = *v
	}
	return out, nil
}

// DC_ChargeParameterDiscoveryReqType carries the EV's maximum/minimum
// charge power and current envelope; it has no processing-state field.
type DC_ChargeParameterDiscoveryReqType struct {
	Header MessageHeaderType

	EVMaximumChargePower   RationalNumberType
	EVMaximumChargeCurrent RationalNumberType
	EVMinimumChargePower   RationalNumberType
	EVMinimumChargeCurrent RationalNumberType
}

func (r *DC_ChargeParameterDiscoveryReqType) Encode(c *bitio.Cursor) error {
	if err := r.Header.Encode(c); err != nil {
		return err
	}
	fields := []*RationalNumberType{
		&r.EVMaximumChargePower, &r.EVMaximumChargeCurrent,
		&r.EVMinimumChargePower, &r.EVMinimumChargeCurrent,
	}
	for _, f := range fields {
		if err := f.Encode(c); err != nil {
			return err
		}
	}
	return nil
}

func DecodeDC_ChargeParameterDiscoveryReqType(c *bitio.Cursor) (*DC_ChargeParameterDiscoveryReqType, error) {
	h, err := DecodeMessageHeaderType(c)
	if err != nil {
		return nil, err
	}
	out := &DC_ChargeParameterDiscoveryReqType{Header: *h}
	targets := []*RationalNumberType{
		&out.EVMaximumChargePower, &out.EVMaximumChargeCurrent,
		&out.EVMinimumChargePower, &out.EVMinimumChargeCurrent,
	}
	for _, target := range targets {
		v, err := DecodeRationalNumberType(c)
		if err != nil {
			return nil, err
		}
		*target = *v
	}
	return out, nil
}

// gCPDRes* select which concrete alternative of the abstract
// DC_CPDResEnergyTransferModeType substitution group is present (spec.md
// §8 scenario 3's "2-bit code at the abstract-type choice state").
const (
	gCPDResUnidirectional = 1
	gCPDResBidirectional  = 0
)

// DC_ChargeParameterDiscoveryResType carries the response code and the
// substituted energy-transfer-mode alternative.
type DC_ChargeParameterDiscoveryResType struct {
	Header MessageHeaderType

	ResponseCode ResponseCodeType

	Unidirectional       DC_CPDResEnergyTransferModeType
	Bidirectional        BPT_DC_CPDResEnergyTransferModeType
	BidirectionalIsUsed  bool
}

func (r *DC_ChargeParameterDiscoveryResType) Encode(c *bitio.Cursor) error {
	if err := r.Header.Encode(c); err != nil {
		return err
	}
	if err := r.ResponseCode.Encode(c); err != nil {
		return err
	}
	if r.BidirectionalIsUsed {
		if err := c.WriteNBitUint(2, gCPDResBidirectional); err != nil {
			return err
		}
		return r.Bidirectional.Encode(c)
	}
	if err := c.WriteNBitUint(2, gCPDResUnidirectional); err != nil {
		return err
	}
	return r.Unidirectional.Encode(c)
}

func DecodeDC_ChargeParameterDiscoveryResType(c *bitio.Cursor) (*DC_ChargeParameterDiscoveryResType, error) {
	h, err := DecodeMessageHeaderType(c)
	if err != nil {
		return nil, err
	}
	rc, err := DecodeResponseCodeType(c)
	if err != nil {
		return nil, err
	}
	out := &DC_ChargeParameterDiscoveryResType{Header: *h, ResponseCode: rc}
	code, err := c.ReadNBitUint(2)
	if err != nil {
		return nil, err
	}
	switch code {
	case gCPDResUnidirectional:
		u, err := DecodeDC_CPDResEnergyTransferModeType(c)
		if err != nil {
			return nil, err
		}
		out.Unidirectional = *u
	case gCPDResBidirectional:
		b, err := DecodeBPT_DC_CPDResEnergyTransferModeType(c)
		if err != nil {
			return nil, err
		}
		out.Bidirectional = *b
		out.BidirectionalIsUsed = true
	default:
		return nil, exierr.New(exierr.UnknownEventCode, "DC_ChargeParameterDiscoveryResType: unexpected event code %d", code)
	}
	return out, nil
}
