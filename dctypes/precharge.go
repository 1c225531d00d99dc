package dctypes

import "github.com/EVerest/everest-core-sub002/bitio"

// DC_PreChargeReqType carries the EV's target voltage before the contactors
// close.
type DC_PreChargeReqType struct {
	Header MessageHeaderType

	EVProcessing       EVSEProcessingType
	EVTargetVoltage    RationalNumberType
}

func (r *DC_PreChargeReqType) Encode(c *bitio.Cursor) error {
	if err := r.Header.Encode(c); err != nil {
		return err
	}
	if err := r.EVProcessing.Encode(c); err != nil {
		return err
	}
	return r.EVTargetVoltage.Encode(c)
}

func DecodeDC_PreChargeReqType(c *bitio.Cursor) (*DC_PreChargeReqType, error) {
	h, err := DecodeMessageHeaderType(c)
	if err != nil {
		return nil, err
	}
	ep, err := DecodeEVSEProcessingType(c)
	if err != nil {
		return nil, err
	}
	tv, err := DecodeRationalNumberType(c)
	if err != nil {
		return nil, err
	}
	return &DC_PreChargeReqType{Header: *h, EVProcessing: ep, EVTargetVoltage: *tv}, nil
}

// DC_PreChargeResType reports the EVSE's present voltage during precharge.
type DC_PreChargeResType struct {
	Header MessageHeaderType

	ResponseCode      ResponseCodeType
	EVSEPresentVoltage RationalNumberType
}

func (r *DC_PreChargeResType) Encode(c *bitio.Cursor) error {
	if err := r.Header.Encode(c); err != nil {
		return err
	}
	if err := r.ResponseCode.Encode(c); err != nil {
		return err
	}
	return r.EVSEPresentVoltage.Encode(c)
}

func DecodeDC_PreChargeResType(c *bitio.Cursor) (*DC_PreChargeResType, error) {
	h, err := DecodeMessageHeaderType(c)
	if err != nil {
		return nil, err
	}
	rc, err := DecodeResponseCodeType(c)
	if err != nil {
		return nil, err
	}
	v, err := DecodeRationalNumberType(c)
	if err != nil {
		return nil, err
	}
	return &DC_PreChargeResType{Header: *h, ResponseCode: rc, EVSEPresentVoltage: *v}, nil
}
