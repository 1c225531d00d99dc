package dctypes

import "github.com/EVerest/everest-core-sub002/bitio"

// DC_WeldingDetectionReqType carries the EV's processing state during the
// post-charge contactor-welding check.
type DC_WeldingDetectionReqType struct {
	Header MessageHeaderType

	EVProcessing EVSEProcessingType
}

func (r *DC_WeldingDetectionReqType) Encode(c *bitio.Cursor) error {
	if err := r.Header.Encode(c); err != nil {
		return err
	}
	return r.EVProcessing.Encode(c)
}

func DecodeDC_WeldingDetectionReqType(c *bitio.Cursor) (*DC_WeldingDetectionReqType, error) {
	h, err := DecodeMessageHeaderType(c)
	if err != nil {
		return nil, err
	}
	ep, err := DecodeEVSEProcessingType(c)
	if err != nil {
		return nil, err
	}
	return &DC_WeldingDetectionReqType{Header: *h, EVProcessing: ep}, nil
}

// DC_WeldingDetectionResType reports the EVSE's present voltage while
// contactors remain open for the welding check.
type DC_WeldingDetectionResType struct {
	Header MessageHeaderType

	ResponseCode       ResponseCodeType
	EVSEPresentVoltage RationalNumberType
}

func (r *DC_WeldingDetectionResType) Encode(c *bitio.Cursor) error {
	if err := r.Header.Encode(c); err != nil {
		return err
	}
	if err := r.ResponseCode.Encode(c); err != nil {
		return err
	}
	return r.EVSEPresentVoltage.Encode(c)
}

func DecodeDC_WeldingDetectionResType(c *bitio.Cursor) (*DC_WeldingDetectionResType, error) {
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
	return &DC_WeldingDetectionResType{Header: *h, ResponseCode: rc, EVSEPresentVoltage: *v}, nil
}
