package dctypes

import "github.com/EVerest/everest-core-sub002/bitio"

// DC_CableCheckReqType carries only the common MessageHeader. Its encoding
// is exactly the header's encoding (SessionID, TimeStamp, then the
// Signature presence bit, which is 1 when no Signature is present); no
// separate start-element bit for the header and no trailing end-element
// bit for the message itself are written.
type DC_CableCheckReqType struct {
	Header MessageHeaderType
}

func (r *DC_CableCheckReqType) Encode(c *bitio.Cursor) error {
	return r.Header.Encode(c)
}

func DecodeDC_CableCheckReqType(c *bitio.Cursor) (*DC_CableCheckReqType, error) {
	h, err := DecodeMessageHeaderType(c)
	if err != nil {
		return nil, err
	}
	return &DC_CableCheckReqType{Header: *h}, nil
}

// DC_CableCheckResType reports cable-check progress and status.
type DC_CableCheckResType struct {
	Header MessageHeaderType

	ResponseCode       ResponseCodeType
	EVSEProcessing     EVSEProcessingType
}

// EVSEProcessingType enumerates whether the EVSE is still working on the
// request or has finished.
type EVSEProcessingType uint8

const (
	EVSEProcessingFinished EVSEProcessingType = iota
	EVSEProcessingOngoing
	evseProcessingCount
)

func (e EVSEProcessingType) Encode(c *bitio.Cursor) error {
	return c.WriteNBitUint(1, uint32(e))
}

func DecodeEVSEProcessingType(c *bitio.Cursor) (EVSEProcessingType, error) {
	v, err := c.ReadNBitUint(1)
	if err != nil {
		return 0, err
	}
	return EVSEProcessingType(v), nil
}

func (r *DC_CableCheckResType) Encode(c *bitio.Cursor) error {
	if err := r.Header.Encode(c); err != nil {
		return err
	}
	if err := r.ResponseCode.Encode(c); err != nil {
		return err
	}
	return r.EVSEProcessing.Encode(c)
}

func DecodeDC_CableCheckResType(c *bitio.Cursor) (*DC_CableCheckResType, error) {
	h, err := DecodeMessageHeaderType(c)
	if err != nil {
		return nil, err
	}
	rc, err := DecodeResponseCodeType(c)
	if err != nil {
		return nil, err
	}
	ep, err := DecodeEVSEProcessingType(c)
	if err != nil {
		return nil, err
	}
	return &DC_CableCheckResType{Header: *h, ResponseCode: rc, EVSEProcessing: ep}, nil
}
