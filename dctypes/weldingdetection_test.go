package dctypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EVerest/everest-core-sub002/bitio"
)

func TestWeldingDetectionReqResRoundTrip(t *testing.T) {
	header := MessageHeaderType{SessionID: SessionIDType{Value: []byte{3, 3, 3, 3, 3, 3, 3, 3}}}

	req := &DC_WeldingDetectionReqType{Header: header, EVProcessing: EVSEProcessingFinished}
	buf := make([]byte, 32)
	w := bitio.NewWriter(buf)
	require.NoError(t, req.Encode(w))
	r := bitio.NewReader(buf)
	gotReq, err := DecodeDC_WeldingDetectionReqType(r)
	require.NoError(t, err)
	assert.Equal(t, req, gotReq)

	res := &DC_WeldingDetectionResType{
		Header:             header,
		ResponseCode:       ResponseCodeOK,
		EVSEPresentVoltage: RationalNumberType{Exponent: 0, Value: 12},
	}
	buf2 := make([]byte, 32)
	w2 := bitio.NewWriter(buf2)
	require.NoError(t, res.Encode(w2))
	r2 := bitio.NewReader(buf2)
	gotRes, err := DecodeDC_WeldingDetectionResType(r2)
	require.NoError(t, err)
	assert.Equal(t, res, gotRes)
}
