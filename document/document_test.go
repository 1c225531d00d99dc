package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EVerest/everest-core-sub002/bitio"
	"github.com/EVerest/everest-core-sub002/dctypes"
	"github.com/EVerest/everest-core-sub002/exierr"
)

func sessionHeader() dctypes.MessageHeaderType {
	return dctypes.MessageHeaderType{SessionID: dctypes.SessionIDType{Value: []byte{1, 2, 3, 4, 5, 6, 7, 8}}}
}

func TestDocumentCableCheckReqRoundTrip(t *testing.T) {
	in := &Document{
		Code:           DocCableCheckReq,
		CableCheckReq:  &dctypes.DC_CableCheckReqType{Header: sessionHeader()},
	}
	buf := make([]byte, 64)
	w := bitio.NewWriter(buf)
	require.NoError(t, in.Encode(w))

	r := bitio.NewReader(buf)
	out, err := Decode(r)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDocumentUnknownBodyCodeIsNotImplemented(t *testing.T) {
	in := &Document{Code: 200}
	w := bitio.NewWriter(make([]byte, 64))
	err := in.Encode(w)
	require.Error(t, err)
	assert.ErrorIs(t, err, exierr.ErrNotImplementedYet)
}

func TestFragmentRationalNumberRoundTrip(t *testing.T) {
	in := &Fragment{
		Code:           FragRationalNumber,
		RationalNumber: &dctypes.RationalNumberType{Exponent: 1, Value: 42},
	}
	buf := make([]byte, 16)
	w := bitio.NewWriter(buf)
	require.NoError(t, in.Encode(w))

	r := bitio.NewReader(buf)
	out, err := DecodeFragment(r)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFragmentReceiptRoundTrip(t *testing.T) {
	in := &Fragment{
		Code:    FragReceipt,
		Receipt: &dctypes.Receipt{TotalCost: dctypes.RationalNumberType{Exponent: 0, Value: 0}},
	}
	buf := make([]byte, 32)
	w := bitio.NewWriter(buf)
	require.NoError(t, in.Encode(w))

	r := bitio.NewReader(buf)
	out, err := DecodeFragment(r)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
