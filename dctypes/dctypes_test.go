package dctypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/EVerest/everest-core-sub002/bitio"
)

func TestRationalNumberRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		exp := rapid.Int8().Draw(t, "exp")
		val := rapid.Int16().Draw(t, "val")

		in := &RationalNumberType{Exponent: exp, Value: val}
		buf := make([]byte, 8)
		w := bitio.NewWriter(buf)
		require.NoError(t, in.Encode(w))

		r := bitio.NewReader(buf)
		out, err := DecodeRationalNumberType(r)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})
}

func TestResponseCodeRoundTrip(t *testing.T) {
	in := ResponseCodeFailedNoEnergyTransferServiceSelected
	buf := make([]byte, 4)
	w := bitio.NewWriter(buf)
	require.NoError(t, in.Encode(w))

	r := bitio.NewReader(buf)
	out, err := DecodeResponseCodeType(r)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestResponseCodeOutOfRangeRejected(t *testing.T) {
	buf := []byte{0xfc} // top 6 bits = 0x3f, beyond responseCodeCount
	r := bitio.NewReader(buf)
	_, err := DecodeResponseCodeType(r)
	require.Error(t, err)
}

// TestCableCheckReqEncodesOnlyHeader mirrors spec.md §8 scenario 1: with no
// signature present, DC_CableCheckReq carries nothing beyond its message
// header (session id, timestamp and the signature-absent bit).
func TestCableCheckReqEncodesOnlyHeader(t *testing.T) {
	in := &DC_CableCheckReqType{
		Header: MessageHeaderType{SessionID: SessionIDType{Value: []byte{1, 2, 3, 4, 5, 6, 7, 8}}},
	}
	buf := make([]byte, 32)
	w := bitio.NewWriter(buf)
	require.NoError(t, in.Encode(w))

	r := bitio.NewReader(buf)
	out, err := DecodeDC_CableCheckReqType(r)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCableCheckResRoundTrip(t *testing.T) {
	in := &DC_CableCheckResType{
		Header:         MessageHeaderType{SessionID: SessionIDType{Value: []byte{1, 2, 3, 4, 5, 6, 7, 8}}},
		ResponseCode:   ResponseCodeOK,
		EVSEProcessing: EVSEProcessingOngoing,
	}
	buf := make([]byte, 32)
	w := bitio.NewWriter(buf)
	require.NoError(t, in.Encode(w))

	r := bitio.NewReader(buf)
	out, err := DecodeDC_CableCheckResType(r)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

// TestChargeParameterDiscoveryResBidirectional mirrors spec.md §8 scenario
// 3: selecting the bidirectional concrete alternative of the abstract
// energy-transfer-mode substitution group.
func TestChargeParameterDiscoveryResBidirectional(t *testing.T) {
	in := &DC_ChargeParameterDiscoveryResType{
		Header:       MessageHeaderType{SessionID: SessionIDType{Value: []byte{0, 0, 0, 0, 0, 0, 0, 1}}},
		ResponseCode: ResponseCodeOK,
		Bidirectional: BPT_DC_CPDResEnergyTransferModeType{
			DC_CPDResEnergyTransferModeType: DC_CPDResEnergyTransferModeType{
				EVSEMaximumChargePower: RationalNumberType{Exponent: 3, Value: 50},
			},
			EVSEMaximumDischargePower: RationalNumberType{Exponent: 3, Value: 40},
		},
		BidirectionalIsUsed: true,
	}
	buf := make([]byte, 64)
	w := bitio.NewWriter(buf)
	require.NoError(t, in.Encode(w))

	r := bitio.NewReader(buf)
	out, err := DecodeDC_ChargeParameterDiscoveryResType(r)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestChargeParameterDiscoveryResUnidirectional(t *testing.T) {
	in := &DC_ChargeParameterDiscoveryResType{
		Header:       MessageHeaderType{SessionID: SessionIDType{Value: []byte{0, 0, 0, 0, 0, 0, 0, 2}}},
		ResponseCode: ResponseCodeOK,
		Unidirectional: DC_CPDResEnergyTransferModeType{
			EVSEMaximumChargePower: RationalNumberType{Exponent: 3, Value: 50},
		},
	}
	buf := make([]byte, 64)
	w := bitio.NewWriter(buf)
	require.NoError(t, in.Encode(w))

	r := bitio.NewReader(buf)
	out, err := DecodeDC_ChargeParameterDiscoveryResType(r)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.False(t, out.BidirectionalIsUsed)
}

// TestChargeLoopReqEachControlMode exercises all four concrete descendants
// of the CLReqControlMode family (spec.md §9).
func TestChargeLoopReqEachControlMode(t *testing.T) {
	header := MessageHeaderType{SessionID: SessionIDType{Value: []byte{1, 1, 1, 1, 1, 1, 1, 1}}}

	cases := []*DC_ChargeLoopReqType{
		{Header: header, ControlMode: gCLReqScheduled, Scheduled: ScheduledDC_CLReqControlModeType{
			EVTargetCurrent: RationalNumberType{Exponent: 0, Value: 10},
			EVTargetVoltage: RationalNumberType{Exponent: 0, Value: 400},
		}},
		{Header: header, ControlMode: gCLReqBPTScheduled, BPTScheduled: BPT_ScheduledDC_CLReqControlModeType{
			ScheduledDC_CLReqControlModeType: ScheduledDC_CLReqControlModeType{
				EVTargetCurrent: RationalNumberType{Exponent: 0, Value: 10},
				EVTargetVoltage: RationalNumberType{Exponent: 0, Value: 400},
			},
			EVMaximumDischargePower: RationalNumberType{Exponent: 3, Value: 5},
		}},
		{Header: header, ControlMode: gCLReqDynamic, Dynamic: DynamicDC_CLReqControlModeType{
			EVMaximumChargePower: RationalNumberType{Exponent: 3, Value: 20},
			EVMinimumChargePower: RationalNumberType{Exponent: 3, Value: 1},
		}},
		{Header: header, ControlMode: gCLReqBPTDynamic, BPTDynamic: BPT_DynamicDC_CLReqControlModeType{
			DynamicDC_CLReqControlModeType: DynamicDC_CLReqControlModeType{
				EVMaximumChargePower: RationalNumberType{Exponent: 3, Value: 20},
				EVMinimumChargePower: RationalNumberType{Exponent: 3, Value: 1},
			},
			EVMaximumDischargePower: RationalNumberType{Exponent: 3, Value: 5},
			EVMinimumDischargePower: RationalNumberType{Exponent: 3, Value: 0},
		}},
	}
	for _, in := range cases {
		buf := make([]byte, 64)
		w := bitio.NewWriter(buf)
		require.NoError(t, in.Encode(w))

		r := bitio.NewReader(buf)
		out, err := DecodeDC_ChargeLoopReqType(r)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}
}

// TestReceiptAtMaxCapacity mirrors spec.md §8 scenario 4: a Receipt
// carrying the maximum 10 TaxRule entries, omitting the post-array
// continuation bit.
func TestReceiptAtMaxCapacity(t *testing.T) {
	in := &Receipt{TotalCost: RationalNumberType{Exponent: 2, Value: 1234}}
	for i := 0; i < MaxTaxRules; i++ {
		in.TaxRule[i] = TaxRuleType{
			TaxRuleID:   "tax-id",
			TaxRuleName: "VAT",
			TaxRate:     RationalNumberType{Exponent: -2, Value: 19},
		}
	}
	in.TaxRuleLen = MaxTaxRules

	buf := make([]byte, 1024)
	w := bitio.NewWriter(buf)
	require.NoError(t, in.Encode(w))

	r := bitio.NewReader(buf)
	out, err := DecodeReceipt(r)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestReceiptEmptyArray(t *testing.T) {
	in := &Receipt{TotalCost: RationalNumberType{Exponent: 0, Value: 0}}
	buf := make([]byte, 64)
	w := bitio.NewWriter(buf)
	require.NoError(t, in.Encode(w))

	r := bitio.NewReader(buf)
	out, err := DecodeReceipt(r)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestReceiptArrayLenExceedsCapacityRejected(t *testing.T) {
	in := &Receipt{TaxRuleLen: MaxTaxRules + 1}
	w := bitio.NewWriter(make([]byte, 1024))
	err := in.Encode(w)
	require.Error(t, err)
}
