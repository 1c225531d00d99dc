package dctypes

import (
	"github.com/EVerest/everest-core-sub002/bitio"
	"github.com/EVerest/everest-core-sub002/exierr"
)

// ScheduledDC_CLReqControlModeType is the concrete control-mode
// alternative used when the EV follows a pre-negotiated power schedule.
type ScheduledDC_CLReqControlModeType struct {
	EVTargetCurrent RationalNumberType
	EVTargetVoltage RationalNumberType
}

func (t *ScheduledDC_CLReqControlModeType) Encode(c *bitio.Cursor) error {
	if err := t.EVTargetCurrent.Encode(c); err != nil {
		return err
	}
	return t.EVTargetVoltage.Encode(c)
}

func DecodeScheduledDC_CLReqControlModeType(c *bitio.Cursor) (*ScheduledDC_CLReqControlModeType, error) {
	cur, err := DecodeRationalNumberType(c)
	if err != nil {
		return nil, err
	}
	volt, err := DecodeRationalNumberType(c)
	if err != nil {
		return nil, err
	}
	return &ScheduledDC_CLReqControlModeType{EVTargetCurrent: *cur, EVTargetVoltage: *volt}, nil
}

// BPT_ScheduledDC_CLReqControlModeType extends the scheduled mode with
// discharge limits for bidirectional power transfer.
type BPT_ScheduledDC_CLReqControlModeType struct {
	ScheduledDC_CLReqControlModeType
	EVMaximumDischargePower RationalNumberType
}

func (t *BPT_ScheduledDC_CLReqControlModeType) Encode(c *bitio.Cursor) error {
	if err := t.ScheduledDC_CLReqControlModeType.Encode(c); err != nil {
		return err
	}
	return t.EVMaximumDischargePower.Encode(c)
}

func DecodeBPT_ScheduledDC_CLReqControlModeType(c *bitio.Cursor) (*BPT_ScheduledDC_CLReqControlModeType, error) {
	base, err := DecodeScheduledDC_CLReqControlModeType(c)
	if err != nil {
		return nil, err
	}
	p, err := DecodeRationalNumberType(c)
	if err != nil {
		return nil, err
	}
	return &BPT_ScheduledDC_CLReqControlModeType{ScheduledDC_CLReqControlModeType: *base, EVMaximumDischargePower: *p}, nil
}

// DynamicDC_CLReqControlModeType is the concrete control-mode alternative
// used when the EV negotiates its power envelope dynamically each loop.
type DynamicDC_CLReqControlModeType struct {
	EVMaximumChargePower RationalNumberType
	EVMinimumChargePower RationalNumberType
}

func (t *DynamicDC_CLReqControlModeType) Encode(c *bitio.Cursor) error {
	if err := t.EVMaximumChargePower.Encode(c); err != nil {
		return err
	}
	return t.EVMinimumChargePower.Encode(c)
}

func DecodeDynamicDC_CLReqControlModeType(c *bitio.Cursor) (*DynamicDC_CLReqControlModeType, error) {
	max, err := DecodeRationalNumberType(c)
	if err != nil {
		return nil, err
	}
	min, err := DecodeRationalNumberType(c)
	if err != nil {
		return nil, err
	}
	return &DynamicDC_CLReqControlModeType{EVMaximumChargePower: *max, EVMinimumChargePower: *min}, nil
}

// BPT_DynamicDC_CLReqControlModeType extends the dynamic mode with
// discharge limits.
type BPT_DynamicDC_CLReqControlModeType struct {
	DynamicDC_CLReqControlModeType
	EVMaximumDischargePower RationalNumberType
	EVMinimumDischargePower RationalNumberType
}

func (t *BPT_DynamicDC_CLReqControlModeType) Encode(c *bitio.Cursor) error {
	if err := t.DynamicDC_CLReqControlModeType.Encode(c); err != nil {
		return err
	}
	if err := t.EVMaximumDischargePower.Encode(c); err != nil {
		return err
	}
	return t.EVMinimumDischargePower.Encode(c)
}

func DecodeBPT_DynamicDC_CLReqControlModeType(c *bitio.Cursor) (*BPT_DynamicDC_CLReqControlModeType, error) {
	base, err := DecodeDynamicDC_CLReqControlModeType(c)
	if err != nil {
		return nil, err
	}
	maxD, err := DecodeRationalNumberType(c)
	if err != nil {
		return nil, err
	}
	minD, err := DecodeRationalNumberType(c)
	if err != nil {
		return nil, err
	}
	return &BPT_DynamicDC_CLReqControlModeType{
		DynamicDC_CLReqControlModeType: *base,
		EVMaximumDischargePower:        *maxD,
		EVMinimumDischargePower:        *minD,
	}, nil
}

// gCLReq* select among the four concrete CLReqControlMode
// descendants (spec.md §9: "the CLReqControlModeType family of 4 concrete
// descendants", a width-2 abstract-type choice).
const (
	gCLReqScheduled    = 0
	gCLReqBPTScheduled = 1
	gCLReqDynamic      = 2
	gCLReqBPTDynamic   = 3
)

// DC_ChargeLoopReqType carries the EV's chosen control-mode alternative.
type DC_ChargeLoopReqType struct {
	Header MessageHeaderType

	Scheduled    ScheduledDC_CLReqControlModeType
	BPTScheduled BPT_ScheduledDC_CLReqControlModeType
	Dynamic      DynamicDC_CLReqControlModeType
	BPTDynamic   BPT_DynamicDC_CLReqControlModeType

	ControlMode int // one of the gCLReq* constants, selects which field above is populated
}

func (r *DC_ChargeLoopReqType) Encode(c *bitio.Cursor) error {
	if err := r.Header.Encode(c); err != nil {
		return err
	}
	if err := c.WriteNBitUint(2, uint32(r.ControlMode)); err != nil {
		return err
	}
	switch r.ControlMode {
	case gCLReqScheduled:
		return r.Scheduled.Encode(c)
	case gCLReqBPTScheduled:
		return r.BPTScheduled.Encode(c)
	case gCLReqDynamic:
		return r.Dynamic.Encode(c)
	case gCLReqBPTDynamic:
		return r.BPTDynamic.Encode(c)
	default:
		return exierr.New(exierr.UnknownEventForEncoding, "DC_ChargeLoopReqType: invalid ControlMode %d", r.ControlMode)
	}
}

func DecodeDC_ChargeLoopReqType(c *bitio.Cursor) (*DC_ChargeLoopReqType, error) {
	h, err := DecodeMessageHeaderType(c)
	if err != nil {
		return nil, err
	}
	out := &DC_ChargeLoopReqType{Header: *h}
	code, err := c.ReadNBitUint(2)
	if err != nil {
		return nil, err
	}
	out.ControlMode = int(code)
	switch code {
	case gCLReqScheduled:
		v, err := DecodeScheduledDC_CLReqControlModeType(c)
		if err != nil {
			return nil, err
		}
		out.Scheduled = *v
	case gCLReqBPTScheduled:
		v, err := DecodeBPT_ScheduledDC_CLReqControlModeType(c)
		if err != nil {
			return nil, err
		}
		out.BPTScheduled = *v
	case gCLReqDynamic:
		v, err := DecodeDynamicDC_CLReqControlModeType(c)
		if err != nil {
			return nil, err
		}
		out.Dynamic = *v
	case gCLReqBPTDynamic:
		v, err := DecodeBPT_DynamicDC_CLReqControlModeType(c)
		if err != nil {
			return nil, err
		}
		out.BPTDynamic = *v
	default:
		return nil, exierr.New(exierr.UnknownEventCode, "DC_ChargeLoopReqType: unexpected event code %d", code)
	}
	return out, nil
}

// DC_ChargeLoopResType reports the EVSE's present voltage and current.
type DC_ChargeLoopResType struct {
	Header MessageHeaderType

	ResponseCode        ResponseCodeType
	EVSEPresentVoltage  RationalNumberType
	EVSEPresentCurrent  RationalNumberType
}

func (r *DC_ChargeLoopResType) Encode(c *bitio.Cursor) error {
	if err := r.Header.Encode(c); err != nil {
		return err
	}
	if err := r.ResponseCode.Encode(c); err != nil {
		return err
	}
	if err := r.EVSEPresentVoltage.Encode(c); err != nil {
		return err
	}
	return r.EVSEPresentCurrent.Encode(c)
}

func DecodeDC_ChargeLoopResType(c *bitio.Cursor) (*DC_ChargeLoopResType, error) {
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
	i, err := DecodeRationalNumberType(c)
	if err != nil {
		return nil, err
	}
	return &DC_ChargeLoopResType{Header: *h, ResponseCode: rc, EVSEPresentVoltage: *v, EVSEPresentCurrent: *i}, nil
}
