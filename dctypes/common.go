// Package dctypes implements the data model and per-type grammar state
// machines for ISO 15118-20's DC (vehicle-to-grid DC charging) namespace
// (spec.md glossary: "DC namespace"). It follows the same per-type
// Encode/Decode pattern established in xmldsig, and imports xmldsig
// directly for the MessageHeader's embedded Signature field (spec.md §5:
// "V2GMessage carries an optional ds:Signature").
//
// Grounded on the teacher's per-type philosophy (core/grammar.go,
// core/production.go), generalized to the static shape described in
// SPEC_FULL.md §6. Event-code widths are written as literal constants at
// each call site; this package does not import package grammar.
package dctypes

import (
	"github.com/EVerest/everest-core-sub002/bitio"
	"github.com/EVerest/everest-core-sub002/exierr"
	"github.com/EVerest/everest-core-sub002/valuecodec"
	"github.com/EVerest/everest-core-sub002/xmldsig"
)

const (
	sessionIDCapacity = 8 // bytes; schema bounds SessionID to hexBinary(8)
)

// SessionIDType is a fixed-shape base64Binary/hexBinary identifier
// (spec.md §3 simple type reduced to a byte slice with a site capacity).
type SessionIDType struct {
	Value []byte
}

func (s *SessionIDType) Encode(c *bitio.Cursor) error {
	return valuecodec.EncodeBinary(c, s.Value)
}

func DecodeSessionIDType(c *bitio.Cursor) (*SessionIDType, error) {
	v, err := valuecodec.DecodeBinary(c, sessionIDCapacity)
	if err != nil {
		return nil, err
	}
	return &SessionIDType{Value: v}, nil
}

// ResponseCodeType enumerates the ISO 15118-20 common ResponseCode values.
// The 18 members declared here would need only 5 bits
// (grammar.EventCodeWidth(18) == 5); the width is nevertheless fixed at 6
// bits per spec.md §8 scenario 2 (see responseCodeWidth).
type ResponseCodeType uint8

const (
	ResponseCodeOK ResponseCodeType = iota
	ResponseCodeOKCertificateExpiresSoon
	ResponseCodeOKNewSessionEstablished
	ResponseCodeOKOldSessionJoined
	ResponseCodeOKPowerToleranceConfirmed
	ResponseCodeFailed
	ResponseCodeFailedSequenceError
	ResponseCodeFailedServiceIDInvalid
	ResponseCodeFailedUnknownSession
	ResponseCodeFailedServiceSelectionInvalid
	ResponseCodeFailedPowerDeliveryNotApplied
	ResponseCodeFailedTariffSelectionInvalid
	ResponseCodeFailedChargingProfileInvalid
	ResponseCodeFailedMeteringSignatureNotValid
	ResponseCodeFailedWrongChargeParameter
	ResponseCodeFailedPowerToleranceNotConfirmed
	ResponseCodeFailedScheduleRenegotiationFailed
	ResponseCodeFailedNoEnergyTransferServiceSelected
	responseCodeCount
)

const responseCodeWidth = 6 // grammar.EventCodeWidth(int(responseCodeCount)) == 5; fixed at 6 per spec.md §8 scenario 2

func (r ResponseCodeType) Encode(c *bitio.Cursor) error {
	if uint8(r) >= uint8(responseCodeCount) {
		return exierr.New(exierr.UnknownEventForEncoding, "ResponseCodeType: value %d out of range", r)
	}
	return c.WriteNBitUint(responseCodeWidth, uint32(r))
}

func DecodeResponseCodeType(c *bitio.Cursor) (ResponseCodeType, error) {
	v, err := c.ReadNBitUint(responseCodeWidth)
	if err != nil {
		return 0, err
	}
	if v >= uint32(responseCodeCount) {
		return 0, exierr.New(exierr.UnknownEventCode, "ResponseCodeType: decoded value %d out of range", v)
	}
	return ResponseCodeType(v), nil
}

// EVSENotificationType enumerates the small EVSE notification set.
type EVSENotificationType uint8

const (
	EVSENotificationNone EVSENotificationType = iota
	EVSENotificationTerminate
	EVSENotificationPause
	evseNotificationCount
)

func (e EVSENotificationType) Encode(c *bitio.Cursor) error {
	if uint8(e) >= uint8(evseNotificationCount) {
		return exierr.New(exierr.UnknownEventForEncoding, "EVSENotificationType: value %d out of range", e)
	}
	return c.WriteNBitUint(2, uint32(e))
}

func DecodeEVSENotificationType(c *bitio.Cursor) (EVSENotificationType, error) {
	v, err := c.ReadNBitUint(2)
	if err != nil {
		return 0, err
	}
	if v >= uint32(evseNotificationCount) {
		return 0, exierr.New(exierr.UnknownEventCode, "EVSENotificationType: decoded value %d out of range", v)
	}
	return EVSENotificationType(v), nil
}

// RationalNumberType models a physical value as a biased 8-bit Exponent
// plus a 16-bit signed Value (spec.md §8 scenario 2: "physical values use
// RationalNumberType, not xs:decimal").
type RationalNumberType struct {
	Exponent int8
	Value    int16
}

func (r *RationalNumberType) Encode(c *bitio.Cursor) error {
	if err := valuecodec.EncodeExponent(c, r.Exponent); err != nil {
		return err
	}
	return c.WriteInteger16(r.Value)
}

func DecodeRationalNumberType(c *bitio.Cursor) (*RationalNumberType, error) {
	exp, err := valuecodec.DecodeExponent(c)
	if err != nil {
		return nil, err
	}
	val, err := c.ReadInteger16()
	if err != nil {
		return nil, err
	}
	return &RationalNumberType{Exponent: exp, Value: val}, nil
}

// PercentValueType is a 7-bit percentage in [0,100].
type PercentValueType = uint8

func EncodePercentValue(c *bitio.Cursor, v PercentValueType) error {
	return valuecodec.EncodePercentValue(c, v)
}

func DecodePercentValue(c *bitio.Cursor) (PercentValueType, error) {
	return valuecodec.DecodePercentValue(c)
}

const messageHeaderSessionCapacity = sessionIDCapacity

// MessageHeaderType models V2GMessage's header: a required SessionID, a
// required TimeStamp (seconds since epoch), and an optional embedded
// xmldsig Signature (spec.md §8 scenario 1: "SessionID = ..., TimeStamp =
// 0x000000006415A9C0"; SPEC_FULL.md §5).
type MessageHeaderType struct {
	SessionID SessionIDType
	TimeStamp uint64

	Signature       xmldsig.SignatureType
	SignatureIsUsed bool
}

func (h *MessageHeaderType) Encode(c *bitio.Cursor) error {
	if err := h.SessionID.Encode(c); err != nil {
		return err
	}
	if err := c.WriteUint64(h.TimeStamp); err != nil {
		return err
	}
	if h.SignatureIsUsed {
		if err := c.WriteBit(0); err != nil {
			return err
		}
		return h.Signature.Encode(c)
	}
	return c.WriteBit(1)
}

func DecodeMessageHeaderType(c *bitio.Cursor) (*MessageHeaderType, error) {
	out := &MessageHeaderType{}
	sid, err := DecodeSessionIDType(c)
	if err != nil {
		return nil, err
	}
	out.SessionID = *sid
	ts, err := c.ReadUint64()
	if err != nil {
		return nil, err
	}
	out.TimeStamp = ts
	bit, err := c.ReadBit()
	if err != nil {
		return nil, err
	}
	if bit == 0 {
		sig, err := xmldsig.DecodeSignatureType(c)
		if err != nil {
			return nil, err
		}
		out.Signature = *sig
		out.SignatureIsUsed = true
	}
	return out, nil
}
