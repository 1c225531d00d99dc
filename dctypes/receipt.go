package dctypes

import (
	"github.com/EVerest/everest-core-sub002/bitio"
	"github.com/EVerest/everest-core-sub002/exierr"
	"github.com/EVerest/everest-core-sub002/valuecodec"
)

const (
	taxRuleIDCapacity   = 8
	taxRuleNameCapacity = 32
	// MaxTaxRules bounds Receipt.TaxRule (spec.md §8 scenario 4).
	MaxTaxRules = 10
)

// TaxRuleType carries one line item of a Receipt's tax breakdown.
type TaxRuleType struct {
	TaxRuleID   string
	TaxRuleName string
	TaxRate     RationalNumberType
	TaxRuleApplicablesSignedInfo bool // whether this rule is a signed component, kept as a single flag per spec.md §3's choice-by-presence convention
}

func (t *TaxRuleType) Encode(c *bitio.Cursor) error {
	if err := valuecodec.EncodeString(c, t.TaxRuleID); err != nil {
		return err
	}
	if err := valuecodec.EncodeString(c, t.TaxRuleName); err != nil {
		return err
	}
	if err := t.TaxRate.Encode(c); err != nil {
		return err
	}
	return c.WriteBool(t.TaxRuleApplicablesSignedInfo)
}

func DecodeTaxRuleType(c *bitio.Cursor) (*TaxRuleType, error) {
	id, err := valuecodec.DecodeString(c, taxRuleIDCapacity)
	if err != nil {
		return nil, err
	}
	name, err := valuecodec.DecodeString(c, taxRuleNameCapacity)
	if err != nil {
		return nil, err
	}
	rate, err := DecodeRationalNumberType(c)
	if err != nil {
		return nil, err
	}
	applicable, err := c.ReadBool()
	if err != nil {
		return nil, err
	}
	return &TaxRuleType{TaxRuleID: id, TaxRuleName: name, TaxRate: *rate, TaxRuleApplicablesSignedInfo: applicable}, nil
}

// Receipt models the DC session's billing receipt: a bounded array of up
// to 10 TaxRule entries plus the total cost (spec.md §8 scenario 4: "a
// bounded array of up to 10 TaxRuleType entries").
type Receipt struct {
	TaxRule    [MaxTaxRules]TaxRuleType
	TaxRuleLen uint16

	TotalCost RationalNumberType
}

func (r *Receipt) Encode(c *bitio.Cursor) error {
	if int(r.TaxRuleLen) > MaxTaxRules {
		return exierr.New(exierr.UnknownEventCode, "Receipt: arrayLen %d exceeds max %d", r.TaxRuleLen, MaxTaxRules)
	}
	for i := 0; i < int(r.TaxRuleLen); i++ {
		if err := c.WriteBit(0); err != nil {
			return err
		}
		if err := r.TaxRule[i].Encode(c); err != nil {
			return err
		}
	}
	if int(r.TaxRuleLen) < MaxTaxRules {
		if err := c.WriteBit(1); err != nil {
			return err
		}
	}
	return r.TotalCost.Encode(c)
}

func DecodeReceipt(c *bitio.Cursor) (*Receipt, error) {
	out := &Receipt{}
	for out.TaxRuleLen < MaxTaxRules {
		bit, err := c.ReadBit()
		if err != nil {
			return nil, err
		}
		if bit == 1 {
			break
		}
		tr, err := DecodeTaxRuleType(c)
		if err != nil {
			return nil, err
		}
		out.TaxRule[out.TaxRuleLen] = *tr
		out.TaxRuleLen++
	}
	tc, err := DecodeRationalNumberType(c)
	if err != nil {
		return nil, err
	}
	out.TotalCost = *tc
	return out, nil
}
