package main

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// decimalValue is a flag value holding an exact decimal amount or rate
type decimalValue struct {
	d *decimal.Decimal
}

func newDecimalValue(p *decimal.Decimal, def decimal.Decimal) *decimalValue {
	*p = def
	return &decimalValue{d: p}
}

func (v *decimalValue) String() string {
	if v.d == nil {
		return "0"
	}
	return v.d.String()
}

func (v *decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*v.d = d
	return nil
}

func (v *decimalValue) Type() string { return "decimal" }
