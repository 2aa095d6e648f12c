package storefront

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// NewMoney converts an amount in minor units of the currency
func NewMoney(minorUnits int64, cur currency.Unit) Money {
	scale, _ := currency.Standard.Rounding(cur)
	return Money{
		Amount:   decimal.New(minorUnits, -int32(scale)),
		Currency: cur,
	}
}

func (m Money) String() string {
	scale, _ := currency.Standard.Rounding(m.Currency)
	return fmt.Sprintf("%s %s", m.Currency.String(), m.Amount.StringFixed(int32(scale)))
}
