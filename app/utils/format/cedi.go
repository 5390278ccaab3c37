package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var cedi = accounting.Accounting{Symbol: "GH₵", Precision: 2}

// Cedi renders a monetary amount as a Ghana-cedi display string,
// e.g. "GH₵1,250.00".
func Cedi(amount decimal.Decimal) string {
	return cedi.FormatMoneyDecimal(amount)
}
