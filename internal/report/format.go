package report

import (
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts as human readable currency strings for
// the display fields of the report responses.
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// NewFormatter returns a Formatter for an ISO 4217 currency code.
// Unknown codes fall back to IDR, the currency of the original data.
func NewFormatter(code string) Formatter {
	unit, err := currency.ParseISO(code)
	if err != nil {
		log.Warn().Str("currency", code).Msg("unknown currency code, falling back to IDR")
		unit = currency.IDR
	}

	return Formatter{
		unit:    unit,
		printer: message.NewPrinter(language.English),
	}
}

// Format renders an amount with the currency symbol, e.g. "Rp 5,000,000".
func (f Formatter) Format(amount decimal.Decimal) string {
	return f.printer.Sprintf("%v", currency.Symbol(f.unit.Amount(amount.InexactFloat64())))
}
