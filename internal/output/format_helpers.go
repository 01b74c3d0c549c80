package output

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is used when no locale is configured or the configured one does not parse.
const DefaultLocale = "ja-JP"

var defaultPrinter = message.NewPrinter(language.Japanese)

// NumberFormat renders whole currency amounts with the locale's digit grouping.
// The zero value uses DefaultLocale.
type NumberFormat struct {
	printer *message.Printer
}

// NewNumberFormat creates a NumberFormat for a BCP 47 locale such as "ja-JP" or "de-DE".
func NewNumberFormat(locale string) NumberFormat {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil || tag == language.Und {
		return NumberFormat{printer: defaultPrinter}
	}
	return NumberFormat{printer: message.NewPrinter(tag)}
}

func (n NumberFormat) p() *message.Printer {
	if n.printer == nil {
		return defaultPrinter
	}
	return n.printer
}

// Amount formats a whole amount with grouping separators, e.g. 8,000,000.
func (n NumberFormat) Amount(amount decimal.Decimal) string {
	return n.p().Sprintf("%d", amount.IntPart())
}

// Signed is Amount with an explicit "+" for non-negative values.
func (n NumberFormat) Signed(amount decimal.Decimal) string {
	if amount.Sign() >= 0 {
		return "+" + n.Amount(amount)
	}
	return n.Amount(amount)
}

// Plain formats an amount for machine-readable output: no grouping, no fraction.
func Plain(amount decimal.Decimal) string { return amount.StringFixed(0) }
