// Package money formats rupee amounts the way the platform displays them:
// en-IN digit grouping, zero fractional digits, malformed values shown as zero.
package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders a currency amount with no fractional digits. NaN and
// infinities render as zero, matching the display contract for malformed
// upstream amounts.
func FormatINR(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return printer.Sprintf("₹%v", number.Decimal(amount,
		number.MaxFractionDigits(0), number.MinFractionDigits(0)))
}
