// Package currency formats whole-peso amounts for display: Colombian peso,
// dot-grouped thousands, no decimals.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("es-CO"))

// Format renders an amount the way the storefront displays COP, e.g.
// Format(179800) == "$179.800".
func Format(amount int64) string {
	return printer.Sprintf("$%v", number.Decimal(amount))
}
