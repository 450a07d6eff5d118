// Package catalog holds the static product catalog. Prices are whole
// Colombian pesos; the storefront has no fractional prices.
package catalog

import "sort"

var prices = map[string]int64{
	"Camiseta Tech-Code":   89900,
	"Jean Goleador":        179900,
	"Chaqueta Active Play": 269900,
	"Sudadera Sport-Life":  139900,
	"Hoodie Code Warm":     159900,
	"Blusa Flow Code":      119900,
	"Jean Retro Goal":      189900,
	"Vestido Casual Tech":  159900,
	"Leggings Active Core": 129900,
	"Cardigan Cozy Code":   149900,
}

// PriceOf returns the unit price for a product display name. Unknown
// products are priced at zero rather than rejected; the storefront has
// always treated them that way.
func PriceOf(product string) int64 {
	return prices[product]
}

// Products returns the catalog's display names in stable order.
func Products() []string {
	names := make([]string, 0, len(prices))
	for name := range prices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
