package entities

import (
	"fmt"
	"math/rand"
	"time"
)

// Confirmation is the ephemeral record backing the confirmation overlay. It
// is regenerated on every checkout and never persisted.
type Confirmation struct {
	OrderID string
	Total   string
	Method  string
}

var paymentMethodLabels = map[string]string{
	"card":  "Tarjeta de Crédito/Débito",
	"pse":   "PSE (Transferencia Bancaria)",
	"nequi": "Nequi / Daviplata",
}

const unknownMethodLabel = "Método No Especificado"

// PaymentMethodLabel maps a payment method code from the checkout form to
// its display label. Unknown codes get the unspecified label.
func PaymentMethodLabel(method string) string {
	if label, ok := paymentMethodLabels[method]; ok {
		return label
	}
	return unknownMethodLabel
}

// ValidPaymentMethod reports whether the code is one the checkout form
// offers.
func ValidPaymentMethod(method string) bool {
	_, ok := paymentMethodLabels[method]
	return ok
}

// NewOrderID generates a simulated order id: "UF-" + YYYYMMDD + "-" + a
// random number in [1000, 9999].
func NewOrderID(now time.Time) string {
	return fmt.Sprintf("UF-%s-%d", now.Format("20060102"), 1000+rand.Intn(9000))
}
