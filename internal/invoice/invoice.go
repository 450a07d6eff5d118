// Package invoice produces the downloadable plain-text receipt for a
// completed order.
package invoice

import (
	"fmt"
	"time"

	"urbanfit-store/internal/domain/entities"
)

const template = `Urban Fit - Factura Electrónica
------------------------------------------
No. Pedido: %s
Fecha: %s
------------------------------------------
DETALLES DEL PAGO:
Total Pagado: %s
Método: %s
------------------------------------------

NOTA DE REEMBOLSO:
ESTE COMPROBANTE ES OBLIGATORIO PARA CUALQUIER PROCESO DE DEVOLUCIÓN O REEMBOLSO.
Guárdelo en un lugar seguro.

Gracias por su compra.
`

// Document is a rendered invoice artifact.
type Document struct {
	Filename string
	Content  string
}

type Generator struct {
	now func() time.Time
}

func NewGenerator(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Render fills the fixed template from a confirmation record. The date is
// the day of download, not the day of the order.
func (g *Generator) Render(confirmation entities.Confirmation) Document {
	date := g.now().Format("2/1/2006")

	return Document{
		Filename: fmt.Sprintf("Factura_UrbanFit_%s.txt", confirmation.OrderID),
		Content: fmt.Sprintf(template,
			confirmation.OrderID, date, confirmation.Total, confirmation.Method),
	}
}
