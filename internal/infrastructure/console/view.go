// Package console renders the storefront surfaces on a terminal. It is the
// stand-in for the page markup: all layout decisions live here, none of the
// cart or overlay logic.
package console

import (
	"fmt"
	"io"

	"urbanfit-store/internal/domain/entities"
	"urbanfit-store/internal/usecase"
)

var overlayTitles = map[entities.Overlay]string{
	entities.OverlayCart:         "🛒 Tu Carrito",
	entities.OverlayCheckout:     "💳 Pago Seguro",
	entities.OverlayConfirmation: "🎉 Compra Confirmada",
	entities.OverlayWelcome:      "👋 ¡Bienvenido a Urban Fit!",
	entities.OverlayAlert:        "🔔 Aviso",
}

type View struct {
	out io.Writer
}

func NewView(out io.Writer) *View {
	return &View{out: out}
}

func (v *View) SetCartCount(count int) {
	fmt.Fprintf(v.out, "  [carrito: %d artículos]\n", count)
}

func (v *View) SetNavScrolled(scrolled bool) {
	if scrolled {
		fmt.Fprintln(v.out, "  [navbar: compacta]")
	} else {
		fmt.Fprintln(v.out, "  [navbar: normal]")
	}
}

func (v *View) ShowOverlay(overlay entities.Overlay) {
	fmt.Fprintf(v.out, "┌── %s ──\n", overlayTitles[overlay])
}

func (v *View) HideOverlay(overlay entities.Overlay) {
	fmt.Fprintf(v.out, "└── (%s cerrado)\n", overlay)
}

func (v *View) RenderCart(rows []usecase.CartRow, total string) {
	for _, row := range rows {
		fmt.Fprintf(v.out, "│ %-60s %12s  [id %d]\n", row.Label, row.Subtotal, row.ID)
	}
	fmt.Fprintf(v.out, "│ TOTAL: %s\n", total)
}

func (v *View) RenderCartEmpty(message, total string) {
	fmt.Fprintf(v.out, "│ %s\n", message)
	fmt.Fprintf(v.out, "│ TOTAL: %s\n", total)
}

func (v *View) RenderCheckoutTotal(total string) {
	fmt.Fprintf(v.out, "│ Total a pagar: %s\n", total)
	fmt.Fprintln(v.out, "│ Métodos: card | pse | nequi")
}

func (v *View) RenderConfirmation(confirmation entities.Confirmation) {
	fmt.Fprintf(v.out, "│ No. Pedido: %s\n", confirmation.OrderID)
	fmt.Fprintf(v.out, "│ Total Pagado: %s\n", confirmation.Total)
	fmt.Fprintf(v.out, "│ Método: %s\n", confirmation.Method)
}

func (v *View) RenderAlert(presentation entities.AlertPresentation, message string) {
	fmt.Fprintf(v.out, "│ [%s] %s\n", presentation.Style, presentation.Title)
	fmt.Fprintf(v.out, "│ %s\n", message)
}
