package entities

// Overlay identifies one of the storefront's modal surfaces. Each overlay is
// a two-state machine: hidden or visible.
type Overlay string

const (
	OverlayCart         Overlay = "cart"
	OverlayCheckout     Overlay = "checkout"
	OverlayConfirmation Overlay = "confirmation"
	OverlayWelcome      Overlay = "welcome"
	OverlayAlert        Overlay = "alert"
)

// TransactionalOverlays are mutually exclusive: opening one closes the other
// three. The welcome overlay is independent of the set.
func TransactionalOverlays() []Overlay {
	return []Overlay{OverlayCart, OverlayCheckout, OverlayConfirmation, OverlayAlert}
}

func ValidOverlay(o Overlay) bool {
	switch o {
	case OverlayCart, OverlayCheckout, OverlayConfirmation, OverlayWelcome, OverlayAlert:
		return true
	}
	return false
}
