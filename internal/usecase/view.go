package usecase

import "urbanfit-store/internal/domain/entities"

// CartRow is one rendered cart line: "quantity x composite name" plus the
// formatted line total.
type CartRow struct {
	ID       int64
	Label    string
	Subtotal string
}

// View is the rendering surface the engine and coordinator draw on. The
// hosting layer supplies an implementation; the logic here never touches a
// rendering API directly, so it runs the same with no surface at all.
type View interface {
	SetCartCount(count int)
	SetNavScrolled(scrolled bool)
	ShowOverlay(overlay entities.Overlay)
	HideOverlay(overlay entities.Overlay)
	RenderCart(rows []CartRow, total string)
	RenderCartEmpty(message, total string)
	RenderCheckoutTotal(total string)
	RenderConfirmation(confirmation entities.Confirmation)
	RenderAlert(presentation entities.AlertPresentation, message string)
}

// Notifier surfaces transient user-facing feedback. All storefront failures
// travel this way instead of error returns.
type Notifier interface {
	ShowAlert(severity entities.Severity, message string)
}

// DownloadSink receives generated artifacts the way a browser receives a
// forced download.
type DownloadSink interface {
	Save(filename string, content []byte) error
}
