package usecase

import (
	"fmt"

	"urbanfit-store/internal/domain/entities"
	"urbanfit-store/internal/infrastructure/logger"
	"urbanfit-store/internal/invoice"
)

// CheckoutFlow orchestrates the simulated payment: form submit, order
// confirmation, cart clear. Payment has no failure path; every submission
// succeeds.
type CheckoutFlow struct {
	engine      *CartUseCase
	coordinator *ModalCoordinator
	invoices    *invoice.Generator
	downloads   DownloadSink
	logger      *logger.Logger
}

func NewCheckoutFlow(engine *CartUseCase, coordinator *ModalCoordinator, invoices *invoice.Generator, downloads DownloadSink, logger *logger.Logger) *CheckoutFlow {
	return &CheckoutFlow{
		engine:      engine,
		coordinator: coordinator,
		invoices:    invoices,
		downloads:   downloads,
		logger:      logger,
	}
}

// SubmitPayment completes the checkout form: the displayed total and the
// selected method become the confirmation, then the cart empties and the
// checkout overlay closes.
func (f *CheckoutFlow) SubmitPayment(method string) {
	total := f.coordinator.CheckoutTotal()

	f.coordinator.OpenConfirmation(total, method)

	f.engine.Clear()
	f.coordinator.Close(entities.OverlayCheckout)
}

// DownloadInvoice writes the invoice for the order currently displayed on
// the confirmation overlay. It reads only that display state; there is no
// separate order store.
func (f *CheckoutFlow) DownloadInvoice() {
	confirmation := f.coordinator.CurrentConfirmation()
	if confirmation == nil {
		return
	}

	doc := f.invoices.Render(*confirmation)

	if err := f.downloads.Save(doc.Filename, []byte(doc.Content)); err != nil {
		f.logger.Error("Failed to write invoice", "filename", doc.Filename, "error", err)
		f.coordinator.ShowAlert(entities.SeverityError,
			fmt.Sprintf("No se pudo generar el archivo %q. Intenta nuevamente.", doc.Filename))
		return
	}

	f.coordinator.ShowAlert(entities.SeveritySuccess,
		fmt.Sprintf("📄 ¡Factura descargada con éxito!\nGuarda el archivo %q para futuros reembolsos.", doc.Filename))
}
