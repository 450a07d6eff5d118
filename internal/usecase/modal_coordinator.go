package usecase

import (
	"fmt"
	"time"

	"urbanfit-store/internal/currency"
	"urbanfit-store/internal/domain/entities"
	"urbanfit-store/internal/infrastructure/logger"
)

const emptyCartMessage = "Tu carrito está vacío. ¡Es hora de codificar tu outfit!"

// SessionFlags gates once-per-session surfaces.
type SessionFlags interface {
	Visited() bool
	MarkVisited()
}

// ModalCoordinator runs the five overlay state machines. Cart, checkout,
// confirmation and alert are mutually exclusive; welcome is independent and
// shows at most once per session.
type ModalCoordinator struct {
	engine    *CartUseCase
	presenter *AlertPresenter
	session   SessionFlags
	view      View
	logger    *logger.Logger
	now       func() time.Time

	visible       map[entities.Overlay]bool
	confirmation  *entities.Confirmation
	checkoutTotal string
}

func NewModalCoordinator(engine *CartUseCase, presenter *AlertPresenter, session SessionFlags, view View, logger *logger.Logger) *ModalCoordinator {
	c := &ModalCoordinator{
		engine:    engine,
		presenter: presenter,
		session:   session,
		view:      view,
		logger:    logger,
		now:       time.Now,
		visible:   make(map[entities.Overlay]bool),
	}

	engine.SetNotifier(c)
	engine.SetChangeListener(c.refreshCartOverlay)

	return c
}

// OpenCart renders one row per line item, or the empty state, and shows the
// cart overlay.
func (c *ModalCoordinator) OpenCart() {
	c.closeOthers(entities.OverlayCart)

	items := c.engine.Items()
	if len(items) == 0 {
		c.view.RenderCartEmpty(emptyCartMessage, currency.Format(0))
		c.show(entities.OverlayCart)
		return
	}

	rows := make([]CartRow, len(items))
	for i, item := range items {
		rows[i] = CartRow{
			ID:       item.ID,
			Label:    fmt.Sprintf("%d x %s", item.Quantity, item.Name),
			Subtotal: currency.Format(item.Subtotal()),
		}
	}

	c.view.RenderCart(rows, currency.Format(c.engine.Total()))
	c.show(entities.OverlayCart)
}

// OpenCheckout shows the payment overlay with the current total. An empty
// cart gets an info alert instead.
func (c *ModalCoordinator) OpenCheckout() {
	if c.engine.ItemCount() == 0 {
		c.ShowAlert(entities.SeverityInfo, "Tu carrito está vacío. ¡Añade productos para iniciar el pago!")
		return
	}

	c.closeOthers(entities.OverlayCheckout)

	c.checkoutTotal = currency.Format(c.engine.Total())
	c.view.RenderCheckoutTotal(c.checkoutTotal)
	c.show(entities.OverlayCheckout)
}

// OpenConfirmation generates the order record for a completed payment and
// shows it. The record lives only as long as the overlay state.
func (c *ModalCoordinator) OpenConfirmation(total, method string) {
	confirmation := entities.Confirmation{
		OrderID: entities.NewOrderID(c.now()),
		Total:   total,
		Method:  entities.PaymentMethodLabel(method),
	}
	c.confirmation = &confirmation

	c.closeOthers(entities.OverlayConfirmation)
	c.view.RenderConfirmation(confirmation)
	c.show(entities.OverlayConfirmation)

	c.logger.Info("Order confirmed", "order_id", confirmation.OrderID, "method", confirmation.Method)
}

// ShowWelcome opens the welcome overlay unless this session has already
// seen it.
func (c *ModalCoordinator) ShowWelcome() {
	if c.session.Visited() {
		return
	}
	c.show(entities.OverlayWelcome)
}

// ShowAlert renders an alert of the given severity, replacing any alert
// already on screen.
func (c *ModalCoordinator) ShowAlert(severity entities.Severity, message string) {
	c.closeOthers(entities.OverlayAlert)
	c.presenter.Present(severity, message)
	c.show(entities.OverlayAlert)
}

// Close hides an overlay. Closing an already hidden overlay is a no-op.
// Closing the welcome overlay marks the session as visited.
func (c *ModalCoordinator) Close(overlay entities.Overlay) {
	c.hide(overlay)
	if overlay == entities.OverlayWelcome {
		c.session.MarkVisited()
	}
}

// ClickBackdrop handles a pointer event that landed on an overlay's
// backdrop rather than its content: that overlay closes.
func (c *ModalCoordinator) ClickBackdrop(overlay entities.Overlay) {
	if c.visible[overlay] {
		c.Close(overlay)
	}
}

// HandleScroll applies the navbar's scrolled state past the 50px threshold.
func (c *ModalCoordinator) HandleScroll(offsetY int) {
	c.view.SetNavScrolled(offsetY > 50)
}

// Visible reports the overlay's current state.
func (c *ModalCoordinator) Visible(overlay entities.Overlay) bool {
	return c.visible[overlay]
}

// CheckoutTotal is the formatted total the checkout overlay displays.
func (c *ModalCoordinator) CheckoutTotal() string {
	return c.checkoutTotal
}

// CurrentConfirmation is the order record on the confirmation overlay, nil
// before the first checkout.
func (c *ModalCoordinator) CurrentConfirmation() *entities.Confirmation {
	return c.confirmation
}

// refreshCartOverlay re-renders the cart overlay after a mutation, so an
// open cart always reflects the latest state.
func (c *ModalCoordinator) refreshCartOverlay() {
	if c.visible[entities.OverlayCart] {
		c.OpenCart()
	}
}

func (c *ModalCoordinator) closeOthers(overlay entities.Overlay) {
	for _, other := range entities.TransactionalOverlays() {
		if other != overlay {
			c.hide(other)
		}
	}
}

func (c *ModalCoordinator) show(overlay entities.Overlay) {
	if !c.visible[overlay] {
		c.visible[overlay] = true
		c.view.ShowOverlay(overlay)
	}
}

func (c *ModalCoordinator) hide(overlay entities.Overlay) {
	if c.visible[overlay] {
		c.visible[overlay] = false
		c.view.HideOverlay(overlay)
	}
}
