package usecase

import (
	"fmt"
	"strings"

	"urbanfit-store/internal/catalog"
	"urbanfit-store/internal/domain/entities"
	"urbanfit-store/internal/domain/repositories"
	"urbanfit-store/internal/infrastructure/logger"
)

// CartUseCase owns the cart state. Every mutation goes through it, persists
// the full cart, and pushes the aggregate count to the view; nothing else
// touches the cart directly.
type CartUseCase struct {
	cartRepo repositories.CartRepository
	view     View
	logger   *logger.Logger

	cart     entities.Cart
	notifier Notifier
	onChange func()
}

func NewCartUseCase(cartRepo repositories.CartRepository, view View, logger *logger.Logger) *CartUseCase {
	cart, err := cartRepo.Load()
	if err != nil {
		// Startup must not fail over storage; the page never did.
		logger.Warn("Failed to load persisted cart, starting empty", "error", err)
		cart = entities.Cart{}
	}

	return &CartUseCase{
		cartRepo: cartRepo,
		view:     view,
		logger:   logger,
		cart:     cart,
	}
}

// SetNotifier binds the alert surface. The engine works without one, it
// just stays quiet.
func (uc *CartUseCase) SetNotifier(notifier Notifier) {
	uc.notifier = notifier
}

// SetChangeListener registers a hook invoked after every cart mutation,
// once the counter has been updated.
func (uc *CartUseCase) SetChangeListener(onChange func()) {
	uc.onChange = onChange
}

// AddItem puts one unit of the selected variant in the cart. An existing
// line item for the same (product, color, size) gains quantity instead of a
// duplicate row. Missing selections abort with a warning and no mutation.
func (uc *CartUseCase) AddItem(product, color, size string) {
	if color == "" || size == "" {
		uc.notify(entities.SeverityWarning,
			fmt.Sprintf("🛑 Por favor, selecciona un color y una talla para la %q antes de añadirla al carrito.", product))
		return
	}

	name := entities.CompositeName(product, color, size)

	merged := false
	for i := range uc.cart {
		if uc.cart[i].Name == name {
			uc.cart[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		uc.cart = append(uc.cart, entities.NewLineItem(product, color, size, catalog.PriceOf(product)))
	}

	uc.persist()
	uc.changed()

	uc.notify(entities.SeveritySuccess,
		fmt.Sprintf("✅ ¡%q añadido al carrito!\nAhora tienes %d artículos.", product, uc.cart.ItemCount()))
}

// RemoveItem drops the line item with the given id. A miss is a silent
// no-op: nothing is persisted and nothing is surfaced.
func (uc *CartUseCase) RemoveItem(id int64) {
	for i := range uc.cart {
		if uc.cart[i].ID == id {
			uc.cart = append(uc.cart[:i], uc.cart[i+1:]...)
			uc.persist()
			uc.changed()
			return
		}
	}
}

// Clear empties the cart wholesale, as happens after a successful payment.
func (uc *CartUseCase) Clear() {
	uc.cart = entities.Cart{}
	uc.persist()
	uc.changed()
}

// Items returns a copy of the cart in insertion order.
func (uc *CartUseCase) Items() entities.Cart {
	return append(entities.Cart(nil), uc.cart...)
}

func (uc *CartUseCase) ItemCount() int {
	return uc.cart.ItemCount()
}

func (uc *CartUseCase) Total() int64 {
	return uc.cart.Total()
}

// Refresh pushes the current state to the view without mutating anything.
// The host calls it once at startup.
func (uc *CartUseCase) Refresh() {
	uc.changed()
}

// CheckSizes runs the storefront's canned size check. There is no real
// inventory behind it.
func (uc *CartUseCase) CheckSizes(product, sizes string) {
	if strings.Contains(product, `Chaqueta Bomber "Active Play"`) {
		uc.notify(entities.SeverityWarning,
			fmt.Sprintf("¡Alerta! Solo quedan disponibles las tallas: L y XL para la %q. ¡Compra antes de que se agoten!", product))
		return
	}

	uc.notify(entities.SeverityInfo,
		fmt.Sprintf("¡Excelente! Tallas disponibles: %s para la %q. Para un ajuste perfecto, consulta la guía de tallas en la sección de Contacto.", sizes, product))
	uc.logger.Info("Size check", "product", product, "sizes", sizes)
}

func (uc *CartUseCase) persist() {
	if err := uc.cartRepo.Save(uc.cart); err != nil {
		// In-memory state stays authoritative for the session.
		uc.logger.Error("Failed to persist cart", "error", err)
	}
}

func (uc *CartUseCase) changed() {
	uc.view.SetCartCount(uc.cart.ItemCount())
	if uc.onChange != nil {
		uc.onChange()
	}
}

func (uc *CartUseCase) notify(severity entities.Severity, message string) {
	if uc.notifier != nil {
		uc.notifier.ShowAlert(severity, message)
	}
}
