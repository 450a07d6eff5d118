package usecase

import (
	"github.com/stretchr/testify/mock"

	"urbanfit-store/internal/domain/entities"
)

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Load() (entities.Cart, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(entities.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(cart entities.Cart) error {
	args := m.Called(cart)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) ShowAlert(severity entities.Severity, message string) {
	m.Called(severity, message)
}

type MockDownloadSink struct {
	mock.Mock
}

func (m *MockDownloadSink) Save(filename string, content []byte) error {
	args := m.Called(filename, content)
	return args.Error(0)
}

type renderedAlert struct {
	presentation entities.AlertPresentation
	message      string
}

// fakeView records everything drawn on it, standing in for the page.
type fakeView struct {
	cartCount     int
	navScrolled   bool
	rows          []CartRow
	cartTotal     string
	emptyMessage  string
	emptyTotal    string
	checkoutTotal string
	confirmation  *entities.Confirmation
	alert         *renderedAlert
}

func (v *fakeView) SetCartCount(count int)       { v.cartCount = count }
func (v *fakeView) SetNavScrolled(scrolled bool) { v.navScrolled = scrolled }
func (v *fakeView) ShowOverlay(entities.Overlay) {}
func (v *fakeView) HideOverlay(entities.Overlay) {}

func (v *fakeView) RenderCart(rows []CartRow, total string) {
	v.rows = rows
	v.cartTotal = total
	v.emptyMessage = ""
	v.emptyTotal = ""
}

func (v *fakeView) RenderCartEmpty(message, total string) {
	v.rows = nil
	v.cartTotal = ""
	v.emptyMessage = message
	v.emptyTotal = total
}

func (v *fakeView) RenderCheckoutTotal(total string) {
	v.checkoutTotal = total
}

func (v *fakeView) RenderConfirmation(confirmation entities.Confirmation) {
	v.confirmation = &confirmation
}

func (v *fakeView) RenderAlert(presentation entities.AlertPresentation, message string) {
	v.alert = &renderedAlert{presentation: presentation, message: message}
}
