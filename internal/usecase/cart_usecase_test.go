package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"urbanfit-store/internal/domain/entities"
	"urbanfit-store/internal/infrastructure/logger"
)

func newCartUseCase(t *testing.T, persisted entities.Cart) (*CartUseCase, *MockCartRepository, *MockNotifier, *fakeView) {
	t.Helper()

	mockRepo := new(MockCartRepository)
	mockRepo.On("Load").Return(persisted, nil).Once()

	view := &fakeView{}
	engine := NewCartUseCase(mockRepo, view, logger.NewLogger())

	mockNotifier := new(MockNotifier)
	engine.SetNotifier(mockNotifier)

	return engine, mockRepo, mockNotifier, view
}

func TestCartUseCase_AddItem_MergesByVariant(t *testing.T) {
	engine, mockRepo, mockNotifier, view := newCartUseCase(t, entities.Cart{})

	mockRepo.On("Save", mock.AnythingOfType("entities.Cart")).Return(nil)
	mockNotifier.On("ShowAlert", entities.SeveritySuccess, mock.AnythingOfType("string")).Return()

	engine.AddItem("Camiseta Tech-Code", "Negro", "M")
	engine.AddItem("Camiseta Tech-Code", "Negro", "M")

	items := engine.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "Camiseta Tech-Code (Color: Negro, Talla: M)", items[0].Name)
	assert.Equal(t, "Camiseta Tech-Code", items[0].BaseName)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, engine.ItemCount())
	assert.Equal(t, int64(179800), engine.Total())
	assert.Equal(t, 2, view.cartCount)

	mockRepo.AssertNumberOfCalls(t, "Save", 2)
	mockNotifier.AssertNumberOfCalls(t, "ShowAlert", 2)
}

func TestCartUseCase_AddItem_DistinctVariantsStaySeparate(t *testing.T) {
	engine, mockRepo, mockNotifier, _ := newCartUseCase(t, entities.Cart{})

	mockRepo.On("Save", mock.AnythingOfType("entities.Cart")).Return(nil)
	mockNotifier.On("ShowAlert", entities.SeveritySuccess, mock.AnythingOfType("string")).Return()

	engine.AddItem("Camiseta Tech-Code", "Negro", "M")
	engine.AddItem("Camiseta Tech-Code", "Blanco", "M")
	engine.AddItem("Camiseta Tech-Code", "Negro", "L")

	assert.Len(t, engine.Items(), 3)
	assert.Equal(t, 3, engine.ItemCount())
}

func TestCartUseCase_AddItem_MissingSelection(t *testing.T) {
	tests := []struct {
		name  string
		color string
		size  string
	}{
		{"missing color", "", "M"},
		{"missing size", "Negro", ""},
		{"missing both", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, mockRepo, mockNotifier, _ := newCartUseCase(t, entities.Cart{})

			mockNotifier.On("ShowAlert", entities.SeverityWarning, mock.AnythingOfType("string")).Return()

			engine.AddItem("Camiseta Tech-Code", tt.color, tt.size)

			assert.Empty(t, engine.Items())
			mockRepo.AssertNotCalled(t, "Save", mock.Anything)
			mockNotifier.AssertExpectations(t)
		})
	}
}

func TestCartUseCase_AddItem_UnknownProductPricedZero(t *testing.T) {
	engine, mockRepo, mockNotifier, _ := newCartUseCase(t, entities.Cart{})

	mockRepo.On("Save", mock.AnythingOfType("entities.Cart")).Return(nil)
	mockNotifier.On("ShowAlert", entities.SeveritySuccess, mock.AnythingOfType("string")).Return()

	engine.AddItem("Gorra Inexistente", "Rojo", "U")

	items := engine.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, int64(0), items[0].Price)
	assert.Equal(t, int64(0), engine.Total())
}

func TestCartUseCase_RemoveItem(t *testing.T) {
	persisted := entities.Cart{
		{ID: 101, Name: "a", Quantity: 2, Price: 89900},
		{ID: 202, Name: "b", Quantity: 1, Price: 179900},
	}
	engine, mockRepo, _, view := newCartUseCase(t, persisted)

	mockRepo.On("Save", mock.AnythingOfType("entities.Cart")).Return(nil)

	engine.RemoveItem(101)

	items := engine.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, int64(202), items[0].ID)
	assert.Equal(t, 1, view.cartCount)
	mockRepo.AssertNumberOfCalls(t, "Save", 1)

	// Removing the same id again changes nothing and writes nothing.
	engine.RemoveItem(101)

	assert.Len(t, engine.Items(), 1)
	mockRepo.AssertNumberOfCalls(t, "Save", 1)
}

func TestCartUseCase_RemoveItem_MissingIDIsSilent(t *testing.T) {
	persisted := entities.Cart{{ID: 101, Name: "a", Quantity: 1, Price: 89900}}
	engine, mockRepo, mockNotifier, _ := newCartUseCase(t, persisted)

	engine.RemoveItem(999)

	assert.Len(t, engine.Items(), 1)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
	mockNotifier.AssertNotCalled(t, "ShowAlert", mock.Anything, mock.Anything)
}

func TestCartUseCase_Clear(t *testing.T) {
	persisted := entities.Cart{{ID: 101, Name: "a", Quantity: 3, Price: 89900}}
	engine, mockRepo, _, view := newCartUseCase(t, persisted)

	mockRepo.On("Save", mock.AnythingOfType("entities.Cart")).Return(nil).Run(func(args mock.Arguments) {
		assert.Empty(t, args.Get(0).(entities.Cart))
	})

	engine.Clear()

	assert.Equal(t, 0, engine.ItemCount())
	assert.Equal(t, int64(0), engine.Total())
	assert.Equal(t, 0, view.cartCount)
	mockRepo.AssertExpectations(t)
}

func TestCartUseCase_LoadFailureStartsEmpty(t *testing.T) {
	mockRepo := new(MockCartRepository)
	mockRepo.On("Load").Return(nil, errors.New("store unavailable")).Once()

	engine := NewCartUseCase(mockRepo, &fakeView{}, logger.NewLogger())

	assert.Equal(t, 0, engine.ItemCount())
	mockRepo.AssertExpectations(t)
}

func TestCartUseCase_SaveFailureKeepsState(t *testing.T) {
	engine, mockRepo, mockNotifier, _ := newCartUseCase(t, entities.Cart{})

	mockRepo.On("Save", mock.AnythingOfType("entities.Cart")).Return(errors.New("disk full"))
	mockNotifier.On("ShowAlert", entities.SeveritySuccess, mock.AnythingOfType("string")).Return()

	engine.AddItem("Camiseta Tech-Code", "Negro", "M")

	assert.Equal(t, 1, engine.ItemCount())
}

func TestCartUseCase_NoNotifierStaysQuiet(t *testing.T) {
	mockRepo := new(MockCartRepository)
	mockRepo.On("Load").Return(entities.Cart{}, nil).Once()

	engine := NewCartUseCase(mockRepo, &fakeView{}, logger.NewLogger())

	engine.AddItem("Camiseta Tech-Code", "", "")

	assert.Empty(t, engine.Items())
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestCartUseCase_CheckSizes(t *testing.T) {
	engine, _, mockNotifier, _ := newCartUseCase(t, entities.Cart{})

	mockNotifier.On("ShowAlert", entities.SeverityWarning, mock.AnythingOfType("string")).Return().Once()

	engine.CheckSizes(`Chaqueta Bomber "Active Play"`, "L, XL")

	mockNotifier.On("ShowAlert", entities.SeverityInfo, mock.AnythingOfType("string")).Return().Once()

	engine.CheckSizes("Camiseta Tech-Code", "S, M, L")

	mockNotifier.AssertExpectations(t)
}

func TestCartUseCase_ItemsReturnsCopy(t *testing.T) {
	persisted := entities.Cart{{ID: 101, Name: "a", Quantity: 1, Price: 89900}}
	engine, _, _, _ := newCartUseCase(t, persisted)

	items := engine.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, engine.Items()[0].Quantity)
}
