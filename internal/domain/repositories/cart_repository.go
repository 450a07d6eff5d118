package repositories

import "urbanfit-store/internal/domain/entities"

// CartRepository persists the whole cart as one unit. Save overwrites the
// previous value on every mutation; carts are small enough that diffing
// would buy nothing.
type CartRepository interface {
	Load() (entities.Cart, error)
	Save(cart entities.Cart) error
}
