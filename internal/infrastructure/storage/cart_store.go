// Package storage maps the storefront's persisted state onto a kv.Store:
// the cart under "urbanFitCart" and the session flag under "urbanFitVisited".
package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"urbanfit-store/internal/domain/entities"
	"urbanfit-store/internal/infrastructure/kv"
	"urbanfit-store/internal/infrastructure/logger"
)

const cartKey = "urbanFitCart"

type CartStore struct {
	store  kv.Store
	logger *logger.Logger
}

func NewCartStore(store kv.Store, logger *logger.Logger) *CartStore {
	return &CartStore{
		store:  store,
		logger: logger,
	}
}

// Load reads the persisted cart. A missing key or an undecodable value both
// yield an empty cart; the page always discarded corrupt localStorage
// silently and the next save overwrites it.
func (s *CartStore) Load() (entities.Cart, error) {
	data, err := s.store.Get(cartKey)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return entities.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var cart entities.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		s.logger.Warn("Discarding undecodable persisted cart", "error", err)
		return entities.Cart{}, nil
	}
	return cart, nil
}

// Save serializes and writes the full cart, overwriting the previous value.
func (s *CartStore) Save(cart entities.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.store.Set(cartKey, data); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
