package entities

import (
	"fmt"
	"math/rand"
	"time"
)

// LineItem is one distinct product+variant entry in the cart. The JSON tags
// match the schema the storefront has always persisted under the cart key,
// so previously saved carts keep decoding.
type LineItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
	BaseName string `json:"baseName"`
}

// Subtotal is the line total in whole pesos.
func (i LineItem) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

// Cart is the ordered sequence of line items; order is insertion order.
type Cart []LineItem

// ItemCount sums the quantities across all line items.
func (c Cart) ItemCount() int {
	total := 0
	for _, item := range c {
		total += item.Quantity
	}
	return total
}

// Total sums price×quantity across all line items, in whole pesos.
func (c Cart) Total() int64 {
	var total int64
	for _, item := range c {
		total += item.Subtotal()
	}
	return total
}

// CompositeName decorates a product name with the selected variant. It is
// the de-duplication key for cart merges.
func CompositeName(product, color, size string) string {
	return fmt.Sprintf("%s (Color: %s, Talla: %s)", product, color, size)
}

// NewLineItem builds a line item for a freshly selected variant with
// quantity 1.
func NewLineItem(product, color, size string, price int64) LineItem {
	return LineItem{
		ID:       NewLineItemID(),
		Name:     CompositeName(product, color, size),
		Quantity: 1,
		Price:    price,
		BaseName: product,
	}
}

// NewLineItemID generates ids the way the storefront always has: current
// timestamp plus a small random component. Collisions are possible and
// accepted.
func NewLineItemID() int64 {
	return time.Now().UnixMilli() + rand.Int63n(1000)
}
