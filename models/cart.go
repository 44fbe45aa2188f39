package models

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrNotInCart       = errors.New("product is not in the cart")
	ErrExceedsCart     = errors.New("quantity exceeds amount held in cart")
)

// CartItem pairs a product with the quantity held in a cart.
// Quantity is always >= 1; an item that would drop to zero is removed.
type CartItem struct {
	Product  *Product
	Quantity int
}

// Cart maps product IDs to cart items. One item per product.
type Cart struct {
	items map[int]*CartItem
}

func NewCart() *Cart {
	return &Cart{items: make(map[int]*CartItem)}
}

// Add puts quantity units of p into the cart, merging with any existing item.
func (c *Cart) Add(p *Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if item, ok := c.items[p.ID]; ok {
		item.Quantity += quantity
		return nil
	}
	c.items[p.ID] = &CartItem{Product: p, Quantity: quantity}
	return nil
}

// Remove takes quantity units of p out of the cart. Removing exactly the
// held quantity deletes the item; asking for more than is held leaves the
// cart unchanged.
func (c *Cart) Remove(p *Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	item, ok := c.items[p.ID]
	if !ok {
		return ErrNotInCart
	}
	switch {
	case quantity < item.Quantity:
		item.Quantity -= quantity
	case quantity == item.Quantity:
		delete(c.items, p.ID)
	default:
		return ErrExceedsCart
	}
	return nil
}

// Total sums price x quantity over all items. Zero for an empty cart.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Clear empties the cart. Used after checkout.
func (c *Cart) Clear() {
	c.items = make(map[int]*CartItem)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Get returns the item held for a product ID, if any.
func (c *Cart) Get(productID int) (*CartItem, bool) {
	item, ok := c.items[productID]
	return item, ok
}

// Items returns the cart contents ordered by product ID so rendering and
// serialization are deterministic.
func (c *Cart) Items() []*CartItem {
	out := make([]*CartItem, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Product.ID < out[j].Product.ID })
	return out
}
