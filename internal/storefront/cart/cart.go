// Package cart holds the storefront's in-memory shopping cart.
package cart

import (
	"sync"

	"kapehan/internal/models"
)

// Cart is a thread-safe list of product lines. Lines keep the order in
// which products were first added.
type Cart struct {
	mu    sync.Mutex
	lines []models.CartLine
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts one unit of the product in the cart. Adding a product already
// present bumps its quantity instead of creating a second line.
func (c *Cart) Add(p models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, models.CartLine{Product: p, Quantity: 1})
}

// UpdateQuantity sets the quantity of the product's line. Quantities below
// one are ignored; use Remove to drop a line.
func (c *Cart) UpdateQuantity(productID, quantity int) {
	if quantity < 1 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Remove drops the product's line. Removing an absent product is a no-op.
func (c *Cart) Remove(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
}

// Count returns the total number of units across all lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Subtotal returns the sum of price times quantity over all lines.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	subtotal := 0.0
	for _, line := range c.lines {
		subtotal += line.Product.Price * float64(line.Quantity)
	}
	return subtotal
}

// Lines returns a copy of the cart's lines.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]models.CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}
