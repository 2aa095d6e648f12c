package storefront

import "math"

// MaxLineQuantity bounds the quantity of a single cart line
const MaxLineQuantity = 999

// Cart holds the lines of one visitor in insertion order. Every line has a quantity between 1
// and MaxLineQuantity.
type Cart struct {
	lines []CartLine
}

// NewCart restores a cart from previously stored lines. Lines without an id or with a
// non-positive quantity or price are dropped, duplicates are merged and quantities are capped.
func NewCart(lines []CartLine) *Cart {
	cart := &Cart{
		lines: []CartLine{},
	}
	for _, l := range lines {
		if l.ProductUID == "" || l.Quantity < 1 || l.PriceInCents < 0 {
			continue
		}
		idx := cart.indexOf(l.ProductUID)
		if idx >= 0 {
			cart.lines[idx].Quantity = addQuantity(cart.lines[idx].Quantity, l.Quantity)
			continue
		}
		l.Quantity = min(l.Quantity, MaxLineQuantity)
		cart.lines = append(cart.lines, l)
	}
	return cart
}

// addQuantity never exceeds MaxLineQuantity; both operands are positive
func addQuantity(existing int, qty int) int {
	if qty >= MaxLineQuantity-existing {
		return MaxLineQuantity
	}
	return existing + qty
}

func (c *Cart) indexOf(productUID string) int {
	for i, l := range c.lines {
		if l.ProductUID == productUID {
			return i
		}
	}
	return -1
}

// Add puts qty items of the product in the cart. A quantity below 1 counts as 1, a line
// never grows beyond MaxLineQuantity.
func (c *Cart) Add(p Product, qty int) {
	if qty < 1 {
		qty = 1
	}

	idx := c.indexOf(p.UID)
	if idx >= 0 {
		c.lines[idx].Quantity = addQuantity(c.lines[idx].Quantity, qty)
		return
	}

	c.lines = append(c.lines, CartLine{
		ProductUID:   p.UID,
		Name:         p.Name,
		PriceInCents: p.PriceInCents,
		Image:        p.Image,
		Quantity:     min(qty, MaxLineQuantity),
	})
}

// Increment, Decrement and Remove report whether the cart changed. Unknown ids change nothing.
func (c *Cart) Increment(productUID string) bool {
	idx := c.indexOf(productUID)
	if idx < 0 || c.lines[idx].Quantity >= MaxLineQuantity {
		return false
	}
	c.lines[idx].Quantity++
	return true
}

// Decrement lowers the quantity by one; a line with quantity 1 is removed
func (c *Cart) Decrement(productUID string) bool {
	idx := c.indexOf(productUID)
	if idx < 0 {
		return false
	}
	if c.lines[idx].Quantity <= 1 {
		return c.Remove(productUID)
	}
	c.lines[idx].Quantity--
	return true
}

func (c *Cart) Remove(productUID string) bool {
	idx := c.indexOf(productUID)
	if idx < 0 {
		return false
	}
	c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
	return true
}

func (c *Cart) Clear() {
	c.lines = []CartLine{}
}

func (c *Cart) Lines() []CartLine {
	return append([]CartLine{}, c.lines...)
}

func (c *Cart) Count() int {
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

func (c *Cart) Total() int64 {
	total := int64(0)
	for _, l := range c.lines {
		lineTotal := l.TotalInCents()
		if lineTotal > math.MaxInt64-total {
			return math.MaxInt64
		}
		total += lineTotal
	}
	return total
}
