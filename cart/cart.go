package cart

import "github.com/nicoxroll/digrazia-bros/models"

// Line is one product entry in a basket. Product fields are snapshotted
// at add time so later catalog edits do not rewrite open baskets.
type Line struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Cart is an insertion-ordered list of lines, at most one per product.
type Cart struct {
	lines []Line
}

// AddItem puts one unit of p in the cart. A second add of the same
// product bumps its quantity instead of creating a duplicate line.
func (c *Cart) AddItem(p models.Product) {
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
}

// SetQuantity replaces the quantity of the line for id. A quantity of
// zero or below removes the line; an unknown id is a no-op.
func (c *Cart) SetQuantity(id string, q int) {
	for i := range c.lines {
		if c.lines[i].ProductID != id {
			continue
		}
		if q <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity = q
		}
		return
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Count returns the total number of units across all lines.
func (c *Cart) Count() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// Subtotal returns the sum of price times quantity across all lines.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Lines returns a copy of the cart's lines in first-add order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Snapshot is a read-only view of a cart at a point in time, consumed
// by checkout rendering.
type Snapshot struct {
	Lines    []Line  `json:"lines"`
	Count    int     `json:"count"`
	Subtotal float64 `json:"subtotal"`
}

// Snapshot captures the current lines and derived totals.
func (c *Cart) Snapshot() Snapshot {
	return Snapshot{
		Lines:    c.Lines(),
		Count:    c.Count(),
		Subtotal: c.Subtotal(),
	}
}
