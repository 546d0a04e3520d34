package cart

// Line is one menu item in a cart. Name and Price are captured when the item
// is first added. Stock is the ceiling Quantity may never pass; it is
// refreshed from the catalog on every add, and ChangeQuantity checks against
// the last-refreshed value.
type Line struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Price      int    `json:"price"`
	Stock      int    `json:"stock"`
	Quantity   int    `json:"quantity"`
}

// LineTotal is price times quantity.
func (l Line) LineTotal() int {
	return l.Price * l.Quantity
}

// Cart is one cashier's in-progress order. Lines keep the order items were
// first added in.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Subtotal sums every line total.
func (c *Cart) Subtotal() int {
	total := 0
	for _, line := range c.Lines {
		total += line.LineTotal()
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) find(menuItemID string) *Line {
	for i := range c.Lines {
		if c.Lines[i].MenuItemID == menuItemID {
			return &c.Lines[i]
		}
	}
	return nil
}

func (c *Cart) remove(menuItemID string) {
	for i := range c.Lines {
		if c.Lines[i].MenuItemID == menuItemID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// clone returns a deep copy safe to hand to callers.
func (c *Cart) clone() *Cart {
	out := &Cart{Lines: make([]Line, len(c.Lines))}
	copy(out.Lines, c.Lines)
	return out
}
