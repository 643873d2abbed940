package models

// Cart maps product IDs to quantities. Entries keep the insertion order of
// their first add, so a view renders stable across the session's lifetime.
// The cart lives only in the session record, never in the database.
type Cart struct {
	Order []uint       `json:"order"`
	Items map[uint]int `json:"items"`
}

func NewCart() Cart {
	return Cart{Items: make(map[uint]int)}
}

// AddOne increments the quantity for pid, starting absent entries at 0.
func (c *Cart) AddOne(pid uint) {
	if c.Items == nil {
		c.Items = make(map[uint]int)
	}
	if _, ok := c.Items[pid]; !ok {
		c.Order = append(c.Order, pid)
	}
	c.Items[pid]++
}

// RemoveOne decrements the quantity for pid. A quantity of 1 drops the entry
// entirely; an absent entry is a no-op. Quantities never reach 0 in place.
func (c *Cart) RemoveOne(pid uint) {
	qty, ok := c.Items[pid]
	if !ok {
		return
	}
	if qty > 1 {
		c.Items[pid] = qty - 1
		return
	}
	delete(c.Items, pid)
	for i, id := range c.Order {
		if id == pid {
			c.Order = append(c.Order[:i], c.Order[i+1:]...)
			break
		}
	}
}

func (c *Cart) Clear() {
	c.Order = nil
	c.Items = make(map[uint]int)
}

func (c *Cart) Quantity(pid uint) int {
	return c.Items[pid]
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
