package models

// CartItem is one line of the session-held shopping cart
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Subtotal returns the line total for this item
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Cart is the full set of lines in a session's cart
type Cart []CartItem

// Add merges a product into the cart, bumping quantity if already present
func (c Cart) Add(p Product) Cart {
	for i := range c {
		if c[i].ProductID == p.ID {
			c[i].Quantity++
			return c
		}
	}
	return append(c, CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  1,
	})
}

// SetQuantity updates a line's quantity; zero or less removes the line
func (c Cart) SetQuantity(productID string, quantity int) Cart {
	if quantity <= 0 {
		return c.Remove(productID)
	}
	for i := range c {
		if c[i].ProductID == productID {
			c[i].Quantity = quantity
		}
	}
	return c
}

// Remove drops a line from the cart
func (c Cart) Remove(productID string) Cart {
	out := c[:0]
	for _, item := range c {
		if item.ProductID != productID {
			out = append(out, item)
		}
	}
	return out
}

// Total sums all line subtotals
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c {
		total += item.Subtotal()
	}
	return total
}
