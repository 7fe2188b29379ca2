package models

// OrderUser is the user object embedded in each order by the remote API
type OrderUser struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Order is read-only in this surface; totals are computed server-side
type Order struct {
	ID     string     `json:"_id"`
	User   *OrderUser `json:"user,omitempty"`
	Status string     `json:"status"`
	Total  float64    `json:"total"`
}

// OrdersForUser filters the full order set down to one user's orders.
// Orders with no embedded user are skipped rather than matched.
func OrdersForUser(orders []Order, userID string) []Order {
	var out []Order
	for _, o := range orders {
		if o.User != nil && o.User.ID == userID {
			out = append(out, o)
		}
	}
	return out
}
