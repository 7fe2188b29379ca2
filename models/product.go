package models

// Category defines the menu buckets a product can belong to
type Category string

const (
	CategoryVeg      Category = "Veg"
	CategoryNonVeg   Category = "Non-Veg"
	CategoryBeverage Category = "Beverage"
)

// Categories returns every valid category, in menu order (used by select boxes)
func Categories() []Category {
	return []Category{CategoryVeg, CategoryNonVeg, CategoryBeverage}
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryVeg, CategoryNonVeg, CategoryBeverage:
		return true
	}
	return false
}

// Product mirrors the JSON shape served by the remote catalog API
type Product struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
}

// FindProduct returns the product with the given id from a fetched list
func FindProduct(products []Product, id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
