package cart

// Catalog returns the demo product list.
func Catalog() []Product {
	return []Product{
		{ID: 1, Name: "Laptop", Price: 999.99, Description: "High-performance laptop for professionals"},
		{ID: 2, Name: "Smartphone", Price: 699.99, Description: "Latest smartphone with advanced features"},
		{ID: 3, Name: "Headphones", Price: 199.99, Description: "Noise-cancelling wireless headphones"},
		{ID: 4, Name: "Tablet", Price: 449.99, Description: "Portable tablet for work and play"},
		{ID: 5, Name: "Smart Watch", Price: 299.99, Description: "Fitness tracking smart watch"},
		{ID: 6, Name: "Camera", Price: 899.99, Description: "Mirrorless camera for enthusiasts"},
	}
}

// Find returns the catalog product with id.
func Find(id int) (Product, bool) {
	for _, product := range Catalog() {
		if product.ID == id {
			return product, true
		}
	}
	return Product{}, false
}
