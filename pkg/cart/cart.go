// Package cart keeps an observable in-memory shopping cart.
package cart

import "github.com/goliatone/go-dynform/pkg/observable"

// Product is a catalog entry that can be placed in the cart.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Item is a product line with its quantity.
type Item struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Total returns the line price.
func (i Item) Total() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// Store is safe for concurrent use. Every mutation publishes the new item
// list to subscribers.
type Store struct {
	items *observable.Subject[[]Item]
}

// NewStore returns an empty cart.
func NewStore() *Store {
	return &Store{
		items: observable.NewSubject([]Item{}, observable.WithClone(cloneItems)),
	}
}

// Items returns a copy of the current lines in insertion order.
func (s *Store) Items() []Item {
	return s.items.Value()
}

// Subscribe streams the item list, starting with the current one.
func (s *Store) Subscribe() (<-chan []Item, func()) {
	return s.items.Subscribe()
}

// Add puts one unit of product in the cart, incrementing the existing line
// when the product is already present.
func (s *Store) Add(product Product) {
	s.items.Update(func(items []Item) []Item {
		for i := range items {
			if items[i].Product.ID == product.ID {
				items[i].Quantity++
				return items
			}
		}
		return append(items, Item{Product: product, Quantity: 1})
	})
}

// Remove drops the line for productID, if any.
func (s *Store) Remove(productID int) {
	s.items.Update(func(items []Item) []Item {
		return removeProduct(items, productID)
	})
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero or
// less removes the line. Unknown products are ignored.
func (s *Store) UpdateQuantity(productID, quantity int) {
	s.items.Update(func(items []Item) []Item {
		if quantity <= 0 {
			return removeProduct(items, productID)
		}
		for i := range items {
			if items[i].Product.ID == productID {
				items[i].Quantity = quantity
				break
			}
		}
		return items
	})
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.items.Next([]Item{})
}

// Total returns the sum of all line prices.
func (s *Store) Total() float64 {
	var sum float64
	for _, item := range s.items.Value() {
		sum += item.Total()
	}
	return sum
}

// Count returns the number of units across all lines.
func (s *Store) Count() int {
	var count int
	for _, item := range s.items.Value() {
		count += item.Quantity
	}
	return count
}

func removeProduct(items []Item, productID int) []Item {
	out := items[:0]
	for _, item := range items {
		if item.Product.ID != productID {
			out = append(out, item)
		}
	}
	return out
}

func cloneItems(items []Item) []Item {
	return append([]Item{}, items...)
}
