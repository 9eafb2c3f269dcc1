package store

import (
	"errors"
	"fmt"

	"storefront/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found in store")
)

// OrderLine is one (product, requested quantity) pair of an order.
type OrderLine struct {
	Product  *domain.Product
	Quantity int
}

// Store aggregates products and executes multi-line orders against them.
type Store interface {
	AddProduct(p *domain.Product)
	RemoveProduct(p *domain.Product)
	TotalQuantity() int
	ActiveProducts() []*domain.Product
	Order(lines []OrderLine) (float64, error)
}

type store struct {
	products []*domain.Product
}

// New creates a Store over the given products. The slice order is the
// listing order; the store takes ownership of membership, not of the
// product values themselves.
func New(products []*domain.Product) Store {
	s := &store{}
	s.products = append(s.products, products...)
	return s
}

// AddProduct appends a product to the store's collection.
func (s *store) AddProduct(p *domain.Product) {
	s.products = append(s.products, p)
}

// RemoveProduct removes a product from the collection. Removing a product
// the store does not hold is a no-op.
func (s *store) RemoveProduct(p *domain.Product) {
	for i, owned := range s.products {
		if owned == p {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return
		}
	}
}

func (s *store) contains(p *domain.Product) bool {
	for _, owned := range s.products {
		if owned == p {
			return true
		}
	}
	return false
}

// TotalQuantity sums the on-hand quantity of every product in the store,
// inactive products included.
func (s *store) TotalQuantity() int {
	total := 0
	for _, p := range s.products {
		total += p.Quantity()
	}
	return total
}

// ActiveProducts returns the store's active products in insertion order.
func (s *store) ActiveProducts() []*domain.Product {
	active := []*domain.Product{}
	for _, p := range s.products {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// Order buys every line in the given order and returns the summed payable
// total. Each line is validated against the product's state at the time
// it is processed. Processing is not transactional: when a line fails,
// quantity changes from earlier lines remain applied.
func (s *store) Order(lines []OrderLine) (float64, error) {
	total := 0.0
	for _, line := range lines {
		if !s.contains(line.Product) {
			return total, fmt.Errorf("product %q: %w", line.Product.Name(), ErrProductNotFound)
		}

		payable, err := line.Product.Buy(line.Quantity)
		if err != nil {
			return total, fmt.Errorf("failed to buy %q: %w", line.Product.Name(), err)
		}
		total += payable
	}
	return total, nil
}
