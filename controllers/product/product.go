package productControllers

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/Waleedkhan5609/Online-Shopping-cart/models"
	"github.com/Waleedkhan5609/Online-Shopping-cart/store"
)

var ErrNegativePrice = errors.New("price cannot be negative")

// -------- Request Structs --------

type AddProductRequest struct {
	ID          int
	Name        string
	Price       decimal.Decimal
	Description string
}

// -------- Core Logic --------

// Add appends a product to the catalog and persists the products file.
func Add(s *store.Store, req AddProductRequest) (*models.Product, error) {
	if req.Price.IsNegative() {
		return nil, ErrNegativePrice
	}
	product := &models.Product{
		ID:          req.ID,
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
	}
	if err := s.AddProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Remove deletes every product with the given ID from the catalog and
// persists the products file.
func Remove(s *store.Store, id int) error {
	return s.RemoveProduct(id)
}

// List returns the current catalog.
func List(s *store.Store) []*models.Product {
	return s.Products()
}
