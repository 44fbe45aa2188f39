package cartControllers

import (
	"github.com/Waleedkhan5609/Online-Shopping-cart/models"
	"github.com/Waleedkhan5609/Online-Shopping-cart/store"
)

// AddToCart puts quantity units of a catalog product into the customer's
// cart and persists the accounts file. The product is returned so the
// caller can report what was added.
func AddToCart(s *store.Store, customer *models.Customer, productID, quantity int) (*models.Product, error) {
	product, err := s.Product(productID)
	if err != nil {
		return nil, err
	}
	if err := customer.Cart.Add(product, quantity); err != nil {
		return nil, err
	}
	return product, s.SaveAccounts()
}

// RemoveFromCart takes quantity units of a product out of the customer's
// cart and persists the accounts file. The cart is left unchanged on any
// failure.
func RemoveFromCart(s *store.Store, customer *models.Customer, productID, quantity int) (*models.Product, error) {
	product, err := s.Product(productID)
	if err != nil {
		return nil, err
	}
	if err := customer.Cart.Remove(product, quantity); err != nil {
		return product, err
	}
	return product, s.SaveAccounts()
}
