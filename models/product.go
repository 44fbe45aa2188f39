package models

import "github.com/shopspring/decimal"

// Product is a single catalog entry. Products are treated as immutable
// after creation; the admin replaces them wholesale by ID.
type Product struct {
	ID          int
	Name        string
	Price       decimal.Decimal
	Description string
}
