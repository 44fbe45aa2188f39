package models

import "github.com/shopspring/decimal"

// PurchaseDateLayout is the timestamp format stamped on every checkout and
// written to the accounts file.
const PurchaseDateLayout = "2006-01-02 15:04:05"

// Profile holds the identity fields shared by every kind of user.
type Profile struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Address   string
}

// Customer is a shopper: one cart, plus the record of every checkout.
type Customer struct {
	Profile
	Cart    *Cart
	History []HistoryRecord
}

func NewCustomer(p Profile) *Customer {
	return &Customer{Profile: p, Cart: NewCart()}
}

// Admin manages the catalog. Built from configuration, never persisted.
type Admin struct {
	Profile
}

// HistoryItem is one line of a completed checkout. Name and unit price are
// copied from the product at checkout time so later catalog edits cannot
// rewrite what was bought.
type HistoryItem struct {
	ProductID int
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// HistoryRecord is an immutable snapshot of one checkout.
type HistoryRecord struct {
	Date  string
	Items []HistoryItem
	Total decimal.Decimal
}
