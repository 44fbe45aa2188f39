package orderControllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Waleedkhan5609/Online-Shopping-cart/models"
	"github.com/Waleedkhan5609/Online-Shopping-cart/store"
)

var ErrEmptyCart = errors.New("cart is empty")

// Checkout converts the customer's cart into an immutable history record,
// empties the cart and persists the accounts file. Each item copies the
// product's name and unit price so later catalog edits cannot change what
// was bought.
func Checkout(s *store.Store, customer *models.Customer) (models.HistoryRecord, error) {
	if customer.Cart.IsEmpty() {
		return models.HistoryRecord{}, ErrEmptyCart
	}

	items := customer.Cart.Items()
	snapshot := make([]models.HistoryItem, 0, len(items))
	total := decimal.Zero
	for _, item := range items {
		snapshot = append(snapshot, models.HistoryItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			UnitPrice: item.Product.Price,
			Quantity:  item.Quantity,
		})
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	record := models.HistoryRecord{
		Date:  time.Now().Format(models.PurchaseDateLayout),
		Items: snapshot,
		Total: total,
	}
	customer.History = append(customer.History, record)
	customer.Cart.Clear()

	if err := s.SaveAccounts(); err != nil {
		// The checkout itself happened; the caller gets the record along
		// with the persistence failure.
		return record, fmt.Errorf("checkout complete but not saved: %w", err)
	}
	return record, nil
}

// History returns the customer's checkout records, oldest first.
func History(customer *models.Customer) []models.HistoryRecord {
	return customer.History
}
