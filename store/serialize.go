package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Waleedkhan5609/Online-Shopping-cart/models"
)

// Wire formats:
//
//	products file: JSON array of [id, name, price, description] rows
//	accounts file: username;password;first;last;address;CART;HISTORY...
//	  CART    = id:qty,id:qty,...          (empty string if the cart is empty)
//	  HISTORY = zero or more date|items|total segments joined by ';',
//	            items reusing the id:qty grammar
//
// The account grammar leaves no room for quoting, so none of the delimiter
// characters may appear inside field values.

// removedProductName labels history items whose product has since been
// deleted from the catalog.
const removedProductName = "(removed)"

// -------- Products (JSON rows) --------

func encodeProducts(products []*models.Product) ([]byte, error) {
	rows := make([][]any, 0, len(products))
	for _, p := range products {
		// Price goes out as a raw JSON number so "100" and "99.99"
		// round-trip exactly as typed.
		rows = append(rows, []any{p.ID, p.Name, json.RawMessage(p.Price.String()), p.Description})
	}
	return json.Marshal(rows)
}

func decodeProductRows(data []byte) ([][]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var rows [][]any
	if err := dec.Decode(&rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func decodeProductRow(row []any) (*models.Product, error) {
	if len(row) != 4 {
		return nil, fmt.Errorf("expected 4 fields, got %d", len(row))
	}
	idNum, ok := row[0].(json.Number)
	if !ok {
		return nil, fmt.Errorf("product ID %v is not a number", row[0])
	}
	id, err := idNum.Int64()
	if err != nil {
		return nil, fmt.Errorf("product ID %q is not an integer", idNum)
	}
	name, ok := row[1].(string)
	if !ok {
		return nil, fmt.Errorf("product name %v is not a string", row[1])
	}
	priceNum, ok := row[2].(json.Number)
	if !ok {
		return nil, fmt.Errorf("product price %v is not a number", row[2])
	}
	price, err := decimal.NewFromString(priceNum.String())
	if err != nil {
		return nil, fmt.Errorf("product price %q: %w", priceNum, err)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("product price %s is negative", price)
	}
	description, ok := row[3].(string)
	if !ok {
		return nil, fmt.Errorf("product description %v is not a string", row[3])
	}
	return &models.Product{
		ID:          int(id),
		Name:        name,
		Price:       price,
		Description: description,
	}, nil
}

// -------- Accounts (delimited lines) --------

func (s *Store) encodeAccount(c *models.Customer) string {
	fields := []string{
		c.Username,
		c.Password,
		c.FirstName,
		c.LastName,
		c.Address,
		encodeCart(c.Cart),
		encodeHistory(c.History),
	}
	return strings.Join(fields, ";")
}

func (s *Store) decodeAccount(line string) (*models.Customer, error) {
	parts := strings.Split(line, ";")
	if len(parts) < 6 {
		return nil, fmt.Errorf("expected at least 6 fields, got %d", len(parts))
	}
	cart, err := s.decodeCart(parts[5])
	if err != nil {
		return nil, fmt.Errorf("cart: %w", err)
	}
	customer := &models.Customer{
		Profile: models.Profile{
			Username:  parts[0],
			Password:  parts[1],
			FirstName: parts[2],
			LastName:  parts[3],
			Address:   parts[4],
		},
		Cart:    cart,
		History: s.decodeHistory(parts[6:]),
	}
	if customer.Username == "" {
		return nil, fmt.Errorf("empty username")
	}
	return customer, nil
}

func encodeCart(cart *models.Cart) string {
	pairs := make([]string, 0, cart.Len())
	for _, item := range cart.Items() {
		pairs = append(pairs, fmt.Sprintf("%d:%d", item.Product.ID, item.Quantity))
	}
	return strings.Join(pairs, ",")
}

// decodeCart rebuilds a cart, resolving product IDs against the loaded
// catalog. Items whose product no longer exists cannot be bought, so they
// are dropped with a warning.
func (s *Store) decodeCart(data string) (*models.Cart, error) {
	cart := models.NewCart()
	if data == "" {
		return cart, nil
	}
	for _, pair := range strings.Split(data, ",") {
		id, quantity, err := decodePair(pair)
		if err != nil {
			return nil, err
		}
		product, err := s.Product(id)
		if err != nil {
			s.logger.Warn("dropping cart item for product no longer in catalog",
				zap.Int("product_id", id))
			continue
		}
		if err := cart.Add(product, quantity); err != nil {
			s.logger.Warn("dropping cart item with invalid quantity",
				zap.Int("product_id", id), zap.Int("quantity", quantity))
		}
	}
	return cart, nil
}

func encodeHistory(history []models.HistoryRecord) string {
	segments := make([]string, 0, len(history))
	for _, record := range history {
		pairs := make([]string, 0, len(record.Items))
		for _, item := range record.Items {
			pairs = append(pairs, fmt.Sprintf("%d:%d", item.ProductID, item.Quantity))
		}
		segments = append(segments, fmt.Sprintf("%s|%s|%s",
			record.Date, strings.Join(pairs, ","), record.Total.String()))
	}
	return strings.Join(segments, ";")
}

// decodeHistory rebuilds checkout records. A malformed segment is skipped
// without discarding the rest. Items are resolved against the current
// catalog; the on-disk grammar only carries id:qty, so an item whose
// product was deleted keeps its ID and quantity under a placeholder name.
// The persisted record total stays authoritative either way.
func (s *Store) decodeHistory(segments []string) []models.HistoryRecord {
	var history []models.HistoryRecord
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		record, err := s.decodeHistoryRecord(segment)
		if err != nil {
			s.logger.Warn("skipping malformed history record", zap.Error(err))
			continue
		}
		history = append(history, record)
	}
	return history
}

func (s *Store) decodeHistoryRecord(segment string) (models.HistoryRecord, error) {
	fields := strings.Split(segment, "|")
	if len(fields) != 3 {
		return models.HistoryRecord{}, fmt.Errorf("expected date|items|total, got %q", segment)
	}
	total, err := decimal.NewFromString(fields[2])
	if err != nil {
		return models.HistoryRecord{}, fmt.Errorf("total %q: %w", fields[2], err)
	}
	record := models.HistoryRecord{Date: fields[0], Total: total}
	if fields[1] == "" {
		return record, nil
	}
	for _, pair := range strings.Split(fields[1], ",") {
		id, quantity, err := decodePair(pair)
		if err != nil {
			return models.HistoryRecord{}, err
		}
		item := models.HistoryItem{
			ProductID: id,
			Name:      removedProductName,
			UnitPrice: decimal.Zero,
			Quantity:  quantity,
		}
		if product, err := s.Product(id); err == nil {
			item.Name = product.Name
			item.UnitPrice = product.Price
		}
		record.Items = append(record.Items, item)
	}
	return record, nil
}

// decodePair parses one "id:qty" element.
func decodePair(pair string) (id, quantity int, err error) {
	idStr, qtyStr, found := strings.Cut(pair, ":")
	if !found {
		return 0, 0, fmt.Errorf("expected id:qty, got %q", pair)
	}
	if id, err = strconv.Atoi(idStr); err != nil {
		return 0, 0, fmt.Errorf("product ID %q is not an integer", idStr)
	}
	if quantity, err = strconv.Atoi(qtyStr); err != nil {
		return 0, 0, fmt.Errorf("quantity %q is not an integer", qtyStr)
	}
	return id, quantity, nil
}
