package store

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Waleedkhan5609/Online-Shopping-cart/models"
)

// Store owns the product catalog and every customer account and keeps both
// synchronized with their backing files. Each mutating operation rewrites
// the affected file in full; there is no locking and the last writer wins.
type Store struct {
	productFile string
	accountFile string
	logger      *zap.Logger

	products []*models.Product
	accounts map[string]*models.Customer
}

func New(productFile, accountFile string, logger *zap.Logger) *Store {
	return &Store{
		productFile: productFile,
		accountFile: accountFile,
		logger:      logger,
		accounts:    make(map[string]*models.Customer),
	}
}

// Load reads both backing files. A missing file is not an error: the store
// simply starts empty. Malformed records are skipped so one bad line cannot
// take the rest of the data down with it.
func (s *Store) Load() {
	s.loadProducts()
	s.loadAccounts()
}

// -------- Catalog --------

// Products returns the catalog in insertion order.
func (s *Store) Products() []*models.Product {
	out := make([]*models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Product looks up a catalog entry by ID.
func (s *Store) Product(id int) (*models.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

// AddProduct appends a catalog entry and rewrites the products file.
func (s *Store) AddProduct(p *models.Product) error {
	if _, err := s.Product(p.ID); err == nil {
		return ErrDuplicateProduct
	}
	s.products = append(s.products, p)
	return s.SaveProducts()
}

// RemoveProduct drops every catalog entry with the given ID and rewrites
// the products file.
func (s *Store) RemoveProduct(id int) error {
	kept := make([]*models.Product, 0, len(s.products))
	found := false
	for _, p := range s.products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return ErrNotFound
	}
	s.products = kept
	return s.SaveProducts()
}

// -------- Accounts --------

// Account looks up a customer by username.
func (s *Store) Account(username string) (*models.Customer, error) {
	customer, ok := s.accounts[username]
	if !ok {
		return nil, ErrNotFound
	}
	return customer, nil
}

// AddAccount stores a new customer and rewrites the accounts file.
func (s *Store) AddAccount(c *models.Customer) error {
	if _, ok := s.accounts[c.Username]; ok {
		return ErrDuplicateUsername
	}
	s.accounts[c.Username] = c
	return s.SaveAccounts()
}

// -------- File I/O --------

// SaveProducts rewrites the products file from the in-memory catalog.
func (s *Store) SaveProducts() error {
	data, err := encodeProducts(s.products)
	if err != nil {
		return fmt.Errorf("encode products: %w", err)
	}
	if err := os.WriteFile(s.productFile, data, 0644); err != nil {
		s.logger.Error("failed to write product file",
			zap.String("path", s.productFile), zap.Error(err))
		return fmt.Errorf("write product file: %w", err)
	}
	return nil
}

// SaveAccounts rewrites the accounts file, one line per customer, ordered
// by username so repeated saves of the same state are byte-identical.
func (s *Store) SaveAccounts() error {
	usernames := make([]string, 0, len(s.accounts))
	for username := range s.accounts {
		usernames = append(usernames, username)
	}
	sort.Strings(usernames)

	var b strings.Builder
	for _, username := range usernames {
		b.WriteString(s.encodeAccount(s.accounts[username]))
		b.WriteByte('\n')
	}
	if err := os.WriteFile(s.accountFile, []byte(b.String()), 0644); err != nil {
		s.logger.Error("failed to write account file",
			zap.String("path", s.accountFile), zap.Error(err))
		return fmt.Errorf("write account file: %w", err)
	}
	return nil
}

func (s *Store) loadProducts() {
	data, err := os.ReadFile(s.productFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("no product file found, starting with an empty catalog",
				zap.String("path", s.productFile))
			return
		}
		s.logger.Error("failed to read product file",
			zap.String("path", s.productFile), zap.Error(err))
		return
	}

	rows, err := decodeProductRows(data)
	if err != nil {
		s.logger.Error("failed to parse product file",
			zap.String("path", s.productFile), zap.Error(err))
		return
	}

	for i, row := range rows {
		product, err := decodeProductRow(row)
		if err != nil {
			s.logger.Warn("skipping malformed product row",
				zap.Int("row", i), zap.Error(err))
			continue
		}
		if _, err := s.Product(product.ID); err == nil {
			s.logger.Warn("skipping product row with duplicate ID",
				zap.Int("row", i), zap.Int("product_id", product.ID))
			continue
		}
		s.products = append(s.products, product)
	}
	s.logger.Info("loaded products", zap.Int("count", len(s.products)))
}

func (s *Store) loadAccounts() {
	f, err := os.Open(s.accountFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("no account file found, starting with no accounts",
				zap.String("path", s.accountFile))
			return
		}
		s.logger.Error("failed to read account file",
			zap.String("path", s.accountFile), zap.Error(err))
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		customer, err := s.decodeAccount(line)
		if err != nil {
			s.logger.Warn("skipping malformed account line",
				zap.Int("line", lineNo), zap.Error(err))
			continue
		}
		if _, ok := s.accounts[customer.Username]; ok {
			s.logger.Warn("duplicate username in account file, keeping the later line",
				zap.String("username", customer.Username), zap.Int("line", lineNo))
		}
		s.accounts[customer.Username] = customer
	}
	if err := scanner.Err(); err != nil {
		s.logger.Error("failed while reading account file", zap.Error(err))
	}
	s.logger.Info("loaded accounts", zap.Int("count", len(s.accounts)))
}
