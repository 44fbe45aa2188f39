package userControllers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Waleedkhan5609/Online-Shopping-cart/models"
	"github.com/Waleedkhan5609/Online-Shopping-cart/store"
)

var (
	ErrEmptyField        = errors.New("required field is empty")
	ErrReservedCharacter = errors.New("field contains a reserved character")
	ErrWrongPassword     = errors.New("incorrect password")
)

// reservedCharacters are the account-file delimiters. The wire grammar has
// no quoting, so none of them may appear inside a signup field.
const reservedCharacters = ";,:|\n\r"

// -------- Request Structs --------

type SignupRequest struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Address   string
}

// -------- Core Logic --------

// CreateAccount registers a new customer and persists the accounts file.
// Every field is required after trimming; nothing is stored on failure.
func CreateAccount(s *store.Store, req SignupRequest) (*models.Customer, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Password = strings.TrimSpace(req.Password)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Address = strings.TrimSpace(req.Address)

	fields := []struct {
		name  string
		value string
	}{
		{"username", req.Username},
		{"password", req.Password},
		{"first name", req.FirstName},
		{"last name", req.LastName},
		{"address", req.Address},
	}
	for _, field := range fields {
		if field.value == "" {
			return nil, fmt.Errorf("%w: %s", ErrEmptyField, field.name)
		}
		if strings.ContainsAny(field.value, reservedCharacters) {
			return nil, fmt.Errorf("%w: %s", ErrReservedCharacter, field.name)
		}
	}

	customer := models.NewCustomer(models.Profile{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
	})
	if err := s.AddAccount(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Login authenticates a customer by exact username and password match.
// Unknown usernames surface store.ErrNotFound so the caller can tell the
// two failure modes apart.
func Login(s *store.Store, username, password string) (*models.Customer, error) {
	customer, err := s.Account(strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if customer.Password != strings.TrimSpace(password) {
		return nil, ErrWrongPassword
	}
	return customer, nil
}
