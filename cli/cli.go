package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Waleedkhan5609/Online-Shopping-cart/auth"
	cartControllers "github.com/Waleedkhan5609/Online-Shopping-cart/controllers/cart"
	orderControllers "github.com/Waleedkhan5609/Online-Shopping-cart/controllers/order"
	productControllers "github.com/Waleedkhan5609/Online-Shopping-cart/controllers/product"
	userControllers "github.com/Waleedkhan5609/Online-Shopping-cart/controllers/user"
	"github.com/Waleedkhan5609/Online-Shopping-cart/models"
	"github.com/Waleedkhan5609/Online-Shopping-cart/store"
)

// CLI drives the interactive storefront menus over a readline instance.
// Store output goes to stdout; operational logging goes to the zap logger.
type CLI struct {
	store  *store.Store
	auth   *auth.Authenticator
	rl     *readline.Instance
	logger *zap.Logger
}

// New builds a CLI bound to the store and the admin authenticator.
func New(s *store.Store, a *auth.Authenticator, logger *zap.Logger) (*CLI, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return &CLI{store: s, auth: a, rl: rl, logger: logger}, nil
}

func (c *CLI) Close() error {
	return c.rl.Close()
}

// Run shows the main menu until the user exits. Ctrl-C and EOF are treated
// as a normal exit, matching how the prompt loop in every submenu behaves.
func (c *CLI) Run() error {
	for {
		fmt.Println("\n\t\t\t\t----WELCOME----")
		fmt.Println("\t----Online Electronic Devices Store----")
		fmt.Println()
		fmt.Println("1. Admin Login")
		fmt.Println("2. Customer Login")
		fmt.Println("3. Exit")

		choice, err := c.prompt("Enter your choice: ")
		if err != nil {
			return exitErr(err)
		}
		switch choice {
		case "1":
			if err := c.adminPanel(); err != nil {
				return exitErr(err)
			}
		case "2":
			if err := c.customerPanel(); err != nil {
				return exitErr(err)
			}
		case "3":
			return nil
		default:
			fmt.Println("Invalid choice. Please try again.")
		}
	}
}

// exitErr maps end-of-input conditions to a clean exit.
func exitErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
		return nil
	}
	return err
}

// -------- Admin panel --------

func (c *CLI) adminPanel() error {
	fmt.Println("\n\t\t----\"Admin Control Panel\"----")
	username, err := c.prompt("Enter username: ")
	if err != nil {
		return err
	}
	password, err := c.prompt("Enter password: ")
	if err != nil {
		return err
	}
	admin, ok := c.auth.Login(username, password)
	if !ok {
		fmt.Println("Invalid credentials. Access denied.")
		return nil
	}
	fmt.Println("Login successful as Admin!")
	c.logger.Info("admin logged in", zap.String("username", admin.Username))

	for {
		fmt.Println("\n\t\t\t----Admin Menu----")
		fmt.Println("1. View Products")
		fmt.Println("2. Add Product")
		fmt.Println("3. Remove Product")
		fmt.Println("4. Logout")

		choice, err := c.prompt("Enter your choice: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			fmt.Println("\n\t\t\t\t-----\"Product Catalog\"-----")
			renderCatalog(productControllers.List(c.store))
		case "2":
			if err := c.addProduct(); err != nil {
				return err
			}
		case "3":
			if err := c.removeProduct(); err != nil {
				return err
			}
		case "4":
			fmt.Println("Logging out...")
			return nil
		default:
			fmt.Println("Invalid choice. Please try again.")
		}
	}
}

func (c *CLI) addProduct() error {
	fmt.Println("\n\t----\"Add Product In Store\"----")
	var id int
	for {
		var err error
		id, err = c.promptInt("Enter product ID: ")
		if err != nil {
			return err
		}
		if _, lookupErr := c.store.Product(id); lookupErr == nil {
			fmt.Printf("Already a product exists with id: %d\n", id)
			continue
		}
		break
	}
	name, err := c.prompt("Enter product name: ")
	if err != nil {
		return err
	}
	priceRaw, err := c.prompt("Enter product price: ")
	if err != nil {
		return err
	}
	price, convErr := decimal.NewFromString(priceRaw)
	if convErr != nil {
		fmt.Println("Invalid price. Please enter a numeric value.")
		return nil
	}
	description, err := c.prompt("Enter product description: ")
	if err != nil {
		return err
	}

	product, addErr := productControllers.Add(c.store, productControllers.AddProductRequest{
		ID:          id,
		Name:        name,
		Price:       price,
		Description: description,
	})
	if addErr != nil {
		fmt.Println("Could not add product:", addErr)
		return nil
	}
	fmt.Printf("Added product: %s\n", product.Name)
	c.logger.Info("product added", zap.Int("product_id", product.ID), zap.String("name", product.Name))
	return nil
}

func (c *CLI) removeProduct() error {
	fmt.Println("\n\t----\"Remove Product From Store\"----")
	var id int
	for {
		var err error
		id, err = c.promptInt("Enter product ID to remove: ")
		if err != nil {
			return err
		}
		if _, lookupErr := c.store.Product(id); lookupErr != nil {
			fmt.Printf("Product does not exist with id: %d\n", id)
			continue
		}
		break
	}
	if err := productControllers.Remove(c.store, id); err != nil {
		fmt.Println("Could not remove product:", err)
		return nil
	}
	fmt.Printf("Removed product with ID: %d\n", id)
	c.logger.Info("product removed", zap.Int("product_id", id))
	return nil
}

// -------- Customer panel --------

func (c *CLI) customerPanel() error {
	for {
		fmt.Println("\n\t\t----\"Customer Control Panel\"----")
		fmt.Println("1. Sign up")
		fmt.Println("2. Log in")
		fmt.Println("3. Main Menu")

		choice, err := c.prompt("Enter choice: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			if err := c.signup(); err != nil {
				return err
			}
		case "2":
			customer, err := c.login()
			if err != nil {
				return err
			}
			if customer != nil {
				if err := c.customerMenu(customer); err != nil {
					return err
				}
			}
		case "3":
			return nil
		default:
			fmt.Println("Invalid choice.")
		}
	}
}

func (c *CLI) signup() error {
	fmt.Println("\n\t\t\t----\"Sign up\"----")
	var req userControllers.SignupRequest
	prompts := []struct {
		label string
		dest  *string
	}{
		{"Enter username: ", &req.Username},
		{"Enter password: ", &req.Password},
		{"Enter first name: ", &req.FirstName},
		{"Enter last name: ", &req.LastName},
		{"Enter address: ", &req.Address},
	}
	for _, p := range prompts {
		value, err := c.prompt(p.label)
		if err != nil {
			return err
		}
		*p.dest = value
	}

	customer, err := userControllers.CreateAccount(c.store, req)
	switch {
	case err == nil:
		fmt.Println("Account created successfully.")
		c.logger.Info("account created", zap.String("username", customer.Username))
	case errors.Is(err, store.ErrDuplicateUsername):
		fmt.Println("Account already exists.")
	case errors.Is(err, userControllers.ErrEmptyField),
		errors.Is(err, userControllers.ErrReservedCharacter):
		fmt.Printf("Invalid input: %v.\n", err)
	default:
		fmt.Println("Could not create account:", err)
	}
	return nil
}

func (c *CLI) login() (*models.Customer, error) {
	fmt.Println("\n\t\t\t----\"Log in\"----")
	username, err := c.prompt("Enter username: ")
	if err != nil {
		return nil, err
	}
	password, err := c.prompt("Enter password: ")
	if err != nil {
		return nil, err
	}

	customer, loginErr := userControllers.Login(c.store, username, password)
	switch {
	case loginErr == nil:
		fmt.Printf("Login successful as %s.\n", customer.Username)
		c.logger.Info("customer logged in", zap.String("username", customer.Username))
		return customer, nil
	case errors.Is(loginErr, store.ErrNotFound):
		fmt.Println("Account does not exist.")
	case errors.Is(loginErr, userControllers.ErrWrongPassword):
		fmt.Println("Incorrect password.")
	default:
		fmt.Println("Error during login:", loginErr)
	}
	return nil, nil
}

func (c *CLI) customerMenu(customer *models.Customer) error {
	for {
		fmt.Println("\n\t\t----\"Customer Menu\"----")
		fmt.Println("1. View Products")
		fmt.Println("2. Add to Cart")
		fmt.Println("3. Remove from Cart")
		fmt.Println("4. View Cart")
		fmt.Println("5. Checkout")
		fmt.Println("6. View History")
		fmt.Println("7. Logout")

		choice, err := c.prompt("Enter choice: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			fmt.Println("\n\t\t\t\t-----\"Product Catalog\"-----")
			renderCatalog(productControllers.List(c.store))
		case "2":
			if err := c.addToCart(customer); err != nil {
				return err
			}
		case "3":
			if err := c.removeFromCart(customer); err != nil {
				return err
			}
		case "4":
			fmt.Println("\n\t\t\t----\"Your Cart\"----")
			renderCart(customer.Cart)
		case "5":
			fmt.Println("\n\t\t\t----\"Checkout\"----")
			c.checkout(customer)
		case "6":
			fmt.Println("\n\t\t----\"Your Shopping History\"----")
			renderHistory(orderControllers.History(customer))
		case "7":
			fmt.Println("Logging out...")
			return nil
		default:
			fmt.Println("Invalid choice.")
		}
	}
}

func (c *CLI) addToCart(customer *models.Customer) error {
	fmt.Println("\n\t\t\t----\"Add Product To Cart\"----")
	renderCatalog(productControllers.List(c.store))
	productID, err := c.promptInt("Enter product ID to add to cart: ")
	if err != nil {
		return err
	}
	quantity, err := c.promptInt("Enter quantity: ")
	if err != nil {
		return err
	}

	product, addErr := cartControllers.AddToCart(c.store, customer, productID, quantity)
	switch {
	case addErr == nil:
		fmt.Printf("%d %s added to your cart.\n", quantity, product.Name)
	case errors.Is(addErr, store.ErrNotFound):
		fmt.Println("Product not found.")
	case errors.Is(addErr, models.ErrInvalidQuantity):
		fmt.Println("Quantity must be a positive number.")
	default:
		fmt.Println("Could not add to cart:", addErr)
	}
	return nil
}

func (c *CLI) removeFromCart(customer *models.Customer) error {
	fmt.Println("\n\t\t\t----\"Remove Product From Cart\"----")
	renderCatalog(productControllers.List(c.store))
	productID, err := c.promptInt("Enter product ID to remove from cart: ")
	if err != nil {
		return err
	}
	quantity, err := c.promptInt("Enter quantity: ")
	if err != nil {
		return err
	}

	product, removeErr := cartControllers.RemoveFromCart(c.store, customer, productID, quantity)
	switch {
	case removeErr == nil:
		fmt.Printf("%d %s removed from cart.\n", quantity, product.Name)
	case errors.Is(removeErr, store.ErrNotFound):
		fmt.Println("Product not found.")
	case errors.Is(removeErr, models.ErrNotInCart):
		fmt.Println("This Product is not in your cart!")
	case errors.Is(removeErr, models.ErrExceedsCart):
		if item, ok := customer.Cart.Get(productID); ok {
			fmt.Printf("Cannot remove %d %s as only %d is available in the cart.\n",
				quantity, product.Name, item.Quantity)
		}
	case errors.Is(removeErr, models.ErrInvalidQuantity):
		fmt.Printf("Can't remove \"%d\" %s from your cart!\n", quantity, product.Name)
	default:
		fmt.Println("Could not remove from cart:", removeErr)
	}
	return nil
}

func (c *CLI) checkout(customer *models.Customer) {
	record, err := orderControllers.Checkout(c.store, customer)
	if err != nil {
		if errors.Is(err, orderControllers.ErrEmptyCart) {
			fmt.Println("Your cart is empty! Can't checkout.")
			return
		}
		// Checkout happened but the save failed; tell the user both.
		c.logger.Warn("checkout saved in memory only", zap.Error(err))
		fmt.Println("Warning:", err)
	}
	if len(record.Items) > 0 {
		fmt.Println("Checked out successfully.")
		fmt.Printf("Your Total Bill: Rs.%s\n", record.Total)
		c.logger.Info("checkout complete",
			zap.String("username", customer.Username),
			zap.String("total", record.Total.String()),
			zap.Int("items", len(record.Items)))
	}
}

// -------- Prompt helpers --------

// prompt reads one trimmed line under the given prompt label.
func (c *CLI) prompt(label string) (string, error) {
	c.rl.SetPrompt(label)
	line, err := c.rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptInt re-prompts until it reads a numeric value.
func (c *CLI) promptInt(label string) (int, error) {
	for {
		raw, err := c.prompt(label)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(raw)
		if convErr != nil {
			fmt.Println("Invalid input. Please enter a numeric value.")
			continue
		}
		return n, nil
	}
}
