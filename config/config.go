package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/Waleedkhan5609/Online-Shopping-cart/models"
)

// Config carries everything the process reads from the environment.
type Config struct {
	ProductFile string
	AccountFile string

	AdminUsername  string
	AdminPassword  string
	AdminFirstName string
	AdminLastName  string
	AdminAddress   string
}

// Load reads .env when present and resolves every setting against the
// defaults the store ships with.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ProductFile:    getenv("PRODUCT_FILE", "product_data.txt"),
		AccountFile:    getenv("ACCOUNT_FILE", "User_data.txt"),
		AdminUsername:  getenv("ADMIN_USERNAME", "admin"),
		AdminPassword:  getenv("ADMIN_PASSWORD", "admin123"),
		AdminFirstName: getenv("ADMIN_FIRST_NAME", "Admin"),
		AdminLastName:  getenv("ADMIN_LAST_NAME", "User"),
		AdminAddress:   getenv("ADMIN_ADDRESS", "123 Admin St"),
	}
}

// Admin builds the admin profile handed to the authenticator.
func (c Config) Admin() models.Admin {
	return models.Admin{Profile: models.Profile{
		Username:  c.AdminUsername,
		Password:  c.AdminPassword,
		FirstName: c.AdminFirstName,
		LastName:  c.AdminLastName,
		Address:   c.AdminAddress,
	}}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
