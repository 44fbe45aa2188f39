package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PRODUCT_FILE", "ACCOUNT_FILE",
		"ADMIN_USERNAME", "ADMIN_PASSWORD",
		"ADMIN_FIRST_NAME", "ADMIN_LAST_NAME", "ADMIN_ADDRESS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "product_data.txt", cfg.ProductFile)
	assert.Equal(t, "User_data.txt", cfg.AccountFile)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "admin123", cfg.AdminPassword)

	admin := cfg.Admin()
	assert.Equal(t, "Admin", admin.FirstName)
	assert.Equal(t, "User", admin.LastName)
	assert.Equal(t, "123 Admin St", admin.Address)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PRODUCT_FILE", "/tmp/catalog.txt")
	t.Setenv("ADMIN_USERNAME", "boss")

	cfg := Load()

	assert.Equal(t, "/tmp/catalog.txt", cfg.ProductFile)
	assert.Equal(t, "boss", cfg.AdminUsername)
	assert.Equal(t, "boss", cfg.Admin().Username)
}
