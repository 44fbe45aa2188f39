package cli

import (
	"fmt"
	"strings"

	"github.com/Waleedkhan5609/Online-Shopping-cart/models"
)

// renderCatalog prints the product table in the store's fixed layout.
func renderCatalog(products []*models.Product) {
	divider := strings.Repeat("-", 79)
	fmt.Println(divider)
	fmt.Println("| ID. |    Product Name   | Price (Rs) |              Description             |")
	fmt.Println(divider)
	for _, p := range products {
		fmt.Printf("| %-3d | %-17s | %-10s | %-36s |\n", p.ID, p.Name, p.Price, p.Description)
	}
	fmt.Println(divider)
}

// renderCart lists the cart contents with a running total. An empty cart is
// reported explicitly with total 0.
func renderCart(cart *models.Cart) {
	if cart.IsEmpty() {
		fmt.Println("There is nothing in your Cart! Add Some Products.")
		fmt.Println("Total: Rs. 0")
		return
	}
	for _, item := range cart.Items() {
		fmt.Printf("--%s: Rs.%s each x quantity: %d\n", item.Product.Name, item.Product.Price, item.Quantity)
	}
	fmt.Printf("Total: Rs. %s\n", cart.Total())
}

// renderHistory prints every checkout record, oldest first.
func renderHistory(records []models.HistoryRecord) {
	if len(records) == 0 {
		fmt.Println("\"You have no Shopping History!\"")
		fmt.Println(" It will be available after checking out.")
		return
	}
	for _, record := range records {
		fmt.Printf("Date: %s\n", record.Date)
		for _, item := range record.Items {
			fmt.Printf("  %s: Rs.%s each x %d\n", item.Name, item.UnitPrice, item.Quantity)
		}
		fmt.Printf("Total: Rs.%s\n", record.Total)
		fmt.Println("------------------------------------------")
	}
}
