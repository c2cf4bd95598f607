// internal/console/console.go

// Package console implements the interactive menu-driven variant of the
// billing system: a login loop followed by a numbered main menu, backed by
// the CSV flat-file store.
package console

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pahana-billing/internal/auth"
	"pahana-billing/internal/billing"
	"pahana-billing/internal/csvstore"
	"pahana-billing/internal/domain"
	"pahana-billing/internal/util"
)

// Console drives one interactive session over the given reader and writer.
type Console struct {
	store  *csvstore.Store
	auth   *auth.Authenticator
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger

	currentUser *domain.User
}

// New creates a Console reading commands from in and printing to out.
func New(store *csvstore.Store, in io.Reader, out io.Writer, logger *slog.Logger) *Console {
	return &Console{
		store:  store,
		auth:   auth.NewAuthenticator(store),
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run executes the session: login, then the main menu until the operator
// exits. Running out of input is treated as an exit request.
func (c *Console) Run() error {
	fmt.Fprintln(c.out, "\n=== Pahana Edu Online Billing System ===")
	fmt.Fprintln(c.out, "(Type 'exit' at username to quit)")
	fmt.Fprintln(c.out)

	if !c.login() {
		return nil
	}
	c.mainMenu()
	fmt.Fprintln(c.out, "\nThank you for using Pahana Edu Billing System. Goodbye!")
	return nil
}

// login prompts for credentials until a valid pair is entered. It returns
// false if the operator typed "exit" or input ran out.
func (c *Console) login() bool {
	for {
		username, ok := c.prompt("Username: ")
		if !ok || strings.EqualFold(strings.TrimSpace(username), "exit") {
			return false
		}
		password, ok := c.prompt("Password: ")
		if !ok {
			return false
		}
		user, err := c.auth.Authenticate(strings.TrimSpace(username), password)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid username or password. Please try again.")
			fmt.Fprintln(c.out)
			continue
		}
		c.currentUser = user
		fmt.Fprintf(c.out, "\nLogin successful. Welcome, %s!\n\n", user.Username)
		return true
	}
}

func (c *Console) mainMenu() {
	for {
		fmt.Fprintln(c.out, "================ MAIN MENU ================")
		fmt.Fprintln(c.out, "1. Add New Customer Account")
		fmt.Fprintln(c.out, "2. Edit Customer Information")
		fmt.Fprintln(c.out, "3. Manage Item Information (Add/Update/Delete)")
		fmt.Fprintln(c.out, "4. Display Account Details")
		fmt.Fprintln(c.out, "5. Calculate & Print Bill")
		fmt.Fprintln(c.out, "6. Help")
		fmt.Fprintln(c.out, "7. Logout")
		fmt.Fprintln(c.out, "8. Exit")

		choice, ok := c.prompt("Select option (1-8): ")
		if !ok {
			return
		}
		switch strings.TrimSpace(choice) {
		case "1":
			c.addCustomer()
		case "2":
			c.editCustomer()
		case "3":
			c.manageItems()
		case "4":
			c.displayAccountDetails()
		case "5":
			c.calculateAndPrintBill()
		case "6":
			c.showHelp()
		case "7":
			c.currentUser = nil
			fmt.Fprintln(c.out, "\nLogged out.")
			fmt.Fprintln(c.out)
			if !c.login() {
				return
			}
		case "8":
			return
		default:
			fmt.Fprintln(c.out, "Invalid selection. Please choose 1-8.")
			fmt.Fprintln(c.out)
		}
	}
}

// ----- customers -----

func (c *Console) addCustomer() {
	fmt.Fprintln(c.out, "\n--- Add New Customer ---")
	acc, ok := c.readNonEmpty("Account Number (unique): ")
	if !ok {
		return
	}
	if _, err := c.store.GetCustomer(acc); err == nil {
		fmt.Fprintln(c.out, "Account already exists. Use Edit instead.")
		fmt.Fprintln(c.out)
		return
	}
	name, ok := c.readNonEmpty("Full Name: ")
	if !ok {
		return
	}
	addr, ok := c.readNonEmpty("Address: ")
	if !ok {
		return
	}
	phone, ok := c.readNonEmpty("Telephone: ")
	if !ok {
		return
	}
	units, ok := c.readIntNonNegative("Units Consumed (integer): ")
	if !ok {
		return
	}
	customer := domain.NewCustomer(acc, name, addr, phone, units)
	if err := c.store.CreateCustomer(customer); err != nil {
		c.reportSaveError("create customer", err)
		return
	}
	fmt.Fprintln(c.out, "Customer added successfully.")
	fmt.Fprintln(c.out)
}

func (c *Console) editCustomer() {
	fmt.Fprintln(c.out, "\n--- Edit Customer Information ---")
	acc, ok := c.readNonEmpty("Enter Account Number: ")
	if !ok {
		return
	}
	customer, err := c.store.GetCustomer(acc)
	if err != nil {
		fmt.Fprintf(c.out, "No customer found with account number: %s\n\n", acc)
		return
	}
	fmt.Fprintf(c.out, "Current:\n%s\n\n", formatCustomer(customer))

	// Blank input keeps the current value.
	if name, ok := c.prompt("New Name (blank to keep): "); ok && strings.TrimSpace(name) != "" {
		customer.Name = strings.TrimSpace(name)
	}
	if addr, ok := c.prompt("New Address (blank to keep): "); ok && strings.TrimSpace(addr) != "" {
		customer.Address = strings.TrimSpace(addr)
	}
	if phone, ok := c.prompt("New Telephone (blank to keep): "); ok && strings.TrimSpace(phone) != "" {
		customer.Phone = strings.TrimSpace(phone)
	}
	if unitsStr, ok := c.prompt("New Units Consumed (blank to keep): "); ok && strings.TrimSpace(unitsStr) != "" {
		units, err := strconv.Atoi(strings.TrimSpace(unitsStr))
		if err != nil || units < 0 {
			fmt.Fprintln(c.out, "Invalid units. Keeping previous value.")
		} else {
			customer.UnitsConsumed = units
		}
	}

	if err := c.store.UpdateCustomer(customer); err != nil {
		c.reportSaveError("update customer", err)
		return
	}
	fmt.Fprintln(c.out, "Customer updated successfully.")
	fmt.Fprintln(c.out)
}

func (c *Console) displayAccountDetails() {
	fmt.Fprintln(c.out, "\n--- Display Account Details ---")
	acc, ok := c.readNonEmpty("Enter Account Number (or * to list all): ")
	if !ok {
		return
	}
	if acc == "*" {
		customers := c.store.ListCustomers()
		if len(customers) == 0 {
			fmt.Fprintln(c.out, "No customers found.")
			fmt.Fprintln(c.out)
			return
		}
		fmt.Fprintln(c.out, "\nAll Customers:")
		for _, customer := range customers {
			fmt.Fprintf(c.out, "- %s\n", formatCustomer(customer))
		}
		fmt.Fprintln(c.out)
		return
	}
	customer, err := c.store.GetCustomer(acc)
	if err != nil {
		fmt.Fprintln(c.out, "No customer found.")
		fmt.Fprintln(c.out)
		return
	}
	fmt.Fprintf(c.out, "\n%s\n\n", formatCustomer(customer))
}

// ----- items -----

func (c *Console) manageItems() {
	for {
		fmt.Fprintln(c.out, "\n--- Item Management ---")
		fmt.Fprintln(c.out, "1) Add Item")
		fmt.Fprintln(c.out, "2) Update Item")
		fmt.Fprintln(c.out, "3) Delete Item")
		fmt.Fprintln(c.out, "4) List Items")
		fmt.Fprintln(c.out, "5) Back")

		choice, ok := c.prompt("Choose (1-5): ")
		if !ok {
			return
		}
		switch strings.TrimSpace(choice) {
		case "1":
			c.addItem()
		case "2":
			c.updateItem()
		case "3":
			c.deleteItem()
		case "4":
			c.listItems()
		case "5":
			return
		default:
			fmt.Fprintln(c.out, "Invalid choice.")
			fmt.Fprintln(c.out)
		}
	}
}

func (c *Console) addItem() {
	code, ok := c.readNonEmpty("Item Code (unique): ")
	if !ok {
		return
	}
	if _, err := c.store.GetItem(code); err == nil {
		fmt.Fprintln(c.out, "Item code exists.")
		fmt.Fprintln(c.out)
		return
	}
	name, ok := c.readNonEmpty("Item Name: ")
	if !ok {
		return
	}
	price, ok := c.readDecimalNonNegative("Unit Price: ")
	if !ok {
		return
	}
	if err := c.store.CreateItem(domain.NewItem(code, name, price)); err != nil {
		c.reportSaveError("create item", err)
		return
	}
	fmt.Fprintln(c.out, "Item added.")
	fmt.Fprintln(c.out)
}

func (c *Console) updateItem() {
	code, ok := c.readNonEmpty("Enter Item Code to update: ")
	if !ok {
		return
	}
	item, err := c.store.GetItem(code)
	if err != nil {
		fmt.Fprintln(c.out, "No such item.")
		fmt.Fprintln(c.out)
		return
	}
	fmt.Fprintf(c.out, "Current: %s\n", formatItem(item))

	if name, ok := c.prompt("New Name (blank keep): "); ok && strings.TrimSpace(name) != "" {
		item.Name = strings.TrimSpace(name)
	}
	if priceStr, ok := c.prompt("New Unit Price (blank keep): "); ok && strings.TrimSpace(priceStr) != "" {
		price, err := decimal.NewFromString(strings.TrimSpace(priceStr))
		if err != nil || price.IsNegative() {
			fmt.Fprintln(c.out, "Invalid price. Keeping previous.")
		} else {
			item.UnitPrice = price
		}
	}

	if err := c.store.UpdateItem(item); err != nil {
		c.reportSaveError("update item", err)
		return
	}
	fmt.Fprintln(c.out, "Item updated.")
	fmt.Fprintln(c.out)
}

func (c *Console) deleteItem() {
	code, ok := c.readNonEmpty("Enter Item Code to delete: ")
	if !ok {
		return
	}
	if err := c.store.DeleteItem(code); err != nil {
		if util.IsError(err, util.ErrItemNotFound) {
			fmt.Fprintln(c.out, "No such item.")
			fmt.Fprintln(c.out)
			return
		}
		c.reportSaveError("delete item", err)
		return
	}
	fmt.Fprintln(c.out, "Item deleted.")
	fmt.Fprintln(c.out)
}

func (c *Console) listItems() {
	items := c.store.ListItems()
	if len(items) == 0 {
		fmt.Fprintln(c.out, "No items found.")
		fmt.Fprintln(c.out)
		return
	}
	fmt.Fprintln(c.out, "\nItems:")
	fmt.Fprintln(c.out, "Code | Name | UnitPrice")
	for _, item := range items {
		fmt.Fprintln(c.out, formatItem(item))
	}
	fmt.Fprintln(c.out)
}

// ----- billing -----

func (c *Console) calculateAndPrintBill() {
	fmt.Fprintln(c.out, "\n--- Calculate & Print Bill ---")
	acc, ok := c.readNonEmpty("Enter Account Number: ")
	if !ok {
		return
	}
	customer, err := c.store.GetCustomer(acc)
	if err != nil {
		fmt.Fprintln(c.out, "No such customer.")
		fmt.Fprintln(c.out)
		return
	}

	var lines []billing.Line
	if len(c.store.ListItems()) > 0 {
		answer, ok := c.prompt("Add items to bill? (y/n): ")
		if !ok {
			return
		}
		for strings.EqualFold(strings.TrimSpace(answer), "y") {
			c.listItems()
			code, ok := c.readNonEmpty("Enter Item Code: ")
			if !ok {
				return
			}
			item, err := c.store.GetItem(code)
			if err != nil {
				fmt.Fprintln(c.out, "Invalid code.")
			} else {
				qty, ok := c.readIntPositive("Quantity: ")
				if !ok {
					return
				}
				line := billing.Line{Item: *item, Quantity: qty}
				lines = append(lines, line)
				fmt.Fprintf(c.out, "Added: %s x %d = %s\n", item.Name, qty, line.Total().StringFixed(2))
			}
			answer, ok = c.prompt("Add another item? (y/n): ")
			if !ok {
				return
			}
		}
	}

	bill := billing.Calculate(customer.AccountNo, customer.UnitsConsumed, lines, time.Now())
	if err := c.store.AppendBill(bill); err != nil {
		// The bill is still printed; on-disk state may lag until the next
		// successful save.
		c.reportSaveError("append bill", err)
	}
	c.printReceipt(customer, bill)
}

// ----- help -----

func (c *Console) showHelp() {
	fmt.Fprintln(c.out, "\n--- Help: System Usage Guidelines ---")
	fmt.Fprintln(c.out, "1) Login with your username and password. Default admin is created on first run.")
	fmt.Fprintln(c.out, "2) Add Customer: Enter unique account number and details.")
	fmt.Fprintln(c.out, "3) Edit Customer: Update customer fields or units consumed.")
	fmt.Fprintln(c.out, "4) Manage Items: Maintain item list with unit prices.")
	fmt.Fprintln(c.out, "5) Calculate & Print Bill: Computes tiered energy charge + items + tax.")
	fmt.Fprintln(c.out, "6) Use '*' when prompted for account number to list all customers.")
	fmt.Fprintf(c.out, "7) Data is saved under the '%s' folder as CSV text files.\n\n", c.store.Dir())
}

// ----- prompt helpers -----

// prompt prints the given text and reads one line. ok is false when input is
// exhausted.
func (c *Console) prompt(text string) (line string, ok bool) {
	fmt.Fprint(c.out, text)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) readNonEmpty(text string) (string, bool) {
	for {
		line, ok := c.prompt(text)
		if !ok {
			return "", false
		}
		if s := strings.TrimSpace(line); s != "" {
			return s, true
		}
		text = "Value cannot be empty. Try again: "
	}
}

func (c *Console) readIntNonNegative(text string) (int, bool) {
	for {
		line, ok := c.prompt(text)
		if !ok {
			return 0, false
		}
		if v, err := strconv.Atoi(strings.TrimSpace(line)); err == nil && v >= 0 {
			return v, true
		}
		text = "Enter a non-negative integer: "
	}
}

func (c *Console) readIntPositive(text string) (int, bool) {
	for {
		line, ok := c.prompt(text)
		if !ok {
			return 0, false
		}
		if v, err := strconv.Atoi(strings.TrimSpace(line)); err == nil && v > 0 {
			return v, true
		}
		text = "Enter a positive integer: "
	}
}

func (c *Console) readDecimalNonNegative(text string) (decimal.Decimal, bool) {
	for {
		line, ok := c.prompt(text)
		if !ok {
			return decimal.Zero, false
		}
		if v, err := decimal.NewFromString(strings.TrimSpace(line)); err == nil && !v.IsNegative() {
			return v, true
		}
		text = "Enter a non-negative number: "
	}
}

// reportSaveError surfaces a persistence failure to the operator without
// rolling back in-memory state.
func (c *Console) reportSaveError(op string, err error) {
	c.logger.Error("save failed", "op", op, "error", err)
	fmt.Fprintf(c.out, "[ERROR] %s: %v\n\n", op, err)
}

func formatCustomer(c *domain.Customer) string {
	return fmt.Sprintf("Account: %s | Name: %s | Phone: %s | Units: %d\nAddress: %s",
		c.AccountNo, c.Name, c.Phone, c.UnitsConsumed, c.Address)
}

func formatItem(i *domain.Item) string {
	return fmt.Sprintf("%s | %s | %s", i.Code, i.Name, i.UnitPrice.StringFixed(2))
}
