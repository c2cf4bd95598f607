// internal/console/receipt.go
package console

import (
	"fmt"
	"strings"

	"pahana-billing/internal/domain"
)

const receiptWidth = 46

// printReceipt writes the fixed-width bill receipt.
func (c *Console) printReceipt(customer *domain.Customer, bill *domain.Bill) {
	rule := strings.Repeat("=", receiptWidth)
	thin := strings.Repeat("-", receiptWidth)

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out, center("PAHANA EDU - BILL RECEIPT", receiptWidth))
	fmt.Fprintln(c.out, rule)
	fmt.Fprintf(c.out, "Bill ID   : %s\n", bill.BillID)
	fmt.Fprintf(c.out, "Date      : %s\n", bill.BillTime.Format("2006-01-02 15:04"))
	fmt.Fprintf(c.out, "Account   : %s\n", bill.AccountNo)
	fmt.Fprintf(c.out, "Customer  : %s\n", customer.Name)
	fmt.Fprintln(c.out, thin)
	fmt.Fprintf(c.out, "Units Consumed      : %d\n", bill.Units)
	fmt.Fprintf(c.out, "Energy Charge       : %10s\n", bill.EnergyCharge.StringFixed(2))
	fmt.Fprintf(c.out, "Item Purchases      : %10s\n", bill.ItemTotal.StringFixed(2))
	fmt.Fprintf(c.out, "Tax (15%%)           : %10s\n", bill.Tax.StringFixed(2))
	fmt.Fprintln(c.out, thin)
	fmt.Fprintf(c.out, "GRAND TOTAL         : %10s\n", bill.GrandTotal.StringFixed(2))
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out, center("Thank you!", receiptWidth))
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
