package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

const (
	invoiceRule       = "---------------------------------------------\n"
	invoiceDateLayout = "02 Jan 2006"
)

// GenerateInvoiceQueryHandler renders a plain-text invoice.
//
// It never returns an error. When the order, its customer, the customer's
// user, the shipping record or a product cannot be found, the result is an
// "Error: ..." line instead of an invoice; any other failure is reported as
// "Error generating invoice: ...". Reading the same committed order twice
// yields identical text.
//
// Layout:
//
//	INVOICE
//	-------
//	Order ID: ORD-20250530-000001
//	Order Date: 30 May 2025
//	Customer: Alice Molefe (alice@example.com)
//	Billing Address: 7 Kgale View, Gaborone, SE
//	Shipping Address: 7 Kgale View, Gaborone, SE
//	Shipping Status: pending
//	Payment Status: pending
//
//	Items:
//	---------------------------------------------
//	Product             Quantity  Price     Subtotal
//	---------------------------------------------
//	Laptop              1         999.99    999.99
//	---------------------------------------------
//	Total: 999.99
//
// A final "Warning: Payment amount (...) does not match total (...)" line
// follows when the first order's payment differs from the total by more
// than services.PaymentTolerance.
type GenerateInvoiceQueryHandler struct {
	repos InvoiceRepositoriesFactory
}

func NewGenerateInvoiceQueryHandler(repos InvoiceRepositoriesFactory) GenerateInvoiceQueryHandler {
	return GenerateInvoiceQueryHandler{repos: repos}
}

func (h GenerateInvoiceQueryHandler) Handle(ctx context.Context, query GenerateInvoiceQuery) string {
	if err := query.Validate(); err != nil {
		return fmt.Sprintf("Error generating invoice: %v", err)
	}

	text, err := h.render(ctx, query.OrderIDPrefix())
	if err != nil {
		return fmt.Sprintf("Error generating invoice: %v", err)
	}
	return text
}

// render returns either the invoice or a resolution error line as text; err
// is reserved for failures that are not a missing record.
func (h GenerateInvoiceQueryHandler) render(ctx context.Context, prefix string) (string, error) {
	repos := h.repos.Create()

	orders, err := repos.OrderRepository().FindByPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}
	if len(orders) == 0 {
		return fmt.Sprintf("Error: No order found for ID %s", prefix), nil
	}
	first := orders[0]

	customer, err := repos.RoleBindingRepository().Get(ctx, user.Customer, first.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Sprintf("Error: Customer %s not found", first.CustomerID()), nil
	}
	if err != nil {
		return "", err
	}

	u, err := repos.UserRepository().Get(ctx, customer.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Sprintf("Error: User %s not found", customer.UserID()), nil
	}
	if err != nil {
		return "", err
	}

	shipment, err := repos.ShippingRepository().Get(ctx, first.ShippingID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Sprintf("Error: Shipping %s not found", first.ShippingID()), nil
	}
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("INVOICE\n-------\n")
	fmt.Fprintf(&b, "Order ID: %s\n", prefix)
	fmt.Fprintf(&b, "Order Date: %s\n", first.PlacedAt().Format(invoiceDateLayout))
	fmt.Fprintf(&b, "Customer: %s (%s)\n", u.Name(), u.Email())
	fmt.Fprintf(&b, "Billing Address: %s\n", u.Address())
	fmt.Fprintf(&b, "Shipping Address: %s\n", shipment.Address())
	fmt.Fprintf(&b, "Shipping Status: %s\n", shipment.Status())
	fmt.Fprintf(&b, "Payment Status: %s\n\n", first.Payment().Status())
	b.WriteString("Items:\n")
	b.WriteString(invoiceRule)
	fmt.Fprintf(&b, "%-20s%-10s%-10s%s\n", "Product", "Quantity", "Price", "Subtotal")
	b.WriteString(invoiceRule)

	products := make(map[string]*catalog.Product)
	total := kernel.ZeroMoney()
	for _, o := range orders {
		for _, line := range o.Lines() {
			p, ok := products[line.ProductID()]
			if !ok {
				p, err = repos.ProductRepository().Get(ctx, line.ProductID())
				if errors.Is(err, errs.ErrObjectNotFound) {
					return fmt.Sprintf("Error: Product %s not found", line.ProductID()), nil
				}
				if err != nil {
					return "", err
				}
				products[line.ProductID()] = p
			}

			subtotal := p.Price().Times(line.Quantity())
			total = total.Add(subtotal)
			fmt.Fprintf(&b, "%-20s%-10d%-10s%s\n", p.Name(), line.Quantity(), p.Price(), subtotal)
		}
	}

	b.WriteString(invoiceRule)
	fmt.Fprintf(&b, "Total: %s\n", total)

	paid := first.Payment().Amount()
	if !paid.WithinTolerance(total, services.PaymentTolerance) {
		fmt.Fprintf(&b, "\nWarning: Payment amount (%s) does not match total (%s)", paid, total)
	}

	return b.String(), nil
}
