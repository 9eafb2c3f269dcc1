// Package cli is the terminal shell around the store core. It owns all
// prompting, parsing and printing; the core is only reached through the
// store's public API with already-parsed arguments.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/store"

	"go.uber.org/zap"
)

// Menu drives the interactive store session.
type Menu struct {
	store  store.Store
	logger *zap.Logger
	in     *bufio.Scanner
	out    io.Writer
}

// NewMenu creates a Menu reading user input from in and writing to out.
func NewMenu(s store.Store, logger *zap.Logger, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		store:  s,
		logger: logger,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run loops over the menu until the user quits, input ends, or the
// context is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printMenu()

		choice, ok := m.readLine("Please choose a number (1-4): ")
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			m.listProducts()
		case "2":
			m.showTotalQuantity()
		case "3":
			m.makeOrder()
		case "4":
			fmt.Fprintln(m.out, "\nThank you for visiting the store! Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "\nInvalid choice. Please try again.")
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "\nWelcome to the store!")
	fmt.Fprintln(m.out, "1. List all products in store")
	fmt.Fprintln(m.out, "2. Show total amount in store")
	fmt.Fprintln(m.out, "3. Make an order")
	fmt.Fprintln(m.out, "4. Quit")
}

func (m *Menu) listProducts() {
	fmt.Fprintln(m.out, "\nProducts in store:")
	fmt.Fprintln(m.out, "------------------")
	for i, product := range m.store.ActiveProducts() {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, product.Show())
	}
}

func (m *Menu) showTotalQuantity() {
	fmt.Fprintf(m.out, "\nTotal of %d items in store\n", m.store.TotalQuantity())
}

// makeOrder collects order lines interactively and submits them in one
// call. Resolution of the user's product identifier (name or 1-based
// list index) happens here; the core only sees resolved references.
func (m *Menu) makeOrder() {
	products := m.store.ActiveProducts()

	fmt.Fprintln(m.out, "\nEnter your order (leave product empty to finish):")

	var lines []store.OrderLine
	for {
		input, ok := m.readLine("Product (name or number): ")
		if !ok || strings.TrimSpace(input) == "" {
			break
		}

		product := resolveProduct(products, strings.TrimSpace(input))
		if product == nil {
			fmt.Fprintf(m.out, "Product %q not found in the store.\n", strings.TrimSpace(input))
			continue
		}

		quantityInput, ok := m.readLine("Quantity: ")
		if !ok {
			break
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(quantityInput))
		if err != nil {
			fmt.Fprintf(m.out, "Invalid quantity %q.\n", strings.TrimSpace(quantityInput))
			continue
		}

		lines = append(lines, store.OrderLine{Product: product, Quantity: quantity})
	}

	if len(lines) == 0 {
		fmt.Fprintln(m.out, "No items in the order.")
		return
	}

	total, err := m.store.Order(lines)
	if err != nil {
		m.logger.Debug("Order failed", zap.Error(err))
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(m.out, "\nOrder successful! Total price: $%.2f\n", total)
}

// resolveProduct matches the user's input against the listed products,
// first as a 1-based index, then as an exact name.
func resolveProduct(products []*domain.Product, input string) *domain.Product {
	if index, err := strconv.Atoi(input); err == nil {
		if index >= 1 && index <= len(products) {
			return products[index-1]
		}
		return nil
	}

	for _, p := range products {
		if p.Name() == input {
			return p
		}
	}
	return nil
}

func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}
