// Package ordering holds the product and order data model demo.
package ordering

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"coursework/internal/validate"
)

var printer = message.NewPrinter(language.English)

// Money renders an amount as dollars with thousands separators.
func Money(amount float64) string {
	return printer.Sprintf("$%.2f", amount)
}

// Product is one line of an order. It is immutable once built.
type Product struct {
	ID       string  `validate:"notblank"`
	Name     string  `validate:"notblank"`
	Price    float64 `validate:"min=0"`
	Quantity int     `validate:"min=0"`
	Weight   float64 `validate:"min=0"` // pounds
}

// NewProduct validates and returns a product.
func NewProduct(id, name string, price float64, quantity int, weight float64) (Product, error) {
	p := Product{ID: id, Name: name, Price: price, Quantity: quantity, Weight: weight}
	if err := validate.Struct(p); err != nil {
		return Product{}, fmt.Errorf("invalid product: %w", err)
	}
	return p, nil
}

// TotalCost is price × quantity.
func (p Product) TotalCost() float64 {
	return p.Price * float64(p.Quantity)
}

func (p Product) String() string {
	return fmt.Sprintf("Product(id='%s', name='%s', price=$%.2f, quantity=%d, weight=%g lbs)",
		p.ID, p.Name, p.Price, p.Quantity, p.Weight)
}

// Order is an ordered list of products.
type Order struct {
	products []Product
}

// NewOrder returns an order of products.
func NewOrder(products ...Product) *Order {
	return &Order{products: products}
}

// Add appends a product.
func (o *Order) Add(p Product) { o.products = append(o.products, p) }

// Products returns the order lines.
func (o *Order) Products() []Product { return o.products }

// Total sums every line's total cost.
func (o *Order) Total() float64 {
	var total float64
	for _, p := range o.products {
		total += p.TotalCost()
	}
	return total
}

// Weight sums quantity × weight over every line.
func (o *Order) Weight() float64 {
	var w float64
	for _, p := range o.products {
		w += p.Weight * float64(p.Quantity)
	}
	return w
}

// WriteReport prints each product, its line total and the order total.
func WriteReport(w io.Writer, o *Order) {
	for _, p := range o.products {
		fmt.Fprintln(w, p)
		fmt.Fprintf(w, "Total cost for %d %ss is: %s\n", p.Quantity, p.Name, Money(p.TotalCost()))
	}
	fmt.Fprintf(w, "Order total: %s (%g lbs)\n", Money(o.Total()), o.Weight())
}

// DemoOrder is the sample order shown by the order command.
func DemoOrder() *Order {
	laptop, _ := NewProduct("A001", "Laptop", 1200.50, 2, 4.5)
	return NewOrder(laptop)
}
