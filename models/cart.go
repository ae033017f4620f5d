package models

import "github.com/shopspring/decimal"

// CartItem is one line of the cart. Quantity is always >= 1.
type CartItem struct {
	Product  ProductSnapshot `json:"product"`
	Quantity int             `json:"quantity" example:"2"`
}

// LineTotal returns price × quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is an insertion-ordered set of lines keyed by product id.
type Cart struct {
	Items []CartItem `json:"items"`
}

// TotalItems sums the quantities of every line.
func (c Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalAmount sums the line totals.
func (c Cart) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Find returns the index of the line holding productID, or -1.
func (c Cart) Find(productID int) int {
	for i, item := range c.Items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}

// CartSummary is the JSON projection of a cart returned to the browser.
type CartSummary struct {
	Items       []CartItem      `json:"items"`
	TotalItems  int             `json:"totalItems" example:"3"`
	TotalAmount decimal.Decimal `json:"totalAmount" swaggertype:"number" example:"42.50"`
}

// Summary builds the browser-facing projection of the cart.
func (c Cart) Summary() CartSummary {
	items := c.Items
	if items == nil {
		items = []CartItem{}
	}
	return CartSummary{
		Items:       items,
		TotalItems:  c.TotalItems(),
		TotalAmount: c.TotalAmount(),
	}
}
