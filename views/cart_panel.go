package views

import "github.com/Modeva-Ecommerce/modeva-storefront/models"

const EmptyCartMessage = "Your cart is empty"

// CartLine is one row of the cart panel with its quantity controls.
type CartLine struct {
	ProductID   int
	Title       string
	FullTitle   string
	Image       string
	Price       string
	Quantity    int
	DecQuantity int
	IncQuantity int
	LineTotal   string
}

// CartPanel is the cart drawer content.
type CartPanel struct {
	Lines []CartLine
	Empty bool
	Total string
	Badge Badge
}

// Badge is the item counter on the cart button; hidden when the cart is empty.
type Badge struct {
	Count  int  `json:"count"`
	Hidden bool `json:"hidden"`
}

// NewBadge builds the counter from the total item quantity.
func NewBadge(count int) Badge {
	return Badge{Count: count, Hidden: count <= 0}
}

// NewCartPanel renders every line in insertion order with the running total.
func NewCartPanel(c models.Cart) CartPanel {
	panel := CartPanel{
		Empty: len(c.Items) == 0,
		Total: Money(c.TotalAmount()),
		Badge: NewBadge(c.TotalItems()),
	}
	for _, item := range c.Items {
		panel.Lines = append(panel.Lines, CartLine{
			ProductID:   item.Product.ID,
			Title:       Truncate(item.Product.Title, CartTitleLimit),
			FullTitle:   item.Product.Title,
			Image:       item.Product.Image,
			Price:       Price(item.Product.Price),
			Quantity:    item.Quantity,
			DecQuantity: item.Quantity - 1,
			IncQuantity: item.Quantity + 1,
			LineTotal:   Money(item.LineTotal()),
		})
	}
	return panel
}
