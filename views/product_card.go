package views

import (
	"html/template"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

// FeedbackMillis is how long the add-to-cart button shows its confirmation icon.
const FeedbackMillis = 1000

// ProductCard is one tile of the product grid.
type ProductCard struct {
	ID          int
	Title       string
	TitleHTML   template.HTML
	Image       string
	Badge       string
	Price       string
	Stars       Stars
	RatingCount int
	FeedbackMs  int
}

// NewProductCard builds the card of p with the active search term highlighted.
func NewProductCard(p models.Product, search Highlighter) ProductCard {
	return ProductCard{
		ID:          p.ID,
		Title:       p.Title,
		TitleHTML:   search.Apply(p.Title),
		Image:       p.Image,
		Badge:       CapitalizeFirst(p.Category),
		Price:       Price(p.Price),
		Stars:       StarsFor(p.Rating.Rate),
		RatingCount: p.Rating.Count,
		FeedbackMs:  FeedbackMillis,
	}
}
