package cart

import (
	"encoding/json"

	"github.com/go-faster/errors"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

// Encode serializes the cart as a JSON array of {product, quantity} lines.
func Encode(c models.Cart) ([]byte, error) {
	items := c.Items
	if items == nil {
		items = []models.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, errors.Wrap(ErrStorage, err.Error())
	}
	return data, nil
}

// Decode parses a stored cart. Lines with quantity < 1, a non-positive product id
// or a product id already seen are dropped; the first occurrence wins.
func Decode(data []byte) (models.Cart, error) {
	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return models.Cart{}, errors.Wrap(ErrStorage, err.Error())
	}
	return normalize(items), nil
}

func normalize(items []models.CartItem) models.Cart {
	out := make([]models.CartItem, 0, len(items))
	seen := make(map[int]struct{}, len(items))
	for _, item := range items {
		if item.Quantity < 1 || item.Product.ID < 1 {
			continue
		}
		if _, dup := seen[item.Product.ID]; dup {
			continue
		}
		seen[item.Product.ID] = struct{}{}
		out = append(out, item)
	}
	return models.Cart{Items: out}
}
