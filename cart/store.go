// Package cart is the shopping cart: a product → quantity map persisted to a Storage
// after every mutation.
package cart

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

// AddedMessage is the toast emitted after a successful add.
const AddedMessage = "Added to cart!"

// Observer is told about every cart change and every user-facing notification.
type Observer interface {
	CartChanged(c models.Cart)
	Notify(message string)
}

type nopObserver struct{}

func (nopObserver) CartChanged(models.Cart) {}
func (nopObserver) Notify(string)           {}

// Recorder is an Observer that keeps what it was told, for rendering a response after the mutation.
type Recorder struct {
	Changed bool
	Last    models.Cart
	Toasts  []string
}

func (r *Recorder) CartChanged(c models.Cart) {
	r.Changed = true
	r.Last = c
}

func (r *Recorder) Notify(message string) {
	r.Toasts = append(r.Toasts, message)
}

// Toast returns the latest notification, or "".
func (r *Recorder) Toast() string {
	if len(r.Toasts) == 0 {
		return ""
	}
	return r.Toasts[len(r.Toasts)-1]
}

// Store holds one browser's cart. A Store is request-scoped and not safe for concurrent use.
type Store struct {
	cart     models.Cart
	storage  Storage
	observer Observer
	logger   *zap.Logger
}

// Load reads the cart from storage. Any failure leaves the store with an empty cart.
func Load(ctx context.Context, storage Storage, observer Observer, logger *zap.Logger) *Store {
	if observer == nil {
		observer = nopObserver{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{storage: storage, observer: observer, logger: logger}
	if storage == nil {
		return s
	}

	data, err := storage.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoCart) {
			logger.Warn("⚠️ cart load failed, starting empty", zap.Error(err))
		}
		return s
	}
	c, err := Decode(data)
	if err != nil {
		logger.Warn("⚠️ stored cart is corrupt, starting empty", zap.Error(err))
		return s
	}
	s.cart = c
	return s
}

// AddItem increments the line of product, appending a new line with quantity 1 when absent.
// When the cart cannot be saved the mutation is undone and no toast is emitted.
func (s *Store) AddItem(ctx context.Context, product models.Product) error {
	prev := s.Items()
	if i := s.cart.Find(product.ID); i >= 0 {
		s.cart.Items[i].Quantity++
	} else {
		s.cart.Items = append(s.cart.Items, models.CartItem{Product: product.Snapshot(), Quantity: 1})
	}
	if err := s.persist(ctx, prev); err != nil {
		return err
	}
	s.observer.Notify(AddedMessage)
	return nil
}

// RemoveItem drops the line of productID regardless of its quantity.
func (s *Store) RemoveItem(ctx context.Context, productID int) error {
	prev := s.Items()
	if i := s.cart.Find(productID); i >= 0 {
		s.cart.Items = append(s.cart.Items[:i:i], s.cart.Items[i+1:]...)
	}
	return s.persist(ctx, prev)
}

// UpdateQuantity sets the quantity of an existing line. quantity <= 0 removes it;
// an unknown productID changes nothing.
func (s *Store) UpdateQuantity(ctx context.Context, productID, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, productID)
	}
	i := s.cart.Find(productID)
	if i < 0 {
		return nil
	}
	prev := s.Items()
	s.cart.Items[i].Quantity = quantity
	return s.persist(ctx, prev)
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []models.CartItem {
	return append([]models.CartItem{}, s.cart.Items...)
}

// Cart returns a copy of the current cart.
func (s *Store) Cart() models.Cart {
	return models.Cart{Items: s.Items()}
}

// Total is the sum of price × quantity over all lines.
func (s *Store) Total() decimal.Decimal {
	return s.cart.TotalAmount()
}

// Summary is the browser-facing projection of the cart.
func (s *Store) Summary() models.CartSummary {
	return s.Cart().Summary()
}

// TotalItemCount is the sum of quantities over all lines.
func (s *Store) TotalItemCount() int {
	return s.cart.TotalItems()
}

// persist saves the cart, restoring prev and skipping the change notification on failure.
func (s *Store) persist(ctx context.Context, prev []models.CartItem) error {
	if s.storage != nil {
		if err := s.save(ctx); err != nil {
			s.logger.Error("❌ cart save failed", zap.Error(err))
			s.cart.Items = prev
			return err
		}
	}
	s.observer.CartChanged(s.Cart())
	return nil
}

func (s *Store) save(ctx context.Context) error {
	data, err := Encode(s.cart)
	if err != nil {
		return err
	}
	if err := s.storage.Save(ctx, data); err != nil {
		if errors.Is(err, ErrStorage) {
			return err
		}
		return errors.Wrap(ErrStorage, err.Error())
	}
	return nil
}
