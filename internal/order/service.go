package order

import (
	"errors"
	"log"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ecohero/storefront-backend/internal/cart"
)

var ErrEmptyCart = errors.New("cart is empty")

// CartService is the slice of the cart service checkout needs.
type CartService interface {
	Quote(userID int, promoCode string) (cart.Quote, error)
	Clear(userID int) error
}

// AccountRecorder links a placed order back to the buyer's account. Wiring
// it is optional, checkout works without one.
type AccountRecorder interface {
	AppendOrderID(userID, orderID int) error
}

type Service struct {
	repo     Repository
	carts    CartService
	accounts AccountRecorder
	rng      *rand.Rand
}

// NewService builds the checkout service. rng drives order number
// generation and is injectable so tests can pin it.
func NewService(repo Repository, carts CartService, accounts AccountRecorder, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{repo: repo, carts: carts, accounts: accounts, rng: rng}
}

// orderNumber produces the customer-facing six digit number shown on the
// confirmation page. It is display data, Reference is the unique handle.
func (s *Service) orderNumber() string {
	return strconv.Itoa(100000 + s.rng.Intn(900000))
}

// Checkout prices the user's cart one final time, persists the order and
// empties the cart. The payment itself is simulated, every order lands in
// the processing state.
func (s *Service) Checkout(userID int, details ShippingDetails, paymentMethod, promoCode string) (Order, error) {
	quote, err := s.carts.Quote(userID, promoCode)
	if err != nil && err != cart.ErrInvalidPromo {
		return Order{}, err
	}
	if err == cart.ErrInvalidPromo {
		return Order{}, err
	}
	if len(quote.Items) == 0 {
		return Order{}, ErrEmptyCart
	}

	o := Order{
		Reference:     uuid.NewString(),
		OrderNumber:   s.orderNumber(),
		UserID:        userID,
		Items:         quote.Items,
		Subtotal:      quote.Subtotal,
		Discount:      quote.Discount,
		Shipping:      quote.Shipping,
		Tax:           quote.Tax,
		Total:         quote.Total,
		PromoCode:     quote.PromoCode,
		Status:        StatusProcessing,
		ShippingInfo:  details,
		PaymentMethod: paymentMethod,
		CreatedAt:     time.Now().UTC().Format("2006-01-02"),
	}

	created, err := s.repo.Add(o)
	if err != nil {
		return Order{}, err
	}

	if s.accounts != nil {
		// order history on the account is best effort
		_ = s.accounts.AppendOrderID(userID, created.ID)
	}

	if err := s.carts.Clear(userID); err != nil {
		// the order is already durably placed, a stale cart is recoverable
		log.Printf("checkout: could not clear cart for user %d: %v", userID, err)
	}
	return created, nil
}

func (s *Service) ListByUser(userID int) ([]Order, error) {
	return s.repo.ListByUser(userID)
}

// GetForUser fetches one order and enforces ownership: another user's
// order reads as not found.
func (s *Service) GetForUser(userID, orderID int) (Order, error) {
	o, err := s.repo.GetByID(orderID)
	if err != nil {
		return Order{}, err
	}
	if o.UserID != userID {
		return Order{}, ErrNotFound
	}
	return o, nil
}
