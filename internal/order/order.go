package order

import (
	"github.com/shopspring/decimal"

	"github.com/ecohero/storefront-backend/internal/cart"
)

const StatusProcessing = "processing"

// ShippingDetails is the address block captured at checkout. It is stored
// on the order verbatim, later address-book edits do not rewrite history.
type ShippingDetails struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// Order is a placed order. Items and totals are frozen copies of the cart
// quote at checkout time.
type Order struct {
	ID            int             `json:"id"`
	Reference     string          `json:"reference"`
	OrderNumber   string          `json:"orderNumber"`
	UserID        int             `json:"userId"`
	Items         []cart.Item     `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Shipping      decimal.Decimal `json:"shipping"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	PromoCode     string          `json:"promoCode,omitempty"`
	Status        string          `json:"status"`
	ShippingInfo  ShippingDetails `json:"shippingInfo"`
	PaymentMethod string          `json:"paymentMethod"`
	CreatedAt     string          `json:"createdAt"`
}
