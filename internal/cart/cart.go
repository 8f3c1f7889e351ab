package cart

import "github.com/shopspring/decimal"

// Item is one cart line. Price is a snapshot of the product's effective
// price taken when the line was added, so a later catalog change does not
// silently reprice a cart mid-session.
type Item struct {
	ProductID int             `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// LineTotal is Price * Quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
