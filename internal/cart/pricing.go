package cart

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidPromo = errors.New("invalid promo code")

var (
	freeShippingThreshold = decimal.NewFromFloat(75)
	shippingFee           = decimal.NewFromFloat(5.99)
	taxRate               = decimal.NewFromFloat(0.07)
)

// promoRates maps promo codes to their fractional discount. Codes are
// matched case-insensitively.
var promoRates = map[string]decimal.Decimal{
	"EARTH15": decimal.NewFromFloat(0.15),
}

// Quote is a fully priced cart. It is recomputed from the items on every
// read, totals are never stored.
type Quote struct {
	Items        []Item
	Subtotal     decimal.Decimal
	Discount     decimal.Decimal
	Shipping     decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
	PromoCode    string
	FreeShipping bool
}

// ComputeQuote prices a set of cart lines.
//
// Shipping is free above the threshold, judged on the raw subtotal. The
// discount applies to the subtotal, tax is charged on the raw subtotal,
// and the grand total never goes below zero.
//
// An unknown promo code returns ErrInvalidPromo together with a valid
// quote priced without any discount, so the caller can surface the error
// and still render the cart.
func ComputeQuote(items []Item, promoCode string) (Quote, error) {
	q := Quote{Items: items, Subtotal: decimal.Zero}
	for _, item := range items {
		q.Subtotal = q.Subtotal.Add(item.LineTotal())
	}

	var promoErr error
	if promoCode != "" {
		rate, ok := promoRates[strings.ToUpper(strings.TrimSpace(promoCode))]
		if ok {
			q.PromoCode = strings.ToUpper(strings.TrimSpace(promoCode))
			q.Discount = q.Subtotal.Mul(rate).Round(2)
		} else {
			promoErr = ErrInvalidPromo
		}
	}

	if q.Subtotal.GreaterThan(freeShippingThreshold) {
		q.FreeShipping = true
		q.Shipping = decimal.Zero
	} else {
		q.Shipping = shippingFee
	}

	q.Tax = q.Subtotal.Mul(taxRate).Round(2)

	q.Total = q.Subtotal.Sub(q.Discount).Add(q.Shipping).Add(q.Tax)
	if q.Total.IsNegative() {
		q.Total = decimal.Zero
	}
	return q, promoErr
}
