// Package order computes the final, discounted price for a purchase of a
// quantity of a single item. All pricing values are derived on every read
// from the order's quantity and the item's current unit price; nothing is
// cached, so a read is always consistent with the collaborator's state at
// the moment of access.
package order

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNilItem is returned when an order is constructed without an item.
var ErrNilItem = errors.New("item required")

// Discount policy: orders keep the standard factor unless the base price
// strictly exceeds the bulk threshold, in which case the factor drops by
// the bulk reduction. A base price of exactly the threshold stays standard.
var (
	standardFactor = decimal.RequireFromString("0.98")
	bulkReduction  = decimal.RequireFromString("0.03")
	bulkThreshold  = decimal.NewFromInt(1000)
)

// Order represents a purchase of a quantity of a single item. It is
// immutable after construction and holds only a read-only reference to its
// item, so its accessors are safe for any number of concurrent callers.
type Order struct {
	quantity int64
	item     Item
}

// New creates an Order over the given item. Both inputs are stored verbatim;
// quantity is not validated, zero and negative values propagate
// arithmetically through the pricing reads. A nil item returns ErrNilItem.
func New(quantity int64, item Item) (*Order, error) {
	if item == nil {
		return nil, ErrNilItem
	}
	return &Order{quantity: quantity, item: item}, nil
}

// Quantity returns the number of units purchased.
func (o *Order) Quantity() int64 {
	return o.quantity
}

// Item returns the order's item collaborator.
func (o *Order) Item() Item {
	return o.item
}

// BasePrice returns the pre-discount total, quantity times the item's
// current unit price. Exact decimal arithmetic, no rounding.
func (o *Order) BasePrice() decimal.Decimal {
	return o.item.Price().Mul(decimal.NewFromInt(o.quantity))
}

// DiscountFactor returns the multiplier applied to the base price, one of
// 0.98 (base price at most 1000) or 0.95 (base price above 1000).
func (o *Order) DiscountFactor() decimal.Decimal {
	factor := standardFactor
	if o.BasePrice().GreaterThan(bulkThreshold) {
		factor = factor.Sub(bulkReduction)
	}
	return factor
}

// Price returns the final discounted total. Both the base price and the
// discount factor are re-derived on every call.
func (o *Order) Price() decimal.Decimal {
	return o.BasePrice().Mul(o.DiscountFactor())
}
