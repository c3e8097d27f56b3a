package order

import "github.com/shopspring/decimal"

// Item is the collaborator an Order reads its unit price from. The order
// never constructs or mutates an Item; it re-reads Price on every
// computation, so implementations backed by live data are never snapshotted.
type Item interface {
	Price() decimal.Decimal
}

// StaticItem is an Item with a fixed unit price.
type StaticItem struct {
	UnitPrice decimal.Decimal
}

func (i StaticItem) Price() decimal.Decimal {
	return i.UnitPrice
}
