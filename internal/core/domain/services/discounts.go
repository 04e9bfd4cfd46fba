package services

import (
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Pricing constants. Thresholds compare against the item subtotal before
// delivery and discounts.
var (
	courierDeliveryPrice  = kernel.NewMoneyFromDecimal(decimal.RequireFromString("9.90"))
	freeDeliveryThreshold = kernel.NewMoneyFromDecimal(decimal.RequireFromString("100"))
	halfCheapestThreshold = kernel.NewMoneyFromDecimal(decimal.RequireFromString("200"))
	freeCheapestThreshold = kernel.NewMoneyFromDecimal(decimal.RequireFromString("400"))
)

// DiscountStrategy is a single pricing rule. Given the order and its computed
// item subtotal and delivery fee, a rule either yields an applied discount or
// reports that it does not apply. Rules never mutate the order.
type DiscountStrategy interface {
	Calculate(o *order.Order, itemsPrice, deliveryPrice kernel.Money) (Discount, bool)
}

// DeliveryDiscount waives the delivery fee once the item subtotal reaches the
// free-delivery threshold.
type DeliveryDiscount struct{}

// Calculate returns a discount equal to the delivery fee when the subtotal
// qualifies and the fee is non-zero.
func (DeliveryDiscount) Calculate(_ *order.Order, itemsPrice, deliveryPrice kernel.Money) (Discount, bool) {
	if deliveryPrice.IsZero() || itemsPrice.LessThan(freeDeliveryThreshold) {
		return Discount{}, false
	}
	return NewDiscount("free delivery", deliveryPrice), true
}

// CheapestBookDiscount discounts the cheapest book of the order for large
// subtotals: half its unit price from the lower threshold, the full unit
// price from the higher one. The higher threshold supersedes the lower, so
// at most one variant applies.
type CheapestBookDiscount struct{}

// Calculate picks the lowest unit price among the order's items, breaking
// ties by book identifier so the result is deterministic.
func (CheapestBookDiscount) Calculate(o *order.Order, itemsPrice, _ kernel.Money) (Discount, bool) {
	if itemsPrice.LessThan(halfCheapestThreshold) {
		return Discount{}, false
	}

	cheapest := cheapestUnitPrice(o.Items())
	if itemsPrice.GreaterOrEqual(freeCheapestThreshold) {
		return NewDiscount("cheapest book free", cheapest), true
	}
	return NewDiscount("cheapest book half price", cheapest.Half()), true
}

func cheapestUnitPrice(items []order.Item) kernel.Money {
	cheapest := items[0].Book()
	for _, item := range items[1:] {
		candidate := item.Book()
		switch {
		case candidate.Price().LessThan(cheapest.Price()):
			cheapest = candidate
		case candidate.Price().IsEqual(cheapest.Price()) && candidate.ID().String() < cheapest.ID().String():
			cheapest = candidate
		}
	}
	return cheapest.Price()
}
