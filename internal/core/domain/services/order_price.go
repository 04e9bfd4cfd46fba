package services

import (
	"bookstore/internal/core/domain/model/kernel"
)

// Discount is a single applied discount: a human-readable rule name and the
// amount it subtracts from the order total.
type Discount struct {
	name   string
	amount kernel.Money
}

// NewDiscount creates an applied discount entry.
func NewDiscount(name string, amount kernel.Money) Discount {
	return Discount{name: name, amount: amount}
}

// Name returns the name of the rule that produced the discount.
func (d Discount) Name() string {
	return d.name
}

// Amount returns the discounted amount.
func (d Discount) Amount() kernel.Money {
	return d.amount
}

// OrderPrice is the value object produced by the price service. It breaks the
// final price down into the item subtotal, the delivery fee, and the list of
// discounts applied in rule order.
type OrderPrice struct {
	itemsPrice    kernel.Money
	deliveryPrice kernel.Money
	discounts     []Discount
}

// NewOrderPrice assembles a price breakdown.
func NewOrderPrice(itemsPrice, deliveryPrice kernel.Money, discounts []Discount) OrderPrice {
	return OrderPrice{
		itemsPrice:    itemsPrice,
		deliveryPrice: deliveryPrice,
		discounts:     discounts,
	}
}

// ItemsPrice returns the sum of unit price times quantity over all items.
func (p OrderPrice) ItemsPrice() kernel.Money {
	return p.itemsPrice
}

// DeliveryPrice returns the fee for the chosen delivery method before discounts.
func (p OrderPrice) DeliveryPrice() kernel.Money {
	return p.deliveryPrice
}

// Discounts returns the applied discounts in the order they were evaluated.
func (p OrderPrice) Discounts() []Discount {
	return p.discounts
}

// DiscountsTotal returns the sum of all applied discounts.
func (p OrderPrice) DiscountsTotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, d := range p.discounts {
		total = total.Add(d.amount)
	}
	return total
}

// FinalPrice returns items price plus delivery fee minus discounts, rounded
// to two fractional digits.
func (p OrderPrice) FinalPrice() kernel.Money {
	return p.itemsPrice.Add(p.deliveryPrice).Sub(p.DiscountsTotal()).Round2()
}
