package services

import (
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
)

// PriceService computes the price of an order. It is a stateless domain
// service holding the discount rules in their fixed evaluation order.
//
// The price of an order is never stored; callers invoke CalculatePrice on
// every read so the result always reflects the current book prices.
//
// Example:
//
//	priceService := services.NewPriceService()
//	price, err := priceService.CalculatePrice(o)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(price.FinalPrice())
type PriceService struct {
	strategies []DiscountStrategy
}

// NewPriceService creates a price service with the standard rule set:
// free delivery first, then the cheapest-book discount.
func NewPriceService() PriceService {
	return PriceService{
		strategies: []DiscountStrategy{
			DeliveryDiscount{},
			CheapestBookDiscount{},
		},
	}
}

// CalculatePrice produces the full price breakdown for an order:
// item subtotal, delivery fee for the chosen method, and every discount rule
// that applies, evaluated in the service's fixed sequence.
func (s PriceService) CalculatePrice(o *order.Order) (OrderPrice, error) {
	if err := o.Validate(); err != nil {
		return OrderPrice{}, err
	}

	itemsPrice := kernel.ZeroMoney()
	for _, item := range o.Items() {
		itemsPrice = itemsPrice.Add(item.Book().Price().MulInt(item.Quantity()))
	}

	deliveryPrice := deliveryPriceFor(o.Delivery())

	var discounts []Discount
	for _, strategy := range s.strategies {
		if discount, ok := strategy.Calculate(o, itemsPrice, deliveryPrice); ok {
			discounts = append(discounts, discount)
		}
	}

	return NewOrderPrice(itemsPrice, deliveryPrice, discounts), nil
}

func deliveryPriceFor(delivery order.Delivery) kernel.Money {
	if delivery == order.Courier {
		return courierDeliveryPrice
	}
	return kernel.ZeroMoney()
}
