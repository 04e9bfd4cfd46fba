package commands

import (
	"context"
	"time"

	"bookstore/internal/core/domain/model/order"
)

// CancelAbandonedOrdersCommandHandler cancels orders whose payment period has
// run out. Each abandoned order is cancelled and its reserved copies are
// returned to the inventory.
type CancelAbandonedOrdersCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewCancelAbandonedOrdersCommandHandler creates a handler for the abandoned
// orders cleanup.
func NewCancelAbandonedOrdersCommandHandler(uowFactory StockUoWFactory) CancelAbandonedOrdersCommandHandler {
	return CancelAbandonedOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels every order still in New status created before the payment
// deadline. All cancellations and restocks of one run commit together.
// Returns the number of orders cancelled.
func (h CancelAbandonedOrdersCommandHandler) Handle(ctx context.Context, cmd CancelAbandonedOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	deadline := time.Now().UTC().Add(-cmd.PaymentPeriod())
	abandoned, err := orderRepo.GetAllNewCreatedBefore(ctx, deadline)
	if err != nil {
		return 0, err
	}

	for _, theOrder := range abandoned {
		if _, err = theOrder.UpdateStatus(order.Cancelled); err != nil {
			return 0, err
		}
		if err = restockOrder(ctx, uow, theOrder); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, theOrder); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(abandoned), nil
}
