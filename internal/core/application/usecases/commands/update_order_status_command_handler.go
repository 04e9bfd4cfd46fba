package commands

import (
	"context"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/order"
)

// UpdateOrderStatusResponse reports the outcome of a status change request.
// A request by an actor who may not manage the order is not an error: it is
// reported as an unsuccessful response so callers can render it as a denial
// rather than a failure.
type UpdateOrderStatusResponse struct {
	success   bool
	newStatus order.Status
	reason    string
}

func newSuccessResponse(newStatus order.Status) UpdateOrderStatusResponse {
	return UpdateOrderStatusResponse{success: true, newStatus: newStatus}
}

func newForbiddenResponse(reason string) UpdateOrderStatusResponse {
	return UpdateOrderStatusResponse{success: false, reason: reason}
}

// Success reports whether the status change was applied.
func (r UpdateOrderStatusResponse) Success() bool {
	return r.success
}

// NewStatus returns the order's status after a successful change.
func (r UpdateOrderStatusResponse) NewStatus() order.Status {
	return r.newStatus
}

// Reason explains a denial. Empty on success.
func (r UpdateOrderStatusResponse) Reason() string {
	return r.reason
}

// UpdateOrderStatusCommandHandler moves orders through their lifecycle.
// Transitions that revoke an order return the reserved copies to the
// inventory within the same transaction as the status change.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory)
//	response, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrInvalidTransition):
//	    log.Println("Transition not allowed from the current status")
//	case err != nil:
//	    log.Printf("Status update failed: %v", err)
//	case !response.Success():
//	    log.Printf("Denied: %s", response.Reason())
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status
// changes. Requires a StockUoWFactory because revocations write both the
// order and the book stock.
func NewUpdateOrderStatusCommandHandler(uowFactory StockUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
//
// The actor must be an administrator or the order's recipient; otherwise the
// order is left untouched and a forbidden response is returned. An invalid
// transition surfaces as an InvalidTransitionError from the order aggregate.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateOrderStatusCommand,
) (UpdateOrderStatusResponse, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateOrderStatusResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateOrderStatusResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	theOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return UpdateOrderStatusResponse{}, err
	}

	if !cmd.Actor().CanManage(theOrder.Recipient().Email()) {
		return newForbiddenResponse("only the order's recipient or an administrator may change its status"), nil
	}

	result, err := theOrder.UpdateStatus(cmd.NewStatus())
	if err != nil {
		return UpdateOrderStatusResponse{}, err
	}

	if result.Revoked() {
		if err = restockOrder(ctx, uow, theOrder); err != nil {
			return UpdateOrderStatusResponse{}, err
		}
	}

	if err = orderRepo.Update(ctx, theOrder); err != nil {
		return UpdateOrderStatusResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateOrderStatusResponse{}, err
	}

	return newSuccessResponse(result.Status()), nil
}

// restockOrder returns every line item's copies to the inventory and persists
// the mutated books. Items sharing a book share one aggregate instance, so
// the restocks accumulate before the single write.
func restockOrder(ctx context.Context, uow StockUoW, theOrder *order.Order) error {
	seen := make(map[string]*book.Book)
	books := make([]*book.Book, 0, len(theOrder.Items()))

	for _, item := range theOrder.Items() {
		if err := item.Book().Restock(item.Quantity()); err != nil {
			return err
		}
		if _, ok := seen[item.Book().ID().String()]; !ok {
			seen[item.Book().ID().String()] = item.Book()
			books = append(books, item.Book())
		}
	}

	return uow.BookRepository().UpdateAll(ctx, books)
}
