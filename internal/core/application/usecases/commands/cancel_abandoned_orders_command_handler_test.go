package commands_test

import (
	"testing"
	"time"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelAbandonedOrdersCommandHandler_Handle_CancelsAndRestocks(t *testing.T) {
	ctx := t.Context()
	b := newTestBook(t, 10)
	abandoned := newStoredOrder(t, b, 4)
	cmd, err := commands.NewCancelAbandonedOrdersCommand(30 * time.Minute)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	bookRepo := new(MockBookRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllNewCreatedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{abandoned}, nil).Once(),
		uow.On("BookRepository").Return(bookRepo).Once(),
		bookRepo.On("UpdateAll", mock.Anything, []*book.Book{b}).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, abandoned).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelAbandonedOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 1, cancelled)
	require.Equal(t, order.Cancelled, abandoned.Status())
	require.Equal(t, 10, b.Available())
	orderRepo.AssertExpectations(t)
	bookRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelAbandonedOrdersCommandHandler_Handle_NothingToCancel(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelAbandonedOrdersCommand(30 * time.Minute)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllNewCreatedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelAbandonedOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 0, cancelled)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelAbandonedOrdersCommand_RejectsNonPositivePeriod(t *testing.T) {
	_, err := commands.NewCancelAbandonedOrdersCommand(0)
	require.Error(t, err)

	_, err = commands.NewCancelAbandonedOrdersCommand(-time.Minute)
	require.Error(t, err)
}
