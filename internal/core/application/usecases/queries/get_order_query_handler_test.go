package queries_test

import (
	"context"
	"testing"
	"time"

	"bookstore/internal/adapters/out/postgres/bookrepo"
	"bookstore/internal/adapters/out/postgres/orderrepo"
	"bookstore/internal/adapters/out/postgres/recipientrepo"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/domain/model/recipient"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// OrderQueriesTestSuite covers both order query handlers against a real
// PostgreSQL database.
type OrderQueriesTestSuite struct {
	suite.Suite
	container     *postgres.PostgresContainer
	db            *gorm.DB
	getHandler    queries.GetOrderQueryHandler
	listHandler   queries.GetAllOrdersQueryHandler
	orderRepo     *orderrepo.GormOrderRepository
	bookRepo      *bookrepo.GormBookRepository
	recipientRepo *recipientrepo.GormRecipientRepository
}

func (suite *OrderQueriesTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&bookrepo.BookDTO{},
		&recipientrepo.RecipientDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	suite.Require().NoError(err)

	suite.getHandler = queries.NewGetOrderQueryHandler(db)
	suite.listHandler = queries.NewGetAllOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, mockAggregateTracker{})
	suite.bookRepo = bookrepo.NewGormBookRepository(db, mockAggregateTracker{})
	suite.recipientRepo = recipientrepo.NewGormRecipientRepository(db, mockAggregateTracker{})
}

func (suite *OrderQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderQueriesTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_items, orders, recipients, books CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *OrderQueriesTestSuite) TestHandle_SingleBookCourierOrder_PricesWithDeliveryFee() {
	ctx := context.Background()
	b := suite.createBook("49.90", 10)
	o := suite.createOrder(b, 1, order.Courier)

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	response, err := suite.getHandler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(response.ID.IsEqual(o.ID()))
	suite.Equal(order.New, response.Status)
	suite.Equal(order.Courier, response.Delivery)
	suite.Equal("marek@example.org", response.Recipient.Email)
	suite.Require().Len(response.Items, 1)
	suite.Equal("49.90", response.ItemsPrice.String())
	suite.Equal("9.90", response.DeliveryPrice.String())
	suite.Empty(response.Discounts)
	suite.Equal("59.80", response.FinalPrice.String())
}

func (suite *OrderQueriesTestSuite) TestHandle_MidSizeOrder_GetsFreeDeliveryAndHalfCheapest() {
	ctx := context.Background()
	b := suite.createBook("49.90", 10)
	o := suite.createOrder(b, 5, order.Courier)

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	response, err := suite.getHandler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("249.50", response.ItemsPrice.String())
	suite.Require().Len(response.Discounts, 2)
	suite.Equal("9.90", response.Discounts[0].Amount.String())
	suite.Equal("24.95", response.Discounts[1].Amount.String())
	suite.Equal("224.55", response.FinalPrice.String())
}

func (suite *OrderQueriesTestSuite) TestHandle_PriceReflectsCurrentBookPrice() {
	ctx := context.Background()
	b := suite.createBook("49.90", 10)
	o := suite.createOrder(b, 1, order.SelfPickup)

	// Reprice the book after placement.
	err := suite.db.Exec("UPDATE books SET price = 60.00 WHERE id = ?", b.ID().Bytes()).Error
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	response, err := suite.getHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("60.00", response.FinalPrice.String())
}

func (suite *OrderQueriesTestSuite) TestHandle_NonExistentOrder_ReturnsNotFoundError() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.getHandler.Handle(context.Background(), queries.GetOrderQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetOrderQueryIsNotConstructed)
}

func (suite *OrderQueriesTestSuite) TestHandleAll_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.listHandler.Handle(context.Background(), queries.NewGetAllOrdersQuery())
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *OrderQueriesTestSuite) TestHandleAll_ReturnsAllOrdersOldestFirst() {
	ctx := context.Background()
	b := suite.createBook("49.90", 20)

	first := suite.createOrderAt(b, time.Now().UTC().Add(-time.Hour))
	second := suite.createOrderAt(b, time.Now().UTC())

	result, err := suite.listHandler.Handle(ctx, queries.NewGetAllOrdersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(first.ID()))
	suite.True(result[1].ID.IsEqual(second.ID()))
}

func (suite *OrderQueriesTestSuite) TestHandleAll_InvalidQuery_ReturnsError() {
	_, err := suite.listHandler.Handle(context.Background(), queries.GetAllOrdersQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetAllOrdersQueryIsNotConstructed)
}

func (suite *OrderQueriesTestSuite) createBook(price string, available int) *book.Book {
	unitPrice, err := kernel.NewMoneyFromString(price)
	suite.Require().NoError(err)
	b, err := book.NewBook(kernel.NewUUID(), "Effective Java", 2008, unitPrice, available)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.bookRepo.Add(context.Background(), b))
	return b
}

func (suite *OrderQueriesTestSuite) createOrder(b *book.Book, quantity int, delivery order.Delivery) *order.Order {
	rcpt, err := recipient.NewRecipient(
		kernel.NewUUID(), "marek@example.org", "Marek Nowak", "", "", "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.recipientRepo.Add(context.Background(), rcpt))

	item, err := order.NewItem(b, quantity)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), rcpt, delivery, []order.Item{item})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *OrderQueriesTestSuite) createOrderAt(b *book.Book, createdAt time.Time) *order.Order {
	rcpt, err := recipient.NewRecipient(
		kernel.NewUUID(), kernel.NewUUID().String()+"@example.org", "Marek Nowak", "", "", "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.recipientRepo.Add(context.Background(), rcpt))

	item, err := order.NewItem(b, 1)
	suite.Require().NoError(err)
	o, err := order.RestoreOrder(
		kernel.NewUUID(), rcpt, order.SelfPickup, []order.Item{item}, order.New, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func TestOrderQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}
