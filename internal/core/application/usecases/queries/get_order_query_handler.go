package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/domain/model/recipient"
	"bookstore/internal/core/domain/services"
	"bookstore/internal/pkg/errs"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database and prices
// it with the domain price service.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	response, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    log.Printf("Order %s does not exist", orderID)
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the priced order view.
// Returns an ObjectNotFoundError when no order exists under the ID.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row, err := loadOrderRow(ctx, h.db, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	return assembleOrderResponse(ctx, h.db, row)
}

// orderRow is the raw orders table projection shared by the query handlers.
type orderRow struct {
	id          uuid.UUID
	recipientID uuid.UUID
	delivery    int
	status      int
	createdAt   time.Time
}

func loadOrderRow(ctx context.Context, db *gorm.DB, orderID kernel.UUID) (orderRow, error) {
	sqlStr, args, err := goqu.Dialect("postgres").
		From("orders").
		Select("id", "recipient_id", "delivery", "status", "created_at").
		Where(goqu.C("id").Eq(orderID.Bytes())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return orderRow{}, err
	}

	var row orderRow
	err = db.WithContext(ctx).Raw(sqlStr, args...).Row().
		Scan(&row.id, &row.recipientID, &row.delivery, &row.status, &row.createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return orderRow{}, errs.NewObjectNotFoundError("orderID", orderID.String())
	}
	if err != nil {
		return orderRow{}, err
	}

	return row, nil
}

func loadRecipient(ctx context.Context, db *gorm.DB, recipientID uuid.UUID) (*recipient.Recipient, error) {
	sqlStr, args, err := goqu.Dialect("postgres").
		From("recipients").
		Select("id", "email", "name", "phone", "street", "city", "zip_code").
		Where(goqu.C("id").Eq(recipientID)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var id uuid.UUID
	var email, name, phone, street, city, zipCode string
	err = db.WithContext(ctx).Raw(sqlStr, args...).Row().
		Scan(&id, &email, &name, &phone, &street, &city, &zipCode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("recipientID", recipientID.String())
	}
	if err != nil {
		return nil, err
	}

	rcptID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	return recipient.RestoreRecipient(rcptID, email, name, phone, street, city, zipCode)
}

func loadItems(ctx context.Context, db *gorm.DB, orderID uuid.UUID) ([]order.Item, error) {
	sqlStr, args, err := goqu.Dialect("postgres").
		From(goqu.T("order_items").As("i")).
		Join(goqu.T("books").As("b"), goqu.On(goqu.I("b.id").Eq(goqu.I("i.book_id")))).
		Select("b.id", "b.title", "b.year", "b.price", "b.available", "i.quantity").
		Where(goqu.I("i.order_id").Eq(orderID)).
		Order(goqu.I("i.id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, err
	}

	rows, err := db.WithContext(ctx).Raw(sqlStr, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Lines for the same book must share one aggregate instance, matching
	// the write side.
	books := make(map[uuid.UUID]*book.Book)
	items := make([]order.Item, 0)

	for rows.Next() {
		var bookID uuid.UUID
		var title string
		var year, available, quantity int
		var price decimal.Decimal

		if err = rows.Scan(&bookID, &title, &year, &price, &available, &quantity); err != nil {
			return nil, err
		}

		b, ok := books[bookID]
		if !ok {
			id, idErr := kernel.UUIDFromBytes(bookID[:])
			if idErr != nil {
				return nil, idErr
			}
			b, err = book.RestoreBook(id, title, year, kernel.NewMoneyFromDecimal(price), available)
			if err != nil {
				return nil, err
			}
			books[bookID] = b
		}

		item, itemErr := order.NewItem(b, quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// assembleOrderResponse rebuilds the order aggregate from its rows and prices
// it. Pricing at read time keeps the view aligned with the current catalog.
func assembleOrderResponse(ctx context.Context, db *gorm.DB, row orderRow) (OrderResponse, error) {
	rcpt, err := loadRecipient(ctx, db, row.recipientID)
	if err != nil {
		return OrderResponse{}, err
	}

	items, err := loadItems(ctx, db, row.id)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(row.id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	theOrder, err := order.RestoreOrder(
		orderID, rcpt, order.Delivery(row.delivery), items, order.Status(row.status), row.createdAt)
	if err != nil {
		return OrderResponse{}, err
	}

	price, err := services.NewPriceService().CalculatePrice(theOrder)
	if err != nil {
		return OrderResponse{}, err
	}

	itemResponses := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, OrderItemResponse{
			BookID:    item.Book().ID(),
			Title:     item.Book().Title(),
			UnitPrice: item.Book().Price(),
			Quantity:  item.Quantity(),
			LinePrice: item.Book().Price().MulInt(item.Quantity()),
		})
	}

	discountResponses := make([]DiscountResponse, 0, len(price.Discounts()))
	for _, discount := range price.Discounts() {
		discountResponses = append(discountResponses, DiscountResponse{
			Name:   discount.Name(),
			Amount: discount.Amount(),
		})
	}

	return OrderResponse{
		ID:        theOrder.ID(),
		Status:    theOrder.Status(),
		Delivery:  theOrder.Delivery(),
		CreatedAt: theOrder.CreatedAt(),
		Recipient: RecipientResponse{
			ID:      rcpt.ID(),
			Email:   rcpt.Email(),
			Name:    rcpt.Name(),
			Phone:   rcpt.Phone(),
			Street:  rcpt.Street(),
			City:    rcpt.City(),
			ZipCode: rcpt.ZipCode(),
		},
		Items:         itemResponses,
		ItemsPrice:    price.ItemsPrice(),
		DeliveryPrice: price.DeliveryPrice(),
		Discounts:     discountResponses,
		FinalPrice:    price.FinalPrice(),
	}, nil
}
