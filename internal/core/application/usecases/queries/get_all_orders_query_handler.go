package queries

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves every order from the database, priced
// with the domain price service. Results are sorted by creation time so the
// oldest orders come first.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the priced view of every order.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlStr, args, err := goqu.Dialect("postgres").
		From("orders").
		Select("id", "recipient_id", "delivery", "status", "created_at").
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(sqlStr, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orderRows := make([]orderRow, 0)
	for rows.Next() {
		var row orderRow
		if err = rows.Scan(&row.id, &row.recipientID, &row.delivery, &row.status, &row.createdAt); err != nil {
			return nil, err
		}
		orderRows = append(orderRows, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0, len(orderRows))
	for _, row := range orderRows {
		response, assembleErr := assembleOrderResponse(ctx, h.db, row)
		if assembleErr != nil {
			return nil, assembleErr
		}
		orders = append(orders, response)
	}

	return orders, nil
}
