package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"pizzeria/internal/domain"
	apperrors "pizzeria/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

func (r *MySQLOrderRepository) Insert(ctx context.Context, order domain.Order) (int, error) {
	query := `
		INSERT INTO orders (name, phone, address, items, total, payment_method, payment_status, confirmation_token)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		order.Name, order.Phone, order.Address, string(order.Items),
		order.Total, order.PaymentMethod, order.PaymentStatus, order.ConfirmationToken,
	)
	if err != nil {
		return 0, apperrors.NewStoreError("inserting order", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, apperrors.NewStoreError("getting inserted order id", err)
	}

	return int(id), nil
}

func (r *MySQLOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT id, name, phone, address, items, total, payment_method,
		       payment_status, transaction_id, fulfillment_status, confirmation_token, created_at
		FROM orders
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreError("querying orders", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, apperrors.NewStoreError("scanning order row", err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("iterating order rows", err)
	}

	return orders, nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `
		SELECT id, name, phone, address, items, total, payment_method,
		       payment_status, transaction_id, fulfillment_status, confirmation_token, created_at
		FROM orders
		WHERE id = ?
	`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewStoreError("querying order by id", err)
	}

	return order, nil
}

// UpdatePayment rewrites the three mutable fields of an order. Callers are
// expected to have loaded the order first; affected-row counts are not
// checked because MySQL reports zero for updates that change nothing.
func (r *MySQLOrderRepository) UpdatePayment(ctx context.Context, id int, paymentStatus string, transactionID, fulfillmentStatus *string) error {
	query := `
		UPDATE orders
		SET payment_status = ?, transaction_id = ?, fulfillment_status = ?
		WHERE id = ?
	`

	if _, err := r.db.ExecContext(ctx, query, paymentStatus, transactionID, fulfillmentStatus, id); err != nil {
		return apperrors.NewStoreError("updating order payment", err)
	}

	return nil
}

func (r *MySQLOrderRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM orders WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.NewStoreError("deleting order", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewStoreError("getting rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	return nil
}

func scanOrder(scan func(dest ...any) error) (*domain.Order, error) {
	var order domain.Order
	var items []byte

	err := scan(
		&order.ID, &order.Name, &order.Phone, &order.Address, &items,
		&order.Total, &order.PaymentMethod, &order.PaymentStatus,
		&order.TransactionID, &order.FulfillmentStatus, &order.ConfirmationToken,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	order.Items = json.RawMessage(items)
	return &order, nil
}
