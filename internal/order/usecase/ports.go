package usecase

import (
	"context"

	"pizzeria/internal/domain"
)

type OrderRepository interface {
	Insert(ctx context.Context, order domain.Order) (int, error)
	List(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	UpdatePayment(ctx context.Context, id int, paymentStatus string, transactionID, fulfillmentStatus *string) error
	Delete(ctx context.Context, id int) error
}
