package message

import (
	"context"

	"pizzeria/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Message, error)
	Insert(ctx context.Context, msg domain.Message) (int, error)
	Delete(ctx context.Context, id int) error
}
