package catalog

import (
	"context"

	"pizzeria/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Pizza, error)
	Insert(ctx context.Context, pizza domain.Pizza) (int, error)
	Delete(ctx context.Context, id int) error
}
