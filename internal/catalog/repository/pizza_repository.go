package repository

import (
	"context"
	"database/sql"
	"fmt"

	"pizzeria/internal/domain"
	apperrors "pizzeria/internal/errors"
)

type MySQLPizzaRepository struct {
	db *sql.DB
}

func NewMySQLPizzaRepository(db *sql.DB) *MySQLPizzaRepository {
	return &MySQLPizzaRepository{db: db}
}

func (r *MySQLPizzaRepository) List(ctx context.Context) ([]domain.Pizza, error) {
	query := `
		SELECT id, name, price, image, created_at
		FROM pizzas
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreError("querying pizzas", err)
	}
	defer rows.Close()

	pizzas := []domain.Pizza{}
	for rows.Next() {
		var p domain.Pizza
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.CreatedAt); err != nil {
			return nil, apperrors.NewStoreError("scanning pizza row", err)
		}
		pizzas = append(pizzas, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("iterating pizza rows", err)
	}

	return pizzas, nil
}

func (r *MySQLPizzaRepository) Insert(ctx context.Context, pizza domain.Pizza) (int, error) {
	query := `INSERT INTO pizzas (name, price, image) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, pizza.Name, pizza.Price, pizza.Image)
	if err != nil {
		return 0, apperrors.NewStoreError("inserting pizza", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, apperrors.NewStoreError("getting inserted pizza id", err)
	}

	return int(id), nil
}

func (r *MySQLPizzaRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM pizzas WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.NewStoreError("deleting pizza", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewStoreError("getting rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("pizza with id %d not found", id))
	}

	return nil
}
