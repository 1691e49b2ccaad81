package repository

import (
	"context"
	"database/sql"
	"fmt"

	"pizzeria/internal/domain"
	apperrors "pizzeria/internal/errors"
)

type MySQLMessageRepository struct {
	db *sql.DB
}

func NewMySQLMessageRepository(db *sql.DB) *MySQLMessageRepository {
	return &MySQLMessageRepository{db: db}
}

func (r *MySQLMessageRepository) List(ctx context.Context) ([]domain.Message, error) {
	query := `
		SELECT id, name, email, message, created_at
		FROM messages
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreError("querying messages", err)
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, apperrors.NewStoreError("scanning message row", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("iterating message rows", err)
	}

	return messages, nil
}

func (r *MySQLMessageRepository) Insert(ctx context.Context, msg domain.Message) (int, error) {
	query := `INSERT INTO messages (name, email, message) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, msg.Name, msg.Email, msg.Message)
	if err != nil {
		return 0, apperrors.NewStoreError("inserting message", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, apperrors.NewStoreError("getting inserted message id", err)
	}

	return int(id), nil
}

func (r *MySQLMessageRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM messages WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.NewStoreError("deleting message", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewStoreError("getting rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("message with id %d not found", id))
	}

	return nil
}
