package message

import (
	"database/sql"

	"go.uber.org/zap"

	"pizzeria/internal/message/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLMessageRepository(db)
	return NewController(repo, logger)
}
