package catalog

import (
	"database/sql"

	"go.uber.org/zap"

	"pizzeria/internal/catalog/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLPizzaRepository(db)
	return NewController(repo, logger)
}
