package order

import (
	"database/sql"

	"go.uber.org/zap"

	"pizzeria/internal/order/controller"
	"pizzeria/internal/order/repository"
	"pizzeria/internal/order/usecase"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.OrderController {
	orderRepo := repository.NewMySQLOrderRepository(db)

	return controller.NewOrderController(
		usecase.NewCreateOrderUseCase(orderRepo, logger),
		usecase.NewUpdatePaymentUseCase(orderRepo, logger),
		usecase.NewConfirmPaymentUseCase(orderRepo, logger),
		usecase.NewManageOrdersUseCase(orderRepo, logger),
		logger,
	)
}
