package usecase

import (
	"context"

	"go.uber.org/zap"

	"pizzeria/internal/domain"
)

// ManageOrdersUseCase covers the admin read/delete side of the order book.
type ManageOrdersUseCase struct {
	orderRepo OrderRepository
	logger    *zap.Logger
}

func NewManageOrdersUseCase(orderRepo OrderRepository, logger *zap.Logger) *ManageOrdersUseCase {
	return &ManageOrdersUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *ManageOrdersUseCase) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return uc.orderRepo.List(ctx)
}

// DeleteOrder removes an order permanently. There is no soft delete and no
// audit trail.
func (uc *ManageOrdersUseCase) DeleteOrder(ctx context.Context, orderID int) error {
	if err := uc.orderRepo.Delete(ctx, orderID); err != nil {
		return err
	}
	uc.logger.Info("order deleted", zap.Int("orderId", orderID))
	return nil
}
