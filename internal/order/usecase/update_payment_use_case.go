package usecase

import (
	"context"

	"go.uber.org/zap"

	"pizzeria/internal/domain"
	apperrors "pizzeria/internal/errors"
)

// UpdatePaymentRequest carries the admin-mutable order fields. Nil means
// "leave unchanged"; at least one field must be present.
type UpdatePaymentRequest struct {
	PaymentStatus     *string
	TransactionID     *string
	FulfillmentStatus *string
}

type UpdatePaymentUseCase struct {
	orderRepo OrderRepository
	logger    *zap.Logger
}

func NewUpdatePaymentUseCase(orderRepo OrderRepository, logger *zap.Logger) *UpdatePaymentUseCase {
	return &UpdatePaymentUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *UpdatePaymentUseCase) UpdatePayment(ctx context.Context, orderID int, req UpdatePaymentRequest) error {
	if req.PaymentStatus == nil && req.TransactionID == nil && req.FulfillmentStatus == nil {
		return apperrors.NewValidationError("nothing to update", apperrors.ValidationDetail{
			Field:   "body",
			Message: "at least one of paymentStatus, transactionId, fulfillmentStatus is required",
		})
	}

	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	paymentStatus := order.PaymentStatus
	if req.PaymentStatus != nil {
		if !domain.ValidPaymentStatus(*req.PaymentStatus) {
			return apperrors.NewValidationError("invalid payment status", apperrors.ValidationDetail{
				Field:   "paymentStatus",
				Message: "paymentStatus must be one of PENDING, PAID, COD",
			})
		}
		if !domain.CanTransitionPayment(order.PaymentStatus, *req.PaymentStatus) {
			return apperrors.NewValidationError("invalid payment transition", apperrors.ValidationDetail{
				Field:   "paymentStatus",
				Message: "a settled payment status cannot revert to PENDING",
			})
		}
		paymentStatus = *req.PaymentStatus
	}

	transactionID := order.TransactionID
	if req.TransactionID != nil {
		transactionID = req.TransactionID
	}

	fulfillmentStatus := order.FulfillmentStatus
	if req.FulfillmentStatus != nil {
		fulfillmentStatus = req.FulfillmentStatus
	}

	if err := uc.orderRepo.UpdatePayment(ctx, orderID, paymentStatus, transactionID, fulfillmentStatus); err != nil {
		return err
	}

	uc.logger.Info("order payment updated",
		zap.Int("orderId", orderID),
		zap.String("paymentStatus", paymentStatus),
	)
	return nil
}
