package usecase

import (
	"context"
	"crypto/subtle"

	"go.uber.org/zap"

	"pizzeria/internal/domain"
	apperrors "pizzeria/internal/errors"
)

type ConfirmPaymentRequest struct {
	TransactionID     string
	ConfirmationToken string
}

// ConfirmPaymentUseCase lets the order's submitter report an out-of-band
// payment without an admin session. Possession of the confirmation token
// issued at creation stands in for authentication; the sequential order id
// alone is never enough. The transaction id is recorded verbatim, without
// verification against any payment processor.
type ConfirmPaymentUseCase struct {
	orderRepo OrderRepository
	logger    *zap.Logger
}

func NewConfirmPaymentUseCase(orderRepo OrderRepository, logger *zap.Logger) *ConfirmPaymentUseCase {
	return &ConfirmPaymentUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *ConfirmPaymentUseCase) ConfirmPayment(ctx context.Context, orderID int, req ConfirmPaymentRequest) error {
	var details []apperrors.ValidationDetail
	if req.TransactionID == "" {
		details = append(details, apperrors.ValidationDetail{Field: "transactionId", Message: "transactionId is required"})
	}
	if req.ConfirmationToken == "" {
		details = append(details, apperrors.ValidationDetail{Field: "confirmationToken", Message: "confirmationToken is required"})
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	if order.ConfirmationToken == nil ||
		subtle.ConstantTimeCompare([]byte(*order.ConfirmationToken), []byte(req.ConfirmationToken)) != 1 {
		return apperrors.NewAuthError("unauthorized")
	}

	if domain.IsPaymentSettled(order.PaymentStatus) {
		return apperrors.NewValidationError("order is already settled", apperrors.ValidationDetail{
			Field:   "paymentStatus",
			Message: "payment has already been confirmed for this order",
		})
	}

	transactionID := req.TransactionID
	if err := uc.orderRepo.UpdatePayment(ctx, orderID, domain.PaymentPaid, &transactionID, order.FulfillmentStatus); err != nil {
		return err
	}

	uc.logger.Info("order payment confirmed", zap.Int("orderId", orderID))
	return nil
}
