package usecase

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pizzeria/internal/domain"
	apperrors "pizzeria/internal/errors"
)

type CreateOrderRequest struct {
	Name          string
	Phone         string
	Address       string
	Items         json.RawMessage
	Total         float64
	PaymentMethod string
}

type CreateOrderResult struct {
	OrderID         int
	PaymentRequired bool
	// ConfirmationToken is issued once, only for orders that still owe a
	// payment confirmation. It is the possession proof for the public
	// confirm-payment endpoint and is never exposed again.
	ConfirmationToken string
}

type CreateOrderUseCase struct {
	orderRepo OrderRepository
	logger    *zap.Logger
}

func NewCreateOrderUseCase(orderRepo OrderRepository, logger *zap.Logger) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResult, error) {
	if err := validateCreateOrderRequest(req); err != nil {
		return nil, err
	}

	order := domain.Order{
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		Items:         req.Items,
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: domain.InitialPaymentStatus(req.PaymentMethod),
	}

	result := CreateOrderResult{
		PaymentRequired: domain.PaymentRequired(req.PaymentMethod),
	}

	if result.PaymentRequired {
		token := uuid.New().String()
		order.ConfirmationToken = &token
		result.ConfirmationToken = token
	}

	id, err := uc.orderRepo.Insert(ctx, order)
	if err != nil {
		return nil, err
	}

	result.OrderID = id
	uc.logger.Info("order created",
		zap.Int("orderId", id),
		zap.String("paymentMethod", order.PaymentMethod),
		zap.String("paymentStatus", order.PaymentStatus),
	)

	return &result, nil
}

func validateCreateOrderRequest(req CreateOrderRequest) error {
	var details []apperrors.ValidationDetail

	if req.Name == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if req.Phone == "" {
		details = append(details, apperrors.ValidationDetail{Field: "phone", Message: "phone is required"})
	}
	if req.Address == "" {
		details = append(details, apperrors.ValidationDetail{Field: "address", Message: "address is required"})
	}
	if msg := validateItems(req.Items); msg != "" {
		details = append(details, apperrors.ValidationDetail{Field: "items", Message: msg})
	}
	if req.Total <= 0 {
		details = append(details, apperrors.ValidationDetail{Field: "total", Message: "total must be a positive number"})
	}
	if req.PaymentMethod == "" {
		details = append(details, apperrors.ValidationDetail{Field: "paymentMethod", Message: "paymentMethod is required"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

// validateItems only requires a non-empty JSON array; the shape of each
// item belongs to the storefront and is stored opaquely. Returns an empty
// string when the items are acceptable.
func validateItems(items json.RawMessage) string {
	if len(items) == 0 {
		return "items must be a non-empty array"
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(items, &elements); err != nil {
		return "items must be a JSON array"
	}
	if len(elements) == 0 {
		return "items must be a non-empty array"
	}
	return ""
}
