package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"pizzeria/internal/domain"
	apperrors "pizzeria/internal/errors"
	"pizzeria/internal/order/usecase"
)

type CreateOrderUseCase interface {
	CreateOrder(ctx context.Context, req usecase.CreateOrderRequest) (*usecase.CreateOrderResult, error)
}

type UpdatePaymentUseCase interface {
	UpdatePayment(ctx context.Context, orderID int, req usecase.UpdatePaymentRequest) error
}

type ConfirmPaymentUseCase interface {
	ConfirmPayment(ctx context.Context, orderID int, req usecase.ConfirmPaymentRequest) error
}

type ManageOrdersUseCase interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	DeleteOrder(ctx context.Context, orderID int) error
}

type OrderController struct {
	createUC  CreateOrderUseCase
	updateUC  UpdatePaymentUseCase
	confirmUC ConfirmPaymentUseCase
	manageUC  ManageOrdersUseCase
	logger    *zap.Logger
}

func NewOrderController(
	createUC CreateOrderUseCase,
	updateUC UpdatePaymentUseCase,
	confirmUC ConfirmPaymentUseCase,
	manageUC ManageOrdersUseCase,
	logger *zap.Logger,
) *OrderController {
	return &OrderController{
		createUC:  createUC,
		updateUC:  updateUC,
		confirmUC: confirmUC,
		manageUC:  manageUC,
		logger:    logger,
	}
}

type createOrderRequest struct {
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	Items         json.RawMessage `json:"items"`
	Total         float64         `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
}

type createOrderResponse struct {
	OrderID           int    `json:"orderId"`
	PaymentRequired   bool   `json:"paymentRequired"`
	ConfirmationToken string `json:"confirmationToken,omitempty"`
}

type orderDTO struct {
	ID                int             `json:"id"`
	Name              string          `json:"name"`
	Phone             string          `json:"phone"`
	Address           string          `json:"address"`
	Items             json.RawMessage `json:"items"`
	Total             float64         `json:"total"`
	PaymentMethod     string          `json:"paymentMethod"`
	PaymentStatus     string          `json:"paymentStatus"`
	TransactionID     *string         `json:"transactionId,omitempty"`
	FulfillmentStatus *string         `json:"fulfillmentStatus,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

type updatePaymentRequest struct {
	PaymentStatus     *string `json:"paymentStatus"`
	TransactionID     *string `json:"transactionId"`
	FulfillmentStatus *string `json:"fulfillmentStatus"`
}

type confirmPaymentRequest struct {
	TransactionID     string `json:"transactionId"`
	ConfirmationToken string `json:"confirmationToken"`
}

func (c *OrderController) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	result, err := c.createUC.CreateOrder(r.Context(), usecase.CreateOrderRequest{
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		Items:         req.Items,
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusCreated, createOrderResponse{
		OrderID:           result.OrderID,
		PaymentRequired:   result.PaymentRequired,
		ConfirmationToken: result.ConfirmationToken,
	})
}

func (c *OrderController) HandleList(w http.ResponseWriter, r *http.Request) {
	orders, err := c.manageUC.ListOrders(r.Context())
	if err != nil {
		c.handleError(w, err)
		return
	}

	dtos := make([]orderDTO, len(orders))
	for i, o := range orders {
		dtos[i] = orderDTO{
			ID:                o.ID,
			Name:              o.Name,
			Phone:             o.Phone,
			Address:           o.Address,
			Items:             o.Items,
			Total:             o.Total,
			PaymentMethod:     o.PaymentMethod,
			PaymentStatus:     o.PaymentStatus,
			TransactionID:     o.TransactionID,
			FulfillmentStatus: o.FulfillmentStatus,
			CreatedAt:         o.CreatedAt,
		}
	}

	c.writeJSON(w, http.StatusOK, dtos)
}

func (c *OrderController) HandleUpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := c.orderID(w, r)
	if !ok {
		return
	}

	var req updatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	err := c.updateUC.UpdatePayment(r.Context(), id, usecase.UpdatePaymentRequest{
		PaymentStatus:     req.PaymentStatus,
		TransactionID:     req.TransactionID,
		FulfillmentStatus: req.FulfillmentStatus,
	})
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (c *OrderController) HandleConfirmPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := c.orderID(w, r)
	if !ok {
		return
	}

	var req confirmPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	err := c.confirmUC.ConfirmPayment(r.Context(), id, usecase.ConfirmPaymentRequest{
		TransactionID:     req.TransactionID,
		ConfirmationToken: req.ConfirmationToken,
	})
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (c *OrderController) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := c.orderID(w, r)
	if !ok {
		return
	}

	if err := c.manageUC.DeleteOrder(r.Context(), id); err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (c *OrderController) orderID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		c.writeValidationError(w, "invalid id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return 0, false
	}
	return id, true
}

func (c *OrderController) handleError(w http.ResponseWriter, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}
	if _, ok := apperrors.IsAuthError(err); ok {
		c.writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"success": false,
			"error":   "Unauthorized",
		})
		return
	}
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false,
			"error":   nfe.Message,
		})
		return
	}

	c.logger.Error("order operation failed", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
