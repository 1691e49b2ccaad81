package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"pizzeria/internal/domain"
	apperrors "pizzeria/internal/errors"
)

type Controller struct {
	repo   Repository
	logger *zap.Logger
}

func NewController(repo Repository, logger *zap.Logger) *Controller {
	return &Controller{
		repo:   repo,
		logger: logger,
	}
}

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	pizzas, err := c.repo.List(r.Context())
	if err != nil {
		c.logger.Error("listing pizzas failed", zap.Error(err))
		c.writeInternalError(w)
		return
	}

	dtos := make([]PizzaDTO, len(pizzas))
	for i, p := range pizzas {
		dtos[i] = PizzaDTO{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price,
			Image: p.Image,
		}
	}

	c.writeJSON(w, http.StatusOK, dtos)
}

func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreatePizzaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.validateCreateRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	id, err := c.repo.Insert(r.Context(), domain.Pizza{
		Name:  req.Name,
		Price: req.Price,
		Image: req.Image,
	})
	if err != nil {
		c.logger.Error("inserting pizza failed", zap.Error(err))
		c.writeInternalError(w)
		return
	}

	c.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"id":      id,
	})
}

func (c *Controller) HandleDelete(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		c.writeValidationError(w, "invalid id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return
	}

	if err := c.repo.Delete(r.Context(), id); err != nil {
		if nfe, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, map[string]interface{}{
				"success": false,
				"error":   nfe.Message,
			})
			return
		}
		c.logger.Error("deleting pizza failed", zap.Error(err), zap.Int("pizzaId", id))
		c.writeInternalError(w)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (c *Controller) validateCreateRequest(req CreatePizzaRequest) error {
	var details []apperrors.ValidationDetail

	if req.Name == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if req.Price <= 0 {
		details = append(details, apperrors.ValidationDetail{Field: "price", Message: "price must be a positive number"})
	}
	if req.Image == "" {
		details = append(details, apperrors.ValidationDetail{Field: "image", Message: "image is required"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeInternalError(w http.ResponseWriter) {
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
