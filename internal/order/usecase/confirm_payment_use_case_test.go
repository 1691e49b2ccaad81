package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pizzeria/internal/domain"
	apperrors "pizzeria/internal/errors"
)

func confirmableOrder(id int, token string) *domain.Order {
	order := pendingOrder(id)
	order.ConfirmationToken = &token
	return order
}

func TestConfirmPayment_MissingFields(t *testing.T) {
	uc := NewConfirmPaymentUseCase(&mockOrderRepository{}, zap.NewNop())

	err := uc.ConfirmPayment(context.Background(), 1, ConfirmPaymentRequest{})
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Len(t, ve.Details, 2)
}

func TestConfirmPayment_OrderNotFound(t *testing.T) {
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*domain.Order, error) {
			return nil, apperrors.NewNotFoundError("order with id 5 not found")
		},
	}
	uc := NewConfirmPaymentUseCase(repo, zap.NewNop())

	err := uc.ConfirmPayment(context.Background(), 5, ConfirmPaymentRequest{
		TransactionID:     "txn-1",
		ConfirmationToken: "tok",
	})
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestConfirmPayment_WrongToken(t *testing.T) {
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*domain.Order, error) {
			return confirmableOrder(id, "real-token"), nil
		},
	}
	uc := NewConfirmPaymentUseCase(repo, zap.NewNop())

	err := uc.ConfirmPayment(context.Background(), 1, ConfirmPaymentRequest{
		TransactionID:     "txn-1",
		ConfirmationToken: "guessed-token",
	})
	_, ok := apperrors.IsAuthError(err)
	assert.True(t, ok)
}

func TestConfirmPayment_OrderWithoutToken(t *testing.T) {
	// COD orders never get a token; the id alone must not confirm anything.
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*domain.Order, error) {
			return pendingOrder(id), nil
		},
	}
	uc := NewConfirmPaymentUseCase(repo, zap.NewNop())

	err := uc.ConfirmPayment(context.Background(), 1, ConfirmPaymentRequest{
		TransactionID:     "txn-1",
		ConfirmationToken: "anything",
	})
	_, ok := apperrors.IsAuthError(err)
	assert.True(t, ok)
}

func TestConfirmPayment_AlreadySettled(t *testing.T) {
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*domain.Order, error) {
			order := confirmableOrder(id, "real-token")
			order.PaymentStatus = domain.PaymentPaid
			return order, nil
		},
	}
	uc := NewConfirmPaymentUseCase(repo, zap.NewNop())

	err := uc.ConfirmPayment(context.Background(), 1, ConfirmPaymentRequest{
		TransactionID:     "txn-2",
		ConfirmationToken: "real-token",
	})
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestConfirmPayment_Success(t *testing.T) {
	var gotStatus string
	var gotTx *string
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*domain.Order, error) {
			return confirmableOrder(id, "real-token"), nil
		},
		UpdatePaymentFunc: func(ctx context.Context, id int, paymentStatus string, transactionID, fulfillmentStatus *string) error {
			gotStatus = paymentStatus
			gotTx = transactionID
			return nil
		},
	}
	uc := NewConfirmPaymentUseCase(repo, zap.NewNop())

	err := uc.ConfirmPayment(context.Background(), 1, ConfirmPaymentRequest{
		TransactionID:     "txn-42",
		ConfirmationToken: "real-token",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentPaid, gotStatus)
	require.NotNil(t, gotTx)
	assert.Equal(t, "txn-42", *gotTx)
}
