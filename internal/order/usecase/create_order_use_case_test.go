package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pizzeria/internal/domain"
	apperrors "pizzeria/internal/errors"
)

type mockOrderRepository struct {
	InsertFunc        func(ctx context.Context, order domain.Order) (int, error)
	ListFunc          func(ctx context.Context) ([]domain.Order, error)
	FindByIDFunc      func(ctx context.Context, id int) (*domain.Order, error)
	UpdatePaymentFunc func(ctx context.Context, id int, paymentStatus string, transactionID, fulfillmentStatus *string) error
	DeleteFunc        func(ctx context.Context, id int) error
}

func (m *mockOrderRepository) Insert(ctx context.Context, order domain.Order) (int, error) {
	return m.InsertFunc(ctx, order)
}

func (m *mockOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	return m.ListFunc(ctx)
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockOrderRepository) UpdatePayment(ctx context.Context, id int, paymentStatus string, transactionID, fulfillmentStatus *string) error {
	return m.UpdatePaymentFunc(ctx, id, paymentStatus, transactionID, fulfillmentStatus)
}

func (m *mockOrderRepository) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}

func validCreateRequest() CreateOrderRequest {
	return CreateOrderRequest{
		Name:          "A",
		Phone:         "1",
		Address:       "x",
		Items:         json.RawMessage(`[{"id":1,"qty":2}]`),
		Total:         20,
		PaymentMethod: domain.PaymentMethodCOD,
	}
}

func TestCreateOrder_CODIsSettledImmediately(t *testing.T) {
	var inserted domain.Order
	repo := &mockOrderRepository{
		InsertFunc: func(ctx context.Context, order domain.Order) (int, error) {
			inserted = order
			return 42, nil
		},
	}
	uc := NewCreateOrderUseCase(repo, zap.NewNop())

	result, err := uc.CreateOrder(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, 42, result.OrderID)
	assert.False(t, result.PaymentRequired)
	assert.Empty(t, result.ConfirmationToken)

	assert.Equal(t, domain.PaymentCOD, inserted.PaymentStatus)
	assert.Nil(t, inserted.ConfirmationToken)
	assert.True(t, domain.IsPaymentSettled(inserted.PaymentStatus))
}

func TestCreateOrder_OnlineStartsPendingWithToken(t *testing.T) {
	var inserted domain.Order
	repo := &mockOrderRepository{
		InsertFunc: func(ctx context.Context, order domain.Order) (int, error) {
			inserted = order
			return 7, nil
		},
	}
	uc := NewCreateOrderUseCase(repo, zap.NewNop())

	req := validCreateRequest()
	req.PaymentMethod = domain.PaymentMethodOnline

	result, err := uc.CreateOrder(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, result.PaymentRequired)
	assert.NotEmpty(t, result.ConfirmationToken)

	assert.Equal(t, domain.PaymentPending, inserted.PaymentStatus)
	require.NotNil(t, inserted.ConfirmationToken)
	assert.Equal(t, result.ConfirmationToken, *inserted.ConfirmationToken)
}

func TestCreateOrder_UnknownMethodTreatedAsOnline(t *testing.T) {
	repo := &mockOrderRepository{
		InsertFunc: func(ctx context.Context, order domain.Order) (int, error) {
			return 1, nil
		},
	}
	uc := NewCreateOrderUseCase(repo, zap.NewNop())

	req := validCreateRequest()
	req.PaymentMethod = "WIRE"

	result, err := uc.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.PaymentRequired)
}

func TestCreateOrder_MissingFields(t *testing.T) {
	uc := NewCreateOrderUseCase(&mockOrderRepository{}, zap.NewNop())

	_, err := uc.CreateOrder(context.Background(), CreateOrderRequest{})

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.GreaterOrEqual(t, len(ve.Details), 5)
}

func TestCreateOrder_EmptyItemsArray(t *testing.T) {
	uc := NewCreateOrderUseCase(&mockOrderRepository{}, zap.NewNop())

	req := validCreateRequest()
	req.Items = json.RawMessage(`[]`)

	_, err := uc.CreateOrder(context.Background(), req)
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestCreateOrder_ItemsNotAnArray(t *testing.T) {
	uc := NewCreateOrderUseCase(&mockOrderRepository{}, zap.NewNop())

	req := validCreateRequest()
	req.Items = json.RawMessage(`{"id":1}`)

	_, err := uc.CreateOrder(context.Background(), req)
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestCreateOrder_RepositoryFailure(t *testing.T) {
	repo := &mockOrderRepository{
		InsertFunc: func(ctx context.Context, order domain.Order) (int, error) {
			return 0, apperrors.NewStoreError("inserting order", nil)
		},
	}
	uc := NewCreateOrderUseCase(repo, zap.NewNop())

	_, err := uc.CreateOrder(context.Background(), validCreateRequest())
	_, ok := apperrors.IsStoreError(err)
	assert.True(t, ok)
}
