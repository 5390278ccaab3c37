package services

import (
	"context"

	"github.com/gomartghana/gomart-api/app/apperrors"
	"github.com/gomartghana/gomart-api/app/models"
	"github.com/gomartghana/gomart-api/app/repositories"
	"github.com/rs/zerolog"
)

type PaymentService struct {
	orderRepo   repositories.OrderRepository
	paymentRepo repositories.PaymentRepositoryImpl
	logger      zerolog.Logger
}

func NewPaymentService(
	orderRepo repositories.OrderRepository,
	paymentRepo repositories.PaymentRepositoryImpl,
	logger zerolog.Logger,
) *PaymentService {
	return &PaymentService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

type InitiatePaymentInput struct {
	OrderID              string
	PaymentMethod        string
	TransactionReference string
	CustomerID           string
}

// InitiatePayment creates a pending payment for an order the customer owns.
// Order existence and ownership are resolved in a single scoped lookup, so a
// foreign order and a missing one both read as NotFound. The amount is
// copied from the order's stored total; it never comes from the caller.
func (s *PaymentService) InitiatePayment(ctx context.Context, input InitiatePaymentInput) (*models.Payment, error) {
	if input.OrderID == "" || input.PaymentMethod == "" {
		return nil, apperrors.BadRequest("Order ID and payment method are required")
	}

	order, err := s.orderRepo.FindByIDAndCustomer(ctx, input.OrderID, input.CustomerID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if order == nil {
		return nil, apperrors.NotFound("Order not found")
	}

	payment := &models.Payment{
		OrderID:              order.ID,
		Amount:               order.TotalAmount,
		PaymentMethod:        input.PaymentMethod,
		TransactionReference: input.TransactionReference,
		Status:               models.PaymentStatusPending,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("payment_id", payment.ID).
		Str("order_id", order.ID).
		Str("method", input.PaymentMethod).
		Msg("payment initiated")
	return payment, nil
}

// ApplyGatewayResult transitions a pending payment to a terminal state on a
// gateway callback. First write wins: a payment already completed or failed
// is acknowledged untouched, so replayed callbacks cannot flip a terminal
// state.
func (s *PaymentService) ApplyGatewayResult(ctx context.Context, txRef, status string) (*models.Payment, error) {
	if txRef == "" {
		return nil, apperrors.BadRequest("Transaction reference is required")
	}
	if status != models.PaymentStatusCompleted && status != models.PaymentStatusFailed {
		return nil, apperrors.BadRequest("Payment status must be completed or failed")
	}

	payment, err := s.paymentRepo.FindByTransactionReference(ctx, txRef)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if payment == nil {
		return nil, apperrors.NotFound("Payment not found")
	}

	if payment.IsTerminal() {
		s.logger.Info().
			Str("payment_id", payment.ID).
			Str("status", payment.Status).
			Msg("gateway callback replayed for terminal payment, skipping")
		return payment, nil
	}

	if err := s.paymentRepo.UpdateStatus(ctx, payment.ID, status); err != nil {
		return nil, apperrors.Internal(err)
	}
	payment.Status = status

	s.logger.Info().
		Str("payment_id", payment.ID).
		Str("status", status).
		Msg("payment status updated")
	return payment, nil
}
