package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"storefront-api/internal/client"
	"storefront-api/internal/model"
	"storefront-api/internal/repository"
)

type PaymentService interface {
	Pay(ctx context.Context, userID, orderID, description string) (string, error)
	Verify(ctx context.Context, authority, status string) (string, error)
}

type paymentServiceImpl struct {
	gateway   client.PaymentGateway
	orderRepo repository.OrderRepository
}

func NewPaymentService(
	gateway client.PaymentGateway,
	orderRepo repository.OrderRepository,
) PaymentService {
	return &paymentServiceImpl{
		gateway:   gateway,
		orderRepo: orderRepo,
	}
}

// Pay requests a payment link for a pending order. The amount is taken from
// the stored order total, never from the caller, and the gateway authority is
// saved on the order so Verify can find it again.
func (s *paymentServiceImpl) Pay(ctx context.Context, userID, orderID, description string) (string, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrOrderNotFound
	}
	if err != nil {
		return "", fmt.Errorf("load order: %w", err)
	}
	if order.UserID != userID {
		return "", ErrOrderNotFound
	}
	if order.Status != model.OrderPending {
		return "", ErrOrderNotPending
	}

	result, err := s.gateway.RequestPayment(ctx, order.TotalAmount.Round(0).IntPart(), description)
	if err != nil {
		return "", fmt.Errorf("request payment: %w", err)
	}

	if err := s.orderRepo.SetAuthority(ctx, order.ID, result.Authority); err != nil {
		return "", fmt.Errorf("store payment authority: %w", err)
	}

	return result.PaymentURL, nil
}

// Verify settles the payment attempt identified by the gateway authority.
// Success transitions the matching pending order to paid; anything else marks
// it failed. An order is never marked paid without gateway confirmation.
func (s *paymentServiceImpl) Verify(ctx context.Context, authority, status string) (string, error) {
	if status != "OK" {
		if err := s.orderRepo.MarkFailed(ctx, authority); err != nil {
			log.Printf("[payment] mark order failed authority=%s: %v", authority, err)
		}
		return "", ErrPaymentFailed
	}

	order, err := s.orderRepo.FindByAuthority(ctx, authority)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrOrderNotFound
	}
	if err != nil {
		return "", fmt.Errorf("load order: %w", err)
	}

	refID, err := s.gateway.VerifyPayment(ctx, order.TotalAmount.Round(0).IntPart(), authority)
	if err != nil {
		if markErr := s.orderRepo.MarkFailed(ctx, authority); markErr != nil {
			log.Printf("[payment] mark order failed authority=%s: %v", authority, markErr)
		}
		return "", fmt.Errorf("verify payment: %w", err)
	}

	if _, err := s.orderRepo.MarkPaid(ctx, authority, refID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) && order.Status == model.OrderPaid {
			// gateway re-delivered a verification we already settled
			return order.PaymentRefID, nil
		}
		return "", fmt.Errorf("mark order paid: %w", err)
	}

	return refID, nil
}
