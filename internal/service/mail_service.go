package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"shop-service/internal/models"
	"shop-service/internal/util"

	"go.uber.org/zap"
)

// MailService dispatches order confirmation emails (mocked)
type MailService struct {
	logger      *zap.Logger
	successRate float64 // Mock success rate (0.0 - 1.0)
}

// NewMailService creates a new mail service
func NewMailService(successRate float64) *MailService {
	return &MailService{
		logger:      util.GetLogger(),
		successRate: successRate,
	}
}

// SendOrderConfirmation sends a confirmation email for a placed order
// (mocked: randomized latency and a configurable failure rate).
func (ms *MailService) SendOrderConfirmation(ctx context.Context, event *models.OrderPlacedEvent) error {
	_, span := util.StartSpan(ctx, "MailService.SendOrderConfirmation")
	defer span.End()

	start := time.Now()
	defer func() {
		util.EmailDispatchLatency.Observe(time.Since(start).Seconds())
	}()

	ms.logger.Info("Sending order confirmation",
		zap.Int64("order_id", event.OrderID),
		zap.String("email", event.CustomerEmail))

	time.Sleep(time.Duration(50+rand.Intn(200)) * time.Millisecond)

	if rand.Float64() >= ms.successRate {
		util.EmailsFailedTotal.Inc()
		return fmt.Errorf("mail provider rejected message for order %d", event.OrderID)
	}

	util.EmailsSentTotal.Inc()
	ms.logger.Info("Order confirmation sent", zap.Int64("order_id", event.OrderID))
	return nil
}
