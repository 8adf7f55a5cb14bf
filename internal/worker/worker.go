package worker

import (
	"context"
	"encoding/json"
	"log"

	"shop-service/internal/broker"
	"shop-service/internal/models"
	"shop-service/internal/service"

	"github.com/segmentio/kafka-go"
)

// NotificationWorker consumes order events and dispatches confirmation
// emails through the mail service.
type NotificationWorker struct {
	consumer    *broker.Consumer
	mailService *service.MailService
}

// NewNotificationWorker creates a new notification worker
func NewNotificationWorker(consumer *broker.Consumer, mailService *service.MailService) *NotificationWorker {
	return &NotificationWorker{
		consumer:    consumer,
		mailService: mailService,
	}
}

// Start starts the worker
func (w *NotificationWorker) Start(ctx context.Context) error {
	log.Println("Starting notification worker...")

	return w.consumer.StartConsuming(ctx, func(ctx context.Context, msg kafka.Message) error {
		var baseEvent models.BaseEvent
		if err := json.Unmarshal(msg.Value, &baseEvent); err != nil {
			log.Printf("Failed to unmarshal event: %v", err)
			return err
		}

		if baseEvent.EventType != models.EventTypeOrderPlaced {
			return nil
		}

		var event models.OrderPlacedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Printf("Failed to unmarshal OrderPlaced event: %v", err)
			return err
		}

		return w.mailService.SendOrderConfirmation(ctx, &event)
	})
}

// Stop stops the worker
func (w *NotificationWorker) Stop() error {
	log.Println("Stopping notification worker...")
	return w.consumer.Close()
}
