// Package jobs holds the background jobs and their event wiring.
package jobs

import (
	"fmt"
	"time"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/database"
	"github.com/shashiranjanraj/storefront/pkg/event"
	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/mail"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
	"github.com/shashiranjanraj/storefront/pkg/queue"
)

// OrderConfirmationJob emails the order owner after their order commits.
// Only the order id is serialized; the job re-reads the order so a worker
// picking it up later sees current state.
type OrderConfirmationJob struct {
	OrderID uint `json:"order_id"`
}

func (j OrderConfirmationJob) Handle() error {
	start := time.Now()

	orders := repositories.NewOrderRepository()
	users := repositories.NewUserRepository()

	order, err := orders.FindByID(database.DB, j.OrderID)
	if err != nil {
		metrics.RecordQueueJob("order_confirmation", "failed", start)
		return fmt.Errorf("order confirmation: load order %d: %w", j.OrderID, err)
	}

	user, err := users.FindByID(database.DB, order.UserID)
	if err != nil {
		metrics.RecordQueueJob("order_confirmation", "failed", start)
		return fmt.Errorf("order confirmation: load user %d: %w", order.UserID, err)
	}

	body := fmt.Sprintf(
		"Hi %s,\n\nWe received your order #%d (%d item lines, %s total).\nStatus: %s\n\nThanks for shopping with us!",
		user.Name, order.ID, len(order.Positions), order.TotalCost.StringFixed(2), order.Status,
	)

	err = mail.To(user.Email).
		Subject(fmt.Sprintf("Order #%d confirmed", order.ID)).
		Text(body).
		Send()
	if err != nil {
		metrics.RecordQueueJob("order_confirmation", "failed", start)
		return fmt.Errorf("order confirmation: send mail: %w", err)
	}

	metrics.RecordQueueJob("order_confirmation", "success", start)
	return nil
}

// RegisterListeners wires domain events to queued jobs and registers the job
// types with the queue so workers can deserialize them. Call once at boot.
func RegisterListeners() {
	queue.Register("jobs.OrderConfirmationJob", func() queue.Job { return &OrderConfirmationJob{} })

	event.Listen(services.EventOrderCreated, func(payload interface{}) {
		order, ok := payload.(*models.Order)
		if !ok {
			return
		}
		if err := queue.Dispatch(OrderConfirmationJob{OrderID: order.ID}); err != nil {
			logger.Error("dispatch order confirmation", "order_id", order.ID, "error", err)
		}
	})
}
