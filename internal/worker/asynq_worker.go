package worker

import (
	"context"
	"encoding/json"

	"github.com/rajat6235/Robusters-POS-sub001/internal/logger"
	"github.com/rajat6235/Robusters-POS-sub001/internal/models"
	"github.com/rajat6235/Robusters-POS-sub001/internal/provider"
	"github.com/rajat6235/Robusters-POS-sub001/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer handles queued tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{Container: c}
}

// Register wires task handlers into the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskActivityLog, c.handleActivityLog)
}

// handleActivityLog persists one activity trail event. The trail is advisory:
// malformed payloads are dropped, not retried.
func (c *Consumer) handleActivityLog(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_activity_log_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.ActivityLogPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_activity_log_unmarshal_failed", "error", err)
		return nil
	}
	if payload.EventType == "" {
		logger.Debugw("worker_activity_log_skip_empty_event")
		return nil
	}
	entry := &models.ActivityLog{
		EventType: payload.EventType,
		OrderID:   payload.OrderID,
		ActorID:   payload.ActorID,
		Detail:    payload.Detail,
	}
	if err := c.ActivityLogRepo.Create(entry); err != nil {
		logger.Warnw("worker_activity_log_persist_failed",
			"event_type", payload.EventType,
			"order_id", payload.OrderID,
			"error", err,
		)
		return err
	}
	return nil
}
