package queue

import (
	"encoding/json"

	"github.com/rajat6235/Robusters-POS-sub001/internal/constants"
	"github.com/rajat6235/Robusters-POS-sub001/internal/models"

	"github.com/hibiken/asynq"
)

const (
	// TaskActivityLog is the activity trail task type.
	TaskActivityLog = constants.TaskActivityLog
)

// ActivityLogPayload is the activity trail task payload.
type ActivityLogPayload struct {
	EventType string      `json:"event_type"`
	OrderID   uint        `json:"order_id"`
	ActorID   uint        `json:"actor_id"`
	Detail    models.JSON `json:"detail,omitempty"`
}

// NewActivityLogTask creates an activity trail task.
func NewActivityLogTask(payload ActivityLogPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskActivityLog, body), nil
}
