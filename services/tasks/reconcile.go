package tasks

import (
	"encoding/json"

	"venuehub/models"

	"github.com/hibiken/asynq"
)

const (
	TypeBookingReconcile = "booking:reconcile"
	TypeBookingSweep     = "booking:sweep"
)

// NewReconcileTask builds the delayed re-apply task for a single booking.
func NewReconcileTask(payload models.ReconcilePayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingReconcile, b), nil
}

// NewSweepTask builds the periodic paid-but-unconfirmed backfill task.
func NewSweepTask() *asynq.Task {
	return asynq.NewTask(TypeBookingSweep, nil)
}
