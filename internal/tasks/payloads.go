package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"portfolio/internal/mailer"
)

// Task type constants keep the queue producer and consumer in sync.
const (
	TypeContactEmail = "email:contact"
)

// ContactEmailPayload carries one contact-form submission to the worker.
type ContactEmailPayload struct {
	Submission    mailer.ContactSubmission `json:"submission"`
	CorrelationID string                   `json:"correlation_id"`
}

// NewContactEmailTask builds a contact notification task. MaxRetry is zero:
// delivery failures are logged by the worker, never retried.
func NewContactEmailTask(sub mailer.ContactSubmission, correlationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ContactEmailPayload{
		Submission:    sub,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeContactEmail, payload, asynq.MaxRetry(0)), nil
}
