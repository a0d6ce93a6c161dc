package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"portfolio/internal/errcode"
	"portfolio/internal/mailer"
	"portfolio/internal/tasks"
)

// EmailSender is the slice of the mailer the handler needs.
type EmailSender interface {
	Send(msg mailer.Message) error
	Recipient() string
}

// EmailTaskHandler consumes contact notification tasks.
type EmailTaskHandler struct {
	sender EmailSender
	logger *slog.Logger
}

// NewEmailTaskHandler creates the task handler.
func NewEmailTaskHandler(sender EmailSender, logger *slog.Logger) *EmailTaskHandler {
	return &EmailTaskHandler{sender: sender, logger: logger}
}

// ProcessTask implements asynq.Handler.
func (h *EmailTaskHandler) ProcessTask(_ context.Context, t *asynq.Task) error {
	log := h.logger

	var payload tasks.ContactEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Error("unmarshal task payload failed", slog.Any("error", err))
		return err
	}

	log = log.With(
		slog.String("correlation_id", payload.CorrelationID),
		slog.String("from", payload.Submission.Email),
	)

	msg, err := mailer.ComposeContact(payload.Submission, h.sender.Recipient(), time.Now())
	if err != nil {
		log.Error("compose contact email failed",
			slog.Int("error_code", errcode.SystemError),
			slog.Any("error", err),
		)
		return err
	}

	if err := h.sender.Send(msg); err != nil {
		log.Error("send contact email failed",
			slog.Int("error_code", errcode.SystemError),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("contact email delivered")
	return nil
}
