package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"portfolio/internal/api/middleware"
	"portfolio/internal/mailer"
	"portfolio/internal/repository"
	"portfolio/internal/tasks"
)

// taskEnqueuer is the slice of asynq.Client the handler needs.
type taskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ContactHandler serves the contact field map and the contact form.
type ContactHandler struct {
	contact      *repository.ContactRepo
	queue        taskEnqueuer
	emailEnabled bool
}

// NewContactHandler constructs the handler.
func NewContactHandler(contact *repository.ContactRepo, queue taskEnqueuer, emailEnabled bool) *ContactHandler {
	return &ContactHandler{contact: contact, queue: queue, emailEnabled: emailEnabled}
}

// List returns the contact page as a flat name -> value map.
func (h *ContactHandler) List(c *gin.Context) {
	fields, err := h.contact.Fields(c.Request.Context())
	if err != nil {
		middleware.LoggerFromContext(c).Error("list contact fields failed", slog.Any("error", err))
		Internal(c, err.Error())
		return
	}
	OK(c, fields)
}

// Save upserts each submitted field independently. There is no transaction
// around the loop: a failure mid-iteration leaves earlier fields committed.
func (h *ContactHandler) Save(c *gin.Context) {
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		BadRequest(c, "invalid contact payload")
		return
	}

	ctx := c.Request.Context()
	for name, value := range fields {
		if err := h.contact.SetField(ctx, name, value); err != nil {
			middleware.LoggerFromContext(c).Error("save contact field failed",
				slog.String("field", name), slog.Any("error", err))
			Internal(c, err.Error())
			return
		}
	}
	OK(c, fields)
}

// Send validates a contact form submission and queues the notification
// email for the worker.
func (h *ContactHandler) Send(c *gin.Context) {
	var sub mailer.ContactSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		BadRequest(c, "Required fields are missing")
		return
	}
	if sub.FirstName == "" || sub.Email == "" || sub.Message == "" {
		BadRequest(c, "Required fields are missing")
		return
	}

	if !h.emailEnabled {
		Internal(c, "email delivery is not configured")
		return
	}

	logger := middleware.LoggerFromContext(c)
	task, err := tasks.NewContactEmailTask(sub, middleware.GetCorrelationID(c))
	if err != nil {
		logger.Error("build contact email task failed", slog.Any("error", err))
		Internal(c, err.Error())
		return
	}
	if _, err := h.queue.Enqueue(task); err != nil {
		logger.Error("enqueue contact email failed", slog.Any("error", err))
		Internal(c, "Failed to send email. Please try again later.")
		return
	}

	Message(c, "Email queued for delivery")
}
