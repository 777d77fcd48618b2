package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
)

// Mailer delivers verification mails from the worker.
type Mailer interface {
	SendVerificationCode(ctx context.Context, to, name, code string) error
}

// Handler processes mail-delivery tasks. The API server enqueues them
// fire-and-forget; failures surface here, in the worker's log, and asynq
// retries the task.
type Handler struct {
	mailer Mailer
	logger *slog.Logger
}

func NewHandler(mailer Mailer, logger *slog.Logger) *Handler {
	return &Handler{mailer: mailer, logger: logger}
}

func (h *Handler) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeVerificationEmail, h.HandleVerificationEmail)
}

func (h *Handler) HandleVerificationEmail(ctx context.Context, t *asynq.Task) error {
	var payload VerificationEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	if err := h.mailer.SendVerificationCode(ctx, payload.Email, payload.Name, payload.Code); err != nil {
		h.logger.Error("verification mail delivery failed", "email", payload.Email, "error", err)
		return err
	}

	h.logger.Info("verification mail sent", "email", payload.Email)
	return nil
}
