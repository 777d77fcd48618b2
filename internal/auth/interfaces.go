package auth

import (
	"context"

	"github.com/examhub/examhub-api/internal/database/models"
	"github.com/hibiken/asynq"
)

// UserStore is the credential store contract the service depends on.
// Implemented by internal/database.UserStore.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByName(ctx context.Context, name string) (*models.User, error)
	FindByID(ctx context.Context, id uint64) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, user *models.User) error
}

// TokenService defines the bearer-token operations.
type TokenService interface {
	GenerateToken(userID uint64, email string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Mailer sends the password-reset mail. This path is awaited: a transport
// failure propagates to the caller as a server error.
type Mailer interface {
	SendPasswordResetCode(ctx context.Context, to, code string) error
}

// TaskEnqueuer enqueues background tasks. Satisfied by *asynq.Client.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

var _ TokenService = (*JWTService)(nil)
