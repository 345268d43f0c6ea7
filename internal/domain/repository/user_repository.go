package repository

import (
	"context"

	"github.com/venue-admin/internal/domain"
)

// UserRepository определяет методы для работы с пользователями бэкенда
type UserRepository interface {
	// ListUsers - GET /users
	ListUsers(ctx context.Context) ([]domain.User, error)

	// ListScopes - GET /scopes
	ListScopes(ctx context.Context) ([]string, error)

	// CreateUser - POST /users
	CreateUser(ctx context.Context, in domain.UserCreate) (*domain.User, error)

	// UpdateUser - PATCH /users/{id}
	UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)

	// DeleteUser - DELETE /users/{id}
	DeleteUser(ctx context.Context, id string) error

	// UpdateScopes - PUT /users/{id}/scopes
	UpdateScopes(ctx context.Context, id string, scopes []string) ([]string, error)
}
