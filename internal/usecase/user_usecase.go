package usecase

import (
	"context"

	"github.com/venue-admin/internal/domain"
	"github.com/venue-admin/internal/domain/repository"
	"github.com/venue-admin/internal/pkg/errors"
	"github.com/venue-admin/internal/pkg/formdiff"
	"github.com/venue-admin/internal/pkg/validator"
	"github.com/venue-admin/internal/querycache"
	"github.com/venue-admin/internal/usecase/dto"
	"go.uber.org/zap"
)

// UserUseCase - пользователи и права доступа через кеш запросов
type UserUseCase struct {
	repo   repository.UserRepository
	cache  *querycache.Cache
	sync   *CacheSync
	logger *zap.Logger
}

func NewUserUseCase(repo repository.UserRepository, sync *CacheSync, logger *zap.Logger) *UserUseCase {
	return &UserUseCase{
		repo:   repo,
		cache:  sync.Cache(),
		sync:   sync,
		logger: logger,
	}
}

// ListUsers отдаёт список пользователей из кеша, при необходимости загружая его
func (uc *UserUseCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	return querycache.ReadAs(ctx, uc.cache, domain.UsersKey(), uc.repo.ListUsers)
}

// ListScopes отдаёт каталог прав доступа
func (uc *UserUseCase) ListScopes(ctx context.Context) ([]string, error) {
	return querycache.ReadAs(ctx, uc.cache, domain.ScopesKey(), uc.repo.ListScopes)
}

// CreateUser создаёт пользователя и ставит его первым в закешированный список
func (uc *UserUseCase) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := uc.repo.CreateUser(ctx, req.ToDomain())
	if err != nil {
		return nil, err
	}

	querycache.UpdateAs(uc.cache, domain.UsersKey(), func(prev []domain.User) []domain.User {
		return prependUser(prev, *user)
	})
	uc.sync.Touch(ctx, domain.UsersKey())

	uc.logger.Info("User created", zap.String("user_id", user.ID), zap.String("username", user.Username))
	return user, nil
}

// UpdateUser отправляет частичный PATCH и заменяет запись в списке по id
func (uc *UserUseCase) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	if id == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("user id is required")
	}

	user, err := uc.repo.UpdateUser(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	querycache.UpdateAs(uc.cache, domain.UsersKey(), func(prev []domain.User) []domain.User {
		return mapUsers(prev, id, func(domain.User) domain.User { return *user })
	})
	uc.sync.Touch(ctx, domain.UsersKey())

	uc.logger.Info("User updated", zap.String("user_id", id), zap.Int("fields", len(patch)))
	return user, nil
}

// EditUser сравнивает форму с текущей записью и отправляет только изменённые
// поля. Пароль отправляется всегда, если он заполнен.
func (uc *UserUseCase) EditUser(ctx context.Context, id string, req dto.EditUserRequest) (*dto.EditResult, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	users, err := uc.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	current, ok := findUser(users, id)
	if !ok {
		return nil, errors.ErrNotFound.WithMessage("user not found")
	}

	submitted, err := formdiff.ToMap(req)
	if err != nil {
		return nil, errors.ErrInternalServer.Wrap(err)
	}
	original, err := formdiff.ToMap(current)
	if err != nil {
		return nil, errors.ErrInternalServer.Wrap(err)
	}

	changed := formdiff.Changed(submitted, original, formdiff.Options{AlwaysSend: []string{"password"}})
	if len(changed) == 0 {
		return &dto.EditResult{Changed: false, Fields: []string{}}, nil
	}

	user, err := uc.UpdateUser(ctx, id, domain.UserPatch(changed))
	if err != nil {
		return nil, err
	}
	return &dto.EditResult{Changed: true, Fields: sortedKeys(changed), Data: user}, nil
}

// DeleteUser удаляет пользователя и убирает его из закешированного списка
func (uc *UserUseCase) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return errors.ErrInvalidRequest.WithMessage("user id is required")
	}

	if err := uc.repo.DeleteUser(ctx, id); err != nil {
		return err
	}

	querycache.UpdateAs(uc.cache, domain.UsersKey(), func(prev []domain.User) []domain.User {
		out := make([]domain.User, 0, len(prev))
		for _, u := range prev {
			if u.ID != id {
				out = append(out, u)
			}
		}
		return out
	})
	uc.sync.Touch(ctx, domain.UsersKey())

	uc.logger.Info("User deleted", zap.String("user_id", id))
	return nil
}

// UpdateScopes заменяет права пользователя целиком
func (uc *UserUseCase) UpdateScopes(ctx context.Context, id string, req dto.UpdateScopesRequest) ([]string, error) {
	if id == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("user id is required")
	}
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	requested := req.Scopes
	if requested == nil {
		requested = []string{}
	}

	scopes, err := uc.repo.UpdateScopes(ctx, id, requested)
	if err != nil {
		return nil, err
	}
	if scopes == nil {
		scopes = requested
	}

	querycache.UpdateAs(uc.cache, domain.UsersKey(), func(prev []domain.User) []domain.User {
		return mapUsers(prev, id, func(u domain.User) domain.User {
			u.Scopes = scopes
			return u
		})
	})
	uc.sync.Touch(ctx, domain.UsersKey())

	uc.logger.Info("User scopes updated", zap.String("user_id", id), zap.Strings("scopes", scopes))
	return scopes, nil
}

// cached slices are shared with readers, so every merge builds a new slice

func prependUser(prev []domain.User, user domain.User) []domain.User {
	out := make([]domain.User, 0, len(prev)+1)
	out = append(out, user)
	return append(out, prev...)
}

func mapUsers(prev []domain.User, id string, fn func(domain.User) domain.User) []domain.User {
	out := make([]domain.User, len(prev))
	for i, u := range prev {
		if u.ID == id {
			u = fn(u)
		}
		out[i] = u
	}
	return out
}

func findUser(users []domain.User, id string) (domain.User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}
