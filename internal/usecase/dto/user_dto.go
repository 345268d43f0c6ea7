package dto

import "github.com/venue-admin/internal/domain"

// CreateUserRequest - форма создания пользователя
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=2"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name"`
	Email    string `json:"email" validate:"omitempty,email"`
	// IsActive defaults to true when omitted
	IsActive *bool `json:"is_active"`
}

func (r CreateUserRequest) ToDomain() domain.UserCreate {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return domain.UserCreate{
		Username: r.Username,
		Password: r.Password,
		FullName: r.FullName,
		Email:    r.Email,
		IsActive: active,
	}
}

// EditUserRequest - форма редактирования. nil и "" означают «не менялось».
type EditUserRequest struct {
	Username string `json:"username" validate:"omitempty,min=2"`
	FullName string `json:"full_name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
	IsActive *bool  `json:"is_active"`
}

type UpdateScopesRequest struct {
	Scopes []string `json:"scopes" validate:"dive,required"`
}

// UserStats backs the users stat cards.
type UserStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}
