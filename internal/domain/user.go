package domain

import "time"

// User - учётная запись администратора или клиента платформы
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FullName  *string   `json:"full_name"`
	Email     *string   `json:"email"`
	IsActive  bool      `json:"is_active"`
	Scopes    []string  `json:"scopes"`
	CreatedAt time.Time `json:"created_at"`
}

// UserCreate is the body sent to POST /users.
type UserCreate struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

// UserPatch is a sparse PATCH /users/{id} body: only present keys are sent.
type UserPatch map[string]interface{}

// ScopesUpdate is the body of PUT /users/{id}/scopes.
type ScopesUpdate struct {
	Scopes []string `json:"scopes"`
}
