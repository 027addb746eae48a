package dto

import "github.com/spec-kit/book-registry/internal/domain"

// UserRequest payload for account creation and full updates.
type UserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of an account. The password hash never
// leaves the service.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{ID: user.ID, Username: user.Username, Email: user.Email}
}
