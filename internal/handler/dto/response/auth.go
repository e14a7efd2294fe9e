package response

import (
	"time"

	"padel-club-api/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// UserResponse is the public shape of an account: the password hash never
// leaves the server.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatarUrl"`
	Level     string    `json:"level"`
	Bio       string    `json:"bio"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func FromUser(u *user.User) UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, u)
	return resp
}

func NewAuthResponse(u *user.User, token string) AuthResponse {
	return AuthResponse{
		User:  FromUser(u),
		Token: token,
	}
}
