package user

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	LevelBeginner      = "Débutant"
	LevelIntermediate  = "Intermédiaire"
	LevelAdvanced      = "Avancé"
	LevelAdministrator = "Administrateur"

	MinPasswordLength = 8
)

var emailRegex = regexp.MustCompile(`^[\w\-.]+@([\w-]+\.)+[\w-]{2,}$`)

// User is a club member account. Credentials are validated at the HTTP
// boundary; the core only ever sees a resolved identity.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"passwordHash"`
	AvatarURL    string    `json:"avatarUrl"`
	Level        string    `json:"level"`
	Bio          string    `json:"bio"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidatePassword(password string) bool {
	return len(password) >= MinPasswordLength
}

// Sanitize trims a free-form input, substituting a fallback when empty.
func Sanitize(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

// RandomAvatarURL picks one of the bundled member avatars.
func RandomAvatarURL() string {
	return fmt.Sprintf("/assets/images/avatar-%d.svg", rand.Intn(5)+1)
}
