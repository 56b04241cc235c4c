package users

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskkeeper/internal/common"
)

// User is an identity record. PasswordHash is never serialized outward.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks RegisterInput and returns a common.FieldErrors list
// naming every invalid field, or nil.
func (in RegisterInput) Validate() error {
	var errs common.FieldErrors

	if strings.TrimSpace(in.Username) == "" {
		errs = errs.Add("username", "must not be empty")
	}
	if strings.TrimSpace(in.Email) == "" {
		errs = errs.Add("email", "must not be empty")
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		errs = errs.Add("email", "must be a valid email address")
	}
	if in.Password == "" {
		errs = errs.Add("password", "must not be empty")
	}

	return errs.OrNil()
}

// NewID returns a fresh opaque user identifier: a v4 UUID without dashes.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
