package users

import "context"

// Repository persists user records. GetByEmail is the unique identity
// lookup used by login and duplicate checks.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}
