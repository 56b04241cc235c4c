package tasks

import "context"

// Repository persists task records. Every read and write is scoped to the
// owning user; a task belonging to someone else behaves as absent.
type Repository interface {
	Create(ctx context.Context, task *Task) (*Task, error)
	Get(ctx context.Context, ownerID, id string) (*Task, error)
	ListByOwner(ctx context.Context, ownerID, sortColumn, order string, limit, offset int) ([]*Task, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
	Update(ctx context.Context, task *Task) (*Task, error)
	Delete(ctx context.Context, ownerID, id string) (*Task, error)
}
