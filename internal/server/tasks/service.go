// Package tasks implements the owner-scoped task query engine: stable
// paginated listings plus create/get/update/delete, all filtered to the
// authenticated owner.
package tasks

import (
	"context"
	"database/sql"
	"fmt"

	"taskkeeper/internal/dbx"
)

// RepositoryFactory builds a Repository over a plain connection or a
// transaction, so multi-statement operations can run atomically.
type RepositoryFactory func(db dbx.DBTX) Repository

// Service computes owner-scoped views over the task collection.
type Service struct {
	db    *sql.DB
	repos RepositoryFactory
}

func NewService(db *sql.DB, repos RepositoryFactory) *Service {
	return &Service{db: db, repos: repos}
}

// List returns one page of the owner's tasks. Count and slice use the
// same ownership filter; a page past the end yields empty results with
// correct totals.
func (s *Service) List(ctx context.Context, ownerID string, q ListQuery) (*Page, error) {

	column, err := q.Validate()
	if err != nil {
		return nil, err
	}

	repo := s.repos(s.db)

	count, err := repo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error counting tasks: %v", err)
	}

	items, err := repo.ListByOwner(ctx, ownerID, column, q.Order, q.Size, q.Page*q.Size)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %v", err)
	}
	if items == nil {
		items = []*Task{}
	}

	return &Page{
		Results: items,
		Info: PageInfo{
			Count: count,
			Pages: (count + q.Size - 1) / q.Size,
		},
	}, nil
}

// Get returns the owner's task by id. A foreign or absent id is
// common.ErrorNotFound.
func (s *Service) Get(ctx context.Context, ownerID, id string) (*Task, error) {
	return s.repos(s.db).Get(ctx, ownerID, id)
}

// Create stores a new task for ownerID. The owner always comes from the
// verified identity, never from client input.
func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (*Task, error) {

	if err := in.Validate(); err != nil {
		return nil, err
	}

	state := in.State
	if state == "" {
		state = StatePending
	}

	task := &Task{
		ID:          NewID(),
		Title:       in.Title,
		Description: in.Description,
		EndDate:     in.EndDate,
		State:       state,
		UserID:      ownerID,
	}

	task, err := s.repos(s.db).Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %v", err)
	}

	return task, nil
}

// Update applies only the fields present in patch and returns the
// post-update record. Find and write run in one transaction.
func (s *Service) Update(ctx context.Context, ownerID, id string, patch Patch) (*Task, error) {

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var updated *Task
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos(tx)

		task, err := repo.Get(ctx, ownerID, id)
		if err != nil {
			return err
		}

		patch.Apply(task)

		updated, err = repo.Update(ctx, task)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the owner's task and returns its last-known state.
func (s *Service) Delete(ctx context.Context, ownerID, id string) (*Task, error) {
	return s.repos(s.db).Delete(ctx, ownerID, id)
}
