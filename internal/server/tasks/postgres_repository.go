package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"taskkeeper/internal/common"
	"taskkeeper/internal/dbx"
)

// PostgresRepository implements task storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, task *Task) (*Task, error) {

	query :=
		`INSERT INTO tasks (id, title, description, end_date, state, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.Title, task.Description, task.EndDate, task.State, task.UserID).
		Scan(&task.CreatedAt, &task.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

func (r *PostgresRepository) Get(ctx context.Context, ownerID, id string) (*Task, error) {
	query :=
		`SELECT id, title, description, end_date, state, user_id, created_at, updated_at FROM tasks
		 WHERE id = $1 AND user_id = $2
		 `

	task := &Task{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&task.ID, &task.Title, &task.Description, &task.EndDate,
		&task.State, &task.UserID, &task.CreatedAt, &task.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// ListByOwner returns one slice of the owner's tasks, ordered by
// sortColumn/order with created_at and id as tie-breakers so equal keys
// keep insertion order. sortColumn and order must already be validated;
// they are interpolated into the statement.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID, sortColumn, order string, limit, offset int) ([]*Task, error) {
	query := fmt.Sprintf(
		`SELECT id, title, description, end_date, state, user_id, created_at, updated_at FROM tasks
		 WHERE user_id = $1
		 ORDER BY %s %s, created_at ASC, id ASC
		 LIMIT $2 OFFSET $3
		 `, sortColumn, order)

	rows, err := r.db.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*Task
	for rows.Next() {
		var item Task
		if err := rows.Scan(
			&item.ID, &item.Title, &item.Description, &item.EndDate,
			&item.State, &item.UserID, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// CountByOwner counts the owner's tasks using the same filter as
// ListByOwner, so totals always match the slice.
func (r *PostgresRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	query := `SELECT count(*) FROM tasks WHERE user_id = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, query, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) Update(ctx context.Context, task *Task) (*Task, error) {
	query :=
		`UPDATE tasks
		 SET title = $1, description = $2, end_date = $3, state = $4, updated_at = now()
		 WHERE id = $5 AND user_id = $6
		 RETURNING updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		task.Title, task.Description, task.EndDate, task.State, task.ID, task.UserID).
		Scan(&task.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// Delete removes the task and returns its last-known state.
func (r *PostgresRepository) Delete(ctx context.Context, ownerID, id string) (*Task, error) {
	query :=
		`DELETE FROM tasks
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, title, description, end_date, state, user_id, created_at, updated_at
		 `

	task := &Task{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&task.ID, &task.Title, &task.Description, &task.EndDate,
		&task.State, &task.UserID, &task.CreatedAt, &task.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}
