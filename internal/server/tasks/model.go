package tasks

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"taskkeeper/internal/common"
)

// State is the lifecycle state of a task.
type State string

const (
	StatePending    State = "PENDING"
	StateInProgress State = "IN_PROGRESS"
	StateCompleted  State = "COMPLETED"
)

// Valid reports whether s is one of the known states.
func (s State) Valid() bool {
	switch s {
	case StatePending, StateInProgress, StateCompleted:
		return true
	}
	return false
}

// Task is an owned work item. UserID is set once at creation from the
// authenticated identity and never changes.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	State       State      `json:"state"`
	UserID      string     `json:"userId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CreateInput carries the client-supplied fields of a new task. The owner
// never comes from here; it is taken from the verified request identity.
type CreateInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	EndDate     *time.Time `json:"endDate"`
	State       State      `json:"state"`
}

func (in CreateInput) Validate() error {
	var errs common.FieldErrors

	if strings.TrimSpace(in.Title) == "" {
		errs = errs.Add("title", "must not be empty")
	}
	if in.State != "" && !in.State.Valid() {
		errs = errs.Add("state", "must be one of PENDING, IN_PROGRESS, COMPLETED")
	}

	return errs.OrNil()
}

// Patch holds the updatable fields of a task. Nil means "not present":
// only non-nil fields are applied.
type Patch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	EndDate     *time.Time `json:"endDate"`
	State       *State     `json:"state"`
}

func (p Patch) Validate() error {
	var errs common.FieldErrors

	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		errs = errs.Add("title", "must not be empty")
	}
	if p.State != nil && !p.State.Valid() {
		errs = errs.Add("state", "must be one of PENDING, IN_PROGRESS, COMPLETED")
	}

	return errs.OrNil()
}

// Apply copies the present patch fields onto task.
func (p Patch) Apply(task *Task) {
	if p.Title != nil {
		task.Title = *p.Title
	}
	if p.Description != nil {
		task.Description = *p.Description
	}
	if p.EndDate != nil {
		task.EndDate = p.EndDate
	}
	if p.State != nil {
		task.State = *p.State
	}
}

// NewID returns a fresh opaque task identifier.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
