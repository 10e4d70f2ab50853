package Models

import (
	"errors"
	"fmt"
	"time"
)

// Assignment statuses as shown on the ledger board
const (
	StatusPending    = "Pending"
	StatusInProgress = "InProgress"
	StatusCompleted  = "Completed"
	StatusBlocked    = "Blocked"
)

// Role labels attached to the session user
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Author labels stamped onto ledger log entries
const (
	AuthorAdmin = "SYSTEM_ADMIN"
	AuthorAgent = "FIELD_AGENT"
)

// Assignment is a single unit of work on the mission ledger. The whole record
// is serialized as one JSON blob in the remote store, keyed by TaskID.
type Assignment struct {
	TaskID       string             `json:"taskId"`
	TaskTitle    string             `json:"taskTitle"`
	AssignedTo   string             `json:"assignedTo"`
	Category     string             `json:"category"`
	AssignedDate string             `json:"assignedDate"` // date only, YYYY-MM-DD
	DueDate      string             `json:"dueDate"`      // date only, YYYY-MM-DD
	Status       string             `json:"status"`
	LastUpdated  string             `json:"lastUpdated"` // RFC3339
	Notes        string             `json:"notes,omitempty"`
	Difficulties []string           `json:"difficulties"`
	Updates      []AssignmentUpdate `json:"updates"`
}

// AssignmentUpdate is an append-only log entry on an assignment.
type AssignmentUpdate struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
	Text      string `json:"text"`
	Author    string `json:"author"`
}

// ValidStatus reports whether s is one of the four ledger statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusBlocked:
		return true
	}
	return false
}

// Validate checks the required fields of a new-record submission. This is the
// only user-facing validation in the core; everything else is silently gated.
func (a *Assignment) Validate() error {
	if a.TaskTitle == "" {
		return errors.New("incomplete data: task title is required")
	}
	if a.AssignedTo == "" {
		return errors.New("incomplete data: identify an agent")
	}
	if a.Category == "" {
		return errors.New("incomplete data: category is required")
	}
	if a.AssignedDate == "" || a.DueDate == "" {
		return errors.New("incomplete data: assigned and due dates are required")
	}
	if a.Status != "" && !ValidStatus(a.Status) {
		return fmt.Errorf("unknown status %q", a.Status)
	}
	return nil
}

// NewTaskID generates a ledger record identifier.
func NewTaskID(now time.Time) string {
	return fmt.Sprintf("TASK-%d", now.UnixMilli())
}

// NewUpdateID generates a log entry identifier, monotonic enough for display
// ordering.
func NewUpdateID(now time.Time) string {
	return fmt.Sprintf("LOG-%d", now.UnixMilli())
}

// AuthorFor maps a session role to the author label stamped on log entries.
func AuthorFor(role string) string {
	if role == RoleAdmin {
		return AuthorAdmin
	}
	return AuthorAgent
}
