package task

import (
	"fmt"
	"strings"
)

// Task represents a single user-entered work item.
type Task struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     string   `json:"dueDate"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
}

// Status is the completion state of a task.
type Status string

// Task status constants
const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Toggled returns the opposite status. Anything that is not completed
// toggles to completed.
func (s Status) Toggled() Status {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// ParseStatus parses a status name, case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(StatusPending):
		return StatusPending, nil
	case string(StatusCompleted):
		return StatusCompleted, nil
	}
	return "", fmt.Errorf("invalid status %q (want pending or completed)", s)
}

// Priority is the user-assigned importance of a task.
type Priority string

// Priority constants, in rank order.
const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Priorities lists the valid priorities in rank order.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Rank returns the sort rank of the priority: High=1, Medium=2, Low=3.
// Unknown priorities rank after Low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	return p.Rank() < 4
}

// ParsePriority parses a priority name, case-insensitively.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return PriorityHigh, nil
	case "medium":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	}
	return "", fmt.Errorf("invalid priority %q (want High, Medium or Low)", s)
}

// IsCompleted reports whether the task is done.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// Validate checks that the user-entered fields are usable.
// Title, description and due date must be non-empty after trimming.
func Validate(title, description, dueDate string, priority Priority) error {
	var missing []string
	if strings.TrimSpace(title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(dueDate) == "" {
		missing = append(missing, "dueDate")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	if !priority.Valid() {
		return &ValidationError{Fields: []string{"priority"}, Reason: fmt.Sprintf("unknown priority %q", priority)}
	}
	return nil
}
