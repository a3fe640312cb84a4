package views

import (
	"github.com/pablasso/tasktracker/internal/store"
	"github.com/pablasso/tasktracker/internal/task"
)

// TaskStore is the part of the task store the views drive.
type TaskStore interface {
	Query(q store.Query) []task.Task
	Get(id int64) (task.Task, bool)
	Add(title, description, dueDate string, priority task.Priority) (task.Task, error)
	Edit(id int64, title, description, dueDate string, priority task.Priority) error
	ToggleCompletion(id int64) error
	Delete(id int64) error
	Sort(key store.SortKey) error
}
