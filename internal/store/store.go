// Package store holds the authoritative in-memory task sequence and
// persists it after every mutation.
package store

import (
	"fmt"
	"slices"
	"time"

	"github.com/pablasso/tasktracker/internal/task"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Persister loads and saves the full task snapshot.
type Persister interface {
	Load() []task.Task
	Save(tasks []task.Task) error
}

// Store is the ordered task collection. It is not safe for concurrent
// use; callers run every operation on one goroutine.
type Store struct {
	tasks    []task.Task
	persist  Persister
	now      func() time.Time
	collator *collate.Collator

	subscribers []subscriber
	nextSubID   int
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used to derive task ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLocale sets the locale used to collate titles when sorting.
func WithLocale(tag language.Tag) Option {
	return func(s *Store) {
		s.collator = collate.New(tag)
	}
}

// New creates a Store and loads the persisted snapshot once.
func New(p Persister, opts ...Option) *Store {
	s := &Store{
		persist:  p,
		now:      time.Now,
		collator: collate.New(language.English),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.tasks = p.Load()
	if s.tasks == nil {
		s.tasks = []task.Task{}
	}
	return s
}

// Tasks returns a copy of the full sequence in stored order.
func (s *Store) Tasks() []task.Task {
	return slices.Clone(s.tasks)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns the first task with the given id.
func (s *Store) Get(id int64) (task.Task, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return task.Task{}, false
}

// Add appends a new pending task. If title, description or dueDate is
// blank, or the priority is unknown, a *task.ValidationError is returned
// and the store is unchanged. A save failure is returned alongside the
// task, which stays in memory.
func (s *Store) Add(title, description, dueDate string, priority task.Priority) (task.Task, error) {
	if err := task.Validate(title, description, dueDate, priority); err != nil {
		return task.Task{}, err
	}

	t := task.Task{
		ID:          s.nextID(),
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Priority:    priority,
		Status:      task.StatusPending,
	}
	s.tasks = append(s.tasks, t)

	return t, s.commit(Event{Kind: EventAdded, TaskID: t.ID})
}

// ToggleCompletion flips the status of the first task with the given id.
// Unknown ids are a no-op.
func (s *Store) ToggleCompletion(id int64) error {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.tasks[i].Status = s.tasks[i].Status.Toggled()
	return s.commit(Event{Kind: EventToggled, TaskID: id})
}

// Delete removes every task with the given id. Unknown ids are a no-op.
func (s *Store) Delete(id int64) error {
	before := len(s.tasks)
	s.tasks = slices.DeleteFunc(s.tasks, func(t task.Task) bool {
		return t.ID == id
	})
	if len(s.tasks) == before {
		return nil
	}
	return s.commit(Event{Kind: EventDeleted, TaskID: id})
}

// Edit overwrites the user-entered fields of the first task with the given
// id. It applies the same validation as Add. Unknown ids are a no-op.
func (s *Store) Edit(id int64, title, description, dueDate string, priority task.Priority) error {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	if err := task.Validate(title, description, dueDate, priority); err != nil {
		return err
	}

	s.tasks[i].Title = title
	s.tasks[i].Description = description
	s.tasks[i].DueDate = dueDate
	s.tasks[i].Priority = priority
	return s.commit(Event{Kind: EventUpdated, TaskID: id})
}

// Sort reorders the full sequence in place and persists the new order.
func (s *Store) Sort(key SortKey) error {
	cmp, err := s.comparator(key)
	if err != nil {
		return err
	}
	slices.SortStableFunc(s.tasks, cmp)
	return s.commit(Event{Kind: EventSorted})
}

// nextID derives an id from the clock in milliseconds, bumped past the
// highest existing id so two tasks created in the same millisecond still
// get distinct ids.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	for _, t := range s.tasks {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}

func (s *Store) indexOf(id int64) int {
	return slices.IndexFunc(s.tasks, func(t task.Task) bool {
		return t.ID == id
	})
}

// commit saves the snapshot and then notifies subscribers. Subscribers are
// notified even when the save fails, since the in-memory state has changed.
func (s *Store) commit(ev Event) error {
	err := s.persist.Save(s.tasks)
	s.notify(ev)
	if err != nil {
		return fmt.Errorf("persist tasks: %w", err)
	}
	return nil
}
