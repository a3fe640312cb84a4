package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pablasso/tasktracker/internal/task"
)

// SortKey selects the field Sort orders by.
type SortKey string

// Sort keys
const (
	SortByDueDate  SortKey = "dueDate"
	SortByPriority SortKey = "priority"
	SortByTitle    SortKey = "title"
)

// SortKeys lists the sort keys in selector order.
var SortKeys = []SortKey{SortByDueDate, SortByPriority, SortByTitle}

// Criterion selects the field Filter matches on.
type Criterion string

// Filter criteria
const (
	CriterionStatus   Criterion = "status"
	CriterionPriority Criterion = "priority"
)

// FilterAll is the filter value that matches every task.
const FilterAll = "all"

var (
	// ErrUnknownSortKey is returned by Sort for keys other than dueDate,
	// priority and title.
	ErrUnknownSortKey = errors.New("unknown sort key")
	// ErrUnknownCriterion is returned by Filter for criteria other than
	// status and priority.
	ErrUnknownCriterion = errors.New("unknown filter criterion")
)

// ParseSortKey parses a sort key name, case-insensitively.
func ParseSortKey(s string) (SortKey, error) {
	for _, k := range SortKeys {
		if strings.EqualFold(string(k), strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w %q (want dueDate, priority or title)", ErrUnknownSortKey, s)
}

func (s *Store) comparator(key SortKey) (func(a, b task.Task) int, error) {
	switch key {
	case SortByDueDate:
		return compareDueDate, nil
	case SortByPriority:
		return func(a, b task.Task) int {
			return a.Priority.Rank() - b.Priority.Rank()
		}, nil
	case SortByTitle:
		return func(a, b task.Task) int {
			return s.collator.CompareString(a.Title, b.Title)
		}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownSortKey, key)
}

// compareDueDate orders chronologically. Unparseable dates sort after
// every parseable one and compare equal to each other.
func compareDueDate(a, b task.Task) int {
	ta, okA := a.Due()
	tb, okB := b.Due()
	switch {
	case okA && okB:
		return ta.Compare(tb)
	case okA:
		return -1
	case okB:
		return 1
	}
	return 0
}

// Filter returns the tasks whose criterion field equals value, in stored
// order. The value "all" returns every task. The stored sequence is not
// modified, and each call starts from the full sequence.
func (s *Store) Filter(criterion Criterion, value string) ([]task.Task, error) {
	var match func(task.Task) bool
	switch criterion {
	case CriterionStatus:
		match = func(t task.Task) bool { return string(t.Status) == value }
	case CriterionPriority:
		match = func(t task.Task) bool { return string(t.Priority) == value }
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownCriterion, criterion)
	}

	if value == FilterAll {
		return s.Tasks(), nil
	}
	return s.collect(match), nil
}

// Query is a composable view over the stored sequence. Zero fields match
// everything.
type Query struct {
	Status   task.Status
	Priority task.Priority
	Match    func(task.Task) bool
}

// Matches reports whether t satisfies every set field of q.
func (q Query) Matches(t task.Task) bool {
	if q.Status != "" && t.Status != q.Status {
		return false
	}
	if q.Priority != "" && t.Priority != q.Priority {
		return false
	}
	if q.Match != nil && !q.Match(t) {
		return false
	}
	return true
}

// Query returns the tasks matching q, in stored order.
func (s *Store) Query(q Query) []task.Task {
	return s.collect(q.Matches)
}

func (s *Store) collect(match func(task.Task) bool) []task.Task {
	out := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if match(t) {
			out = append(out, t)
		}
	}
	return out
}
