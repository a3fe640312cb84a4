package views

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pablasso/tasktracker/internal/storage"
	"github.com/pablasso/tasktracker/internal/store"
	"github.com/pablasso/tasktracker/internal/task"
	"github.com/pablasso/tasktracker/internal/tui/msgs"
	"github.com/pablasso/tasktracker/internal/tui/styles"
)

func newTestForm(st TaskStore) TaskFormModel {
	m := NewTaskFormModel(st, styles.New(storage.ThemeLight))
	m.SetSize(80, 30)
	m.Focus()
	return m
}

// typeText types s into the focused field.
func typeText(m TaskFormModel, s string) TaskFormModel {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func fillForm(m TaskFormModel, title, description, dueDate string) TaskFormModel {
	m = typeText(m, title)
	m, _ = m.Update(key("tab"))
	m = typeText(m, description)
	m, _ = m.Update(key("tab"))
	m = typeText(m, dueDate)
	return m
}

func TestTaskFormModel_SubmitAddsTask(t *testing.T) {
	st := newTestStore(t)
	m := newTestForm(st)

	m = fillForm(m, "Pay bills", "Monthly bill", "2024-03-01")
	m, _ = m.Update(key("tab"))
	if m.Focused() != FieldPriority {
		t.Fatalf("expected priority focus, got %d", m.Focused())
	}
	m, _ = m.Update(key("right"))
	m, cmd := m.Update(key("enter"))

	if cmd == nil {
		t.Fatal("expected a command after submit")
	}
	if _, ok := cmd().(msgs.GoToListMsg); !ok {
		t.Error("expected GoToListMsg after a successful submit")
	}

	tasks := st.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	got := tasks[0]
	if got.Title != "Pay bills" || got.Description != "Monthly bill" || got.DueDate != "2024-03-01" {
		t.Errorf("unexpected task: %+v", got)
	}
	if got.Priority != task.PriorityMedium || got.Status != task.StatusPending {
		t.Errorf("expected pending Medium task, got %+v", got)
	}

	title, description, dueDate, priority := m.Values()
	if title != "" || description != "" || dueDate != "" || priority != task.PriorityHigh {
		t.Errorf("expected form reset after submit, got %q %q %q %q", title, description, dueDate, priority)
	}
	if m.Focused() != FieldTitle {
		t.Errorf("expected focus back on title, got %d", m.Focused())
	}
}

func TestTaskFormModel_ValidationKeepsValues(t *testing.T) {
	st := newTestStore(t)
	m := newTestForm(st)

	m = typeText(m, "Only a title")
	m, cmd := m.Update(key("enter"))

	if cmd != nil {
		t.Error("expected no navigation on validation failure")
	}
	if m.Notice() != MissingFieldsNotice {
		t.Errorf("expected notice %q, got %q", MissingFieldsNotice, m.Notice())
	}
	if !strings.Contains(m.View(), MissingFieldsNotice) {
		t.Errorf("expected notice in view, got:\n%s", m.View())
	}
	if st.Len() != 0 {
		t.Errorf("expected store unchanged, got %d tasks", st.Len())
	}

	// Any key dismisses the notice without reaching the inputs.
	m = typeText(m, "z")
	if m.Notice() != "" {
		t.Error("expected notice dismissed")
	}
	if title, _, _, _ := m.Values(); title != "Only a title" {
		t.Errorf("expected form values kept, got title %q", title)
	}
}

func TestTaskFormModel_WhitespaceIsRejected(t *testing.T) {
	st := newTestStore(t)
	m := fillForm(newTestForm(st), "   ", "desc", "2024-01-01")

	m, _ = m.Update(key("enter"))
	if m.Notice() == "" || st.Len() != 0 {
		t.Errorf("expected whitespace title to be rejected, notice %q, %d tasks", m.Notice(), st.Len())
	}
}

func TestTaskFormModel_EscCancels(t *testing.T) {
	st := newTestStore(t)
	m := fillForm(newTestForm(st), "A", "B", "C")

	m, cmd := m.Update(key("esc"))
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	if _, ok := cmd().(msgs.GoToListMsg); !ok {
		t.Error("expected GoToListMsg on esc")
	}
	if title, _, _, _ := m.Values(); title != "" {
		t.Errorf("expected cleared form, got title %q", title)
	}
	if st.Len() != 0 {
		t.Error("cancel must not add a task")
	}
}

func TestTaskFormModel_FocusWraps(t *testing.T) {
	m := newTestForm(newTestStore(t))

	m, _ = m.Update(key("shift+tab"))
	if m.Focused() != FieldPriority {
		t.Errorf("expected shift+tab from title to wrap to priority, got %d", m.Focused())
	}
	m, _ = m.Update(key("tab"))
	if m.Focused() != FieldTitle {
		t.Errorf("expected tab from priority to wrap to title, got %d", m.Focused())
	}
}

func TestTaskFormModel_PrioritySelector(t *testing.T) {
	m := newTestForm(newTestStore(t))
	m, _ = m.Update(key("shift+tab"))

	m, _ = m.Update(key("left"))
	if _, _, _, p := m.Values(); p != task.PriorityLow {
		t.Errorf("expected left from High to wrap to Low, got %q", p)
	}
	m, _ = m.Update(key("right"))
	m, _ = m.Update(key("right"))
	if _, _, _, p := m.Values(); p != task.PriorityMedium {
		t.Errorf("expected Medium, got %q", p)
	}
	if !strings.Contains(m.View(), "[Medium]") {
		t.Errorf("expected selected priority in view, got:\n%s", m.View())
	}
}

// failingStore accepts every task but fails to persist it.
type failingStore struct {
	*store.Store
}

func (f failingStore) Add(title, description, dueDate string, priority task.Priority) (task.Task, error) {
	tk, err := f.Store.Add(title, description, dueDate, priority)
	if err != nil {
		return tk, err
	}
	return tk, errors.New("disk full")
}

func TestTaskFormModel_SaveErrorIsReported(t *testing.T) {
	m := fillForm(newTestForm(failingStore{newTestStore(t)}), "A", "B", "2024-01-01")

	m, cmd := m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("expected commands after submit")
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatalf("expected a batch, got %T", cmd())
	}

	var sawList, sawErr bool
	for _, c := range batch {
		switch msg := c().(type) {
		case msgs.GoToListMsg:
			sawList = true
		case msgs.ErrorMsg:
			sawErr = strings.Contains(msg.Err.Error(), "disk full")
		}
	}
	if !sawList || !sawErr {
		t.Errorf("expected list navigation and error, got list=%v err=%v", sawList, sawErr)
	}
	if m.Notice() != "" {
		t.Error("save errors are not validation notices")
	}
}
