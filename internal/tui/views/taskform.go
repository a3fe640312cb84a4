package views

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tasktracker/internal/task"
	"github.com/pablasso/tasktracker/internal/tui/components"
	"github.com/pablasso/tasktracker/internal/tui/msgs"
	"github.com/pablasso/tasktracker/internal/tui/styles"
)

// Form fields in focus order.
const (
	FieldTitle = iota
	FieldDescription
	FieldDueDate
	FieldPriority
	fieldCount
)

// MissingFieldsNotice is shown when a submission fails validation.
const MissingFieldsNotice = "Please fill out all fields."

var fieldLabels = [...]string{"Title", "Description", "Due date", "Priority"}

// TaskFormModel is the new task form.
type TaskFormModel struct {
	store  TaskStore
	styles styles.Styles

	inputs   []textinput.Model // title, description, due date
	priority int               // index into task.Priorities
	focus    int
	notice   string

	width  int
	height int
}

// NewTaskFormModel creates an empty form.
func NewTaskFormModel(st TaskStore, s styles.Styles) TaskFormModel {
	m := TaskFormModel{
		store:  st,
		styles: s,
		inputs: make([]textinput.Model, FieldPriority),
	}

	placeholders := [...]string{"What needs doing?", "Details", "YYYY-MM-DD"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 256
		ti.Width = 50
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	return m
}

// Init implements tea.Model.
func (m TaskFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Focus focuses the current field and returns its cursor command.
func (m *TaskFormModel) Focus() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if m.focus < FieldPriority {
		return m.inputs[m.focus].Focus()
	}
	return nil
}

// Reset clears every field and moves focus back to the title.
func (m *TaskFormModel) Reset() {
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.priority = 0
	m.focus = FieldTitle
	m.notice = ""
}

// Update implements tea.Model.
func (m TaskFormModel) Update(msg tea.Msg) (TaskFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// The notice blocks input until it is dismissed.
		if m.notice != "" {
			m.notice = ""
			return m, nil
		}

		switch msg.String() {
		case "esc":
			m.Reset()
			return m, func() tea.Msg { return msgs.GoToListMsg{} }
		case "enter":
			return m.submit()
		case "tab", "down":
			m.focus = (m.focus + 1) % fieldCount
			return m, m.Focus()
		case "shift+tab", "up":
			m.focus = (m.focus + fieldCount - 1) % fieldCount
			return m, m.Focus()
		}

		if m.focus == FieldPriority {
			switch msg.String() {
			case "left", "h":
				m.priority = (m.priority + len(task.Priorities) - 1) % len(task.Priorities)
			case "right", "l", " ":
				m.priority = (m.priority + 1) % len(task.Priorities)
			}
			return m, nil
		}
	}

	if m.focus < FieldPriority {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m TaskFormModel) submit() (TaskFormModel, tea.Cmd) {
	title, description, dueDate, priority := m.Values()

	_, err := m.store.Add(title, description, dueDate, priority)
	var verr *task.ValidationError
	if errors.As(err, &verr) {
		m.notice = MissingFieldsNotice
		return m, nil
	}

	m.Reset()
	back := func() tea.Msg { return msgs.GoToListMsg{} }
	if err != nil {
		return m, tea.Batch(back, msgs.ErrorCmd(err))
	}
	return m, back
}

// View implements tea.Model.
func (m TaskFormModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("New Task"))
	b.WriteString("\n\n")

	for i := range fieldCount {
		label := fieldLabels[i]
		if i == m.focus {
			b.WriteString(m.styles.Selected.Render("> " + label))
		} else {
			b.WriteString(m.styles.Subtle.Render("  " + label))
		}
		b.WriteString("\n  ")
		if i < FieldPriority {
			b.WriteString(m.inputs[i].View())
		} else {
			b.WriteString(m.renderPriority())
		}
		b.WriteString("\n\n")
	}

	if m.notice != "" {
		b.WriteString(m.styles.Notice.Render(m.notice))
		b.WriteString("\n")
		b.WriteString(m.styles.Subtle.Render("Press any key to continue"))
		b.WriteString("\n")
	}

	content := b.String()
	padding := max(m.height-lipgloss.Height(content)-1, 0)
	content += strings.Repeat("\n", padding)

	statusItems := []string{"Tab Next field", "←/→ Priority", "Enter Save", "Esc Cancel"}
	return content + components.NewStatusBar(m.styles.StatusBar).Render(m.width, statusItems)
}

func (m TaskFormModel) renderPriority() string {
	parts := make([]string, len(task.Priorities))
	for i, p := range task.Priorities {
		if i == m.priority {
			parts[i] = m.styles.Priority(p).Render("[" + string(p) + "]")
		} else {
			parts[i] = m.styles.Subtle.Render(" " + string(p) + " ")
		}
	}
	return strings.Join(parts, " ")
}

// SetSize updates the model dimensions.
func (m *TaskFormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetStyles replaces the styles after a theme change.
func (m *TaskFormModel) SetStyles(s styles.Styles) {
	m.styles = s
}

// Values returns the entered title, description, due date and priority.
func (m TaskFormModel) Values() (title, description, dueDate string, priority task.Priority) {
	return m.inputs[FieldTitle].Value(),
		m.inputs[FieldDescription].Value(),
		m.inputs[FieldDueDate].Value(),
		task.Priorities[m.priority]
}

// Focused returns the focused field.
func (m TaskFormModel) Focused() int {
	return m.focus
}

// Notice returns the blocking notice, or "" when none is shown.
func (m TaskFormModel) Notice() string {
	return m.notice
}
