package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tasktracker/internal/task"
	"github.com/pablasso/tasktracker/internal/tui/components"
	"github.com/pablasso/tasktracker/internal/tui/msgs"
	"github.com/pablasso/tasktracker/internal/tui/styles"
)

var editPrompts = [...]string{
	"Edit task title",
	"Edit task description",
	"Edit task due date",
	"Edit task priority",
}

// EditPromptModel asks for each field of a task in turn. The task is only
// changed once every prompt has been answered.
type EditPromptModel struct {
	store  TaskStore
	styles styles.Styles

	taskID  int64
	answers [len(editPrompts)]string
	step    int
	input   textinput.Model
	errMsg  string

	width  int
	height int
}

// NewEditPromptModel creates the edit prompts. Call Start before use.
func NewEditPromptModel(st TaskStore, s styles.Styles) EditPromptModel {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	ti.Prompt = "> "

	return EditPromptModel{
		store:  st,
		styles: s,
		input:  ti,
	}
}

// Start begins editing t, pre-filling each prompt with its current values.
func (m *EditPromptModel) Start(t task.Task) tea.Cmd {
	m.taskID = t.ID
	m.answers = [len(editPrompts)]string{t.Title, t.Description, t.DueDate, string(t.Priority)}
	m.step = 0
	m.errMsg = ""
	m.prefill()
	return m.input.Focus()
}

func (m *EditPromptModel) prefill() {
	m.input.SetValue(m.answers[m.step])
	m.input.CursorEnd()
}

// Init implements tea.Model.
func (m EditPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m EditPromptModel) Update(msg tea.Msg) (EditPromptModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m.abandon()
		case "enter":
			return m.answer()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// answer records the current prompt and advances. An empty answer
// abandons the whole edit.
func (m EditPromptModel) answer() (EditPromptModel, tea.Cmd) {
	value := m.input.Value()
	if strings.TrimSpace(value) == "" {
		return m.abandon()
	}

	if m.step == len(editPrompts)-1 {
		p, err := task.ParsePriority(value)
		if err != nil {
			m.errMsg = "Priority must be High, Medium or Low."
			return m, nil
		}
		value = string(p)
	}

	m.answers[m.step] = value
	m.errMsg = ""
	m.step++

	if m.step < len(editPrompts) {
		m.prefill()
		return m, nil
	}

	err := m.store.Edit(m.taskID, m.answers[0], m.answers[1], m.answers[2], task.Priority(m.answers[3]))
	m.input.Blur()
	back := func() tea.Msg { return msgs.GoToListMsg{} }
	if err != nil {
		return m, tea.Batch(back, msgs.ErrorCmd(err))
	}
	return m, back
}

func (m EditPromptModel) abandon() (EditPromptModel, tea.Cmd) {
	m.input.Blur()
	m.errMsg = ""
	return m, func() tea.Msg { return msgs.GoToListMsg{} }
}

// View implements tea.Model.
func (m EditPromptModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Edit Task"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("Step %d of %d", m.step+1, len(editPrompts))))
	b.WriteString("\n\n")

	prompt := editPrompts[min(m.step, len(editPrompts)-1)]
	box := m.styles.Box.Width(min(m.width-4, 64)).Render(
		m.styles.Text.Render(prompt) + "\n\n" + m.input.View(),
	)
	b.WriteString(box)
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.errMsg))
		b.WriteString("\n")
	}

	content := b.String()
	padding := max(m.height-lipgloss.Height(content)-1, 0)
	content += strings.Repeat("\n", padding)

	statusItems := []string{"Enter Next", "Empty value Cancel", "Esc Cancel"}
	return content + components.NewStatusBar(m.styles.StatusBar).Render(m.width, statusItems)
}

// SetSize updates the model dimensions.
func (m *EditPromptModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetStyles replaces the styles after a theme change.
func (m *EditPromptModel) SetStyles(s styles.Styles) {
	m.styles = s
}

// TaskID returns the id of the task being edited.
func (m EditPromptModel) TaskID() int64 {
	return m.taskID
}

// Step returns the index of the current prompt.
func (m EditPromptModel) Step() int {
	return m.step
}

// Value returns the current answer text.
func (m EditPromptModel) Value() string {
	return m.input.Value()
}

// Error returns the inline error for the current prompt.
func (m EditPromptModel) Error() string {
	return m.errMsg
}
