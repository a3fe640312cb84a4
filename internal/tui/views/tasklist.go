package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tasktracker/internal/store"
	"github.com/pablasso/tasktracker/internal/task"
	"github.com/pablasso/tasktracker/internal/tui/components"
	"github.com/pablasso/tasktracker/internal/tui/msgs"
	"github.com/pablasso/tasktracker/internal/tui/styles"
)

const (
	// rowHeight is the number of lines a task takes, including the gap.
	rowHeight = 4
	// listChromeHeight covers the header block and the status bar.
	listChromeHeight = 4
	completionWidth  = 10
)

var (
	statusFilters   = []task.Status{"", task.StatusPending, task.StatusCompleted}
	priorityFilters = append([]task.Priority{""}, task.Priorities...)
)

// TaskListModel is the landing screen: the visible task sequence plus the
// sort and filter selectors.
type TaskListModel struct {
	store  TaskStore
	styles styles.Styles

	tasks  []task.Task // visible sequence
	cursor int
	offset int

	sortKey  store.SortKey
	status   task.Status
	priority task.Priority

	width  int
	height int
}

// NewTaskListModel creates the list and loads the visible sequence.
func NewTaskListModel(st TaskStore, s styles.Styles) TaskListModel {
	m := TaskListModel{
		store:  st,
		styles: s,
	}
	m.Refresh()
	return m
}

// Init implements tea.Model.
func (m TaskListModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m TaskListModel) Update(msg tea.Msg) (TaskListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case msgs.TasksChangedMsg:
		m.Refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			m.scrollToCursor()
		case "down", "j":
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
			m.scrollToCursor()
		case "a":
			return m, func() tea.Msg { return msgs.GoToFormMsg{} }
		case "e":
			if t, ok := m.Selected(); ok {
				return m, func() tea.Msg { return msgs.GoToEditMsg{TaskID: t.ID} }
			}
		case " ", "x":
			if t, ok := m.Selected(); ok {
				return m, msgs.ErrorCmd(m.store.ToggleCompletion(t.ID))
			}
		case "d":
			if t, ok := m.Selected(); ok {
				return m, msgs.ErrorCmd(m.store.Delete(t.ID))
			}
		case "s":
			m.sortKey = nextSortKey(m.sortKey)
			return m, msgs.ErrorCmd(m.store.Sort(m.sortKey))
		case "f":
			m.status = cycle(statusFilters, m.status)
			m.Refresh()
		case "p":
			m.priority = cycle(priorityFilters, m.priority)
			m.Refresh()
		case "t":
			return m, func() tea.Msg { return msgs.ToggleThemeMsg{} }
		}
	}
	return m, nil
}

// Refresh recomputes the visible sequence from the store, keeping the
// cursor on the same task when it is still visible.
func (m *TaskListModel) Refresh() {
	selected, hadSelection := m.Selected()

	m.tasks = m.store.Query(m.query())

	if hadSelection {
		for i, t := range m.tasks {
			if t.ID == selected.ID {
				m.cursor = i
				m.scrollToCursor()
				return
			}
		}
	}
	m.cursor = min(m.cursor, max(len(m.tasks)-1, 0))
	m.scrollToCursor()
}

func (m TaskListModel) query() store.Query {
	return store.Query{Status: m.status, Priority: m.priority}
}

func (m TaskListModel) perPage() int {
	return max((m.height-listChromeHeight)/rowHeight, 1)
}

func (m *TaskListModel) scrollToCursor() {
	per := m.perPage()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+per {
		m.offset = m.cursor - per + 1
	}
	m.offset = max(min(m.offset, len(m.tasks)-per), 0)
}

func nextSortKey(current store.SortKey) store.SortKey {
	if current == "" {
		return store.SortKeys[0]
	}
	return cycle(store.SortKeys, current)
}

// cycle returns the element after current, wrapping around.
func cycle[T comparable](options []T, current T) T {
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

// View implements tea.Model.
func (m TaskListModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	bodyHeight := max(m.height-listChromeHeight, 1)
	body := m.renderRows()
	bar := components.RenderScrollbar(bodyHeight, len(m.tasks), m.perPage(), m.offset)
	bodyBlock := lipgloss.NewStyle().
		Width(m.width - 2).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(body)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, bodyBlock, " ", m.styles.Subtle.Render(bar)))
	b.WriteString("\n")

	statusItems := []string{"a Add", "e Edit", "x Toggle", "d Delete", "s Sort", "f Status", "p Priority", "t Theme", "q Quit"}
	b.WriteString(components.NewStatusBar(m.styles.StatusBar).Render(m.width, statusItems))

	return b.String()
}

func (m TaskListModel) renderHeader() string {
	title := m.styles.Title.Render("Tasks")
	meter := m.styles.Subtle.Render(components.NewCompletion(m.completedCount(), len(m.tasks), completionWidth).View())
	gap := max(m.width-lipgloss.Width(title)-lipgloss.Width(meter), 1)
	top := title + strings.Repeat(" ", gap) + meter

	selectors := fmt.Sprintf("Sort: %s  |  Status: %s  |  Priority: %s",
		labelOr(string(m.sortKey), "none"),
		labelOr(string(m.status), store.FilterAll),
		labelOr(string(m.priority), store.FilterAll))

	return top + "\n" + m.styles.Subtle.Render(selectors)
}

func (m TaskListModel) renderRows() string {
	if len(m.tasks) == 0 {
		if m.status != "" || m.priority != "" {
			return m.styles.Subtle.Render("No tasks match the current filters.")
		}
		return m.styles.Subtle.Render("No tasks yet. Press a to add one.")
	}

	end := min(m.offset+m.perPage(), len(m.tasks))
	rows := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		rows = append(rows, m.renderTask(m.tasks[i], i == m.cursor))
	}
	return strings.Join(rows, "\n\n")
}

// renderTask draws one task as its heading, description and due date.
func (m TaskListModel) renderTask(t task.Task, selected bool) string {
	marker := "  "
	if selected {
		marker = "> "
	}

	heading := t.Title + " " + m.styles.Priority(t.Priority).Render("["+string(t.Priority)+"]")
	if t.IsCompleted() {
		heading = t.Title + " [" + string(t.Priority) + "] (Completed)"
	}

	lines := []string{
		heading,
		t.Description,
		"Due: " + t.DueDate,
	}

	body := m.styles.Text
	switch {
	case t.IsCompleted():
		body = m.styles.Completed
	case selected:
		body = m.styles.Selected
	}

	width := max(m.width-6, 10)
	for i, line := range lines {
		prefix := "  "
		if i == 0 {
			prefix = marker
		}
		lines[i] = prefix + body.MaxWidth(width).Render(line)
	}
	return strings.Join(lines, "\n")
}

func (m TaskListModel) completedCount() int {
	n := 0
	for _, t := range m.tasks {
		if t.IsCompleted() {
			n++
		}
	}
	return n
}

func labelOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// SetSize updates the model dimensions.
func (m *TaskListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.scrollToCursor()
}

// SetStyles replaces the styles after a theme change.
func (m *TaskListModel) SetStyles(s styles.Styles) {
	m.styles = s
}

// Tasks returns the visible sequence.
func (m TaskListModel) Tasks() []task.Task {
	return m.tasks
}

// Cursor returns the current cursor position.
func (m TaskListModel) Cursor() int {
	return m.cursor
}

// Offset returns the index of the first visible row.
func (m TaskListModel) Offset() int {
	return m.offset
}

// Selected returns the task under the cursor.
func (m TaskListModel) Selected() (task.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return task.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// SortKey returns the last applied sort key, or "" before the first sort.
func (m TaskListModel) SortKey() store.SortKey {
	return m.sortKey
}

// StatusFilter returns the active status filter; "" means all.
func (m TaskListModel) StatusFilter() task.Status {
	return m.status
}

// PriorityFilter returns the active priority filter; "" means all.
func (m TaskListModel) PriorityFilter() task.Priority {
	return m.priority
}
