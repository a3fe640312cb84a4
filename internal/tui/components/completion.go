package components

import (
	"fmt"
	"strings"
)

const (
	filledChar = "■"
	emptyChar  = "□"
)

// Completion renders how many tasks are done, like: ■■■■□□□□ 2/4 done
type Completion struct {
	Done  int
	Total int
	Width int // character width of the bar portion
}

// NewCompletion creates a new Completion meter.
func NewCompletion(done, total, width int) Completion {
	return Completion{
		Done:  done,
		Total: total,
		Width: width,
	}
}

// View returns the rendered meter, or "" when there are no tasks.
func (c Completion) View() string {
	if c.Total <= 0 || c.Width <= 0 {
		return ""
	}

	done := min(max(c.Done, 0), c.Total)
	filled := (done * c.Width) / c.Total

	bar := strings.Repeat(filledChar, filled) + strings.Repeat(emptyChar, c.Width-filled)
	return fmt.Sprintf("%s %d/%d done", bar, done, c.Total)
}
