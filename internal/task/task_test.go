package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestStatus_Toggled(t *testing.T) {
	if got := StatusPending.Toggled(); got != StatusCompleted {
		t.Errorf("pending toggled = %q, want %q", got, StatusCompleted)
	}
	if got := StatusCompleted.Toggled(); got != StatusPending {
		t.Errorf("completed toggled = %q, want %q", got, StatusPending)
	}
	if got := StatusPending.Toggled().Toggled(); got != StatusPending {
		t.Errorf("double toggle = %q, want %q", got, StatusPending)
	}
}

func TestPriority_Rank(t *testing.T) {
	tests := []struct {
		priority Priority
		want     int
	}{
		{PriorityHigh, 1},
		{PriorityMedium, 2},
		{PriorityLow, 3},
		{Priority("Urgent"), 4},
		{Priority(""), 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			if got := tt.priority.Rank(); got != tt.want {
				t.Errorf("Rank() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{"High", PriorityHigh, false},
		{"high", PriorityHigh, false},
		{" MEDIUM ", PriorityMedium, false},
		{"low", PriorityLow, false},
		{"urgent", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParsePriority(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	if s, err := ParseStatus("Completed"); err != nil || s != StatusCompleted {
		t.Errorf("ParseStatus(Completed) = %q, %v", s, err)
	}
	if _, err := ParseStatus("done"); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestValidate(t *testing.T) {
	t.Run("all fields present", func(t *testing.T) {
		if err := Validate("Pay bills", "Monthly bill", "2024-03-01", PriorityHigh); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("blank title", func(t *testing.T) {
		err := Validate("   ", "desc", "2024-03-01", PriorityLow)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(ve.Fields) != 1 || ve.Fields[0] != "title" {
			t.Errorf("Fields = %v, want [title]", ve.Fields)
		}
	})

	t.Run("lists every missing field", func(t *testing.T) {
		err := Validate("", "\t", "", PriorityLow)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		want := []string{"title", "description", "dueDate"}
		if fmt.Sprint(ve.Fields) != fmt.Sprint(want) {
			t.Errorf("Fields = %v, want %v", ve.Fields, want)
		}
	})

	t.Run("unknown priority", func(t *testing.T) {
		err := Validate("a", "b", "2024-01-01", Priority("Urgent"))
		if !IsValidationError(err) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("wrapped error still matches", func(t *testing.T) {
		err := fmt.Errorf("add: %w", Validate("", "b", "c", PriorityHigh))
		if !IsValidationError(err) {
			t.Fatal("expected wrapped ValidationError to match")
		}
	})
}

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
		want  time.Time
	}{
		{"2024-05-01", true, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-05-01T09:30", true, time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)},
		{"05/01/2024", true, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"May 1, 2024", true, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-3-1", true, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-06-15T10:00:00", true, time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)},
		{"2024-06-15 10:00:00", true, time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)},
		{"2024/06/15", true, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"6/15/2024", true, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-13-01", false, time.Time{}},
		{"someday", false, time.Time{}},
		{"", false, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDueDate(tt.input)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTask_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Task{
		ID:          1709251200000,
		Title:       "Pay bills",
		Description: "Monthly bill",
		DueDate:     "2024-03-01",
		Priority:    PriorityHigh,
		Status:      StatusPending,
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"id":1709251200000,"title":"Pay bills","description":"Monthly bill","dueDate":"2024-03-01","priority":"High","status":"pending"}`
	if string(data) != want {
		t.Errorf("got %s\nwant %s", data, want)
	}
}
