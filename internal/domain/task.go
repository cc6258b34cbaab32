package domain

const (
	completedMark = "✓"
	pendingMark   = " "
)

// Task represents a titled, dated, completable unit of work.
// This is a pure domain model: no validation happens here.
type Task struct {
	title     string
	dueDate   Date
	completed bool
}

// NewTask creates a new, not yet completed Task.
func NewTask(title string, dueDate Date) *Task {
	return &Task{
		title:   title,
		dueDate: dueDate,
	}
}

// Title returns the task title.
func (t Task) Title() string {
	return t.title
}

// DueDate returns the calendar date the task is due.
func (t Task) DueDate() Date {
	return t.dueDate
}

// IsCompleted returns true once the task has been marked completed.
func (t Task) IsCompleted() bool {
	return t.completed
}

// MarkCompleted marks the task as completed. Calling it again has no further effect.
func (t *Task) MarkCompleted() {
	t.completed = true
}

// String returns the display form "[<mark>] <title> (Due: <YYYY-MM-DD>)".
func (t Task) String() string {
	mark := pendingMark
	if t.completed {
		mark = completedMark
	}
	return "[" + mark + "] " + t.title + " (Due: " + t.dueDate.String() + ")"
}
