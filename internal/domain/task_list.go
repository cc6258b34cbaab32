package domain

import "slices"

// TaskList owns an ordered sequence of tasks.
// Out-of-range positions passed to DeleteAt and MarkCompletedAt are ignored.
type TaskList struct {
	tasks []*Task
}

// NewTaskList creates an empty TaskList.
func NewTaskList() *TaskList {
	return &TaskList{}
}

// Add appends task to the end of the list.
func (l *TaskList) Add(task *Task) {
	if task == nil {
		return
	}
	l.tasks = append(l.tasks, task)
}

// DeleteAt removes the task at index. Subsequent tasks shift down by one.
func (l *TaskList) DeleteAt(index int) {
	if !l.inRange(index) {
		return
	}
	l.tasks = slices.Delete(l.tasks, index, index+1)
}

// MarkCompletedAt marks the task at index as completed.
func (l *TaskList) MarkCompletedAt(index int) {
	if !l.inRange(index) {
		return
	}
	l.tasks[index].MarkCompleted()
}

// All returns a snapshot of the tasks in their current order.
func (l *TaskList) All() []Task {
	snapshot := make([]Task, len(l.tasks))
	for i, task := range l.tasks {
		snapshot[i] = *task
	}
	return snapshot
}

// Len returns the number of tasks in the list.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// SortByDueDate orders the tasks by ascending due date.
// Tasks sharing a due date keep their relative order.
func (l *TaskList) SortByDueDate() {
	slices.SortStableFunc(l.tasks, func(a, b *Task) int {
		return a.dueDate.Compare(b.dueDate)
	})
}

// Render returns the display string of every task in order.
func (l *TaskList) Render() []string {
	lines := make([]string, len(l.tasks))
	for i, task := range l.tasks {
		lines[i] = task.String()
	}
	return lines
}

func (l *TaskList) inRange(index int) bool {
	return index >= 0 && index < len(l.tasks)
}
