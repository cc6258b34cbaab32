package services

import (
	"task-reminder/internal/domain"
	"task-reminder/internal/errors"
	"task-reminder/internal/logging"
	"task-reminder/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	tasks         *domain.TaskList
	taskValidator *validation.TaskValidator
	log           *logging.Logger
}

// NewTaskService creates a new TaskService over the given list
func NewTaskService(tasks *domain.TaskList) TaskService {
	if tasks == nil {
		tasks = domain.NewTaskList()
	}
	return &taskServiceImpl{
		tasks:         tasks,
		taskValidator: validation.NewTaskValidator(),
		log:           logging.New("services"),
	}
}

// AddTask validates the raw form input and appends a new task.
// Invalid input never reaches the list.
func (t *taskServiceImpl) AddTask(title, dueDate string) (domain.Task, error) {
	input, err := t.taskValidator.GetValidTaskInput(title, dueDate)
	if err != nil {
		return domain.Task{}, errors.NewValidationError(t.taskValidator.UserMessage(err), err)
	}

	task := domain.NewTask(input.Title, input.DueDate)
	t.tasks.Add(task)
	t.log.Debugf("added %q due %s, %d tasks", input.Title, input.DueDate, t.tasks.Len())

	return *task, nil
}

// DeleteTask removes the task at index
func (t *taskServiceImpl) DeleteTask(index int) {
	if !t.inRange(index) {
		t.log.Debugf("delete ignored: index %d outside 0..%d", index, t.tasks.Len()-1)
	}
	t.tasks.DeleteAt(index)
}

// CompleteTask marks the task at index as completed
func (t *taskServiceImpl) CompleteTask(index int) {
	if !t.inRange(index) {
		t.log.Debugf("complete ignored: index %d outside 0..%d", index, t.tasks.Len()-1)
	}
	t.tasks.MarkCompletedAt(index)
}

// SortByDueDate orders tasks by ascending due date
func (t *taskServiceImpl) SortByDueDate() {
	t.tasks.SortByDueDate()
}

// ListTasks returns a snapshot of all tasks
func (t *taskServiceImpl) ListTasks() []domain.Task {
	return t.tasks.All()
}

// RenderTasks returns one display line per task
func (t *taskServiceImpl) RenderTasks() []string {
	return t.tasks.Render()
}

// Count returns the number of tasks
func (t *taskServiceImpl) Count() int {
	return t.tasks.Len()
}

func (t *taskServiceImpl) inRange(index int) bool {
	return index >= 0 && index < t.tasks.Len()
}
