package api

import (
	"task-reminder/internal/domain"
	"task-reminder/internal/errors"
	"task-reminder/internal/logging"
	"task-reminder/internal/services"

	"github.com/google/uuid"
)

// TaskAPI is the surface front-ends drive. Session implements it.
type TaskAPI interface {
	ID() string
	Dispatch(cmd Command) error
	Tasks() []domain.Task
	Lines() []string
	Len() int
}

// Session is the state of one interactive run: a single task list reached
// through the task service, plus an id that tags its log lines.
type Session struct {
	id    string
	tasks services.TaskService
	log   *logging.Logger
}

// NewSession creates a session with an empty task list.
func NewSession() *Session {
	return NewSessionWithService(services.NewServiceContainer().TaskService)
}

// NewSessionWithService creates a session over an existing task service.
func NewSessionWithService(tasks services.TaskService) *Session {
	id := uuid.NewString()
	s := &Session{
		id:    id,
		tasks: tasks,
		log:   logging.New("api").WithSession(id[:8]),
	}
	s.log.Debugf("session started")
	return s
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Dispatch runs exactly one task service operation for cmd.
// Delete and Complete with NoSelection fail with a no_selection error;
// any other out-of-range index is ignored.
func (s *Session) Dispatch(cmd Command) error {
	s.log.Debugf("dispatch %s index=%d", cmd.Kind, cmd.Index)

	switch cmd.Kind {
	case CommandAdd:
		_, err := s.tasks.AddTask(cmd.Title, cmd.DueDate)
		if err != nil {
			s.log.Debugf("add rejected: %v", err)
		}
		return err
	case CommandDelete:
		if cmd.Index == NoSelection {
			return errors.NewNoSelectionError("delete")
		}
		s.tasks.DeleteTask(cmd.Index)
	case CommandComplete:
		if cmd.Index == NoSelection {
			return errors.NewNoSelectionError("mark as completed")
		}
		s.tasks.CompleteTask(cmd.Index)
	case CommandSort:
		s.tasks.SortByDueDate()
	default:
		return errors.NewInvalidInputError("command", cmd.Kind, "unknown command kind")
	}
	return nil
}

// Tasks returns a snapshot of the tasks in display order.
func (s *Session) Tasks() []domain.Task {
	return s.tasks.ListTasks()
}

// Lines returns the rendered task list, one line per task.
func (s *Session) Lines() []string {
	return s.tasks.RenderTasks()
}

// Len returns the number of tasks.
func (s *Session) Len() int {
	return s.tasks.Count()
}
