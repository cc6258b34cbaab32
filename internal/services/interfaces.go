package services

import (
	"task-reminder/internal/domain"
)

// TaskService handles task lifecycle operations over one in-memory task list.
// Positions are 0-based; out-of-range positions are ignored.
type TaskService interface {
	// Task lifecycle operations
	AddTask(title, dueDate string) (domain.Task, error)
	DeleteTask(index int)
	CompleteTask(index int)
	SortByDueDate()

	// Read operations
	ListTasks() []domain.Task
	RenderTasks() []string
	Count() int
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TaskService TaskService
}

// NewServiceContainer wires a fresh set of services around an empty task list
func NewServiceContainer() *ServiceContainer {
	return &ServiceContainer{
		TaskService: NewTaskService(domain.NewTaskList()),
	}
}
