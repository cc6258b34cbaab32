package api

// CommandKind enumerates the operations a front-end can dispatch.
type CommandKind int

const (
	CommandAdd CommandKind = iota
	CommandDelete
	CommandComplete
	CommandSort
)

// NoSelection is the index a front-end passes when no task is selected.
const NoSelection = -1

func (k CommandKind) String() string {
	switch k {
	case CommandAdd:
		return "add"
	case CommandDelete:
		return "delete"
	case CommandComplete:
		return "complete"
	case CommandSort:
		return "sort"
	default:
		return "unknown"
	}
}

// Command is one user action. Title and DueDate are raw form input used by
// CommandAdd; Index is the 0-based position used by CommandDelete and CommandComplete.
type Command struct {
	Kind    CommandKind
	Title   string
	DueDate string
	Index   int
}

// AddCommand builds a command adding a task from raw form input.
func AddCommand(title, dueDate string) Command {
	return Command{Kind: CommandAdd, Title: title, DueDate: dueDate, Index: NoSelection}
}

// DeleteCommand builds a command removing the task at index.
func DeleteCommand(index int) Command {
	return Command{Kind: CommandDelete, Index: index}
}

// CompleteCommand builds a command marking the task at index as completed.
func CompleteCommand(index int) Command {
	return Command{Kind: CommandComplete, Index: index}
}

// SortCommand builds a command sorting tasks by due date.
func SortCommand() Command {
	return Command{Kind: CommandSort, Index: NoSelection}
}
