package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

const helpMarkdown = `# Task reminder

| Command | What it does |
|---------|--------------|
| ` + "`add <yyyy-mm-dd> <title>`" + ` | add a task due on that date |
| ` + "`delete <n>`" + ` | delete task number n |
| ` + "`done <n>`" + ` | mark task number n as completed |
| ` + "`sort`" + ` | order tasks by due date |
| ` + "`list`" + ` | show all tasks |
| ` + "`help`" + ` | show this page |
| ` + "`quit`" + ` | leave (also ` + "`exit`" + `, ` + "`q`" + `) |

Task numbers are the ones shown by ` + "`list`" + `. Tasks live only as long as the session.
`

// HelpCommand handles `help`
type HelpCommand struct {
	app *App
}

// NewHelpCommand creates a new help command handler
func NewHelpCommand(app *App) *HelpCommand {
	return &HelpCommand{app: app}
}

// Execute renders the help page, falling back to raw markdown
func (c *HelpCommand) Execute(ctx context.Context, args []string) error {
	fmt.Fprint(c.app.out, renderMarkdown(helpMarkdown, c.app.plain, c.wrapWidth()))
	return nil
}

func (c *HelpCommand) wrapWidth() int {
	if w := c.app.config.Display.Width; w > 0 {
		return w
	}
	return 80
}

func renderMarkdown(content string, plain bool, width int) string {
	style := glamour.WithAutoStyle()
	if plain {
		style = glamour.WithStandardStyle(styles.NoTTYStyle)
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
