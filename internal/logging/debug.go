package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// EnvDebug turns debug output on when set to any non-empty value.
const EnvDebug = "REMIND_DEBUG"

var (
	mu      sync.Mutex
	out     io.Writer = os.Stderr
	enabled bool
	// set is true once Enable has been called; from then on REMIND_DEBUG is ignored.
	set bool
)

// DebugEnabled returns true if debug mode is enabled. Until Enable is called
// the REMIND_DEBUG environment variable decides.
func DebugEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	if set {
		return enabled
	}
	return os.Getenv(EnvDebug) != ""
}

// Enable switches debug output on or off regardless of the environment.
// The CLI calls it with the fully resolved configuration, so flags win over REMIND_DEBUG.
func Enable(on bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = on
	set = true
}

// SetOutput redirects debug output and returns the previous writer.
// The TUI points this at a file so log lines never corrupt the screen.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	if w == nil {
		w = io.Discard
	}
	out = w
	return prev
}

func write(s string) {
	mu.Lock()
	defer mu.Unlock()
	_, _ = io.WriteString(out, s)
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		write(fmt.Sprintf(format, args...))
	}
}

// Logger tags debug lines with a component name and, once bound, a session id.
type Logger struct {
	component string
	session   string
}

// New returns a Logger for the named component.
func New(component string) *Logger {
	return &Logger{component: component}
}

// WithSession returns a copy of the logger bound to a session id.
func (l *Logger) WithSession(id string) *Logger {
	return &Logger{component: l.component, session: id}
}

// Debugf writes a timestamped, tagged line when debug mode is enabled.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !DebugEnabled() {
		return
	}
	prefix := fmt.Sprintf("%s [%s]", time.Now().Format("15:04:05.000"), l.component)
	if l.session != "" {
		prefix += " session=" + l.session
	}
	write(prefix + " " + fmt.Sprintf(format, args...) + "\n")
}
