package cli

import (
	"bytes"
	"io"
	"testing"

	"task-reminder/internal/api"
	"task-reminder/internal/config"
	"task-reminder/internal/domain"
)

// mockTaskAPI implements the TaskAPI interface for testing
type mockTaskAPI struct {
	dispatched []api.Command
	err        error
	lines      []string
}

func (m *mockTaskAPI) ID() string { return "mock-session" }

func (m *mockTaskAPI) Dispatch(cmd api.Command) error {
	m.dispatched = append(m.dispatched, cmd)
	return m.err
}

func (m *mockTaskAPI) Tasks() []domain.Task { return nil }

func (m *mockTaskAPI) Lines() []string { return m.lines }

func (m *mockTaskAPI) Len() int { return len(m.lines) }

// scriptedReader feeds fixed lines to the shell and records the prompts it saw
type scriptedReader struct {
	lines   []string
	prompts []string
	closed  bool
}

// interrupt in a script stands for Ctrl+C
const interrupt = "\x03"

func (r *scriptedReader) ReadLine(prompt string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	if line == interrupt {
		return "", ErrInterrupted
	}
	return line, nil
}

func (r *scriptedReader) Close() error {
	r.closed = true
	return nil
}

func testConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Display.NoColor = true
	return cfg
}

// setupTestApp creates an App over a real session writing into a buffer
func setupTestApp(t *testing.T, cfg *config.Config) (*App, *api.Session, *bytes.Buffer) {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}
	session := api.NewSession()
	out := &bytes.Buffer{}
	return NewApp(session, cfg, out), session, out
}

// setupTestAppWithMockAPI creates an App over a mock task API
func setupTestAppWithMockAPI(t *testing.T) (*App, *mockTaskAPI, *bytes.Buffer) {
	t.Helper()
	mock := &mockTaskAPI{}
	out := &bytes.Buffer{}
	return NewApp(mock, testConfig(), out), mock, out
}
