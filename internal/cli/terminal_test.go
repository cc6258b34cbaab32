package cli

import (
	"bytes"
	"strings"
	"testing"

	"task-reminder/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestResolveMode(t *testing.T) {
	tests := []struct {
		mode        string
		interactive bool
		expected    string
	}{
		{config.ModeAuto, true, config.ModeTUI},
		{config.ModeAuto, false, config.ModeShell},
		{config.ModeTUI, false, config.ModeTUI},
		{config.ModeShell, true, config.ModeShell},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveMode(tt.mode, tt.interactive))
		})
	}
}

func TestIsTerminal_NonFile(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
	assert.False(t, IsTerminal(strings.NewReader("")))
	assert.False(t, IsTerminal(nil))
}

func TestColorDisabled_FromConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Display.NoColor = true

	assert.True(t, ColorDisabled(cfg))
}

func TestNewLineReader_PipedInputUsesScanner(t *testing.T) {
	out := &bytes.Buffer{}
	reader := NewLineReader(strings.NewReader("list\n"), out)

	_, ok := reader.(*scannerReader)
	assert.True(t, ok)

	line, err := reader.ReadLine("> ")
	assert.NoError(t, err)
	assert.Equal(t, "list", line)
	assert.Equal(t, "> ", out.String())

	_, err = reader.ReadLine("> ")
	assert.Error(t, err)
	assert.NoError(t, reader.Close())
}
