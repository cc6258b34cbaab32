package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// ErrInterrupted is returned by a LineReader when the user presses Ctrl+C.
var ErrInterrupted = errors.New("interrupted")

// LineReader reads one line of shell input at a time.
// It returns io.EOF when input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// NewLineReader returns a line-editing reader when in is the terminal stdin,
// and a plain scanner otherwise.
func NewLineReader(in io.Reader, out io.Writer) LineReader {
	if in == io.Reader(os.Stdin) && IsTerminal(os.Stdin) && IsTerminal(out) {
		return newLinerReader()
	}
	return newScannerReader(in, out)
}

type linerReader struct {
	state *liner.State
}

func newLinerReader() *linerReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &linerReader{state: state}
}

func (r *linerReader) ReadLine(prompt string) (string, error) {
	input, err := r.state.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", ErrInterrupted
		}
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.state.AppendHistory(input)
	}
	return input, nil
}

func (r *linerReader) Close() error {
	return r.state.Close()
}

type scannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newScannerReader(in io.Reader, out io.Writer) *scannerReader {
	return &scannerReader{scanner: bufio.NewScanner(in), out: out}
}

func (r *scannerReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

func (r *scannerReader) Close() error {
	return nil
}
