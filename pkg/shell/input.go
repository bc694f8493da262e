package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

// ErrInterrupted is returned by a LineReader when the prompt is aborted (Ctrl+C).
var ErrInterrupted = errors.New("interrupted")

// PlainReader reads lines from any io.Reader and writes the prompt itself.
// It is used for piped input and in tests.
type PlainReader struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPlainReader(reader io.Reader, out io.Writer) *PlainReader {
	return &PlainReader{
		in:  bufio.NewReader(reader),
		out: out,
	}
}

// ReadLine returns a final unterminated line before reporting io.EOF.
func (r *PlainReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	line, err := r.in.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	if err != nil {
		return "", err
	}

	return line, nil
}

// TerminalReader provides line editing and history navigation.
type TerminalReader struct {
	line        *liner.State
	historyFile string
}

// NewTerminalReader takes over the terminal until Close. An empty historyFile
// disables history persistence.
func NewTerminalReader(historyFile string) *TerminalReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	r := &TerminalReader{
		line:        line,
		historyFile: historyFile,
	}

	r.loadHistory()
	return r
}

func (r *TerminalReader) loadHistory() {
	if r.historyFile == "" {
		return
	}

	if f, err := os.Open(r.historyFile); err == nil {
		r.line.ReadHistory(f)
		f.Close()
	}
}

// UnstyledPrompt is true: liner counts escape bytes as visible columns.
func (r *TerminalReader) UnstyledPrompt() bool {
	return true
}

func (r *TerminalReader) ReadLine(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ErrInterrupted
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}

	return input, nil
}

// SaveHistory writes history with owner-only permissions.
func (r *TerminalReader) SaveHistory() error {
	if r.historyFile == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(r.historyFile), 0o700); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	if _, err := r.line.WriteHistory(f); err != nil {
		return fmt.Errorf("write history: %w", err)
	}

	return nil
}

// Close saves history and restores the terminal.
func (r *TerminalReader) Close() error {
	saveErr := r.SaveHistory()
	if err := r.line.Close(); err != nil {
		return err
	}
	return saveErr
}
