package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Neev4n/basic-shell-go/internal/ctxlog"
)

const DefaultPrompt = "> "

type Shell struct {
	in       LineReader
	Out      io.Writer
	prompt   string
	styles   *Styles
	parser   Parser
	executor Executor
	logger   *slog.Logger
}

type Option func(*Shell)

func WithPrompt(prompt string) Option {
	return func(s *Shell) { s.prompt = prompt }
}

func WithStyles(styles Styles) Option {
	return func(s *Shell) { s.styles = &styles }
}

func WithParser(parser Parser) Option {
	return func(s *Shell) { s.parser = parser }
}

func WithExecutor(executor Executor) Option {
	return func(s *Shell) { s.executor = executor }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) { s.logger = logger }
}

func New(in LineReader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		in:     in,
		Out:    out,
		prompt: DefaultPrompt,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.parser == nil {
		s.parser = NewCommandParser(nil)
	}
	if s.executor == nil {
		s.executor = NewDefaultExecutor(nil)
	}
	if s.styles == nil {
		styles := NewStyles(out, false)
		s.styles = &styles
	}

	return s
}

// Run reads and executes lines until exit, end of input, an aborted prompt
// or ctx cancellation. Command failures are reported to Out and never end
// the loop.
func (s *Shell) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, s.logger)
	s.logger.Debug("session started")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.in.ReadLine(s.renderPrompt())

		if errors.Is(err, io.EOF) || errors.Is(err, ErrInterrupted) {
			fmt.Fprintln(s.Out)
			s.logger.Debug("session ended", "reason", err.Error())
			return nil
		}

		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := s.RunLine(ctx, line); errors.Is(err, ErrExit) {
			s.logger.Debug("session ended", "reason", "exit")
			return nil
		}
	}
}

// renderPrompt leaves the prompt unstyled for readers that measure its width.
func (s *Shell) renderPrompt() string {
	if r, ok := s.in.(UnstyledPromptReader); ok && r.UnstyledPrompt() {
		return s.prompt
	}
	return s.styles.Prompt.Render(s.prompt)
}

// RunLine parses and executes one line, reporting failures to Out. It only
// returns ErrExit, or the error that was already reported.
func (s *Shell) RunLine(ctx context.Context, line string) error {
	logger := ctxlog.FromContext(ctx)

	cmd, err := s.parser.Parse(line)
	if err != nil {
		logger.Debug("parse failed", "error", err)
		fmt.Fprintln(s.Out, s.styles.Error.Render(err.Error()))
		return err
	}

	logger.Debug("parsed command", "kind", cmd.Kind().String())

	err = s.executor.Execute(ctx, cmd, IOBindings{Stdout: s.Out})
	if err == nil || errors.Is(err, ErrExit) {
		return err
	}

	logger.Warn("command failed", "kind", cmd.Kind().String(), "error", err)
	fmt.Fprintln(s.Out, s.styles.Error.Render("An error occurred: "+err.Error()))
	return err
}
