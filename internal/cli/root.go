// Package cli wires configuration, logging and input handling around the
// interactive shell.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Neev4n/basic-shell-go/internal/config"
	"github.com/Neev4n/basic-shell-go/internal/logging"
	"github.com/Neev4n/basic-shell-go/pkg/shell"
)

// NewRootCommand returns the bsh command. It takes no arguments; the whole
// interface is the interactive line protocol.
func NewRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bsh",
		Short: "A minimal interactive shell",
		Long: `bsh reads one line at a time and runs one of its built-in commands:
echo, exit, help and ls.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func run(ctx context.Context, in io.Reader, out io.Writer) (err error) {
	path, err := config.Path()
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Open(cfg.Log)
	if err != nil {
		return err
	}
	defer joinClose(&err, closeLog, "close log file")

	logger.Info("starting shell", "config", path)

	reader, closeReader := newLineReader(cfg, in, out)
	defer func() {
		if err := closeReader(); err != nil {
			logger.Warn("closing input failed", "error", err)
		}
	}()

	s := shell.New(reader, out,
		shell.WithPrompt(cfg.Prompt),
		shell.WithStyles(shell.NewStyles(out, cfg.Color)),
		shell.WithLogger(logger),
	)

	if err := s.Run(ctx); err != nil {
		return fmt.Errorf("shell stopped: %w", err)
	}

	return nil
}

// joinClose runs closeFn and adds its failure to *errp.
func joinClose(errp *error, closeFn func() error, what string) {
	if cerr := closeFn(); cerr != nil {
		*errp = errors.Join(*errp, fmt.Errorf("%s: %w", what, cerr))
	}
}

// newLineReader uses line editing only when both ends are the process's own
// terminal.
func newLineReader(cfg *config.Config, in io.Reader, out io.Writer) (shell.LineReader, func() error) {
	if isTerminal(in) && out == os.Stdout {
		historyFile := ""
		if cfg.History.Enabled {
			historyFile = cfg.History.File
		}

		r := shell.NewTerminalReader(historyFile)
		return r, r.Close
	}

	return shell.NewPlainReader(in, out), func() error { return nil }
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && f == os.Stdin && term.IsTerminal(int(f.Fd()))
}
