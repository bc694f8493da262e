package shell

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/Neev4n/basic-shell-go/internal/ctxlog"
)

const (
	helpMessage    = "Help is not implemented yet"
	currentDirName = "."
)

func (e *DefaultExecutor) registerBuiltins() {

	e.builtins[KindEcho] = func(ctx context.Context, cmd *Command, io IOBindings) error {
		if cmd.HasFlag(FlagEchoU) {
			ctxlog.FromContext(ctx).Debug("flag has no effect", "kind", cmd.Kind().String(), "flag", FlagEchoU)
		}

		fmt.Fprintln(io.Stdout, strings.Join(cmd.Args(), "\n"))
		return nil
	}

	e.builtins[KindExit] = func(ctx context.Context, cmd *Command, io IOBindings) error {
		return ErrExit
	}

	e.builtins[KindHelp] = func(ctx context.Context, cmd *Command, io IOBindings) error {
		fmt.Fprintln(io.Stdout, helpMessage)
		return nil
	}

	e.builtins[KindListDirectory] = e.listDirectories
}

// listDirectories reports missing paths and non-directories inline and moves
// on. A failure to read an existing directory aborts the command.
func (e *DefaultExecutor) listDirectories(ctx context.Context, cmd *Command, io IOBindings) error {
	dirs := cmd.Args()
	if len(dirs) == 0 {
		dirs = []string{currentDirName}
	}

	framed := len(dirs) > 1
	logger := ctxlog.FromContext(ctx)

	for _, dir := range dirs {
		info, err := e.FS.Stat(dir)
		if err != nil {
			logger.Debug("stat failed", "path", dir, "error", err)
			fmt.Fprintf(io.Stdout, "Directory %s does not exist\n", dir)
			continue
		}

		if !info.IsDir() {
			fmt.Fprintf(io.Stdout, "%s is not a directory\n", dir)
			continue
		}

		dirEntries, err := e.FS.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("read directory %s: %w", dir, err)
		}

		entries := make([]string, 0, len(dirEntries))
		for _, entry := range dirEntries {
			entries = append(entries, entryPath(dir, entry.Name()))
		}
		slices.Sort(entries)

		if framed {
			fmt.Fprintf(io.Stdout, "%s:\n", dir)
		}
		for _, entry := range entries {
			fmt.Fprintln(io.Stdout, entry)
		}
		if framed {
			fmt.Fprintln(io.Stdout)
		}
	}

	return nil
}
