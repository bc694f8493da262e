package shell

import (
	"context"
	"fmt"
	"io"

	"github.com/Neev4n/basic-shell-go/internal/ctxlog"
)

type IOBindings struct {
	Stdout io.Writer
}

// Builtin runs one command kind. Returning ErrExit asks the caller to stop.
type Builtin func(ctx context.Context, cmd *Command, io IOBindings) error

type DefaultExecutor struct {
	FS       FileSystem
	builtins map[Kind]Builtin
}

func NewDefaultExecutor(fsys FileSystem) *DefaultExecutor {
	if fsys == nil {
		fsys = &OSFileSystem{}
	}

	e := &DefaultExecutor{
		FS:       fsys,
		builtins: make(map[Kind]Builtin),
	}

	e.registerBuiltins()
	return e
}

func (e *DefaultExecutor) Execute(ctx context.Context, cmd *Command, io IOBindings) error {
	fn, ok := e.builtins[cmd.Kind()]
	if !ok {
		return fmt.Errorf("no builtin registered for %s", cmd.Kind())
	}

	ctxlog.FromContext(ctx).Debug("executing command", "kind", cmd.Kind().String(), "args", len(cmd.Args()))

	return fn(ctx, cmd, io)
}
