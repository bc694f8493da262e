package shell

import (
	"context"
	"io/fs"
)

type Executor interface {
	Execute(ctx context.Context, cmd *Command, io IOBindings) error
}

// FileSystem is the directory query surface used by ls.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
}

// LineReader yields one input line per call. It returns io.EOF when input
// ends and ErrInterrupted when the user aborts the prompt.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// UnstyledPromptReader is a LineReader that must receive the prompt without
// escape sequences, because it computes the prompt's on-screen width.
type UnstyledPromptReader interface {
	LineReader
	UnstyledPrompt() bool
}
