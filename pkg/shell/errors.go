package shell

import (
	"errors"
	"fmt"
)

var (
	// exit error
	ErrExit = errors.New("exit")

	ErrUnknownCommand      = errors.New("unknown command")
	ErrUnsupportedFlag     = errors.New("unsupported flag")
	ErrWrongArgumentsCount = errors.New("wrong number of arguments")
)

// CommandError describes why an input line could not become a Command.
// Reason is one of ErrUnknownCommand, ErrUnsupportedFlag or
// ErrWrongArgumentsCount.
type CommandError struct {
	Reason error

	// Token is the unknown command name or the unsupported flag.
	Token string

	Expected ArgumentCount
	Actual   int
}

func unknownCommand(name string) *CommandError {
	return &CommandError{Reason: ErrUnknownCommand, Token: name}
}

func unsupportedFlag(flag string) *CommandError {
	return &CommandError{Reason: ErrUnsupportedFlag, Token: flag}
}

func wrongArgumentsCount(expected ArgumentCount, actual int) *CommandError {
	return &CommandError{Reason: ErrWrongArgumentsCount, Expected: expected, Actual: actual}
}

func (e *CommandError) Error() string {
	switch e.Reason {
	case ErrUnknownCommand:
		return fmt.Sprintf("Unknown command: %s", e.Token)
	case ErrUnsupportedFlag:
		return fmt.Sprintf("Unsupported flag: %s", e.Token)
	case ErrWrongArgumentsCount:
		return fmt.Sprintf("Wrong number of arguments: expected %s, got %d", e.Expected, e.Actual)
	}

	return fmt.Sprintf("invalid command: %v", e.Reason)
}

func (e *CommandError) Unwrap() error {
	return e.Reason
}
