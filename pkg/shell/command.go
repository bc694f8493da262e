package shell

import (
	"slices"
	"strings"
)

// Command is a validated command line. It can only be built through
// NewCommand or CommandParser.Parse, so every flag is supported by its kind
// and the argument count fits the kind's constraint.
type Command struct {
	kind  Kind
	args  []string
	flags map[string]struct{}
}

// NewCommand validates flags then argument count. The first unsupported flag
// in the given order is reported.
func NewCommand(kind Kind, args []string, flags []string) (*Command, error) {
	flagSet := make(map[string]struct{}, len(flags))

	for _, flag := range flags {
		if !kind.SupportsFlag(flag) {
			return nil, unsupportedFlag(flag)
		}
		flagSet[flag] = struct{}{}
	}

	if expected, ok := kind.ExpectedArguments(); ok {
		if !expected.Satisfied(len(args)) {
			return nil, wrongArgumentsCount(expected, len(args))
		}
	}

	return &Command{
		kind:  kind,
		args:  slices.Clone(args),
		flags: flagSet,
	}, nil
}

func (c *Command) Kind() Kind {
	return c.kind
}

// Args returns the positional arguments in input order.
func (c *Command) Args() []string {
	return slices.Clone(c.args)
}

func (c *Command) HasFlag(flag string) bool {
	_, ok := c.flags[flag]
	return ok
}

// Flags returns the flag set sorted for stable output.
func (c *Command) Flags() []string {
	flags := make([]string, 0, len(c.flags))
	for flag := range c.flags {
		flags = append(flags, flag)
	}
	slices.Sort(flags)
	return flags
}

func (c *Command) String() string {
	parts := append([]string{c.kind.String()}, c.Flags()...)
	return strings.Join(append(parts, c.args...), " ")
}
