package shell

import (
	"fmt"
	"strings"
)

const flagPrefix = "-"

// Parser turns an input line into a validated Command.
type Parser interface {
	Parse(line string) (*Command, error)
}

type CommandParser struct {
	tokenizer Tokenizer
}

func NewCommandParser(tokenizer Tokenizer) *CommandParser {
	if tokenizer == nil {
		tokenizer = NewDefaultTokenizer()
	}

	return &CommandParser{
		tokenizer: tokenizer,
	}
}

// Parse resolves the first token as the command name and sorts the rest
// into flags (leading '-') and positional arguments, keeping input order.
func (p *CommandParser) Parse(line string) (*Command, error) {
	tokens, err := p.tokenizer.Split(line)
	if err != nil {
		return nil, fmt.Errorf("tokenize input: %w", err)
	}

	// the tokenizer always emits at least one token, custom ones may not
	name := ""
	if len(tokens) > 0 {
		name = tokens[0]
		tokens = tokens[1:]
	}

	kind, ok := LookupKind(name)
	if !ok {
		return nil, unknownCommand(name)
	}

	args := []string{}
	flags := []string{}

	for _, token := range tokens {
		if strings.HasPrefix(token, flagPrefix) {
			flags = append(flags, token)
		} else {
			args = append(args, token)
		}
	}

	return NewCommand(kind, args, flags)
}

var defaultParser = NewCommandParser(nil)

// Parse uses the default tokenizer.
func Parse(line string) (*Command, error) {
	return defaultParser.Parse(line)
}
