package shell

import (
	"io"
	"strings"
)

const (
	tokenDelimiter = ' '
	quoteRune      = '"'
)

// Tokenizer splits a raw input line into tokens.
type Tokenizer interface {
	Split(line string) ([]string, error)
}

// DefaultTokenizer splits on spaces and treats double-quoted spans as literal
// text. Quote characters are dropped and there is no escaping.
type DefaultTokenizer struct {
	newReader  func(string) io.RuneReader
	newBuilder func() *strings.Builder
}

func NewDefaultTokenizer() *DefaultTokenizer {
	d := &DefaultTokenizer{
		newReader: func(s string) io.RuneReader {
			return strings.NewReader(s)
		},
		newBuilder: func() *strings.Builder {
			return &strings.Builder{}
		},
	}

	return d
}

type tokenState int

const (
	stateOutside tokenState = iota
	stateDoubleQuote
)

type tokenBuffer struct {
	builder *strings.Builder
}

func newTokenBuffer(builder *strings.Builder) *tokenBuffer {
	return &tokenBuffer{
		builder: builder,
	}
}

func (tokenBuffer *tokenBuffer) isEmpty() bool {
	return tokenBuffer.builder.Len() == 0
}

func (tokenBuffer *tokenBuffer) appendRune(r rune) {
	tokenBuffer.builder.WriteRune(r)
}

func (tokenBuffer *tokenBuffer) flush(tokens []string) []string {
	s := tokenBuffer.builder.String()
	tokenBuffer.builder.Reset()
	return append(tokens, s)
}

func (tokenBuffer *tokenBuffer) flushIfNotEmpty(tokens []string) []string {
	if tokenBuffer.isEmpty() {
		return tokens
	}

	return tokenBuffer.flush(tokens)
}

func handleStateOutside(ch rune, tokenBuffer *tokenBuffer, tokens []string) (tokenState, []string) {
	switch ch {
	case quoteRune:
		return stateDoubleQuote, tokens
	case tokenDelimiter:
		return stateOutside, tokenBuffer.flushIfNotEmpty(tokens)
	default:
		tokenBuffer.appendRune(ch)
		return stateOutside, tokens
	}
}

func handleStateDoubleQuote(ch rune, tokenBuffer *tokenBuffer, tokens []string) (tokenState, []string) {
	if ch == quoteRune {
		return stateOutside, tokens
	}

	tokenBuffer.appendRune(ch)
	return stateDoubleQuote, tokens
}

// Split never fails on an unterminated quote: the rest of the line simply
// stays quoted. The trailing buffer is always emitted, so an empty line
// yields a single empty token.
func (t *DefaultTokenizer) Split(line string) ([]string, error) {
	runeReader := t.newReader(line)
	tokenBuffer := newTokenBuffer(t.newBuilder())

	tokens := []string{}
	currState := stateOutside

	for {
		ch, _, err := runeReader.ReadRune()

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, err
		}

		switch currState {
		case stateOutside:
			currState, tokens = handleStateOutside(ch, tokenBuffer, tokens)

		case stateDoubleQuote:
			currState, tokens = handleStateDoubleQuote(ch, tokenBuffer, tokens)
		}
	}

	return tokenBuffer.flush(tokens), nil
}
