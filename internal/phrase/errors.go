package phrase

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is. The typed errors below match their sentinel.
var (
	ErrEmptyInput   = errors.New("empty phrase")
	ErrUnknownWord  = errors.New("unknown word")
	ErrGrammar      = errors.New("parse error")
	ErrOutOfRange   = errors.New("value out of range")
	ErrTooManySteps = errors.New("reduction did not converge")
)

// UnknownWordError reports a word that no classifier accepts.
type UnknownWordError struct {
	Word string
	Pos  int
}

func (e *UnknownWordError) Error() string {
	if e.Word == "" {
		return fmt.Sprintf("unknown word: empty word at position %d (check for repeated spaces)", e.Pos)
	}
	return fmt.Sprintf("unknown word %q at position %d", e.Word, e.Pos)
}

func (e *UnknownWordError) Is(target error) bool { return target == ErrUnknownWord }

// GrammarError reports a token sequence that no rule can reduce further.
// Token is the leading token at the point reduction stopped.
type GrammarError struct {
	Token Token
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("parse error: unexpected token %s at position %d", e.Token.Kind, e.Token.Pos)
}

func (e *GrammarError) Is(target error) bool { return target == ErrGrammar }

// RangeError reports arithmetic that does not fit in int64 milliseconds.
type RangeError struct {
	Rule string
	Pos  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s rule at position %d: result does not fit in a millisecond timestamp", e.Rule, e.Pos)
}

func (e *RangeError) Is(target error) bool { return target == ErrOutOfRange }
