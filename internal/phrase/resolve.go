package phrase

import (
	"fmt"
	"strings"
	"time"
)

// Resolve resolves s against a fixed clock. See Parser.Resolve.
func Resolve(s string, now time.Time) ([]Token, error) {
	return Fixed(now).Resolve(s)
}

// Resolve splits s on single spaces, classifies every word, and reduces the
// result. On success the returned sequence holds exactly one TokenDate.
//
// Words are separated by exactly one ASCII space. Leading, trailing or
// repeated spaces produce empty words, which fail as unknown words.
func (p Parser) Resolve(s string) ([]Token, error) {
	tokens, err := p.TokenizePhrase(s)
	if err != nil {
		return nil, err
	}
	return p.Reduce(tokens)
}

// TokenizePhrase classifies every word of s without reducing. All words are
// classified before any error from reduction can occur.
func (p Parser) TokenizePhrase(s string) ([]Token, error) {
	if s == "" {
		return nil, ErrEmptyInput
	}

	words := strings.Split(s, " ")
	tokens := make([]Token, 0, len(words))
	for i, word := range words {
		tok, err := p.Tokenize(word, i)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// ResolveDate resolves s and returns the resulting instant.
func (p Parser) ResolveDate(s string) (time.Time, error) {
	tokens, err := p.Resolve(s)
	if err != nil {
		return time.Time{}, err
	}
	if len(tokens) != 1 || tokens[0].Kind != TokenDate {
		return time.Time{}, fmt.Errorf("resolve %q: expected a single date, got %v", s, tokens)
	}
	return time.UnixMilli(tokens[0].Ms), nil
}
