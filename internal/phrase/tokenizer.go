package phrase

import (
	"regexp"
	"strconv"
	"time"

	"github.com/aidanlsb/tempio/internal/units"
)

// numberRegex accepts plain decimal literals: optional sign, digits with an
// optional fraction (or a bare ".5" fraction), and an optional exponent.
var numberRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// classifier reports whether word belongs to its token kind.
type classifier func(p Parser, word string) (Token, bool)

// Tried in order; the first match wins.
var classifiers = []classifier{
	classifyScalar,
	classifyUnit,
	classifyAgo,
	classifyFrom,
	classifyDate,
}

// Tokenize classifies a single word against a fixed clock.
func Tokenize(word string, now time.Time) (Token, error) {
	return Fixed(now).Tokenize(word, 0)
}

// Tokenize classifies word, found at index pos of its phrase. Words that
// resolve relative to now read the clock once, here.
func (p Parser) Tokenize(word string, pos int) (Token, error) {
	for _, classify := range classifiers {
		if tok, ok := classify(p, word); ok {
			tok.Word = word
			tok.Pos = pos
			return tok, nil
		}
	}
	return Token{}, &UnknownWordError{Word: word, Pos: pos}
}

func classifyScalar(_ Parser, word string) (Token, bool) {
	if !numberRegex.MatchString(word) {
		return Token{}, false
	}
	// ParseFloat fails with ErrRange for literals like 1e999.
	v, err := strconv.ParseFloat(word, 64)
	if err != nil {
		return Token{}, false
	}
	return Token{Kind: TokenScalar, Scalar: v}, true
}

func classifyUnit(_ Parser, word string) (Token, bool) {
	ms, ok := units.Lookup(word)
	if !ok {
		return Token{}, false
	}
	return Token{Kind: TokenUnit, Ms: ms}, true
}

func classifyAgo(_ Parser, word string) (Token, bool) {
	if word != "ago" {
		return Token{}, false
	}
	return Token{Kind: TokenAgo}, true
}

func classifyFrom(_ Parser, word string) (Token, bool) {
	if word != "from" {
		return Token{}, false
	}
	return Token{Kind: TokenFrom}, true
}

func classifyDate(p Parser, word string) (Token, bool) {
	switch word {
	case "now":
		return Token{Kind: TokenDate, Ms: p.nowMs()}, true
	case "yesterday":
		return Token{Kind: TokenDate, Ms: p.nowMs() - units.Day}, true
	default:
		return Token{}, false
	}
}
