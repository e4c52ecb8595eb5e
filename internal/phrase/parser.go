package phrase

import (
	"math"
	"strings"
	"time"
)

// Parser resolves phrases. The zero value reads the wall clock.
type Parser struct {
	// Clock supplies "now". It is consulted each time a word or rule needs
	// the current time, so one phrase may observe several readings.
	Clock func() time.Time

	// Trace, when set, receives every rule application in order.
	Trace func(Step)

	// MaxSteps caps the number of rule applications per phrase.
	// Zero means one more than the number of tokens.
	MaxSteps int
}

// Step describes one rule application.
type Step struct {
	Rule   string  `json:"rule" yaml:"rule"`
	Before []Token `json:"before" yaml:"before"`
	After  []Token `json:"after" yaml:"after"`
}

// Fixed returns a Parser whose clock always reports now.
func Fixed(now time.Time) Parser {
	return Parser{Clock: func() time.Time { return now }}
}

// Now reads the parser's clock.
func (p Parser) Now() time.Time {
	if p.Clock == nil {
		return time.Now()
	}
	return p.Clock()
}

func (p Parser) nowMs() int64 {
	return p.Now().UnixMilli()
}

// rule rewrites a prefix of the sequence into a single token. n is the
// number of tokens consumed and is always at least two.
type rule struct {
	name  string
	apply func(p Parser, seq []Token) (out Token, n int, ok bool, err error)
}

// Tried in order against the front of the sequence only.
var rules = []rule{
	{name: "span", apply: applySpan},
	{name: "ago", apply: applyAgo},
	{name: "from", apply: applyFrom},
}

// Reduce folds tokens from the left until a single date remains.
func (p Parser) Reduce(tokens []Token) ([]Token, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}

	maxSteps := p.MaxSteps
	if maxSteps <= 0 {
		maxSteps = len(tokens) + 1
	}

	seq := append([]Token(nil), tokens...)
	for steps := 0; ; steps++ {
		if len(seq) == 1 && seq[0].Kind == TokenDate {
			return seq, nil
		}
		if steps >= maxSteps {
			return nil, ErrTooManySteps
		}

		next, err := p.step(seq)
		if err != nil {
			return nil, err
		}
		// Each rule must shorten the sequence or reduction may never end.
		if len(next) >= len(seq) {
			return nil, ErrTooManySteps
		}
		seq = next
	}
}

// step applies the first matching rule to seq.
func (p Parser) step(seq []Token) ([]Token, error) {
	for _, r := range rules {
		out, n, ok, err := r.apply(p, seq)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		out.Pos = seq[0].Pos
		out.Word = joinWords(seq[:n])

		next := make([]Token, 0, len(seq)-n+1)
		next = append(next, out)
		next = append(next, seq[n:]...)
		if p.Trace != nil {
			p.Trace(Step{Rule: r.name, Before: seq, After: next})
		}
		return next, nil
	}
	return nil, &GrammarError{Token: seq[0]}
}

// scalar unit -> span
func applySpan(_ Parser, seq []Token) (Token, int, bool, error) {
	if len(seq) < 2 || seq[0].Kind != TokenScalar || seq[1].Kind != TokenUnit {
		return Token{}, 0, false, nil
	}
	ms, ok := mulMs(seq[0].Scalar, seq[1].Ms)
	if !ok {
		return Token{}, 0, false, &RangeError{Rule: "span", Pos: seq[0].Pos}
	}
	return Token{Kind: TokenSpan, Ms: ms}, 2, true, nil
}

// span ago -> date
func applyAgo(p Parser, seq []Token) (Token, int, bool, error) {
	if len(seq) < 2 || seq[0].Kind != TokenSpan || seq[1].Kind != TokenAgo {
		return Token{}, 0, false, nil
	}
	ms, ok := subMs(p.nowMs(), seq[0].Ms)
	if !ok {
		return Token{}, 0, false, &RangeError{Rule: "ago", Pos: seq[0].Pos}
	}
	return Token{Kind: TokenDate, Ms: ms}, 2, true, nil
}

// span from date -> date
// date from date -> date, treating the first date as an offset from now
func applyFrom(p Parser, seq []Token) (Token, int, bool, error) {
	if len(seq) < 3 || seq[1].Kind != TokenFrom || seq[2].Kind != TokenDate {
		return Token{}, 0, false, nil
	}

	var (
		ms int64
		ok bool
	)
	switch seq[0].Kind {
	case TokenSpan:
		ms, ok = addMs(seq[2].Ms, seq[0].Ms)
	case TokenDate:
		var offset int64
		offset, ok = subMs(seq[0].Ms, p.nowMs())
		if ok {
			ms, ok = addMs(seq[2].Ms, offset)
		}
	default:
		return Token{}, 0, false, nil
	}
	if !ok {
		return Token{}, 0, false, &RangeError{Rule: "from", Pos: seq[0].Pos}
	}
	return Token{Kind: TokenDate, Ms: ms}, 3, true, nil
}

// 2^63 is exactly representable; anything at or beyond it overflows int64.
const int64Bound = float64(1 << 63)

// mulMs multiplies exactly when scalar is a whole number that fits in int64.
// Fractional scalars go through float64 and round to the nearest millisecond.
func mulMs(scalar float64, unit int64) (int64, bool) {
	if scalar == math.Trunc(scalar) && scalar >= -int64Bound && scalar < int64Bound {
		n := int64(scalar)
		c := n * unit
		if n != 0 && (c/n != unit || (n == -1 && unit == math.MinInt64)) {
			return 0, false
		}
		return c, true
	}
	v := math.Round(scalar * float64(unit))
	if math.IsNaN(v) || v >= int64Bound || v < -int64Bound {
		return 0, false
	}
	return int64(v), true
}

func addMs(a, b int64) (int64, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}

func subMs(a, b int64) (int64, bool) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return 0, false
	}
	return c, true
}

func joinWords(tokens []Token) string {
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Word
	}
	return strings.Join(words, " ")
}
