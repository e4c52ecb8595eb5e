// Package phrase resolves short English time phrases such as "3 day ago" or
// "2 week from yesterday" to a timestamp.
//
// A phrase is split into words, every word is classified into a Token, and the
// token sequence is reduced from the left by a small set of rewrite rules until
// a single date remains.
package phrase

import (
	"fmt"
	"strconv"
)

// TokenKind identifies the variant held by a Token.
type TokenKind int

const (
	TokenScalar TokenKind = iota // bare number
	TokenUnit                    // named unit, Ms holds its magnitude
	TokenAgo                     // "ago"
	TokenFrom                    // "from"
	TokenDate                    // resolved point in time, Ms holds epoch milliseconds
	TokenSpan                    // resolved duration, scalar times unit
)

var tokenKindNames = [...]string{
	TokenScalar: "scalar",
	TokenUnit:   "unit",
	TokenAgo:    "ago",
	TokenFrom:   "from",
	TokenDate:   "date",
	TokenSpan:   "span",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// MarshalText renders the kind by name so envelopes stay readable.
func (k TokenKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Token is a classified word or the product of a reduction.
type Token struct {
	Kind   TokenKind `json:"kind" yaml:"kind"`
	Scalar float64   `json:"scalar,omitempty" yaml:"scalar,omitempty"`
	Ms     int64     `json:"ms,omitempty" yaml:"ms,omitempty"`
	Word   string    `json:"word" yaml:"word"`
	Pos    int       `json:"pos" yaml:"pos"` // index of the first source word
}

func (t Token) String() string {
	switch t.Kind {
	case TokenScalar:
		return fmt.Sprintf("scalar(%s)", strconv.FormatFloat(t.Scalar, 'g', -1, 64))
	case TokenUnit:
		return fmt.Sprintf("unit(%s=%dms)", t.Word, t.Ms)
	case TokenSpan:
		return fmt.Sprintf("span(%dms)", t.Ms)
	case TokenDate:
		return fmt.Sprintf("date(%d)", t.Ms)
	default:
		return t.Kind.String()
	}
}
