// Package shellquote renders suggested commands so they can be pasted into a
// POSIX shell unchanged.
package shellquote

import "strings"

// Characters a shell would split on, expand or otherwise interpret.
const special = " \t\n#[]()|!\"'$`\\;&<>*?~{}"

// Quote wraps s in single quotes, escaping any internal single quotes.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// QuoteIfNeeded quotes s when a shell would not pass it through as one
// literal argument. The empty string is quoted so it survives as an argument.
func QuoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, special) {
		return Quote(s)
	}
	return s
}

// Command joins args into a single command line, quoting where needed.
func Command(args ...string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = QuoteIfNeeded(a)
	}
	return strings.Join(quoted, " ")
}
