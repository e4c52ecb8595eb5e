package cli

import (
	"errors"

	"github.com/aidanlsb/tempio/internal/phrase"
	"github.com/aidanlsb/tempio/internal/shellquote"
)

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	// Phrase errors
	ErrUnknownWord  = "UNKNOWN_WORD"
	ErrGrammar      = "GRAMMAR_ERROR"
	ErrEmptyInput   = "EMPTY_INPUT"
	ErrOutOfRange   = "OUT_OF_RANGE"
	ErrTooManySteps = "TOO_MANY_STEPS"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// Config errors
	ErrConfigInvalid   = "CONFIG_INVALID"
	ErrPhraseNotFound  = "PHRASE_NOT_FOUND"
	ErrFileWriteError  = "FILE_WRITE_ERROR"
	ErrSectionNotFound = "SECTION_NOT_FOUND"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnIgnoredArgs    = "IGNORED_ARGS"
	WarnPhraseReplaced = "PHRASE_REPLACED"
)

// phraseErrorCode maps a resolution error of text to its code and a
// suggestion.
func phraseErrorCode(err error, text string) (string, string) {
	switch {
	case errors.Is(err, phrase.ErrUnknownWord):
		return ErrUnknownWord, "Run 'tempio grammar vocabulary' for the accepted words, or inspect with: " + shellquote.Command("tempio", "tokens", text)
	case errors.Is(err, phrase.ErrGrammar):
		return ErrGrammar, "Phrases read left to right, e.g. '3 day ago' or '2 week from now'; inspect with: " + shellquote.Command("tempio", "resolve", "--trace", text)
	case errors.Is(err, phrase.ErrEmptyInput):
		return ErrEmptyInput, "Pass a phrase, e.g. tempio resolve 3 day ago"
	case errors.Is(err, phrase.ErrOutOfRange):
		return ErrOutOfRange, "Use a smaller number or unit"
	case errors.Is(err, phrase.ErrTooManySteps):
		return ErrTooManySteps, ""
	default:
		return ErrInternal, ""
	}
}

// phraseErrorDetails exposes the offending word or token to scripts.
func phraseErrorDetails(err error) interface{} {
	var uw *phrase.UnknownWordError
	if errors.As(err, &uw) {
		return map[string]interface{}{"word": uw.Word, "pos": uw.Pos}
	}
	var ge *phrase.GrammarError
	if errors.As(err, &ge) {
		return map[string]interface{}{"token": ge.Token.Kind.String(), "word": ge.Token.Word, "pos": ge.Token.Pos}
	}
	return nil
}

// handlePhraseError reports a resolution error of text with its stable code.
func handlePhraseError(err error, text string) error {
	code, suggestion := phraseErrorCode(err, text)
	return handleErrorWithDetails(code, err, suggestion, phraseErrorDetails(err))
}
