package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tempio/internal/phrase"
	"github.com/aidanlsb/tempio/internal/ui"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <phrase...>",
	Short: "Show how each word of a phrase is classified",
	Long: `Tokenizes a phrase without reducing it. Useful for finding the word
that makes a phrase fail.

Examples:
  tempio tokens 3 day ago
  tempio tokens "1.5 week from yesterday" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		loc, err := resolveLocation(getConfig())
		if err != nil {
			return handleError(ErrInvalidInput, err, "Use an IANA zone such as UTC or Europe/Berlin")
		}
		p, err := newParser(loc)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		tokens, err := p.TokenizePhrase(text)
		if err != nil {
			return handlePhraseError(err, text)
		}

		if isStructuredOutput() {
			outputSuccess(map[string]interface{}{
				"phrase": text,
				"tokens": tokens,
			}, &Meta{Count: len(tokens), NowMs: p.Now().UnixMilli()})
			return nil
		}

		tbl := ui.NewTable(4)
		tbl.SetHeader("POS", "WORD", "KIND", "VALUE")
		for _, t := range tokens {
			tbl.AddRow(strconv.Itoa(t.Pos), t.Word, t.Kind.String(), tokenValue(t))
		}
		fmt.Print(tbl.String())
		return nil
	},
}

// tokenValue renders the payload of a token for the table.
func tokenValue(t phrase.Token) string {
	switch t.Kind {
	case phrase.TokenScalar:
		return strconv.FormatFloat(t.Scalar, 'g', -1, 64)
	case phrase.TokenUnit, phrase.TokenSpan:
		return strconv.FormatInt(t.Ms, 10) + "ms"
	case phrase.TokenDate:
		return strconv.FormatInt(t.Ms, 10)
	default:
		return ""
	}
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
