package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tempio/internal/dates"
	"github.com/aidanlsb/tempio/internal/phrase"
	"github.com/aidanlsb/tempio/internal/ui"
)

var (
	resolveFormat string
	resolveTrace  bool
	resolveSaved  string
)

// ResolveResult is the structured output of the resolve command.
type ResolveResult struct {
	Phrase    string      `json:"phrase" yaml:"phrase"`
	Ms        int64       `json:"ms" yaml:"ms"`
	Format    string      `json:"format" yaml:"format"`
	Formatted string      `json:"formatted" yaml:"formatted"`
	RFC3339   string      `json:"rfc3339" yaml:"rfc3339"`
	Relative  string      `json:"relative" yaml:"relative"`
	Steps     []TraceStep `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// TraceStep is one rule application, rendered for output.
type TraceStep struct {
	Rule   string `json:"rule" yaml:"rule"`
	Before string `json:"before" yaml:"before"`
	After  string `json:"after" yaml:"after"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <phrase...>",
	Short: "Resolve a time phrase to a timestamp",
	Long: `Resolves a phrase such as "3 day ago" to a timestamp.

Arguments are joined with single spaces, so quoting is optional. A single
quoted argument is used exactly as given, including repeated spaces.

Examples:
  tempio resolve 3 day ago
  tempio resolve "1 week from now" --format rfc3339
  tempio resolve 2 day from yesterday --now 2023-11-14T22:13:20Z --trace
  tempio resolve --saved last-sprint`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := getConfig()
		var warnings []Warning

		text := strings.Join(args, " ")
		if resolveSaved != "" {
			saved, err := c.Phrase(resolveSaved)
			if err != nil {
				return handleError(ErrPhraseNotFound, err, "Run 'tempio saved' to list saved phrases")
			}
			if len(args) > 0 {
				warnings = append(warnings, Warning{
					Code:    WarnIgnoredArgs,
					Message: fmt.Sprintf("ignoring arguments %q because --saved was given", text),
				})
			}
			text = saved
		}

		format := resolveFormat
		if format == "" {
			format = c.DefaultFormat
		}
		format, err := dates.NormalizeFormat(format)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		loc, err := resolveLocation(c)
		if err != nil {
			return handleError(ErrInvalidInput, err, "Use an IANA zone such as UTC or Europe/Berlin")
		}

		p, err := newParser(loc)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		var steps []TraceStep
		if resolveTrace {
			p.Trace = func(s phrase.Step) {
				steps = append(steps, TraceStep{
					Rule:   s.Rule,
					Before: formatTokens(s.Before),
					After:  formatTokens(s.After),
				})
			}
		}

		result, err := resolvePhrase(p, text, format, loc)
		if err != nil {
			return handlePhraseError(err, text)
		}
		result.Steps = steps

		if isStructuredOutput() {
			outputSuccessWithWarnings(result, warnings, &Meta{Count: 1, NowMs: p.Now().UnixMilli()})
			return nil
		}

		printWarnings(warnings)
		for _, s := range steps {
			fmt.Println(ui.Step(s.Rule, s.Before, s.After))
		}
		if format == dates.FormatHuman {
			fmt.Printf("%s %s\n", ui.Timestamp(result.Formatted), ui.Hint("("+result.Relative+")"))
		} else {
			fmt.Println(ui.Timestamp(result.Formatted))
		}
		return nil
	},
}

// resolvePhrase resolves text and renders the result in format.
func resolvePhrase(p phrase.Parser, text, format string, loc *time.Location) (*ResolveResult, error) {
	tokens, err := p.Resolve(text)
	if err != nil {
		return nil, err
	}

	ms := tokens[0].Ms
	formatted, err := dates.Format(ms, format, loc)
	if err != nil {
		return nil, err
	}
	rfc, _ := dates.Format(ms, dates.FormatRFC3339, loc)

	return &ResolveResult{
		Phrase:    text,
		Ms:        ms,
		Format:    format,
		Formatted: formatted,
		RFC3339:   rfc,
		Relative:  dates.DescribeOffset(ms, p.Now().UnixMilli()),
	}, nil
}

func formatTokens(tokens []phrase.Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveFormat, "format", "f", "", "Output format: ms, rfc3339, date, human (default from config, else ms)")
	resolveCmd.Flags().BoolVar(&resolveTrace, "trace", false, "Show each reduction step")
	resolveCmd.Flags().StringVar(&resolveSaved, "saved", "", "Resolve a phrase saved in config")
	rootCmd.AddCommand(resolveCmd)
}
