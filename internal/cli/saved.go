package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tempio/internal/config"
	"github.com/aidanlsb/tempio/internal/ui"
)

// SavedPhrase is a saved phrase as shown by 'tempio saved'.
type SavedPhrase struct {
	Name   string `json:"name" yaml:"name"`
	Phrase string `json:"phrase" yaml:"phrase"`
}

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "List saved phrases",
	Long: `Lists the phrases saved in the [phrases] table of the config file.

Saved phrases are resolved with 'tempio resolve --saved <name>'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := getConfig()
		items := make([]SavedPhrase, 0, len(c.Phrases))
		for _, name := range c.PhraseNames() {
			items = append(items, SavedPhrase{Name: name, Phrase: c.Phrases[name]})
		}

		if isStructuredOutput() {
			outputSuccess(map[string]interface{}{"items": items}, &Meta{Count: len(items)})
			return nil
		}

		if len(items) == 0 {
			fmt.Println(ui.Hint("No saved phrases. Add one with 'tempio saved add <name> <phrase...>'."))
			return nil
		}
		tbl := ui.NewTable(2)
		tbl.SetHeader("NAME", "PHRASE")
		for _, item := range items {
			tbl.AddRow(item.Name, item.Phrase)
		}
		fmt.Print(tbl.String())
		return nil
	},
}

var savedAddCmd = &cobra.Command{
	Use:   "add <name> <phrase...>",
	Short: "Save a phrase under a name",
	Long: `Saves a phrase in the config file. The phrase must resolve now; names
are stored as slugs ("Last Sprint" becomes "last-sprint").

Examples:
  tempio saved add last-sprint 2 week ago
  tempio saved add "Release Day" "3 day from now"`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := getConfig()
		text := strings.Join(args[1:], " ")

		loc, err := resolveLocation(c)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		p, err := newParser(loc)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		if _, err := p.Resolve(text); err != nil {
			return handlePhraseError(err, text)
		}

		var warnings []Warning
		if prev, err := c.Phrase(args[0]); err == nil {
			warnings = append(warnings, Warning{
				Code:    WarnPhraseReplaced,
				Message: fmt.Sprintf("replacing saved phrase %q", prev),
			})
		}

		name, err := c.SetPhrase(args[0], text)
		if err != nil {
			return handleError(ErrInvalidInput, err, "Use letters or digits in the name")
		}
		if err := config.SaveTo(getConfigPath(), c); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isStructuredOutput() {
			outputSuccessWithWarnings(SavedPhrase{Name: name, Phrase: text}, warnings, nil)
			return nil
		}
		printWarnings(warnings)
		fmt.Println(ui.Successf("Saved %s = %q", name, text))
		return nil
	},
}

var savedRemoveCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"remove"},
	Short:   "Remove a saved phrase",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := getConfig()
		if !c.RemovePhrase(args[0]) {
			return handleErrorMsg(ErrPhraseNotFound, fmt.Sprintf("saved phrase '%s' not found in config", args[0]), "Run 'tempio saved' to list saved phrases")
		}
		if err := config.SaveTo(getConfigPath(), c); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isStructuredOutput() {
			outputSuccess(map[string]interface{}{"removed": args[0]}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Removed %s", args[0]))
		return nil
	},
}

func init() {
	savedCmd.AddCommand(savedAddCmd)
	savedCmd.AddCommand(savedRemoveCmd)
	rootCmd.AddCommand(savedCmd)
}
