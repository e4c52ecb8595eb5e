package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tempio/internal/reference"
	"github.com/aidanlsb/tempio/internal/ui"
)

var grammarList bool

var grammarCmd = &cobra.Command{
	Use:   "grammar [section]",
	Short: "Show the phrase grammar reference",
	Long: `Prints the embedded phrase grammar. Pass a section title or slug to
print only that section, or --list to see the available sections.

Examples:
  tempio grammar
  tempio grammar units
  tempio grammar "reduction rules"
  tempio grammar --list`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := reference.Grammar()
		if err != nil {
			return handleError(ErrInternal, err, "")
		}
		sections := reference.Sections(content)

		if grammarList {
			if isStructuredOutput() {
				outputSuccess(map[string]interface{}{"sections": sections}, &Meta{Count: len(sections)})
				return nil
			}
			for _, s := range sections {
				indent := strings.Repeat("  ", max(s.Level-1, 0))
				fmt.Printf("%s%s %s\n", indent, s.Title, ui.Hint("("+s.Slug+")"))
			}
			return nil
		}

		title := ""
		if len(args) == 1 {
			s, ok := reference.Find(sections, args[0])
			if !ok {
				return handleErrorMsg(ErrSectionNotFound, fmt.Sprintf("no grammar section named '%s'", args[0]), "Run 'tempio grammar --list' to see sections")
			}
			title = s.Title
			content = s.Body
		}

		if isStructuredOutput() {
			outputSuccess(map[string]interface{}{
				"section": title,
				"content": content,
			}, nil)
			return nil
		}

		display := ui.NewDisplayContext()
		if !display.IsTTY {
			fmt.Print(content)
			return nil
		}
		rendered, err := ui.RenderMarkdown(content, display.MarkdownWidth())
		if err != nil {
			fmt.Print(content)
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	grammarCmd.Flags().BoolVar(&grammarList, "list", false, "List grammar sections")
	rootCmd.AddCommand(grammarCmd)
}
