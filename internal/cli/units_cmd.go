package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tempio/internal/ui"
	"github.com/aidanlsb/tempio/internal/units"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the recognised time units",
	Long: `Lists every unit word with its length in milliseconds. Units are
singular and lowercase; "days" or "Day" are not recognised.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		all := units.All()

		if isStructuredOutput() {
			outputSuccess(map[string]interface{}{"units": all}, &Meta{Count: len(all)})
			return nil
		}

		tbl := ui.NewTable(3)
		tbl.SetHeader("UNIT", "MS", "DEFINITION")
		for _, u := range all {
			def := ""
			if u.Base != "" {
				def = fmt.Sprintf("%d %s", u.Factor, u.Base)
			}
			tbl.AddRow(u.Name, strconv.FormatInt(u.Ms, 10), def)
		}
		fmt.Print(tbl.String())
		fmt.Println(ui.Hint(ui.Count(len(all), "unit", "units")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}
