package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tempio/internal/config"
	"github.com/aidanlsb/tempio/internal/dates"
	"github.com/aidanlsb/tempio/internal/ui"
)

var (
	configSetDefaultFormat string
	configSetTimezone      string
	configSetUIAccent      string
	configSetUICodeTheme   string
)

func configData(c *config.Config, path string, exists bool) map[string]interface{} {
	return map[string]interface{}{
		"config_path":    path,
		"exists":         exists,
		"default_format": strings.TrimSpace(c.DefaultFormat),
		"timezone":       strings.TrimSpace(c.Timezone),
		"ui": map[string]interface{}{
			"accent":     strings.TrimSpace(c.UI.Accent),
			"code_theme": strings.TrimSpace(c.UI.CodeTheme),
		},
		"phrases": len(c.Phrases),
	}
}

func configFileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or edit the tempio config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective config",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	c := getConfig()
	path := getConfigPath()
	exists := configFileExists(path)

	if isStructuredOutput() {
		outputSuccess(configData(c, path, exists), nil)
		return nil
	}

	if !exists {
		fmt.Printf("Config file does not exist: %s\n", path)
		fmt.Println("Run 'tempio config init' to create it.")
		return nil
	}

	fmt.Printf("config: %s\n", path)
	if v := strings.TrimSpace(c.DefaultFormat); v != "" {
		fmt.Printf("default_format: %s\n", v)
	}
	if v := strings.TrimSpace(c.Timezone); v != "" {
		fmt.Printf("timezone: %s\n", v)
	}
	if v := strings.TrimSpace(c.UI.Accent); v != "" {
		fmt.Printf("ui.accent: %s\n", v)
	}
	if v := strings.TrimSpace(c.UI.CodeTheme); v != "" {
		fmt.Printf("ui.code_theme: %s\n", v)
	}
	fmt.Printf("phrases: %d\n", len(c.Phrases))
	return nil
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a commented default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := getConfigPath()
		created, err := config.CreateDefault(path)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isStructuredOutput() {
			outputSuccess(map[string]interface{}{
				"config_path": path,
				"created":     created,
			}, nil)
			return nil
		}

		if created {
			fmt.Println(ui.Successf("Created %s", path))
		} else {
			fmt.Printf("Config already exists: %s\n", path)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set config values",
	Long: `Sets one or more config values and saves the file.

Examples:
  tempio config set --default-format human
  tempio config set --timezone Europe/Berlin --ui-accent 39`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := getConfig()
		changed := false

		if cmd.Flags().Changed("default-format") {
			format, err := dates.NormalizeFormat(configSetDefaultFormat)
			if err != nil {
				return handleError(ErrInvalidInput, err, "")
			}
			c.DefaultFormat = format
			changed = true
		}
		if cmd.Flags().Changed("timezone") {
			tz := strings.TrimSpace(configSetTimezone)
			if tz != "" {
				if _, err := time.LoadLocation(tz); err != nil {
					return handleError(ErrInvalidInput, fmt.Errorf("invalid timezone %q: %w", tz, err), "Use an IANA zone such as UTC or Europe/Berlin")
				}
			}
			c.Timezone = tz
			changed = true
		}
		if cmd.Flags().Changed("ui-accent") {
			c.UI.Accent = strings.TrimSpace(configSetUIAccent)
			changed = true
		}
		if cmd.Flags().Changed("ui-code-theme") {
			c.UI.CodeTheme = strings.TrimSpace(configSetUICodeTheme)
			changed = true
		}

		if !changed {
			return handleErrorMsg(ErrMissingArgument, "no config values given", "Pass at least one of --default-format, --timezone, --ui-accent, --ui-code-theme")
		}

		path := getConfigPath()
		if err := config.SaveTo(path, c); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isStructuredOutput() {
			outputSuccess(configData(c, path, true), nil)
			return nil
		}
		fmt.Println(ui.Successf("Saved %s", path))
		return nil
	},
}

func init() {
	configSetCmd.Flags().StringVar(&configSetDefaultFormat, "default-format", "", "Default output format (ms, rfc3339, date, human)")
	configSetCmd.Flags().StringVar(&configSetTimezone, "timezone", "", "IANA time zone; empty for local")
	configSetCmd.Flags().StringVar(&configSetUIAccent, "ui-accent", "", "Accent color (ANSI 0-255, #RRGGBB or none)")
	configSetCmd.Flags().StringVar(&configSetUICodeTheme, "ui-code-theme", "", "Chroma theme for code blocks in 'tempio grammar'")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
