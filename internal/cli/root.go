// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tempio/internal/config"
	"github.com/aidanlsb/tempio/internal/ui"
)

var (
	// Global flags
	configPath string
	nowFlag    timeFlag
	tzFlag     string

	// Resolved values
	resolvedConfigPath string
	cfg                *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tempio",
	Short: "tempio - resolve English time phrases to timestamps",
	Long: `tempio resolves short English phrases such as "3 day ago",
"1 week from now" or "2 day from yesterday" to a concrete timestamp.

Run 'tempio grammar' for the phrase grammar.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		switch cmd.Name() {
		case "completion", "help", "version":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		loaded, path, err := loadGlobalConfigWithPath()
		if err != nil {
			return handleError(ErrConfigInvalid, fmt.Errorf("failed to load config: %w", err), "Fix the file or pass --config")
		}
		cfg = loaded
		resolvedConfigPath = path
		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().Var(&nowFlag, "now", "Current time to resolve against (epoch ms, YYYY-MM-DD or RFC3339)")
	rootCmd.PersistentFlags().StringVar(&tzFlag, "tz", "", "IANA time zone for output and --now dates (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
	rootCmd.PersistentFlags().BoolVar(&yamlOutput, "yaml", false, "Output in YAML format")
	rootCmd.MarkFlagsMutuallyExclusive("json", "yaml")
}

// getConfig returns the loaded config, or an empty one before loading.
func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}

// getConfigPath returns the resolved global config path.
func getConfigPath() string {
	if resolvedConfigPath == "" {
		return config.ResolveConfigPath(configPath)
	}
	return resolvedConfigPath
}

func loadGlobalConfigWithPath() (*config.Config, string, error) {
	resolvedPath := config.ResolveConfigPath(configPath)

	var loadedCfg *config.Config
	var err error
	if strings.TrimSpace(configPath) != "" {
		loadedCfg, err = config.LoadFrom(configPath)
	} else {
		loadedCfg, err = config.Load()
	}
	if err != nil {
		return nil, "", err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}

	return loadedCfg, resolvedPath, nil
}
