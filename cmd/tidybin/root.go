package tidybin

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tidybin/tidybin/internal/version"
	"github.com/tidybin/tidybin/pkg/logging"
	"github.com/tidybin/tidybin/pkg/store"
)

type rootFlags struct {
	verbosity  int
	configPath string
	colorMode  string

	settings *store.AppSettings
}

// NewRootCmd builds the tidybin command tree.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:     "tidybin",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: fmt.Sprintf("%s (%s, %s)", version.Version, version.Commit, version.Date),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			settings := loadAppSettings(flags)

			// Flags beat the settings file; the settings file beats the
			// built-in defaults.
			verbosity := flags.verbosity
			if verbosity == 0 {
				verbosity = verbosityForLevel(settings.LogLevel)
			}
			logging.SetupLogger(verbosity)

			mode := flags.colorMode
			if !cmd.Root().PersistentFlags().Changed("color") && settings.Color != "" {
				mode = settings.Color
			}
			configureColor(mode)

			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "",
		"Path to the rule configuration (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&flags.colorMode, "color", "auto",
		"Colorize output: auto, always or never")

	initTemplateFormatting()
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(
		newPlanCmd(flags),
		newCheckCmd(flags),
		newMigrateCmd(flags),
		newRenameCmd(),
		newStatsCmd(),
		newInitCmd(flags),
		newDocsCmd(),
	)

	return rootCmd
}

// loadAppSettings loads the CLI settings once per invocation, falling back
// to the built-in defaults when the settings file cannot be read.
func loadAppSettings(flags *rootFlags) *store.AppSettings {
	if flags.settings != nil {
		return flags.settings
	}
	settings, err := store.LoadAppSettings(store.DefaultSettingsPath())
	if err != nil {
		log.Warn().Err(err).Msg("failed to load settings, using defaults")
		settings = &store.AppSettings{
			ConfigPath: store.DefaultConfigPath(),
			Color:      "auto",
			LogLevel:   "warn",
		}
	}
	flags.settings = settings
	return settings
}

// resolveConfigPath decides which configuration file to use: the --config
// flag, then the settings file / environment, then the standard location.
func resolveConfigPath(flags *rootFlags) string {
	if flags.configPath != "" {
		return flags.configPath
	}
	return loadAppSettings(flags).ConfigPath
}

// verbosityForLevel maps a settings log level onto the -v count scale.
func verbosityForLevel(level string) int {
	switch strings.ToLower(level) {
	case "info":
		return 1
	case "debug":
		return 2
	case "trace":
		return 3
	default:
		return 0
	}
}
