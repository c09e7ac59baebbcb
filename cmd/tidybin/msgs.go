package tidybin

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Organize project assets into folders by rule"
	MsgRootLong     = "tidybin decides, for every asset in a creative project, which folder\nand subfolder it belongs to according to a versioned, user-editable\nrule set, and previews batch renames. Moving items is performed by the\nhost application; tidybin is the decision layer."
	MsgPlanShort    = "Resolve items into folder assignments"
	MsgPlanLong     = "Plan reads an exported item list and prints, per asset, the folder and\nsubcategory the rule set assigns it to. Items the rules do not cover are\nlisted as unorganized."
	MsgCheckShort   = "Diagnose the rule configuration"
	MsgCheckLong    = "Check reports configuration warnings: keywords shared between\ncategories, subcategories that need a filter, and entries with invalid\ncategory types. Warnings are non-fatal; use --strict to fail on them."
	MsgMigrateShort = "Upgrade a configuration to the current schema version"
	MsgRenameShort  = "Preview a batch rename"
	MsgRenameLong   = "Rename previews find/replace, prefix and suffix transformations over an\nexported item list. Suffixes are inserted ahead of the file extension.\nApplying the rename requires a live host connection."
	MsgStatsShort   = "Show project statistics reported by the host"
	MsgInitShort    = "Write the default rule configuration"
	MsgDocsShort    = "Display documentation topics"

	// Status messages
	MsgNoItems          = "No items to process."
	MsgNoWarnings       = "Configuration is clean."
	MsgNoChanges        = "No names would change."
	MsgConfigUpToDate   = "Configuration is already at version %d.\n"
	MsgConfigMigrated   = "Configuration migrated from version %d to version %d.\n"
	MsgConfigWritten    = "Wrote configuration to %s\n"
	MsgConfigExists     = "configuration already exists at %s (use --force to overwrite)"
	MsgUnorganizedLabel = "unorganized"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrLoadItems  = "failed to load items: %w"
	MsgErrStrict     = "configuration has %d warning(s)"
)

// MsgUsageTemplate restyles cobra's usage output with the bold/upper
// template functions registered in formatting.go.
const MsgUsageTemplate = `{{boldUpper "Usage"}}:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{upper "Aliases"}}:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples"}}:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

{{boldUpper "Commands"}}:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags"}}:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags"}}:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{bold .CommandPath}} [command] --help" for more information about a command.{{end}}
`
