package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort             = "Inspect and change default applications for file types"
	MsgTypesShort            = "List content types and their default applications"
	MsgShowShort             = "Show the applications offered for a content type"
	MsgAppsShort             = "List installed applications"
	MsgAppShort              = "Show the content types an application handles"
	MsgPathsShort            = "Show the files and directories appsel reads and writes"
	MsgSetDefaultShort       = "Make an application the default for a content type"
	MsgClearDefaultShort     = "Drop your default application for a content type"
	MsgAddShort              = "Associate an application with a content type"
	MsgRemoveShort           = "Remove an association you added"
	MsgDisableShort          = "Hide an application from a content type"
	MsgEnableShort           = "Undo disable for an application and content type"
	MsgSetDefaultsByAppShort = "Make an application the default for many content types"
	MsgConfigShort           = "Manage appsel's configuration file"
	MsgConfigInitShort       = "Write a commented sample configuration file"
	MsgConfigShowShort       = "Print the effective configuration"
	MsgTopicsShort           = "Display available documentation topics"
	MsgTopicsLong            = "Display a list of all available help topics, or read one of them."
	MsgVersionShort          = "Print version information"
	MsgVersionLong           = "Print detailed version information including commit hash and build date"
	MsgCompletionShort       = "Generate shell completion script"

	// Status messages
	MsgConfigWritten = "Wrote sample configuration to %s\n"
	MsgUsageHint     = "Run '%s --help' for usage.\n"

	// Version output
	MsgVersionFormat = "appsel version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrUnknownTopic = "unknown help topic %q"
	MsgErrNoCommand    = "no command specified"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Configuration file (default $XDG_CONFIG_HOME/appsel/config.toml)"
	MsgFlagFormat      = "Output format (auto, term, text, json, yaml)"
	MsgFlagUserDefined = "Only list types whose default you set yourself"
	MsgFlagSearch      = "Only list types whose name, description or extensions contain TEXT"
	MsgFlagAll         = "Include applications that are hidden on this desktop"
	MsgFlagForce       = "Overwrite an existing configuration file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/types-example.txt
	msgTypesExampleRaw string
	MsgTypesExample    = strings.TrimSpace(msgTypesExampleRaw)

	//go:embed msgs/show-long.txt
	msgShowLongRaw string
	MsgShowLong    = strings.TrimSpace(msgShowLongRaw)

	//go:embed msgs/set-default-long.txt
	msgSetDefaultLongRaw string
	MsgSetDefaultLong    = strings.TrimSpace(msgSetDefaultLongRaw)

	//go:embed msgs/set-default-example.txt
	msgSetDefaultExampleRaw string
	MsgSetDefaultExample    = strings.TrimSpace(msgSetDefaultExampleRaw)

	//go:embed msgs/disable-long.txt
	msgDisableLongRaw string
	MsgDisableLong    = strings.TrimSpace(msgDisableLongRaw)

	//go:embed msgs/set-defaults-by-app-long.txt
	msgSetDefaultsByAppLongRaw string
	MsgSetDefaultsByAppLong    = strings.TrimSpace(msgSetDefaultsByAppLongRaw)

	//go:embed msgs/set-defaults-by-app-example.txt
	msgSetDefaultsByAppExampleRaw string
	MsgSetDefaultsByAppExample    = strings.TrimSpace(msgSetDefaultsByAppExampleRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
