package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Mirror a source directory into targets using symbolic links"
	MsgConfigShort  = "Print the normalized configuration"
	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"

	// Status messages
	MsgDryRunNotice   = "DRY RUN MODE - No changes were made"
	MsgVersionFormat  = "linker version %s\n"
	MsgCommitFormat   = "Commit: %s\n"
	MsgBuiltFormat    = "Built:  %s\n"

	// Error messages
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrReconcile    = "failed to link nodes: %w"
	MsgErrPrintPending = "failed to print pending nodes: %w"

	// Flag descriptions
	MsgFlagConfiguration = "Path to the configuration file (json, toml or yaml)"
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun        = "Log the links that would be created without creating them"
	MsgFlagFormat        = "Output format (json, toml, yaml)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/config-example.txt
	msgConfigExampleRaw string
	MsgConfigExample    = strings.TrimRight(msgConfigExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
