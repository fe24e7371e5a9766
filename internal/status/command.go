package status

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/repotab/repotab/internal/execshell"
	pathutils "github.com/repotab/repotab/internal/utils/path"
)

const (
	commandUseConstant              = "status"
	commandShortDescriptionConstant = "Report uncommitted and unpushed work across configured repositories"
	commandLongDescriptionConstant  = "status inspects every configured repository and reports its branch, " +
		"working tree cleanliness, and unpushed commits in a single table."
	toolFlagNameConstant    = "tool"
	toolFlagUsageConstant   = "status collaborator to run (git or gfold)"
	formatFlagNameConstant  = "format"
	formatFlagUsageConstant = "report output format (table or csv)"
	rootFlagNameConstant    = "root"
	rootFlagUsageConstant   = "directory roots scanned for additional repositories (repeatable)"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the status cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
	Discoverer            RepositoryDiscoverer
	GitInspector          GitRepositoryInspector
	StatusTool            StatusToolClient
	FileSystem            FileSystem
	CommandEventsObserver execshell.CommandEventObserver
}

// Build constructs the cobra command for repository status reporting.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           commandUseConstant + " [root ...]",
		Short:         commandShortDescriptionConstant,
		Long:          commandLongDescriptionConstant,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ArbitraryArgs,
		RunE:          builder.run,
	}

	command.Flags().String(toolFlagNameConstant, "", toolFlagUsageConstant)
	command.Flags().String(formatFlagNameConstant, "", formatFlagUsageConstant)
	command.Flags().StringSlice(rootFlagNameConstant, nil, rootFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	options, optionsError := builder.parseOptions(command, arguments, configuration)
	if optionsError != nil {
		return optionsError
	}

	logger := builder.resolveLogger()

	shellExecutor, executorError := ResolveShellExecutor(nil, logger, builder.CommandEventsObserver)
	if executorError != nil {
		return executorError
	}

	inspector, inspectorError := ResolveGitInspector(builder.GitInspector, shellExecutor)
	if inspectorError != nil {
		return inspectorError
	}

	statusTool, statusToolError := ResolveStatusToolClient(builder.StatusTool, shellExecutor)
	if statusToolError != nil {
		return statusToolError
	}

	discoverer := ResolveRepositoryDiscoverer(builder.Discoverer)
	fileSystem := ResolveFileSystem(builder.FileSystem)

	service := NewService(discoverer, inspector, statusTool, fileSystem, command.OutOrStdout(), command.ErrOrStderr())
	return service.Run(command.Context(), options)
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string, configuration CommandConfiguration) (CommandOptions, error) {
	toolSelection := configuration.Tool
	if command.Flags().Changed(toolFlagNameConstant) {
		toolSelection, _ = command.Flags().GetString(toolFlagNameConstant)
	}
	tool, toolError := ParseToolName(toolSelection)
	if toolError != nil {
		return CommandOptions{}, toolError
	}

	formatSelection := configuration.Format
	if command.Flags().Changed(formatFlagNameConstant) {
		formatSelection, _ = command.Flags().GetString(formatFlagNameConstant)
	}
	format, formatError := ParseReportFormat(formatSelection)
	if formatError != nil {
		return CommandOptions{}, formatError
	}

	roots := configuration.Roots
	if command.Flags().Changed(rootFlagNameConstant) {
		roots, _ = command.Flags().GetStringSlice(rootFlagNameConstant)
	}
	roots = append(append([]string{}, roots...), arguments...)

	homeExpander := pathutils.NewHomeExpander()
	rootSanitizer := pathutils.NewRepositoryPathSanitizerWithExpander(homeExpander)

	options := CommandOptions{
		Tool:    tool,
		Format:  format,
		Roots:   rootSanitizer.Sanitize(roots),
		Entries: assembleConfiguredEntries(configuration, homeExpander),
	}

	return options, nil
}

// assembleConfiguredEntries flattens grouped and ungrouped configuration entries
// in declaration order, expanding home shortcuts and dropping duplicate paths.
func assembleConfiguredEntries(configuration CommandConfiguration, homeExpander *pathutils.HomeExpander) []RepositoryEntry {
	seenPaths := make(map[string]struct{})
	var entries []RepositoryEntry

	appendEntry := func(repository RepositoryConfiguration, groupName string) {
		expandedPath := homeExpander.Expand(repository.Path)
		if _, exists := seenPaths[expandedPath]; exists {
			return
		}
		seenPaths[expandedPath] = struct{}{}
		entries = append(entries, RepositoryEntry{
			Path:  expandedPath,
			Name:  repository.Name,
			Group: groupName,
		})
	}

	for _, repository := range configuration.Repositories {
		appendEntry(repository, "")
	}
	for _, group := range configuration.Groups {
		for _, repository := range group.Repositories {
			appendEntry(repository, group.Name)
		}
	}

	return entries
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration().sanitize()
	}
	return builder.ConfigurationProvider().sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
