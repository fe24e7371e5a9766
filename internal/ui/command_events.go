package ui

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/repotab/repotab/internal/execshell"
)

const (
	commandStartedMessageTemplateConstant          = "Running %s"
	commandCompletedMessageTemplateConstant        = "Completed %s"
	commandFailedExitCodeMessageTemplateConstant   = "%s failed with exit code %d"
	commandExecutionFailureMessageTemplateConstant = "%s failed: %s"
	workingDirectorySuffixTemplateConstant         = " (in %s)"
	commandArgumentsJoinSeparatorConstant          = " "
	standardErrorSuffixTemplateConstant            = ": %s"
	unknownFailureMessageConstant                  = "unknown error"
)

// CommandEventFormatter builds human-readable messages for command lifecycle events.
type CommandEventFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandEventFormatter) BuildStartedMessage(command execshell.ShellCommand) string {
	return fmt.Sprintf(commandStartedMessageTemplateConstant, formatter.formatCommandLabel(command))
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandEventFormatter) BuildSuccessMessage(command execshell.ShellCommand) string {
	return fmt.Sprintf(commandCompletedMessageTemplateConstant, formatter.formatCommandLabel(command))
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandEventFormatter) BuildFailureMessage(command execshell.ShellCommand, result execshell.ExecutionResult) string {
	baseMessage := fmt.Sprintf(commandFailedExitCodeMessageTemplateConstant, formatter.formatCommandLabel(command), result.ExitCode)
	trimmedStandardError := strings.TrimSpace(result.StandardError)
	if len(trimmedStandardError) == 0 {
		return baseMessage
	}
	return baseMessage + fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandEventFormatter) BuildExecutionFailureMessage(command execshell.ShellCommand, failure error) string {
	failureMessage := unknownFailureMessageConstant
	if failure != nil {
		failureMessage = failure.Error()
	}
	return fmt.Sprintf(commandExecutionFailureMessageTemplateConstant, formatter.formatCommandLabel(command), failureMessage)
}

func (formatter CommandEventFormatter) formatCommandLabel(command execshell.ShellCommand) string {
	commandParts := []string{string(command.Name)}
	if len(command.Details.Arguments) > 0 {
		commandParts = append(commandParts, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}
	commandLabel := strings.Join(commandParts, commandArgumentsJoinSeparatorConstant)

	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return commandLabel
	}
	return commandLabel + fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

// LoggerProvider supplies the logger current at event time, allowing the
// application to swap loggers after configuration is loaded.
type LoggerProvider func() *zap.Logger

// EnabledPredicate reports whether console event logging is active.
type EnabledPredicate func() bool

// ConsoleCommandEventLogger renders command lifecycle events for human-readable output.
type ConsoleCommandEventLogger struct {
	loggerProvider LoggerProvider
	enabled        EnabledPredicate
	formatter      CommandEventFormatter
}

// NewConsoleCommandEventLogger constructs a console event logger. Events are
// dropped whenever the predicate reports console output is inactive.
func NewConsoleCommandEventLogger(loggerProvider LoggerProvider, enabled EnabledPredicate) *ConsoleCommandEventLogger {
	return &ConsoleCommandEventLogger{
		loggerProvider: loggerProvider,
		enabled:        enabled,
		formatter:      CommandEventFormatter{},
	}
}

func (eventLogger *ConsoleCommandEventLogger) resolveLogger() *zap.Logger {
	if eventLogger == nil {
		return zap.NewNop()
	}
	if eventLogger.enabled != nil && !eventLogger.enabled() {
		return zap.NewNop()
	}
	if eventLogger.loggerProvider == nil {
		return zap.NewNop()
	}
	logger := eventLogger.loggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// CommandStarted implements execshell.CommandEventObserver by logging command start notifications.
func (eventLogger *ConsoleCommandEventLogger) CommandStarted(command execshell.ShellCommand) {
	eventLogger.resolveLogger().Info(eventLogger.formatter.BuildStartedMessage(command))
}

// CommandCompleted implements execshell.CommandEventObserver by logging command completion notifications.
func (eventLogger *ConsoleCommandEventLogger) CommandCompleted(command execshell.ShellCommand, result execshell.ExecutionResult) {
	logger := eventLogger.resolveLogger()
	if result.ExitCode == 0 {
		logger.Info(eventLogger.formatter.BuildSuccessMessage(command))
		return
	}
	logger.Warn(eventLogger.formatter.BuildFailureMessage(command, result))
}

// CommandExecutionFailed implements execshell.CommandEventObserver by logging unexpected execution failures.
func (eventLogger *ConsoleCommandEventLogger) CommandExecutionFailed(command execshell.ShellCommand, failure error) {
	eventLogger.resolveLogger().Error(eventLogger.formatter.BuildExecutionFailureMessage(command, failure))
}
