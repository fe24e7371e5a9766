package gfoldcli

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/repotab/repotab/internal/execshell"
)

const (
	executorNotConfiguredMessageConstant    = "gfold executor not configured"
	toolNotInstalledMessageConstant         = "gfold is not installed or not on PATH"
	requiredValueMessageConstant            = "value required"
	invalidInputErrorTemplateConstant       = "%s: %s"
	repositoryPathFieldNameConstant         = "repository_path"
	operationErrorWithCauseTemplateConstant = "%s operation failed: %s"
	captureStatusOperationNameConstant      = OperationName("CaptureStatus")
)

// OperationName describes a named gfold workflow supported by the client.
type OperationName string

// GfoldExecutor is the minimal interface required from execshell.ShellExecutor.
type GfoldExecutor interface {
	ExecuteGfold(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Sentinel errors surfaced by the client.
var (
	// ErrExecutorNotConfigured indicates the client was constructed without an executor.
	ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)
	// ErrToolNotInstalled indicates the gfold binary could not be started at all.
	ErrToolNotInstalled = errors.New(toolNotInstalledMessageConstant)
)

// InvalidInputError surfaces validation issues for operation inputs.
type InvalidInputError struct {
	FieldName string
	Message   string
}

// Error describes the invalid input.
func (inputError InvalidInputError) Error() string {
	return fmt.Sprintf(invalidInputErrorTemplateConstant, inputError.FieldName, inputError.Message)
}

// OperationError wraps execution issues for gfold operations.
type OperationError struct {
	Operation OperationName
	Cause     error
}

// Error describes the failed operation.
func (operationError OperationError) Error() string {
	return fmt.Sprintf(operationErrorWithCauseTemplateConstant, operationError.Operation, operationError.Cause)
}

// Unwrap exposes the underlying cause.
func (operationError OperationError) Unwrap() error {
	return operationError.Cause
}

// StatusReport carries the textual output gfold produced for one repository.
type StatusReport struct {
	RepositoryPath string
	Output         string
}

// Client coordinates gfold invocations through execshell.
type Client struct {
	executor GfoldExecutor
}

// NewClient constructs a gfold client around the provided executor.
func NewClient(executor GfoldExecutor) (*Client, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &Client{executor: executor}, nil
}

// CaptureStatus runs gfold against the repository path and relays its textual report.
// The report semantics are entirely gfold's own; the client never interprets them.
func (client *Client) CaptureStatus(executionContext context.Context, repositoryPath string) (StatusReport, error) {
	trimmedPath := strings.TrimSpace(repositoryPath)
	if len(trimmedPath) == 0 {
		return StatusReport{}, InvalidInputError{FieldName: repositoryPathFieldNameConstant, Message: requiredValueMessageConstant}
	}

	commandDetails := execshell.CommandDetails{Arguments: []string{trimmedPath}}
	executionResult, executionError := client.executor.ExecuteGfold(executionContext, commandDetails)
	if executionError != nil {
		if errors.Is(executionError, exec.ErrNotFound) {
			return StatusReport{}, OperationError{Operation: captureStatusOperationNameConstant, Cause: ErrToolNotInstalled}
		}
		return StatusReport{}, OperationError{Operation: captureStatusOperationNameConstant, Cause: executionError}
	}

	return StatusReport{RepositoryPath: trimmedPath, Output: executionResult.StandardOutput}, nil
}
