package gfoldcli_test

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/repotab/repotab/internal/execshell"
	"github.com/repotab/repotab/internal/gfoldcli"
)

const (
	testRepositoryPathConstant        = "/home/user/code/example"
	testGfoldOutputConstant           = "example ~ unclean ~ main\n"
	testCaptureSuccessCaseName        = "capture_success"
	testCaptureMissingToolCaseName    = "tool_not_installed"
	testCaptureEmptyPathCaseName      = "empty_repository_path"
	testCaptureExecutionErrorCaseName = "execution_error"
)

type stubGfoldExecutor struct {
	result           execshell.ExecutionResult
	executionError   error
	recordedDetails  []execshell.CommandDetails
	recordedRequests int
}

func (executor *stubGfoldExecutor) ExecuteGfold(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.recordedDetails = append(executor.recordedDetails, details)
	executor.recordedRequests++
	return executor.result, executor.executionError
}

func TestNewClientRequiresExecutor(testInstance *testing.T) {
	client, creationError := gfoldcli.NewClient(nil)
	require.Nil(testInstance, client)
	require.ErrorIs(testInstance, creationError, gfoldcli.ErrExecutorNotConfigured)
}

func TestClientCaptureStatus(testInstance *testing.T) {
	testCases := []struct {
		name                   string
		repositoryPath         string
		executor               *stubGfoldExecutor
		expectedOutput         string
		expectedError          error
		expectInvalid          bool
		expectOperationFailure bool
	}{
		{
			name:           testCaptureSuccessCaseName,
			repositoryPath: testRepositoryPathConstant,
			executor: &stubGfoldExecutor{
				result: execshell.ExecutionResult{StandardOutput: testGfoldOutputConstant},
			},
			expectedOutput: testGfoldOutputConstant,
		},
		{
			name:           testCaptureMissingToolCaseName,
			repositoryPath: testRepositoryPathConstant,
			executor: &stubGfoldExecutor{
				executionError: execshell.CommandExecutionError{Cause: exec.ErrNotFound},
			},
			expectedError: gfoldcli.ErrToolNotInstalled,
		},
		{
			name:           testCaptureEmptyPathCaseName,
			repositoryPath: "   ",
			executor:       &stubGfoldExecutor{},
			expectInvalid:  true,
		},
		{
			name:           testCaptureExecutionErrorCaseName,
			repositoryPath: testRepositoryPathConstant,
			executor: &stubGfoldExecutor{
				executionError: execshell.CommandFailedError{Result: execshell.ExecutionResult{ExitCode: 2}},
			},
			expectOperationFailure: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			client, creationError := gfoldcli.NewClient(testCase.executor)
			require.NoError(testInstance, creationError)

			report, captureError := client.CaptureStatus(context.Background(), testCase.repositoryPath)

			if testCase.expectInvalid {
				invalidInput := gfoldcli.InvalidInputError{}
				require.ErrorAs(testInstance, captureError, &invalidInput)
				require.Zero(testInstance, testCase.executor.recordedRequests)
				return
			}

			if testCase.expectOperationFailure {
				operationError := gfoldcli.OperationError{}
				require.ErrorAs(testInstance, captureError, &operationError)
				require.IsType(testInstance, execshell.CommandFailedError{}, operationError.Cause)
				return
			}

			if testCase.expectedError != nil {
				require.Error(testInstance, captureError)
				operationError := gfoldcli.OperationError{}
				require.ErrorAs(testInstance, captureError, &operationError)
				require.ErrorIs(testInstance, captureError, testCase.expectedError)
				return
			}

			require.NoError(testInstance, captureError)
			require.Equal(testInstance, testCase.repositoryPath, report.RepositoryPath)
			require.Equal(testInstance, testCase.expectedOutput, report.Output)
			require.Len(testInstance, testCase.executor.recordedDetails, 1)
			require.Equal(testInstance, []string{testCase.repositoryPath}, testCase.executor.recordedDetails[0].Arguments)
		})
	}
}
