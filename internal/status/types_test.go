package status_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/repotab/repotab/internal/status"
)

func TestRepositoryStatusSymbol(testInstance *testing.T) {
	testCases := []struct {
		name           string
		status         status.RepositoryStatus
		expectedSymbol string
	}{
		{
			name: "clean_and_synced",
			status: status.RepositoryStatus{
				Worktree: status.WorktreeStateClean,
				Upstream: status.UpstreamStateSynced,
			},
			expectedSymbol: "✓",
		},
		{
			name: "clean_with_unpushed_commits",
			status: status.RepositoryStatus{
				Worktree:      status.WorktreeStateClean,
				Upstream:      status.UpstreamStateAhead,
				UnpushedCount: 3,
			},
			expectedSymbol: "↑",
		},
		{
			name: "clean_without_upstream",
			status: status.RepositoryStatus{
				Worktree: status.WorktreeStateClean,
				Upstream: status.UpstreamStateUnknown,
			},
			expectedSymbol: "⚠",
		},
		{
			name: "dirty_worktree",
			status: status.RepositoryStatus{
				Worktree: status.WorktreeStateDirty,
				Upstream: status.UpstreamStateSynced,
			},
			expectedSymbol: "✗",
		},
		{
			name: "collection_error",
			status: status.RepositoryStatus{
				Worktree:     status.WorktreeStateClean,
				Upstream:     status.UpstreamStateSynced,
				ErrorMessage: "path does not exist",
			},
			expectedSymbol: "?",
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedSymbol, testCase.status.Symbol())
		})
	}
}

func TestRepositoryEntryDisplayName(testInstance *testing.T) {
	named := status.RepositoryEntry{Path: "/workspace/alpha", Name: "Alpha Service"}
	require.Equal(testInstance, "Alpha Service", named.DisplayName())

	unnamed := status.RepositoryEntry{Path: "/workspace/alpha"}
	require.Equal(testInstance, "alpha", unnamed.DisplayName())
}

func TestParseToolName(testInstance *testing.T) {
	testCases := []struct {
		name         string
		input        string
		expectedTool status.ToolName
		expectError  bool
	}{
		{name: "git", input: "git", expectedTool: status.ToolGit},
		{name: "gfold_mixed_case", input: " GFold ", expectedTool: status.ToolGfold},
		{name: "unsupported", input: "hg", expectError: true},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			tool, parseError := status.ParseToolName(testCase.input)
			if testCase.expectError {
				require.Error(testInstance, parseError)
				return
			}
			require.NoError(testInstance, parseError)
			require.Equal(testInstance, testCase.expectedTool, tool)
		})
	}
}

func TestParseReportFormat(testInstance *testing.T) {
	testCases := []struct {
		name           string
		input          string
		expectedFormat status.ReportFormat
		expectError    bool
	}{
		{name: "table", input: "table", expectedFormat: status.FormatTable},
		{name: "csv_mixed_case", input: " CSV ", expectedFormat: status.FormatCSV},
		{name: "unsupported", input: "json", expectError: true},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			format, parseError := status.ParseReportFormat(testCase.input)
			if testCase.expectError {
				require.Error(testInstance, parseError)
				return
			}
			require.NoError(testInstance, parseError)
			require.Equal(testInstance, testCase.expectedFormat, format)
		})
	}
}
