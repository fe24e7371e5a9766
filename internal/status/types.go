package status

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	toolGitStringConstant      = "git"
	toolGfoldStringConstant    = "gfold"
	formatTableStringConstant  = "table"
	formatCSVStringConstant    = "csv"
	unsupportedToolTemplate    = "unsupported status tool: %s"
	unsupportedFormatTemplate  = "unsupported report format: %s"
	cleanSymbolConstant        = "✓"
	unpushedSymbolConstant     = "↑"
	unknownSyncSymbolConstant  = "⚠"
	dirtySymbolConstant        = "✗"
	errorSymbolConstant        = "?"
	emptyColumnPlaceholderText = "-"
)

// ToolName selects the external collaborator used to collect repository status.
type ToolName string

// Supported status tools.
const (
	ToolGit   ToolName = ToolName(toolGitStringConstant)
	ToolGfold ToolName = ToolName(toolGfoldStringConstant)
)

// ParseToolName validates a textual tool selection.
func ParseToolName(raw string) (ToolName, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	switch ToolName(normalized) {
	case ToolGit:
		return ToolGit, nil
	case ToolGfold:
		return ToolGfold, nil
	default:
		return "", fmt.Errorf(unsupportedToolTemplate, raw)
	}
}

// ReportFormat selects how collected statuses are rendered.
type ReportFormat string

// Supported report formats.
const (
	FormatTable ReportFormat = ReportFormat(formatTableStringConstant)
	FormatCSV   ReportFormat = ReportFormat(formatCSVStringConstant)
)

// ParseReportFormat validates a textual format selection.
func ParseReportFormat(raw string) (ReportFormat, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	switch ReportFormat(normalized) {
	case FormatTable:
		return FormatTable, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf(unsupportedFormatTemplate, raw)
	}
}

// WorktreeState describes the cleanliness of a repository working tree.
type WorktreeState string

// Supported worktree states.
const (
	WorktreeStateClean   WorktreeState = "clean"
	WorktreeStateDirty   WorktreeState = "dirty"
	WorktreeStateUnknown WorktreeState = "unknown"
)

// UpstreamState describes how the current branch relates to its upstream.
type UpstreamState string

// Supported upstream states.
const (
	UpstreamStateSynced  UpstreamState = "synced"
	UpstreamStateAhead   UpstreamState = "ahead"
	UpstreamStateUnknown UpstreamState = "unknown"
)

// RepositoryEntry identifies one configured repository.
type RepositoryEntry struct {
	Path  string
	Name  string
	Group string
}

// DisplayName returns the configured name, falling back to the path's base.
func (entry RepositoryEntry) DisplayName() string {
	if len(strings.TrimSpace(entry.Name)) > 0 {
		return entry.Name
	}
	return filepath.Base(entry.Path)
}

// RepositoryStatus captures everything collected for one repository entry.
type RepositoryStatus struct {
	Entry             RepositoryEntry
	Branch            string
	LastCommitSubject string
	Worktree          WorktreeState
	Upstream          UpstreamState
	UnpushedCount     int
	ErrorMessage      string
}

// Symbol renders the single-character status indicator for the entry.
func (repositoryStatus RepositoryStatus) Symbol() string {
	if len(repositoryStatus.ErrorMessage) > 0 {
		return errorSymbolConstant
	}
	if repositoryStatus.Worktree != WorktreeStateClean {
		return dirtySymbolConstant
	}
	switch repositoryStatus.Upstream {
	case UpstreamStateSynced:
		return cleanSymbolConstant
	case UpstreamStateAhead:
		return unpushedSymbolConstant
	default:
		return unknownSyncSymbolConstant
	}
}

// CSVRecord returns the status formatted for CSV encoding.
func (repositoryStatus RepositoryStatus) CSVRecord() []string {
	errorColumn := repositoryStatus.ErrorMessage
	if len(errorColumn) == 0 {
		errorColumn = emptyColumnPlaceholderText
	}
	return []string{
		repositoryStatus.Entry.Group,
		repositoryStatus.Entry.DisplayName(),
		repositoryStatus.Entry.Path,
		repositoryStatus.Branch,
		string(repositoryStatus.Worktree),
		string(repositoryStatus.Upstream),
		strconv.Itoa(repositoryStatus.UnpushedCount),
		repositoryStatus.LastCommitSubject,
		errorColumn,
	}
}

// GroupReport carries the collected statuses of one configured group, in order.
type GroupReport struct {
	Name     string
	Statuses []RepositoryStatus
}

// Report is an ordered sequence of group reports.
type Report struct {
	Groups []GroupReport
}

// TotalEntries counts the statuses across all groups.
func (report Report) TotalEntries() int {
	totalEntries := 0
	for _, group := range report.Groups {
		totalEntries += len(group.Statuses)
	}
	return totalEntries
}
