package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/repotab/repotab/internal/execshell"
)

const (
	gitRevParseSubcommandConstant        = "rev-parse"
	gitIsInsideWorkTreeFlagConstant      = "--is-inside-work-tree"
	gitAbbrevRefFlagConstant             = "--abbrev-ref"
	gitHeadReferenceConstant             = "HEAD"
	gitLogSubcommandConstant             = "log"
	gitLogLimitFlagConstant              = "-1"
	gitLogSubjectFormatFlagConstant      = "--pretty=%s"
	gitStatusSubcommandConstant          = "status"
	gitStatusPorcelainFlagConstant       = "--porcelain"
	gitRevListSubcommandConstant         = "rev-list"
	gitUpstreamRangeConstant             = "@{u}..HEAD"
	gitCountFlagConstant                 = "--count"
	gitTrueOutputConstant                = "true"
	executorNotConfiguredMessageConstant = "git executor not configured"
	noUpstreamMessageConstant            = "no upstream configured"
	unpushedCountParseTemplateConstant   = "unexpected rev-list output: %s"
)

// GitExecutor exposes the subset of shell execution required by the repository manager.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Sentinel errors returned by RepositoryManager operations.
var (
	ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)
	// ErrNoUpstream indicates the current branch has no upstream to compare against.
	ErrNoUpstream = errors.New(noUpstreamMessageConstant)
)

// UnexpectedOutputError reports git output that could not be interpreted.
type UnexpectedOutputError struct {
	Output string
}

// Error describes the unparseable output.
func (outputError UnexpectedOutputError) Error() string {
	return fmt.Sprintf(unpushedCountParseTemplateConstant, outputError.Output)
}

// RepositoryManager interrogates local git repositories through an executor.
type RepositoryManager struct {
	executor GitExecutor
}

// NewRepositoryManager constructs a RepositoryManager with the provided executor.
func NewRepositoryManager(executor GitExecutor) (*RepositoryManager, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &RepositoryManager{executor: executor}, nil
}

// IsWorkingTree reports whether the path sits inside a git working tree.
// Paths outside any repository yield false rather than an error.
func (manager *RepositoryManager) IsWorkingTree(executionContext context.Context, repositoryPath string) (bool, error) {
	executionResult, executionError := manager.runGit(executionContext, repositoryPath, gitRevParseSubcommandConstant, gitIsInsideWorkTreeFlagConstant)
	if executionError != nil {
		if isExitFailure(executionError) {
			return false, nil
		}
		return false, executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput) == gitTrueOutputConstant, nil
}

// GetCurrentBranch resolves the abbreviated name of the checked-out branch.
func (manager *RepositoryManager) GetCurrentBranch(executionContext context.Context, repositoryPath string) (string, error) {
	executionResult, executionError := manager.runGit(executionContext, repositoryPath, gitRevParseSubcommandConstant, gitAbbrevRefFlagConstant, gitHeadReferenceConstant)
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// GetLastCommitSubject returns the subject line of the most recent commit.
func (manager *RepositoryManager) GetLastCommitSubject(executionContext context.Context, repositoryPath string) (string, error) {
	executionResult, executionError := manager.runGit(executionContext, repositoryPath, gitLogSubcommandConstant, gitLogLimitFlagConstant, gitLogSubjectFormatFlagConstant)
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// CheckCleanWorktree reports whether the working tree has no uncommitted changes.
func (manager *RepositoryManager) CheckCleanWorktree(executionContext context.Context, repositoryPath string) (bool, error) {
	executionResult, executionError := manager.runGit(executionContext, repositoryPath, gitStatusSubcommandConstant, gitStatusPorcelainFlagConstant)
	if executionError != nil {
		return false, executionError
	}
	return len(strings.TrimSpace(executionResult.StandardOutput)) == 0, nil
}

// CountUnpushedCommits counts commits on the current branch missing from its upstream.
// ErrNoUpstream is returned when the branch has no upstream configured.
func (manager *RepositoryManager) CountUnpushedCommits(executionContext context.Context, repositoryPath string) (int, error) {
	executionResult, executionError := manager.runGit(executionContext, repositoryPath, gitRevListSubcommandConstant, gitUpstreamRangeConstant, gitCountFlagConstant)
	if executionError != nil {
		if isExitFailure(executionError) {
			return 0, ErrNoUpstream
		}
		return 0, executionError
	}

	trimmedOutput := strings.TrimSpace(executionResult.StandardOutput)
	unpushedCount, parseError := strconv.Atoi(trimmedOutput)
	if parseError != nil {
		return 0, UnexpectedOutputError{Output: trimmedOutput}
	}
	return unpushedCount, nil
}

func (manager *RepositoryManager) runGit(executionContext context.Context, repositoryPath string, arguments ...string) (execshell.ExecutionResult, error) {
	commandDetails := execshell.CommandDetails{
		Arguments:        arguments,
		WorkingDirectory: repositoryPath,
	}
	return manager.executor.ExecuteGit(executionContext, commandDetails)
}

func isExitFailure(candidate error) bool {
	failedError := execshell.CommandFailedError{}
	return errors.As(candidate, &failedError)
}
