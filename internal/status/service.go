package status

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/repotab/repotab/internal/gfoldcli"
	"github.com/repotab/repotab/internal/gitrepo"
)

const (
	missingDirectoryMessageConstant = "path does not exist"
	notRepositoryMessageConstant    = "not a git repository"
	probeFailureMessageConstant     = "unable to collect repository status"
	relayFailureTemplateConstant    = "%s: %v\n"
	relayHeaderTemplateConstant     = "%s (%s)\n"
)

// CommandOptions captures one invocation of the status command.
type CommandOptions struct {
	Tool    ToolName
	Format  ReportFormat
	Roots   []string
	Entries []RepositoryEntry
}

// Service coordinates repository status collection and rendering.
type Service struct {
	discoverer   RepositoryDiscoverer
	inspector    GitRepositoryInspector
	statusTool   StatusToolClient
	fileSystem   FileSystem
	outputWriter io.Writer
	errorWriter  io.Writer
}

// NewService constructs a Service using the provided dependencies.
func NewService(discoverer RepositoryDiscoverer, inspector GitRepositoryInspector, statusTool StatusToolClient, fileSystem FileSystem, outputWriter io.Writer, errorWriter io.Writer) *Service {
	return &Service{
		discoverer:   discoverer,
		inspector:    inspector,
		statusTool:   statusTool,
		fileSystem:   fileSystem,
		outputWriter: outputWriter,
		errorWriter:  errorWriter,
	}
}

// Run executes the service according to the provided options.
func (service *Service) Run(executionContext context.Context, options CommandOptions) error {
	entries, entriesError := service.assembleEntries(options)
	if entriesError != nil {
		return entriesError
	}

	if options.Tool == ToolGfold {
		return service.relayStatuses(executionContext, entries)
	}

	report := Report{}
	for _, entry := range entries {
		if contextError := executionContext.Err(); contextError != nil {
			return contextError
		}

		repositoryStatus, collectionError := service.collectStatus(executionContext, entry)
		if collectionError != nil {
			return collectionError
		}

		report = appendToGroup(report, repositoryStatus)
	}

	renderer, rendererError := rendererForFormat(options.Format)
	if rendererError != nil {
		return rendererError
	}
	return renderer.Render(service.outputWriter, report)
}

// assembleEntries merges configured entries with repositories discovered under the roots.
func (service *Service) assembleEntries(options CommandOptions) ([]RepositoryEntry, error) {
	entries := append([]RepositoryEntry{}, options.Entries...)
	knownPaths := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		knownPaths[entry.Path] = struct{}{}
	}

	if len(options.Roots) == 0 {
		return entries, nil
	}

	discovered, discoveryError := service.discoverer.DiscoverRepositories(options.Roots)
	if discoveryError != nil {
		return nil, discoveryError
	}

	for _, repositoryPath := range discovered {
		if _, exists := knownPaths[repositoryPath]; exists {
			continue
		}
		knownPaths[repositoryPath] = struct{}{}
		entries = append(entries, RepositoryEntry{Path: repositoryPath})
	}

	return entries, nil
}

func (service *Service) collectStatus(executionContext context.Context, entry RepositoryEntry) (RepositoryStatus, error) {
	repositoryStatus := RepositoryStatus{
		Entry:    entry,
		Worktree: WorktreeStateUnknown,
		Upstream: UpstreamStateUnknown,
	}

	fileInfo, statError := service.fileSystem.Stat(entry.Path)
	if statError != nil || !fileInfo.IsDir() {
		repositoryStatus.ErrorMessage = missingDirectoryMessageConstant
		return repositoryStatus, nil
	}

	insideWorkTree, workTreeError := service.inspector.IsWorkingTree(executionContext, entry.Path)
	if workTreeError != nil {
		return service.recordProbeFailure(repositoryStatus, workTreeError)
	}
	if !insideWorkTree {
		repositoryStatus.ErrorMessage = notRepositoryMessageConstant
		return repositoryStatus, nil
	}

	branchName, branchError := service.inspector.GetCurrentBranch(executionContext, entry.Path)
	if branchError != nil {
		return service.recordProbeFailure(repositoryStatus, branchError)
	}
	repositoryStatus.Branch = strings.TrimSpace(branchName)

	commitSubject, commitError := service.inspector.GetLastCommitSubject(executionContext, entry.Path)
	if commitError != nil {
		return service.recordProbeFailure(repositoryStatus, commitError)
	}
	repositoryStatus.LastCommitSubject = strings.TrimSpace(commitSubject)

	worktreeClean, cleanError := service.inspector.CheckCleanWorktree(executionContext, entry.Path)
	if cleanError != nil {
		return service.recordProbeFailure(repositoryStatus, cleanError)
	}
	if worktreeClean {
		repositoryStatus.Worktree = WorktreeStateClean
	} else {
		repositoryStatus.Worktree = WorktreeStateDirty
	}

	unpushedCount, unpushedError := service.inspector.CountUnpushedCommits(executionContext, entry.Path)
	switch {
	case errors.Is(unpushedError, gitrepo.ErrNoUpstream):
		repositoryStatus.Upstream = UpstreamStateUnknown
	case unpushedError != nil:
		return service.recordProbeFailure(repositoryStatus, unpushedError)
	case unpushedCount > 0:
		repositoryStatus.Upstream = UpstreamStateAhead
		repositoryStatus.UnpushedCount = unpushedCount
	default:
		repositoryStatus.Upstream = UpstreamStateSynced
	}

	return repositoryStatus, nil
}

// recordProbeFailure keeps per-repository failures inline unless the tool itself is unavailable.
func (service *Service) recordProbeFailure(repositoryStatus RepositoryStatus, probeError error) (RepositoryStatus, error) {
	if isToolUnavailable(probeError) {
		return RepositoryStatus{}, probeError
	}
	repositoryStatus.ErrorMessage = probeFailureMessageConstant
	return repositoryStatus, nil
}

func (service *Service) relayStatuses(executionContext context.Context, entries []RepositoryEntry) error {
	for _, entry := range entries {
		if contextError := executionContext.Err(); contextError != nil {
			return contextError
		}

		statusReport, captureError := service.statusTool.CaptureStatus(executionContext, entry.Path)
		if captureError != nil {
			if isToolUnavailable(captureError) {
				return captureError
			}
			fmt.Fprintf(service.errorWriter, relayFailureTemplateConstant, entry.DisplayName(), captureError)
			continue
		}

		fmt.Fprintf(service.outputWriter, relayHeaderTemplateConstant, entry.DisplayName(), entry.Path)
		fmt.Fprint(service.outputWriter, statusReport.Output)
		if !strings.HasSuffix(statusReport.Output, "\n") {
			fmt.Fprintln(service.outputWriter)
		}
	}
	return nil
}

func isToolUnavailable(candidateError error) bool {
	return errors.Is(candidateError, exec.ErrNotFound) || errors.Is(candidateError, gfoldcli.ErrToolNotInstalled)
}

func appendToGroup(report Report, repositoryStatus RepositoryStatus) Report {
	groupName := repositoryStatus.Entry.Group
	for index := range report.Groups {
		if report.Groups[index].Name == groupName {
			report.Groups[index].Statuses = append(report.Groups[index].Statuses, repositoryStatus)
			return report
		}
	}
	report.Groups = append(report.Groups, GroupReport{
		Name:     groupName,
		Statuses: []RepositoryStatus{repositoryStatus},
	})
	return report
}
