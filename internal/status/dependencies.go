package status

import (
	"context"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/repotab/repotab/internal/discovery"
	"github.com/repotab/repotab/internal/execshell"
	"github.com/repotab/repotab/internal/gfoldcli"
	"github.com/repotab/repotab/internal/gitrepo"
)

// RepositoryDiscoverer finds git repositories rooted under the provided paths.
type RepositoryDiscoverer interface {
	DiscoverRepositories(roots []string) ([]string, error)
}

// GitRepositoryInspector exposes the repository-level git probes used by the status command.
type GitRepositoryInspector interface {
	IsWorkingTree(executionContext context.Context, repositoryPath string) (bool, error)
	GetCurrentBranch(executionContext context.Context, repositoryPath string) (string, error)
	GetLastCommitSubject(executionContext context.Context, repositoryPath string) (string, error)
	CheckCleanWorktree(executionContext context.Context, repositoryPath string) (bool, error)
	CountUnpushedCommits(executionContext context.Context, repositoryPath string) (int, error)
}

// StatusToolClient relays repository status collection to an external status tool.
type StatusToolClient interface {
	CaptureStatus(executionContext context.Context, repositoryPath string) (gfoldcli.StatusReport, error)
}

// FileSystem provides the filesystem operations required by the status workflows.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
}

// OSFileSystem implements FileSystem using the operating system.
type OSFileSystem struct{}

// Stat proxies to os.Stat.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ResolveRepositoryDiscoverer returns the provided discoverer or a filesystem-backed default.
func ResolveRepositoryDiscoverer(existing RepositoryDiscoverer) RepositoryDiscoverer {
	if existing != nil {
		return existing
	}
	return discovery.NewFilesystemRepositoryDiscoverer()
}

// ResolveFileSystem returns the provided filesystem or an OS-backed default.
func ResolveFileSystem(existing FileSystem) FileSystem {
	if existing != nil {
		return existing
	}
	return OSFileSystem{}
}

// ResolveShellExecutor returns the provided executor or constructs a shell-backed default.
func ResolveShellExecutor(existing *execshell.ShellExecutor, logger *zap.Logger, eventObserver execshell.CommandEventObserver) (*execshell.ShellExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	commandRunner := execshell.NewOSCommandRunner()
	if eventObserver != nil {
		return execshell.NewShellExecutorWithObserver(logger, commandRunner, eventObserver)
	}
	return execshell.NewShellExecutor(logger, commandRunner)
}

// ResolveGitInspector returns the provided inspector or constructs one from the executor.
func ResolveGitInspector(existing GitRepositoryInspector, executor gitrepo.GitExecutor) (GitRepositoryInspector, error) {
	if existing != nil {
		return existing, nil
	}
	return gitrepo.NewRepositoryManager(executor)
}

// ResolveStatusToolClient returns the provided client or constructs a gfold-backed default.
func ResolveStatusToolClient(existing StatusToolClient, executor gfoldcli.GfoldExecutor) (StatusToolClient, error) {
	if existing != nil {
		return existing, nil
	}
	return gfoldcli.NewClient(executor)
}
