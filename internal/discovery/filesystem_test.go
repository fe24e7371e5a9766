package discovery_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/repotab/repotab/internal/discovery"
)

const (
	testGitDirectoryNameConstant       = ".git"
	testFirstRepositoryNameConstant    = "alpha"
	testSecondRepositoryNameConstant   = "beta"
	testPlainDirectoryNameConstant     = "notes"
	testNestedCheckoutDirectoryName    = "vendor-checkout"
	testDirectoryPermissionsConstant   = 0o755
	testMissingRootSuffixConstant      = "does-not-exist"
	testDuplicateRootsCaseNameConstant = "duplicate_roots"
	testSingleRootCaseNameConstant     = "single_root"
)

func createRepository(testInstance *testing.T, parentDirectory string, repositoryName string) string {
	testInstance.Helper()

	repositoryPath := filepath.Join(parentDirectory, repositoryName)
	require.NoError(testInstance, os.MkdirAll(filepath.Join(repositoryPath, testGitDirectoryNameConstant), testDirectoryPermissionsConstant))
	return repositoryPath
}

func TestFilesystemRepositoryDiscovererFindsRepositories(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()

	firstRepository := createRepository(testInstance, temporaryDirectory, testFirstRepositoryNameConstant)
	secondRepository := createRepository(testInstance, temporaryDirectory, testSecondRepositoryNameConstant)
	require.NoError(testInstance, os.MkdirAll(filepath.Join(temporaryDirectory, testPlainDirectoryNameConstant), testDirectoryPermissionsConstant))

	nestedRepository := createRepository(testInstance, firstRepository, testNestedCheckoutDirectoryName)

	testCases := []struct {
		name  string
		roots []string
	}{
		{
			name:  testSingleRootCaseNameConstant,
			roots: []string{temporaryDirectory},
		},
		{
			name:  testDuplicateRootsCaseNameConstant,
			roots: []string{temporaryDirectory, temporaryDirectory},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			discoverer := discovery.NewFilesystemRepositoryDiscoverer()

			repositories, discoveryError := discoverer.DiscoverRepositories(testCase.roots)
			require.NoError(testInstance, discoveryError)
			require.Equal(testInstance, []string{firstRepository, nestedRepository, secondRepository}, repositories)
		})
	}
}

func TestFilesystemRepositoryDiscovererToleratesMissingRoots(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	repositoryPath := createRepository(testInstance, temporaryDirectory, testFirstRepositoryNameConstant)
	missingRoot := filepath.Join(temporaryDirectory, testMissingRootSuffixConstant)

	discoverer := discovery.NewFilesystemRepositoryDiscoverer()

	repositories, discoveryError := discoverer.DiscoverRepositories([]string{missingRoot, temporaryDirectory})
	require.NoError(testInstance, discoveryError)
	require.Equal(testInstance, []string{repositoryPath}, repositories)
}
