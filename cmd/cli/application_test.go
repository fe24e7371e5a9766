package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/repotab/repotab/cmd/cli"
)

const (
	testConfigurationFileNameConstant = "config.yaml"
	testStatusCommandNameConstant     = "status"
	testConfigurationContentConstant  = "common:\n" +
		"  log_level: error\n" +
		"  log_format: structured\n" +
		"status:\n" +
		"  format: csv\n" +
		"  repositories:\n" +
		"    - path: /nonexistent/alpha\n" +
		"      name: alpha\n" +
		"  groups:\n" +
		"    - name: work\n" +
		"      repositories:\n" +
		"        - path: /nonexistent/beta\n"
	testExpectedCSVOutputConstant = "group,repository,path,branch,worktree,upstream,unpushed,last_commit,error\n" +
		",alpha,/nonexistent/alpha,,unknown,unknown,0,,path does not exist\n" +
		"work,beta,/nonexistent/beta,,unknown,unknown,0,,path does not exist\n"
)

func writeConfigurationFile(testInstance *testing.T, configurationPath string, content string) {
	testInstance.Helper()
	require.NoError(testInstance, os.WriteFile(configurationPath, []byte(content), 0o644))
}

func TestNewApplicationRegistersStatusCommand(testInstance *testing.T) {
	application := cli.NewApplication()

	commandNames := make([]string, 0)
	for _, command := range application.RootCommand().Commands() {
		commandNames = append(commandNames, command.Name())
	}

	require.Contains(testInstance, commandNames, testStatusCommandNameConstant)
}

func TestApplicationRunsStatusFromConfigurationFile(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	configurationPath := filepath.Join(temporaryDirectory, testConfigurationFileNameConstant)
	writeConfigurationFile(testInstance, configurationPath, testConfigurationContentConstant)

	application := cli.NewApplication()
	rootCommand := application.RootCommand()

	outputBuffer := &bytes.Buffer{}
	errorBuffer := &bytes.Buffer{}
	rootCommand.SetOut(outputBuffer)
	rootCommand.SetErr(errorBuffer)
	rootCommand.SetArgs([]string{"--config", configurationPath, testStatusCommandNameConstant})

	require.NoError(testInstance, application.Execute())
	require.Equal(testInstance, testExpectedCSVOutputConstant, outputBuffer.String())
}

func TestApplicationFlagOverridesConfiguredFormat(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	configurationPath := filepath.Join(temporaryDirectory, testConfigurationFileNameConstant)
	writeConfigurationFile(testInstance, configurationPath, testConfigurationContentConstant)

	application := cli.NewApplication()
	rootCommand := application.RootCommand()

	outputBuffer := &bytes.Buffer{}
	rootCommand.SetOut(outputBuffer)
	rootCommand.SetErr(&bytes.Buffer{})
	rootCommand.SetArgs([]string{"--config", configurationPath, testStatusCommandNameConstant, "--format", "table"})

	require.NoError(testInstance, application.Execute())
	require.NotContains(testInstance, outputBuffer.String(), "group,repository,path")
	require.Contains(testInstance, outputBuffer.String(), "alpha")
	require.Contains(testInstance, outputBuffer.String(), "path does not exist")
}

func TestApplicationRejectsUnsupportedLogLevel(testInstance *testing.T) {
	application := cli.NewApplication()
	rootCommand := application.RootCommand()

	rootCommand.SetOut(&bytes.Buffer{})
	rootCommand.SetErr(&bytes.Buffer{})
	rootCommand.SetArgs([]string{"--log-level", "verbose", testStatusCommandNameConstant})

	executionError := application.Execute()
	require.Error(testInstance, executionError)
	require.Contains(testInstance, executionError.Error(), "unsupported log level")
}
