package execshell_test

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/galias/internal/execshell"
)

const (
	testGitExecutableNameConstant         = "git"
	testGitUnavailableSkipMessageConstant = "git executable not available"
	testMissingExecutableNameConstant     = "galias-missing-executable"
	testRunnerConfigFileNameConstant      = "config"
	testRunnerVersionFlagConstant         = "--version"
	testRunnerNoPagerFlagConstant         = "--no-pager"
	testRunnerConfigSubcommandConstant    = "config"
	testRunnerFileFlagConstant            = "--file"
	testRunnerGetFlagConstant             = "--get"
	testRunnerMissingAliasKeyConstant     = "alias.missing"
)

func requireGitExecutable(testInstance *testing.T) {
	testInstance.Helper()
	_, lookupError := exec.LookPath(testGitExecutableNameConstant)
	if lookupError != nil {
		testInstance.Skip(testGitUnavailableSkipMessageConstant)
	}
}

func TestOSCommandRunnerCapturesSuccessfulInvocation(testInstance *testing.T) {
	requireGitExecutable(testInstance)

	commandRunner := execshell.NewOSCommandRunner()
	executionResult, runError := commandRunner.Run(context.Background(), execshell.ShellCommand{
		Name:    execshell.CommandName(testGitExecutableNameConstant),
		Details: execshell.CommandDetails{Arguments: []string{testRunnerVersionFlagConstant}},
	})

	require.NoError(testInstance, runError)
	require.Equal(testInstance, 0, executionResult.ExitCode)
	require.NotEmpty(testInstance, executionResult.StandardOutput)
}

func TestOSCommandRunnerReportsNonZeroExitWithoutError(testInstance *testing.T) {
	requireGitExecutable(testInstance)

	configurationFilePath := filepath.Join(testInstance.TempDir(), testRunnerConfigFileNameConstant)
	commandRunner := execshell.NewOSCommandRunner()
	executionResult, runError := commandRunner.Run(context.Background(), execshell.ShellCommand{
		Name: execshell.CommandName(testGitExecutableNameConstant),
		Details: execshell.CommandDetails{
			Arguments: []string{
				testRunnerNoPagerFlagConstant,
				testRunnerConfigSubcommandConstant,
				testRunnerFileFlagConstant,
				configurationFilePath,
				testRunnerGetFlagConstant,
				testRunnerMissingAliasKeyConstant,
			},
		},
	})

	require.NoError(testInstance, runError)
	require.NotEqual(testInstance, 0, executionResult.ExitCode)
}

func TestOSCommandRunnerHonorsWorkingDirectory(testInstance *testing.T) {
	requireGitExecutable(testInstance)

	workingDirectory := testInstance.TempDir()
	commandRunner := execshell.NewOSCommandRunner()
	executionResult, runError := commandRunner.Run(context.Background(), execshell.ShellCommand{
		Name: execshell.CommandName(testGitExecutableNameConstant),
		Details: execshell.CommandDetails{
			Arguments:        []string{testRunnerVersionFlagConstant},
			WorkingDirectory: workingDirectory,
		},
	})

	require.NoError(testInstance, runError)
	require.Equal(testInstance, 0, executionResult.ExitCode)
}

func TestOSCommandRunnerSurfacesSpawnFailure(testInstance *testing.T) {
	commandRunner := execshell.NewOSCommandRunner()
	_, runError := commandRunner.Run(context.Background(), execshell.ShellCommand{
		Name:    execshell.CommandName(testMissingExecutableNameConstant),
		Details: execshell.CommandDetails{},
	})

	require.Error(testInstance, runError)
}
