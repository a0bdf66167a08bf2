package tests

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	lifecycleConfigFileNameConstant      = "gitconfig"
	lifecycleAliasFileContentConstant    = "# shortcut for status\n\nstatus --short\n"
	lifecycleExpectedAliasValueConstant  = "status --short"
	lifecycleAliasSourceNameConstant     = "st.alias"
	lifecycleAliasNameConstant           = "st"
	lifecycleSecondAliasNameConstant     = "graph"
	lifecycleSecondAliasValueConstant    = "log --oneline --graph"
	lifecycleMissingAliasNameConstant    = "nonexistent"
	lifecycleFileScopeFlagConstant       = "--file"
	lifecycleExportedFileSuffixConstant  = ".alias"
	lifecycleExportOutputDirNameConstant = "exported"
)

func TestAliasLifecycleAgainstConfigurationFile(testInstance *testing.T) {
	requireGitAvailable(testInstance)

	currentWorkingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)
	repositoryRootDirectory := filepath.Dir(currentWorkingDirectory)

	binaryPath := buildIntegrationBinary(testInstance, repositoryRootDirectory)

	workingDirectory := testInstance.TempDir()
	configurationFilePath := filepath.Join(workingDirectory, lifecycleConfigFileNameConstant)

	sourcePath := filepath.Join(workingDirectory, lifecycleAliasSourceNameConstant)
	require.NoError(testInstance, os.WriteFile(sourcePath, []byte(lifecycleAliasFileContentConstant), 0o644))

	runCommand := func(arguments ...string) (string, error) {
		fullArguments := append([]string{lifecycleFileScopeFlagConstant, configurationFilePath}, arguments...)
		return runBinaryIntegrationCommand(
			testInstance,
			binaryPath,
			workingDirectory,
			map[string]string{},
			integrationCommandTimeout,
			fullArguments,
		)
	}

	addOutput, addError := runCommand("add", lifecycleAliasSourceNameConstant)
	require.NoError(testInstance, addError, addOutput)

	listOutput, listError := runCommand("list")
	require.NoError(testInstance, listError, listOutput)
	require.Equal(testInstance, lifecycleAliasNameConstant+"\n", listOutput)

	showOutput, showError := runCommand("show", lifecycleAliasNameConstant)
	require.NoError(testInstance, showError, showOutput)
	require.Equal(testInstance, lifecycleExpectedAliasValueConstant+"\n", showOutput)

	removeOutput, removeError := runCommand("remove", lifecycleAliasNameConstant)
	require.NoError(testInstance, removeError, removeOutput)

	emptyListOutput, emptyListError := runCommand("ls")
	require.NoError(testInstance, emptyListError, emptyListOutput)
	require.Empty(testInstance, emptyListOutput)
}

func TestRemoveMissingAliasReportsCleanError(testInstance *testing.T) {
	requireGitAvailable(testInstance)

	currentWorkingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)
	repositoryRootDirectory := filepath.Dir(currentWorkingDirectory)

	binaryPath := buildIntegrationBinary(testInstance, repositoryRootDirectory)

	workingDirectory := testInstance.TempDir()
	configurationFilePath := filepath.Join(workingDirectory, lifecycleConfigFileNameConstant)
	require.NoError(testInstance, os.WriteFile(configurationFilePath, []byte{}, 0o644))

	removeOutput, removeError := runBinaryIntegrationCommand(
		testInstance,
		binaryPath,
		workingDirectory,
		map[string]string{},
		integrationCommandTimeout,
		[]string{lifecycleFileScopeFlagConstant, configurationFilePath, "rm", lifecycleMissingAliasNameConstant},
	)
	require.Error(testInstance, removeError)
	require.Contains(testInstance, removeOutput, lifecycleMissingAliasNameConstant)
	require.NotContains(testInstance, removeOutput, "exit status")
}

func TestExportWritesFilteredAliasFiles(testInstance *testing.T) {
	requireGitAvailable(testInstance)

	currentWorkingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)
	repositoryRootDirectory := filepath.Dir(currentWorkingDirectory)

	binaryPath := buildIntegrationBinary(testInstance, repositoryRootDirectory)

	workingDirectory := testInstance.TempDir()
	configurationFilePath := filepath.Join(workingDirectory, lifecycleConfigFileNameConstant)

	firstSourcePath := filepath.Join(workingDirectory, lifecycleAliasSourceNameConstant)
	require.NoError(testInstance, os.WriteFile(firstSourcePath, []byte(lifecycleAliasFileContentConstant), 0o644))
	secondSourcePath := filepath.Join(workingDirectory, lifecycleSecondAliasNameConstant)
	require.NoError(testInstance, os.WriteFile(secondSourcePath, []byte(lifecycleSecondAliasValueConstant+"\n"), 0o644))

	runCommand := func(arguments ...string) (string, error) {
		fullArguments := append([]string{lifecycleFileScopeFlagConstant, configurationFilePath}, arguments...)
		return runBinaryIntegrationCommand(
			testInstance,
			binaryPath,
			workingDirectory,
			map[string]string{},
			integrationCommandTimeout,
			fullArguments,
		)
	}

	firstAddOutput, firstAddError := runCommand("add", lifecycleAliasSourceNameConstant)
	require.NoError(testInstance, firstAddError, firstAddOutput)
	secondAddOutput, secondAddError := runCommand("add", lifecycleSecondAliasNameConstant)
	require.NoError(testInstance, secondAddError, secondAddOutput)

	exportDirectory := filepath.Join(workingDirectory, lifecycleExportOutputDirNameConstant)
	exportOutput, exportError := runCommand("export", "--output-dir", exportDirectory, lifecycleSecondAliasNameConstant)
	require.NoError(testInstance, exportError, exportOutput)

	exportedContent, readError := os.ReadFile(filepath.Join(exportDirectory, lifecycleSecondAliasNameConstant+lifecycleExportedFileSuffixConstant))
	require.NoError(testInstance, readError)
	require.Equal(testInstance, fmt.Sprintf("%s\n", lifecycleSecondAliasValueConstant), string(exportedContent))

	_, statError := os.Stat(filepath.Join(exportDirectory, lifecycleAliasNameConstant+lifecycleExportedFileSuffixConstant))
	require.True(testInstance, os.IsNotExist(statError))
}
