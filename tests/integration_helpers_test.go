package tests

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

const (
	integrationBinaryNameConstant                    = "galias-integration"
	integrationGitExecutableConstant                 = "git"
	integrationGitUnavailableMessageConstant         = "git executable not available on PATH"
	integrationCommandTimeout                        = 30 * time.Second
	integrationSubtestNameTemplateConstant           = "%d_%s"
	integrationEnvironmentAssignmentTemplateConstant = "%s=%s"
)

func requireGitAvailable(testInstance *testing.T) {
	testInstance.Helper()
	if _, lookupError := exec.LookPath(integrationGitExecutableConstant); lookupError != nil {
		testInstance.Skip(integrationGitUnavailableMessageConstant)
	}
}

func buildIntegrationBinary(testInstance *testing.T, repositoryRootDirectory string) string {
	testInstance.Helper()

	binaryPath := filepath.Join(testInstance.TempDir(), integrationBinaryNameConstant)
	command := exec.Command("go", "build", "-o", binaryPath, ".")
	command.Dir = repositoryRootDirectory

	outputBytes, buildError := command.CombinedOutput()
	if buildError != nil {
		testInstance.Fatalf("failed to build integration binary: %v\n%s", buildError, string(outputBytes))
	}

	return binaryPath
}

func runBinaryIntegrationCommand(
	testInstance *testing.T,
	binaryPath string,
	workingDirectory string,
	environmentOverrides map[string]string,
	timeout time.Duration,
	arguments []string,
) (string, error) {
	testInstance.Helper()

	executionContext, cancelFunction := context.WithTimeout(context.Background(), timeout)
	defer cancelFunction()

	command := exec.CommandContext(executionContext, binaryPath, arguments...)
	command.Dir = workingDirectory

	environment := append([]string{}, os.Environ()...)
	for environmentKey, environmentValue := range environmentOverrides {
		environment = append(environment, fmt.Sprintf(integrationEnvironmentAssignmentTemplateConstant, environmentKey, environmentValue))
	}
	command.Env = environment

	outputBytes, runError := command.CombinedOutput()
	return string(outputBytes), runError
}
