package aliases

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	stagingDirectoryPatternConstant        = "galias-staging-*"
	stagingCreationFailureTemplateConstant = "failed to create staging directory: %w"
	logMessageStagingCreatedConstant       = "created staging directory"
	logMessageStagingRemovedConstant       = "removed staging directory"
	logMessageStagingRemovalFailedConstant = "failed to remove staging directory"
	logFieldStagingDirectoryConstant       = "staging_directory"
	currentDirectoryConstant               = "."
)

// stagingWorkspace is the directory an add command resolves its alias source
// against. Directories created by the command are removed by cleanup on every
// exit path; caller-supplied directories are left untouched.
type stagingWorkspace struct {
	directory     string
	removeOnClose bool
	logger        *zap.Logger
}

// prepareWorkspace resolves the directory the alias source is read from:
// changeDirectory when given, a fresh temporary directory when a repository
// clone is requested, and the current directory otherwise.
func prepareWorkspace(changeDirectory string, cloneRequested bool, logger *zap.Logger) (*stagingWorkspace, error) {
	if len(changeDirectory) > 0 {
		return &stagingWorkspace{directory: changeDirectory, logger: logger}, nil
	}

	if !cloneRequested {
		return &stagingWorkspace{directory: currentDirectoryConstant, logger: logger}, nil
	}

	temporaryDirectory, creationError := os.MkdirTemp("", stagingDirectoryPatternConstant)
	if creationError != nil {
		return nil, fmt.Errorf(stagingCreationFailureTemplateConstant, creationError)
	}

	logger.Debug(logMessageStagingCreatedConstant, zap.String(logFieldStagingDirectoryConstant, temporaryDirectory))

	return &stagingWorkspace{directory: temporaryDirectory, removeOnClose: true, logger: logger}, nil
}

// SourcePath resolves an alias source argument against the workspace
// directory. Absolute paths are used as given.
func (workspace *stagingWorkspace) SourcePath(sourceArgument string) string {
	if filepath.IsAbs(sourceArgument) {
		return sourceArgument
	}

	return filepath.Join(workspace.directory, sourceArgument)
}

// Close removes the workspace directory when this command created it.
func (workspace *stagingWorkspace) Close() {
	if !workspace.removeOnClose {
		return
	}

	if removalError := os.RemoveAll(workspace.directory); removalError != nil {
		workspace.logger.Warn(logMessageStagingRemovalFailedConstant,
			zap.String(logFieldStagingDirectoryConstant, workspace.directory),
			zap.Error(removalError),
		)
		return
	}

	workspace.logger.Debug(logMessageStagingRemovedConstant, zap.String(logFieldStagingDirectoryConstant, workspace.directory))
}
