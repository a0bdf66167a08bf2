package aliases

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/temirov/galias/internal/configstore"
)

const (
	addCommandUseConstant    = "add <alias-source>"
	listCommandUseConstant   = "list"
	showCommandUseConstant   = "show <alias>"
	removeCommandUseConstant = "remove <alias>"
	exportCommandUseConstant = "export [<alias>...]"

	listCommandAliasConstant   = "ls"
	showCommandAliasConstant   = "cat"
	removeCommandAliasConstant = "rm"

	addCommandShortDescriptionConstant    = "Install an alias from an alias file"
	listCommandShortDescriptionConstant   = "List alias names in the selected configuration scope"
	showCommandShortDescriptionConstant   = "Print the command text stored for an alias"
	removeCommandShortDescriptionConstant = "Delete an alias from the selected configuration scope"
	exportCommandShortDescriptionConstant = "Write each alias to its own alias file"

	addCommandLongDescriptionConstant = "add reads an alias file, strips blank and comment lines, joins the " +
		"remaining lines with spaces, and stores the result as an alias. The file is read from --changedir " +
		"when given, from a freshly cloned copy of --repository, or from the current directory."
	exportCommandLongDescriptionConstant = "export writes one <name>.alias file per alias into the output " +
		"directory. When alias names are given as arguments, only those aliases are exported."

	flagRepositoryNameConstant         = "repository"
	flagRepositoryShorthandConstant    = "R"
	flagRepositoryDescriptionConstant  = "Repository URL to clone before reading the alias source"
	flagReferenceNameConstant          = "ref"
	flagReferenceShorthandConstant     = "r"
	flagReferenceDescriptionConstant   = "Reference to check out after cloning"
	flagChangeDirNameConstant          = "changedir"
	flagChangeDirShorthandConstant     = "C"
	flagChangeDirDescriptionConstant   = "Directory to resolve the alias source against (kept after the command finishes)"
	flagAliasNameNameConstant          = "name"
	flagAliasNameShorthandConstant     = "n"
	flagAliasNameDescriptionConstant   = "Alias name to install under (defaults to the source file name without its .alias suffix)"
	flagRecurseNameConstant            = "recurse-submodules"
	flagRecurseDescriptionConstant     = "Clone submodules along with the repository"
	flagOutputFileNameConstant         = "output-file"
	flagOutputFileShorthandConstant    = "o"
	flagOutputFileDescriptionConstant  = "File to write the alias value to instead of standard output"
	flagOutputDirNameConstant          = "output-dir"
	flagOutputDirShorthandConstant     = "o"
	flagOutputDirDescriptionConstant   = "Directory to write alias files into"
	defaultExportOutputDirConstant     = "."
	storeUnavailableTemplateConstant   = "configuration store unavailable: %w"
	readSourceFailureTemplateConstant  = "failed to read alias source %s: %w"
	writeOutputFailureTemplateConstant = "failed to write %s: %w"
	outputFilePermissionsConstant      = 0o644
	outputDirectoryPermissionsConstant = 0o755
)

var errStoreProviderNotConfigured = errors.New("store provider not configured")

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// StoreProvider yields a configuration store bound to the scope selected for
// the current invocation.
type StoreProvider func() (*configstore.Store, error)

func resolveLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}

	logger := provider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}

func resolveStore(provider StoreProvider) (*configstore.Store, error) {
	if provider == nil {
		return nil, errStoreProviderNotConfigured
	}

	store, storeError := provider()
	if storeError != nil {
		return nil, fmt.Errorf(storeUnavailableTemplateConstant, storeError)
	}

	return store, nil
}
