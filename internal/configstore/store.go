package configstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/galias/internal/execshell"
)

const (
	aliasNotFoundMessageConstant         = "not found"
	executorNotConfiguredMessageConstant = "git executor not configured"
	aliasNameRequiredMessageConstant     = "alias name must be provided"
	aliasNotFoundTemplateConstant        = "alias %s: %w"
	listAliasesFailureTemplateConstant   = "failed to enumerate aliases: %w"
	getAliasFailureTemplateConstant      = "failed to read alias %s: %w"
	setAliasFailureTemplateConstant      = "failed to store alias %s: %w"
	removeAliasFailureTemplateConstant   = "failed to remove alias %s: %w"
	cloneFailureTemplateConstant         = "failed to clone %s: %w"
	checkoutFailureTemplateConstant      = "failed to check out %s: %w"
	gitNoPagerFlagConstant               = "--no-pager"
	gitConfigSubcommandConstant          = "config"
	gitConfigListFlagConstant            = "--list"
	gitConfigNameOnlyFlagConstant        = "--name-only"
	gitConfigGetFlagConstant             = "--get"
	gitConfigUnsetFlagConstant           = "--unset"
	gitCloneSubcommandConstant           = "clone"
	gitRecurseSubmodulesFlagConstant     = "--recurse-submodules"
	gitCheckoutSubcommandConstant        = "checkout"
	aliasSectionNameConstant             = "alias"
	aliasKeyTemplateConstant             = aliasSectionNameConstant + configurationKeySeparatorConstant + "%s"
	configurationKeySeparatorConstant    = "."
	configurationKeySplitLimitConstant   = 2
	missingKeyGetExitCodeConstant        = 1
	missingKeyUnsetExitCodeConstant      = 5
)

// ErrAliasNotFound indicates the requested alias does not exist in the selected scope.
var ErrAliasNotFound = errors.New(aliasNotFoundMessageConstant)

// ErrExecutorNotConfigured indicates the Store was constructed without a git executor.
var ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)

// ErrAliasNameRequired indicates an operation received an empty alias name.
var ErrAliasNameRequired = errors.New(aliasNameRequiredMessageConstant)

// GitExecutor exposes the subset of shell execution used by the store.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Store performs alias operations against a single Git configuration scope.
type Store struct {
	executor GitExecutor
	scope    ConfigScope
}

// NewStore validates dependencies and binds a store to the provided scope.
func NewStore(executor GitExecutor, scope ConfigScope) (*Store, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &Store{executor: executor, scope: scope}, nil
}

// Scope reports the configuration scope the store is bound to.
func (store *Store) Scope() ConfigScope {
	return store.scope
}

// ListAliases enumerates alias names in the order the configuration store reports them.
// Every call re-invokes the external tool; results are never cached.
func (store *Store) ListAliases(executionContext context.Context) ([]string, error) {
	executionResult, executionError := store.executor.ExecuteGit(executionContext, store.configCommand(gitConfigListFlagConstant, gitConfigNameOnlyFlagConstant))
	if executionError != nil {
		return nil, fmt.Errorf(listAliasesFailureTemplateConstant, executionError)
	}

	aliasNames := []string{}
	for _, configurationLine := range strings.Split(executionResult.StandardOutput, "\n") {
		keyParts := strings.SplitN(strings.TrimSpace(configurationLine), configurationKeySeparatorConstant, configurationKeySplitLimitConstant)
		if len(keyParts) != configurationKeySplitLimitConstant {
			continue
		}
		if keyParts[0] != aliasSectionNameConstant {
			continue
		}
		aliasNames = append(aliasNames, keyParts[1])
	}

	return aliasNames, nil
}

// GetAlias returns the stored command text for the named alias with surrounding whitespace trimmed.
// A missing alias yields ErrAliasNotFound.
func (store *Store) GetAlias(executionContext context.Context, aliasName string) (string, error) {
	trimmedAliasName := strings.TrimSpace(aliasName)
	if len(trimmedAliasName) == 0 {
		return "", ErrAliasNameRequired
	}

	executionResult, executionError := store.executor.ExecuteGit(executionContext, store.configCommand(gitConfigGetFlagConstant, store.aliasKey(trimmedAliasName)))
	if executionError != nil {
		if exitCodeEquals(executionError, missingKeyGetExitCodeConstant) {
			return "", fmt.Errorf(aliasNotFoundTemplateConstant, trimmedAliasName, ErrAliasNotFound)
		}
		return "", fmt.Errorf(getAliasFailureTemplateConstant, trimmedAliasName, executionError)
	}

	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// SetAlias idempotently creates or overwrites the named alias with the provided command text.
// The value is stored verbatim; no validation is applied.
func (store *Store) SetAlias(executionContext context.Context, aliasName string, aliasValue string) error {
	trimmedAliasName := strings.TrimSpace(aliasName)
	if len(trimmedAliasName) == 0 {
		return ErrAliasNameRequired
	}

	_, executionError := store.executor.ExecuteGit(executionContext, store.configCommand(store.aliasKey(trimmedAliasName), aliasValue))
	if executionError != nil {
		return fmt.Errorf(setAliasFailureTemplateConstant, trimmedAliasName, executionError)
	}

	return nil
}

// RemoveAlias deletes the named alias. git config --unset reports exit code 5
// when the key does not exist; that condition surfaces as ErrAliasNotFound while
// every other failure propagates unmodified.
func (store *Store) RemoveAlias(executionContext context.Context, aliasName string) error {
	trimmedAliasName := strings.TrimSpace(aliasName)
	if len(trimmedAliasName) == 0 {
		return ErrAliasNameRequired
	}

	_, executionError := store.executor.ExecuteGit(executionContext, store.configCommand(gitConfigUnsetFlagConstant, store.aliasKey(trimmedAliasName)))
	if executionError != nil {
		if exitCodeEquals(executionError, missingKeyUnsetExitCodeConstant) {
			return fmt.Errorf(aliasNotFoundTemplateConstant, trimmedAliasName, ErrAliasNotFound)
		}
		return fmt.Errorf(removeAliasFailureTemplateConstant, trimmedAliasName, executionError)
	}

	return nil
}

// CloneRepository clones repositoryURL into clonePath, optionally recursing into
// submodules, and checks out reference afterwards when one is provided.
func (store *Store) CloneRepository(executionContext context.Context, repositoryURL string, clonePath string, recurseSubmodules bool, reference string) error {
	cloneArguments := []string{gitNoPagerFlagConstant, gitCloneSubcommandConstant}
	if recurseSubmodules {
		cloneArguments = append(cloneArguments, gitRecurseSubmodulesFlagConstant)
	}
	cloneArguments = append(cloneArguments, repositoryURL, clonePath)

	if _, executionError := store.executor.ExecuteGit(executionContext, execshell.CommandDetails{Arguments: cloneArguments}); executionError != nil {
		return fmt.Errorf(cloneFailureTemplateConstant, repositoryURL, executionError)
	}

	trimmedReference := strings.TrimSpace(reference)
	if len(trimmedReference) == 0 {
		return nil
	}

	checkoutDetails := execshell.CommandDetails{
		Arguments:        []string{gitNoPagerFlagConstant, gitCheckoutSubcommandConstant, trimmedReference},
		WorkingDirectory: clonePath,
	}
	if _, executionError := store.executor.ExecuteGit(executionContext, checkoutDetails); executionError != nil {
		return fmt.Errorf(checkoutFailureTemplateConstant, trimmedReference, executionError)
	}

	return nil
}

func (store *Store) configCommand(operationArguments ...string) execshell.CommandDetails {
	commandArguments := []string{gitNoPagerFlagConstant, gitConfigSubcommandConstant}
	commandArguments = append(commandArguments, store.scope.Arguments()...)
	commandArguments = append(commandArguments, operationArguments...)
	return execshell.CommandDetails{Arguments: commandArguments}
}

func (store *Store) aliasKey(aliasName string) string {
	return fmt.Sprintf(aliasKeyTemplateConstant, aliasName)
}

func exitCodeEquals(executionError error, expectedExitCode int) bool {
	commandFailure := execshell.CommandFailedError{}
	if !errors.As(executionError, &commandFailure) {
		return false
	}
	return commandFailure.Result.ExitCode == expectedExitCode
}
