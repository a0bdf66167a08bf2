package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	fallbackUnknownValueLabelConstant       = "unknown"
)

const (
	gitConfigSubcommandNameConstant       = "config"
	gitCloneSubcommandNameConstant        = "clone"
	gitCheckoutSubcommandNameConstant     = "checkout"
	gitConfigListFlagConstant             = "--list"
	gitConfigGetFlagConstant              = "--get"
	gitConfigUnsetFlagConstant            = "--unset"
	gitConfigSystemScopeFlagConstant      = "--system"
	gitConfigGlobalScopeFlagConstant      = "--global"
	gitConfigLocalScopeFlagConstant       = "--local"
	gitConfigWorktreeScopeFlagConstant    = "--worktree"
	gitConfigFileScopeFlagConstant        = "--file"
	gitNoPagerFlagConstant                = "--no-pager"
	gitRecurseSubmodulesFlagConstant      = "--recurse-submodules"
	aliasConfigurationKeyPrefixConstant   = "alias."
	systemScopeLabelConstant              = "system configuration"
	globalScopeLabelConstant              = "global configuration"
	localScopeLabelConstant               = "local configuration"
	worktreeScopeLabelConstant            = "worktree configuration"
	namedFileScopeLabelTemplateConstant   = "configuration file %s"
	defaultScopeLabelConstant             = "configuration"
	configurationValueArgumentCountOffset = 1
)

const (
	configListStartTemplateConstant             = "Enumerating aliases in %s"
	configListSuccessTemplateConstant           = "Enumerated aliases in %s"
	configListFailureTemplateConstant           = "Failed to enumerate aliases in %s (exit code %d%s)"
	configListExecutionFailureTemplateConstant  = "Unable to enumerate aliases in %s: %s"
	configGetStartTemplateConstant              = "Reading alias %s from %s"
	configGetSuccessTemplateConstant            = "Read alias %s from %s"
	configGetFailureTemplateConstant            = "Failed to read alias %s from %s (exit code %d%s)"
	configGetExecutionFailureTemplateConstant   = "Unable to read alias %s from %s: %s"
	configSetStartTemplateConstant              = "Storing alias %s in %s"
	configSetSuccessTemplateConstant            = "Stored alias %s in %s"
	configSetFailureTemplateConstant            = "Failed to store alias %s in %s (exit code %d%s)"
	configSetExecutionFailureTemplateConstant   = "Unable to store alias %s in %s: %s"
	configUnsetStartTemplateConstant            = "Removing alias %s from %s"
	configUnsetSuccessTemplateConstant          = "Removed alias %s from %s"
	configUnsetFailureTemplateConstant          = "Failed to remove alias %s from %s (exit code %d%s)"
	configUnsetExecutionFailureTemplateConstant = "Unable to remove alias %s from %s: %s"
	cloneStartTemplateConstant                  = "Cloning %s into %s"
	cloneSuccessTemplateConstant                = "Cloned %s into %s"
	cloneFailureTemplateConstant                = "Failed to clone %s into %s (exit code %d%s)"
	cloneExecutionFailureTemplateConstant       = "Unable to clone %s into %s: %s"
	checkoutStartTemplateConstant               = "Checking out %s in %s"
	checkoutSuccessTemplateConstant             = "Checked out %s in %s"
	checkoutFailureTemplateConstant             = "Failed to check out %s in %s (exit code %d%s)"
	checkoutExecutionFailureTemplateConstant    = "Unable to check out %s in %s: %s"
	defaultWorkingDirectoryLabelConstant        = "current directory"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if command.Name != CommandGit {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	subcommand, subcommandArguments := formatter.splitSubcommand(command.Details.Arguments)
	switch subcommand {
	case gitConfigSubcommandNameConstant:
		return formatter.describeConfigMessage(command, subcommandArguments, result, failure, stage)
	case gitCloneSubcommandNameConstant:
		return formatter.describeCloneMessage(command, subcommandArguments, result, failure, stage)
	case gitCheckoutSubcommandNameConstant:
		return formatter.describeCheckoutMessage(command, subcommandArguments, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeConfigMessage(command ShellCommand, arguments []string, result ExecutionResult, failure error, stage messageStage) string {
	scopeLabel := formatter.describeScope(arguments)
	operationFlag := formatter.configOperationFlag(arguments)

	if operationFlag == gitConfigListFlagConstant {
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(configListStartTemplateConstant, scopeLabel)
		case messageStageSuccess:
			return fmt.Sprintf(configListSuccessTemplateConstant, scopeLabel)
		case messageStageFailure:
			return fmt.Sprintf(configListFailureTemplateConstant, scopeLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(configListExecutionFailureTemplateConstant, scopeLabel, formatter.describeFailure(failure))
		}
	}

	aliasName := formatter.extractAliasName(arguments)

	if operationFlag == gitConfigGetFlagConstant {
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(configGetStartTemplateConstant, aliasName, scopeLabel)
		case messageStageSuccess:
			return fmt.Sprintf(configGetSuccessTemplateConstant, aliasName, scopeLabel)
		case messageStageFailure:
			return fmt.Sprintf(configGetFailureTemplateConstant, aliasName, scopeLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(configGetExecutionFailureTemplateConstant, aliasName, scopeLabel, formatter.describeFailure(failure))
		}
	}

	if operationFlag == gitConfigUnsetFlagConstant {
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(configUnsetStartTemplateConstant, aliasName, scopeLabel)
		case messageStageSuccess:
			return fmt.Sprintf(configUnsetSuccessTemplateConstant, aliasName, scopeLabel)
		case messageStageFailure:
			return fmt.Sprintf(configUnsetFailureTemplateConstant, aliasName, scopeLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(configUnsetExecutionFailureTemplateConstant, aliasName, scopeLabel, formatter.describeFailure(failure))
		}
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(configSetStartTemplateConstant, aliasName, scopeLabel)
	case messageStageSuccess:
		return fmt.Sprintf(configSetSuccessTemplateConstant, aliasName, scopeLabel)
	case messageStageFailure:
		return fmt.Sprintf(configSetFailureTemplateConstant, aliasName, scopeLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(configSetExecutionFailureTemplateConstant, aliasName, scopeLabel, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeCloneMessage(command ShellCommand, arguments []string, result ExecutionResult, failure error, stage messageStage) string {
	repositoryURL, clonePath := formatter.extractCloneOperands(arguments)

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(cloneStartTemplateConstant, repositoryURL, clonePath)
	case messageStageSuccess:
		return fmt.Sprintf(cloneSuccessTemplateConstant, repositoryURL, clonePath)
	case messageStageFailure:
		return fmt.Sprintf(cloneFailureTemplateConstant, repositoryURL, clonePath, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(cloneExecutionFailureTemplateConstant, repositoryURL, clonePath, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeCheckoutMessage(command ShellCommand, arguments []string, result ExecutionResult, failure error, stage messageStage) string {
	reference := formatter.ensureValue(formatter.firstNonFlagArgument(arguments))
	workingDirectory := formatter.describeWorkingDirectory(command)

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(checkoutStartTemplateConstant, reference, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(checkoutSuccessTemplateConstant, reference, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(checkoutFailureTemplateConstant, reference, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(checkoutExecutionFailureTemplateConstant, reference, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

// splitSubcommand separates the first non-flag argument from the arguments preceding and following it.
func (formatter CommandMessageFormatter) splitSubcommand(arguments []string) (string, []string) {
	for argumentIndex, argument := range arguments {
		trimmedArgument := strings.TrimSpace(argument)
		if len(trimmedArgument) == 0 {
			continue
		}
		if strings.HasPrefix(trimmedArgument, "-") {
			continue
		}
		return trimmedArgument, arguments[argumentIndex+1:]
	}
	return emptyStringConstant, nil
}

func (formatter CommandMessageFormatter) describeScope(arguments []string) string {
	for argumentIndex, argument := range arguments {
		switch strings.TrimSpace(argument) {
		case gitConfigSystemScopeFlagConstant:
			return systemScopeLabelConstant
		case gitConfigGlobalScopeFlagConstant:
			return globalScopeLabelConstant
		case gitConfigLocalScopeFlagConstant:
			return localScopeLabelConstant
		case gitConfigWorktreeScopeFlagConstant:
			return worktreeScopeLabelConstant
		case gitConfigFileScopeFlagConstant:
			if argumentIndex+configurationValueArgumentCountOffset < len(arguments) {
				return fmt.Sprintf(namedFileScopeLabelTemplateConstant, arguments[argumentIndex+configurationValueArgumentCountOffset])
			}
		}
	}
	return defaultScopeLabelConstant
}

func (formatter CommandMessageFormatter) extractAliasName(arguments []string) string {
	for _, argument := range arguments {
		trimmedArgument := strings.TrimSpace(argument)
		if strings.HasPrefix(trimmedArgument, aliasConfigurationKeyPrefixConstant) {
			return strings.TrimPrefix(trimmedArgument, aliasConfigurationKeyPrefixConstant)
		}
	}
	return fallbackUnknownValueLabelConstant
}

func (formatter CommandMessageFormatter) extractCloneOperands(arguments []string) (string, string) {
	operands := make([]string, 0, 2)
	for _, argument := range arguments {
		trimmedArgument := strings.TrimSpace(argument)
		if len(trimmedArgument) == 0 {
			continue
		}
		if strings.HasPrefix(trimmedArgument, "-") {
			continue
		}
		operands = append(operands, trimmedArgument)
	}

	repositoryURL := fallbackUnknownValueLabelConstant
	clonePath := fallbackUnknownValueLabelConstant
	if len(operands) > 0 {
		repositoryURL = operands[0]
	}
	if len(operands) > 1 {
		clonePath = operands[1]
	}
	return repositoryURL, clonePath
}

func (formatter CommandMessageFormatter) firstNonFlagArgument(arguments []string) string {
	for _, argument := range arguments {
		trimmedArgument := strings.TrimSpace(argument)
		if len(trimmedArgument) == 0 {
			continue
		}
		if strings.HasPrefix(trimmedArgument, "-") {
			continue
		}
		return trimmedArgument
	}
	return emptyStringConstant
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandLabel := string(command.Name)
	if len(command.Details.Arguments) > 0 {
		commandLabel = fmt.Sprintf("%s %s", commandLabel, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}
	workingDirectorySuffix := formatter.formatWorkingDirectorySuffix(command)
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, workingDirectorySuffix)
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeWorkingDirectory(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return defaultWorkingDirectoryLabelConstant
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) ensureValue(value string) string {
	trimmedValue := strings.TrimSpace(value)
	if len(trimmedValue) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return trimmedValue
}

// configOperationFlag returns the operation flag (--list, --get, --unset)
// preceding the first non-flag operand of a config invocation. Scope flags and
// the --file path operand are skipped; the alias key and the stored value are
// never inspected, so values containing literal flag text cannot change the
// reported operation.
func (formatter CommandMessageFormatter) configOperationFlag(arguments []string) string {
	argumentIndex := 0
	for argumentIndex < len(arguments) {
		trimmedArgument := strings.TrimSpace(arguments[argumentIndex])
		switch trimmedArgument {
		case gitConfigSystemScopeFlagConstant,
			gitConfigGlobalScopeFlagConstant,
			gitConfigLocalScopeFlagConstant,
			gitConfigWorktreeScopeFlagConstant:
			argumentIndex++
			continue
		case gitConfigFileScopeFlagConstant:
			argumentIndex += 2
			continue
		}

		if strings.HasPrefix(trimmedArgument, "-") {
			return trimmedArgument
		}
		return emptyStringConstant
	}
	return emptyStringConstant
}
