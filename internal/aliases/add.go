package aliases

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

type addOptions struct {
	RepositoryURL     string
	Reference         string
	ChangeDirectory   string
	AliasName         string
	RecurseSubmodules bool
}

// AddCommandBuilder assembles the add command.
type AddCommandBuilder struct {
	LoggerProvider LoggerProvider
	StoreProvider  StoreProvider
}

// Build constructs the add command.
func (builder *AddCommandBuilder) Build() *cobra.Command {
	command := &cobra.Command{
		Use:   addCommandUseConstant,
		Short: addCommandShortDescriptionConstant,
		Long:  addCommandLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}

	command.Flags().StringP(flagRepositoryNameConstant, flagRepositoryShorthandConstant, "", flagRepositoryDescriptionConstant)
	command.Flags().StringP(flagReferenceNameConstant, flagReferenceShorthandConstant, "", flagReferenceDescriptionConstant)
	command.Flags().StringP(flagChangeDirNameConstant, flagChangeDirShorthandConstant, "", flagChangeDirDescriptionConstant)
	command.Flags().StringP(flagAliasNameNameConstant, flagAliasNameShorthandConstant, "", flagAliasNameDescriptionConstant)
	command.Flags().Bool(flagRecurseNameConstant, false, flagRecurseDescriptionConstant)

	return command
}

func (builder *AddCommandBuilder) run(command *cobra.Command, arguments []string) error {
	options := builder.parseOptions(command)
	sourceArgument := arguments[0]

	store, storeError := resolveStore(builder.StoreProvider)
	if storeError != nil {
		return storeError
	}

	logger := resolveLogger(builder.LoggerProvider)
	cloneRequested := len(options.RepositoryURL) > 0

	workspace, workspaceError := prepareWorkspace(options.ChangeDirectory, cloneRequested, logger)
	if workspaceError != nil {
		return workspaceError
	}
	defer workspace.Close()

	if cloneRequested {
		cloneError := store.CloneRepository(command.Context(), options.RepositoryURL, workspace.directory, options.RecurseSubmodules, options.Reference)
		if cloneError != nil {
			return cloneError
		}
	}

	sourcePath := workspace.SourcePath(sourceArgument)
	sourceContent, readError := os.ReadFile(sourcePath)
	if readError != nil {
		return fmt.Errorf(readSourceFailureTemplateConstant, sourcePath, readError)
	}

	aliasName := options.AliasName
	if len(aliasName) == 0 {
		aliasName = DeriveAliasName(sourceArgument)
	}

	return store.SetAlias(command.Context(), aliasName, ParseAliasDefinition(string(sourceContent)))
}

func (builder *AddCommandBuilder) parseOptions(command *cobra.Command) addOptions {
	repositoryValue, _ := command.Flags().GetString(flagRepositoryNameConstant)
	referenceValue, _ := command.Flags().GetString(flagReferenceNameConstant)
	changeDirectoryValue, _ := command.Flags().GetString(flagChangeDirNameConstant)
	aliasNameValue, _ := command.Flags().GetString(flagAliasNameNameConstant)
	recurseValue, _ := command.Flags().GetBool(flagRecurseNameConstant)

	return addOptions{
		RepositoryURL:     strings.TrimSpace(repositoryValue),
		Reference:         strings.TrimSpace(referenceValue),
		ChangeDirectory:   strings.TrimSpace(changeDirectoryValue),
		AliasName:         strings.TrimSpace(aliasNameValue),
		RecurseSubmodules: recurseValue,
	}
}
