package aliases

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// ShowCommandBuilder assembles the show command.
type ShowCommandBuilder struct {
	StoreProvider StoreProvider
}

// Build constructs the show command.
func (builder *ShowCommandBuilder) Build() *cobra.Command {
	command := &cobra.Command{
		Use:     showCommandUseConstant,
		Aliases: []string{showCommandAliasConstant},
		Short:   showCommandShortDescriptionConstant,
		Args:    cobra.ExactArgs(1),
		RunE:    builder.run,
	}

	command.Flags().StringP(flagOutputFileNameConstant, flagOutputFileShorthandConstant, "", flagOutputFileDescriptionConstant)

	return command
}

func (builder *ShowCommandBuilder) run(command *cobra.Command, arguments []string) error {
	store, storeError := resolveStore(builder.StoreProvider)
	if storeError != nil {
		return storeError
	}

	aliasValue, getError := store.GetAlias(command.Context(), arguments[0])
	if getError != nil {
		return getError
	}

	outputFileValue, _ := command.Flags().GetString(flagOutputFileNameConstant)
	outputFilePath := strings.TrimSpace(outputFileValue)
	if len(outputFilePath) == 0 {
		fmt.Fprintln(command.OutOrStdout(), aliasValue)
		return nil
	}

	writeError := os.WriteFile(outputFilePath, []byte(FormatAliasDefinition(aliasValue)), outputFilePermissionsConstant)
	if writeError != nil {
		return fmt.Errorf(writeOutputFailureTemplateConstant, outputFilePath, writeError)
	}

	return nil
}
