package aliases

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListCommandBuilder assembles the list command.
type ListCommandBuilder struct {
	StoreProvider StoreProvider
}

// Build constructs the list command.
func (builder *ListCommandBuilder) Build() *cobra.Command {
	return &cobra.Command{
		Use:     listCommandUseConstant,
		Aliases: []string{listCommandAliasConstant},
		Short:   listCommandShortDescriptionConstant,
		Args:    cobra.NoArgs,
		RunE:    builder.run,
	}
}

func (builder *ListCommandBuilder) run(command *cobra.Command, _ []string) error {
	store, storeError := resolveStore(builder.StoreProvider)
	if storeError != nil {
		return storeError
	}

	aliasNames, listError := store.ListAliases(command.Context())
	if listError != nil {
		return listError
	}

	for _, aliasName := range aliasNames {
		fmt.Fprintln(command.OutOrStdout(), aliasName)
	}

	return nil
}
