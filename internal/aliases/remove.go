package aliases

import (
	"github.com/spf13/cobra"
)

// RemoveCommandBuilder assembles the remove command.
type RemoveCommandBuilder struct {
	StoreProvider StoreProvider
}

// Build constructs the remove command.
func (builder *RemoveCommandBuilder) Build() *cobra.Command {
	return &cobra.Command{
		Use:     removeCommandUseConstant,
		Aliases: []string{removeCommandAliasConstant},
		Short:   removeCommandShortDescriptionConstant,
		Args:    cobra.ExactArgs(1),
		RunE:    builder.run,
	}
}

func (builder *RemoveCommandBuilder) run(command *cobra.Command, arguments []string) error {
	store, storeError := resolveStore(builder.StoreProvider)
	if storeError != nil {
		return storeError
	}

	return store.RemoveAlias(command.Context(), arguments[0])
}
