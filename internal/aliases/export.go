package aliases

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	exportCreateDirFailureTemplateConstant = "failed to create output directory %s: %w"
	logMessageAliasExportedConstant        = "exported alias"
	logFieldAliasNameConstant              = "alias_name"
	logFieldOutputPathConstant             = "output_path"
)

// ExportCommandBuilder assembles the export command.
type ExportCommandBuilder struct {
	LoggerProvider LoggerProvider
	StoreProvider  StoreProvider
}

// Build constructs the export command.
func (builder *ExportCommandBuilder) Build() *cobra.Command {
	command := &cobra.Command{
		Use:   exportCommandUseConstant,
		Short: exportCommandShortDescriptionConstant,
		Long:  exportCommandLongDescriptionConstant,
		Args:  cobra.ArbitraryArgs,
		RunE:  builder.run,
	}

	command.Flags().StringP(flagOutputDirNameConstant, flagOutputDirShorthandConstant, defaultExportOutputDirConstant, flagOutputDirDescriptionConstant)

	return command
}

func (builder *ExportCommandBuilder) run(command *cobra.Command, arguments []string) error {
	store, storeError := resolveStore(builder.StoreProvider)
	if storeError != nil {
		return storeError
	}

	logger := resolveLogger(builder.LoggerProvider)

	outputDirectoryValue, _ := command.Flags().GetString(flagOutputDirNameConstant)
	if directoryError := os.MkdirAll(outputDirectoryValue, outputDirectoryPermissionsConstant); directoryError != nil {
		return fmt.Errorf(exportCreateDirFailureTemplateConstant, outputDirectoryValue, directoryError)
	}

	aliasNames, listError := store.ListAliases(command.Context())
	if listError != nil {
		return listError
	}

	requestedNames := make(map[string]struct{}, len(arguments))
	for _, requestedName := range arguments {
		requestedNames[requestedName] = struct{}{}
	}

	for _, aliasName := range aliasNames {
		if len(requestedNames) > 0 {
			if _, requested := requestedNames[aliasName]; !requested {
				continue
			}
		}

		aliasValue, getError := store.GetAlias(command.Context(), aliasName)
		if getError != nil {
			return getError
		}

		outputPath := filepath.Join(outputDirectoryValue, AliasFileName(aliasName))
		writeError := os.WriteFile(outputPath, []byte(FormatAliasDefinition(aliasValue)), outputFilePermissionsConstant)
		if writeError != nil {
			return fmt.Errorf(writeOutputFailureTemplateConstant, outputPath, writeError)
		}

		logger.Debug(logMessageAliasExportedConstant,
			zap.String(logFieldAliasNameConstant, aliasName),
			zap.String(logFieldOutputPathConstant, outputPath),
		)
	}

	return nil
}
