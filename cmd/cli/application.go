package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/galias/internal/aliases"
	"github.com/temirov/galias/internal/configstore"
	"github.com/temirov/galias/internal/execshell"
	"github.com/temirov/galias/internal/ui"
	"github.com/temirov/galias/internal/utils"
)

const (
	applicationNameConstant             = "galias"
	applicationShortDescriptionConstant = "Manage Git aliases across configuration scopes"
	applicationLongDescriptionConstant  = "galias lists, shows, adds, removes, and exports Git aliases stored in the " +
		"system, global, local, or worktree configuration, or in an arbitrary configuration file."

	configFileFlagNameConstant   = "config"
	configFileFlagUsageConstant  = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant     = "log-level"
	logLevelFlagUsageConstant    = "Override the configured log level."
	logFormatFlagNameConstant    = "log-format"
	logFormatFlagUsageConstant   = "Override the configured log format (structured or console)."
	verboseFlagNameConstant      = "verbose"
	verboseFlagShorthandConstant = "v"
	verboseFlagUsageConstant     = "Raise verbosity; repeat for debug-level tracing of every git invocation."

	systemScopeFlagNameConstant        = "system"
	systemScopeFlagShorthandConstant   = "s"
	systemScopeFlagUsageConstant       = "Operate on the system configuration."
	globalScopeFlagNameConstant        = "global"
	globalScopeFlagShorthandConstant   = "g"
	globalScopeFlagUsageConstant       = "Operate on the global configuration (default)."
	localScopeFlagNameConstant         = "local"
	localScopeFlagShorthandConstant    = "l"
	localScopeFlagUsageConstant        = "Operate on the repository-local configuration."
	worktreeScopeFlagNameConstant      = "worktree"
	worktreeScopeFlagShorthandConstant = "w"
	worktreeScopeFlagUsageConstant     = "Operate on the worktree configuration."
	fileScopeFlagNameConstant          = "file"
	fileScopeFlagShorthandConstant     = "f"
	fileScopeFlagUsageConstant         = "Operate on the named configuration file."

	commonConfigurationKeyConstant   = "common"
	commonLogLevelConfigKeyConstant  = commonConfigurationKeyConstant + ".log_level"
	commonLogFormatConfigKeyConstant = commonConfigurationKeyConstant + ".log_format"
	commonScopeConfigKeyConstant     = commonConfigurationKeyConstant + ".scope"
	environmentPrefixConstant        = "GALIAS"
	configurationNameConstant        = "config"
	configurationTypeConstant        = "yaml"

	configurationLoadErrorTemplateConstant = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant    = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant        = "unable to flush logger: %w"

	configurationInitializedMessageConstant = "configuration initialized"
	configurationLogLevelFieldConstant      = "log_level"
	configurationScopeFieldConstant         = "scope"
	configurationFileFieldConstant          = "config_file"

	defaultConfigurationSearchPathConstant = "."
)

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common ApplicationCommonConfiguration `mapstructure:"common"`
}

// ApplicationCommonConfiguration stores logging and scope settings shared across commands.
type ApplicationCommonConfiguration struct {
	LogLevel  string                  `mapstructure:"log_level"`
	LogFormat string                  `mapstructure:"log_format"`
	Scope     configstore.ConfigScope `mapstructure:"scope"`
}

// Application wires the Cobra root command, configuration loader, and structured logger.
type Application struct {
	rootCommand           *cobra.Command
	configurationLoader   *utils.ConfigurationLoader
	loggerFactory         *utils.LoggerFactory
	logger                *zap.Logger
	configuration         ApplicationConfiguration
	configurationMetadata utils.LoadedConfiguration
	configurationFilePath string
	logLevelFlagValue     string
	logFormatFlagValue    string
	verbosityCount        int
	systemScopeSelected   bool
	globalScopeSelected   bool
	localScopeSelected    bool
	worktreeScopeSelected bool
	scopeFilePath         string
	selectedScope         configstore.ConfigScope
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() *Application {
	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		[]string{defaultConfigurationSearchPathConstant},
	)
	configurationLoader.RegisterDecodeHook(configstore.ScopeDecodeHook())

	application := &Application{
		configurationLoader: configurationLoader,
		loggerFactory:       utils.NewLoggerFactory(),
		logger:              zap.NewNop(),
		selectedScope:       configstore.ScopeGlobal,
	}

	cobraCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
	}

	cobraCommand.SetContext(context.Background())
	cobraCommand.PersistentFlags().StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logLevelFlagValue, logLevelFlagNameConstant, "", logLevelFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logFormatFlagValue, logFormatFlagNameConstant, "", logFormatFlagUsageConstant)
	cobraCommand.PersistentFlags().CountVarP(&application.verbosityCount, verboseFlagNameConstant, verboseFlagShorthandConstant, verboseFlagUsageConstant)

	cobraCommand.PersistentFlags().BoolVarP(&application.systemScopeSelected, systemScopeFlagNameConstant, systemScopeFlagShorthandConstant, false, systemScopeFlagUsageConstant)
	cobraCommand.PersistentFlags().BoolVarP(&application.globalScopeSelected, globalScopeFlagNameConstant, globalScopeFlagShorthandConstant, false, globalScopeFlagUsageConstant)
	cobraCommand.PersistentFlags().BoolVarP(&application.localScopeSelected, localScopeFlagNameConstant, localScopeFlagShorthandConstant, false, localScopeFlagUsageConstant)
	cobraCommand.PersistentFlags().BoolVarP(&application.worktreeScopeSelected, worktreeScopeFlagNameConstant, worktreeScopeFlagShorthandConstant, false, worktreeScopeFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVarP(&application.scopeFilePath, fileScopeFlagNameConstant, fileScopeFlagShorthandConstant, "", fileScopeFlagUsageConstant)
	cobraCommand.MarkFlagsMutuallyExclusive(
		systemScopeFlagNameConstant,
		globalScopeFlagNameConstant,
		localScopeFlagNameConstant,
		worktreeScopeFlagNameConstant,
		fileScopeFlagNameConstant,
	)

	loggerProvider := func() *zap.Logger {
		return application.logger
	}
	storeProvider := func() (*configstore.Store, error) {
		return application.buildStore()
	}

	addBuilder := aliases.AddCommandBuilder{LoggerProvider: loggerProvider, StoreProvider: storeProvider}
	listBuilder := aliases.ListCommandBuilder{StoreProvider: storeProvider}
	showBuilder := aliases.ShowCommandBuilder{StoreProvider: storeProvider}
	removeBuilder := aliases.RemoveCommandBuilder{StoreProvider: storeProvider}
	exportBuilder := aliases.ExportCommandBuilder{LoggerProvider: loggerProvider, StoreProvider: storeProvider}

	cobraCommand.AddCommand(
		addBuilder.Build(),
		listBuilder.Build(),
		showBuilder.Build(),
		removeBuilder.Build(),
		exportBuilder.Build(),
	)

	application.rootCommand = cobraCommand

	return application
}

// Execute runs the configured Cobra command hierarchy and ensures logger flushing.
func (application *Application) Execute() error {
	executionError := application.rootCommand.Execute()
	if syncError := application.flushLogger(); syncError != nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Execute builds a fresh application instance and executes the root command hierarchy.
func Execute() error {
	return NewApplication().Execute()
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:  string(utils.LogLevelWarn),
		commonLogFormatConfigKeyConstant: string(utils.LogFormatStructured),
		commonScopeConfigKeyConstant:     string(configstore.ScopeGlobal),
	}

	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	application.configurationMetadata = loadedConfiguration
	application.selectedScope = application.resolveScope()

	if creationError := application.createLogger(command); creationError != nil {
		return creationError
	}

	application.logger.Debug(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationScopeFieldConstant, application.selectedScope.String()),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)

	return nil
}

// resolveScope picks the configuration scope for this invocation: an explicit
// scope flag wins, otherwise the configured scope applies, with global as the
// final fallback. The scope flags are mutually exclusive, so at most one is set.
func (application *Application) resolveScope() configstore.ConfigScope {
	switch {
	case application.systemScopeSelected:
		return configstore.ScopeSystem
	case application.globalScopeSelected:
		return configstore.ScopeGlobal
	case application.localScopeSelected:
		return configstore.ScopeLocal
	case application.worktreeScopeSelected:
		return configstore.ScopeWorktree
	}

	if trimmedFilePath := strings.TrimSpace(application.scopeFilePath); len(trimmedFilePath) > 0 {
		return configstore.FileScope(trimmedFilePath)
	}

	if len(application.configuration.Common.Scope) > 0 {
		return application.configuration.Common.Scope
	}

	return configstore.ScopeGlobal
}

// createLogger resolves the effective log level: --log-level wins, then
// repeated -v flags, then the configured value.
func (application *Application) createLogger(command *cobra.Command) error {
	effectiveLogLevel := utils.LogLevel(application.configuration.Common.LogLevel)
	if application.verbosityCount > 0 {
		effectiveLogLevel = utils.VerbosityLogLevel(application.verbosityCount)
	}
	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		effectiveLogLevel = utils.LogLevel(application.logLevelFlagValue)
	}

	effectiveLogFormat := utils.LogFormat(application.configuration.Common.LogFormat)
	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		effectiveLogFormat = utils.LogFormat(application.logFormatFlagValue)
	}

	createdLogger, creationError := application.loggerFactory.CreateLogger(effectiveLogLevel, effectiveLogFormat)
	if creationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, creationError)
	}

	application.logger = createdLogger
	return nil
}

func (application *Application) buildStore() (*configstore.Store, error) {
	commandRunner := execshell.NewOSCommandRunner()
	shellExecutor, creationError := execshell.NewShellExecutor(application.logger, commandRunner)
	if creationError != nil {
		return nil, creationError
	}
	shellExecutor.SetEventObserver(ui.NewConsoleCommandEventLogger(application.logger))

	return configstore.NewStore(shellExecutor, application.selectedScope)
}

func (application *Application) flushLogger() error {
	if application.logger == nil {
		return nil
	}

	syncError := application.logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	default:
		return syncError
	}
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}

	rootCommand := command.Root()
	if rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet == nil {
			continue
		}

		if flagSet.Changed(flagName) {
			return true
		}
	}

	return false
}
