package execshell

// CommandEventObserver receives lifecycle notifications for every git
// invocation the alias store issues. The ui package implements it to surface
// human-readable progress alongside the structured log.
type CommandEventObserver interface {
	// CommandStarted fires before the git process is spawned.
	CommandStarted(command ShellCommand)
	// CommandCompleted fires once the process exits, regardless of exit code.
	CommandCompleted(command ShellCommand, result ExecutionResult)
	// CommandExecutionFailed fires when the process could not be started or observed.
	CommandExecutionFailed(command ShellCommand, failure error)
}

// discardingCommandEventObserver is the default observer; it drops every event
// so executors work without a registered listener.
type discardingCommandEventObserver struct{}

func (discardingCommandEventObserver) CommandStarted(ShellCommand) {}

func (discardingCommandEventObserver) CommandCompleted(ShellCommand, ExecutionResult) {}

func (discardingCommandEventObserver) CommandExecutionFailed(ShellCommand, error) {}
