// Package execshell provides structured helpers for invoking the external git tool.
//
// It wraps os/exec with zap-backed lifecycle logging via ShellExecutor, exposes
// OSCommandRunner for default process execution, and defines the abstractions
// galias uses to run git configuration and clone commands in a testable manner.
package execshell
