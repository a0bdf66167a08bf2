// Package aliases implements the subcommands that manage Git aliases: add,
// list, show, remove, and export. Each command operates through a
// configstore.Store bound to the configuration scope selected for the
// invocation.
package aliases
