// Package cli assembles the galias root command: global scope and logging
// flags, configuration loading, and the alias subcommands.
package cli
