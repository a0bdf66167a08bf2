// Package configstore adapts Git configuration into alias CRUD operations.
//
// A Store is bound to exactly one ConfigScope (system, global, local, worktree,
// or a named configuration file) and translates every operation into a git
// subprocess invocation through execshell. The git-specific exit-code mapping
// (exit 5 on --unset, exit 1 on --get) is folded into ErrAliasNotFound here so
// alternate backends only need to satisfy the same list/get/set/remove contract.
package configstore
