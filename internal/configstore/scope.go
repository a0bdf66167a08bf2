package configstore

import (
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

const (
	systemScopeNameConstant       = "system"
	globalScopeNameConstant       = "global"
	localScopeNameConstant        = "local"
	worktreeScopeNameConstant     = "worktree"
	systemScopeFlagConstant       = "--system"
	globalScopeFlagConstant       = "--global"
	localScopeFlagConstant        = "--local"
	worktreeScopeFlagConstant     = "--worktree"
	namedFileScopeFlagConstant    = "--file"
	namedFileScopeLabelConstant   = "file"
	scopeDescriptionJoinSeparator = " "
)

// ConfigScope selects the Git configuration tier a Store reads and writes.
//
// The well-known scopes mirror git config's mutually exclusive location flags.
// Any other value is treated as a literal path to a configuration file.
type ConfigScope string

// Well-known configuration scopes.
const (
	ScopeSystem   ConfigScope = ConfigScope(systemScopeNameConstant)
	ScopeGlobal   ConfigScope = ConfigScope(globalScopeNameConstant)
	ScopeLocal    ConfigScope = ConfigScope(localScopeNameConstant)
	ScopeWorktree ConfigScope = ConfigScope(worktreeScopeNameConstant)
)

// FileScope builds a scope addressing the named configuration file.
func FileScope(configurationFilePath string) ConfigScope {
	return ConfigScope(configurationFilePath)
}

// ParseConfigScope resolves a textual scope value. Recognized scope names map to
// their well-known constants; anything else is interpreted as a file path.
func ParseConfigScope(scopeText string) ConfigScope {
	switch strings.ToLower(strings.TrimSpace(scopeText)) {
	case systemScopeNameConstant:
		return ScopeSystem
	case globalScopeNameConstant:
		return ScopeGlobal
	case localScopeNameConstant:
		return ScopeLocal
	case worktreeScopeNameConstant:
		return ScopeWorktree
	default:
		return FileScope(strings.TrimSpace(scopeText))
	}
}

// IsNamedFile reports whether the scope addresses an explicit configuration file.
func (scope ConfigScope) IsNamedFile() bool {
	switch scope {
	case ScopeSystem, ScopeGlobal, ScopeLocal, ScopeWorktree:
		return false
	default:
		return true
	}
}

// Arguments yields the git config location flags selecting this scope.
func (scope ConfigScope) Arguments() []string {
	switch scope {
	case ScopeSystem:
		return []string{systemScopeFlagConstant}
	case ScopeGlobal:
		return []string{globalScopeFlagConstant}
	case ScopeLocal:
		return []string{localScopeFlagConstant}
	case ScopeWorktree:
		return []string{worktreeScopeFlagConstant}
	default:
		return []string{namedFileScopeFlagConstant, string(scope)}
	}
}

// String describes the scope for logging.
func (scope ConfigScope) String() string {
	if scope.IsNamedFile() {
		return namedFileScopeLabelConstant + scopeDescriptionJoinSeparator + string(scope)
	}
	return string(scope)
}

// ScopeDecodeHook converts textual configuration values into ConfigScope instances
// when unmarshaling application configuration.
func ScopeDecodeHook() mapstructure.DecodeHookFunc {
	return func(sourceType reflect.Type, targetType reflect.Type, value any) (any, error) {
		if sourceType.Kind() != reflect.String {
			return value, nil
		}
		if targetType != reflect.TypeOf(ConfigScope("")) {
			return value, nil
		}
		scopeText, isText := value.(string)
		if !isText {
			return value, nil
		}
		return ParseConfigScope(scopeText), nil
	}
}
