package aliases

import (
	"path/filepath"
	"strings"
)

const (
	aliasFileExtensionConstant   = ".alias"
	aliasFileCommentPrefix       = "#"
	aliasDefinitionJoinSeparator = " "
	aliasFileTrailingNewline     = "\n"
)

// ParseAliasDefinition converts alias file content into the alias command
// text. Blank lines and lines starting with # are discarded; the remaining
// lines are trimmed and joined with single spaces.
func ParseAliasDefinition(fileContent string) string {
	definitionLines := make([]string, 0)
	for _, rawLine := range strings.Split(fileContent, "\n") {
		trimmedLine := strings.TrimSpace(rawLine)
		if len(trimmedLine) == 0 {
			continue
		}
		if strings.HasPrefix(trimmedLine, aliasFileCommentPrefix) {
			continue
		}
		definitionLines = append(definitionLines, trimmedLine)
	}

	return strings.Join(definitionLines, aliasDefinitionJoinSeparator)
}

// DeriveAliasName returns the alias name implied by a source path: the base
// file name with a trailing .alias suffix stripped.
func DeriveAliasName(sourcePath string) string {
	baseName := filepath.Base(sourcePath)
	return strings.TrimSuffix(baseName, aliasFileExtensionConstant)
}

// FormatAliasDefinition renders an alias value as alias file content: the
// value followed by a trailing newline.
func FormatAliasDefinition(aliasValue string) string {
	return aliasValue + aliasFileTrailingNewline
}

// AliasFileName returns the file name an exported alias is written under.
func AliasFileName(aliasName string) string {
	return aliasName + aliasFileExtensionConstant
}
