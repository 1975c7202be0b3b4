// Package localefmt parses go-i18n style locale TOML files and rewrites them
// into a canonical one-line-per-entry form.
package localefmt

import (
	"regexp"
	"strings"

	"localenorm/internal/domain/entities"
)

// space stands for whitespace in blockPattern. Go's \s is ASCII only, so
// Unicode separators such as U+3000 are listed explicitly.
const space = `[\s\p{Z}\x{85}]`

// blockPattern matches a `[key]` header, an optional hash line and the
// `other = ...` value line. The triple-quoted alternative must come first or
// `"""text"""` would be captured as the empty string `""`.
var blockPattern = regexp.MustCompile(
	`\[([^\]]+)\]` + space + `*\n(?:hash` + space + `*=` + space + `*"[^"]*"` + space + `*\n)?` +
		`other` + space + `*=` + space + `*("""[\s\S]*?"""|"(?:[^"\\]|\\.)*")`,
)

// headerPattern detects whether a file is still in block form.
var headerPattern = regexp.MustCompile(`(?m)^[\t \p{Z}]*\[[^\]\n]+\][\t \p{Z}]*$`)

// flatPattern matches exactly what Format writes: the key verbatim, then
// ` = ` and a double-quoted literal ending the line.
var flatPattern = regexp.MustCompile(`(?m)^(.+?) = ("(?:[^"\\]|\\.)*")$`)

// Parse extracts every entry from content. Blocks that do not match are
// skipped. A later occurrence of a key overwrites an earlier one.
func Parse(content string) entities.Collection {
	entries := entities.NewCollection()

	pattern := blockPattern
	if !headerPattern.MatchString(content) {
		pattern = flatPattern
	}

	for _, m := range pattern.FindAllStringSubmatch(content, -1) {
		entries.Set(m[1], FoldValue(m[2]))
	}
	return entries
}

// FoldValue turns a triple-quoted multi-line literal into an escaped
// single-line double-quoted literal. Other literals are returned unchanged.
//
// Only one leading and one trailing newline are trimmed; the Python
// i18n-simplify script this replaces stripped all of them.
func FoldValue(value string) string {
	if len(value) < 6 || !strings.HasPrefix(value, `"""`) || !strings.HasSuffix(value, `"""`) {
		return value
	}

	inner := value[3 : len(value)-3]
	inner = strings.TrimPrefix(inner, "\n")
	inner = strings.TrimSuffix(inner, "\n")
	inner = strings.ReplaceAll(inner, "\n", `\n`)
	inner = strings.ReplaceAll(inner, `"`, `\"`)
	return `"` + inner + `"`
}
