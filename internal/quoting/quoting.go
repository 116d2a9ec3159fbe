// Package quoting provides shared identifier quoting and validation utilities.
package quoting

import "strings"

// MaxIdentifierLength is the longest identifier accepted by ValidIdentifier.
// It matches PostgreSQL's NAMEDATALEN-1, the tightest of the supported engines.
const MaxIdentifierLength = 63

// DoubleQuote quotes a SQL identifier using double quotes (PostgreSQL, SQLite, ANSI SQL).
// Internal double quotes are escaped by doubling them.
func DoubleQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Backtick quotes a SQL identifier using backticks (MySQL).
// Internal backticks are escaped by doubling them.
func Backtick(s string) string {
	return "`" + strings.ReplaceAll(s, "`", "``") + "`"
}

// EscapeString escapes a string literal for SQL by doubling single quotes
// and escaping backslashes (for MySQL compatibility).
//
// SECURITY: This escaping is intended for non-parameterized mode only.
// Executed statements always use bind parameters for values.
func EscapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "'", "''")
}

// ValidIdentifier reports whether s is a plain unquoted SQL identifier:
// a letter or underscore followed by letters, digits or underscores, at
// most MaxIdentifierLength bytes long. Table, column and function names
// must pass this check before they are rendered.
func ValidIdentifier(s string) bool {
	if s == "" || len(s) > MaxIdentifierLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
