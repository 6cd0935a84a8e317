package partition

import (
	"fmt"
	"path/filepath"
	"strings"
)

// GlobPattern returns a filepath.Glob pattern matching every partition of
// the sequence name belongs to. Only the wildcard in the marker is active;
// glob metacharacters elsewhere in name are escaped.
func GlobPattern(name string) (string, error) {
	m, ok := find(name, true)
	if !ok {
		return "", fmt.Errorf("%w: no marker in %q", ErrInvalidFormat, name)
	}
	return escapeGlob(name[:m.curStart]) + WildcardGlyph + escapeGlob(name[m.curEnd:]), nil
}

func escapeGlob(s string) string {
	if !strings.ContainsAny(s, `*?[\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		switch r {
		case '*', '?', '[':
			b.WriteByte('[')
			b.WriteRune(r)
			b.WriteByte(']')
		case '\\':
			// Backslash is the separator on Windows and must stay as is.
			if filepath.Separator == '\\' {
				b.WriteRune(r)
			} else {
				b.WriteString(`\\`)
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
