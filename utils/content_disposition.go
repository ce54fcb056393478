// Package utils holds small helpers shared by the HTTP layer.
package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// ContentDisposition builds an attachment header value that survives
// non-ASCII filenames. Older clients read the plain filename parameter,
// which falls back to an ASCII-safe form; modern clients prefer the
// RFC 5987 filename* parameter carrying the percent-encoded original.
func ContentDisposition(filename string) string {
	ascii := asciiFallback(filename)
	encoded := url.PathEscape(filename)
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, ascii, encoded)
}

func asciiFallback(filename string) string {
	var b strings.Builder
	for _, r := range filename {
		switch {
		case r == '"' || r == '\\':
			b.WriteByte('_')
		case r >= 0x20 && r < 0x7f:
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}
