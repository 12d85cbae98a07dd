package export

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// SanitizeTitle lowercases a title and replaces every character outside
// [a-z0-9] with an underscore, producing a filesystem-safe name fragment.
func SanitizeTitle(s string, maxLen int) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsControl(r) {
			continue
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}

	cleaned := b.String()
	if maxLen > 0 {
		runes := []rune(cleaned)
		if len(runes) > maxLen {
			cleaned = string(runes[:maxLen])
		}
	}
	return cleaned
}

// Filename builds the download filename for an artifact:
// <sanitized-title>_<unix-ms>.<format>.
func Filename(title, format string, at time.Time) string {
	if format == "" {
		format = "mp4"
	}
	return fmt.Sprintf("%s_%d.%s", SanitizeTitle(title, 80), at.UnixMilli(), strings.ToLower(format))
}
