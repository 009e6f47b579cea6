package model

import (
	"strings"
	"time"
)

// NormalizeActivityDate ensures an activity date carries a time component.
// Date-only input ("2025-06-01") gains a midnight time ("2025-06-01T00:00:00");
// anything already containing a "T" is passed through unchanged.
func NormalizeActivityDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.Contains(s, "T") {
		return s
	}
	return s + "T00:00:00"
}

// FormatCreatedAt renders a backend timestamp as "02.01.2006" for list rows.
// The backend does not promise a timezone suffix, so parsing is best-effort;
// unparseable values render as a dash.
func FormatCreatedAt(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "—"
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02.01.2006")
		}
	}
	return "—"
}
