package validators

import (
	"strings"
	"time"
)

// NormalizeTimeOfDay aceita "HH:MM" ou "HH:MM:SS" e devolve sempre "HH:MM".
func NormalizeTimeOfDay(v string) (string, bool) {
	v = strings.TrimSpace(v)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("15:04"), true
		}
	}
	return "", false
}
