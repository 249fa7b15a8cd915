package util

import (
	"fmt"
	"time"
)

const maskedTokenPrefix = 10

// MaskToken keeps the first characters of a device token for log correlation.
func MaskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= maskedTokenPrefix {
		return token[:min(len(token), 4)] + "..."
	}

	return token[:maskedTokenPrefix] + "..."
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
