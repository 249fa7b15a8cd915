// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	"github.com/google/uuid"
)

// Profile represents an app member as seen by the notifier.
type Profile struct {
	ID       uuid.UUID `json:"id"`        // The user's unique identifier.
	Username string    `json:"username"`  // Display name shown in push copy.
	FCMToken *string   `json:"fcm_token"` // Device token for push delivery, nil when unregistered.
}

// Reachable reports whether the profile has a usable push token.
// An unreachable profile is skipped silently, never treated as an error.
func (p *Profile) Reachable() bool {
	return p != nil && p.FCMToken != nil && strings.TrimSpace(*p.FCMToken) != ""
}

// PushToken returns the device token or an empty string.
func (p *Profile) PushToken() string {
	if !p.Reachable() {
		return ""
	}

	return *p.FCMToken
}

// DisplayName returns the username, or fallback when the profile or name is missing.
func (p *Profile) DisplayName(fallback string) string {
	if p == nil || strings.TrimSpace(p.Username) == "" {
		return fallback
	}

	return p.Username
}
