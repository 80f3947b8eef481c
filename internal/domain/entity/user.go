// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// UserProfile is a family member's profile document.
type UserProfile struct {
	ID          string    `json:"id"`           // Identity-provider user ID, also the document key.
	FamilyCode  string    `json:"family_code"`  // Shared family key; empty when the user has not joined a family.
	DisplayName string    `json:"display_name"` // Optional name shown to other members.
	FCMTokens   []string  `json:"fcm_tokens"`   // Push registration tokens; may contain duplicates.
	UpdatedAt   time.Time `json:"updated_at"`   // Timestamp of the last modification.
}

// HasFamily reports whether the user belongs to a family group.
func (u *UserProfile) HasFamily() bool {
	return u != nil && u.FamilyCode != ""
}
