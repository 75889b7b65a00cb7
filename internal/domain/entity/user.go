// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is a marketplace account. Every listing is owned by exactly one user.
type User struct {
	ID              int64     // Sequential identifier, also the session token subject.
	Name            string    // Display name mirrored into the userName cookie.
	Age             *int      // Optional, self-reported.
	Email           string    // Unique login identifier.
	PasswordHash    string    // bcrypt hash of pepper+password. Never serialized.
	ProfilePhotoKey string    // Blob key of the profile photo, empty when none was uploaded.
	CreatedAt       time.Time // Timestamp of when this account was created.
	UpdatedAt       time.Time // Timestamp of the last modification to this account.
}
