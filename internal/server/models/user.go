// Package models holds the persistent data structures shared by
// repositories and services.
package models

import "time"

// User is a registered account. PasswordHash is a salted bcrypt digest and
// must never be serialized to clients.
type User struct {
	ID           int64
	Name         string
	Email        string
	Profile      string
	PasswordHash string
	CreatedAt    time.Time
}
