package models

import "time"

// User represents a marketplace account stored in the users table.
type User struct {
	ID                int64     `db:"id" json:"UserID"`
	FullName          string    `db:"full_name" json:"Fullname"`
	Username          string    `db:"username" json:"Username"`
	Email             string    `db:"email" json:"Email"`
	PasswordHash      string    `db:"password_hash" json:"-"`
	VerificationToken *string   `db:"verification_token" json:"-"`
	Verified          bool      `db:"verified" json:"Verified"`
	CreatedAt         time.Time `db:"created_at" json:"CreatedAt"`
}
