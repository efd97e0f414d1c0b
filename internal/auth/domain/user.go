// Package domain holds the user account model.
package domain

import "time"

// User is a registered account. Accounts exist only so radiologists can
// submit attributed feedback; report processing itself is anonymous.
type User struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
