package domain

import "time"

// User is the public view of a registered account. It is what the session
// holds and what views render; it never carries credentials.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Account is a registry entry: the user plus the stored password hash.
type Account struct {
	User
	PasswordHash string `json:"passwordHash"`
}
