package domain

import "time"

// User represents a registered account that can own projects.
type User struct {
	ID        int64     `db:"id"`
	Username  string    `db:"username"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Credentials is the owner reference embedded in project payloads.
type Credentials struct {
	ID       int64
	Username string
	Password string
}
