package domain

import (
	"fmt"
	"strings"
	"time"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
)

// ParseVisibility maps user input to a Visibility. Empty input means PUBLIC.
func ParseVisibility(s string) (Visibility, error) {
	switch Visibility(strings.ToUpper(strings.TrimSpace(s))) {
	case "", VisibilityPublic:
		return VisibilityPublic, nil
	case VisibilityPrivate:
		return VisibilityPrivate, nil
	default:
		return "", fmt.Errorf("unknown visibility %q", s)
	}
}

// Project is a named record owned by exactly one user.
type Project struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Visibility  Visibility `db:"visibility"`
	OwnerID     int64      `db:"user_id"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`

	Owner User `db:"owner"`
}

// IsPublic reports whether any authenticated user may read the project.
func (p Project) IsPublic() bool {
	return p.Visibility == VisibilityPublic
}

// OwnedBy reports whether the project belongs to the given user.
func (p Project) OwnedBy(user User) bool {
	return p.OwnerID == user.ID
}
