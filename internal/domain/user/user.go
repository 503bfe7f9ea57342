package user

import (
	"fmt"
	"strings"
	"time"
)

// User is a Telegram account known to the bot. The identifier is the
// platform-assigned Telegram user ID, immutable for the lifetime of the
// account. Users are created on first contact and never deleted.
type User struct {
	id          int64
	displayName string
	createdAt   time.Time
}

func NewUser(id int64, displayName string) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = fmt.Sprintf("user-%d", id)
	}

	return &User{
		id:          id,
		displayName: displayName,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructUser(id int64, displayName string, createdAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	return &User{
		id:          id,
		displayName: displayName,
		createdAt:   createdAt,
	}, nil
}

func (u *User) ID() int64            { return u.id }
func (u *User) DisplayName() string  { return u.displayName }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// Rename updates the display name. Last-seen value wins.
func (u *User) Rename(displayName string) {
	displayName = strings.TrimSpace(displayName)
	if displayName != "" {
		u.displayName = displayName
	}
}
