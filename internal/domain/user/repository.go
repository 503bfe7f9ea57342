package user

import "context"

type Repository interface {
	// Upsert creates the user on first contact or refreshes the display
	// name on subsequent contacts.
	Upsert(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
}
