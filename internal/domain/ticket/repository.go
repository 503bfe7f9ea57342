package ticket

import "context"

type Repository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// GetOpenByUserID returns the user's most recent open ticket, if any.
	GetOpenByUserID(ctx context.Context, userID int64) (*Ticket, error)
	ListOpen(ctx context.Context) ([]*Ticket, error)
}

type MessageRepository interface {
	// Append adds a message to the ticket's log. The log is append-only.
	Append(ctx context.Context, message *Message) error
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Message, error)
}
