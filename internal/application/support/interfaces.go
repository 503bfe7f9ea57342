package support

import (
	"minegate/internal/domain/ticket"
)

// Notifier relays ticket traffic and lifecycle notices. Relay delivery is
// best-effort once the message is persisted; persistence failures abort the
// relay before any notifier call.
type Notifier interface {
	// RelayToAdmin delivers a user message to the assigned admin.
	RelayToAdmin(adminID int64, t *ticket.Ticket, m *ticket.Message)
	// BroadcastToAdmins delivers a user message on an unclaimed ticket to
	// the whole admin pool, each copy carrying a claim action.
	BroadcastToAdmins(adminIDs []int64, t *ticket.Ticket, m *ticket.Message)
	// RelayToUser delivers an admin message to the ticket's owning user.
	RelayToUser(userID int64, t *ticket.Ticket, m *ticket.Message)
	// NotifyTicketClosed informs one party that the ticket was closed.
	NotifyTicketClosed(recipientID int64, t *ticket.Ticket, closedByAdmin bool)
}
