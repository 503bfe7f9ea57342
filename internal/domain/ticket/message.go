package ticket

import (
	"fmt"
	"time"

	vo "minegate/internal/domain/ticket/valueobjects"
)

// Message is one entry in a ticket's append-only conversation log. Messages
// are never mutated or deleted individually. The sender display name is a
// snapshot taken at send time, so later renames do not rewrite history.
type Message struct {
	id         uint
	ticketID   uint
	senderID   int64
	role       vo.SenderRole
	kind       vo.MessageKind
	content    string
	senderName string
	createdAt  time.Time
}

func NewMessage(ticketID uint, senderID int64, role vo.SenderRole, kind vo.MessageKind, content, senderName string) (*Message, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if senderID == 0 {
		return nil, fmt.Errorf("sender ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid sender role: %s", role)
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("unsupported message kind: %s", kind)
	}
	if content == "" {
		return nil, fmt.Errorf("content is required")
	}
	return &Message{
		ticketID:   ticketID,
		senderID:   senderID,
		role:       role,
		kind:       kind,
		content:    content,
		senderName: senderName,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructMessage(
	id, ticketID uint,
	senderID int64,
	role vo.SenderRole,
	kind vo.MessageKind,
	content, senderName string,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	return &Message{
		id:         id,
		ticketID:   ticketID,
		senderID:   senderID,
		role:       role,
		kind:       kind,
		content:    content,
		senderName: senderName,
		createdAt:  createdAt,
	}, nil
}

func (m *Message) ID() uint             { return m.id }
func (m *Message) TicketID() uint       { return m.ticketID }
func (m *Message) SenderID() int64      { return m.senderID }
func (m *Message) Role() vo.SenderRole  { return m.role }
func (m *Message) Kind() vo.MessageKind { return m.kind }
func (m *Message) Content() string      { return m.content }
func (m *Message) SenderName() string   { return m.senderName }
func (m *Message) CreatedAt() time.Time { return m.createdAt }
