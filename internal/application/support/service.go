// Package support relays messages between a ticket's owning user and the
// administrator pool: broadcast until claimed, then a two-party chat, with
// every message persisted before it is relayed.
package support

import (
	"context"

	"minegate/internal/domain/ticket"
	vo "minegate/internal/domain/ticket/valueobjects"
	"minegate/internal/domain/user"
	apperrors "minegate/internal/shared/errors"
	"minegate/internal/shared/logger"
)

type Service struct {
	tickets  ticket.Repository
	messages ticket.MessageRepository
	users    user.Repository
	notifier Notifier
	adminIDs []int64
	log      logger.Interface
}

func NewService(
	tickets ticket.Repository,
	messages ticket.MessageRepository,
	users user.Repository,
	notifier Notifier,
	adminIDs []int64,
	log logger.Interface,
) *Service {
	return &Service{
		tickets:  tickets,
		messages: messages,
		users:    users,
		notifier: notifier,
		adminIDs: adminIDs,
		log:      log,
	}
}

// Open returns the user's existing open ticket when one exists (existing ==
// true) so the caller can offer "continue or force new" instead of silently
// creating a duplicate. Otherwise a new ticket is created.
func (s *Service) Open(ctx context.Context, userID int64, displayName string) (*ticket.Ticket, bool, error) {
	u, err := user.NewUser(userID, displayName)
	if err != nil {
		return nil, false, apperrors.NewValidationError(err.Error())
	}
	if err := s.users.Upsert(ctx, u); err != nil {
		return nil, false, err
	}

	existing, err := s.tickets.GetOpenByUserID(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, true, nil
	}

	t, err := s.create(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	return t, false, nil
}

// ForceOpen creates a new ticket even when an open one exists. The previous
// ticket stays open and unattended; that is the documented tradeoff of the
// explicit force-new path.
func (s *Service) ForceOpen(ctx context.Context, userID int64) (*ticket.Ticket, error) {
	return s.create(ctx, userID)
}

func (s *Service) create(ctx context.Context, userID int64) (*ticket.Ticket, error) {
	t, err := ticket.NewTicket(userID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := s.tickets.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Get loads one ticket.
func (s *Service) Get(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	return s.tickets.GetByID(ctx, ticketID)
}

// SendUserMessage persists a user message and relays it: to the assigned
// admin when the ticket is claimed, otherwise to every admin with a claim
// action. The relay is skipped entirely if persistence fails.
func (s *Service) SendUserMessage(ctx context.Context, ticketID uint, senderID int64, displayName string, kind vo.MessageKind, content string) error {
	t, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return err
	}
	if t.UserID() != senderID {
		return apperrors.NewForbiddenError("ticket belongs to another user")
	}
	if !t.IsOpen() {
		return apperrors.NewConflictError("ticket not open", t.Status().String())
	}

	m, err := ticket.NewMessage(ticketID, senderID, vo.RoleUser, kind, content, displayName)
	if err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if err := s.messages.Append(ctx, m); err != nil {
		return err
	}

	if t.IsAssigned() {
		s.notifier.RelayToAdmin(*t.AssignedAdminID(), t, m)
	} else {
		s.notifier.BroadcastToAdmins(s.adminIDs, t, m)
	}
	return nil
}

// SendAdminMessage persists an admin message and relays it to the ticket's
// owning user. Only the assigned admin may send; an unassigned admin must
// claim first.
func (s *Service) SendAdminMessage(ctx context.Context, ticketID uint, adminID int64, displayName string, kind vo.MessageKind, content string) error {
	if !s.isAdmin(adminID) {
		return apperrors.NewForbiddenError("not an administrator")
	}

	t, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return err
	}
	if !t.IsOpen() {
		return apperrors.NewConflictError("ticket not open", t.Status().String())
	}
	if !t.IsAssignedTo(adminID) {
		return apperrors.NewForbiddenError("ticket is assigned to another admin")
	}

	m, err := ticket.NewMessage(ticketID, adminID, vo.RoleAdmin, kind, content, displayName)
	if err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if err := s.messages.Append(ctx, m); err != nil {
		return err
	}

	s.notifier.RelayToUser(t.UserID(), t, m)
	return nil
}

// Claim assigns the ticket to an admin. A later claim by a different admin
// reassigns: the last claimant is the sole relay target from then on.
func (s *Service) Claim(ctx context.Context, ticketID uint, adminID int64) (*ticket.Ticket, error) {
	if !s.isAdmin(adminID) {
		return nil, apperrors.NewForbiddenError("not an administrator")
	}

	t, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if err := t.Claim(adminID); err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}
	if err := s.tickets.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Transcript returns the persisted conversation log. Any admin and the
// owning user may view it; viewing does not claim.
func (s *Service) Transcript(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	if _, err := s.tickets.GetByID(ctx, ticketID); err != nil {
		return nil, err
	}
	return s.messages.ListByTicketID(ctx, ticketID)
}

// CloseByUser closes the ticket on behalf of its owner and notifies the
// assigned admin, if any.
func (s *Service) CloseByUser(ctx context.Context, ticketID uint, userID int64) (*ticket.Ticket, error) {
	t, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if t.UserID() != userID {
		return nil, apperrors.NewForbiddenError("ticket belongs to another user")
	}

	if err := s.close(ctx, t); err != nil {
		return nil, err
	}

	if t.AssignedAdminID() != nil {
		s.notifier.NotifyTicketClosed(*t.AssignedAdminID(), t, false)
	}
	return t, nil
}

// CloseByAdmin closes the ticket on behalf of the assigned admin. The owning
// user and the whole admin pool receive the closure notice.
func (s *Service) CloseByAdmin(ctx context.Context, ticketID uint, adminID int64) (*ticket.Ticket, error) {
	if !s.isAdmin(adminID) {
		return nil, apperrors.NewForbiddenError("not an administrator")
	}

	t, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !t.IsAssignedTo(adminID) {
		return nil, apperrors.NewForbiddenError("ticket is assigned to another admin")
	}

	if err := s.close(ctx, t); err != nil {
		return nil, err
	}

	s.notifier.NotifyTicketClosed(t.UserID(), t, true)
	for _, id := range s.adminIDs {
		if id != adminID {
			s.notifier.NotifyTicketClosed(id, t, true)
		}
	}
	return t, nil
}

// close performs the guarded transition. Closing an already-closed ticket is
// rejected with a conflict, never silently accepted.
func (s *Service) close(ctx context.Context, t *ticket.Ticket) error {
	if err := t.Close(); err != nil {
		return apperrors.NewConflictError("ticket not open", t.Status().String())
	}
	return s.tickets.Update(ctx, t)
}

func (s *Service) isAdmin(id int64) bool {
	for _, adminID := range s.adminIDs {
		if adminID == id {
			return true
		}
	}
	return false
}
