package ticket

import (
	"fmt"
	"time"

	vo "minegate/internal/domain/ticket/valueobjects"
)

// Ticket is a support conversation between one user and the admin pool.
// Until claimed, user messages are broadcast to every admin; after a claim
// the assigned admin is the sole relay target. The last admin to claim wins.
type Ticket struct {
	id              uint
	userID          int64
	status          vo.TicketStatus
	assignedAdminID *int64
	createdAt       time.Time
	updatedAt       time.Time
	closedAt        *time.Time
}

func NewTicket(userID int64) (*Ticket, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	now := time.Now()
	return &Ticket{
		userID:    userID,
		status:    vo.StatusOpen,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTicket(
	id uint,
	userID int64,
	status vo.TicketStatus,
	assignedAdminID *int64,
	createdAt, updatedAt time.Time,
	closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	return &Ticket{
		id:              id,
		userID:          userID,
		status:          status,
		assignedAdminID: assignedAdminID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		closedAt:        closedAt,
	}, nil
}

func (t *Ticket) ID() uint                 { return t.id }
func (t *Ticket) UserID() int64            { return t.userID }
func (t *Ticket) Status() vo.TicketStatus  { return t.status }
func (t *Ticket) AssignedAdminID() *int64  { return t.assignedAdminID }
func (t *Ticket) CreatedAt() time.Time     { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time     { return t.updatedAt }
func (t *Ticket) ClosedAt() *time.Time     { return t.closedAt }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ID already set")
	}
	t.id = id
	return nil
}

func (t *Ticket) IsOpen() bool {
	return t.status == vo.StatusOpen
}

func (t *Ticket) IsAssigned() bool {
	return t.assignedAdminID != nil
}

func (t *Ticket) IsAssignedTo(adminID int64) bool {
	return t.assignedAdminID != nil && *t.assignedAdminID == adminID
}

// Claim assigns the ticket to an admin. Claiming an already-assigned open
// ticket reassigns it; claims are human-paced, so no lock guards the race.
func (t *Ticket) Claim(adminID int64) error {
	if adminID == 0 {
		return fmt.Errorf("admin ID is required")
	}
	if !t.IsOpen() {
		return fmt.Errorf("cannot claim ticket in status %s", t.status)
	}
	t.assignedAdminID = &adminID
	t.updatedAt = time.Now()
	return nil
}

// Close transitions open → closed. Closing an already-closed ticket is
// rejected so the caller can answer with a "not open" notice.
func (t *Ticket) Close() error {
	if !t.status.CanTransitionTo(vo.StatusClosed) {
		return fmt.Errorf("cannot close ticket in status %s", t.status)
	}
	now := time.Now()
	t.status = vo.StatusClosed
	t.closedAt = &now
	t.updatedAt = now
	return nil
}
