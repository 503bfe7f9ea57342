package valueobjects

// TicketStatus is the lifecycle state of a support ticket.
// Closed is terminal: a new ticket must be opened instead of reopening.
type TicketStatus string

const (
	StatusOpen   TicketStatus = "open"
	StatusClosed TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:   true,
	StatusClosed: true,
}

var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusOpen:   {StatusClosed},
	StatusClosed: {},
}

func (s TicketStatus) IsValid() bool {
	return validTicketStatuses[s]
}

func (s TicketStatus) CanTransitionTo(target TicketStatus) bool {
	for _, allowed := range ticketStatusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s TicketStatus) String() string {
	return string(s)
}
