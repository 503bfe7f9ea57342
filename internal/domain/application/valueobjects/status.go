package valueobjects

// ApplicationStatus is the review state of a whitelist application.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
)

var validApplicationStatuses = map[ApplicationStatus]bool{
	StatusPending:  true,
	StatusApproved: true,
	StatusRejected: true,
}

// Approved/rejected are terminal labels: no further status transitions,
// though comment, delete and edit-gated resubmission remain available.
var applicationStatusTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {},
	StatusRejected: {StatusPending},
}

func (s ApplicationStatus) IsValid() bool {
	return validApplicationStatuses[s]
}

func (s ApplicationStatus) CanTransitionTo(target ApplicationStatus) bool {
	for _, allowed := range applicationStatusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s ApplicationStatus) String() string {
	return string(s)
}
