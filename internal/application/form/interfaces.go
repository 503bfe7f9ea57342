package form

import (
	"context"

	"minegate/internal/domain/application"
)

// TransactionManager runs a function inside one database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// RosterWriter appends one line to the external append-only roster file.
type RosterWriter interface {
	AppendLine(displayName, platform, javaNickname, bedrockNickname string) error
}

// Notifier delivers outbound notifications. Delivery is best-effort: the
// persisted state change is the truth, the notification is advisory.
type Notifier interface {
	NotifyAdminsNewApplication(app *application.Application, displayName string)
}
