package review

import (
	"context"

	"minegate/internal/domain/application"
	vo "minegate/internal/domain/application/valueobjects"
)

// TransactionManager runs a function inside one database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// WhitelistRunner adds one nickname to the server whitelist for one edition.
type WhitelistRunner interface {
	Add(ctx context.Context, nickname string, platform vo.Platform) error
}

// Notifier delivers review outcomes to the applicant. Delivery is
// best-effort: the persisted status change is the truth.
type Notifier interface {
	NotifyApplicantApproved(app *application.Application)
	NotifyApplicantRejected(app *application.Application)
	NotifyApplicantComment(app *application.Application)
	NotifyApplicantDeleted(userID int64)
	NotifyApplicantEditGranted(app *application.Application)
}
