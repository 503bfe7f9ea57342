// Package review is the admin-facing workflow over an application's
// lifecycle: approval with per-platform whitelist side effects, guarded
// rejection, comments, deletion and the edit-count-gated resubmission path.
package review

import (
	"context"
	"fmt"

	"minegate/internal/domain/application"
	vo "minegate/internal/domain/application/valueobjects"
	"minegate/internal/domain/user"
	apperrors "minegate/internal/shared/errors"
	"minegate/internal/shared/logger"
)

// PlatformOutcome reports one whitelist command attempt so the operator can
// see partial state: the two commands are not atomic with each other.
type PlatformOutcome struct {
	Platform  vo.Platform
	Nickname  string
	Attempted bool
	Err       error
}

// ApproveResult carries the per-platform whitelist outcomes of one approval
// attempt.
type ApproveResult struct {
	Application *application.Application
	Java        *PlatformOutcome
	Bedrock     *PlatformOutcome
}

// Succeeded reports whether every attempted whitelist command passed.
func (r *ApproveResult) Succeeded() bool {
	for _, o := range []*PlatformOutcome{r.Java, r.Bedrock} {
		if o != nil && o.Err != nil {
			return false
		}
	}
	return true
}

// Summary is one row of a status listing.
type Summary struct {
	Application *application.Application
	DisplayName string
	MediaCount  int64
}

// Detail is the full admin view of one application.
type Detail struct {
	Application *application.Application
	DisplayName string
	Media       []*application.Media
}

type Service struct {
	apps      application.Repository
	media     application.MediaRepository
	drafts    application.DraftRepository
	users     user.Repository
	tm        TransactionManager
	whitelist WhitelistRunner
	notifier  Notifier
	log       logger.Interface
}

func NewService(
	apps application.Repository,
	media application.MediaRepository,
	drafts application.DraftRepository,
	users user.Repository,
	tm TransactionManager,
	whitelist WhitelistRunner,
	notifier Notifier,
	log logger.Interface,
) *Service {
	return &Service{
		apps:      apps,
		media:     media,
		drafts:    drafts,
		users:     users,
		tm:        tm,
		whitelist: whitelist,
		notifier:  notifier,
		log:       log,
	}
}

// Approve issues one whitelist command per selected platform and, only when
// every command succeeded, transitions the application to approved. A
// repeated approve performs zero whitelist calls and zero notifications.
func (s *Service) Approve(ctx context.Context, applicationID uint) (*ApproveResult, error) {
	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if !app.IsPending() {
		return nil, apperrors.NewConflictError("application is not pending", app.Status().String())
	}

	result := &ApproveResult{Application: app}
	platform := app.Platform()

	if platform.IncludesJava() {
		result.Java = &PlatformOutcome{Platform: vo.PlatformJava, Nickname: app.JavaNickname(), Attempted: true}
		result.Java.Err = s.whitelist.Add(ctx, app.JavaNickname(), vo.PlatformJava)
		if result.Java.Err != nil {
			// Approval aborted before the bedrock attempt; status unchanged.
			return result, apperrors.NewInternalError("whitelist command failed", result.Java.Err.Error())
		}
	}
	if platform.IncludesBedrock() {
		result.Bedrock = &PlatformOutcome{Platform: vo.PlatformBedrock, Nickname: app.BedrockNickname(), Attempted: true}
		result.Bedrock.Err = s.whitelist.Add(ctx, app.BedrockNickname(), vo.PlatformBedrock)
		if result.Bedrock.Err != nil {
			// The java add already went through; the outcome makes the
			// partial state visible to the operator.
			return result, apperrors.NewInternalError("whitelist command failed", result.Bedrock.Err.Error())
		}
	}

	if err := app.Approve(); err != nil {
		return result, apperrors.NewConflictError(err.Error())
	}
	if err := s.apps.Update(ctx, app); err != nil {
		return result, err
	}

	s.notifier.NotifyApplicantApproved(app)
	return result, nil
}

// Reject sets the application to rejected. Rejecting a non-pending
// application is a no-op that reports the existing status.
func (s *Service) Reject(ctx context.Context, applicationID uint, comment string) (*application.Application, error) {
	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if !app.IsPending() {
		return nil, apperrors.NewConflictError("application is not pending", app.Status().String())
	}

	if err := app.Reject(comment); err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}
	if err := s.apps.Update(ctx, app); err != nil {
		return nil, err
	}

	s.notifier.NotifyApplicantRejected(app)
	return app, nil
}

// Comment overwrites the admin comment. Allowed at any status; the applicant
// is told the new comment text verbatim.
func (s *Service) Comment(ctx context.Context, applicationID uint, text string) (*application.Application, error) {
	if text == "" {
		return nil, apperrors.NewValidationError("comment cannot be empty")
	}

	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	app.SetComment(text)
	if err := s.apps.Update(ctx, app); err != nil {
		return nil, err
	}

	s.notifier.NotifyApplicantComment(app)
	return app, nil
}

// Delete unconditionally removes the application with its media, at any
// status, and notifies the applicant.
func (s *Service) Delete(ctx context.Context, applicationID uint) error {
	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}

	if err := s.apps.Delete(ctx, applicationID); err != nil {
		return err
	}

	s.notifier.NotifyApplicantDeleted(app.UserID())
	return nil
}

// GrantEdit is the admin-initiated edit grant: it consumes one edit, the
// application returns to pending, its media is wiped, and the applicant
// re-enters the form through a resubmission draft. An edit-locked
// application (three edits spent) is refused.
func (s *Service) GrantEdit(ctx context.Context, applicationID uint) (*application.FormDraft, error) {
	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	return s.grantEdit(ctx, app)
}

// RequestEdit is the applicant-initiated variant. Application IDs arrive in
// callback data, which any client can forge, so the edit is granted only to
// the application's owner.
func (s *Service) RequestEdit(ctx context.Context, applicationID uint, userID int64) (*application.FormDraft, error) {
	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.UserID() != userID {
		return nil, apperrors.NewForbiddenError("application belongs to another user")
	}
	return s.grantEdit(ctx, app)
}

func (s *Service) grantEdit(ctx context.Context, app *application.Application) (*application.FormDraft, error) {
	if !app.CanEdit() {
		return nil, apperrors.NewConflictError("edit limit reached", fmt.Sprintf("%d edits used", app.EditCount()))
	}

	if err := app.GrantEdit(); err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}

	draft, err := application.NewResubmissionDraft(app.UserID(), app.ID())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	err = s.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := s.apps.Update(txCtx, app); err != nil {
			return err
		}
		if err := s.media.DeleteByApplicationID(txCtx, app.ID()); err != nil {
			return err
		}
		return s.drafts.Save(txCtx, draft)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyApplicantEditGranted(app)
	return draft, nil
}

// ListByStatus enumerates applications with requester name and attachment
// count. Listings are filtered by status only; volumes are expected small.
func (s *Service) ListByStatus(ctx context.Context, status vo.ApplicationStatus) ([]*Summary, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid status: %s", status))
	}

	apps, err := s.apps.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}

	summaries := make([]*Summary, 0, len(apps))
	for _, app := range apps {
		count, err := s.media.CountByApplicationID(ctx, app.ID())
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, &Summary{
			Application: app,
			DisplayName: s.displayName(ctx, app.UserID()),
			MediaCount:  count,
		})
	}
	return summaries, nil
}

// Detail returns the full admin view of one application, media included.
func (s *Service) Detail(ctx context.Context, applicationID uint) (*Detail, error) {
	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	media, err := s.media.ListByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	return &Detail{
		Application: app,
		DisplayName: s.displayName(ctx, app.UserID()),
		Media:       media,
	}, nil
}

func (s *Service) displayName(ctx context.Context, userID int64) string {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Sprintf("user-%d", userID)
	}
	return u.DisplayName()
}
