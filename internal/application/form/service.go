// Package form drives the applicant through the whitelist-application
// intake: an ordered prompt sequence with a platform branch, two capped
// upload loops, branch-aware back-navigation and durable per-field answers.
package form

import (
	"context"
	"fmt"

	"minegate/internal/domain/application"
	vo "minegate/internal/domain/application/valueobjects"
	"minegate/internal/domain/user"
	apperrors "minegate/internal/shared/errors"
	"minegate/internal/shared/logger"
)

type Service struct {
	users    user.Repository
	drafts   application.DraftRepository
	apps     application.Repository
	media    application.MediaRepository
	tm       TransactionManager
	roster   RosterWriter
	notifier Notifier
	log      logger.Interface
}

func NewService(
	users user.Repository,
	drafts application.DraftRepository,
	apps application.Repository,
	media application.MediaRepository,
	tm TransactionManager,
	roster RosterWriter,
	notifier Notifier,
	log logger.Interface,
) *Service {
	return &Service{
		users:    users,
		drafts:   drafts,
		apps:     apps,
		media:    media,
		tm:       tm,
		roster:   roster,
		notifier: notifier,
		log:      log,
	}
}

// Start opens a fresh form for the user. An in-flight application blocks a
// new form: the caller gets a conflict carrying the existing status so it
// can offer the right follow-up (wait, or edit after rejection).
func (s *Service) Start(ctx context.Context, userID int64, displayName string) (*application.FormDraft, error) {
	u, err := user.NewUser(userID, displayName)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := s.users.Upsert(ctx, u); err != nil {
		return nil, err
	}

	active, err := s.apps.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, apperrors.NewConflictError("application already exists", active.Status().String())
	}

	draft, err := application.NewFormDraft(userID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Active returns the user's current application, or nil when none exists.
func (s *Service) Active(ctx context.Context, userID int64) (*application.Application, error) {
	return s.apps.GetActiveByUserID(ctx, userID)
}

// Resume returns the user's in-progress draft, if any.
func (s *Service) Resume(ctx context.Context, userID int64) (*application.FormDraft, error) {
	return s.drafts.GetByUserID(ctx, userID)
}

// AcceptPolicy advances past the policy step.
func (s *Service) AcceptPolicy(ctx context.Context, userID int64) (*application.FormDraft, error) {
	draft, err := s.drafts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if draft.Step() != vo.StepPolicy {
		return nil, apperrors.NewConflictError("form is not at the policy step", draft.Step().String())
	}
	return s.advance(ctx, draft)
}

// AnswerText records the answer for the current text step and advances the
// form. Steps that expect a button press or attachments reject text input
// with a retry prompt.
func (s *Service) AnswerText(ctx context.Context, userID int64, text string) (*application.FormDraft, error) {
	draft, err := s.drafts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	step := draft.Step()
	field, ok := step.AnswerField()
	if !ok {
		switch {
		case step.IsUploadStep():
			return nil, apperrors.NewValidationError("this step expects attachments, not text")
		default:
			return nil, apperrors.NewValidationError("this step expects a button choice")
		}
	}

	if err := draft.SetAnswer(field, text); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	// Persist the single answered field before advancing so an abandoned
	// conversation never loses a confirmed answer.
	if err := s.drafts.UpdateField(ctx, userID, field, text); err != nil {
		return nil, err
	}

	return s.advance(ctx, draft)
}

// ChoosePlatform records the platform branch choice and advances into the
// matching nickname step.
func (s *Service) ChoosePlatform(ctx context.Context, userID int64, platform vo.Platform) (*application.FormDraft, error) {
	draft, err := s.drafts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if draft.Step() != vo.StepPlatform {
		return nil, apperrors.NewConflictError("form is not at the platform step", draft.Step().String())
	}
	if err := draft.SetAnswer(vo.FieldPlatform, platform.String()); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := s.drafts.UpdateField(ctx, userID, vo.FieldPlatform, platform.String()); err != nil {
		return nil, err
	}
	return s.advance(ctx, draft)
}

// AttachMedia adds one attachment at the current upload step. Submissions
// past the category cap are rejected; the step does not advance.
func (s *Service) AttachMedia(ctx context.Context, userID int64, fileID string, kind vo.MediaKind) (*application.FormDraft, error) {
	draft, err := s.drafts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := draft.AttachMedia(fileID, kind); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	media := draft.Media()
	if err := s.drafts.AddMedia(ctx, userID, media[len(media)-1]); err != nil {
		return nil, err
	}
	return draft, nil
}

// ContinueUploads advances past the current upload step on the explicit
// continue signal. The step never advances automatically at the cap.
func (s *Service) ContinueUploads(ctx context.Context, userID int64) (*application.FormDraft, error) {
	draft, err := s.drafts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !draft.Step().IsUploadStep() {
		return nil, apperrors.NewConflictError("form is not at an upload step", draft.Step().String())
	}
	return s.advance(ctx, draft)
}

// Back moves to the immediately preceding step and re-displays its prompt.
func (s *Service) Back(ctx context.Context, userID int64) (*application.FormDraft, error) {
	draft, err := s.drafts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := draft.Back(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := s.drafts.UpdateStep(ctx, userID, draft.Step()); err != nil {
		return nil, err
	}
	return draft, nil
}

// Cancel abandons the form. The draft is removed; no application row was
// ever materialized, so nothing else is left behind.
func (s *Service) Cancel(ctx context.Context, userID int64) error {
	return s.drafts.Delete(ctx, userID)
}

// Submit finalizes the form: it materializes (or, for a resubmission,
// overwrites) the application inside one transaction together with its media
// rows and draft cleanup. The roster append and the admin broadcast are
// best-effort side effects after commit.
func (s *Service) Submit(ctx context.Context, userID int64) (*application.Application, error) {
	draft, err := s.drafts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := draft.CollectedProfile()
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	var app *application.Application
	err = s.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if draft.ApplicationID() != nil {
			existing, err := s.apps.GetByID(txCtx, *draft.ApplicationID())
			if err != nil {
				return err
			}
			if err := existing.ApplyProfile(profile); err != nil {
				return apperrors.NewValidationError(err.Error())
			}
			if err := s.apps.Update(txCtx, existing); err != nil {
				return err
			}
			app = existing
		} else {
			created, err := application.NewApplication(userID, profile)
			if err != nil {
				return apperrors.NewValidationError(err.Error())
			}
			if err := s.apps.Save(txCtx, created); err != nil {
				return err
			}
			app = created
		}

		for _, dm := range draft.Media() {
			m, err := application.NewMedia(app.ID(), dm.FileID, dm.Kind, dm.Category)
			if err != nil {
				return apperrors.NewValidationError(err.Error())
			}
			if err := s.media.Save(txCtx, m); err != nil {
				return err
			}
		}

		return s.drafts.Delete(txCtx, userID)
	})
	if err != nil {
		return nil, err
	}

	s.exportRoster(ctx, app)

	displayName := s.displayName(ctx, userID)
	s.notifier.NotifyAdminsNewApplication(app, displayName)

	return app, nil
}

func (s *Service) advance(ctx context.Context, draft *application.FormDraft) (*application.FormDraft, error) {
	if err := draft.Advance(); err != nil {
		return nil, apperrors.NewInternalError(err.Error())
	}
	if err := s.drafts.UpdateStep(ctx, draft.UserID(), draft.Step()); err != nil {
		return nil, err
	}
	return draft, nil
}

// exportRoster is fire-and-forget: a failed append is logged, never fatal.
func (s *Service) exportRoster(ctx context.Context, app *application.Application) {
	displayName := s.displayName(ctx, app.UserID())
	if err := s.roster.AppendLine(
		displayName,
		app.Platform().String(),
		app.JavaNickname(),
		app.BedrockNickname(),
	); err != nil {
		s.log.Errorw("failed to append roster entry",
			"application_id", app.ID(),
			"error", err,
		)
	}
}

func (s *Service) displayName(ctx context.Context, userID int64) string {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Sprintf("user-%d", userID)
	}
	return u.DisplayName()
}
