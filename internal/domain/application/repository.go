package application

import (
	"context"

	vo "minegate/internal/domain/application/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, app *Application) error
	Update(ctx context.Context, app *Application) error
	// Delete removes the application together with its media rows.
	Delete(ctx context.Context, applicationID uint) error
	GetByID(ctx context.Context, applicationID uint) (*Application, error)
	// GetActiveByUserID returns the user's in-flight application, if any.
	// Used to enforce at most one active application per user.
	GetActiveByUserID(ctx context.Context, userID int64) (*Application, error)
	ListByStatus(ctx context.Context, status vo.ApplicationStatus) ([]*Application, error)
	// UpdateField sets a single profile column through the field allow-list.
	UpdateField(ctx context.Context, applicationID uint, field vo.Field, value string) error
}

type MediaRepository interface {
	Save(ctx context.Context, media *Media) error
	ListByApplicationID(ctx context.Context, applicationID uint) ([]*Media, error)
	CountByApplicationID(ctx context.Context, applicationID uint) (int64, error)
	DeleteByApplicationID(ctx context.Context, applicationID uint) error
}

type DraftRepository interface {
	// Save upserts the draft keyed by user ID, including its media list.
	Save(ctx context.Context, draft *FormDraft) error
	GetByUserID(ctx context.Context, userID int64) (*FormDraft, error)
	// UpdateField sets a single answer column through the field allow-list.
	UpdateField(ctx context.Context, userID int64, field vo.Field, value string) error
	UpdateStep(ctx context.Context, userID int64, step vo.FormStep) error
	AddMedia(ctx context.Context, userID int64, media DraftMedia) error
	Delete(ctx context.Context, userID int64) error
}
