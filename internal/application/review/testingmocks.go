package review

import (
	"context"

	"github.com/stretchr/testify/mock"

	"minegate/internal/domain/application"
	vo "minegate/internal/domain/application/valueobjects"
	"minegate/internal/domain/user"
	"minegate/internal/shared/logger"
)

type mockApplicationRepository struct {
	mock.Mock
}

func (m *mockApplicationRepository) Save(ctx context.Context, app *application.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *mockApplicationRepository) Update(ctx context.Context, app *application.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *mockApplicationRepository) Delete(ctx context.Context, applicationID uint) error {
	args := m.Called(ctx, applicationID)
	return args.Error(0)
}

func (m *mockApplicationRepository) GetByID(ctx context.Context, applicationID uint) (*application.Application, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.Application), args.Error(1)
}

func (m *mockApplicationRepository) GetActiveByUserID(ctx context.Context, userID int64) (*application.Application, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.Application), args.Error(1)
}

func (m *mockApplicationRepository) ListByStatus(ctx context.Context, status vo.ApplicationStatus) ([]*application.Application, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*application.Application), args.Error(1)
}

func (m *mockApplicationRepository) UpdateField(ctx context.Context, applicationID uint, field vo.Field, value string) error {
	args := m.Called(ctx, applicationID, field, value)
	return args.Error(0)
}

type mockMediaRepository struct {
	mock.Mock
}

func (m *mockMediaRepository) Save(ctx context.Context, media *application.Media) error {
	args := m.Called(ctx, media)
	return args.Error(0)
}

func (m *mockMediaRepository) ListByApplicationID(ctx context.Context, applicationID uint) ([]*application.Media, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*application.Media), args.Error(1)
}

func (m *mockMediaRepository) CountByApplicationID(ctx context.Context, applicationID uint) (int64, error) {
	args := m.Called(ctx, applicationID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMediaRepository) DeleteByApplicationID(ctx context.Context, applicationID uint) error {
	args := m.Called(ctx, applicationID)
	return args.Error(0)
}

type mockDraftRepository struct {
	mock.Mock
}

func (m *mockDraftRepository) Save(ctx context.Context, draft *application.FormDraft) error {
	args := m.Called(ctx, draft)
	return args.Error(0)
}

func (m *mockDraftRepository) GetByUserID(ctx context.Context, userID int64) (*application.FormDraft, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.FormDraft), args.Error(1)
}

func (m *mockDraftRepository) UpdateField(ctx context.Context, userID int64, field vo.Field, value string) error {
	args := m.Called(ctx, userID, field, value)
	return args.Error(0)
}

func (m *mockDraftRepository) UpdateStep(ctx context.Context, userID int64, step vo.FormStep) error {
	args := m.Called(ctx, userID, step)
	return args.Error(0)
}

func (m *mockDraftRepository) AddMedia(ctx context.Context, userID int64, media application.DraftMedia) error {
	args := m.Called(ctx, userID, media)
	return args.Error(0)
}

func (m *mockDraftRepository) Delete(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Upsert(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type mockWhitelistRunner struct {
	mock.Mock
}

func (m *mockWhitelistRunner) Add(ctx context.Context, nickname string, platform vo.Platform) error {
	args := m.Called(ctx, nickname, platform)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyApplicantApproved(app *application.Application) {
	m.Called(app)
}

func (m *mockNotifier) NotifyApplicantRejected(app *application.Application) {
	m.Called(app)
}

func (m *mockNotifier) NotifyApplicantComment(app *application.Application) {
	m.Called(app)
}

func (m *mockNotifier) NotifyApplicantDeleted(userID int64) {
	m.Called(userID)
}

func (m *mockNotifier) NotifyApplicantEditGranted(app *application.Application) {
	m.Called(app)
}

// stubTxManager runs the function in place. Tests that need a failing
// transaction set err.
type stubTxManager struct {
	err error
}

func (s *stubTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.err != nil {
		return s.err
	}
	return fn(ctx)
}

type nopLogger struct{}

func newNopLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) Fatal(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
