package review

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"minegate/internal/domain/application"
	vo "minegate/internal/domain/application/valueobjects"
	apperrors "minegate/internal/shared/errors"
)

type reviewFixture struct {
	apps      *mockApplicationRepository
	media     *mockMediaRepository
	drafts    *mockDraftRepository
	users     *mockUserRepository
	tm        *stubTxManager
	whitelist *mockWhitelistRunner
	notifier  *mockNotifier
	svc       *Service
}

func newReviewFixture() *reviewFixture {
	f := &reviewFixture{
		apps:      new(mockApplicationRepository),
		media:     new(mockMediaRepository),
		drafts:    new(mockDraftRepository),
		users:     new(mockUserRepository),
		tm:        &stubTxManager{},
		whitelist: new(mockWhitelistRunner),
		notifier:  new(mockNotifier),
	}
	f.svc = NewService(f.apps, f.media, f.drafts, f.users, f.tm, f.whitelist, f.notifier, newNopLogger())
	return f
}

func pendingApplication(t *testing.T, id uint, platform vo.Platform) *application.Application {
	t.Helper()
	profile := application.Profile{
		PlayerName: "Alex",
		Age:        "21",
		Platform:   platform,
	}
	if platform.IncludesJava() {
		profile.JavaNickname = "alex_java"
	}
	if platform.IncludesBedrock() {
		profile.BedrockNickname = "alex_bedrock"
	}
	app, err := application.NewApplication(100, profile)
	require.NoError(t, err)
	require.NoError(t, app.SetID(id))
	return app
}

func TestService_Approve_BothPlatformsJavaFirst(t *testing.T) {
	f := newReviewFixture()
	app := pendingApplication(t, 42, vo.PlatformBoth)

	var order []string
	f.apps.On("GetByID", mock.Anything, uint(42)).Return(app, nil)
	f.whitelist.On("Add", mock.Anything, "alex_java", vo.PlatformJava).Run(func(mock.Arguments) {
		order = append(order, "java")
	}).Return(nil)
	f.whitelist.On("Add", mock.Anything, "alex_bedrock", vo.PlatformBedrock).Run(func(mock.Arguments) {
		order = append(order, "bedrock")
	}).Return(nil)
	f.apps.On("Update", mock.Anything, app).Return(nil)
	f.notifier.On("NotifyApplicantApproved", app).Return()

	result, err := f.svc.Approve(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, []string{"java", "bedrock"}, order)
	assert.Equal(t, vo.StatusApproved, app.Status())
	assert.True(t, result.Succeeded())
	require.NotNil(t, result.Java)
	require.NotNil(t, result.Bedrock)
	assert.True(t, result.Java.Attempted)
	assert.True(t, result.Bedrock.Attempted)
	f.notifier.AssertExpectations(t)
}

func TestService_Approve_JavaOnlySkipsBedrock(t *testing.T) {
	f := newReviewFixture()
	app := pendingApplication(t, 42, vo.PlatformJava)

	f.apps.On("GetByID", mock.Anything, uint(42)).Return(app, nil)
	f.whitelist.On("Add", mock.Anything, "alex_java", vo.PlatformJava).Return(nil)
	f.apps.On("Update", mock.Anything, app).Return(nil)
	f.notifier.On("NotifyApplicantApproved", app).Return()

	result, err := f.svc.Approve(context.Background(), 42)

	require.NoError(t, err)
	assert.Nil(t, result.Bedrock)
	f.whitelist.AssertNumberOfCalls(t, "Add", 1)
}

func TestService_Approve_RepeatedApproveRunsNothing(t *testing.T) {
	f := newReviewFixture()
	app := pendingApplication(t, 42, vo.PlatformBoth)
	require.NoError(t, app.Approve())

	f.apps.On("GetByID", mock.Anything, uint(42)).Return(app, nil)

	result, err := f.svc.Approve(context.Background(), 42)

	assert.Nil(t, result)
	require.True(t, apperrors.IsConflictError(err))
	f.whitelist.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "NotifyApplicantApproved", mock.Anything)
	f.apps.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Approve_JavaFailureAbortsBeforeBedrock(t *testing.T) {
	f := newReviewFixture()
	app := pendingApplication(t, 42, vo.PlatformBoth)

	f.apps.On("GetByID", mock.Anything, uint(42)).Return(app, nil)
	f.whitelist.On("Add", mock.Anything, "alex_java", vo.PlatformJava).Return(errors.New("screen session gone"))

	result, err := f.svc.Approve(context.Background(), 42)

	assert.Error(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Java.Attempted)
	assert.Error(t, result.Java.Err)
	assert.Nil(t, result.Bedrock, "bedrock must not be attempted after a java failure")
	assert.Equal(t, vo.StatusPending, app.Status(), "a failed approval leaves the status unchanged")
	f.whitelist.AssertNumberOfCalls(t, "Add", 1)
	f.apps.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Approve_BedrockFailureReportsPartialState(t *testing.T) {
	f := newReviewFixture()
	app := pendingApplication(t, 42, vo.PlatformBoth)

	f.apps.On("GetByID", mock.Anything, uint(42)).Return(app, nil)
	f.whitelist.On("Add", mock.Anything, "alex_java", vo.PlatformJava).Return(nil)
	f.whitelist.On("Add", mock.Anything, "alex_bedrock", vo.PlatformBedrock).Return(errors.New("timeout"))

	result, err := f.svc.Approve(context.Background(), 42)

	assert.Error(t, err)
	require.NotNil(t, result)
	assert.NoError(t, result.Java.Err)
	assert.Error(t, result.Bedrock.Err)
	assert.False(t, result.Succeeded())
	assert.Equal(t, vo.StatusPending, app.Status())
	f.notifier.AssertNotCalled(t, "NotifyApplicantApproved", mock.Anything)
}

func TestService_Reject_SetsStatusAndNotifies(t *testing.T) {
	f := newReviewFixture()
	app := pendingApplication(t, 42, vo.PlatformJava)

	f.apps.On("GetByID", mock.Anything, uint(42)).Return(app, nil)
	f.apps.On("Update", mock.Anything, app).Return(nil)
	f.notifier.On("NotifyApplicantRejected", app).Return()

	rejected, err := f.svc.Reject(context.Background(), 42, "incomplete answers")

	require.NoError(t, err)
	assert.Equal(t, vo.StatusRejected, rejected.Status())
	assert.Equal(t, "incomplete answers", rejected.Comment())
	f.notifier.AssertExpectations(t)
}

func TestService_Reject_NonPendingRefused(t *testing.T) {
	f := newReviewFixture()
	app := pendingApplication(t, 42, vo.PlatformJava)
	require.NoError(t, app.Reject("already handled"))

	f.apps.On("GetByID", mock.Anything, uint(42)).Return(app, nil)

	_, err := f.svc.Reject(context.Background(), 42, "again")

	require.True(t, apperrors.IsConflictError(err))
	assert.Equal(t, "rejected", apperrors.GetAppError(err).Details)
	f.apps.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Comment_AllowedAtAnyStatus(t *testing.T) {
	f := newReviewFixture()
	app := pendingApplication(t, 42, vo.PlatformJava)
	require.NoError(t, app.Approve())

	f.apps.On("GetByID", mock.Anything, uint(42)).Return(app, nil)
	f.apps.On("Update", mock.Anything, app).Return(nil)
	f.notifier.On("NotifyApplicantComment", app).Return()

	updated, err := f.svc.Comment(context.Background(), 42, "welcome aboard")

	require.NoError(t, err)
	assert.Equal(t, "welcome aboard", updated.Comment())
	assert.Equal(t, vo.StatusApproved, updated.Status(), "commenting never changes the status")
	f.notifier.AssertExpectations(t)
}

func TestService_Comment_EmptyRejected(t *testing.T) {
	f := newReviewFixture()

	_, err := f.svc.Comment(context.Background(), 42, "")

	assert.True(t, apperrors.IsValidationError(err))
	f.apps.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_Delete_RemovesAndNotifies(t *testing.T) {
	f := newReviewFixture()
	app := pendingApplication(t, 42, vo.PlatformJava)

	f.apps.On("GetByID", mock.Anything, uint(42)).Return(app, nil)
	f.apps.On("Delete", mock.Anything, uint(42)).Return(nil)
	f.notifier.On("NotifyApplicantDeleted", int64(100)).Return()

	require.NoError(t, f.svc.Delete(context.Background(), 42))
	f.notifier.AssertExpectations(t)
}

func TestService_GrantEdit_ResetsApplicationAndOpensDraft(t *testing.T) {
	f := newReviewFixture()
	app := pendingApplication(t, 42, vo.PlatformJava)
	require.NoError(t, app.Reject("fix the age answer"))

	f.apps.On("GetByID", mock.Anything, uint(42)).Return(app, nil)
	f.apps.On("Update", mock.Anything, app).Return(nil)
	f.media.On("DeleteByApplicationID", mock.Anything, uint(42)).Return(nil)
	f.drafts.On("Save", mock.Anything, mock.MatchedBy(func(d *application.FormDraft) bool {
		return d.UserID() == 100 && d.ApplicationID() != nil && *d.ApplicationID() == 42
	})).Return(nil)
	f.notifier.On("NotifyApplicantEditGranted", app).Return()

	draft, err := f.svc.GrantEdit(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, vo.StepPolicy, draft.Step())
	assert.Equal(t, vo.StatusPending, app.Status())
	assert.Equal(t, 1, app.EditCount())
	f.media.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
}

func TestService_GrantEdit_LimitReached(t *testing.T) {
	f := newReviewFixture()
	app := pendingApplication(t, 42, vo.PlatformJava)
	for i := 0; i < application.MaxEditCount; i++ {
		require.NoError(t, app.GrantEdit())
	}

	f.apps.On("GetByID", mock.Anything, uint(42)).Return(app, nil)

	_, err := f.svc.GrantEdit(context.Background(), 42)

	require.True(t, apperrors.IsConflictError(err))
	assert.Equal(t, "edit limit reached", apperrors.GetAppError(err).Message)
	f.drafts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "NotifyApplicantEditGranted", mock.Anything)
}

func TestService_RequestEdit_OwnerOpensDraft(t *testing.T) {
	f := newReviewFixture()
	app := pendingApplication(t, 42, vo.PlatformJava)
	require.NoError(t, app.Reject("fix the age answer"))

	f.apps.On("GetByID", mock.Anything, uint(42)).Return(app, nil)
	f.apps.On("Update", mock.Anything, app).Return(nil)
	f.media.On("DeleteByApplicationID", mock.Anything, uint(42)).Return(nil)
	f.drafts.On("Save", mock.Anything, mock.MatchedBy(func(d *application.FormDraft) bool {
		return d.UserID() == 100 && d.ApplicationID() != nil && *d.ApplicationID() == 42
	})).Return(nil)
	f.notifier.On("NotifyApplicantEditGranted", app).Return()

	draft, err := f.svc.RequestEdit(context.Background(), 42, 100)

	require.NoError(t, err)
	assert.Equal(t, vo.StepPolicy, draft.Step())
	assert.Equal(t, 1, app.EditCount())
	f.notifier.AssertExpectations(t)
}

func TestService_RequestEdit_ForeignUserForbidden(t *testing.T) {
	f := newReviewFixture()
	app := pendingApplication(t, 42, vo.PlatformJava)
	require.NoError(t, app.Reject("fix the age answer"))

	f.apps.On("GetByID", mock.Anything, uint(42)).Return(app, nil)

	_, err := f.svc.RequestEdit(context.Background(), 42, 666)

	require.True(t, apperrors.IsForbiddenError(err))
	assert.Equal(t, 0, app.EditCount())
	assert.Equal(t, vo.StatusRejected, app.Status())
	f.apps.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.media.AssertNotCalled(t, "DeleteByApplicationID", mock.Anything, mock.Anything)
	f.drafts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "NotifyApplicantEditGranted", mock.Anything)
}

func TestService_GrantEdit_TransactionFailureSkipsNotification(t *testing.T) {
	f := newReviewFixture()
	app := pendingApplication(t, 42, vo.PlatformJava)
	require.NoError(t, app.Reject("needs work"))
	f.tm.err = errors.New("database is locked")

	f.apps.On("GetByID", mock.Anything, uint(42)).Return(app, nil)

	_, err := f.svc.GrantEdit(context.Background(), 42)

	assert.Error(t, err)
	f.notifier.AssertNotCalled(t, "NotifyApplicantEditGranted", mock.Anything)
}

func TestService_ListByStatus_AssemblesSummaries(t *testing.T) {
	f := newReviewFixture()
	first := pendingApplication(t, 1, vo.PlatformJava)
	second := pendingApplication(t, 2, vo.PlatformBoth)

	f.apps.On("ListByStatus", mock.Anything, vo.StatusPending).
		Return([]*application.Application{first, second}, nil)
	f.media.On("CountByApplicationID", mock.Anything, uint(1)).Return(int64(2), nil)
	f.media.On("CountByApplicationID", mock.Anything, uint(2)).Return(int64(0), nil)
	f.users.On("GetByID", mock.Anything, int64(100)).Return(nil, errors.New("not found"))

	summaries, err := f.svc.ListByStatus(context.Background(), vo.StatusPending)

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, int64(2), summaries[0].MediaCount)
	assert.Equal(t, "user-100", summaries[0].DisplayName, "a missing user row falls back to a synthetic name")
}

func TestService_ListByStatus_InvalidStatus(t *testing.T) {
	f := newReviewFixture()

	_, err := f.svc.ListByStatus(context.Background(), vo.ApplicationStatus("archived"))

	assert.True(t, apperrors.IsValidationError(err))
	f.apps.AssertNotCalled(t, "ListByStatus", mock.Anything, mock.Anything)
}
