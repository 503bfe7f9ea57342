package form

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"minegate/internal/domain/application"
	vo "minegate/internal/domain/application/valueobjects"
	"minegate/internal/domain/user"
	apperrors "minegate/internal/shared/errors"
)

type formFixture struct {
	users    *mockUserRepository
	drafts   *mockDraftRepository
	apps     *mockApplicationRepository
	media    *mockMediaRepository
	tm       *stubTxManager
	roster   *mockRosterWriter
	notifier *mockNotifier
	svc      *Service
}

func newFormFixture() *formFixture {
	f := &formFixture{
		users:    new(mockUserRepository),
		drafts:   new(mockDraftRepository),
		apps:     new(mockApplicationRepository),
		media:    new(mockMediaRepository),
		tm:       &stubTxManager{},
		roster:   new(mockRosterWriter),
		notifier: new(mockNotifier),
	}
	f.svc = NewService(f.users, f.drafts, f.apps, f.media, f.tm, f.roster, f.notifier, newNopLogger())
	return f
}

// completedDraft walks a fresh draft through the whole form via the public
// API, leaving it at the review step with a full both-platforms profile.
func completedDraft(t *testing.T) *application.FormDraft {
	t.Helper()
	draft, err := application.NewFormDraft(100)
	require.NoError(t, err)

	answers := []struct {
		field vo.Field
		value string
	}{
		{vo.FieldPlayerName, "Alex"},
		{vo.FieldAge, "21"},
		{vo.FieldAbout, "builder"},
		{vo.FieldPlans, "build a town"},
		{vo.FieldCommunity, "respect"},
		{vo.FieldPlatform, vo.PlatformBoth.String()},
		{vo.FieldJavaNickname, "alex_java"},
		{vo.FieldBedrockNickname, "alex_bedrock"},
	}

	require.NoError(t, draft.Advance()) // past policy
	for _, a := range answers {
		require.NoError(t, draft.SetAnswer(a.field, a.value))
		require.NoError(t, draft.Advance())
	}

	// Now at the skin upload step.
	require.NoError(t, draft.AttachMedia("skin-file", vo.MediaKindPhoto))
	require.NoError(t, draft.Advance())
	require.NoError(t, draft.AttachMedia("project-file", vo.MediaKindDocument))
	require.NoError(t, draft.Advance())

	require.NoError(t, draft.SetAnswer(vo.FieldReferral, "a friend"))
	require.NoError(t, draft.Advance())

	require.Equal(t, vo.StepReview, draft.Step())
	return draft
}

func TestService_Start_CreatesDraftAtPolicy(t *testing.T) {
	f := newFormFixture()
	f.users.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	f.apps.On("GetActiveByUserID", mock.Anything, int64(100)).Return(nil, nil)
	f.drafts.On("Save", mock.Anything, mock.Anything).Return(nil)

	draft, err := f.svc.Start(context.Background(), 100, "alex")

	require.NoError(t, err)
	assert.Equal(t, vo.StepPolicy, draft.Step())
	f.drafts.AssertExpectations(t)
}

func TestService_Start_BlockedByActiveApplication(t *testing.T) {
	f := newFormFixture()
	active, err := application.NewApplication(100, application.Profile{
		PlayerName:   "Alex",
		Platform:     vo.PlatformJava,
		JavaNickname: "alex_java",
	})
	require.NoError(t, err)

	f.users.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	f.apps.On("GetActiveByUserID", mock.Anything, int64(100)).Return(active, nil)

	draft, err := f.svc.Start(context.Background(), 100, "alex")

	assert.Nil(t, draft)
	require.True(t, apperrors.IsConflictError(err))
	assert.Equal(t, "pending", apperrors.GetAppError(err).Details)
	f.drafts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_AnswerText_PersistsFieldBeforeAdvancing(t *testing.T) {
	f := newFormFixture()
	draft, err := application.NewFormDraft(100)
	require.NoError(t, err)
	require.NoError(t, draft.Advance()) // policy -> player name

	f.drafts.On("GetByUserID", mock.Anything, int64(100)).Return(draft, nil)
	f.drafts.On("UpdateField", mock.Anything, int64(100), vo.FieldPlayerName, "Alex").Return(nil)
	f.drafts.On("UpdateStep", mock.Anything, int64(100), vo.StepAge).Return(nil)

	updated, err := f.svc.AnswerText(context.Background(), 100, "Alex")

	require.NoError(t, err)
	assert.Equal(t, vo.StepAge, updated.Step())
	f.drafts.AssertExpectations(t)
}

func TestService_AnswerText_RejectsTextAtUploadStep(t *testing.T) {
	f := newFormFixture()
	draft := completedDraft(t)
	require.NoError(t, draft.Back()) // review -> referral
	require.NoError(t, draft.Back()) // referral -> project upload

	f.drafts.On("GetByUserID", mock.Anything, int64(100)).Return(draft, nil)

	_, err := f.svc.AnswerText(context.Background(), 100, "some text")

	require.True(t, apperrors.IsValidationError(err))
	assert.Contains(t, apperrors.GetAppError(err).Message, "attachments")
	f.drafts.AssertNotCalled(t, "UpdateField", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ChoosePlatform_RequiresPlatformStep(t *testing.T) {
	f := newFormFixture()
	draft, err := application.NewFormDraft(100)
	require.NoError(t, err)

	f.drafts.On("GetByUserID", mock.Anything, int64(100)).Return(draft, nil)

	_, err = f.svc.ChoosePlatform(context.Background(), 100, vo.PlatformJava)

	assert.True(t, apperrors.IsConflictError(err))
}

func TestService_AttachMedia_PersistsWithoutAdvancing(t *testing.T) {
	f := newFormFixture()
	draft := completedDraft(t)
	require.NoError(t, draft.Back()) // review -> referral
	require.NoError(t, draft.Back()) // referral -> project upload

	f.drafts.On("GetByUserID", mock.Anything, int64(100)).Return(draft, nil)
	f.drafts.On("AddMedia", mock.Anything, int64(100), mock.MatchedBy(func(m application.DraftMedia) bool {
		return m.FileID == "second-project" && m.Category == vo.CategoryProject
	})).Return(nil)

	updated, err := f.svc.AttachMedia(context.Background(), 100, "second-project", vo.MediaKindPhoto)

	require.NoError(t, err)
	assert.Equal(t, vo.StepProjectUpload, updated.Step(), "upload steps advance only on the continue signal")
	f.drafts.AssertExpectations(t)
}

func TestService_AttachMedia_RejectsOverCap(t *testing.T) {
	f := newFormFixture()
	draft := completedDraft(t)
	require.NoError(t, draft.Back())
	require.NoError(t, draft.Back())
	require.NoError(t, draft.Back()) // project upload -> skin upload
	require.NoError(t, draft.AttachMedia("skin-2", vo.MediaKindPhoto))

	f.drafts.On("GetByUserID", mock.Anything, int64(100)).Return(draft, nil)

	_, err := f.svc.AttachMedia(context.Background(), 100, "skin-3", vo.MediaKindPhoto)

	require.True(t, apperrors.IsValidationError(err))
	f.drafts.AssertNotCalled(t, "AddMedia", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Back_PersistsPreviousStep(t *testing.T) {
	f := newFormFixture()
	draft := completedDraft(t)

	f.drafts.On("GetByUserID", mock.Anything, int64(100)).Return(draft, nil)
	f.drafts.On("UpdateStep", mock.Anything, int64(100), vo.StepReferral).Return(nil)

	updated, err := f.svc.Back(context.Background(), 100)

	require.NoError(t, err)
	assert.Equal(t, vo.StepReferral, updated.Step())
	f.drafts.AssertExpectations(t)
}

func TestService_Cancel_DeletesDraft(t *testing.T) {
	f := newFormFixture()
	f.drafts.On("Delete", mock.Anything, int64(100)).Return(nil)

	require.NoError(t, f.svc.Cancel(context.Background(), 100))
	f.drafts.AssertExpectations(t)
}

func TestService_Submit_MaterializesApplicationTransactionally(t *testing.T) {
	f := newFormFixture()
	draft := completedDraft(t)
	owner, err := user.NewUser(100, "alex")
	require.NoError(t, err)

	f.drafts.On("GetByUserID", mock.Anything, int64(100)).Return(draft, nil)
	f.apps.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		app := args.Get(1).(*application.Application)
		require.NoError(t, app.SetID(42))
	}).Return(nil)
	f.media.On("Save", mock.Anything, mock.Anything).Return(nil).Twice()
	f.drafts.On("Delete", mock.Anything, int64(100)).Return(nil)
	f.users.On("GetByID", mock.Anything, int64(100)).Return(owner, nil)
	f.roster.On("AppendLine", "alex", "both", "alex_java", "alex_bedrock").Return(nil)
	f.notifier.On("NotifyAdminsNewApplication", mock.Anything, "alex").Return()

	app, err := f.svc.Submit(context.Background(), 100)

	require.NoError(t, err)
	assert.Equal(t, uint(42), app.ID())
	assert.Equal(t, vo.StatusPending, app.Status())
	f.apps.AssertExpectations(t)
	f.media.AssertExpectations(t)
	f.roster.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
}

func TestService_Submit_ResubmissionOverwritesExisting(t *testing.T) {
	f := newFormFixture()
	existing, err := application.NewApplication(100, application.Profile{
		PlayerName:   "Old Name",
		Platform:     vo.PlatformJava,
		JavaNickname: "old_nick",
	})
	require.NoError(t, err)
	require.NoError(t, existing.SetID(42))

	resub, err := application.NewResubmissionDraft(100, 42)
	require.NoError(t, err)
	walkToReview(t, resub)

	owner, err := user.NewUser(100, "alex")
	require.NoError(t, err)

	f.drafts.On("GetByUserID", mock.Anything, int64(100)).Return(resub, nil)
	f.apps.On("GetByID", mock.Anything, uint(42)).Return(existing, nil)
	f.apps.On("Update", mock.Anything, existing).Return(nil)
	f.media.On("Save", mock.Anything, mock.Anything).Return(nil)
	f.drafts.On("Delete", mock.Anything, int64(100)).Return(nil)
	f.users.On("GetByID", mock.Anything, int64(100)).Return(owner, nil)
	f.roster.On("AppendLine", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("NotifyAdminsNewApplication", mock.Anything, "alex").Return()

	app, err := f.svc.Submit(context.Background(), 100)

	require.NoError(t, err)
	assert.Equal(t, uint(42), app.ID())
	assert.Equal(t, "Alex", app.PlayerName(), "profile must be overwritten")
	f.apps.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_Submit_IncompleteDraftRejected(t *testing.T) {
	f := newFormFixture()
	draft, err := application.NewFormDraft(100)
	require.NoError(t, err)

	f.drafts.On("GetByUserID", mock.Anything, int64(100)).Return(draft, nil)

	_, err = f.svc.Submit(context.Background(), 100)

	assert.True(t, apperrors.IsValidationError(err))
	f.apps.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_Submit_TransactionFailureSkipsSideEffects(t *testing.T) {
	f := newFormFixture()
	draft := completedDraft(t)
	f.tm.err = errors.New("database is locked")

	f.drafts.On("GetByUserID", mock.Anything, int64(100)).Return(draft, nil)

	_, err := f.svc.Submit(context.Background(), 100)

	assert.Error(t, err)
	f.roster.AssertNotCalled(t, "AppendLine", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "NotifyAdminsNewApplication", mock.Anything, mock.Anything)
}

func TestService_Submit_RosterFailureIsNotFatal(t *testing.T) {
	f := newFormFixture()
	draft := completedDraft(t)
	owner, err := user.NewUser(100, "alex")
	require.NoError(t, err)

	f.drafts.On("GetByUserID", mock.Anything, int64(100)).Return(draft, nil)
	f.apps.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		app := args.Get(1).(*application.Application)
		require.NoError(t, app.SetID(42))
	}).Return(nil)
	f.media.On("Save", mock.Anything, mock.Anything).Return(nil)
	f.drafts.On("Delete", mock.Anything, int64(100)).Return(nil)
	f.users.On("GetByID", mock.Anything, int64(100)).Return(owner, nil)
	f.roster.On("AppendLine", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("disk full"))
	f.notifier.On("NotifyAdminsNewApplication", mock.Anything, "alex").Return()

	_, err = f.svc.Submit(context.Background(), 100)

	assert.NoError(t, err, "a failed roster append must not fail the submission")
	f.notifier.AssertExpectations(t)
}

// walkToReview fills a draft through the public API up to the review step
// without attachments.
func walkToReview(t *testing.T, draft *application.FormDraft) {
	t.Helper()
	require.NoError(t, draft.Advance())
	answers := []struct {
		field vo.Field
		value string
	}{
		{vo.FieldPlayerName, "Alex"},
		{vo.FieldAge, "21"},
		{vo.FieldAbout, "builder"},
		{vo.FieldPlans, "build a town"},
		{vo.FieldCommunity, "respect"},
		{vo.FieldPlatform, vo.PlatformJava.String()},
		{vo.FieldJavaNickname, "alex_java"},
	}
	for _, a := range answers {
		require.NoError(t, draft.SetAnswer(a.field, a.value))
		require.NoError(t, draft.Advance())
	}
	require.NoError(t, draft.Advance()) // past skin upload
	require.NoError(t, draft.AttachMedia("project-file", vo.MediaKindPhoto))
	require.NoError(t, draft.Advance())
	require.NoError(t, draft.SetAnswer(vo.FieldReferral, "a friend"))
	require.NoError(t, draft.Advance())
	require.Equal(t, vo.StepReview, draft.Step())
}
