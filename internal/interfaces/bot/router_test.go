package bot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"minegate/internal/domain/ticket"
	apperrors "minegate/internal/shared/errors"
)

type routerFixture struct {
	form      *mockFormEngine
	review    *mockReviewEngine
	support   *mockSupportEngine
	messenger *mockMessenger
	sessions  *SessionStore
	router    *Router
}

func newRouterFixture(adminID int64) *routerFixture {
	f := &routerFixture{
		form:      new(mockFormEngine),
		review:    new(mockReviewEngine),
		support:   new(mockSupportEngine),
		messenger: new(mockMessenger),
		sessions:  NewSessionStore(),
	}
	f.router = NewRouter(f.form, f.review, f.support, f.sessions, f.messenger, allowAdmin(adminID), newNopLogger())
	f.messenger.On("AnswerCallbackQuery", mock.Anything, "", false).Return(nil).Maybe()
	return f
}

func claimedTestTicket(t *testing.T, id uint, userID, adminID int64) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(userID)
	require.NoError(t, err)
	require.NoError(t, tk.SetID(id))
	require.NoError(t, tk.Claim(adminID))
	return tk
}

func TestRouter_AdminCloseClearsChatSession(t *testing.T) {
	f := newRouterFixture(900)
	tk := claimedTestTicket(t, 7, 100, 900)
	f.sessions.Set(900, Session{Mode: ModeAdminChat, TicketID: 7})

	f.support.On("CloseByAdmin", mock.Anything, uint(7), int64(900)).Return(tk, nil)
	f.messenger.On("SendMessage", int64(900), mock.Anything).Return(int64(1), nil)

	require.NoError(t, f.router.HandleUpdate(context.Background(), callbackUpdate(900, "adm_close_7")))
	assert.Equal(t, ModeIdle, f.sessions.Get(900).Mode)

	// Chat text after the close must not reach the ticket anymore.
	f.form.On("Resume", mock.Anything, int64(900)).
		Return(nil, apperrors.NewNotFoundError("form draft not found"))
	f.messenger.On("SendMessageWithKeyboard", int64(900), msgUnknown, mock.Anything).Return(int64(2), nil)

	require.NoError(t, f.router.HandleUpdate(context.Background(), messageUpdate(900, "still there?")))
	f.support.AssertNotCalled(t, "SendAdminMessage",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_TicketCloseClearsChatSession(t *testing.T) {
	f := newRouterFixture(900)
	tk := claimedTestTicket(t, 7, 100, 900)
	f.sessions.Set(100, Session{Mode: ModeUserChat, TicketID: 7})

	f.support.On("CloseByUser", mock.Anything, uint(7), int64(100)).Return(tk, nil)
	f.messenger.On("SendMessageWithKeyboard", int64(100), mock.Anything, mock.Anything).Return(int64(1), nil)

	require.NoError(t, f.router.HandleUpdate(context.Background(), callbackUpdate(100, "ticket_close_7")))
	assert.Equal(t, ModeIdle, f.sessions.Get(100).Mode)

	f.form.On("Resume", mock.Anything, int64(100)).
		Return(nil, apperrors.NewNotFoundError("form draft not found"))
	f.messenger.On("DeleteMessage", int64(100), mock.Anything).Return(nil)

	require.NoError(t, f.router.HandleUpdate(context.Background(), messageUpdate(100, "one more thing")))
	f.support.AssertNotCalled(t, "SendUserMessage",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_AppEditPassesCallerIdentity(t *testing.T) {
	f := newRouterFixture(900)

	f.review.On("RequestEdit", mock.Anything, uint(42), int64(100)).Return(nil, nil)

	require.NoError(t, f.router.HandleUpdate(context.Background(), callbackUpdate(100, "app_edit_42")))
	f.review.AssertExpectations(t)
	f.review.AssertNotCalled(t, "GrantEdit", mock.Anything, mock.Anything)
}

func TestRouter_AppEditForeignUserRefused(t *testing.T) {
	f := newRouterFixture(900)

	f.review.On("RequestEdit", mock.Anything, uint(42), int64(666)).
		Return(nil, apperrors.NewForbiddenError("application belongs to another user"))
	f.messenger.On("SendMessage", int64(666), msgNoRights).Return(int64(1), nil)

	require.NoError(t, f.router.HandleUpdate(context.Background(), callbackUpdate(666, "app_edit_42")))
	f.messenger.AssertExpectations(t)
}

func TestRouter_KeyboardPromptReplacesPrevious(t *testing.T) {
	f := newRouterFixture(900)

	f.form.On("Active", mock.Anything, int64(100)).Return(nil, nil)
	f.messenger.On("SendMessageWithKeyboard", int64(100), msgWelcome, mock.Anything).
		Return(int64(10), nil).Once()

	require.NoError(t, f.router.HandleUpdate(context.Background(), messageUpdate(100, "/menu")))

	// The second menu deletes the first prompt so its buttons go stale.
	f.messenger.On("DeleteMessage", int64(100), int64(10)).Return(nil).Once()
	f.messenger.On("SendMessageWithKeyboard", int64(100), msgWelcome, mock.Anything).
		Return(int64(11), nil).Once()

	require.NoError(t, f.router.HandleUpdate(context.Background(), messageUpdate(100, "/menu")))
	f.messenger.AssertExpectations(t)
}

func TestRouter_ErrorFallbackCarriesMenuKeyboard(t *testing.T) {
	f := newRouterFixture(900)

	f.form.On("Resume", mock.Anything, int64(100)).Return(nil, errors.New("database is locked"))
	f.messenger.On("SendMessageWithKeyboard", int64(100), msgError, mock.Anything).Return(int64(1), nil)

	require.NoError(t, f.router.HandleUpdate(context.Background(), messageUpdate(100, "hello")))
	f.messenger.AssertExpectations(t)
	f.messenger.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
}

func TestRouter_UnknownInputFallbackCarriesMenuKeyboard(t *testing.T) {
	f := newRouterFixture(900)

	f.form.On("Resume", mock.Anything, int64(100)).
		Return(nil, apperrors.NewNotFoundError("form draft not found"))
	f.messenger.On("SendMessageWithKeyboard", int64(100), msgUnknown, mock.Anything).Return(int64(1), nil)

	require.NoError(t, f.router.HandleUpdate(context.Background(), messageUpdate(100, "hello")))
	f.messenger.AssertExpectations(t)
	f.messenger.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
}
