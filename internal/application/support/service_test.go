package support

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"minegate/internal/domain/ticket"
	vo "minegate/internal/domain/ticket/valueobjects"
	apperrors "minegate/internal/shared/errors"
)

var testAdminIDs = []int64{900, 901}

type supportFixture struct {
	tickets  *mockTicketRepository
	messages *mockMessageRepository
	users    *mockUserRepository
	notifier *mockNotifier
	svc      *Service
}

func newSupportFixture() *supportFixture {
	f := &supportFixture{
		tickets:  new(mockTicketRepository),
		messages: new(mockMessageRepository),
		users:    new(mockUserRepository),
		notifier: new(mockNotifier),
	}
	f.svc = NewService(f.tickets, f.messages, f.users, f.notifier, testAdminIDs, newNopLogger())
	return f
}

func openTicket(t *testing.T, id uint, userID int64) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(userID)
	require.NoError(t, err)
	require.NoError(t, tk.SetID(id))
	return tk
}

func claimedTicket(t *testing.T, id uint, userID, adminID int64) *ticket.Ticket {
	t.Helper()
	tk := openTicket(t, id, userID)
	require.NoError(t, tk.Claim(adminID))
	return tk
}

func TestService_Open_ReturnsExistingOpenTicket(t *testing.T) {
	f := newSupportFixture()
	existing := openTicket(t, 7, 100)

	f.users.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	f.tickets.On("GetOpenByUserID", mock.Anything, int64(100)).Return(existing, nil)

	tk, wasExisting, err := f.svc.Open(context.Background(), 100, "alex")

	require.NoError(t, err)
	assert.True(t, wasExisting)
	assert.Same(t, existing, tk)
	f.tickets.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_Open_CreatesWhenNoneOpen(t *testing.T) {
	f := newSupportFixture()

	f.users.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	f.tickets.On("GetOpenByUserID", mock.Anything, int64(100)).Return(nil, nil)
	f.tickets.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		tk := args.Get(1).(*ticket.Ticket)
		require.NoError(t, tk.SetID(8))
	}).Return(nil)

	tk, wasExisting, err := f.svc.Open(context.Background(), 100, "alex")

	require.NoError(t, err)
	assert.False(t, wasExisting)
	assert.Equal(t, uint(8), tk.ID())
	assert.True(t, tk.IsOpen())
}

func TestService_ForceOpen_IgnoresExistingTicket(t *testing.T) {
	f := newSupportFixture()
	f.tickets.On("Save", mock.Anything, mock.Anything).Return(nil)

	tk, err := f.svc.ForceOpen(context.Background(), 100)

	require.NoError(t, err)
	assert.True(t, tk.IsOpen())
	f.tickets.AssertNotCalled(t, "GetOpenByUserID", mock.Anything, mock.Anything)
}

func TestService_SendUserMessage_BroadcastsWhenUnclaimed(t *testing.T) {
	f := newSupportFixture()
	tk := openTicket(t, 7, 100)

	f.tickets.On("GetByID", mock.Anything, uint(7)).Return(tk, nil)
	f.messages.On("Append", mock.Anything, mock.MatchedBy(func(m *ticket.Message) bool {
		return m.Role() == vo.RoleUser && m.Content() == "the server is down"
	})).Return(nil)
	f.notifier.On("BroadcastToAdmins", testAdminIDs, tk, mock.Anything).Return()

	err := f.svc.SendUserMessage(context.Background(), 7, 100, "alex", vo.KindText, "the server is down")

	require.NoError(t, err)
	f.notifier.AssertExpectations(t)
	f.notifier.AssertNotCalled(t, "RelayToAdmin", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_SendUserMessage_RelaysToAssignedAdminOnly(t *testing.T) {
	f := newSupportFixture()
	tk := claimedTicket(t, 7, 100, 900)

	f.tickets.On("GetByID", mock.Anything, uint(7)).Return(tk, nil)
	f.messages.On("Append", mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("RelayToAdmin", int64(900), tk, mock.Anything).Return()

	err := f.svc.SendUserMessage(context.Background(), 7, 100, "alex", vo.KindText, "still broken")

	require.NoError(t, err)
	f.notifier.AssertNotCalled(t, "BroadcastToAdmins", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_SendUserMessage_PersistFailureSkipsRelay(t *testing.T) {
	f := newSupportFixture()
	tk := openTicket(t, 7, 100)

	f.tickets.On("GetByID", mock.Anything, uint(7)).Return(tk, nil)
	f.messages.On("Append", mock.Anything, mock.Anything).Return(errors.New("database is locked"))

	err := f.svc.SendUserMessage(context.Background(), 7, 100, "alex", vo.KindText, "hello")

	assert.Error(t, err)
	f.notifier.AssertNotCalled(t, "BroadcastToAdmins", mock.Anything, mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "RelayToAdmin", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_SendUserMessage_WrongOwnerForbidden(t *testing.T) {
	f := newSupportFixture()
	tk := openTicket(t, 7, 100)

	f.tickets.On("GetByID", mock.Anything, uint(7)).Return(tk, nil)

	err := f.svc.SendUserMessage(context.Background(), 7, 200, "eve", vo.KindText, "hi")

	assert.True(t, apperrors.IsForbiddenError(err))
	f.messages.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestService_SendUserMessage_ClosedTicketRejected(t *testing.T) {
	f := newSupportFixture()
	tk := openTicket(t, 7, 100)
	require.NoError(t, tk.Close())

	f.tickets.On("GetByID", mock.Anything, uint(7)).Return(tk, nil)

	err := f.svc.SendUserMessage(context.Background(), 7, 100, "alex", vo.KindText, "hi")

	require.True(t, apperrors.IsConflictError(err))
	assert.Equal(t, "ticket not open", apperrors.GetAppError(err).Message)
	f.messages.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestService_SendAdminMessage_RequiresAssignment(t *testing.T) {
	f := newSupportFixture()
	tk := claimedTicket(t, 7, 100, 900)

	f.tickets.On("GetByID", mock.Anything, uint(7)).Return(tk, nil)

	err := f.svc.SendAdminMessage(context.Background(), 7, 901, "second admin", vo.KindText, "let me help")

	assert.True(t, apperrors.IsForbiddenError(err))
	f.messages.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestService_SendAdminMessage_AssigneeReachesUser(t *testing.T) {
	f := newSupportFixture()
	tk := claimedTicket(t, 7, 100, 900)

	f.tickets.On("GetByID", mock.Anything, uint(7)).Return(tk, nil)
	f.messages.On("Append", mock.Anything, mock.MatchedBy(func(m *ticket.Message) bool {
		return m.Role() == vo.RoleAdmin && m.SenderID() == 900
	})).Return(nil)
	f.notifier.On("RelayToUser", int64(100), tk, mock.Anything).Return()

	err := f.svc.SendAdminMessage(context.Background(), 7, 900, "admin", vo.KindText, "restarting now")

	require.NoError(t, err)
	f.notifier.AssertExpectations(t)
}

func TestService_SendAdminMessage_NonAdminForbidden(t *testing.T) {
	f := newSupportFixture()

	err := f.svc.SendAdminMessage(context.Background(), 7, 555, "stranger", vo.KindText, "hi")

	assert.True(t, apperrors.IsForbiddenError(err))
	f.tickets.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_Claim_LastClaimWins(t *testing.T) {
	f := newSupportFixture()
	tk := claimedTicket(t, 7, 100, 900)

	f.tickets.On("GetByID", mock.Anything, uint(7)).Return(tk, nil)
	f.tickets.On("Update", mock.Anything, tk).Return(nil)

	claimed, err := f.svc.Claim(context.Background(), 7, 901)

	require.NoError(t, err)
	require.NotNil(t, claimed.AssignedAdminID())
	assert.Equal(t, int64(901), *claimed.AssignedAdminID())
}

func TestService_Claim_ClosedTicketRejected(t *testing.T) {
	f := newSupportFixture()
	tk := openTicket(t, 7, 100)
	require.NoError(t, tk.Close())

	f.tickets.On("GetByID", mock.Anything, uint(7)).Return(tk, nil)

	_, err := f.svc.Claim(context.Background(), 7, 900)

	assert.True(t, apperrors.IsConflictError(err))
	f.tickets.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Claim_NonAdminForbidden(t *testing.T) {
	f := newSupportFixture()

	_, err := f.svc.Claim(context.Background(), 7, 555)

	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestService_CloseByUser_NotifiesAssignedAdmin(t *testing.T) {
	f := newSupportFixture()
	tk := claimedTicket(t, 7, 100, 900)

	f.tickets.On("GetByID", mock.Anything, uint(7)).Return(tk, nil)
	f.tickets.On("Update", mock.Anything, tk).Return(nil)
	f.notifier.On("NotifyTicketClosed", int64(900), tk, false).Return()

	closed, err := f.svc.CloseByUser(context.Background(), 7, 100)

	require.NoError(t, err)
	assert.False(t, closed.IsOpen())
	f.notifier.AssertExpectations(t)
}

func TestService_CloseByUser_UnassignedNotifiesNobody(t *testing.T) {
	f := newSupportFixture()
	tk := openTicket(t, 7, 100)

	f.tickets.On("GetByID", mock.Anything, uint(7)).Return(tk, nil)
	f.tickets.On("Update", mock.Anything, tk).Return(nil)

	_, err := f.svc.CloseByUser(context.Background(), 7, 100)

	require.NoError(t, err)
	f.notifier.AssertNotCalled(t, "NotifyTicketClosed", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CloseByUser_WrongOwnerForbidden(t *testing.T) {
	f := newSupportFixture()
	tk := openTicket(t, 7, 100)

	f.tickets.On("GetByID", mock.Anything, uint(7)).Return(tk, nil)

	_, err := f.svc.CloseByUser(context.Background(), 7, 200)

	assert.True(t, apperrors.IsForbiddenError(err))
	f.tickets.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_CloseByAdmin_OnlyAssigneeMayClose(t *testing.T) {
	f := newSupportFixture()
	tk := claimedTicket(t, 7, 100, 900)

	f.tickets.On("GetByID", mock.Anything, uint(7)).Return(tk, nil)

	_, err := f.svc.CloseByAdmin(context.Background(), 7, 901)

	assert.True(t, apperrors.IsForbiddenError(err))
	assert.True(t, tk.IsOpen())
}

func TestService_CloseByAdmin_NotifiesUserAndPool(t *testing.T) {
	f := newSupportFixture()
	tk := claimedTicket(t, 7, 100, 900)

	f.tickets.On("GetByID", mock.Anything, uint(7)).Return(tk, nil)
	f.tickets.On("Update", mock.Anything, tk).Return(nil)
	f.notifier.On("NotifyTicketClosed", int64(100), tk, true).Return()
	f.notifier.On("NotifyTicketClosed", int64(901), tk, true).Return()

	closed, err := f.svc.CloseByAdmin(context.Background(), 7, 900)

	require.NoError(t, err)
	assert.False(t, closed.IsOpen())
	f.notifier.AssertExpectations(t)
	f.notifier.AssertNotCalled(t, "NotifyTicketClosed", int64(900), tk, true)
}

func TestService_CloseByAdmin_AlreadyClosedConflict(t *testing.T) {
	f := newSupportFixture()
	tk := claimedTicket(t, 7, 100, 900)
	require.NoError(t, tk.Close())

	f.tickets.On("GetByID", mock.Anything, uint(7)).Return(tk, nil)

	_, err := f.svc.CloseByAdmin(context.Background(), 7, 900)

	assert.True(t, apperrors.IsConflictError(err))
	f.notifier.AssertNotCalled(t, "NotifyTicketClosed", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Transcript_ReturnsPersistedLog(t *testing.T) {
	f := newSupportFixture()
	tk := claimedTicket(t, 7, 100, 900)
	first, err := ticket.NewMessage(7, 100, vo.RoleUser, vo.KindText, "help", "alex")
	require.NoError(t, err)
	second, err := ticket.NewMessage(7, 900, vo.RoleAdmin, vo.KindText, "on it", "admin")
	require.NoError(t, err)

	f.tickets.On("GetByID", mock.Anything, uint(7)).Return(tk, nil)
	f.messages.On("ListByTicketID", mock.Anything, uint(7)).
		Return([]*ticket.Message{first, second}, nil)

	log, err := f.svc.Transcript(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, log, 2)
	assert.Equal(t, vo.RoleUser, log[0].Role())
	assert.Equal(t, vo.RoleAdmin, log[1].Role())
}
