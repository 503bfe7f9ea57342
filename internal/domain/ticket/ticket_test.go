package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "minegate/internal/domain/ticket/valueobjects"
)

func TestNewTicket_OpenAndUnassigned(t *testing.T) {
	tk, err := NewTicket(100)
	require.NoError(t, err)
	assert.True(t, tk.IsOpen())
	assert.False(t, tk.IsAssigned())
	assert.Nil(t, tk.ClosedAt())
}

func TestTicket_ClaimLastWins(t *testing.T) {
	tk, err := NewTicket(100)
	require.NoError(t, err)

	require.NoError(t, tk.Claim(555))
	assert.True(t, tk.IsAssignedTo(555))

	require.NoError(t, tk.Claim(777), "a later claim reassigns the ticket")
	assert.True(t, tk.IsAssignedTo(777))
	assert.False(t, tk.IsAssignedTo(555))
}

func TestTicket_ClaimRequiresOpen(t *testing.T) {
	tk, err := NewTicket(100)
	require.NoError(t, err)
	require.NoError(t, tk.Close())

	assert.Error(t, tk.Claim(555))
}

func TestTicket_CloseIsTerminal(t *testing.T) {
	tk, err := NewTicket(100)
	require.NoError(t, err)

	require.NoError(t, tk.Close())
	assert.Equal(t, vo.StatusClosed, tk.Status())
	assert.NotNil(t, tk.ClosedAt())

	assert.Error(t, tk.Close(), "closing twice must be rejected")
}

func TestNewMessage_Validation(t *testing.T) {
	tests := []struct {
		name    string
		ticket  uint
		sender  int64
		role    vo.SenderRole
		kind    vo.MessageKind
		content string
		wantErr bool
	}{
		{"text from user", 1, 100, vo.RoleUser, vo.KindText, "hello", false},
		{"sticker from admin", 1, 555, vo.RoleAdmin, vo.KindSticker, "file-id", false},
		{"missing ticket", 0, 100, vo.RoleUser, vo.KindText, "hello", true},
		{"unsupported kind", 1, 100, vo.RoleUser, "voice", "file-id", true},
		{"empty content", 1, 100, vo.RoleUser, vo.KindText, "", true},
		{"invalid role", 1, 100, "bot", vo.KindText, "hello", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMessage(tt.ticket, tt.sender, tt.role, tt.kind, tt.content, "name")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.content, m.Content())
		})
	}
}

func TestMessage_SenderNameIsSnapshot(t *testing.T) {
	m, err := NewMessage(1, 100, vo.RoleUser, vo.KindText, "hello", "old_name")
	require.NoError(t, err)
	assert.Equal(t, "old_name", m.SenderName())
}
