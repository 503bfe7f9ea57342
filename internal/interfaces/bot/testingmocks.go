package bot

import (
	"context"

	"github.com/stretchr/testify/mock"

	"minegate/internal/application/review"
	"minegate/internal/domain/application"
	appvo "minegate/internal/domain/application/valueobjects"
	"minegate/internal/domain/ticket"
	ticketvo "minegate/internal/domain/ticket/valueobjects"
	"minegate/internal/shared/logger"
)

type mockMessenger struct {
	mock.Mock
}

func (m *mockMessenger) SendMessage(chatID int64, text string) (int64, error) {
	args := m.Called(chatID, text)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMessenger) SendMessageWithKeyboard(chatID int64, text string, keyboard any) (int64, error) {
	args := m.Called(chatID, text, keyboard)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMessenger) SendPhoto(chatID int64, fileID, caption string) (int64, error) {
	args := m.Called(chatID, fileID, caption)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMessenger) SendVideo(chatID int64, fileID, caption string) (int64, error) {
	args := m.Called(chatID, fileID, caption)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMessenger) SendDocument(chatID int64, fileID, caption string) (int64, error) {
	args := m.Called(chatID, fileID, caption)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMessenger) SendSticker(chatID int64, fileID string) (int64, error) {
	args := m.Called(chatID, fileID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMessenger) DeleteMessage(chatID int64, messageID int64) error {
	args := m.Called(chatID, messageID)
	return args.Error(0)
}

func (m *mockMessenger) AnswerCallbackQuery(callbackQueryID string, text string, showAlert bool) error {
	args := m.Called(callbackQueryID, text, showAlert)
	return args.Error(0)
}

func (m *mockMessenger) GetStartLink(payload string) string {
	args := m.Called(payload)
	return args.String(0)
}

type mockFormEngine struct {
	mock.Mock
}

func (m *mockFormEngine) Start(ctx context.Context, userID int64, displayName string) (*application.FormDraft, error) {
	args := m.Called(ctx, userID, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.FormDraft), args.Error(1)
}

func (m *mockFormEngine) Active(ctx context.Context, userID int64) (*application.Application, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.Application), args.Error(1)
}

func (m *mockFormEngine) Resume(ctx context.Context, userID int64) (*application.FormDraft, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.FormDraft), args.Error(1)
}

func (m *mockFormEngine) AcceptPolicy(ctx context.Context, userID int64) (*application.FormDraft, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.FormDraft), args.Error(1)
}

func (m *mockFormEngine) AnswerText(ctx context.Context, userID int64, text string) (*application.FormDraft, error) {
	args := m.Called(ctx, userID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.FormDraft), args.Error(1)
}

func (m *mockFormEngine) ChoosePlatform(ctx context.Context, userID int64, platform appvo.Platform) (*application.FormDraft, error) {
	args := m.Called(ctx, userID, platform)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.FormDraft), args.Error(1)
}

func (m *mockFormEngine) AttachMedia(ctx context.Context, userID int64, fileID string, kind appvo.MediaKind) (*application.FormDraft, error) {
	args := m.Called(ctx, userID, fileID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.FormDraft), args.Error(1)
}

func (m *mockFormEngine) ContinueUploads(ctx context.Context, userID int64) (*application.FormDraft, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.FormDraft), args.Error(1)
}

func (m *mockFormEngine) Back(ctx context.Context, userID int64) (*application.FormDraft, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.FormDraft), args.Error(1)
}

func (m *mockFormEngine) Cancel(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockFormEngine) Submit(ctx context.Context, userID int64) (*application.Application, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.Application), args.Error(1)
}

type mockReviewEngine struct {
	mock.Mock
}

func (m *mockReviewEngine) Approve(ctx context.Context, applicationID uint) (*review.ApproveResult, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.ApproveResult), args.Error(1)
}

func (m *mockReviewEngine) Reject(ctx context.Context, applicationID uint, comment string) (*application.Application, error) {
	args := m.Called(ctx, applicationID, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.Application), args.Error(1)
}

func (m *mockReviewEngine) Comment(ctx context.Context, applicationID uint, text string) (*application.Application, error) {
	args := m.Called(ctx, applicationID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.Application), args.Error(1)
}

func (m *mockReviewEngine) Delete(ctx context.Context, applicationID uint) error {
	args := m.Called(ctx, applicationID)
	return args.Error(0)
}

func (m *mockReviewEngine) GrantEdit(ctx context.Context, applicationID uint) (*application.FormDraft, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.FormDraft), args.Error(1)
}

func (m *mockReviewEngine) RequestEdit(ctx context.Context, applicationID uint, userID int64) (*application.FormDraft, error) {
	args := m.Called(ctx, applicationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.FormDraft), args.Error(1)
}

func (m *mockReviewEngine) ListByStatus(ctx context.Context, status appvo.ApplicationStatus) ([]*review.Summary, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*review.Summary), args.Error(1)
}

func (m *mockReviewEngine) Detail(ctx context.Context, applicationID uint) (*review.Detail, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Detail), args.Error(1)
}

type mockSupportEngine struct {
	mock.Mock
}

func (m *mockSupportEngine) Open(ctx context.Context, userID int64, displayName string) (*ticket.Ticket, bool, error) {
	args := m.Called(ctx, userID, displayName)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*ticket.Ticket), args.Bool(1), args.Error(2)
}

func (m *mockSupportEngine) ForceOpen(ctx context.Context, userID int64) (*ticket.Ticket, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ticket), args.Error(1)
}

func (m *mockSupportEngine) Get(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ticket), args.Error(1)
}

func (m *mockSupportEngine) SendUserMessage(ctx context.Context, ticketID uint, senderID int64, displayName string, kind ticketvo.MessageKind, content string) error {
	args := m.Called(ctx, ticketID, senderID, displayName, kind, content)
	return args.Error(0)
}

func (m *mockSupportEngine) SendAdminMessage(ctx context.Context, ticketID uint, adminID int64, displayName string, kind ticketvo.MessageKind, content string) error {
	args := m.Called(ctx, ticketID, adminID, displayName, kind, content)
	return args.Error(0)
}

func (m *mockSupportEngine) Claim(ctx context.Context, ticketID uint, adminID int64) (*ticket.Ticket, error) {
	args := m.Called(ctx, ticketID, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ticket), args.Error(1)
}

func (m *mockSupportEngine) Transcript(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ticket.Message), args.Error(1)
}

func (m *mockSupportEngine) CloseByUser(ctx context.Context, ticketID uint, userID int64) (*ticket.Ticket, error) {
	args := m.Called(ctx, ticketID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ticket), args.Error(1)
}

func (m *mockSupportEngine) CloseByAdmin(ctx context.Context, ticketID uint, adminID int64) (*ticket.Ticket, error) {
	args := m.Called(ctx, ticketID, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ticket), args.Error(1)
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
