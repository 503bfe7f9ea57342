package bot

import (
	"context"

	"minegate/internal/application/review"
	"minegate/internal/domain/application"
	appvo "minegate/internal/domain/application/valueobjects"
	"minegate/internal/domain/ticket"
	ticketvo "minegate/internal/domain/ticket/valueobjects"
)

// Messenger is the outbound Telegram surface used by the router and the
// notifier. *telegram.BotService satisfies it.
type Messenger interface {
	SendMessage(chatID int64, text string) (int64, error)
	SendMessageWithKeyboard(chatID int64, text string, keyboard any) (int64, error)
	SendPhoto(chatID int64, fileID, caption string) (int64, error)
	SendVideo(chatID int64, fileID, caption string) (int64, error)
	SendDocument(chatID int64, fileID, caption string) (int64, error)
	SendSticker(chatID int64, fileID string) (int64, error)
	DeleteMessage(chatID int64, messageID int64) error
	AnswerCallbackQuery(callbackQueryID string, text string, showAlert bool) error
	GetStartLink(payload string) string
}

// FormEngine is the slice of the intake service the router drives.
// *form.Service satisfies it.
type FormEngine interface {
	Start(ctx context.Context, userID int64, displayName string) (*application.FormDraft, error)
	Active(ctx context.Context, userID int64) (*application.Application, error)
	Resume(ctx context.Context, userID int64) (*application.FormDraft, error)
	AcceptPolicy(ctx context.Context, userID int64) (*application.FormDraft, error)
	AnswerText(ctx context.Context, userID int64, text string) (*application.FormDraft, error)
	ChoosePlatform(ctx context.Context, userID int64, platform appvo.Platform) (*application.FormDraft, error)
	AttachMedia(ctx context.Context, userID int64, fileID string, kind appvo.MediaKind) (*application.FormDraft, error)
	ContinueUploads(ctx context.Context, userID int64) (*application.FormDraft, error)
	Back(ctx context.Context, userID int64) (*application.FormDraft, error)
	Cancel(ctx context.Context, userID int64) error
	Submit(ctx context.Context, userID int64) (*application.Application, error)
}

// ReviewEngine is the slice of the review service the router drives.
// *review.Service satisfies it.
type ReviewEngine interface {
	Approve(ctx context.Context, applicationID uint) (*review.ApproveResult, error)
	Reject(ctx context.Context, applicationID uint, comment string) (*application.Application, error)
	Comment(ctx context.Context, applicationID uint, text string) (*application.Application, error)
	Delete(ctx context.Context, applicationID uint) error
	GrantEdit(ctx context.Context, applicationID uint) (*application.FormDraft, error)
	RequestEdit(ctx context.Context, applicationID uint, userID int64) (*application.FormDraft, error)
	ListByStatus(ctx context.Context, status appvo.ApplicationStatus) ([]*review.Summary, error)
	Detail(ctx context.Context, applicationID uint) (*review.Detail, error)
}

// SupportEngine is the slice of the ticket service the router drives.
// *support.Service satisfies it.
type SupportEngine interface {
	Open(ctx context.Context, userID int64, displayName string) (*ticket.Ticket, bool, error)
	ForceOpen(ctx context.Context, userID int64) (*ticket.Ticket, error)
	Get(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	SendUserMessage(ctx context.Context, ticketID uint, senderID int64, displayName string, kind ticketvo.MessageKind, content string) error
	SendAdminMessage(ctx context.Context, ticketID uint, adminID int64, displayName string, kind ticketvo.MessageKind, content string) error
	Claim(ctx context.Context, ticketID uint, adminID int64) (*ticket.Ticket, error)
	Transcript(ctx context.Context, ticketID uint) ([]*ticket.Message, error)
	CloseByUser(ctx context.Context, ticketID uint, userID int64) (*ticket.Ticket, error)
	CloseByAdmin(ctx context.Context, ticketID uint, adminID int64) (*ticket.Ticket, error)
}
