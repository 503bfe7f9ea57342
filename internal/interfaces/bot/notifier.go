package bot

import (
	"fmt"

	"minegate/internal/domain/application"
	"minegate/internal/domain/ticket"
	ticketvo "minegate/internal/domain/ticket/valueobjects"
	"minegate/internal/shared/logger"
)

// Notifier delivers outbound notices for all three engines. Every delivery
// is best-effort: failures are logged and never propagated, because the
// persisted state change has already happened.
type Notifier struct {
	messenger Messenger
	adminIDs  []int64
	log       logger.Interface
}

func NewNotifier(messenger Messenger, adminIDs []int64, log logger.Interface) *Notifier {
	return &Notifier{
		messenger: messenger,
		adminIDs:  adminIDs,
		log:       log,
	}
}

// NotifyAdminsNewApplication announces a fresh submission to every admin,
// with inline review actions and a deep link for opening the bot from
// another device.
func (n *Notifier) NotifyAdminsNewApplication(app *application.Application, displayName string) {
	text := renderApplication(app, displayName)
	if link := n.messenger.GetStartLink(fmt.Sprintf("view_%d", app.ID())); link != "" {
		text += "\n🔗 " + link
	}
	keyboard := newApplicationKeyboard(app)
	for _, adminID := range n.adminIDs {
		if _, err := n.messenger.SendMessageWithKeyboard(adminID, text, keyboard); err != nil {
			n.log.Errorw("failed to notify admin about new application",
				"admin_id", adminID,
				"application_id", app.ID(),
				"error", err,
			)
		}
	}
}

func (n *Notifier) NotifyApplicantApproved(app *application.Application) {
	text := "🎉 Ваша заявка одобрена! Добро пожаловать на сервер."
	if app.Comment() != "" {
		text += "\n💬 Комментарий: " + app.Comment()
	}
	n.sendToUser(app.UserID(), text, nil)
}

func (n *Notifier) NotifyApplicantRejected(app *application.Application) {
	text := "❌ К сожалению, ваша заявка отклонена."
	if app.Comment() != "" {
		text += "\n💬 Комментарий: " + app.Comment()
	}
	if app.CanEdit() {
		n.sendToUser(app.UserID(), text, editApplicationKeyboard(app))
		return
	}
	text += "\n🚫 Лимит исправлений исчерпан."
	n.sendToUser(app.UserID(), text, nil)
}

func (n *Notifier) NotifyApplicantComment(app *application.Application) {
	n.sendToUser(app.UserID(), "💬 Комментарий к вашей заявке: "+app.Comment(), nil)
}

func (n *Notifier) NotifyApplicantDeleted(userID int64) {
	n.sendToUser(userID, "🗑 Ваша заявка удалена. Вы можете подать новую через меню.", nil)
}

func (n *Notifier) NotifyApplicantEditGranted(app *application.Application) {
	n.sendToUser(app.UserID(),
		"✏️ Вы можете исправить заявку. Ознакомьтесь с правилами и продолжите заполнение:",
		policyKeyboard(),
	)
}

// RelayToAdmin forwards a user message to the assigned admin.
func (n *Notifier) RelayToAdmin(adminID int64, t *ticket.Ticket, m *ticket.Message) {
	header := fmt.Sprintf("💬 Сообщение от %s (вопрос #%d)", m.SenderName(), t.ID())
	n.relay(adminID, header, m, adminTicketKeyboard(t))
}

// BroadcastToAdmins announces an unclaimed ticket message to the whole pool;
// each copy carries a claim action.
func (n *Notifier) BroadcastToAdmins(adminIDs []int64, t *ticket.Ticket, m *ticket.Message) {
	header := fmt.Sprintf("🆘 Новый вопрос #%d от %s", t.ID(), m.SenderName())
	for _, adminID := range adminIDs {
		n.relay(adminID, header, m, claimKeyboard(t))
	}
}

// RelayToUser forwards an admin message to the ticket's owner.
func (n *Notifier) RelayToUser(userID int64, t *ticket.Ticket, m *ticket.Message) {
	header := fmt.Sprintf("👨‍💼 Поддержка (вопрос #%d)", t.ID())
	n.relay(userID, header, m, userTicketKeyboard(t))
}

func (n *Notifier) NotifyTicketClosed(recipientID int64, t *ticket.Ticket, closedByAdmin bool) {
	var text string
	if closedByAdmin {
		text = fmt.Sprintf("🔴 Вопрос #%d закрыт поддержкой. Спасибо за обращение!", t.ID())
	} else {
		text = fmt.Sprintf("🔴 Пользователь закрыл вопрос #%d.", t.ID())
	}
	n.sendToUser(recipientID, text, nil)
}

// relay delivers one ticket message to one chat, choosing the send method by
// content kind. Stickers cannot carry captions, so the header goes out as a
// separate message first.
func (n *Notifier) relay(chatID int64, header string, m *ticket.Message, keyboard any) {
	var err error
	switch m.Kind() {
	case ticketvo.KindText:
		_, err = n.messenger.SendMessageWithKeyboard(chatID, header+":\n"+m.Content(), keyboard)
	case ticketvo.KindPhoto:
		_, err = n.messenger.SendPhoto(chatID, m.Content(), header)
	case ticketvo.KindVideo:
		_, err = n.messenger.SendVideo(chatID, m.Content(), header)
	case ticketvo.KindDocument:
		_, err = n.messenger.SendDocument(chatID, m.Content(), header)
	case ticketvo.KindSticker:
		if _, err = n.messenger.SendMessage(chatID, header+" (стикер):"); err == nil {
			_, err = n.messenger.SendSticker(chatID, m.Content())
		}
	}
	if err != nil {
		n.log.Errorw("failed to relay ticket message",
			"ticket_id", m.TicketID(),
			"recipient_id", chatID,
			"kind", m.Kind(),
			"error", err,
		)
	}
}

func (n *Notifier) sendToUser(userID int64, text string, keyboard any) {
	var err error
	if keyboard != nil {
		_, err = n.messenger.SendMessageWithKeyboard(userID, text, keyboard)
	} else {
		_, err = n.messenger.SendMessage(userID, text)
	}
	if err != nil {
		n.log.Errorw("failed to send notification",
			"user_id", userID,
			"error", err,
		)
	}
}
