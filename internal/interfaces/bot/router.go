// Package bot routes inbound Telegram updates to the intake, review and
// support engines and renders their results back into chat messages.
package bot

import (
	"context"
	"fmt"
	"strings"

	"minegate/internal/domain/application"
	appvo "minegate/internal/domain/application/valueobjects"
	ticketvo "minegate/internal/domain/ticket/valueobjects"
	"minegate/internal/infrastructure/telegram"
	apperrors "minegate/internal/shared/errors"
	"minegate/internal/shared/logger"
)

// Router implements telegram.UpdateHandler. Every update is parsed into one
// Event and dispatched on its Action; admin membership is decided per event
// from the injected allow-list, never cached in session state.
type Router struct {
	form      FormEngine
	review    ReviewEngine
	support   SupportEngine
	sessions  *SessionStore
	messenger Messenger
	isAdmin   func(int64) bool
	log       logger.Interface
}

func NewRouter(
	formSvc FormEngine,
	reviewSvc ReviewEngine,
	supportSvc SupportEngine,
	sessions *SessionStore,
	messenger Messenger,
	isAdmin func(int64) bool,
	log logger.Interface,
) *Router {
	return &Router{
		form:      formSvc,
		review:    reviewSvc,
		support:   supportSvc,
		sessions:  sessions,
		messenger: messenger,
		isAdmin:   isAdmin,
		log:       log,
	}
}

func (r *Router) HandleUpdate(ctx context.Context, update *telegram.Update) error {
	ev, err := ParseUpdate(update, r.isAdmin)
	if err != nil {
		r.log.Warnw("dropping unparseable update", "update_id", update.UpdateID, "error", err)
		return nil
	}
	if ev == nil {
		return nil
	}

	if ev.CallbackID != "" {
		// Ack immediately so the button stops spinning even if handling
		// takes a while.
		if err := r.messenger.AnswerCallbackQuery(ev.CallbackID, "", false); err != nil {
			r.log.Warnw("failed to answer callback query", "user_id", ev.UserID, "error", err)
		}
	}

	if err := r.dispatch(ctx, ev); err != nil {
		r.log.Errorw("failed to handle event",
			"user_id", ev.UserID,
			"action", ev.Action,
			"error", err,
		)
		r.sendMenuFallback(ev, msgError)
	}
	return nil
}

func (r *Router) dispatch(ctx context.Context, ev *Event) error {
	switch ev.Action {
	case ActionStart:
		return r.handleStart(ctx, ev)
	case ActionMainMenu:
		return r.handleMainMenu(ctx, ev)
	case ActionText:
		return r.handleText(ctx, ev)
	case ActionMedia:
		return r.handleMedia(ctx, ev)

	case ActionApplyStart:
		return r.handleApplyStart(ctx, ev)
	case ActionFormAccept:
		return r.showStep(r.form.AcceptPolicy(ctx, ev.UserID))(ev)
	case ActionFormBack:
		return r.showStep(r.form.Back(ctx, ev.UserID))(ev)
	case ActionFormContinue:
		return r.showStep(r.form.ContinueUploads(ctx, ev.UserID))(ev)
	case ActionPlatformChoice:
		return r.showStep(r.form.ChoosePlatform(ctx, ev.UserID, ev.Platform))(ev)
	case ActionFormSubmit:
		return r.handleFormSubmit(ctx, ev)
	case ActionFormCancel:
		return r.handleFormCancel(ctx, ev)
	case ActionAppEdit:
		return r.handleAppEdit(ctx, ev)

	case ActionTicketOpen:
		return r.handleTicketOpen(ctx, ev)
	case ActionTicketContinue:
		return r.handleTicketContinue(ctx, ev)
	case ActionTicketNew:
		return r.handleTicketNew(ctx, ev)
	case ActionTicketClose:
		return r.handleTicketClose(ctx, ev)

	case ActionAdminList:
		return r.admin(ev, r.handleAdminList)(ctx, ev)
	case ActionAdminView:
		return r.admin(ev, r.handleAdminView)(ctx, ev)
	case ActionAdminApprove:
		return r.admin(ev, r.handleAdminApprove)(ctx, ev)
	case ActionAdminReject:
		return r.admin(ev, r.handleAdminReject)(ctx, ev)
	case ActionAdminComment:
		return r.admin(ev, r.handleAdminComment)(ctx, ev)
	case ActionAdminDelete:
		return r.admin(ev, r.handleAdminDelete)(ctx, ev)
	case ActionAdminGrantEdit:
		return r.admin(ev, r.handleAdminGrantEdit)(ctx, ev)
	case ActionAdminClaim:
		return r.admin(ev, r.handleAdminClaim)(ctx, ev)
	case ActionAdminClose:
		return r.admin(ev, r.handleAdminClose)(ctx, ev)
	case ActionAdminTranscript:
		return r.admin(ev, r.handleAdminTranscript)(ctx, ev)
	case ActionAdminLeave:
		return r.admin(ev, r.handleAdminLeave)(ctx, ev)

	default:
		r.sendMenuFallback(ev, msgUnknown)
		return nil
	}
}

// admin wraps a handler with the allow-list check. Non-admins pressing a
// stale admin button get a refusal, not an error.
func (r *Router) admin(ev *Event, h func(context.Context, *Event) error) func(context.Context, *Event) error {
	if !ev.IsAdmin {
		return func(context.Context, *Event) error {
			r.send(ev.ChatID, msgNoRights)
			return nil
		}
	}
	return h
}

func (r *Router) handleStart(ctx context.Context, ev *Event) error {
	if ev.IsAdmin && ev.Text != "" {
		if action, id := ParseStartPayload(ev.Text); action != ActionNone {
			deep := *ev
			deep.Action = action
			deep.TargetID = id
			return r.dispatch(ctx, &deep)
		}
	}
	return r.handleMainMenu(ctx, ev)
}

func (r *Router) handleMainMenu(ctx context.Context, ev *Event) error {
	r.sessions.Clear(ev.UserID)

	if ev.IsAdmin {
		r.sendKeyboard(ev.ChatID, "👨‍💼 Панель администратора:", adminMenuKeyboard())
		return nil
	}

	active, err := r.form.Active(ctx, ev.UserID)
	if err != nil {
		return err
	}
	if active != nil {
		r.sendKeyboard(ev.ChatID, renderApplicationStatus(active), mainMenuKeyboard(true))
		return nil
	}
	r.sendKeyboard(ev.ChatID, msgWelcome, mainMenuKeyboard(false))
	return nil
}

func (r *Router) handleApplyStart(ctx context.Context, ev *Event) error {
	draft, err := r.form.Start(ctx, ev.UserID, ev.DisplayName)
	if err != nil {
		if apperrors.IsConflictError(err) {
			return r.explainExistingApplication(ctx, ev)
		}
		return err
	}
	r.sendKeyboard(ev.ChatID, stepPrompt(draft), stepKeyboard(draft.Step()))
	return nil
}

// explainExistingApplication tells a returning applicant where their
// application stands, offering the edit path after a rejection.
func (r *Router) explainExistingApplication(ctx context.Context, ev *Event) error {
	active, err := r.form.Active(ctx, ev.UserID)
	if err != nil {
		return err
	}
	if active == nil {
		r.sendMenuFallback(ev, msgError)
		return nil
	}
	text := renderApplicationStatus(active)
	if active.Status() == appvo.StatusRejected && active.CanEdit() {
		r.sendKeyboard(ev.ChatID, text, editApplicationKeyboard(active))
		return nil
	}
	r.send(ev.ChatID, text)
	return nil
}

func (r *Router) handleFormSubmit(ctx context.Context, ev *Event) error {
	if _, err := r.form.Submit(ctx, ev.UserID); err != nil {
		if apperrors.IsValidationError(err) {
			r.send(ev.ChatID, "⚠️ Заявка заполнена не полностью: "+appErrMessage(err))
			return nil
		}
		return err
	}
	r.send(ev.ChatID, msgFormSubmitted)
	return nil
}

func (r *Router) handleFormCancel(ctx context.Context, ev *Event) error {
	if err := r.form.Cancel(ctx, ev.UserID); err != nil && !apperrors.IsNotFoundError(err) {
		return err
	}
	r.sendKeyboard(ev.ChatID, msgFormCancelled, mainMenuKeyboard(false))
	return nil
}

// handleAppEdit is the applicant-initiated resubmission path after a
// rejection. The grant consumes one edit and reopens the form from the
// policy step; the engine refuses callers other than the owner.
func (r *Router) handleAppEdit(ctx context.Context, ev *Event) error {
	if _, err := r.review.RequestEdit(ctx, ev.TargetID, ev.UserID); err != nil {
		switch {
		case apperrors.IsConflictError(err):
			r.send(ev.ChatID, "🚫 Лимит исправлений исчерпан.")
			return nil
		case apperrors.IsForbiddenError(err):
			r.send(ev.ChatID, msgNoRights)
			return nil
		}
		return err
	}
	// The edit-granted notification already delivered the policy prompt.
	return nil
}

func (r *Router) handleText(ctx context.Context, ev *Event) error {
	session := r.sessions.Get(ev.UserID)
	switch session.Mode {
	case ModeUserChat:
		return r.relayUserMessage(ctx, ev, session.TicketID, ticketvo.KindText, ev.Text)
	case ModeAdminChat:
		return r.relayAdminMessage(ctx, ev, session.TicketID, ticketvo.KindText, ev.Text)
	case ModeAdminComment:
		return r.applyAdminComment(ctx, ev, session.ApplicationID)
	}

	draft, err := r.form.Resume(ctx, ev.UserID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			r.sendMenuFallback(ev, msgUnknown)
			return nil
		}
		return err
	}
	updated, err := r.form.AnswerText(ctx, ev.UserID, ev.Text)
	if err != nil {
		if apperrors.IsValidationError(err) {
			r.sendKeyboard(ev.ChatID, "⚠️ "+appErrMessage(err)+"\n\n"+stepPrompt(draft), stepKeyboard(draft.Step()))
			return nil
		}
		return err
	}
	r.sendKeyboard(ev.ChatID, stepPrompt(updated), stepKeyboard(updated.Step()))
	return nil
}

func (r *Router) handleMedia(ctx context.Context, ev *Event) error {
	session := r.sessions.Get(ev.UserID)
	if session.Mode == ModeUserChat || session.Mode == ModeAdminChat {
		kind := ticketvo.MessageKind(ev.Media.Kind)
		if !kind.IsValid() {
			r.send(ev.ChatID, "⚠️ Этот тип сообщения не поддерживается. Отправьте текст, фото, видео, документ или стикер.")
			return nil
		}
		if session.Mode == ModeAdminChat {
			return r.relayAdminMessage(ctx, ev, session.TicketID, kind, ev.Media.FileID)
		}
		return r.relayUserMessage(ctx, ev, session.TicketID, kind, ev.Media.FileID)
	}

	_, err := r.form.Resume(ctx, ev.UserID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			r.sendMenuFallback(ev, msgUnknown)
			return nil
		}
		return err
	}

	kind := appvo.MediaKind(ev.Media.Kind)
	if ev.Media.FileID == "" || !kind.IsValid() {
		r.send(ev.ChatID, "⚠️ Прикрепите фото, видео или документ.")
		return nil
	}
	updated, err := r.form.AttachMedia(ctx, ev.UserID, ev.Media.FileID, kind)
	if err != nil {
		if apperrors.IsValidationError(err) {
			r.send(ev.ChatID, "🚫 "+appErrMessage(err))
			return nil
		}
		return err
	}

	step := updated.Step()
	category, _ := step.UploadCategory()
	r.sendKeyboard(ev.ChatID,
		fmt.Sprintf("✅ Файл добавлен (%d/%d). Прикрепите ещё или нажмите «Продолжить».",
			updated.CountMedia(category), category.Cap()),
		stepKeyboard(step),
	)
	return nil
}

func (r *Router) handleTicketOpen(ctx context.Context, ev *Event) error {
	t, existing, err := r.support.Open(ctx, ev.UserID, ev.DisplayName)
	if err != nil {
		return err
	}
	if existing {
		r.sendKeyboard(ev.ChatID, msgTicketExists, ticketChoiceKeyboard(t))
		return nil
	}
	r.sessions.Set(ev.UserID, Session{Mode: ModeUserChat, TicketID: t.ID()})
	r.sendKeyboard(ev.ChatID, msgTicketPrompt, userTicketKeyboard(t))
	return nil
}

func (r *Router) handleTicketContinue(ctx context.Context, ev *Event) error {
	t, err := r.support.Get(ctx, ev.TargetID)
	if err != nil {
		return err
	}
	if t.UserID() != ev.UserID || !t.IsOpen() {
		r.send(ev.ChatID, "❌ Этот вопрос уже закрыт. Пожалуйста, создайте новый вопрос.")
		return nil
	}
	r.sessions.Set(ev.UserID, Session{Mode: ModeUserChat, TicketID: t.ID()})
	r.sendKeyboard(ev.ChatID, msgTicketPrompt, userTicketKeyboard(t))
	return nil
}

func (r *Router) handleTicketNew(ctx context.Context, ev *Event) error {
	t, err := r.support.ForceOpen(ctx, ev.UserID)
	if err != nil {
		return err
	}
	r.sessions.Set(ev.UserID, Session{Mode: ModeUserChat, TicketID: t.ID()})
	r.sendKeyboard(ev.ChatID, msgTicketPrompt, userTicketKeyboard(t))
	return nil
}

func (r *Router) handleTicketClose(ctx context.Context, ev *Event) error {
	if _, err := r.support.CloseByUser(ctx, ev.TargetID, ev.UserID); err != nil {
		if apperrors.IsConflictError(err) {
			r.send(ev.ChatID, "❌ Этот вопрос уже закрыт.")
			r.sessions.Clear(ev.UserID)
			return nil
		}
		return err
	}
	r.sessions.Clear(ev.UserID)
	r.sendKeyboard(ev.ChatID, "✅ Вопрос закрыт. Спасибо за обращение!", mainMenuKeyboard(false))
	return nil
}

func (r *Router) relayUserMessage(ctx context.Context, ev *Event, ticketID uint, kind ticketvo.MessageKind, content string) error {
	err := r.support.SendUserMessage(ctx, ticketID, ev.UserID, ev.DisplayName, kind, content)
	if err != nil {
		if apperrors.IsConflictError(err) {
			r.sessions.Clear(ev.UserID)
			r.send(ev.ChatID, "❌ Этот вопрос уже закрыт. Пожалуйста, создайте новый вопрос.")
			return nil
		}
		return err
	}
	t, err := r.support.Get(ctx, ticketID)
	if err != nil {
		return err
	}
	r.sendKeyboard(ev.ChatID, msgTicketSent, userTicketKeyboard(t))
	return nil
}

func (r *Router) relayAdminMessage(ctx context.Context, ev *Event, ticketID uint, kind ticketvo.MessageKind, content string) error {
	err := r.support.SendAdminMessage(ctx, ticketID, ev.UserID, ev.DisplayName, kind, content)
	if err != nil {
		switch {
		case apperrors.IsConflictError(err):
			r.sessions.Clear(ev.UserID)
			r.send(ev.ChatID, "❌ Этот вопрос уже закрыт.")
			return nil
		case apperrors.IsForbiddenError(err):
			// Another admin claimed the ticket since this chat began.
			r.sessions.Clear(ev.UserID)
			r.send(ev.ChatID, "⚠️ Вопрос передан другому администратору.")
			return nil
		}
		return err
	}
	r.send(ev.ChatID, "✅ Отправлено.")
	return nil
}

func (r *Router) applyAdminComment(ctx context.Context, ev *Event, applicationID uint) error {
	r.sessions.Clear(ev.UserID)
	app, err := r.review.Comment(ctx, applicationID, ev.Text)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			r.send(ev.ChatID, "📭 Заявка не найдена.")
			return nil
		}
		return err
	}
	r.send(ev.ChatID, fmt.Sprintf("💬 Комментарий к заявке #%d сохранён и отправлен пользователю.", app.ID()))
	return nil
}

func (r *Router) handleAdminList(ctx context.Context, ev *Event) error {
	summaries, err := r.review.ListByStatus(ctx, ev.Status)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		r.send(ev.ChatID, "📭 Заявок со статусом «"+statusLabel(ev.Status)+"» нет.")
		return nil
	}
	lines := make([]string, 0, len(summaries))
	apps := make([]*application.Application, 0, len(summaries))
	for _, s := range summaries {
		lines = append(lines, fmt.Sprintf("#%d %s (%s), 📎 %d",
			s.Application.ID(), s.Application.PlayerName(), s.DisplayName, s.MediaCount))
		apps = append(apps, s.Application)
	}
	r.sendKeyboard(ev.ChatID,
		fmt.Sprintf("📬 Заявки (%s):\n%s", statusLabel(ev.Status), strings.Join(lines, "\n")),
		applicationListKeyboard(apps),
	)
	return nil
}

func (r *Router) handleAdminView(ctx context.Context, ev *Event) error {
	detail, err := r.review.Detail(ctx, ev.TargetID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			r.send(ev.ChatID, "📭 Заявка не найдена.")
			return nil
		}
		return err
	}
	r.sendKeyboard(ev.ChatID, renderApplication(detail.Application, detail.DisplayName), applicationViewKeyboard(detail.Application))
	for _, m := range detail.Media {
		r.sendApplicationMedia(ev.ChatID, m.FileID(), string(m.Kind()), fmt.Sprintf("📎 Вложение к заявке #%d", detail.Application.ID()))
	}
	return nil
}

func (r *Router) handleAdminApprove(ctx context.Context, ev *Event) error {
	result, err := r.review.Approve(ctx, ev.TargetID)
	if err != nil {
		switch {
		case apperrors.IsConflictError(err):
			r.send(ev.ChatID, "⚠️ Заявка уже рассмотрена, команды не запускались.")
			return nil
		case apperrors.IsNotFoundError(err):
			r.send(ev.ChatID, "📭 Заявка не найдена.")
			return nil
		}
		return err
	}
	r.send(ev.ChatID, renderApproveResult(result))
	return nil
}

func (r *Router) handleAdminReject(ctx context.Context, ev *Event) error {
	app, err := r.review.Reject(ctx, ev.TargetID, "")
	if err != nil {
		switch {
		case apperrors.IsConflictError(err):
			r.send(ev.ChatID, "⚠️ Заявка уже рассмотрена.")
			return nil
		case apperrors.IsNotFoundError(err):
			r.send(ev.ChatID, "📭 Заявка не найдена.")
			return nil
		}
		return err
	}
	r.send(ev.ChatID, fmt.Sprintf("❌ Заявка #%d отклонена, пользователь уведомлён.", app.ID()))
	return nil
}

func (r *Router) handleAdminComment(ctx context.Context, ev *Event) error {
	r.sessions.Set(ev.UserID, Session{Mode: ModeAdminComment, ApplicationID: ev.TargetID})
	r.send(ev.ChatID, msgCommentPrompt)
	return nil
}

func (r *Router) handleAdminDelete(ctx context.Context, ev *Event) error {
	if err := r.review.Delete(ctx, ev.TargetID); err != nil {
		if apperrors.IsNotFoundError(err) {
			r.send(ev.ChatID, "📭 Заявка не найдена.")
			return nil
		}
		return err
	}
	r.send(ev.ChatID, fmt.Sprintf("🗑 Заявка #%d удалена вместе с вложениями.", ev.TargetID))
	return nil
}

func (r *Router) handleAdminGrantEdit(ctx context.Context, ev *Event) error {
	if _, err := r.review.GrantEdit(ctx, ev.TargetID); err != nil {
		switch {
		case apperrors.IsConflictError(err):
			r.send(ev.ChatID, "🚫 Лимит исправлений этой заявки исчерпан.")
			return nil
		case apperrors.IsNotFoundError(err):
			r.send(ev.ChatID, "📭 Заявка не найдена.")
			return nil
		}
		return err
	}
	r.send(ev.ChatID, fmt.Sprintf("✏️ Пользователю разрешено исправить заявку #%d.", ev.TargetID))
	return nil
}

func (r *Router) handleAdminClaim(ctx context.Context, ev *Event) error {
	t, err := r.support.Claim(ctx, ev.TargetID, ev.UserID)
	if err != nil {
		if apperrors.IsConflictError(err) {
			r.send(ev.ChatID, "❌ Этот вопрос уже закрыт.")
			return nil
		}
		return err
	}
	r.sessions.Set(ev.UserID, Session{Mode: ModeAdminChat, TicketID: t.ID()})
	r.sendKeyboard(ev.ChatID, msgAdminChatJoined, adminTicketKeyboard(t))
	return nil
}

func (r *Router) handleAdminClose(ctx context.Context, ev *Event) error {
	if _, err := r.support.CloseByAdmin(ctx, ev.TargetID, ev.UserID); err != nil {
		switch {
		case apperrors.IsConflictError(err):
			r.send(ev.ChatID, "❌ Этот вопрос уже закрыт.")
			return nil
		case apperrors.IsForbiddenError(err):
			r.send(ev.ChatID, "⚠️ Закрыть вопрос может только назначенный администратор.")
			return nil
		}
		return err
	}
	r.sessions.Clear(ev.UserID)
	r.send(ev.ChatID, fmt.Sprintf("✅ Вопрос #%d закрыт.", ev.TargetID))
	return nil
}

func (r *Router) handleAdminTranscript(ctx context.Context, ev *Event) error {
	t, err := r.support.Get(ctx, ev.TargetID)
	if err != nil {
		return err
	}
	messages, err := r.support.Transcript(ctx, ev.TargetID)
	if err != nil {
		return err
	}
	r.sendKeyboard(ev.ChatID, renderTranscript(t, messages), adminTicketKeyboard(t))
	return nil
}

func (r *Router) handleAdminLeave(_ context.Context, ev *Event) error {
	r.sessions.Clear(ev.UserID)
	r.send(ev.ChatID, msgAdminChatLeft)
	return nil
}

// showStep turns a (draft, error) pair from a form operation into the next
// prompt, translating validation and conflict errors into retry messages.
func (r *Router) showStep(draft *application.FormDraft, err error) func(*Event) error {
	return func(ev *Event) error {
		if err != nil {
			if apperrors.IsValidationError(err) || apperrors.IsConflictError(err) {
				r.send(ev.ChatID, "⚠️ "+appErrMessage(err))
				return nil
			}
			if apperrors.IsNotFoundError(err) {
				r.sendMenuFallback(ev, msgUnknown)
				return nil
			}
			return err
		}
		r.sendKeyboard(ev.ChatID, stepPrompt(draft), stepKeyboard(draft.Step()))
		return nil
	}
}

func (r *Router) sendApplicationMedia(chatID int64, fileID, kind, caption string) {
	var err error
	switch appvo.MediaKind(kind) {
	case appvo.MediaKindPhoto:
		_, err = r.messenger.SendPhoto(chatID, fileID, caption)
	case appvo.MediaKindVideo:
		_, err = r.messenger.SendVideo(chatID, fileID, caption)
	case appvo.MediaKindDocument:
		_, err = r.messenger.SendDocument(chatID, fileID, caption)
	case appvo.MediaKindSticker:
		_, err = r.messenger.SendSticker(chatID, fileID)
	}
	if err != nil {
		r.log.Warnw("failed to send application media", "chat_id", chatID, "error", err)
	}
}

func (r *Router) send(chatID int64, text string) {
	if _, err := r.messenger.SendMessage(chatID, text); err != nil {
		r.log.Warnw("failed to send message", "chat_id", chatID, "error", err)
	}
}

// sendKeyboard replaces the chat's live keyboard prompt: the previous prompt
// message is deleted so stale inline buttons cannot be pressed, then the new
// prompt's message ID is remembered for the next replacement.
func (r *Router) sendKeyboard(chatID int64, text string, keyboard any) {
	if prev := r.sessions.TakePromptID(chatID); prev != 0 {
		if err := r.messenger.DeleteMessage(chatID, prev); err != nil {
			r.log.Warnw("failed to delete stale prompt", "chat_id", chatID, "message_id", prev, "error", err)
		}
	}
	messageID, err := r.messenger.SendMessageWithKeyboard(chatID, text, keyboard)
	if err != nil {
		r.log.Warnw("failed to send message", "chat_id", chatID, "error", err)
		return
	}
	r.sessions.SetPromptID(chatID, messageID)
}

// sendMenuFallback pairs an error or unknown-input notice with the keyboard
// back to the caller's menu, so the chat never dead-ends without buttons.
func (r *Router) sendMenuFallback(ev *Event, text string) {
	if ev.IsAdmin {
		r.sendKeyboard(ev.ChatID, text, adminMenuKeyboard())
		return
	}
	r.sendKeyboard(ev.ChatID, text, mainMenuKeyboard(false))
}

func appErrMessage(err error) string {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		return appErr.Message
	}
	return err.Error()
}
