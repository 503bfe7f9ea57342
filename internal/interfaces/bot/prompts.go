package bot

import (
	"fmt"
	"strings"

	"minegate/internal/application/review"
	"minegate/internal/domain/application"
	vo "minegate/internal/domain/application/valueobjects"
	"minegate/internal/domain/ticket"
	ticketvo "minegate/internal/domain/ticket/valueobjects"
)

const (
	msgWelcome = "👋 Добро пожаловать! Здесь можно подать заявку на вайтлист сервера или написать в поддержку."

	msgPolicy = "Перед началом заполнения заявки, пожалуйста, ознакомьтесь с политикой конфиденциальности и правилами сервера.\n\n" +
		"Нажимая «Принимаю», вы соглашаетесь на обработку указанных в заявке данных."

	msgUnknown         = "🤔 Неизвестная команда. Нажмите /menu, чтобы открыть меню."
	msgNoRights        = "🚫 У вас нет прав для выполнения этого действия"
	msgError           = "❌ Произошла ошибка. Попробуйте позже"
	msgFormSubmitted   = "✅ Ваша заявка отправлена на рассмотрение!"
	msgFormCancelled   = "Заявка отменена. Вы можете начать заново через меню."
	msgTicketPrompt    = "🆘 Задайте вопрос (можно прикреплять фото, видео, документ, стикер), поддержка свяжется с вами в ближайшее время:"
	msgTicketExists    = "🆘 У вас есть открытый вопрос. Продолжите общение или создайте новый:"
	msgTicketSent      = "📬 Сообщение отправлено! Если требуется, дополняйте свой вопрос. Чтобы завершить вопрос, нажмите кнопку ниже:"
	msgCommentPrompt   = "💬 Отправьте текст комментария к заявке:"
	msgAdminChatJoined = "💬 Вы подключены к диалогу. Всё, что вы отправите, будет переслано пользователю."
	msgAdminChatLeft   = "↩️ Вы вышли из диалога."
)

var stepPrompts = map[vo.FormStep]string{
	vo.StepPolicy:          msgPolicy,
	vo.StepPlayerName:      "1. Как к вам обращаться? (Имя или ник)",
	vo.StepAge:             "2. Сколько вам лет?",
	vo.StepAbout:           "3. Расскажите немного о себе: (Опыт игры, любимые аспекты Minecraft, участие в жизни сервера, идеи и проекты)",
	vo.StepPlans:           "🎮 Как вы планируете проводить время на сервере?\n(Игровой стиль, предпочтения: строительство, приключения, торговля и т.д.)",
	vo.StepCommunity:       "💙 Что для вас важно в дружелюбном сообществе?\n(Честность, уважение, поддержка, свобода самовыражения и т.п.)",
	vo.StepPlatform:        "🎮 На какой платформе вы играете?",
	vo.StepJavaNickname:    "⚡ Введите свой никнейм Java\n(Без пробелов и лишних символов):",
	vo.StepBedrockNickname: "🟢 Введите свой никнейм Bedrock\n(Без пробелов и лишних символов):",
	vo.StepSkinUpload:      "9. Прикрепите фото или документ вашего скина (не более 2 файлов):",
	vo.StepProjectUpload:   "🏗 Прикрепите скриншоты ваших построек или проектов (не более 5 файлов), либо нажмите «Продолжить»:",
	vo.StepReferral:        "📣 Откуда вы узнали о сервере?",
}

// stepPrompt returns the message shown when the form lands on a step. The
// review step renders the collected draft instead of a fixed prompt.
func stepPrompt(draft *application.FormDraft) string {
	if draft.Step() == vo.StepReview {
		return renderDraftReview(draft)
	}
	return stepPrompts[draft.Step()]
}

func renderDraftReview(draft *application.FormDraft) string {
	p := draft.Profile()
	var b strings.Builder
	b.WriteString("📋 Проверьте вашу заявку:\n\n")
	fmt.Fprintf(&b, "👤 Имя: %s\n", p.PlayerName)
	fmt.Fprintf(&b, "📅 Возраст: %s\n", p.Age)
	fmt.Fprintf(&b, "📄 О себе: %s\n", p.About)
	fmt.Fprintf(&b, "🎮 Планы: %s\n", p.Plans)
	fmt.Fprintf(&b, "💙 О сообществе: %s\n", p.Community)
	fmt.Fprintf(&b, "🕹 Платформа: %s\n", platformLabel(p.Platform))
	if p.Platform.IncludesJava() {
		fmt.Fprintf(&b, "⚡ Ник Java: %s\n", p.JavaNickname)
	}
	if p.Platform.IncludesBedrock() {
		fmt.Fprintf(&b, "🟢 Ник Bedrock: %s\n", p.BedrockNickname)
	}
	fmt.Fprintf(&b, "📣 Откуда узнали: %s\n", p.Referral)
	fmt.Fprintf(&b, "📎 Вложений: %d\n", len(draft.Media()))
	b.WriteString("\nВсё верно?")
	return b.String()
}

func platformLabel(p vo.Platform) string {
	switch p {
	case vo.PlatformJava:
		return "Java"
	case vo.PlatformBedrock:
		return "Bedrock"
	case vo.PlatformBoth:
		return "Java + Bedrock"
	default:
		return string(p)
	}
}

func statusLabel(s vo.ApplicationStatus) string {
	switch s {
	case vo.StatusPending:
		return "⏳ на рассмотрении"
	case vo.StatusApproved:
		return "✅ принята"
	case vo.StatusRejected:
		return "❌ отклонена"
	default:
		return string(s)
	}
}

func renderApplication(app *application.Application, displayName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📬 Заявка #%d от %s\n", app.ID(), displayName)
	fmt.Fprintf(&b, "Статус: %s\n\n", statusLabel(app.Status()))
	fmt.Fprintf(&b, "👤 Имя: %s\n", app.PlayerName())
	fmt.Fprintf(&b, "📅 Возраст: %s\n", app.Age())
	fmt.Fprintf(&b, "📄 О себе: %s\n", app.About())
	fmt.Fprintf(&b, "🎮 Планы: %s\n", app.Plans())
	fmt.Fprintf(&b, "💙 О сообществе: %s\n", app.Community())
	fmt.Fprintf(&b, "🕹 Платформа: %s\n", platformLabel(app.Platform()))
	if app.Platform().IncludesJava() {
		fmt.Fprintf(&b, "⚡ Ник Java: %s\n", app.JavaNickname())
	}
	if app.Platform().IncludesBedrock() {
		fmt.Fprintf(&b, "🟢 Ник Bedrock: %s\n", app.BedrockNickname())
	}
	fmt.Fprintf(&b, "📣 Откуда узнали: %s\n", app.Referral())
	if app.Comment() != "" {
		fmt.Fprintf(&b, "\n💬 Комментарий: %s\n", app.Comment())
	}
	fmt.Fprintf(&b, "✏️ Правок: %d из %d\n", app.EditCount(), application.MaxEditCount)
	return b.String()
}

// renderApplicationStatus is the applicant-facing one-liner about where
// their application stands.
func renderApplicationStatus(app *application.Application) string {
	text := fmt.Sprintf("📋 Ваша заявка #%d: %s", app.ID(), statusLabel(app.Status()))
	if app.Comment() != "" {
		text += "\n💬 Комментарий: " + app.Comment()
	}
	if app.Status() == vo.StatusRejected {
		if app.CanEdit() {
			text += fmt.Sprintf("\n✏️ Вы можете исправить заявку (использовано правок: %d из %d).",
				app.EditCount(), application.MaxEditCount)
		} else {
			text += "\n🚫 Лимит исправлений исчерпан."
		}
	}
	return text
}

func renderApproveResult(result *review.ApproveResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Заявка #%d одобрена.\n", result.Application.ID())
	for _, o := range []*review.PlatformOutcome{result.Java, result.Bedrock} {
		if o == nil {
			continue
		}
		switch {
		case !o.Attempted:
			fmt.Fprintf(&b, "⚠️ %s: %s не добавлен, команда не запускалась\n", platformLabel(o.Platform), o.Nickname)
		case o.Err != nil:
			fmt.Fprintf(&b, "❌ %s: ошибка добавления %s: %v\n", platformLabel(o.Platform), o.Nickname, o.Err)
		default:
			fmt.Fprintf(&b, "✅ %s: %s добавлен в вайтлист\n", platformLabel(o.Platform), o.Nickname)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderTranscript(t *ticket.Ticket, messages []*ticket.Message) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🆘 Вопрос #%d, сообщений: %d\n\n", t.ID(), len(messages))
	for _, m := range messages {
		role := "👤"
		if m.Role() == ticketvo.RoleAdmin {
			role = "👨‍💼"
		}
		content := m.Content()
		if m.Kind() != ticketvo.KindText {
			content = fmt.Sprintf("[%s]", m.Kind())
		}
		fmt.Fprintf(&b, "%s %s: %s\n", role, m.SenderName(), content)
	}
	return b.String()
}
