package bot

import (
	"fmt"

	"minegate/internal/domain/application"
	vo "minegate/internal/domain/application/valueobjects"
	"minegate/internal/domain/ticket"
	"minegate/internal/infrastructure/telegram"
)

func mainMenuKeyboard(hasApplication bool) *telegram.InlineKeyboardMarkup {
	rows := [][]telegram.InlineKeyboardButton{}
	if !hasApplication {
		rows = append(rows, telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton("Подать заявку", cbApply),
		))
	}
	rows = append(rows, telegram.NewInlineKeyboardRow(
		telegram.NewInlineKeyboardButton("Написать в поддержку", cbTicketOpen),
	))
	return telegram.NewInlineKeyboard(rows...)
}

func policyKeyboard() *telegram.InlineKeyboardMarkup {
	return telegram.NewInlineKeyboard(
		telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton("Принимаю", cbFormAccept),
		),
		telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton("Отмена", cbFormCancel),
		),
	)
}

func platformKeyboard() *telegram.InlineKeyboardMarkup {
	return telegram.NewInlineKeyboard(
		telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton("Java", cbPlatform+vo.PlatformJava.String()),
			telegram.NewInlineKeyboardButton("Bedrock", cbPlatform+vo.PlatformBedrock.String()),
		),
		telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton("Обе версии", cbPlatform+vo.PlatformBoth.String()),
		),
		formNavRow(),
	)
}

// stepKeyboard builds the navigation controls shown under a step prompt.
func stepKeyboard(step vo.FormStep) *telegram.InlineKeyboardMarkup {
	switch {
	case step == vo.StepPolicy:
		return policyKeyboard()
	case step == vo.StepPlatform:
		return platformKeyboard()
	case step.IsUploadStep():
		return telegram.NewInlineKeyboard(
			telegram.NewInlineKeyboardRow(
				telegram.NewInlineKeyboardButton("Продолжить", cbFormContinue),
			),
			formNavRow(),
		)
	case step == vo.StepReview:
		return telegram.NewInlineKeyboard(
			telegram.NewInlineKeyboardRow(
				telegram.NewInlineKeyboardButton("Отправить заявку", cbFormSubmit),
			),
			formNavRow(),
		)
	default:
		return telegram.NewInlineKeyboard(formNavRow())
	}
}

func formNavRow() []telegram.InlineKeyboardButton {
	return telegram.NewInlineKeyboardRow(
		telegram.NewInlineKeyboardButton("Назад", cbFormBack),
		telegram.NewInlineKeyboardButton("Отмена", cbFormCancel),
	)
}

func editApplicationKeyboard(app *application.Application) *telegram.InlineKeyboardMarkup {
	return telegram.NewInlineKeyboard(
		telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton("Исправить заявку", fmt.Sprintf("%s%d", cbAppEdit, app.ID())),
		),
	)
}

func ticketChoiceKeyboard(t *ticket.Ticket) *telegram.InlineKeyboardMarkup {
	return telegram.NewInlineKeyboard(
		telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton("Продолжить обращение", fmt.Sprintf("%s%d", cbTicketCont, t.ID())),
		),
		telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton("Создать новое", cbTicketNew),
		),
	)
}

func userTicketKeyboard(t *ticket.Ticket) *telegram.InlineKeyboardMarkup {
	return telegram.NewInlineKeyboard(
		telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton("Закрыть обращение", fmt.Sprintf("%s%d", cbTicketClose, t.ID())),
		),
	)
}

func claimKeyboard(t *ticket.Ticket) *telegram.InlineKeyboardMarkup {
	return telegram.NewInlineKeyboard(
		telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton("Взять в работу", fmt.Sprintf("%s%d", cbAdminClaim, t.ID())),
		),
	)
}

func adminTicketKeyboard(t *ticket.Ticket) *telegram.InlineKeyboardMarkup {
	return telegram.NewInlineKeyboard(
		telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton("История", fmt.Sprintf("%s%d", cbAdminTranscript, t.ID())),
			telegram.NewInlineKeyboardButton("Закрыть", fmt.Sprintf("%s%d", cbAdminClose, t.ID())),
		),
		telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton("Выйти из диалога", cbAdminLeave),
		),
	)
}

func adminMenuKeyboard() *telegram.InlineKeyboardMarkup {
	return telegram.NewInlineKeyboard(
		telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton("Ожидают", cbAdminList+vo.StatusPending.String()),
			telegram.NewInlineKeyboardButton("Принятые", cbAdminList+vo.StatusApproved.String()),
			telegram.NewInlineKeyboardButton("Отклонённые", cbAdminList+vo.StatusRejected.String()),
		),
	)
}

func applicationViewKeyboard(app *application.Application) *telegram.InlineKeyboardMarkup {
	id := app.ID()
	rows := [][]telegram.InlineKeyboardButton{}
	if app.IsPending() {
		rows = append(rows, telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton("Принять", fmt.Sprintf("%s%d", cbAdminApprove, id)),
			telegram.NewInlineKeyboardButton("Отклонить", fmt.Sprintf("%s%d", cbAdminReject, id)),
		))
	}
	rows = append(rows, telegram.NewInlineKeyboardRow(
		telegram.NewInlineKeyboardButton("Комментарий", fmt.Sprintf("%s%d", cbAdminComment, id)),
		telegram.NewInlineKeyboardButton("Удалить", fmt.Sprintf("%s%d", cbAdminDelete, id)),
	))
	if app.CanEdit() && app.Status() == vo.StatusRejected {
		rows = append(rows, telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton("Разрешить правку", fmt.Sprintf("%s%d", cbAdminGrantEdit, id)),
		))
	}
	return telegram.NewInlineKeyboard(rows...)
}

func applicationListKeyboard(apps []*application.Application) *telegram.InlineKeyboardMarkup {
	rows := make([][]telegram.InlineKeyboardButton, 0, len(apps))
	for _, app := range apps {
		rows = append(rows, telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton(
				fmt.Sprintf("#%d %s", app.ID(), app.PlayerName()),
				fmt.Sprintf("%s%d", cbAdminView, app.ID()),
			),
		))
	}
	return telegram.NewInlineKeyboard(rows...)
}

func newApplicationKeyboard(app *application.Application) *telegram.InlineKeyboardMarkup {
	id := app.ID()
	return telegram.NewInlineKeyboard(
		telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton("Открыть", fmt.Sprintf("%s%d", cbAdminView, id)),
		),
		telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton("Принять", fmt.Sprintf("%s%d", cbAdminApprove, id)),
			telegram.NewInlineKeyboardButton("Отклонить", fmt.Sprintf("%s%d", cbAdminReject, id)),
		),
	)
}
