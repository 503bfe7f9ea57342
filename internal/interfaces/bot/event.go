package bot

import (
	"fmt"
	"strconv"
	"strings"

	appvo "minegate/internal/domain/application/valueobjects"
	"minegate/internal/infrastructure/telegram"
)

// Action is the closed set of things an inbound update can ask for. Every
// callback string and command is parsed into one of these exactly once, in
// ParseUpdate; nothing downstream compares routing strings.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionMainMenu
	ActionText
	ActionMedia

	ActionApplyStart
	ActionFormAccept
	ActionFormBack
	ActionFormContinue
	ActionFormSubmit
	ActionFormCancel
	ActionPlatformChoice
	ActionAppEdit

	ActionTicketOpen
	ActionTicketContinue
	ActionTicketNew
	ActionTicketClose

	ActionAdminList
	ActionAdminView
	ActionAdminApprove
	ActionAdminReject
	ActionAdminComment
	ActionAdminDelete
	ActionAdminGrantEdit
	ActionAdminClaim
	ActionAdminClose
	ActionAdminTranscript
	ActionAdminLeave
)

// Callback data values. They exist only here and in the keyboard builders;
// the router switches on Action.
const (
	cbMainMenu     = "menu"
	cbApply        = "apply"
	cbFormAccept   = "form_accept"
	cbFormBack     = "form_back"
	cbFormContinue = "form_continue"
	cbFormSubmit   = "form_submit"
	cbFormCancel   = "form_cancel"
	cbPlatform     = "platform_"   // platform_<java|bedrock|both>
	cbAppEdit      = "app_edit_"   // app_edit_<applicationID>
	cbTicketOpen   = "ticket_open"
	cbTicketCont   = "ticket_continue_" // ticket_continue_<ticketID>
	cbTicketNew    = "ticket_new"
	cbTicketClose  = "ticket_close_" // ticket_close_<ticketID>

	cbAdminList       = "adm_list_" // adm_list_<status>
	cbAdminView       = "adm_view_"
	cbAdminApprove    = "adm_approve_"
	cbAdminReject     = "adm_reject_"
	cbAdminComment    = "adm_comment_"
	cbAdminDelete     = "adm_delete_"
	cbAdminGrantEdit  = "adm_edit_"
	cbAdminClaim      = "adm_claim_" // adm_claim_<ticketID>
	cbAdminClose      = "adm_close_"
	cbAdminTranscript = "adm_log_"
	cbAdminLeave      = "adm_leave"
)

// MediaPayload is the attachment carried by an ActionMedia event. Kind uses
// the transport vocabulary (photo, video, document, sticker).
type MediaPayload struct {
	FileID string
	Kind   string
}

// Event is the typed form of one inbound update.
type Event struct {
	Action      Action
	UserID      int64
	ChatID      int64
	DisplayName string
	IsAdmin     bool

	Text     string
	Media    *MediaPayload
	TargetID uint
	Platform appvo.Platform
	Status   appvo.ApplicationStatus

	// CallbackID is set for button presses and must be answered.
	CallbackID string
}

// ParseUpdate converts a raw Telegram update into an Event. isAdmin is the
// injected allow-list check, evaluated per event.
func ParseUpdate(u *telegram.Update, isAdmin func(int64) bool) (*Event, error) {
	switch {
	case u.CallbackQuery != nil:
		return parseCallback(u.CallbackQuery, isAdmin)
	case u.Message != nil:
		return parseMessage(u.Message, isAdmin)
	default:
		return nil, nil
	}
}

func parseMessage(m *telegram.Message, isAdmin func(int64) bool) (*Event, error) {
	if m.From == nil || m.Chat == nil {
		return nil, nil
	}
	ev := &Event{
		UserID:      m.From.ID,
		ChatID:      m.Chat.ID,
		DisplayName: m.From.DisplayName(),
		IsAdmin:     isAdmin(m.From.ID),
	}

	if media := extractMedia(m); media != nil {
		ev.Action = ActionMedia
		ev.Media = media
		ev.Text = m.Caption
		return ev, nil
	}

	text := strings.TrimSpace(m.Text)
	switch {
	case strings.HasPrefix(text, "/start"):
		ev.Action = ActionStart
		ev.Text = strings.TrimSpace(strings.TrimPrefix(text, "/start"))
	case text == "/menu":
		ev.Action = ActionMainMenu
	case text != "":
		ev.Action = ActionText
		ev.Text = text
	default:
		// Unsupported content (voice, location, ...) falls through as an
		// empty media event so the sender gets a retry prompt.
		ev.Action = ActionMedia
		ev.Media = &MediaPayload{}
	}
	return ev, nil
}

func parseCallback(q *telegram.CallbackQuery, isAdmin func(int64) bool) (*Event, error) {
	if q.From == nil {
		return nil, nil
	}
	ev := &Event{
		UserID:      q.From.ID,
		DisplayName: q.From.DisplayName(),
		IsAdmin:     isAdmin(q.From.ID),
		CallbackID:  q.ID,
	}
	if q.Message != nil && q.Message.Chat != nil {
		ev.ChatID = q.Message.Chat.ID
	} else {
		ev.ChatID = q.From.ID
	}

	data := q.Data
	switch {
	case data == cbMainMenu:
		ev.Action = ActionMainMenu
	case data == cbApply:
		ev.Action = ActionApplyStart
	case data == cbFormAccept:
		ev.Action = ActionFormAccept
	case data == cbFormBack:
		ev.Action = ActionFormBack
	case data == cbFormContinue:
		ev.Action = ActionFormContinue
	case data == cbFormSubmit:
		ev.Action = ActionFormSubmit
	case data == cbFormCancel:
		ev.Action = ActionFormCancel
	case strings.HasPrefix(data, cbPlatform):
		platform := appvo.Platform(strings.TrimPrefix(data, cbPlatform))
		if !platform.IsValid() {
			return nil, fmt.Errorf("invalid platform callback: %s", data)
		}
		ev.Action = ActionPlatformChoice
		ev.Platform = platform
	case data == cbTicketOpen:
		ev.Action = ActionTicketOpen
	case data == cbTicketNew:
		ev.Action = ActionTicketNew
	case strings.HasPrefix(data, cbTicketCont):
		return withTarget(ev, ActionTicketContinue, data, cbTicketCont)
	case strings.HasPrefix(data, cbTicketClose):
		return withTarget(ev, ActionTicketClose, data, cbTicketClose)
	case strings.HasPrefix(data, cbAppEdit):
		return withTarget(ev, ActionAppEdit, data, cbAppEdit)
	case strings.HasPrefix(data, cbAdminList):
		status := appvo.ApplicationStatus(strings.TrimPrefix(data, cbAdminList))
		if !status.IsValid() {
			return nil, fmt.Errorf("invalid status callback: %s", data)
		}
		ev.Action = ActionAdminList
		ev.Status = status
	case strings.HasPrefix(data, cbAdminView):
		return withTarget(ev, ActionAdminView, data, cbAdminView)
	case strings.HasPrefix(data, cbAdminApprove):
		return withTarget(ev, ActionAdminApprove, data, cbAdminApprove)
	case strings.HasPrefix(data, cbAdminReject):
		return withTarget(ev, ActionAdminReject, data, cbAdminReject)
	case strings.HasPrefix(data, cbAdminComment):
		return withTarget(ev, ActionAdminComment, data, cbAdminComment)
	case strings.HasPrefix(data, cbAdminDelete):
		return withTarget(ev, ActionAdminDelete, data, cbAdminDelete)
	case strings.HasPrefix(data, cbAdminGrantEdit):
		return withTarget(ev, ActionAdminGrantEdit, data, cbAdminGrantEdit)
	case strings.HasPrefix(data, cbAdminClaim):
		return withTarget(ev, ActionAdminClaim, data, cbAdminClaim)
	case strings.HasPrefix(data, cbAdminClose):
		return withTarget(ev, ActionAdminClose, data, cbAdminClose)
	case strings.HasPrefix(data, cbAdminTranscript):
		return withTarget(ev, ActionAdminTranscript, data, cbAdminTranscript)
	case data == cbAdminLeave:
		ev.Action = ActionAdminLeave
	default:
		return nil, fmt.Errorf("unknown callback data: %s", data)
	}
	return ev, nil
}

func withTarget(ev *Event, action Action, data, prefix string) (*Event, error) {
	id, err := strconv.ParseUint(strings.TrimPrefix(data, prefix), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("malformed callback target in %q: %w", data, err)
	}
	ev.Action = action
	ev.TargetID = uint(id)
	return ev, nil
}

// extractMedia pulls the attachment reference out of a message. For photos
// the largest size variant is used.
func extractMedia(m *telegram.Message) *MediaPayload {
	switch {
	case len(m.Photo) > 0:
		return &MediaPayload{FileID: m.Photo[len(m.Photo)-1].FileID, Kind: "photo"}
	case m.Video != nil:
		return &MediaPayload{FileID: m.Video.FileID, Kind: "video"}
	case m.Document != nil:
		return &MediaPayload{FileID: m.Document.FileID, Kind: "document"}
	case m.Sticker != nil:
		return &MediaPayload{FileID: m.Sticker.FileID, Kind: "sticker"}
	default:
		return nil
	}
}

// ParseStartPayload maps an admin deep-link payload (verb_<id>) onto the
// equivalent callback action. Returns ActionNone for payloads that carry no
// admin verb.
func ParseStartPayload(payload string) (Action, uint) {
	for prefix, action := range map[string]Action{
		"approve_": ActionAdminApprove,
		"reject_":  ActionAdminReject,
		"comment_": ActionAdminComment,
		"delete_":  ActionAdminDelete,
		"view_":    ActionAdminView,
	} {
		if strings.HasPrefix(payload, prefix) {
			id, err := strconv.ParseUint(strings.TrimPrefix(payload, prefix), 10, 32)
			if err != nil {
				return ActionNone, 0
			}
			return action, uint(id)
		}
	}
	return ActionNone, 0
}
