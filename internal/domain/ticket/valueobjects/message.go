package valueobjects

// SenderRole distinguishes the two sides of a ticket conversation.
type SenderRole string

const (
	RoleUser  SenderRole = "user"
	RoleAdmin SenderRole = "admin"
)

func (r SenderRole) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

func (r SenderRole) String() string {
	return string(r)
}

// MessageKind is the content type of a relayed ticket message. Kinds outside
// this set are rejected at the sender's side before persistence.
type MessageKind string

const (
	KindText     MessageKind = "text"
	KindPhoto    MessageKind = "photo"
	KindVideo    MessageKind = "video"
	KindDocument MessageKind = "document"
	KindSticker  MessageKind = "sticker"
)

var validMessageKinds = map[MessageKind]bool{
	KindText:     true,
	KindPhoto:    true,
	KindVideo:    true,
	KindDocument: true,
	KindSticker:  true,
}

func (k MessageKind) IsValid() bool {
	return validMessageKinds[k]
}

func (k MessageKind) String() string {
	return string(k)
}
