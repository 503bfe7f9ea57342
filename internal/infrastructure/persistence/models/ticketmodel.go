package models

type TicketModel struct {
	ID              uint   `gorm:"primaryKey"`
	UserID          int64  `gorm:"not null;index"`
	Status          string `gorm:"size:20;not null;index"`
	AssignedAdminID *int64 `gorm:"index"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64  `gorm:"autoUpdateTime:milli;not null"`
	ClosedAt        *int64

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketMessageModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	SenderID   int64  `gorm:"not null;index"`
	Role       string `gorm:"size:10;not null"`
	Kind       string `gorm:"size:20;not null"`
	Content    string `gorm:"type:text;not null"`
	SenderName string `gorm:"size:255"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketMessageModel) TableName() string {
	return "ticket_messages"
}
