package models

// UserModel persists Telegram accounts. The primary key is the
// platform-assigned Telegram user ID, not an auto-increment.
type UserModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement:false"`
	DisplayName string `gorm:"size:255;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UserModel) TableName() string {
	return "users"
}
