package models

type ApplicationModel struct {
	ID              uint   `gorm:"primaryKey"`
	UserID          int64  `gorm:"not null;index"`
	Status          string `gorm:"size:20;not null;index"`
	PlayerName      string `gorm:"size:255;not null"`
	Age             string `gorm:"size:10"`
	About           string `gorm:"type:text"`
	Plans           string `gorm:"type:text"`
	Community       string `gorm:"type:text"`
	Platform        string `gorm:"size:20;not null"`
	NicknameJava    string `gorm:"size:255"`
	NicknameBedrock string `gorm:"size:255"`
	Referral        string `gorm:"type:text"`
	Comment         string `gorm:"type:text"`
	EditCount       int    `gorm:"not null;default:0"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ApplicationModel) TableName() string {
	return "applications"
}

type ApplicationMediaModel struct {
	ID            uint   `gorm:"primaryKey"`
	ApplicationID uint   `gorm:"not null;index"`
	FileID        string `gorm:"size:255;not null"`
	Kind          string `gorm:"size:20;not null"`
	Category      string `gorm:"size:20;not null;index"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null"`
}

func (ApplicationMediaModel) TableName() string {
	return "application_media"
}
