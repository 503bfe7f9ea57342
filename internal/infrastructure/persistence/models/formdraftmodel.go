package models

// FormDraftModel persists in-progress form answers, one row per user.
// Answers are written field-by-field as they arrive.
type FormDraftModel struct {
	UserID          int64  `gorm:"primaryKey;autoIncrement:false"`
	Step            string `gorm:"size:30;not null"`
	ApplicationID   *uint  `gorm:"index"`
	PlayerName      string `gorm:"size:255"`
	Age             string `gorm:"size:10"`
	About           string `gorm:"type:text"`
	Plans           string `gorm:"type:text"`
	Community       string `gorm:"type:text"`
	Platform        string `gorm:"size:20"`
	NicknameJava    string `gorm:"size:255"`
	NicknameBedrock string `gorm:"size:255"`
	Referral        string `gorm:"type:text"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (FormDraftModel) TableName() string {
	return "form_drafts"
}

type FormDraftMediaModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    int64  `gorm:"not null;index"`
	FileID    string `gorm:"size:255;not null"`
	Kind      string `gorm:"size:20;not null"`
	Category  string `gorm:"size:20;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (FormDraftMediaModel) TableName() string {
	return "form_draft_media"
}
