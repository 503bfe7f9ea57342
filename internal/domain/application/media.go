package application

import (
	"fmt"
	"time"

	vo "minegate/internal/domain/application/valueobjects"
)

// Media is one attachment owned by an application. Attachments are created
// during form fill and deleted en masse when the application is deleted or
// re-edited.
type Media struct {
	id            uint
	applicationID uint
	fileID        string
	kind          vo.MediaKind
	category      vo.MediaCategory
	createdAt     time.Time
}

func NewMedia(applicationID uint, fileID string, kind vo.MediaKind, category vo.MediaCategory) (*Media, error) {
	if applicationID == 0 {
		return nil, fmt.Errorf("application ID is required")
	}
	if fileID == "" {
		return nil, fmt.Errorf("file reference is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid media kind: %s", kind)
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid media category: %s", category)
	}
	return &Media{
		applicationID: applicationID,
		fileID:        fileID,
		kind:          kind,
		category:      category,
		createdAt:     time.Now(),
	}, nil
}

func ReconstructMedia(id, applicationID uint, fileID string, kind vo.MediaKind, category vo.MediaCategory, createdAt time.Time) (*Media, error) {
	if id == 0 {
		return nil, fmt.Errorf("media ID cannot be zero")
	}
	return &Media{
		id:            id,
		applicationID: applicationID,
		fileID:        fileID,
		kind:          kind,
		category:      category,
		createdAt:     createdAt,
	}, nil
}

func (m *Media) ID() uint                      { return m.id }
func (m *Media) ApplicationID() uint           { return m.applicationID }
func (m *Media) FileID() string                { return m.fileID }
func (m *Media) Kind() vo.MediaKind            { return m.kind }
func (m *Media) Category() vo.MediaCategory    { return m.category }
func (m *Media) CreatedAt() time.Time          { return m.createdAt }
