package mappers

import (
	"time"

	"minegate/internal/domain/application"
	vo "minegate/internal/domain/application/valueobjects"
	"minegate/internal/infrastructure/persistence/models"
)

// DraftMapper handles the conversion between FormDraft domain entities and
// persistence models. Draft media rows are carried separately because they
// live in their own table.
type DraftMapper interface {
	ToModel(d *application.FormDraft) *models.FormDraftModel
	ToDomain(model *models.FormDraftModel, media []models.FormDraftMediaModel) (*application.FormDraft, error)
	MediaToModel(userID int64, m application.DraftMedia) *models.FormDraftMediaModel
}

type DraftMapperImpl struct{}

func NewDraftMapper() DraftMapper {
	return &DraftMapperImpl{}
}

func (m *DraftMapperImpl) ToModel(d *application.FormDraft) *models.FormDraftModel {
	profile := d.Profile()
	return &models.FormDraftModel{
		UserID:          d.UserID(),
		Step:            d.Step().String(),
		ApplicationID:   d.ApplicationID(),
		PlayerName:      profile.PlayerName,
		Age:             profile.Age,
		About:           profile.About,
		Plans:           profile.Plans,
		Community:       profile.Community,
		Platform:        profile.Platform.String(),
		NicknameJava:    profile.JavaNickname,
		NicknameBedrock: profile.BedrockNickname,
		Referral:        profile.Referral,
		CreatedAt:       d.CreatedAt().UnixMilli(),
		UpdatedAt:       d.UpdatedAt().UnixMilli(),
	}
}

func (m *DraftMapperImpl) ToDomain(model *models.FormDraftModel, media []models.FormDraftMediaModel) (*application.FormDraft, error) {
	draftMedia := make([]application.DraftMedia, 0, len(media))
	for _, row := range media {
		draftMedia = append(draftMedia, application.DraftMedia{
			FileID:   row.FileID,
			Kind:     vo.MediaKind(row.Kind),
			Category: vo.MediaCategory(row.Category),
		})
	}

	return application.ReconstructFormDraft(
		model.UserID,
		vo.FormStep(model.Step),
		model.ApplicationID,
		application.Profile{
			PlayerName:      model.PlayerName,
			Age:             model.Age,
			About:           model.About,
			Plans:           model.Plans,
			Community:       model.Community,
			Platform:        vo.Platform(model.Platform),
			JavaNickname:    model.NicknameJava,
			BedrockNickname: model.NicknameBedrock,
			Referral:        model.Referral,
		},
		draftMedia,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *DraftMapperImpl) MediaToModel(userID int64, media application.DraftMedia) *models.FormDraftMediaModel {
	return &models.FormDraftMediaModel{
		UserID:   userID,
		FileID:   media.FileID,
		Kind:     media.Kind.String(),
		Category: media.Category.String(),
	}
}
