package mappers

import (
	"time"

	"minegate/internal/domain/application"
	vo "minegate/internal/domain/application/valueobjects"
	"minegate/internal/infrastructure/persistence/models"
)

// ApplicationMapper handles the conversion between Application domain
// entities and persistence models.
type ApplicationMapper interface {
	ToModel(a *application.Application) *models.ApplicationModel
	ToDomain(model *models.ApplicationModel) (*application.Application, error)
	MediaToModel(m *application.Media) *models.ApplicationMediaModel
	MediaToDomain(model *models.ApplicationMediaModel) (*application.Media, error)
}

type ApplicationMapperImpl struct{}

func NewApplicationMapper() ApplicationMapper {
	return &ApplicationMapperImpl{}
}

func (m *ApplicationMapperImpl) ToModel(a *application.Application) *models.ApplicationModel {
	return &models.ApplicationModel{
		ID:              a.ID(),
		UserID:          a.UserID(),
		Status:          a.Status().String(),
		PlayerName:      a.PlayerName(),
		Age:             a.Age(),
		About:           a.About(),
		Plans:           a.Plans(),
		Community:       a.Community(),
		Platform:        a.Platform().String(),
		NicknameJava:    a.JavaNickname(),
		NicknameBedrock: a.BedrockNickname(),
		Referral:        a.Referral(),
		Comment:         a.Comment(),
		EditCount:       a.EditCount(),
		CreatedAt:       a.CreatedAt().UnixMilli(),
		UpdatedAt:       a.UpdatedAt().UnixMilli(),
	}
}

func (m *ApplicationMapperImpl) ToDomain(model *models.ApplicationModel) (*application.Application, error) {
	return application.ReconstructApplication(
		model.ID,
		model.UserID,
		vo.ApplicationStatus(model.Status),
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
		model.Comment,
		model.EditCount,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *ApplicationMapperImpl) MediaToModel(media *application.Media) *models.ApplicationMediaModel {
	return &models.ApplicationMediaModel{
		ID:            media.ID(),
		ApplicationID: media.ApplicationID(),
		FileID:        media.FileID(),
		Kind:          media.Kind().String(),
		Category:      media.Category().String(),
		CreatedAt:     media.CreatedAt().UnixMilli(),
	}
}

func (m *ApplicationMapperImpl) MediaToDomain(model *models.ApplicationMediaModel) (*application.Media, error) {
	return application.ReconstructMedia(
		model.ID,
		model.ApplicationID,
		model.FileID,
		vo.MediaKind(model.Kind),
		vo.MediaCategory(model.Category),
		time.UnixMilli(model.CreatedAt),
	)
}
