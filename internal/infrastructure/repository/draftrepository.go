package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"minegate/internal/domain/application"
	vo "minegate/internal/domain/application/valueobjects"
	"minegate/internal/infrastructure/persistence/mappers"
	"minegate/internal/infrastructure/persistence/models"
	db "minegate/internal/shared/db"
	apperrors "minegate/internal/shared/errors"
)

// draftFieldColumns is the allow-list of answer columns writable through
// UpdateField.
var draftFieldColumns = map[vo.Field]string{
	vo.FieldPlayerName:      "player_name",
	vo.FieldAge:             "age",
	vo.FieldAbout:           "about",
	vo.FieldPlans:           "plans",
	vo.FieldCommunity:       "community",
	vo.FieldPlatform:        "platform",
	vo.FieldJavaNickname:    "nickname_java",
	vo.FieldBedrockNickname: "nickname_bedrock",
	vo.FieldReferral:        "referral",
}

type FormDraftRepository struct {
	db     *gorm.DB
	mapper mappers.DraftMapper
}

func NewFormDraftRepository(db *gorm.DB) *FormDraftRepository {
	return &FormDraftRepository{
		db:     db,
		mapper: mappers.NewDraftMapper(),
	}
}

// Save upserts the draft row and replaces its media rows. Used when a draft
// is created or reset; incremental answers go through UpdateField instead.
func (r *FormDraftRepository) Save(ctx context.Context, draft *application.FormDraft) error {
	model := r.mapper.ToModel(draft)
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(inner *gorm.DB) error {
		if err := inner.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).Create(model).Error; err != nil {
			return fmt.Errorf("failed to save form draft: %w", err)
		}

		if err := inner.
			Where("user_id = ?", draft.UserID()).
			Delete(&models.FormDraftMediaModel{}).Error; err != nil {
			return fmt.Errorf("failed to reset draft media: %w", err)
		}
		for _, m := range draft.Media() {
			if err := inner.Create(r.mapper.MediaToModel(draft.UserID(), m)).Error; err != nil {
				return fmt.Errorf("failed to save draft media: %w", err)
			}
		}
		return nil
	})
}

func (r *FormDraftRepository) GetByUserID(ctx context.Context, userID int64) (*application.FormDraft, error) {
	var model models.FormDraftModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("form draft not found")
		}
		return nil, fmt.Errorf("failed to find form draft: %w", err)
	}

	var media []models.FormDraftMediaModel
	if err := tx.
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&media).Error; err != nil {
		return nil, fmt.Errorf("failed to load draft media: %w", err)
	}

	return r.mapper.ToDomain(&model, media)
}

func (r *FormDraftRepository) UpdateField(ctx context.Context, userID int64, field vo.Field, value string) error {
	column, ok := draftFieldColumns[field]
	if !ok {
		return apperrors.NewValidationError(fmt.Sprintf("field not updatable: %s", field))
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.FormDraftModel{}).
		Where("user_id = ?", userID).
		Update(column, value)

	if result.Error != nil {
		return fmt.Errorf("failed to update draft field %s: %w", field, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("form draft not found")
	}
	return nil
}

func (r *FormDraftRepository) UpdateStep(ctx context.Context, userID int64, step vo.FormStep) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.FormDraftModel{}).
		Where("user_id = ?", userID).
		Update("step", step.String())

	if result.Error != nil {
		return fmt.Errorf("failed to update draft step: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("form draft not found")
	}
	return nil
}

func (r *FormDraftRepository) AddMedia(ctx context.Context, userID int64, media application.DraftMedia) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(r.mapper.MediaToModel(userID, media)).Error; err != nil {
		return fmt.Errorf("failed to add draft media: %w", err)
	}
	return nil
}

// Delete removes the draft and its media rows.
func (r *FormDraftRepository) Delete(ctx context.Context, userID int64) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(inner *gorm.DB) error {
		if err := inner.
			Where("user_id = ?", userID).
			Delete(&models.FormDraftMediaModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete draft media: %w", err)
		}
		if err := inner.
			Where("user_id = ?", userID).
			Delete(&models.FormDraftModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete form draft: %w", err)
		}
		return nil
	})
}
