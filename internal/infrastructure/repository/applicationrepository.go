package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"minegate/internal/domain/application"
	vo "minegate/internal/domain/application/valueobjects"
	"minegate/internal/infrastructure/persistence/mappers"
	"minegate/internal/infrastructure/persistence/models"
	db "minegate/internal/shared/db"
	apperrors "minegate/internal/shared/errors"
)

// applicationFieldColumns maps field selectors to column names. Only fields
// in this table can be written through UpdateField; callers never supply a
// column name directly.
var applicationFieldColumns = map[vo.Field]string{
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

type ApplicationRepository struct {
	db     *gorm.DB
	mapper mappers.ApplicationMapper
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{
		db:     db,
		mapper: mappers.NewApplicationMapper(),
	}
}

func (r *ApplicationRepository) Save(ctx context.Context, app *application.Application) error {
	model := r.mapper.ToModel(app)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save application: %w", err)
	}

	return app.SetID(model.ID)
}

func (r *ApplicationRepository) Update(ctx context.Context, app *application.Application) error {
	model := r.mapper.ToModel(app)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ApplicationModel{}).
		Where("id = ?", model.ID).
		Select("status", "player_name", "age", "about", "plans", "community",
			"platform", "nickname_java", "nickname_bedrock", "referral",
			"comment", "edit_count", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update application: %w", result.Error)
	}

	return nil
}

// Delete removes the application and its media rows. The two deletes run in
// one transaction so a cascade never half-applies.
func (r *ApplicationRepository) Delete(ctx context.Context, applicationID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(inner *gorm.DB) error {
		if err := inner.
			Where("application_id = ?", applicationID).
			Delete(&models.ApplicationMediaModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete application media: %w", err)
		}
		if err := inner.
			Delete(&models.ApplicationModel{}, applicationID).Error; err != nil {
			return fmt.Errorf("failed to delete application: %w", err)
		}
		return nil
	})
}

func (r *ApplicationRepository) GetByID(ctx context.Context, applicationID uint) (*application.Application, error) {
	var model models.ApplicationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, applicationID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("application not found")
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// GetActiveByUserID returns the user's in-flight application, or nil when
// the user has none.
func (r *ApplicationRepository) GetActiveByUserID(ctx context.Context, userID int64) (*application.Application, error) {
	var model models.ApplicationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ApplicationRepository) ListByStatus(ctx context.Context, status vo.ApplicationStatus) ([]*application.Application, error) {
	var rows []models.ApplicationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("status = ?", status.String()).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	apps := make([]*application.Application, 0, len(rows))
	for i := range rows {
		app, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, nil
}

func (r *ApplicationRepository) UpdateField(ctx context.Context, applicationID uint, field vo.Field, value string) error {
	column, ok := applicationFieldColumns[field]
	if !ok {
		return apperrors.NewValidationError(fmt.Sprintf("field not updatable: %s", field))
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.ApplicationModel{}).
		Where("id = ?", applicationID).
		Update(column, value)

	if result.Error != nil {
		return fmt.Errorf("failed to update application field %s: %w", field, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("application not found")
	}
	return nil
}

type ApplicationMediaRepository struct {
	db     *gorm.DB
	mapper mappers.ApplicationMapper
}

func NewApplicationMediaRepository(db *gorm.DB) *ApplicationMediaRepository {
	return &ApplicationMediaRepository{
		db:     db,
		mapper: mappers.NewApplicationMapper(),
	}
}

func (r *ApplicationMediaRepository) Save(ctx context.Context, media *application.Media) error {
	model := r.mapper.MediaToModel(media)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save application media: %w", err)
	}
	return nil
}

func (r *ApplicationMediaRepository) ListByApplicationID(ctx context.Context, applicationID uint) ([]*application.Media, error) {
	var rows []models.ApplicationMediaModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("application_id = ?", applicationID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list application media: %w", err)
	}

	media := make([]*application.Media, 0, len(rows))
	for i := range rows {
		m, err := r.mapper.MediaToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		media = append(media, m)
	}
	return media, nil
}

func (r *ApplicationMediaRepository) CountByApplicationID(ctx context.Context, applicationID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ApplicationMediaModel{}).
		Where("application_id = ?", applicationID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count application media: %w", err)
	}
	return count, nil
}

func (r *ApplicationMediaRepository) DeleteByApplicationID(ctx context.Context, applicationID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("application_id = ?", applicationID).
		Delete(&models.ApplicationMediaModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete application media: %w", err)
	}
	return nil
}
