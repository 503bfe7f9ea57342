package migrations

import (
	"minegate/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

func MigrateUserTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
	)
}

func MigrateApplicationTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ApplicationModel{},
		&models.ApplicationMediaModel{},
		&models.FormDraftModel{},
		&models.FormDraftMediaModel{},
	)
}

func MigrateTicketTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.TicketModel{},
		&models.TicketMessageModel{},
	)
}

// MigrateAll runs every table migration in dependency order.
func MigrateAll(db *gorm.DB) error {
	if err := MigrateUserTables(db); err != nil {
		return err
	}
	if err := MigrateApplicationTables(db); err != nil {
		return err
	}
	return MigrateTicketTables(db)
}
