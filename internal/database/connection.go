package database

import (
	"fmt"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(databaseURL), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Usuario{},
		&models.LogAcao{},
		&models.Cliente{},
		&models.OrdemProducao{},
		&models.Peca{},
		&models.OrdemProducaoItem{},
		&models.Atividade{},
		&models.Comentario{},
		&models.Anexo{},
	)
}
