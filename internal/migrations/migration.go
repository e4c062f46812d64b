package migrations

import (
	"errors"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/database"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/repository"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/services"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RunMigrations migrates the schema and seeds the default superuser.
func RunMigrations(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations")

	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	if err := createDefaultSuperuser(db, logger); err != nil {
		logger.Warn("Failed to create default superuser", zap.Error(err))
	}

	logger.Info("Database migrations completed")
	return nil
}

func createDefaultSuperuser(db *gorm.DB, logger *zap.Logger) error {
	usuarioRepo := repository.NewUsuarioRepository(db)
	usuarioService := services.NewUsuarioService(usuarioRepo)

	_, err := usuarioService.GetUsuarioByEmail("admin@usinasoft.com.br")
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin := &models.Usuario{
		Email:       "admin@usinasoft.com.br",
		FirstName:   "Admin",
		IsActive:    true,
		IsStaff:     true,
		IsSuperuser: true,
	}
	if err := usuarioService.CreateUsuario(admin, "admin123"); err != nil {
		return err
	}

	logger.Info("Default superuser created", zap.String("email", admin.Email))
	return nil
}
