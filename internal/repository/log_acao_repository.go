package repository

import (
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"

	"gorm.io/gorm"
)

// LogAcaoRepository is intentionally append-only: there is no update or
// delete method, and none should be added.
type LogAcaoRepository interface {
	Create(log *models.LogAcao) error
	GetByID(id string) (*models.LogAcao, error)
	GetAll() ([]models.LogAcao, error)
	GetByUsuarioID(usuarioID string) ([]models.LogAcao, error)
}

type logAcaoRepository struct {
	db *gorm.DB
}

func NewLogAcaoRepository(db *gorm.DB) LogAcaoRepository {
	return &logAcaoRepository{db: db}
}

func (r *logAcaoRepository) Create(log *models.LogAcao) error {
	return r.db.Create(log).Error
}

func (r *logAcaoRepository) GetByID(id string) (*models.LogAcao, error) {
	var log models.LogAcao
	err := r.db.First(&log, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *logAcaoRepository) GetAll() ([]models.LogAcao, error) {
	var logs []models.LogAcao
	err := r.db.Order("created_at DESC").Find(&logs).Error
	return logs, err
}

func (r *logAcaoRepository) GetByUsuarioID(usuarioID string) ([]models.LogAcao, error) {
	var logs []models.LogAcao
	err := r.db.Where("usuario_id = ?", usuarioID).Order("created_at DESC").Find(&logs).Error
	return logs, err
}
