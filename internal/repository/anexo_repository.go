package repository

import (
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"

	"gorm.io/gorm"
)

type AnexoRepository interface {
	Create(anexo *models.Anexo) error
	GetByID(id string) (*models.Anexo, error)
	GetAll() ([]models.Anexo, error)
	GetByAlvo(alvoTipo models.TipoAlvo, alvoID string) ([]models.Anexo, error)
	Delete(id string) error
}

type anexoRepository struct {
	db *gorm.DB
}

func NewAnexoRepository(db *gorm.DB) AnexoRepository {
	return &anexoRepository{db: db}
}

func (r *anexoRepository) Create(anexo *models.Anexo) error {
	return r.db.Create(anexo).Error
}

func (r *anexoRepository) GetByID(id string) (*models.Anexo, error) {
	var anexo models.Anexo
	err := r.db.First(&anexo, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &anexo, nil
}

func (r *anexoRepository) GetAll() ([]models.Anexo, error) {
	var anexos []models.Anexo
	err := r.db.Order("created_at DESC").Find(&anexos).Error
	return anexos, err
}

func (r *anexoRepository) GetByAlvo(alvoTipo models.TipoAlvo, alvoID string) ([]models.Anexo, error) {
	var anexos []models.Anexo
	err := r.db.Where("alvo_tipo = ? AND alvo_id = ?", string(alvoTipo), alvoID).
		Order("created_at DESC").Find(&anexos).Error
	return anexos, err
}

func (r *anexoRepository) Delete(id string) error {
	return r.db.Delete(&models.Anexo{}, "id = ?", id).Error
}
