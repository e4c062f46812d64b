package repository

import (
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"

	"gorm.io/gorm"
)

type OrdemItemRepository interface {
	Create(item *models.OrdemProducaoItem) error
	GetByID(id string) (*models.OrdemProducaoItem, error)
	GetAll() ([]models.OrdemProducaoItem, error)
	GetByOrdemID(ordemID string) ([]models.OrdemProducaoItem, error)
	Update(item *models.OrdemProducaoItem) error
	Delete(id string) error
	CountByPeca(pecaID string) (int64, error)
}

type ordemItemRepository struct {
	db *gorm.DB
}

func NewOrdemItemRepository(db *gorm.DB) OrdemItemRepository {
	return &ordemItemRepository{db: db}
}

func (r *ordemItemRepository) Create(item *models.OrdemProducaoItem) error {
	return r.db.Create(item).Error
}

func (r *ordemItemRepository) GetByID(id string) (*models.OrdemProducaoItem, error) {
	var item models.OrdemProducaoItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ordemItemRepository) GetAll() ([]models.OrdemProducaoItem, error) {
	var itens []models.OrdemProducaoItem
	err := r.db.Order("created_at DESC").Find(&itens).Error
	return itens, err
}

func (r *ordemItemRepository) GetByOrdemID(ordemID string) ([]models.OrdemProducaoItem, error) {
	var itens []models.OrdemProducaoItem
	err := r.db.Where("ordem_id = ?", ordemID).Order("created_at DESC").Find(&itens).Error
	return itens, err
}

func (r *ordemItemRepository) Update(item *models.OrdemProducaoItem) error {
	return r.db.Save(item).Error
}

func (r *ordemItemRepository) Delete(id string) error {
	return r.db.Delete(&models.OrdemProducaoItem{}, "id = ?", id).Error
}

func (r *ordemItemRepository) CountByPeca(pecaID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.OrdemProducaoItem{}).Where("peca_id = ?", pecaID).Count(&count).Error
	return count, err
}
