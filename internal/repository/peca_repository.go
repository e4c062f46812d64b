package repository

import (
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"

	"gorm.io/gorm"
)

type PecaRepository interface {
	Create(peca *models.Peca) error
	GetByID(id string) (*models.Peca, error)
	GetAll() ([]models.Peca, error)
	GetByOrdemID(ordemID string) ([]models.Peca, error)
	GetByOrdemIDs(ordemIDs []string) ([]models.Peca, error)
	GetByOrdemCodigo(codigo string) ([]models.Peca, error)
	Update(peca *models.Peca) error
	Delete(id string) error
	CountByCliente(clienteID string) (int64, error)
}

type pecaRepository struct {
	db *gorm.DB
}

func NewPecaRepository(db *gorm.DB) PecaRepository {
	return &pecaRepository{db: db}
}

func (r *pecaRepository) Create(peca *models.Peca) error {
	return r.db.Create(peca).Error
}

func (r *pecaRepository) GetByID(id string) (*models.Peca, error) {
	var peca models.Peca
	err := r.db.Preload("Cliente").First(&peca, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &peca, nil
}

func (r *pecaRepository) GetAll() ([]models.Peca, error) {
	var pecas []models.Peca
	err := r.db.Preload("Cliente").Order("created_at DESC").Find(&pecas).Error
	return pecas, err
}

func (r *pecaRepository) GetByOrdemID(ordemID string) ([]models.Peca, error) {
	var pecas []models.Peca
	err := r.db.Preload("Cliente").Where("ordem_producao_id = ?", ordemID).
		Order("created_at DESC").Find(&pecas).Error
	return pecas, err
}

func (r *pecaRepository) GetByOrdemIDs(ordemIDs []string) ([]models.Peca, error) {
	if len(ordemIDs) == 0 {
		return nil, nil
	}
	var pecas []models.Peca
	err := r.db.Where("ordem_producao_id IN ?", ordemIDs).Find(&pecas).Error
	return pecas, err
}

func (r *pecaRepository) GetByOrdemCodigo(codigo string) ([]models.Peca, error) {
	var pecas []models.Peca
	err := r.db.Preload("Cliente").
		Joins("JOIN ordens_producao ON ordens_producao.id = pecas.ordem_producao_id").
		Where("ordens_producao.codigo = ?", codigo).
		Order("pecas.created_at DESC").Find(&pecas).Error
	return pecas, err
}

func (r *pecaRepository) Update(peca *models.Peca) error {
	return r.db.Save(peca).Error
}

func (r *pecaRepository) Delete(id string) error {
	return r.db.Delete(&models.Peca{}, "id = ?", id).Error
}

func (r *pecaRepository) CountByCliente(clienteID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Peca{}).Where("cliente_id = ?", clienteID).Count(&count).Error
	return count, err
}
