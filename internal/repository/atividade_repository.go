package repository

import (
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"

	"gorm.io/gorm"
)

type AtividadeRepository interface {
	Create(atividade *models.Atividade) error
	GetByID(id string) (*models.Atividade, error)
	GetAll() ([]models.Atividade, error)
	GetByPecaID(pecaID string) ([]models.Atividade, error)
	Update(atividade *models.Atividade) error
	Delete(id string) error
	DesvincularPeca(pecaID string) error
	DesvincularOrdem(ordemID string) error
	DesvincularOrdemItem(itemID string) error
}

type atividadeRepository struct {
	db *gorm.DB
}

func NewAtividadeRepository(db *gorm.DB) AtividadeRepository {
	return &atividadeRepository{db: db}
}

func (r *atividadeRepository) Create(atividade *models.Atividade) error {
	return r.db.Create(atividade).Error
}

func (r *atividadeRepository) GetByID(id string) (*models.Atividade, error) {
	var atividade models.Atividade
	err := r.db.First(&atividade, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &atividade, nil
}

func (r *atividadeRepository) GetAll() ([]models.Atividade, error) {
	var atividades []models.Atividade
	err := r.db.Order("posicao, created_at DESC").Find(&atividades).Error
	return atividades, err
}

func (r *atividadeRepository) GetByPecaID(pecaID string) ([]models.Atividade, error) {
	var atividades []models.Atividade
	err := r.db.Where("peca_id = ?", pecaID).Find(&atividades).Error
	return atividades, err
}

func (r *atividadeRepository) Update(atividade *models.Atividade) error {
	return r.db.Save(atividade).Error
}

func (r *atividadeRepository) Delete(id string) error {
	return r.db.Delete(&models.Atividade{}, "id = ?", id).Error
}

// DesvincularPeca clears activity links to a part about to be deleted.
// Activities survive the delete; only the reference is nulled.
func (r *atividadeRepository) DesvincularPeca(pecaID string) error {
	return r.db.Model(&models.Atividade{}).Where("peca_id = ?", pecaID).
		Update("peca_id", nil).Error
}

func (r *atividadeRepository) DesvincularOrdem(ordemID string) error {
	return r.db.Model(&models.Atividade{}).Where("ordem_id = ?", ordemID).
		Update("ordem_id", nil).Error
}

func (r *atividadeRepository) DesvincularOrdemItem(itemID string) error {
	return r.db.Model(&models.Atividade{}).Where("ordem_item_id = ?", itemID).
		Update("ordem_item_id", nil).Error
}
