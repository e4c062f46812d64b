package repository

import (
	"fmt"
	"time"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"

	"gorm.io/gorm"
)

type OrdemProducaoRepository interface {
	Create(ordem *models.OrdemProducao) error
	GetByID(id string) (*models.OrdemProducao, error)
	GetByCodigo(codigo string) (*models.OrdemProducao, error)
	GetAll() ([]models.OrdemProducao, error)
	GetByPeriod(column string, start, end time.Time) ([]models.OrdemProducao, error)
	Update(ordem *models.OrdemProducao) error
	UpdateStatus(id string, status models.StatusOrdemProducao) error
	Delete(id string) error
	CountByCliente(clienteID string) (int64, error)
}

type ordemProducaoRepository struct {
	db *gorm.DB
}

func NewOrdemProducaoRepository(db *gorm.DB) OrdemProducaoRepository {
	return &ordemProducaoRepository{db: db}
}

func (r *ordemProducaoRepository) Create(ordem *models.OrdemProducao) error {
	return r.db.Create(ordem).Error
}

func (r *ordemProducaoRepository) GetByID(id string) (*models.OrdemProducao, error) {
	var ordem models.OrdemProducao
	err := r.db.First(&ordem, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ordem, nil
}

func (r *ordemProducaoRepository) GetByCodigo(codigo string) (*models.OrdemProducao, error) {
	var ordem models.OrdemProducao
	err := r.db.First(&ordem, "codigo = ?", codigo).Error
	if err != nil {
		return nil, err
	}
	return &ordem, nil
}

func (r *ordemProducaoRepository) GetAll() ([]models.OrdemProducao, error) {
	var ordens []models.OrdemProducao
	err := r.db.Order("created_at DESC").Find(&ordens).Error
	return ordens, err
}

// GetByPeriod filters orders by an inclusive window over the given column.
// The column name is validated by the caller against the known date fields.
func (r *ordemProducaoRepository) GetByPeriod(column string, start, end time.Time) ([]models.OrdemProducao, error) {
	var ordens []models.OrdemProducao
	cond := fmt.Sprintf("%s >= ? AND %s <= ?", column, column)
	err := r.db.Where(cond, start, end).Find(&ordens).Error
	return ordens, err
}

func (r *ordemProducaoRepository) Update(ordem *models.OrdemProducao) error {
	return r.db.Save(ordem).Error
}

// UpdateStatus persists a derived status in a single write, bumping
// updated_at together with it.
func (r *ordemProducaoRepository) UpdateStatus(id string, status models.StatusOrdemProducao) error {
	return r.db.Model(&models.OrdemProducao{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

func (r *ordemProducaoRepository) Delete(id string) error {
	return r.db.Delete(&models.OrdemProducao{}, "id = ?", id).Error
}

func (r *ordemProducaoRepository) CountByCliente(clienteID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.OrdemProducao{}).Where("cliente_id = ?", clienteID).Count(&count).Error
	return count, err
}
