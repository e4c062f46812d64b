package repository

import (
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"

	"gorm.io/gorm"
)

type ClienteRepository interface {
	Create(cliente *models.Cliente) error
	GetByID(id string) (*models.Cliente, error)
	GetAll() ([]models.Cliente, error)
	Update(cliente *models.Cliente) error
	Delete(id string) error
}

type clienteRepository struct {
	db *gorm.DB
}

func NewClienteRepository(db *gorm.DB) ClienteRepository {
	return &clienteRepository{db: db}
}

func (r *clienteRepository) Create(cliente *models.Cliente) error {
	return r.db.Create(cliente).Error
}

func (r *clienteRepository) GetByID(id string) (*models.Cliente, error) {
	var cliente models.Cliente
	err := r.db.First(&cliente, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (r *clienteRepository) GetAll() ([]models.Cliente, error) {
	var clientes []models.Cliente
	err := r.db.Order("nome").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepository) Update(cliente *models.Cliente) error {
	return r.db.Save(cliente).Error
}

func (r *clienteRepository) Delete(id string) error {
	return r.db.Delete(&models.Cliente{}, "id = ?", id).Error
}
