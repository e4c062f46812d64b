package repository

import (
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(usuario *models.Usuario) error
	GetByID(id string) (*models.Usuario, error)
	GetByEmail(email string) (*models.Usuario, error)
	GetAll() ([]models.Usuario, error)
	Update(usuario *models.Usuario) error
	Delete(id string) error
}

type usuarioRepository struct {
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

func (r *usuarioRepository) Create(usuario *models.Usuario) error {
	return r.db.Create(usuario).Error
}

func (r *usuarioRepository) GetByID(id string) (*models.Usuario, error) {
	var usuario models.Usuario
	err := r.db.First(&usuario, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) GetByEmail(email string) (*models.Usuario, error) {
	var usuario models.Usuario
	err := r.db.First(&usuario, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) GetAll() ([]models.Usuario, error) {
	var usuarios []models.Usuario
	err := r.db.Order("created_at DESC").Find(&usuarios).Error
	return usuarios, err
}

func (r *usuarioRepository) Update(usuario *models.Usuario) error {
	return r.db.Save(usuario).Error
}

func (r *usuarioRepository) Delete(id string) error {
	return r.db.Delete(&models.Usuario{}, "id = ?", id).Error
}
