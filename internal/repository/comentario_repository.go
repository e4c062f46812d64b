package repository

import (
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"

	"gorm.io/gorm"
)

type ComentarioRepository interface {
	Create(comentario *models.Comentario) error
	GetByID(id string) (*models.Comentario, error)
	GetAll() ([]models.Comentario, error)
	GetByAtividadeID(atividadeID string) ([]models.Comentario, error)
	Delete(id string) error
}

type comentarioRepository struct {
	db *gorm.DB
}

func NewComentarioRepository(db *gorm.DB) ComentarioRepository {
	return &comentarioRepository{db: db}
}

func (r *comentarioRepository) Create(comentario *models.Comentario) error {
	return r.db.Create(comentario).Error
}

func (r *comentarioRepository) GetByID(id string) (*models.Comentario, error) {
	var comentario models.Comentario
	err := r.db.First(&comentario, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &comentario, nil
}

func (r *comentarioRepository) GetAll() ([]models.Comentario, error) {
	var comentarios []models.Comentario
	err := r.db.Order("created_at").Find(&comentarios).Error
	return comentarios, err
}

func (r *comentarioRepository) GetByAtividadeID(atividadeID string) ([]models.Comentario, error) {
	var comentarios []models.Comentario
	err := r.db.Where("atividade_id = ?", atividadeID).Order("created_at").Find(&comentarios).Error
	return comentarios, err
}

func (r *comentarioRepository) Delete(id string) error {
	return r.db.Delete(&models.Comentario{}, "id = ?", id).Error
}
