package services

import (
	"fmt"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/repository"

	"gorm.io/gorm"
)

type AtividadeService interface {
	CreateAtividade(atividade *models.Atividade) error
	GetAtividadeByID(id string) (*models.Atividade, error)
	GetAllAtividades() ([]models.Atividade, error)
	UpdateAtividade(atividade *models.Atividade) error
	DeleteAtividade(id string) error

	CreateComentario(comentario *models.Comentario) error
	GetComentarioByID(id string) (*models.Comentario, error)
	GetComentarios(atividadeID string) ([]models.Comentario, error)
	DeleteComentario(id string) error

	CreateAnexo(anexo *models.Anexo) error
	GetAnexoByID(id string) (*models.Anexo, error)
	GetAnexos(alvoTipo, alvoID string) ([]models.Anexo, error)
	DeleteAnexo(id string) error
}

type atividadeService struct {
	db *gorm.DB
}

func NewAtividadeService(db *gorm.DB) AtividadeService {
	return &atividadeService{db: db}
}

func (s *atividadeService) CreateAtividade(atividade *models.Atividade) error {
	if atividade.Titulo == "" {
		return NewValidationError("titulo é obrigatório")
	}
	if atividade.Status != "" && !models.ValidStatusAtividade(atividade.Status) {
		return NewValidationError("status de atividade inválido: " + atividade.Status)
	}
	return repository.NewAtividadeRepository(s.db).Create(atividade)
}

func (s *atividadeService) GetAtividadeByID(id string) (*models.Atividade, error) {
	return repository.NewAtividadeRepository(s.db).GetByID(id)
}

func (s *atividadeService) GetAllAtividades() ([]models.Atividade, error) {
	return repository.NewAtividadeRepository(s.db).GetAll()
}

func (s *atividadeService) UpdateAtividade(atividade *models.Atividade) error {
	if atividade.Status != "" && !models.ValidStatusAtividade(atividade.Status) {
		return NewValidationError("status de atividade inválido: " + atividade.Status)
	}
	return repository.NewAtividadeRepository(s.db).Update(atividade)
}

func (s *atividadeService) DeleteAtividade(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		// Comments belong to exactly one activity and go with it.
		if err := tx.Where("atividade_id = ?", id).Delete(&models.Comentario{}).Error; err != nil {
			return err
		}
		return repository.NewAtividadeRepository(tx).Delete(id)
	})
}

func (s *atividadeService) CreateComentario(comentario *models.Comentario) error {
	if comentario.Texto == "" {
		return NewValidationError("texto é obrigatório")
	}
	if _, err := repository.NewAtividadeRepository(s.db).GetByID(comentario.AtividadeID); err != nil {
		return fmt.Errorf("atividade não encontrada: %w", err)
	}
	return repository.NewComentarioRepository(s.db).Create(comentario)
}

func (s *atividadeService) GetComentarioByID(id string) (*models.Comentario, error) {
	return repository.NewComentarioRepository(s.db).GetByID(id)
}

func (s *atividadeService) GetComentarios(atividadeID string) ([]models.Comentario, error) {
	if atividadeID != "" {
		return repository.NewComentarioRepository(s.db).GetByAtividadeID(atividadeID)
	}
	return repository.NewComentarioRepository(s.db).GetAll()
}

func (s *atividadeService) DeleteComentario(id string) error {
	return repository.NewComentarioRepository(s.db).Delete(id)
}

// CreateAnexo validates the target kind against the closed set of
// attachable entities and checks that the referent exists.
func (s *atividadeService) CreateAnexo(anexo *models.Anexo) error {
	if anexo.ArquivoPath == "" {
		return NewValidationError("arquivo_path é obrigatório")
	}
	if !models.ValidTipoAlvo(anexo.AlvoTipo) {
		return NewValidationError("alvo_tipo inválido: " + anexo.AlvoTipo)
	}
	if anexo.AlvoID == "" {
		return NewValidationError("alvo_id é obrigatório")
	}
	if err := s.verificarAlvo(models.TipoAlvo(anexo.AlvoTipo), anexo.AlvoID); err != nil {
		return err
	}
	return repository.NewAnexoRepository(s.db).Create(anexo)
}

func (s *atividadeService) verificarAlvo(tipo models.TipoAlvo, id string) error {
	var err error
	switch tipo {
	case models.AlvoCliente:
		_, err = repository.NewClienteRepository(s.db).GetByID(id)
	case models.AlvoPeca:
		_, err = repository.NewPecaRepository(s.db).GetByID(id)
	case models.AlvoOrdemProducao:
		_, err = repository.NewOrdemProducaoRepository(s.db).GetByID(id)
	case models.AlvoOrdemItem:
		_, err = repository.NewOrdemItemRepository(s.db).GetByID(id)
	case models.AlvoAtividade:
		_, err = repository.NewAtividadeRepository(s.db).GetByID(id)
	}
	if err != nil {
		return fmt.Errorf("alvo do anexo não encontrado: %w", err)
	}
	return nil
}

func (s *atividadeService) GetAnexoByID(id string) (*models.Anexo, error) {
	return repository.NewAnexoRepository(s.db).GetByID(id)
}

func (s *atividadeService) GetAnexos(alvoTipo, alvoID string) ([]models.Anexo, error) {
	if alvoTipo != "" && alvoID != "" {
		if !models.ValidTipoAlvo(alvoTipo) {
			return nil, NewValidationError("alvo_tipo inválido: " + alvoTipo)
		}
		return repository.NewAnexoRepository(s.db).GetByAlvo(models.TipoAlvo(alvoTipo), alvoID)
	}
	return repository.NewAnexoRepository(s.db).GetAll()
}

func (s *atividadeService) DeleteAnexo(id string) error {
	return repository.NewAnexoRepository(s.db).Delete(id)
}
