package services

import (
	"fmt"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/repository"

	"gorm.io/gorm"
)

type ProducaoService interface {
	CreateOrdem(ordem *models.OrdemProducao, usuarioID *string) error
	GetOrdemByID(id string) (*models.OrdemProducao, error)
	GetAllOrdens() ([]models.OrdemProducao, error)
	UpdateOrdem(ordem *models.OrdemProducao, usuarioID *string) error
	DeleteOrdem(id string, usuarioID *string) error

	CreateItem(item *models.OrdemProducaoItem) error
	GetItemByID(id string) (*models.OrdemProducaoItem, error)
	GetAllItens() ([]models.OrdemProducaoItem, error)
	GetItensByOrdem(ordemID string) ([]models.OrdemProducaoItem, error)
	UpdateItem(item *models.OrdemProducaoItem) error
	DeleteItem(id string) error
}

type producaoService struct {
	db *gorm.DB
}

func NewProducaoService(db *gorm.DB) ProducaoService {
	return &producaoService{db: db}
}

func (s *producaoService) CreateOrdem(ordem *models.OrdemProducao, usuarioID *string) error {
	if ordem.Codigo == "" {
		return NewValidationError("codigo é obrigatório")
	}
	if ordem.Status != "" && !models.ValidStatusOrdemProducao(ordem.Status) {
		return NewValidationError("status de ordem de produção inválido: " + ordem.Status)
	}
	if _, err := repository.NewClienteRepository(s.db).GetByID(ordem.ClienteID); err != nil {
		return fmt.Errorf("cliente não encontrado: %w", err)
	}
	ordem.CriadoPorID = usuarioID

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewOrdemProducaoRepository(tx).Create(ordem); err != nil {
			return err
		}
		return registrarAcao(tx, usuarioID, "op_criada", "ordem_producao", ordem.ID, models.JSONMap{
			"codigo": ordem.Codigo,
		})
	})
}

func (s *producaoService) GetOrdemByID(id string) (*models.OrdemProducao, error) {
	return repository.NewOrdemProducaoRepository(s.db).GetByID(id)
}

func (s *producaoService) GetAllOrdens() ([]models.OrdemProducao, error) {
	return repository.NewOrdemProducaoRepository(s.db).GetAll()
}

func (s *producaoService) UpdateOrdem(ordem *models.OrdemProducao, usuarioID *string) error {
	if ordem.Status != "" && !models.ValidStatusOrdemProducao(ordem.Status) {
		return NewValidationError("status de ordem de produção inválido: " + ordem.Status)
	}

	existente, err := repository.NewOrdemProducaoRepository(s.db).GetByID(ordem.ID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewOrdemProducaoRepository(tx).Update(ordem); err != nil {
			return err
		}
		if existente.Status != ordem.Status {
			return registrarAcao(tx, usuarioID, "op_status_alterado", "ordem_producao", ordem.ID, models.JSONMap{
				"de":   existente.Status,
				"para": ordem.Status,
			})
		}
		return nil
	})
}

// DeleteOrdem removes an order together with its items and parts. Activity
// links to any of them are cleared first; the activities themselves stay.
func (s *producaoService) DeleteOrdem(id string, usuarioID *string) error {
	ordem, err := repository.NewOrdemProducaoRepository(s.db).GetByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		atividadeRepo := repository.NewAtividadeRepository(tx)
		itemRepo := repository.NewOrdemItemRepository(tx)
		pecaRepo := repository.NewPecaRepository(tx)

		itens, err := itemRepo.GetByOrdemID(id)
		if err != nil {
			return err
		}
		for _, item := range itens {
			if err := atividadeRepo.DesvincularOrdemItem(item.ID); err != nil {
				return err
			}
			if err := itemRepo.Delete(item.ID); err != nil {
				return err
			}
		}

		pecas, err := pecaRepo.GetByOrdemID(id)
		if err != nil {
			return err
		}
		for _, peca := range pecas {
			refs, err := itemRepo.CountByPeca(peca.ID)
			if err != nil {
				return err
			}
			if refs > 0 {
				return ErrPecaReferenciada
			}
			if err := atividadeRepo.DesvincularPeca(peca.ID); err != nil {
				return err
			}
			if err := pecaRepo.Delete(peca.ID); err != nil {
				return err
			}
		}

		if err := atividadeRepo.DesvincularOrdem(id); err != nil {
			return err
		}
		if err := repository.NewOrdemProducaoRepository(tx).Delete(id); err != nil {
			return err
		}
		return registrarAcao(tx, usuarioID, "op_excluida", "ordem_producao", id, models.JSONMap{
			"codigo": ordem.Codigo,
		})
	})
}

func (s *producaoService) CreateItem(item *models.OrdemProducaoItem) error {
	if err := validarItem(item); err != nil {
		return err
	}
	if _, err := repository.NewOrdemProducaoRepository(s.db).GetByID(item.OrdemID); err != nil {
		return fmt.Errorf("ordem de produção não encontrada: %w", err)
	}
	if _, err := repository.NewPecaRepository(s.db).GetByID(item.PecaID); err != nil {
		return fmt.Errorf("peça não encontrada: %w", err)
	}
	return repository.NewOrdemItemRepository(s.db).Create(item)
}

func (s *producaoService) GetItemByID(id string) (*models.OrdemProducaoItem, error) {
	return repository.NewOrdemItemRepository(s.db).GetByID(id)
}

func (s *producaoService) GetAllItens() ([]models.OrdemProducaoItem, error) {
	return repository.NewOrdemItemRepository(s.db).GetAll()
}

func (s *producaoService) GetItensByOrdem(ordemID string) ([]models.OrdemProducaoItem, error) {
	return repository.NewOrdemItemRepository(s.db).GetByOrdemID(ordemID)
}

func (s *producaoService) UpdateItem(item *models.OrdemProducaoItem) error {
	if err := validarItem(item); err != nil {
		return err
	}
	return repository.NewOrdemItemRepository(s.db).Update(item)
}

func (s *producaoService) DeleteItem(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewAtividadeRepository(tx).DesvincularOrdemItem(id); err != nil {
			return err
		}
		return repository.NewOrdemItemRepository(tx).Delete(id)
	})
}

func validarItem(item *models.OrdemProducaoItem) error {
	if item.Quantidade <= 0 {
		return NewValidationError("a quantidade deve ser maior que zero")
	}
	if item.QuantidadeProduzida < 0 {
		return NewValidationError("a quantidade produzida não pode ser negativa")
	}
	if item.QuantidadeProduzida > item.Quantidade {
		return NewValidationError("a quantidade produzida não pode ser maior que a quantidade solicitada")
	}
	if item.Status != "" && !models.ValidStatusItem(item.Status) {
		return NewValidationError("status de item inválido: " + item.Status)
	}
	return nil
}
