package services

import (
	"fmt"
	"time"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/repository"

	"gorm.io/gorm"
)

type PecaFiltro struct {
	OrdemProducaoID     string
	OrdemProducaoCodigo string
}

type PecaService interface {
	CreatePeca(peca *models.Peca, usuarioID *string) error
	GetPecaByID(id string) (*models.Peca, error)
	GetPecas(filtro PecaFiltro) ([]models.Peca, error)
	UpdatePeca(peca *models.Peca, usuarioID *string) error
	DeletePeca(id string, usuarioID *string) error
}

type pecaService struct {
	db *gorm.DB
}

func NewPecaService(db *gorm.DB) PecaService {
	return &pecaService{db: db}
}

// CreatePeca registers a part, creates its production activity and
// re-derives the owning order's status, all in one transaction. If any
// side effect fails nothing is persisted.
func (s *pecaService) CreatePeca(peca *models.Peca, usuarioID *string) error {
	if err := validarPeca(peca, nil); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		clienteRepo := repository.NewClienteRepository(tx)
		ordemRepo := repository.NewOrdemProducaoRepository(tx)
		pecaRepo := repository.NewPecaRepository(tx)

		cliente, err := clienteRepo.GetByID(peca.ClienteID)
		if err != nil {
			return fmt.Errorf("cliente não encontrado: %w", err)
		}
		if _, err := ordemRepo.GetByID(peca.OrdemProducaoID); err != nil {
			return fmt.Errorf("ordem de produção não encontrada: %w", err)
		}

		if err := pecaRepo.Create(peca); err != nil {
			return err
		}

		if err := criarAtividadeParaPeca(tx, peca, cliente); err != nil {
			return err
		}

		if err := PropagarStatusOrdem(tx, peca.OrdemProducaoID); err != nil {
			return err
		}

		return registrarAcao(tx, usuarioID, "peca_criada", "peca", peca.ID, models.JSONMap{
			"codigo": peca.Codigo,
		})
	})
}

func (s *pecaService) GetPecaByID(id string) (*models.Peca, error) {
	return repository.NewPecaRepository(s.db).GetByID(id)
}

func (s *pecaService) GetPecas(filtro PecaFiltro) ([]models.Peca, error) {
	pecaRepo := repository.NewPecaRepository(s.db)
	if filtro.OrdemProducaoID != "" {
		return pecaRepo.GetByOrdemID(filtro.OrdemProducaoID)
	}
	if filtro.OrdemProducaoCodigo != "" {
		return pecaRepo.GetByOrdemCodigo(filtro.OrdemProducaoCodigo)
	}
	return pecaRepo.GetAll()
}

// UpdatePeca saves the part and re-derives the owning order's status in
// the same transaction.
func (s *pecaService) UpdatePeca(peca *models.Peca, usuarioID *string) error {
	existente, err := repository.NewPecaRepository(s.db).GetByID(peca.ID)
	if err != nil {
		return err
	}
	if err := validarPeca(peca, existente); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewPecaRepository(tx).Update(peca); err != nil {
			return err
		}
		return PropagarStatusOrdem(tx, peca.OrdemProducaoID)
	})
}

// DeletePeca removes the part, clears activity links to it and re-derives
// the owning order's status. Parts referenced by order items cannot be
// deleted.
func (s *pecaService) DeletePeca(id string, usuarioID *string) error {
	peca, err := repository.NewPecaRepository(s.db).GetByID(id)
	if err != nil {
		return err
	}

	refs, err := repository.NewOrdemItemRepository(s.db).CountByPeca(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrPecaReferenciada
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewAtividadeRepository(tx).DesvincularPeca(id); err != nil {
			return err
		}
		if err := repository.NewPecaRepository(tx).Delete(id); err != nil {
			return err
		}
		if err := PropagarStatusOrdem(tx, peca.OrdemProducaoID); err != nil {
			return err
		}
		return registrarAcao(tx, usuarioID, "peca_excluida", "peca", id, models.JSONMap{
			"codigo": peca.Codigo,
		})
	})
}

func validarPeca(peca *models.Peca, existente *models.Peca) error {
	if peca.Codigo == "" {
		return NewValidationError("codigo é obrigatório")
	}
	if peca.Quantidade <= 0 {
		return NewValidationError("a quantidade deve ser maior que zero")
	}
	if peca.Status != "" && !models.ValidStatusPeca(peca.Status) {
		return NewValidationError("status de peça inválido: " + peca.Status)
	}
	if peca.DataEntrega != nil {
		criacao := time.Now()
		if existente != nil {
			criacao = existente.CreatedAt
		}
		dia := time.Date(criacao.Year(), criacao.Month(), criacao.Day(), 0, 0, 0, 0, peca.DataEntrega.Location())
		if peca.DataEntrega.Before(dia) {
			return NewValidationError("a data de entrega não pode ser anterior à data de criação")
		}
	}
	return nil
}

// criarAtividadeParaPeca creates the kanban activity that tracks the
// production of a newly registered part. The client name and delivery date
// are denormalized into the activity at creation time and are not updated
// when the client is later renamed.
func criarAtividadeParaPeca(tx *gorm.DB, peca *models.Peca, cliente *models.Cliente) error {
	descricao := peca.Descricao
	if descricao == "" {
		descricao = "Sem descrição"
	}
	entrega := "Não definida"
	var entregaMeta interface{}
	if peca.DataEntrega != nil {
		entrega = peca.DataEntrega.Format("2006-01-02")
		entregaMeta = entrega
	}

	atividade := &models.Atividade{
		Titulo: fmt.Sprintf("Produzir peça %s", peca.Codigo),
		Descricao: fmt.Sprintf("Produção da peça: %s\nCliente: %s\nQuantidade: %d\nData de entrega: %s",
			descricao, cliente.Nome, peca.Quantidade, entrega),
		PecaID:     &peca.ID,
		OrdemID:    &peca.OrdemProducaoID,
		Status:     string(models.AtividadeNaFila),
		Prioridade: models.PrioridadeMedia,
		Metadata: models.JSONMap{
			"tipo":         "producao_peca",
			"peca_codigo":  peca.Codigo,
			"cliente_nome": cliente.Nome,
			"quantidade":   peca.Quantidade,
			"data_entrega": entregaMeta,
		},
	}
	return repository.NewAtividadeRepository(tx).Create(atividade)
}

func registrarAcao(tx *gorm.DB, usuarioID *string, acao, alvoTipo, alvoID string, detalhes models.JSONMap) error {
	log := &models.LogAcao{
		UsuarioID: usuarioID,
		Acao:      acao,
		AlvoTipo:  alvoTipo,
		AlvoID:    &alvoID,
		Detalhes:  detalhes,
	}
	return repository.NewLogAcaoRepository(tx).Create(log)
}
