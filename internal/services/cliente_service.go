package services

import (
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/repository"

	"gorm.io/gorm"
)

type ClienteService interface {
	CreateCliente(cliente *models.Cliente) error
	GetClienteByID(id string) (*models.Cliente, error)
	GetAllClientes() ([]models.Cliente, error)
	UpdateCliente(cliente *models.Cliente) error
	DeleteCliente(id string, usuarioID *string) error
}

type clienteService struct {
	db *gorm.DB
}

func NewClienteService(db *gorm.DB) ClienteService {
	return &clienteService{db: db}
}

func (s *clienteService) CreateCliente(cliente *models.Cliente) error {
	if cliente.Nome == "" {
		return NewValidationError("nome é obrigatório")
	}
	return repository.NewClienteRepository(s.db).Create(cliente)
}

func (s *clienteService) GetClienteByID(id string) (*models.Cliente, error) {
	return repository.NewClienteRepository(s.db).GetByID(id)
}

func (s *clienteService) GetAllClientes() ([]models.Cliente, error) {
	return repository.NewClienteRepository(s.db).GetAll()
}

func (s *clienteService) UpdateCliente(cliente *models.Cliente) error {
	if cliente.Nome == "" {
		return NewValidationError("nome é obrigatório")
	}
	return repository.NewClienteRepository(s.db).Update(cliente)
}

// DeleteCliente refuses to remove a client that still owns parts or
// production orders.
func (s *clienteService) DeleteCliente(id string, usuarioID *string) error {
	cliente, err := repository.NewClienteRepository(s.db).GetByID(id)
	if err != nil {
		return err
	}

	pecas, err := repository.NewPecaRepository(s.db).CountByCliente(id)
	if err != nil {
		return err
	}
	ordens, err := repository.NewOrdemProducaoRepository(s.db).CountByCliente(id)
	if err != nil {
		return err
	}
	if pecas > 0 || ordens > 0 {
		return ErrClienteReferenciado
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewClienteRepository(tx).Delete(id); err != nil {
			return err
		}
		return registrarAcao(tx, usuarioID, "cliente_excluido", "cliente", id, models.JSONMap{
			"nome": cliente.Nome,
		})
	})
}
