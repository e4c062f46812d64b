package services

import (
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/repository"
)

// LogAcaoService exposes the audit trail. Records are append-only: there
// is deliberately no update or delete operation.
type LogAcaoService interface {
	CreateLog(log *models.LogAcao) error
	GetLogByID(id string) (*models.LogAcao, error)
	GetAllLogs() ([]models.LogAcao, error)
	GetLogsByUsuario(usuarioID string) ([]models.LogAcao, error)
}

type logAcaoService struct {
	logRepo repository.LogAcaoRepository
}

func NewLogAcaoService(logRepo repository.LogAcaoRepository) LogAcaoService {
	return &logAcaoService{logRepo: logRepo}
}

func (s *logAcaoService) CreateLog(log *models.LogAcao) error {
	if log.Acao == "" {
		return NewValidationError("acao é obrigatória")
	}
	return s.logRepo.Create(log)
}

func (s *logAcaoService) GetLogByID(id string) (*models.LogAcao, error) {
	return s.logRepo.GetByID(id)
}

func (s *logAcaoService) GetAllLogs() ([]models.LogAcao, error) {
	return s.logRepo.GetAll()
}

func (s *logAcaoService) GetLogsByUsuario(usuarioID string) ([]models.LogAcao, error) {
	return s.logRepo.GetByUsuarioID(usuarioID)
}
