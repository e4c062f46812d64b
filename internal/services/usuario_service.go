package services

import (
	"errors"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrCredenciaisInvalidas = errors.New("email ou senha inválidos")

type UsuarioService interface {
	CreateUsuario(usuario *models.Usuario, senha string) error
	GetUsuarioByID(id string) (*models.Usuario, error)
	GetUsuarioByEmail(email string) (*models.Usuario, error)
	GetAllUsuarios() ([]models.Usuario, error)
	UpdateUsuario(usuario *models.Usuario, novaSenha string) error
	DeleteUsuario(id string) error
	Authenticate(email, senha string) (*models.Usuario, error)
}

type usuarioService struct {
	usuarioRepo repository.UsuarioRepository
}

func NewUsuarioService(usuarioRepo repository.UsuarioRepository) UsuarioService {
	return &usuarioService{usuarioRepo: usuarioRepo}
}

func (s *usuarioService) CreateUsuario(usuario *models.Usuario, senha string) error {
	if usuario.Email == "" {
		return NewValidationError("email é obrigatório")
	}
	if senha == "" {
		return NewValidationError("senha é obrigatória")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	usuario.PasswordHash = string(hash)

	return s.usuarioRepo.Create(usuario)
}

func (s *usuarioService) GetUsuarioByID(id string) (*models.Usuario, error) {
	return s.usuarioRepo.GetByID(id)
}

func (s *usuarioService) GetUsuarioByEmail(email string) (*models.Usuario, error) {
	return s.usuarioRepo.GetByEmail(email)
}

func (s *usuarioService) GetAllUsuarios() ([]models.Usuario, error) {
	return s.usuarioRepo.GetAll()
}

func (s *usuarioService) UpdateUsuario(usuario *models.Usuario, novaSenha string) error {
	if novaSenha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(novaSenha), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		usuario.PasswordHash = string(hash)
	}
	return s.usuarioRepo.Update(usuario)
}

func (s *usuarioService) DeleteUsuario(id string) error {
	return s.usuarioRepo.Delete(id)
}

// Authenticate verifies the password of an active account. The same error
// comes back for a missing account and a wrong password.
func (s *usuarioService) Authenticate(email, senha string) (*models.Usuario, error) {
	usuario, err := s.usuarioRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredenciaisInvalidas
		}
		return nil, err
	}
	if !usuario.IsActive {
		return nil, ErrCredenciaisInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(senha)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}
	return usuario, nil
}
