package services

import (
	"time"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

type AuthService interface {
	Login(email, senha string) (string, *models.Usuario, error)
}

type authService struct {
	usuarios UsuarioService
	secret   string
	tokenTTL time.Duration
}

func NewAuthService(usuarios UsuarioService, secret string, tokenTTL time.Duration) AuthService {
	return &authService{usuarios: usuarios, secret: secret, tokenTTL: tokenTTL}
}

// Login authenticates the user and issues a signed JWT.
func (s *authService) Login(email, senha string) (string, *models.Usuario, error) {
	usuario, err := s.usuarios.Authenticate(email, senha)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":          usuario.ID,
		"email":        usuario.Email,
		"is_staff":     usuario.IsStaff,
		"is_superuser": usuario.IsSuperuser,
		"iat":          now.Unix(),
		"exp":          now.Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", nil, err
	}
	return signed, usuario, nil
}
