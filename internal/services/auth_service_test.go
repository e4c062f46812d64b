package services

import (
	"testing"
	"time"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/repository"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/testutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewUsuarioService(repository.NewUsuarioRepository(db))

	usuario := &models.Usuario{Email: "op@usinasoft.com.br", FirstName: "Ana", IsActive: true}
	require.NoError(t, svc.CreateUsuario(usuario, "senha-forte"))
	assert.NotEqual(t, "senha-forte", usuario.PasswordHash, "a senha nunca é gravada em claro")

	autenticado, err := svc.Authenticate("op@usinasoft.com.br", "senha-forte")
	require.NoError(t, err)
	assert.Equal(t, usuario.ID, autenticado.ID)

	_, err = svc.Authenticate("op@usinasoft.com.br", "senha-errada")
	assert.ErrorIs(t, err, ErrCredenciaisInvalidas)

	_, err = svc.Authenticate("nao-existe@usinasoft.com.br", "senha-forte")
	assert.ErrorIs(t, err, ErrCredenciaisInvalidas, "conta ausente e senha errada respondem igual")
}

func TestAuthenticateContaInativa(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewUsuarioService(repository.NewUsuarioRepository(db))

	usuario := &models.Usuario{Email: "inativo@usinasoft.com.br"}
	require.NoError(t, svc.CreateUsuario(usuario, "senha"))
	require.NoError(t, db.Model(usuario).Update("is_active", false).Error)

	_, err := svc.Authenticate("inativo@usinasoft.com.br", "senha")
	assert.ErrorIs(t, err, ErrCredenciaisInvalidas)
}

func TestLoginEmiteToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	usuarios := NewUsuarioService(repository.NewUsuarioRepository(db))

	usuario := &models.Usuario{Email: "chefe@usinasoft.com.br", IsActive: true, IsStaff: true}
	require.NoError(t, usuarios.CreateUsuario(usuario, "segredo"))

	auth := NewAuthService(usuarios, "test-secret", time.Hour)
	signed, logado, err := auth.Login("chefe@usinasoft.com.br", "segredo")
	require.NoError(t, err)
	assert.Equal(t, usuario.ID, logado.ID)

	token, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, usuario.ID, claims["sub"])
	assert.Equal(t, "chefe@usinasoft.com.br", claims["email"])
	assert.Equal(t, true, claims["is_staff"])
}
