package services

import (
	"testing"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestClienteCRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewClienteService(db)

	err := svc.CreateCliente(&models.Cliente{})
	assert.True(t, IsValidationError(err), "nome vazio deve falhar")

	cliente := &models.Cliente{Nome: "Metalúrgica Sul", Contato: "Carlos"}
	require.NoError(t, svc.CreateCliente(cliente))
	require.NotEmpty(t, cliente.ID)

	lido, err := svc.GetClienteByID(cliente.ID)
	require.NoError(t, err)
	assert.Equal(t, "Metalúrgica Sul", lido.Nome)

	lido.Contato = "Marina"
	require.NoError(t, svc.UpdateCliente(lido))

	require.NoError(t, svc.DeleteCliente(cliente.ID, nil))
	_, err = svc.GetClienteByID(cliente.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteClienteComVinculos(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cliente := testutil.SeedCliente(t, db, "Cliente Vinculado")
	testutil.SeedOrdem(t, db, cliente.ID, "NF-200")

	svc := NewClienteService(db)
	err := svc.DeleteCliente(cliente.ID, nil)
	assert.ErrorIs(t, err, ErrClienteReferenciado)

	_, err = svc.GetClienteByID(cliente.ID)
	assert.NoError(t, err, "o cliente permanece")
}
