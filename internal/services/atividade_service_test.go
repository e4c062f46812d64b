package services

import (
	"testing"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComentariosDaAtividade(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewAtividadeService(db)

	atividade := &models.Atividade{Titulo: "Revisar medidas"}
	require.NoError(t, svc.CreateAtividade(atividade))

	err := svc.CreateComentario(&models.Comentario{AtividadeID: atividade.ID})
	assert.True(t, IsValidationError(err), "texto vazio deve falhar")

	require.NoError(t, svc.CreateComentario(&models.Comentario{
		AtividadeID: atividade.ID,
		Texto:       "Tolerância ajustada para 0,05mm",
	}))

	comentarios, err := svc.GetComentarios(atividade.ID)
	require.NoError(t, err)
	require.Len(t, comentarios, 1)

	// Deleting the activity takes its comments along.
	require.NoError(t, svc.DeleteAtividade(atividade.ID))
	var count int64
	require.NoError(t, db.Model(&models.Comentario{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateAnexoValidaAlvo(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cliente := testutil.SeedCliente(t, db, "Cliente")

	svc := NewAtividadeService(db)

	err := svc.CreateAnexo(&models.Anexo{
		AlvoTipo: "fornecedor", AlvoID: cliente.ID, ArquivoPath: "uploads/a.pdf",
	})
	assert.True(t, IsValidationError(err), "tipo fora do conjunto fechado deve falhar")

	err = svc.CreateAnexo(&models.Anexo{
		AlvoTipo: string(models.AlvoCliente), AlvoID: "00000000-0000-0000-0000-000000000000",
		ArquivoPath: "uploads/a.pdf",
	})
	assert.Error(t, err, "referente inexistente deve falhar")

	anexo := &models.Anexo{
		AlvoTipo:     string(models.AlvoCliente),
		AlvoID:       cliente.ID,
		ArquivoPath:  "uploads/a.pdf",
		NomeOriginal: "desenho.pdf",
	}
	require.NoError(t, svc.CreateAnexo(anexo))

	porAlvo, err := svc.GetAnexos(string(models.AlvoCliente), cliente.ID)
	require.NoError(t, err)
	require.Len(t, porAlvo, 1)
	assert.Equal(t, "desenho.pdf", porAlvo[0].NomeOriginal)
}
