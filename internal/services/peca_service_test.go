package services

import (
	"testing"
	"time"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/repository"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePecaCriaAtividade(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cliente := testutil.SeedCliente(t, db, "Cliente Alfa")
	ordem := testutil.SeedOrdem(t, db, cliente.ID, "NF-001")

	svc := NewPecaService(db)
	peca := &models.Peca{
		OrdemProducaoID: ordem.ID,
		ClienteID:       cliente.ID,
		Codigo:          "PC-100",
		Descricao:       "Eixo usinado",
		Quantidade:      10,
	}
	require.NoError(t, svc.CreatePeca(peca, nil))

	var atividades []models.Atividade
	require.NoError(t, db.Where("peca_id = ?", peca.ID).Find(&atividades).Error)
	require.Len(t, atividades, 1)

	atividade := atividades[0]
	assert.Equal(t, "Produzir peça PC-100", atividade.Titulo)
	assert.Equal(t, string(models.AtividadeNaFila), atividade.Status)
	assert.Equal(t, models.PrioridadeMedia, atividade.Prioridade)
	assert.Contains(t, atividade.Descricao, "Cliente: Cliente Alfa")
	assert.Contains(t, atividade.Descricao, "Quantidade: 10")
	assert.Contains(t, atividade.Descricao, "Data de entrega: Não definida")

	assert.Equal(t, "producao_peca", atividade.Metadata["tipo"])
	assert.Equal(t, "PC-100", atividade.Metadata["peca_codigo"])
	assert.Equal(t, "Cliente Alfa", atividade.Metadata["cliente_nome"])
	assert.EqualValues(t, 10, atividade.Metadata["quantidade"])
	assert.Nil(t, atividade.Metadata["data_entrega"])
}

func TestCreatePecaNaoCriaAtividadeEmUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cliente := testutil.SeedCliente(t, db, "Cliente Beta")
	ordem := testutil.SeedOrdem(t, db, cliente.ID, "NF-002")

	svc := NewPecaService(db)
	peca := &models.Peca{OrdemProducaoID: ordem.ID, ClienteID: cliente.ID, Codigo: "PC-200", Quantidade: 2}
	require.NoError(t, svc.CreatePeca(peca, nil))

	peca.Descricao = "atualizada"
	require.NoError(t, svc.UpdatePeca(peca, nil))

	var count int64
	require.NoError(t, db.Model(&models.Atividade{}).Where("peca_id = ?", peca.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestPropagacaoTodasConcluidas(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cliente := testutil.SeedCliente(t, db, "Cliente")
	ordem := testutil.SeedOrdem(t, db, cliente.ID, "NF-010")

	svc := NewPecaService(db)
	p1 := &models.Peca{OrdemProducaoID: ordem.ID, ClienteID: cliente.ID, Codigo: "PC-301", Quantidade: 1}
	p2 := &models.Peca{OrdemProducaoID: ordem.ID, ClienteID: cliente.ID, Codigo: "PC-302", Quantidade: 1}
	require.NoError(t, svc.CreatePeca(p1, nil))
	require.NoError(t, svc.CreatePeca(p2, nil))

	p1.Status = string(models.PecaConcluida)
	require.NoError(t, svc.UpdatePeca(p1, nil))

	ordemAtual, err := repository.NewOrdemProducaoRepository(db).GetByID(ordem.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.OPAberta), ordemAtual.Status, "uma peça concluída não basta")

	p2.Status = string(models.PecaConcluida)
	require.NoError(t, svc.UpdatePeca(p2, nil))

	ordemAtual, err = repository.NewOrdemProducaoRepository(db).GetByID(ordem.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.OPConcluida), ordemAtual.Status)
}

func TestPropagacaoEmAndamentoTemPrecedencia(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cliente := testutil.SeedCliente(t, db, "Cliente")
	ordem := testutil.SeedOrdem(t, db, cliente.ID, "NF-011")

	testutil.SeedPeca(t, db, ordem.ID, cliente.ID, "PC-401", string(models.PecaConcluida))
	testutil.SeedPeca(t, db, ordem.ID, cliente.ID, "PC-402", string(models.PecaConcluida))
	testutil.SeedPeca(t, db, ordem.ID, cliente.ID, "PC-403", string(models.PecaEmAndamento))

	require.NoError(t, PropagarStatusOrdem(db, ordem.ID))

	ordemAtual, err := repository.NewOrdemProducaoRepository(db).GetByID(ordem.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.OPEmAndamento), ordemAtual.Status)
}

func TestPropagacaoIdempotente(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cliente := testutil.SeedCliente(t, db, "Cliente")
	ordem := testutil.SeedOrdem(t, db, cliente.ID, "NF-012")
	testutil.SeedPeca(t, db, ordem.ID, cliente.ID, "PC-501", string(models.PecaConcluida))

	require.NoError(t, PropagarStatusOrdem(db, ordem.ID))

	ordemRepo := repository.NewOrdemProducaoRepository(db)
	depoisDaPrimeira, err := ordemRepo.GetByID(ordem.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.OPConcluida), depoisDaPrimeira.Status)

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, PropagarStatusOrdem(db, ordem.ID))

	depoisDaSegunda, err := ordemRepo.GetByID(ordem.ID)
	require.NoError(t, err)
	assert.Equal(t, depoisDaPrimeira.UpdatedAt, depoisDaSegunda.UpdatedAt, "segunda execução não deve gravar nada")
}

func TestDeletePecaNaoRegrideStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cliente := testutil.SeedCliente(t, db, "Cliente")
	ordem := testutil.SeedOrdem(t, db, cliente.ID, "NF-013")

	svc := NewPecaService(db)
	p1 := &models.Peca{OrdemProducaoID: ordem.ID, ClienteID: cliente.ID, Codigo: "PC-601", Quantidade: 1}
	p2 := &models.Peca{OrdemProducaoID: ordem.ID, ClienteID: cliente.ID, Codigo: "PC-602", Quantidade: 1}
	require.NoError(t, svc.CreatePeca(p1, nil))
	require.NoError(t, svc.CreatePeca(p2, nil))

	p1.Status = string(models.PecaConcluida)
	require.NoError(t, svc.UpdatePeca(p1, nil))
	p2.Status = string(models.PecaConcluida)
	require.NoError(t, svc.UpdatePeca(p2, nil))

	require.NoError(t, svc.DeletePeca(p1.ID, nil))

	ordemAtual, err := repository.NewOrdemProducaoRepository(db).GetByID(ordem.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.OPConcluida), ordemAtual.Status, "excluir peça não regride o status")
}

func TestDeletePecaDesvinculaAtividades(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cliente := testutil.SeedCliente(t, db, "Cliente")
	ordem := testutil.SeedOrdem(t, db, cliente.ID, "NF-014")

	svc := NewPecaService(db)
	peca := &models.Peca{OrdemProducaoID: ordem.ID, ClienteID: cliente.ID, Codigo: "PC-701", Quantidade: 1}
	require.NoError(t, svc.CreatePeca(peca, nil))

	require.NoError(t, svc.DeletePeca(peca.ID, nil))

	var atividades []models.Atividade
	require.NoError(t, db.Find(&atividades).Error)
	require.Len(t, atividades, 1, "a atividade sobrevive à exclusão da peça")
	assert.Nil(t, atividades[0].PecaID)
}

func TestDeletePecaReferenciadaPorItem(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cliente := testutil.SeedCliente(t, db, "Cliente")
	ordem := testutil.SeedOrdem(t, db, cliente.ID, "NF-015")

	svc := NewPecaService(db)
	peca := &models.Peca{OrdemProducaoID: ordem.ID, ClienteID: cliente.ID, Codigo: "PC-801", Quantidade: 5}
	require.NoError(t, svc.CreatePeca(peca, nil))

	item := &models.OrdemProducaoItem{OrdemID: ordem.ID, PecaID: peca.ID, Quantidade: 5}
	require.NoError(t, db.Create(item).Error)

	err := svc.DeletePeca(peca.ID, nil)
	assert.ErrorIs(t, err, ErrPecaReferenciada)

	_, err = repository.NewPecaRepository(db).GetByID(peca.ID)
	assert.NoError(t, err, "a peça permanece")
}

func TestValidacaoPeca(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cliente := testutil.SeedCliente(t, db, "Cliente")
	ordem := testutil.SeedOrdem(t, db, cliente.ID, "NF-016")

	svc := NewPecaService(db)

	err := svc.CreatePeca(&models.Peca{
		OrdemProducaoID: ordem.ID, ClienteID: cliente.ID, Codigo: "PC-901", Quantidade: 0,
	}, nil)
	assert.True(t, IsValidationError(err), "quantidade zero deve falhar")

	ontem := models.Date{Time: time.Now().AddDate(0, 0, -1)}
	err = svc.CreatePeca(&models.Peca{
		OrdemProducaoID: ordem.ID, ClienteID: cliente.ID, Codigo: "PC-902",
		Quantidade: 1, DataEntrega: &ontem,
	}, nil)
	assert.True(t, IsValidationError(err), "data de entrega no passado deve falhar")
}

func TestCreatePecaRegistraLog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cliente := testutil.SeedCliente(t, db, "Cliente")
	ordem := testutil.SeedOrdem(t, db, cliente.ID, "NF-017")

	svc := NewPecaService(db)
	peca := &models.Peca{OrdemProducaoID: ordem.ID, ClienteID: cliente.ID, Codigo: "PC-950", Quantidade: 1}
	require.NoError(t, svc.CreatePeca(peca, nil))

	var logs []models.LogAcao
	require.NoError(t, db.Where("acao = ?", "peca_criada").Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "peca", logs[0].AlvoTipo)
	assert.Equal(t, peca.ID, *logs[0].AlvoID)
}
