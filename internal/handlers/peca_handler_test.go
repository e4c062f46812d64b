package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/services"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupPecaRouter(db *gorm.DB) *gin.Engine {
	h := NewPecaHandler(services.NewPecaService(db))
	r := testutil.SetupRouter()
	r.POST("/api/pecas", h.Create)
	r.GET("/api/pecas", h.List)
	r.GET("/api/pecas/:id", h.Get)
	r.DELETE("/api/pecas/:id", h.Delete)
	return r
}

func TestCreatePecaEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cliente := testutil.SeedCliente(t, db, "Usinagem Norte")
	ordem := testutil.SeedOrdem(t, db, cliente.ID, "NF-300")

	router := setupPecaRouter(db)
	payload := fmt.Sprintf(`{
		"ordem_producao": %q,
		"cliente": %q,
		"codigo": "PC-H1",
		"quantidade": 4,
		"data_entrega": "2030-12-01"
	}`, ordem.ID, cliente.ID)

	req := httptest.NewRequest(http.MethodPost, "/api/pecas", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "PC-H1", body["codigo"])
	assert.Equal(t, "em_fila", body["status"])
	assert.Equal(t, "Usinagem Norte", body["cliente_nome"])
	assert.Equal(t, "2030-12-01", body["data_entrega"])
}

func TestCreatePecaEndpointQuantidadeInvalida(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cliente := testutil.SeedCliente(t, db, "Cliente")
	ordem := testutil.SeedOrdem(t, db, cliente.ID, "NF-301")

	router := setupPecaRouter(db)
	payload := fmt.Sprintf(`{"ordem_producao": %q, "cliente": %q, "codigo": "PC-H2", "quantidade": 0}`,
		ordem.ID, cliente.ID)

	req := httptest.NewRequest(http.MethodPost, "/api/pecas", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestListPecasPorOrdem(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cliente := testutil.SeedCliente(t, db, "Cliente")
	o1 := testutil.SeedOrdem(t, db, cliente.ID, "NF-302")
	o2 := testutil.SeedOrdem(t, db, cliente.ID, "NF-303")
	testutil.SeedPeca(t, db, o1.ID, cliente.ID, "PC-H3", string(models.PecaEmFila))
	testutil.SeedPeca(t, db, o2.ID, cliente.ID, "PC-H4", string(models.PecaEmFila))

	router := setupPecaRouter(db)

	req := httptest.NewRequest(http.MethodGet, "/api/pecas?ordem_producao_codigo=NF-302", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "PC-H3", body[0]["codigo"])
}

func TestGetPecaInexistente(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := setupPecaRouter(db)

	req := httptest.NewRequest(http.MethodGet, "/api/pecas/00000000-0000-0000-0000-000000000000", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePecaReferenciadaEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cliente := testutil.SeedCliente(t, db, "Cliente")
	ordem := testutil.SeedOrdem(t, db, cliente.ID, "NF-304")
	peca := testutil.SeedPeca(t, db, ordem.ID, cliente.ID, "PC-H5", string(models.PecaEmFila))
	item := &models.OrdemProducaoItem{OrdemID: ordem.ID, PecaID: peca.ID, Quantidade: 1}
	require.NoError(t, db.Create(item).Error)

	router := setupPecaRouter(db)
	req := httptest.NewRequest(http.MethodDelete, "/api/pecas/"+peca.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
