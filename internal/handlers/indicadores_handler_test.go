package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/repository"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/services"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupIndicadoresRouter(db *gorm.DB) *gin.Engine {
	svc := services.NewIndicadoresService(
		repository.NewOrdemProducaoRepository(db),
		repository.NewPecaRepository(db),
		nil, 0, time.UTC,
	)
	r := testutil.SetupRouter()
	r.GET("/api/indicadores/summary/", NewIndicadoresHandler(svc).GetSummary)
	return r
}

func TestGetSummaryEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cliente := testutil.SeedCliente(t, db, "Cliente")

	prevista := models.NewDate(2025, time.May, 10)
	for i, status := range []string{"aberta", "em_andamento", "concluida"} {
		ordem := &models.OrdemProducao{
			Codigo:          "NF-" + string(rune('A'+i)),
			ClienteID:       cliente.ID,
			Status:          status,
			DataFimPrevista: &prevista,
		}
		require.NoError(t, db.Create(ordem).Error)
	}

	router := setupIndicadoresRouter(db)
	req := httptest.NewRequest(http.MethodGet,
		"/api/indicadores/summary/?start=2025-05-01&end=2025-05-31&date_field=data_fim_prevista", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Periodo struct {
			Start     string `json:"start"`
			End       string `json:"end"`
			DateField string `json:"date_field"`
		} `json:"periodo"`
		OrdensProducao struct {
			Total     int            `json:"total"`
			PorStatus map[string]int `json:"por_status"`
		} `json:"ordens_producao"`
		Agrupado struct {
			EmFila      int `json:"emFila"`
			EmAndamento int `json:"emAndamento"`
			Concluidas  int `json:"concluidas"`
		} `json:"agrupado"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "data_fim_prevista", body.Periodo.DateField)
	assert.Equal(t, 3, body.OrdensProducao.Total)
	assert.Equal(t, 1, body.Agrupado.EmFila)
	assert.Equal(t, 1, body.Agrupado.EmAndamento)
	assert.Equal(t, 1, body.Agrupado.Concluidas)
	assert.Len(t, body.OrdensProducao.PorStatus, 5)
}

func TestGetSummaryEndpointDateFieldInvalido(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := setupIndicadoresRouter(db)

	req := httptest.NewRequest(http.MethodGet, "/api/indicadores/summary/?date_field=nome", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "date_field inválido")
}
