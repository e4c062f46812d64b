package handlers

import (
	"net/http"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/services"

	"github.com/gin-gonic/gin"
)

type PecaHandler struct {
	pecaService services.PecaService
}

func NewPecaHandler(pecaService services.PecaService) *PecaHandler {
	return &PecaHandler{pecaService: pecaService}
}

// pecaResponse adds the denormalized client name read-only field.
type pecaResponse struct {
	models.Peca
	ClienteNome string `json:"cliente_nome"`
}

func toPecaResponse(p models.Peca) pecaResponse {
	resp := pecaResponse{Peca: p}
	if p.Cliente != nil {
		resp.ClienteNome = p.Cliente.Nome
	}
	return resp
}

func (h *PecaHandler) Create(c *gin.Context) {
	var peca models.Peca
	if err := c.ShouldBindJSON(&peca); err != nil {
		bindError(c, err)
		return
	}
	if err := h.pecaService.CreatePeca(&peca, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	criada, err := h.pecaService.GetPecaByID(peca.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPecaResponse(*criada))
}

func (h *PecaHandler) Get(c *gin.Context) {
	peca, err := h.pecaService.GetPecaByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPecaResponse(*peca))
}

// List handles GET /api/pecas with the optional filters
// ?ordem_producao=<id> and ?ordem_producao_codigo=<codigo>.
func (h *PecaHandler) List(c *gin.Context) {
	filtro := services.PecaFiltro{
		OrdemProducaoID:     c.Query("ordem_producao"),
		OrdemProducaoCodigo: c.Query("ordem_producao_codigo"),
	}
	pecas, err := h.pecaService.GetPecas(filtro)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]pecaResponse, len(pecas))
	for i, p := range pecas {
		resp[i] = toPecaResponse(p)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PecaHandler) Update(c *gin.Context) {
	peca, err := h.pecaService.GetPecaByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := c.ShouldBindJSON(peca); err != nil {
		bindError(c, err)
		return
	}
	peca.ID = c.Param("id")
	if err := h.pecaService.UpdatePeca(peca, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPecaResponse(*peca))
}

func (h *PecaHandler) Delete(c *gin.Context) {
	if err := h.pecaService.DeletePeca(c.Param("id"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
