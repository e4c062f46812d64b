package handlers

import (
	"net/http"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/services"

	"github.com/gin-gonic/gin"
)

type ProducaoHandler struct {
	producaoService services.ProducaoService
}

func NewProducaoHandler(producaoService services.ProducaoService) *ProducaoHandler {
	return &ProducaoHandler{producaoService: producaoService}
}

func (h *ProducaoHandler) CreateOrdem(c *gin.Context) {
	var ordem models.OrdemProducao
	if err := c.ShouldBindJSON(&ordem); err != nil {
		bindError(c, err)
		return
	}
	if err := h.producaoService.CreateOrdem(&ordem, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ordem)
}

func (h *ProducaoHandler) GetOrdem(c *gin.Context) {
	ordem, err := h.producaoService.GetOrdemByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordem)
}

func (h *ProducaoHandler) ListOrdens(c *gin.Context) {
	ordens, err := h.producaoService.GetAllOrdens()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordens)
}

func (h *ProducaoHandler) UpdateOrdem(c *gin.Context) {
	ordem, err := h.producaoService.GetOrdemByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := c.ShouldBindJSON(ordem); err != nil {
		bindError(c, err)
		return
	}
	ordem.ID = c.Param("id")
	if err := h.producaoService.UpdateOrdem(ordem, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordem)
}

func (h *ProducaoHandler) DeleteOrdem(c *gin.Context) {
	if err := h.producaoService.DeleteOrdem(c.Param("id"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// itemResponse exposes the derived completion percentage.
type itemResponse struct {
	models.OrdemProducaoItem
	PercentualConcluido float64 `json:"percentual_concluido"`
}

func toItemResponse(i models.OrdemProducaoItem) itemResponse {
	return itemResponse{OrdemProducaoItem: i, PercentualConcluido: i.PercentualConcluido()}
}

func (h *ProducaoHandler) CreateItem(c *gin.Context) {
	var item models.OrdemProducaoItem
	if err := c.ShouldBindJSON(&item); err != nil {
		bindError(c, err)
		return
	}
	if err := h.producaoService.CreateItem(&item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toItemResponse(item))
}

func (h *ProducaoHandler) GetItem(c *gin.Context) {
	item, err := h.producaoService.GetItemByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItemResponse(*item))
}

// ListItens handles GET /api/itens-op with the optional ?ordem=<id> filter.
func (h *ProducaoHandler) ListItens(c *gin.Context) {
	var itens []models.OrdemProducaoItem
	var err error
	if ordemID := c.Query("ordem"); ordemID != "" {
		itens, err = h.producaoService.GetItensByOrdem(ordemID)
	} else {
		itens, err = h.producaoService.GetAllItens()
	}
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]itemResponse, len(itens))
	for i, item := range itens {
		resp[i] = toItemResponse(item)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProducaoHandler) UpdateItem(c *gin.Context) {
	item, err := h.producaoService.GetItemByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := c.ShouldBindJSON(item); err != nil {
		bindError(c, err)
		return
	}
	item.ID = c.Param("id")
	if err := h.producaoService.UpdateItem(item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItemResponse(*item))
}

func (h *ProducaoHandler) DeleteItem(c *gin.Context) {
	if err := h.producaoService.DeleteItem(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
