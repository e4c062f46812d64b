package handlers

import (
	"net/http"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/services"

	"github.com/gin-gonic/gin"
)

type AtividadeHandler struct {
	atividadeService services.AtividadeService
}

func NewAtividadeHandler(atividadeService services.AtividadeService) *AtividadeHandler {
	return &AtividadeHandler{atividadeService: atividadeService}
}

func (h *AtividadeHandler) Create(c *gin.Context) {
	var atividade models.Atividade
	if err := c.ShouldBindJSON(&atividade); err != nil {
		bindError(c, err)
		return
	}
	if err := h.atividadeService.CreateAtividade(&atividade); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, atividade)
}

func (h *AtividadeHandler) Get(c *gin.Context) {
	atividade, err := h.atividadeService.GetAtividadeByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, atividade)
}

func (h *AtividadeHandler) List(c *gin.Context) {
	atividades, err := h.atividadeService.GetAllAtividades()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, atividades)
}

func (h *AtividadeHandler) Update(c *gin.Context) {
	atividade, err := h.atividadeService.GetAtividadeByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := c.ShouldBindJSON(atividade); err != nil {
		bindError(c, err)
		return
	}
	atividade.ID = c.Param("id")
	if err := h.atividadeService.UpdateAtividade(atividade); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, atividade)
}

func (h *AtividadeHandler) Delete(c *gin.Context) {
	if err := h.atividadeService.DeleteAtividade(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Comentários: create, read and delete only. Comments are never edited.

func (h *AtividadeHandler) CreateComentario(c *gin.Context) {
	var comentario models.Comentario
	if err := c.ShouldBindJSON(&comentario); err != nil {
		bindError(c, err)
		return
	}
	if comentario.AutorID == nil {
		comentario.AutorID = currentUserID(c)
	}
	if err := h.atividadeService.CreateComentario(&comentario); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comentario)
}

func (h *AtividadeHandler) GetComentario(c *gin.Context) {
	comentario, err := h.atividadeService.GetComentarioByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comentario)
}

// ListComentarios handles GET /api/comentarios?atividade=<id>.
func (h *AtividadeHandler) ListComentarios(c *gin.Context) {
	comentarios, err := h.atividadeService.GetComentarios(c.Query("atividade"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comentarios)
}

func (h *AtividadeHandler) DeleteComentario(c *gin.Context) {
	if err := h.atividadeService.DeleteComentario(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
