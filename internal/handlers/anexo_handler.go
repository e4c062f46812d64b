package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AnexoHandler struct {
	atividadeService services.AtividadeService
	uploadDir        string
}

func NewAnexoHandler(atividadeService services.AtividadeService, uploadDir string) *AnexoHandler {
	return &AnexoHandler{atividadeService: atividadeService, uploadDir: uploadDir}
}

func (h *AnexoHandler) Create(c *gin.Context) {
	var anexo models.Anexo
	if err := c.ShouldBindJSON(&anexo); err != nil {
		bindError(c, err)
		return
	}
	if anexo.CriadoPorID == nil {
		anexo.CriadoPorID = currentUserID(c)
	}
	if err := h.atividadeService.CreateAnexo(&anexo); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, anexo)
}

// Upload handles POST /api/anexos/upload: a multipart form with the file
// plus alvo_tipo and alvo_id fields. The file is stored under the upload
// directory with a generated name; the original name is kept on the record.
func (h *AnexoHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("arquivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "arquivo é obrigatório"})
		return
	}

	anexo := models.Anexo{
		AlvoTipo:     c.PostForm("alvo_tipo"),
		AlvoID:       c.PostForm("alvo_id"),
		NomeOriginal: file.Filename,
		MimeType:     file.Header.Get("Content-Type"),
		Tamanho:      file.Size,
		CriadoPorID:  currentUserID(c),
	}

	nome := uuid.NewString() + filepath.Ext(file.Filename)
	destino := filepath.Join(h.uploadDir, nome)
	if err := c.SaveUploadedFile(file, destino); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao salvar arquivo: " + err.Error()})
		return
	}
	anexo.ArquivoPath = destino

	if err := h.atividadeService.CreateAnexo(&anexo); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, anexo)
}

func (h *AnexoHandler) Get(c *gin.Context) {
	anexo, err := h.atividadeService.GetAnexoByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, anexo)
}

// List handles GET /api/anexos?alvo_tipo=<tipo>&alvo_id=<id>.
func (h *AnexoHandler) List(c *gin.Context) {
	anexos, err := h.atividadeService.GetAnexos(c.Query("alvo_tipo"), c.Query("alvo_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, anexos)
}

func (h *AnexoHandler) Delete(c *gin.Context) {
	if err := h.atividadeService.DeleteAnexo(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
