package handlers

import (
	"net/http"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/services"

	"github.com/gin-gonic/gin"
)

type UsuarioHandler struct {
	usuarioService services.UsuarioService
	logService     services.LogAcaoService
}

func NewUsuarioHandler(usuarioService services.UsuarioService, logService services.LogAcaoService) *UsuarioHandler {
	return &UsuarioHandler{usuarioService: usuarioService, logService: logService}
}

func (h *UsuarioHandler) Create(c *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required"`
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		Senha       string `json:"senha" binding:"required"`
		IsActive    *bool  `json:"is_active"`
		IsStaff     bool   `json:"is_staff"`
		IsSuperuser bool   `json:"is_superuser"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	usuario := models.Usuario{
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		IsActive:    true,
		IsStaff:     req.IsStaff,
		IsSuperuser: req.IsSuperuser,
	}
	if req.IsActive != nil {
		usuario.IsActive = *req.IsActive
	}

	if err := h.usuarioService.CreateUsuario(&usuario, req.Senha); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, usuario)
}

func (h *UsuarioHandler) Get(c *gin.Context) {
	usuario, err := h.usuarioService.GetUsuarioByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usuario)
}

func (h *UsuarioHandler) List(c *gin.Context) {
	usuarios, err := h.usuarioService.GetAllUsuarios()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usuarios)
}

func (h *UsuarioHandler) Update(c *gin.Context) {
	usuario, err := h.usuarioService.GetUsuarioByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var req struct {
		Email       *string `json:"email"`
		FirstName   *string `json:"first_name"`
		LastName    *string `json:"last_name"`
		Senha       string  `json:"senha"`
		IsActive    *bool   `json:"is_active"`
		IsStaff     *bool   `json:"is_staff"`
		IsSuperuser *bool   `json:"is_superuser"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if req.Email != nil {
		usuario.Email = *req.Email
	}
	if req.FirstName != nil {
		usuario.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		usuario.LastName = *req.LastName
	}
	if req.IsActive != nil {
		usuario.IsActive = *req.IsActive
	}
	if req.IsStaff != nil {
		usuario.IsStaff = *req.IsStaff
	}
	if req.IsSuperuser != nil {
		usuario.IsSuperuser = *req.IsSuperuser
	}

	if err := h.usuarioService.UpdateUsuario(usuario, req.Senha); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usuario)
}

func (h *UsuarioHandler) Delete(c *gin.Context) {
	if err := h.usuarioService.DeleteUsuario(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Logs: append-only audit trail. Only create and read are routed.

func (h *UsuarioHandler) CreateLog(c *gin.Context) {
	var log models.LogAcao
	if err := c.ShouldBindJSON(&log); err != nil {
		bindError(c, err)
		return
	}
	if log.UsuarioID == nil {
		log.UsuarioID = currentUserID(c)
	}
	if err := h.logService.CreateLog(&log); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (h *UsuarioHandler) GetLog(c *gin.Context) {
	log, err := h.logService.GetLogByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

// ListLogs handles GET /api/logs?usuario=<id>.
func (h *UsuarioHandler) ListLogs(c *gin.Context) {
	var logs []models.LogAcao
	var err error
	if usuarioID := c.Query("usuario"); usuarioID != "" {
		logs, err = h.logService.GetLogsByUsuario(usuarioID)
	} else {
		logs, err = h.logService.GetAllLogs()
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
