package handlers

import (
	"net/http"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/services"

	"github.com/gin-gonic/gin"
)

type ClienteHandler struct {
	clienteService services.ClienteService
}

func NewClienteHandler(clienteService services.ClienteService) *ClienteHandler {
	return &ClienteHandler{clienteService: clienteService}
}

func (h *ClienteHandler) Create(c *gin.Context) {
	var cliente models.Cliente
	if err := c.ShouldBindJSON(&cliente); err != nil {
		bindError(c, err)
		return
	}
	if err := h.clienteService.CreateCliente(&cliente); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cliente)
}

func (h *ClienteHandler) Get(c *gin.Context) {
	cliente, err := h.clienteService.GetClienteByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cliente)
}

func (h *ClienteHandler) List(c *gin.Context) {
	clientes, err := h.clienteService.GetAllClientes()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clientes)
}

func (h *ClienteHandler) Update(c *gin.Context) {
	cliente, err := h.clienteService.GetClienteByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := c.ShouldBindJSON(cliente); err != nil {
		bindError(c, err)
		return
	}
	cliente.ID = c.Param("id")
	if err := h.clienteService.UpdateCliente(cliente); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cliente)
}

func (h *ClienteHandler) Delete(c *gin.Context) {
	if err := h.clienteService.DeleteCliente(c.Param("id"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
